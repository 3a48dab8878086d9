// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"monitoring/internal/delivery/api/middleware"
	"monitoring/internal/delivery/api/router/handler"
	workerhandler "monitoring/internal/delivery/worker/handler"
	"monitoring/internal/domain/entity"
	"monitoring/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	DeviceHandler  *handler.DeviceHandler
	ChatHandler    *handler.ChatHandler
	PushHandler    *workerhandler.PushHandler
	AuthMiddleware *middleware.AuthMiddleware
	Metrics        *metrics.Metrics
}

// router holds all the handlers that need to be registered.
type router struct {
	deviceHandler  *handler.DeviceHandler
	chatHandler    *handler.ChatHandler
	pushHandler    *workerhandler.PushHandler
	authMiddleware *middleware.AuthMiddleware
	metrics        *metrics.Metrics
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		deviceHandler:  params.DeviceHandler,
		chatHandler:    params.ChatHandler,
		pushHandler:    params.PushHandler,
		authMiddleware: params.AuthMiddleware,
		metrics:        params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	if r.metrics != nil {
		e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))
	}

	// Pub/Sub push endpoint, one path per intent
	e.POST("/push/:intent", r.pushHandler.HandlePush)

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	ownersGroup := apiV1.Group("/owners")
	{
		ownersGroup.GET("/:ownerId/devices", r.deviceHandler.ListOwnerDevices)
	}

	chatGroup := apiV1.Group("/chat")
	{
		chatGroup.POST("/messages", r.chatHandler.AppendMessage)
		chatGroup.GET("/messages", r.chatHandler.ListMessages, r.authMiddleware.RequireRole(entity.RoleAdmin))
	}
}
