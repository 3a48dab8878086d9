package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"monitoring/config"
	deliverycontext "monitoring/internal/delivery/context"
	"monitoring/internal/domain/constants"
	"monitoring/internal/infra/messaging"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PushHandler handles Pub/Sub push messages, from Google push subscriptions or the local publisher
type PushHandler struct {
	verifyPushAuth bool
	verifyToken    func(req *http.Request) error
	lifecycle      *LifecycleHandler
	logger         *slog.Logger
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	Lifecycle *LifecycleHandler
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Token checks are skipped in development so the local publisher can post unauthenticated
	verifyPushAuth := params.Config.Messaging != nil &&
		params.Config.Messaging.VerifyPushAuth &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		verifyToken:    verifyPubSubToken,
		lifecycle:      params.Lifecycle,
		logger:         params.Logger,
	}
}

// HandlePush handles POST /push/:intent
func (h *PushHandler) HandlePush(c echo.Context) error {
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)

	if h.verifyPushAuth {
		if err := h.verifyToken(c.Request()); err != nil {
			logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var envelope messaging.PushEnvelope
	if err := c.Bind(&envelope); err != nil {
		logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	msg, err := envelope.ToMessage(c.Param("intent"))
	if err != nil {
		logger.Error("[Worker] Failed to decode push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Prefer the request ID from the attributes, then the one set by RequestIDMiddleware
	if msg.Attributes == nil {
		msg.Attributes = map[string]string{}
	}
	if msg.Attributes[constants.AttributeRequestID] == "" {
		msg.Attributes[constants.AttributeRequestID] = deliverycontext.GetRequestIDFromContext(c.Request().Context())
	}

	// Return 503 for retryable errors to trigger Pub/Sub retry
	// Return 200 for everything else to prevent infinite retries
	if err := h.lifecycle.Handle(c.Request().Context(), msg); err != nil {
		return c.NoContent(http.StatusServiceUnavailable)
	}

	return c.NoContent(http.StatusOK)
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
