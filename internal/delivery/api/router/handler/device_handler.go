package handler

import (
	"log/slog"
	"net/http"

	"monitoring/internal/delivery/api/middleware"
	"monitoring/internal/delivery/api/response"
	deliverycontext "monitoring/internal/delivery/context"
	"monitoring/internal/domain/entity"
	domainerrors "monitoring/internal/domain/errors"
	"monitoring/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	LifecycleUC usecase.DeviceLifecycleUsecase
	Logger      *slog.Logger
}

// DeviceHandler serves read access to the device catalog
type DeviceHandler struct {
	lifecycleUC usecase.DeviceLifecycleUsecase
	logger      *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		lifecycleUC: params.LifecycleUC,
		logger:      params.Logger,
	}
}

// ListOwnerDevices handles GET /api/v1/owners/:ownerId/devices.
// Callers may read their own devices; admins may read anyone's.
func (h *DeviceHandler) ListOwnerDevices(c echo.Context) error {
	callerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Error(c, domainerrors.ErrInvalidToken, nil)
	}

	ownerID, err := uuid.Parse(c.Param("ownerId"))
	if err != nil {
		return response.Error(c, domainerrors.ErrInvalidIdentifier, map[string]string{"ownerId": c.Param("ownerId")})
	}

	roles, _ := middleware.GetRoles(c)
	if callerID != ownerID && !roles.Contains(entity.RoleAdmin) {
		return response.Error(c, domainerrors.ErrForbidden, nil)
	}

	devices, err := h.lifecycleUC.ListForOwner(c.Request().Context(), ownerID)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
			Error("Failed to list devices", slog.String("owner_id", ownerID.String()), slog.Any("error", err))

		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, devices)
}
