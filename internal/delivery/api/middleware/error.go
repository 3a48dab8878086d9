package middleware

import (
	"log/slog"

	"monitoring/internal/delivery/api/response"
	deliverycontext "monitoring/internal/delivery/context"
	domainerrors "monitoring/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware turns handler errors into error envelopes
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError is the echo HTTPErrorHandler. Store failures and unknown errors are
// logged and answered without internal details.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		_ = response.HTTPError(c, httpErr)

		return
	}

	appErr := domainerrors.AppError(domainerrors.ErrInternalError)
	if !errors.As(err, &appErr) || appErr.HTTPCode() >= 500 {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Error("Request failed",
			slog.Any("error", err),
			slog.String("path", c.Request().URL.Path),
			slog.String("method", c.Request().Method),
		)
	}

	_ = response.Error(c, appErr, nil)
}
