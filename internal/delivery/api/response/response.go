// Package response writes the JSON envelopes of the query API.
package response

import (
	"net/http"

	deliverycontext "monitoring/internal/delivery/context"
	domainerrors "monitoring/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SuccessResponse is the envelope of a successful call
type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse is the envelope of a failed call
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo carries the error code of a failed call
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// MetaInfo carries the request ID
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

// Success writes data with the given status
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Data: data,
		Meta: meta(c),
	})
}

// Error writes an application error. Details are only sent for client errors,
// never for 401, 403 or 5xx.
func Error(c echo.Context, appErr domainerrors.AppError, details any) error {
	status := appErr.HTTPCode()
	if status >= http.StatusInternalServerError || status == http.StatusUnauthorized || status == http.StatusForbidden {
		details = nil
	}

	return write(c, status, appErr.ErrorCode(), appErr.Message(), details)
}

// HTTPError writes an error raised by echo itself, such as an unknown route.
func HTTPError(c echo.Context, httpErr *echo.HTTPError) error {
	message := http.StatusText(httpErr.Code)
	if msg, ok := httpErr.Message.(string); ok {
		message = msg
	}

	return write(c, httpErr.Code, "HTTP_ERROR", message, nil)
}

// HandleAppError writes err when it carries an application error, with its details.
// Any other error is returned unchanged for the error middleware.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) {
		return errors.WithStack(err)
	}

	var details any
	if appErr.Details() != "" {
		details = appErr.Details()
	}

	return Error(c, appErr, details)
}

func write(c echo.Context, statusCode int, code, message string, details any) error {
	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:    code,
			Message: message,
			Details: details,
		},
		Meta: meta(c),
	})
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}
