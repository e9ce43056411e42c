package handlers

import (
	"log/slog"

	apperrors "finhub/internal/errors"

	"github.com/labstack/echo/v4"
)

// TraceIDContextKey mirrors the middleware context key. Duplicated here to
// avoid an import cycle (middleware imports handlers for SendError).
const TraceIDContextKey = "trace_id"

// SuccessResponse is the standardized API success envelope
type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// PaginationMeta carries list pagination info in the Meta field
type PaginationMeta struct {
	Total  int64 `json:"total"`
	Offset int   `json:"offset"`
	Limit  int   `json:"limit"`
}

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendSuccess sends a standardized success response with the given status code
func SendSuccess(c echo.Context, status int, data interface{}) error {
	return c.JSON(status, SuccessResponse{
		Success: true,
		Data:    data,
	})
}

// SendSuccessWithMeta sends a success response carrying pagination metadata
func SendSuccessWithMeta(c echo.Context, status int, data interface{}, meta interface{}) error {
	return c.JSON(status, SuccessResponse{
		Success: true,
		Data:    data,
		Meta:    meta,
	})
}

// SendError sends a standardized error response for the given error code
func SendError(c echo.Context, code apperrors.ErrorCode, opts ...apperrors.ErrorOption) error {
	traceID := getTraceID(c)
	response := apperrors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(response.GetHTTPStatus(), response)
}

// SendSystemError logs the internal error and sends a generic system error
// response that does not leak implementation details to the client
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	response, internalErr := apperrors.WrapSystemError(err, traceID)

	slog.Error("System error",
		"trace_id", traceID,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"error", internalErr.Error(),
	)

	return c.JSON(response.GetHTTPStatus(), response)
}
