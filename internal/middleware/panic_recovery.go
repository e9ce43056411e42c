package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	apperrors "finhub/internal/errors"

	"github.com/labstack/echo/v4"
)

// PanicRecovery converts a handler panic into the standard SYSTEM_001
// envelope instead of letting Echo drop the connection. The trace ID is
// carried into the log line and the envelope so the crash can be matched to
// the request that caused it.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}

				traceID := GetTraceID(c)
				slog.Error("Recovered from panic",
					"trace_id", traceID,
					"panic", recovered,
					"method", c.Request().Method,
					"path", c.Request().URL.Path,
					"stack", string(debug.Stack()),
				)

				response := apperrors.NewErrorResponse(apperrors.SystemInternalError, traceID)
				err = c.JSON(http.StatusInternalServerError, response)
			}()

			return next(c)
		}
	}
}
