package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// A trace ID ties one dashboard request to the provider fan-out it triggers
// and to the trace_id field on error envelopes, so a failed aggregation can
// be matched to its per-provider log lines.
const (
	// TraceIDHeader carries the trace ID on requests and responses.
	TraceIDHeader = "X-Trace-ID"
	// TraceIDContextKey is where the trace ID lives in the Echo context.
	TraceIDContextKey = "trace_id"
)

// RequestID stamps every request with a trace ID. Upstream callers may
// supply their own via X-Trace-ID; requests without one get a fresh UUID.
// The ID is echoed back in the response header so clients can quote it when
// reporting a failure.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			traceID := c.Request().Header.Get(TraceIDHeader)
			if traceID == "" {
				traceID = uuid.NewString()
			}

			c.Set(TraceIDContextKey, traceID)
			c.Response().Header().Set(TraceIDHeader, traceID)
			return next(c)
		}
	}
}

// GetTraceID returns the request's trace ID, or an empty string when the
// RequestID middleware has not run.
func GetTraceID(c echo.Context) string {
	traceID, _ := c.Get(TraceIDContextKey).(string)
	return traceID
}
