package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"mosaic/internal/observability"
)

const requestIDHeader = "X-Request-ID"

// RequestIDMiddleware tags every request with an identifier, honoring one
// supplied by the client, and threads it through the request context so
// downstream log lines correlate.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		ctx := observability.ContextWithRequestID(c.Request.Context(), requestID)
		c.Request = c.Request.WithContext(ctx)
		c.Writer.Header().Set(requestIDHeader, requestID)
		c.Next()
	}
}

// ObservabilityMiddleware records one span, one log line, and one latency
// sample per request. The log line carries the request id from the
// context. Any of the collaborators may be nil, which disables that
// signal.
func ObservabilityMiddleware(logger *observability.Logger, metrics *observability.MetricsCollector, tracer *observability.TracerProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		var span trace.Span
		if tracer != nil {
			ctx := c.Request.Context()
			ctx, span = tracer.StartSpan(ctx, c.Request.Method+" "+route,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("http.method", c.Request.Method),
					attribute.String("http.route", route),
					attribute.String("request.id", observability.RequestIDFromContext(ctx)),
				),
			)
			c.Request = c.Request.WithContext(ctx)
		}

		c.Next()

		duration := time.Since(start)
		status := c.Writer.Status()

		if span != nil {
			span.SetAttributes(attribute.Int("http.status_code", status))
			span.End()
		}
		if metrics != nil {
			metrics.RecordHTTPRequest(c.Request.Context(), c.Request.Method, route, status, duration)
		}
		if logger != nil {
			line := logger.WithContext(c.Request.Context())
			args := []any{
				"method", c.Request.Method,
				"route", route,
				"status", status,
				"duration_ms", duration.Milliseconds(),
			}
			if status >= 500 {
				line.Error("http request", args...)
			} else {
				line.Info("http request", args...)
			}
		}
	}
}
