package middleware

import (
	"log/slog"
	"net/http"

	"github.com/nativephrase/navigator-api/internal/api/shared"
	"github.com/nativephrase/navigator-api/internal/platform/logger"
)

// NewTraceMiddleware returns a middleware that adds a trace ID to the
// request context and stores a trace-scoped logger alongside it, so all
// downstream handlers and services log with the same trace ID. Apply it
// early in the middleware chain.
func NewTraceMiddleware(baseLogger *slog.Logger) func(http.Handler) http.Handler {
	if baseLogger == nil {
		baseLogger = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := shared.SetTraceID(r.Context())
			traceID := shared.GetTraceID(ctx)

			log := baseLogger.With(slog.String("trace_id", traceID))
			ctx = logger.WithLogger(ctx, log)

			log.Debug("request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
