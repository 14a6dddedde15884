package middleware

import (
	"context"
	"net/http"
	"time"

	"horse-medical-records/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

type ctxKey string

const loggerKey ctxKey = "logger"

// RequestLogger cuelga del contexto un logger con el request_id de chi
// (va después de chimw.RequestID) y deja una línea de acceso por request.
func RequestLogger(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			reqLog := log
			if id := chimw.GetReqID(r.Context()); id != "" {
				reqLog = log.With(map[string]any{"request_id": id})
			}
			ctx := context.WithValue(r.Context(), loggerKey, reqLog)

			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			fields := map[string]any{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      status,
				"bytes":       ww.BytesWritten(),
				"duration_ms": time.Since(start).Milliseconds(),
			}
			if status >= 500 {
				reqLog.Error("http request", fields)
				return
			}
			reqLog.Info("http request", fields)
		})
	}
}

// LoggerFrom devuelve el logger del request, o fallback si no hay.
func LoggerFrom(ctx context.Context, fallback logger.Logger) logger.Logger {
	if l, ok := ctx.Value(loggerKey).(logger.Logger); ok && l != nil {
		return l
	}
	if fallback == nil {
		return logger.Nop()
	}
	return fallback
}
