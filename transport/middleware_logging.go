package transport

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/muhammadheryan/wms/utils/logger"
	"go.uber.org/zap"
)

const requestIDHeader = "X-Request-ID"

// LoggingMiddleware tags every request with a request id (taken from X-Request-ID
// when the caller sends one), puts a request logger into the context and logs
// the outcome. 5xx responses are logged at error level.
func LoggingMiddleware() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			requestID := r.Header.Get(requestIDHeader)
			if requestID == "" || len(requestID) > 64 {
				requestID = uuid.NewString()
			}
			w.Header().Set(requestIDHeader, requestID)

			rec := &requestRecord{}
			ctx := logger.WithContext(r.Context(), zap.String("request_id", requestID))
			ctx = context.WithValue(ctx, requestRecordKey{}, rec)

			wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(wrapped, r.WithContext(ctx))

			fields := []zap.Field{
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", wrapped.statusCode),
				zap.Duration("duration", time.Since(start)),
			}
			if rec.userID != 0 {
				fields = append(fields, zap.Uint64("user_id", rec.userID))
			}
			log := logger.FromContext(ctx)
			if wrapped.statusCode >= http.StatusInternalServerError {
				log.Error("HTTP request", fields...)
				return
			}
			log.Info("HTTP request", fields...)
		})
	}
}

type requestRecordKey struct{}

// requestRecord lets inner middlewares report back to the access log line.
type requestRecord struct {
	userID uint64
}

// recordUser attaches the authenticated user to the request logger and the access log.
func recordUser(ctx context.Context, userID uint64) context.Context {
	if rec, ok := ctx.Value(requestRecordKey{}).(*requestRecord); ok {
		rec.userID = userID
	}
	return logger.WithContext(ctx, zap.Uint64("user_id", userID))
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
