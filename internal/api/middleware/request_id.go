package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type contextKey string

// requestIDKey ключ request id в контексте запроса
const requestIDKey contextKey = "request_id"

// headerRequestID заголовок сквозного идентификатора запроса
const headerRequestID = "X-Request-ID"

// RequestID гарантирует каждому запросу идентификатор для трассировки в логах
// Если клиент прислал X-Request-ID, он переиспользуется, иначе генерируется новый
func RequestID() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rid := r.Header.Get(headerRequestID)
			if rid == "" {
				rid = uuid.NewString()
			}

			w.Header().Set(headerRequestID, rid)
			ctx := context.WithValue(r.Context(), requestIDKey, rid)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetRequestID извлекает request id из контекста запроса
func GetRequestID(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}
