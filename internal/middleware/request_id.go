package middleware

import (
	"context"
	"net/http"

	"fanhub/internal/logger"

	"github.com/google/uuid"
)

// RequestID присваивает каждому запросу идентификатор; клиент может передать
// свой через заголовок X-Request-ID.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := r.Header.Get("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}

		ctx := context.WithValue(r.Context(), ContextRequestID, rid)
		ctx = logger.ContextWithRequestID(ctx, rid)

		w.Header().Set("X-Request-ID", rid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
