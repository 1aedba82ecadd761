package middleware

import (
	"context"
	"net/http"

	"fanhub/internal/logger"
	"fanhub/internal/utils"
	"fanhub/internal/utils/helpers"

	"go.uber.org/zap"
)

// SessionCookieName — cookie с сессионным токеном; её же выставляет login.
const SessionCookieName = "auth-token"

// SessionAuth читает токен из cookie и кладёт пользователя в контекст.
// Без валидной cookie запрос дальше не проходит.
func SessionAuth(jwtSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			cookie, err := r.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				logger.WithCtx(r.Context()).Warn("SessionAuth: отсутствует сессионная cookie")
				helpers.Error(w, http.StatusUnauthorized, "Требуется вход")
				return
			}

			claims, err := utils.ParseToken(jwtSecret, cookie.Value)
			if err != nil {
				logger.WithCtx(r.Context()).Warn("SessionAuth: неверный или просроченный токен", zap.Error(err))
				helpers.Error(w, http.StatusUnauthorized, "Неверный или просроченный токен")
				return
			}

			ctx := context.WithValue(r.Context(), ContextUserID, claims.UserID)
			ctx = context.WithValue(ctx, ContextUsername, claims.Username)
			ctx = context.WithValue(ctx, ContextRole, claims.Role)
			ctx = logger.ContextWithUser(ctx, claims.UserID, claims.Role)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
