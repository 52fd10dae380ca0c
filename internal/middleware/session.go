package middleware

import (
	"context"
	"net/http"

	"examly/internal/logger"
	"examly/internal/reqctx"
	"examly/internal/utils"

	"go.uber.org/zap"
)

// SessionAuth читает сессионную куку, проверяет подпись токена и кладёт
// данные сессии в контекст. Серверного хранилища сессий нет: токен
// самодостаточен, валидность определяется только подписью и exp.
func SessionAuth(cookieName, jwtSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			cookie, err := r.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				logger.WithCtx(r.Context()).Warn("SessionAuth: отсутствует сессионная кука")
				http.Error(w, "Не авторизован", http.StatusUnauthorized)
				return
			}

			claims, err := utils.ParseSessionToken(jwtSecret, cookie.Value)
			if err != nil {
				logger.WithCtx(r.Context()).Warn("SessionAuth: неверный или просроченный токен", zap.Error(err))
				http.Error(w, "Неверный или просроченный токен", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ContextUserID, claims.UserID)
			ctx = context.WithValue(ctx, ContextClaims, claims)
			ctx = reqctx.WithUserID(ctx, claims.UserID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OnlyAdmin пускает дальше только сессии с поднятым флагом is_admin.
func OnlyAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := SessionFromContext(r.Context())
		if !ok || !claims.IsAdmin {
			http.Error(w, "Доступ запрещён", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
