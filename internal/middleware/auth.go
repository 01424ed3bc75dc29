package middleware

import (
	"bowling_backend/pkg/token"
	"context"
	"log"
	"net/http"
	"strconv"
	"strings"
)

type ctxKey struct{}

var userIDKey = ctxKey{}

// WithUserID кладёт ID пользователя в контекст запроса
func WithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext ID пользователя, прошедшего авторизацию
func UserIDFromContext(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(userIDKey).(int)
	return id, ok
}

// Auth проверяет access токен из заголовка Authorization: Bearer <token>
func Auth(secretKey []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			tokenStr, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || tokenStr == "" {
				http.Error(w, "missing access token", http.StatusUnauthorized)
				return
			}

			claims, err := token.VerifyToken(tokenStr, secretKey)
			if err != nil {
				log.Println("Auth error:", err)
				http.Error(w, "invalid access token", http.StatusUnauthorized)
				return
			}

			userID, err := strconv.Atoi(claims.Subject)
			if err != nil {
				http.Error(w, "invalid access token", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}
