package middleware

import (
	"errors"
	"net/http"
	"strings"

	"blogcore/internal/apperr"
	"blogcore/internal/config"
	"blogcore/internal/logger"
	"blogcore/internal/models"
	"blogcore/internal/utils"
	"blogcore/internal/utils/helpers"

	"go.uber.org/zap"
)

// JWTAuth проверяет Bearer-токен и кладёт Actor в контекст запроса.
// Отсутствие заголовка, битый и просроченный токен — разные сообщения.
func JWTAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		cfg, _ := config.LoadConfig()
		authHeader := r.Header.Get("Authorization")

		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			logger.WithCtx(r.Context()).Warn("JWTAuth: отсутствует access token")
			helpers.Fail(w, r, apperr.Unauthenticated("Authorization header missing"))
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := utils.ParseToken(cfg.JWTSecret, tokenString)
		if err != nil {
			logger.WithCtx(r.Context()).Warn("JWTAuth: токен не прошёл проверку", zap.Error(err))
			switch {
			case errors.Is(err, utils.ErrExpiredToken):
				helpers.Fail(w, r, apperr.Unauthenticated("Authentication token has expired. Please login again."))
			case errors.Is(err, utils.ErrMalformedClaims):
				helpers.Fail(w, r, apperr.Unauthenticated("Invalid token payload"))
			default:
				helpers.Fail(w, r, apperr.Unauthenticated("Invalid authentication token. Please login again."))
			}
			return
		}

		actor := models.Actor{
			ID:       claims.UserID,
			Email:    claims.Email,
			Username: claims.Username,
			Role:     claims.Role,
		}

		ctx := WithActor(r.Context(), actor)

		logger.WithCtx(ctx).Debug("JWTAuth: токен валиден",
			zap.Int("user_id", actor.ID), zap.String("role", actor.Role))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
