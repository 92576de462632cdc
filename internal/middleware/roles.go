package middleware

import (
	"net/http"

	"blogcore/internal/apperr"
	"blogcore/internal/utils/helpers"
)

// OnlyRole — маршрутный барьер по роли. Тонкие проверки (владение,
// статус ресурса) остаются за политикой в сервисном слое.
func OnlyRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, ok := ActorFrom(r.Context())
			if !ok || actor.Role != role {
				helpers.Fail(w, r, apperr.Forbidden(""))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
