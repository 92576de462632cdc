package handlers

import (
	"net/http"

	"blogcore/internal/apperr"
	"blogcore/internal/middleware"
	"blogcore/internal/models"
	"blogcore/internal/services"
	"blogcore/internal/utils/helpers"
)

type UserHandler struct {
	directory *services.DirectoryService
}

func NewUserHandler(directory *services.DirectoryService) *UserHandler {
	return &UserHandler{directory: directory}
}

type userListResponse struct {
	Success bool           `json:"success"`
	Count   int            `json:"count"`
	Role    string         `json:"role,omitempty"`
	Data    []*models.User `json:"data"`
}

// GetUsers godoc
// @Summary Список пользователей (только admin)
// @Tags admin-users
// @Security ApiKeyAuth
// @Produce json
// @Param role query string false "Фильтр по роли (reader|author|admin)"
// @Success 200 {object} userListResponse
// @Failure 403 {object} helpers.ErrorResponse "Доступ запрещён"
// @Router /api/v1/users [get]
func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFrom(r.Context())
	if !ok {
		helpers.Fail(w, r, apperr.Unauthenticated(""))
		return
	}

	role := r.URL.Query().Get("role")

	users, err := h.directory.List(r.Context(), actor, role)
	if err != nil {
		helpers.Fail(w, r, err)
		return
	}

	helpers.JSON(w, http.StatusOK, userListResponse{
		Success: true,
		Count:   len(users),
		Role:    role,
		Data:    users,
	})
}
