package handlers

import (
	"net/http"

	"blogcore/internal/utils/helpers"

	"github.com/jackc/pgx/v5/pgxpool"
)

type HealthHandler struct {
	pool *pgxpool.Pool
}

func NewHealthHandler(pool *pgxpool.Pool) *HealthHandler {
	return &HealthHandler{pool: pool}
}

// Healthz godoc
// @Summary Проверка живости сервиса и соединения с базой
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /healthz [get]
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	if err := h.pool.Ping(r.Context()); err != nil {
		helpers.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "db unavailable"})
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
