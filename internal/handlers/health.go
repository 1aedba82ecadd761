package handlers

import (
	"context"
	"net/http"
	"time"

	"fanhub/internal/utils/helpers"

	"github.com/jackc/pgx/v5/pgxpool"
)

type HealthHandler struct {
	db *pgxpool.Pool
}

func NewHealthHandler(db *pgxpool.Pool) *HealthHandler {
	return &HealthHandler{db: db}
}

// Healthz godoc
// @Summary Liveness-проверка
// @Description Возвращает ok, если процесс жив и БД отвечает на ping.
// @Tags ops
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {string} string "БД недоступна"
// @Router /healthz [get]
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		helpers.Error(w, http.StatusServiceUnavailable, "БД недоступна")
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
