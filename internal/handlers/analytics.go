package handlers

import (
	"net/http"

	"fanhub/internal/middleware"
	"fanhub/internal/services"
	"fanhub/internal/utils/helpers"
)

type AnalyticsHandler struct {
	articleService services.ArticleService
}

func NewAnalyticsHandler(articleService services.ArticleService) *AnalyticsHandler {
	return &AnalyticsHandler{articleService: articleService}
}

// GetAnalytics godoc
// @Summary Сводка по статьям
// @Description Просмотры/лайки/репосты по каждой статье и суммарно.
// @Description Владелец дополнительно получает блок page_traffic.
// @Tags analytics
// @Produce json
// @Success 200 {object} models.AnalyticsSummary
// @Failure 401 {string} string "Требуется вход"
// @Router /analytics [get]
// @Security CookieAuth
func (h *AnalyticsHandler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	role, _ := r.Context().Value(middleware.ContextRole).(string)

	summary, err := h.articleService.Analytics(r.Context(), role)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	helpers.JSON(w, http.StatusOK, summary)
}
