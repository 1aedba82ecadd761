package handlers

import (
	"encoding/json"
	"net/http"

	"fanhub/internal/logger"
	"fanhub/internal/middleware"
	"fanhub/internal/models"
	"fanhub/internal/services"
	"fanhub/internal/utils/helpers"

	"go.uber.org/zap"
)

type ProfileHandler struct {
	profileService *services.ProfileService
}

func NewProfileHandler(profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// GetProfile godoc
// @Summary Собственный профиль
// @Tags profile
// @Produce json
// @Success 200 {object} models.UserProfileResponse
// @Failure 401 {string} string "Требуется вход"
// @Router /profile [get]
// @Security CookieAuth
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(middleware.ContextUserID).(string)

	user, err := h.profileService.GetProfile(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	helpers.JSON(w, http.StatusOK, user.Profile())
}

// UpdateProfile godoc
// @Summary Обновление собственного профиля
// @Tags profile
// @Accept json
// @Produce json
// @Param input body models.UpdateProfileRequest true "Изменяемые поля; отсутствующие не трогаются"
// @Success 200 {object} models.UserProfileResponse
// @Failure 401 {string} string "Требуется вход"
// @Router /profile [patch]
// @Security CookieAuth
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("Ошибка декодирования JSON в UpdateProfile", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	userID, _ := r.Context().Value(middleware.ContextUserID).(string)

	user, err := h.profileService.UpdateProfile(r.Context(), userID, &req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	helpers.JSON(w, http.StatusOK, user.Profile())
}
