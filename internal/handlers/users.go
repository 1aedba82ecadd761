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

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type deleteUserRequest struct {
	UserID string `json:"user_id"`
}

type updateUserRequest struct {
	UserID string `json:"user_id"`
	models.UpdateUserRequest
}

// ListUsers godoc
// @Summary Список учётных записей
// @Tags users
// @Produce json
// @Success 200 {array} models.UserProfileResponse
// @Failure 403 {string} string "Доступ запрещён"
// @Router /users [get]
// @Security CookieAuth
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	profiles := make([]*models.UserProfileResponse, 0, len(users))
	for _, u := range users {
		profiles = append(profiles, u.Profile())
	}
	helpers.JSON(w, http.StatusOK, profiles)
}

// UpdateUser godoc
// @Summary Обновление чужой учётной записи
// @Tags users
// @Accept json
// @Produce json
// @Param input body updateUserRequest true "Изменяемые поля; отсутствующие не трогаются"
// @Success 200 {object} models.UserProfileResponse
// @Failure 403 {string} string "Доступ запрещён"
// @Failure 404 {string} string "Не найдено"
// @Failure 409 {string} string "Имя пользователя уже занято"
// @Router /users/update [patch]
// @Security CookieAuth
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var req updateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("Ошибка декодирования JSON в UpdateUser", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}
	if req.UserID == "" {
		helpers.Error(w, http.StatusBadRequest, "Нужен user_id")
		return
	}

	actorID, _ := r.Context().Value(middleware.ContextUserID).(string)
	actorRole, _ := r.Context().Value(middleware.ContextRole).(string)

	user, err := h.userService.UpdateUser(r.Context(), actorID, actorRole, req.UserID, &req.UpdateUserRequest)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	helpers.JSON(w, http.StatusOK, user.Profile())
}

// DeleteUser godoc
// @Summary Удаление учётной записи
// @Tags users
// @Accept json
// @Produce json
// @Param input body deleteUserRequest true "ID удаляемой учётки"
// @Success 200 {string} string "Учётная запись удалена"
// @Failure 403 {string} string "Доступ запрещён"
// @Failure 404 {string} string "Не найдено"
// @Router /users [delete]
// @Security CookieAuth
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	var req deleteUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("Ошибка декодирования JSON в DeleteUser", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}
	if req.UserID == "" {
		helpers.Error(w, http.StatusBadRequest, "Нужен user_id")
		return
	}

	actorRole, _ := r.Context().Value(middleware.ContextRole).(string)

	if err := h.userService.DeleteUser(r.Context(), actorRole, req.UserID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	helpers.JSON(w, http.StatusOK, "Учётная запись удалена")
}
