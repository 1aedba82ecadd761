package handlers

import (
	"errors"
	"net/http"

	"fanhub/internal/logger"
	"fanhub/internal/repository"
	"fanhub/internal/services"
	"fanhub/internal/utils/helpers"

	"go.uber.org/zap"
)

// writeServiceError переводит ошибки сервисного слоя в HTTP-статусы.
// Неизвестные ошибки наружу не раскрываются.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		helpers.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		helpers.Error(w, http.StatusUnauthorized, "Неверный логин или пароль")
	case errors.Is(err, services.ErrForbidden):
		helpers.Error(w, http.StatusForbidden, "Доступ запрещён")
	case errors.Is(err, services.ErrOwnerProtected):
		helpers.Error(w, http.StatusForbidden, "Учётная запись владельца защищена")
	case errors.Is(err, repository.ErrNotFound):
		helpers.Error(w, http.StatusNotFound, "Не найдено")
	case errors.Is(err, repository.ErrUsernameTaken):
		helpers.Error(w, http.StatusConflict, "Имя пользователя уже занято")
	default:
		logger.WithCtx(r.Context()).Error("Необработанная ошибка сервиса", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
	}
}
