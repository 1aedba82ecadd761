package handlers

import (
	"encoding/json"
	"net/http"

	"fanhub/internal/config"
	"fanhub/internal/logger"
	"fanhub/internal/middleware"
	"fanhub/internal/services"
	"fanhub/internal/utils"
	"fanhub/internal/utils/helpers"

	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *services.AuthService
	cfg         *config.Config
}

func NewAuthHandler(authService *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{authService: authService, cfg: cfg}
}

type registerRequest struct {
	Username    string  `json:"username"`
	Password    string  `json:"password"`
	AuthorName  *string `json:"author_name,omitempty"`
	Description *string `json:"description,omitempty"`
	AvatarImage *string `json:"avatar_image,omitempty"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authCheckResponse struct {
	Authenticated bool        `json:"authenticated"`
	User          interface{} `json:"user,omitempty"`
}

// Register godoc
// @Summary Регистрация нового пользователя
// @Tags auth
// @Accept json
// @Produce json
// @Param input body registerRequest true "Данные регистрации"
// @Success 201 {object} models.UserProfileResponse
// @Failure 400 {string} string "Ошибка валидации"
// @Failure 409 {string} string "Имя пользователя уже занято"
// @Router /register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("Ошибка декодирования JSON в Register", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	user, err := h.authService.RegisterUser(r.Context(), services.RegisterInput{
		Username:    req.Username,
		Password:    req.Password,
		AuthorName:  req.AuthorName,
		Description: req.Description,
		AvatarImage: req.AvatarImage,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	helpers.JSON(w, http.StatusCreated, user.Profile())
}

// Login godoc
// @Summary Авторизация пользователя
// @Tags auth
// @Accept json
// @Produce json
// @Param input body loginRequest true "Данные для входа"
// @Success 200 {object} models.UserProfileResponse
// @Failure 401 {string} string "Неверный логин или пароль"
// @Router /login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("Ошибка декодирования JSON в Login", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	token, user, err := h.authService.LoginUser(r.Context(), req.Username, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	http.SetCookie(w, h.sessionCookie(token, int(h.authService.SessionTTL().Seconds())))
	helpers.JSON(w, http.StatusOK, user.Profile())
}

// Logout godoc
// @Summary Выход из аккаунта
// @Tags auth
// @Produce json
// @Success 200 {string} string "Выход выполнен"
// @Router /logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	// Сессия хранится только в cookie — достаточно её погасить
	http.SetCookie(w, h.sessionCookie("", -1))
	helpers.JSON(w, http.StatusOK, "Выход выполнен")
}

// Check godoc
// @Summary Проверка текущей сессии
// @Description Разбирает cookie самостоятельно: без сессии отвечает
// @Description authenticated:false, а не общей ошибкой авторизации.
// @Tags auth
// @Produce json
// @Success 200 {object} authCheckResponse
// @Failure 401 {object} authCheckResponse
// @Router /auth/check [get]
func (h *AuthHandler) Check(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(middleware.SessionCookieName)
	if err != nil || cookie.Value == "" {
		helpers.JSON(w, http.StatusUnauthorized, authCheckResponse{Authenticated: false})
		return
	}

	claims, err := utils.ParseToken(h.cfg.JWTSecret, cookie.Value)
	if err != nil {
		helpers.JSON(w, http.StatusUnauthorized, authCheckResponse{Authenticated: false})
		return
	}

	user, err := h.authService.GetUserByID(r.Context(), claims.UserID)
	if err != nil {
		// Токен ещё жив, а учётка уже удалена
		helpers.JSON(w, http.StatusUnauthorized, authCheckResponse{Authenticated: false})
		return
	}

	helpers.JSON(w, http.StatusOK, authCheckResponse{Authenticated: true, User: user.Profile()})
}

func (h *AuthHandler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.cfg.Env == "prod",
	}
}
