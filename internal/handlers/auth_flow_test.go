package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fanhub/internal/config"
	"fanhub/internal/handlers"
	"fanhub/internal/logger"
	"fanhub/internal/middleware"
	"fanhub/internal/models"
	"fanhub/internal/repository"
	"fanhub/internal/routes"
	"fanhub/internal/services"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Интеграционный прогон через роутер: регистрация → логин → проверка
// сессии → выход. БД заменяется in-memory заглушками.

type stubUserRepo struct {
	users map[string]*models.User
}

func (s *stubUserRepo) IsUsernameTaken(_ context.Context, username string) (bool, error) {
	_, ok := s.users[username]
	return ok, nil
}

func (s *stubUserRepo) CreateUser(_ context.Context, user *models.User) error {
	if _, ok := s.users[user.Username]; ok {
		return repository.ErrUsernameTaken
	}
	s.users[user.Username] = user
	return nil
}

func (s *stubUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	u, ok := s.users[username]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

func (s *stubUserRepo) GetUserByID(_ context.Context, id string) (*models.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *stubUserRepo) GetAllUsers(_ context.Context) ([]*models.User, error) {
	var all []*models.User
	for _, u := range s.users {
		all = append(all, u)
	}
	return all, nil
}

func (s *stubUserRepo) UpdateUserFields(_ context.Context, id string, input *models.UpdateUserRequest, passwordHash *string) error {
	for _, u := range s.users {
		if u.ID == id {
			if input.Role != nil {
				u.Role = *input.Role
			}
			if passwordHash != nil {
				u.PasswordHash = *passwordHash
			}
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *stubUserRepo) DeleteUserByID(_ context.Context, id string) error {
	for name, u := range s.users {
		if u.ID == id {
			delete(s.users, name)
			return nil
		}
	}
	return repository.ErrNotFound
}

type stubArticleRepo struct{}

func (stubArticleRepo) Create(_ context.Context, a *models.Article) (*models.Article, error) {
	return a, nil
}
func (stubArticleRepo) GetAll(_ context.Context) ([]*models.Article, error) { return nil, nil }
func (stubArticleRepo) GetByID(_ context.Context, _ string) (*models.Article, error) {
	return nil, repository.ErrNotFound
}
func (stubArticleRepo) Update(_ context.Context, _ *models.Article) error {
	return repository.ErrNotFound
}
func (stubArticleRepo) Delete(_ context.Context, _ string) error { return repository.ErrNotFound }
func (stubArticleRepo) Search(_ context.Context, _ string) ([]*models.Article, error) {
	return nil, nil
}
func (stubArticleRepo) ListCategories(_ context.Context) ([]string, error) { return nil, nil }
func (stubArticleRepo) IncrementViews(_ context.Context, _ string) (int64, error) {
	return 0, repository.ErrNotFound
}
func (stubArticleRepo) AdjustLikes(_ context.Context, _ string, _ int64) (int64, error) {
	return 0, repository.ErrNotFound
}
func (stubArticleRepo) IncrementShares(_ context.Context, _ string) (int64, error) {
	return 0, repository.ErrNotFound
}
func (stubArticleRepo) GetStats(_ context.Context) ([]models.ArticleStats, error) { return nil, nil }

func newTestRouter(t *testing.T) *mux.Router {
	t.Helper()

	if logger.Log == nil {
		logger.Log = zap.NewNop()
	}

	const secret = "testsecret"
	cfg := &config.Config{Env: "dev", SessionTTL: "168h", JWTSecret: secret}

	userRepo := &stubUserRepo{users: make(map[string]*models.User)}
	authService := services.NewAuthService(userRepo, secret, 168*time.Hour)
	userService := services.NewUserService(userRepo)
	profileService := services.NewProfileService(userRepo)
	articleService := services.NewArticleService(stubArticleRepo{}, "/placeholder.svg")

	router := mux.NewRouter()
	routes.InitRoutes(router, secret,
		handlers.NewAuthHandler(authService, cfg),
		handlers.NewUserHandler(userService),
		handlers.NewProfileHandler(profileService),
		handlers.NewArticleHandler(articleService),
		handlers.NewAnalyticsHandler(articleService),
		handlers.NewLogsHandler(t.TempDir()),
		handlers.NewHealthHandler(nil),
	)
	return router
}

func doJSON(t *testing.T, router *mux.Router, method, path, body string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAuthFlow(t *testing.T) {
	router := newTestRouter(t)

	// Регистрация
	rec := doJSON(t, router, http.MethodPost, "/api/register", `{"username":"alice","password":"secret1"}`, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("регистрация: ожидался 201, получен %d: %s", rec.Code, rec.Body.String())
	}

	// Повторная регистрация — конфликт
	rec = doJSON(t, router, http.MethodPost, "/api/register", `{"username":"alice","password":"other"}`, nil)
	if rec.Code != http.StatusConflict {
		t.Fatalf("дубликат username: ожидался 409, получен %d", rec.Code)
	}

	// Логин выставляет сессионную cookie
	rec = doJSON(t, router, http.MethodPost, "/api/login", `{"username":"alice","password":"secret1"}`, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("логин: ожидался 200, получен %d: %s", rec.Code, rec.Body.String())
	}

	var session *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.SessionCookieName {
			session = c
		}
	}
	if session == nil || session.Value == "" {
		t.Fatal("логин не выставил сессионную cookie")
	}
	if !session.HttpOnly {
		t.Fatal("сессионная cookie должна быть HttpOnly")
	}

	// Проверка сессии
	rec = doJSON(t, router, http.MethodGet, "/api/auth/check", "", []*http.Cookie{session})
	if rec.Code != http.StatusOK {
		t.Fatalf("auth/check: ожидался 200, получен %d: %s", rec.Code, rec.Body.String())
	}
	var checkResp struct {
		Data struct {
			Authenticated bool `json:"authenticated"`
			User          struct {
				Username string `json:"username"`
				Role     string `json:"role"`
			} `json:"user"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &checkResp); err != nil {
		t.Fatalf("невалидный JSON в ответе: %v", err)
	}
	if !checkResp.Data.Authenticated || checkResp.Data.User.Username != "alice" {
		t.Fatalf("неверный ответ auth/check: %s", rec.Body.String())
	}
	if checkResp.Data.User.Role != models.RoleMember {
		t.Fatalf("новый пользователь должен быть member: %s", rec.Body.String())
	}

	// Выход гасит cookie
	rec = doJSON(t, router, http.MethodPost, "/api/logout", "", []*http.Cookie{session})
	if rec.Code != http.StatusOK {
		t.Fatalf("логаут: ожидался 200, получен %d", rec.Code)
	}
	var cleared *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.SessionCookieName {
			cleared = c
		}
	}
	if cleared == nil || cleared.MaxAge != -1 {
		t.Fatal("логаут должен гасить сессионную cookie")
	}

	// Без cookie: check отвечает authenticated:false, защищённый маршрут — 401
	rec = doJSON(t, router, http.MethodGet, "/api/auth/check", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("без cookie ожидался 401, получен %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"authenticated":false`) {
		t.Fatalf("check без cookie должен отвечать authenticated:false: %s", rec.Body.String())
	}
	rec = doJSON(t, router, http.MethodGet, "/api/profile", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("профиль без cookie: ожидался 401, получен %d", rec.Code)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	router := newTestRouter(t)

	doJSON(t, router, http.MethodPost, "/api/register", `{"username":"bob","password":"rightpass"}`, nil)

	rec := doJSON(t, router, http.MethodPost, "/api/login", `{"username":"bob","password":"wrong"}`, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("неверный пароль: ожидался 401, получен %d", rec.Code)
	}
	rec = doJSON(t, router, http.MethodPost, "/api/login", `{"username":"ghost","password":"x"}`, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("неизвестный пользователь: ожидался 401, получен %d", rec.Code)
	}
}

func TestRoleGuards(t *testing.T) {
	router := newTestRouter(t)

	doJSON(t, router, http.MethodPost, "/api/register", `{"username":"carol","password":"pass123"}`, nil)
	rec := doJSON(t, router, http.MethodPost, "/api/login", `{"username":"carol","password":"pass123"}`, nil)

	var session *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.SessionCookieName {
			session = c
		}
	}
	if session == nil {
		t.Fatal("логин не выставил cookie")
	}

	// member не может править чужие учётки
	rec = doJSON(t, router, http.MethodPatch, "/api/users/update", `{"user_id":"someone"}`, []*http.Cookie{session})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("member на /users/update: ожидался 403, получен %d", rec.Code)
	}

	// и не может удалять
	rec = doJSON(t, router, http.MethodDelete, "/api/users", `{"user_id":"someone"}`, []*http.Cookie{session})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("member на DELETE /users: ожидался 403, получен %d", rec.Code)
	}

	// и не видит логи
	rec = doJSON(t, router, http.MethodGet, "/api/admin/logs/days", "", []*http.Cookie{session})
	if rec.Code != http.StatusForbidden {
		t.Fatalf("member на /admin/logs/days: ожидался 403, получен %d", rec.Code)
	}
}
