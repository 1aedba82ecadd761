package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"fanhub/internal/models"
	"fanhub/internal/repository"
	"fanhub/internal/utils"
)

// Мок-репозиторий (заглушка)
type mockUserRepo struct {
	users    map[string]*models.User // по username
	lastUser *models.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*models.User)}
}

func (m *mockUserRepo) IsUsernameTaken(_ context.Context, username string) (bool, error) {
	_, exists := m.users[username]
	return exists, nil
}

func (m *mockUserRepo) CreateUser(_ context.Context, user *models.User) error {
	if _, exists := m.users[user.Username]; exists {
		return repository.ErrUsernameTaken
	}
	m.users[user.Username] = user
	m.lastUser = user
	return nil
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	u, ok := m.users[username]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) GetUserByID(_ context.Context, id string) (*models.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *mockUserRepo) GetAllUsers(_ context.Context) ([]*models.User, error) {
	var all []*models.User
	for _, u := range m.users {
		all = append(all, u)
	}
	return all, nil
}

func (m *mockUserRepo) UpdateUserFields(_ context.Context, id string, input *models.UpdateUserRequest, passwordHash *string) error {
	for _, u := range m.users {
		if u.ID != id {
			continue
		}
		if input.Username != nil {
			delete(m.users, u.Username)
			u.Username = *input.Username
			m.users[u.Username] = u
		}
		if passwordHash != nil {
			u.PasswordHash = *passwordHash
		}
		if input.AuthorName != nil {
			u.AuthorName = input.AuthorName
		}
		if input.Description != nil {
			u.Description = input.Description
		}
		if input.AvatarImage != nil {
			u.AvatarImage = input.AvatarImage
		}
		if input.Role != nil {
			u.Role = *input.Role
		}
		return nil
	}
	return repository.ErrNotFound
}

func (m *mockUserRepo) DeleteUserByID(_ context.Context, id string) error {
	for name, u := range m.users {
		if u.ID == id {
			delete(m.users, name)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *mockUserRepo) add(id, username, password, role string) *models.User {
	hashed, _ := utils.HashPassword(password)
	u := &models.User{ID: id, Username: username, PasswordHash: hashed, Role: role}
	m.users[username] = u
	return u
}

func TestRegisterUser(t *testing.T) {
	repo := newMockUserRepo()
	service := NewAuthService(repo, "testsecret", 168*time.Hour)

	user, err := service.RegisterUser(context.Background(), RegisterInput{
		Username: "testuser",
		Password: "secret",
	})
	if err != nil {
		t.Fatalf("ошибка регистрации: %v", err)
	}

	if repo.lastUser == nil || repo.lastUser.PasswordHash == "" {
		t.Fatal("пароль не захеширован или пользователь не сохранён")
	}
	if repo.lastUser.PasswordHash == "secret" {
		t.Fatal("пароль сохранён открытым текстом")
	}
	if user.Role != models.RoleMember {
		t.Fatalf("новый пользователь должен получить роль member, получил %q", user.Role)
	}
	if user.ID == "" {
		t.Fatal("пользователю не присвоен ID")
	}
}

func TestRegisterUser_DuplicateUsername(t *testing.T) {
	repo := newMockUserRepo()
	service := NewAuthService(repo, "testsecret", 168*time.Hour)

	repo.add("u1", "taken", "pass", models.RoleMember)

	_, err := service.RegisterUser(context.Background(), RegisterInput{Username: "taken", Password: "x"})
	if !errors.Is(err, repository.ErrUsernameTaken) {
		t.Fatalf("ожидался ErrUsernameTaken, получено: %v", err)
	}
}

func TestRegisterUser_Validation(t *testing.T) {
	repo := newMockUserRepo()
	service := NewAuthService(repo, "testsecret", 168*time.Hour)

	_, err := service.RegisterUser(context.Background(), RegisterInput{Username: "   ", Password: ""})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("ожидался ErrValidation, получено: %v", err)
	}
}

func TestLoginUser_Success(t *testing.T) {
	repo := newMockUserRepo()
	service := NewAuthService(repo, "testsecret", 168*time.Hour)

	repo.add("u1", "testuser", "secret", models.RoleMember)

	token, user, err := service.LoginUser(context.Background(), "testuser", "secret")
	if err != nil {
		t.Fatalf("ошибка логина: %v", err)
	}
	if token == "" {
		t.Fatal("токен не сгенерирован")
	}
	if user.Username != "testuser" {
		t.Fatalf("вернулся не тот пользователь: %q", user.Username)
	}

	claims, err := utils.ParseToken("testsecret", token)
	if err != nil {
		t.Fatalf("выданный токен не проходит проверку: %v", err)
	}
	if claims.UserID != "u1" || claims.Role != models.RoleMember {
		t.Fatalf("неверные claims: %+v", claims)
	}
}

func TestLoginUser_Fail(t *testing.T) {
	repo := newMockUserRepo()
	service := NewAuthService(repo, "testsecret", 168*time.Hour)

	repo.add("u1", "testuser", "secret", models.RoleMember)

	// Неизвестный username и неверный пароль дают одну и ту же ошибку
	if _, _, err := service.LoginUser(context.Background(), "unknown", "pass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("ожидался ErrInvalidCredentials для неизвестного пользователя, получено: %v", err)
	}
	if _, _, err := service.LoginUser(context.Background(), "testuser", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("ожидался ErrInvalidCredentials для неверного пароля, получено: %v", err)
	}
}

func TestEnsureOwner(t *testing.T) {
	repo := newMockUserRepo()
	service := NewAuthService(repo, "testsecret", 168*time.Hour)

	if err := service.EnsureOwner(context.Background(), "boss", "ownerpass"); err != nil {
		t.Fatalf("ошибка создания владельца: %v", err)
	}
	owner, err := repo.GetByUsername(context.Background(), "boss")
	if err != nil || owner.Role != models.RoleOwner {
		t.Fatalf("владелец не создан: %v, %+v", err, owner)
	}

	// Повторный вызов ничего не ломает
	if err := service.EnsureOwner(context.Background(), "boss", "ownerpass"); err != nil {
		t.Fatalf("повторный EnsureOwner должен быть no-op: %v", err)
	}
}

func TestEnsureManagerRole(t *testing.T) {
	repo := newMockUserRepo()
	service := NewAuthService(repo, "testsecret", 168*time.Hour)

	// Учётки нет — тихий no-op
	if err := service.EnsureManagerRole(context.Background(), "mgr"); err != nil {
		t.Fatalf("отсутствие учётки не должно быть ошибкой: %v", err)
	}

	repo.add("u2", "mgr", "pass", models.RoleMember)
	if err := service.EnsureManagerRole(context.Background(), "mgr"); err != nil {
		t.Fatalf("ошибка повышения менеджера: %v", err)
	}
	u, _ := repo.GetByUsername(context.Background(), "mgr")
	if u.Role != models.RoleManager {
		t.Fatalf("учётка не повышена: %q", u.Role)
	}
}
