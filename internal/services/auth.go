package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fanhub/internal/logger"
	"fanhub/internal/models"
	"fanhub/internal/repository"
	"fanhub/internal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService struct {
	repo       UserRepo
	jwtSecret  string
	sessionTTL time.Duration
}

func NewAuthService(repo UserRepo, jwtSecret string, sessionTTL time.Duration) *AuthService {
	return &AuthService{repo: repo, jwtSecret: jwtSecret, sessionTTL: sessionTTL}
}

type UserRepo interface {
	IsUsernameTaken(ctx context.Context, username string) (bool, error)
	CreateUser(ctx context.Context, user *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]*models.User, error)
	UpdateUserFields(ctx context.Context, id string, input *models.UpdateUserRequest, passwordHash *string) error
	DeleteUserByID(ctx context.Context, id string) error
}

type RegisterInput struct {
	Username    string
	Password    string
	AuthorName  *string
	Description *string
	AvatarImage *string
}

func (s *AuthService) RegisterUser(ctx context.Context, input RegisterInput) (*models.User, error) {
	log := logger.WithCtx(ctx)
	log.Info("Регистрация пользователя (service)", zap.String("username", input.Username))

	username := strings.TrimSpace(input.Username)
	if username == "" || input.Password == "" {
		return nil, fmt.Errorf("%w: нужны username и password", ErrValidation)
	}

	if exists, err := s.repo.IsUsernameTaken(ctx, username); err != nil {
		log.Error("Ошибка проверки username (service)", zap.Error(err))
		return nil, err
	} else if exists {
		return nil, repository.ErrUsernameTaken
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		log.Error("Ошибка хеширования пароля (service)", zap.Error(err))
		return nil, err
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hashed,
		AuthorName:   input.AuthorName,
		Description:  input.Description,
		AvatarImage:  input.AvatarImage,
		Role:         models.RoleMember,
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		log.Error("Ошибка создания пользователя (service)", zap.Error(err))
		return nil, err
	}

	log.Info("Пользователь зарегистрирован (service)", zap.String("username", username))
	return user, nil
}

// LoginUser проверяет пароль и выдаёт сессионный токен. Наружу одинаковая
// ошибка и для неизвестного username, и для неверного пароля.
func (s *AuthService) LoginUser(ctx context.Context, username, password string) (string, *models.User, error) {
	log := logger.WithCtx(ctx)
	log.Info("Попытка входа (service)", zap.String("username", username))

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		log.Warn("Пользователь не найден (service)", zap.String("username", username))
		return "", nil, ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		log.Warn("Неверный пароль (service)", zap.String("username", username))
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(s.jwtSecret, user.ID, user.Username, user.Role, s.sessionTTL)
	if err != nil {
		log.Error("Ошибка генерации сессионного токена (service)", zap.Error(err))
		return "", nil, err
	}

	log.Info("Вход выполнен (service)", zap.String("username", username), zap.String("role", user.Role))
	return token, user, nil
}

// SessionTTL — срок жизни сессии; им же ограничивается max-age cookie.
func (s *AuthService) SessionTTL() time.Duration {
	return s.sessionTTL
}

func (s *AuthService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return s.repo.GetUserByID(ctx, id)
}

// EnsureOwner создаёт (или повышает) учётку владельца при старте приложения.
// Повторный запуск ничего не меняет.
func (s *AuthService) EnsureOwner(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return nil
	}

	log := logger.WithCtx(ctx)
	existing, err := s.repo.GetByUsername(ctx, username)
	if err == nil {
		if existing.Role == models.RoleOwner {
			return nil
		}
		role := models.RoleOwner
		log.Info("Повышение учётки до владельца (service)", zap.String("username", username))
		return s.repo.UpdateUserFields(ctx, existing.ID, &models.UpdateUserRequest{Role: &role}, nil)
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	log.Info("Создание учётки владельца (service)", zap.String("username", username))
	return s.repo.CreateUser(ctx, &models.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hashed,
		Role:         models.RoleOwner,
	})
}

// EnsureManagerRole повышает заранее известную учётку до менеджера, если она
// существует и ещё не повышена.
func (s *AuthService) EnsureManagerRole(ctx context.Context, username string) error {
	if username == "" {
		return nil
	}
	existing, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil // учётка ещё не создана — не ошибка
	}
	if existing.Role != models.RoleMember {
		return nil
	}
	role := models.RoleManager
	logger.WithCtx(ctx).Info("Повышение учётки до менеджера (service)", zap.String("username", username))
	return s.repo.UpdateUserFields(ctx, existing.ID, &models.UpdateUserRequest{Role: &role}, nil)
}
