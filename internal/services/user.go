package services

import (
	"context"
	"fmt"

	"fanhub/internal/logger"
	"fanhub/internal/models"
	"fanhub/internal/repository"
	"fanhub/internal/utils"

	"go.uber.org/zap"
)

// UserService — административные операции над учётками.
// Проверка прав идёт до любой мутации; при отказе данные не меняются.
type UserService struct {
	repo UserRepo
}

func NewUserService(repo UserRepo) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) ListUsers(ctx context.Context) ([]*models.User, error) {
	return s.repo.GetAllUsers(ctx)
}

// UpdateUser — правка чужой учётки менеджером или владельцем.
func (s *UserService) UpdateUser(ctx context.Context, actorID, actorRole, targetID string, input *models.UpdateUserRequest) (*models.User, error) {
	log := logger.WithCtx(ctx)
	log.Info("Обновление учётки (service)", zap.String("target_id", targetID))

	if actorRole != models.RoleManager && actorRole != models.RoleOwner {
		return nil, ErrForbidden
	}

	target, err := s.repo.GetUserByID(ctx, targetID)
	if err != nil {
		log.Warn("Учётка для обновления не найдена (service)", zap.String("target_id", targetID))
		return nil, err
	}

	// Владельца не переименовать, не сбросить пароль и не понизить никому,
	// кроме него самого через собственный профиль.
	if target.Role == models.RoleOwner && target.ID != actorID {
		return nil, ErrOwnerProtected
	}
	if input.Role != nil {
		if target.Role == models.RoleOwner {
			return nil, ErrOwnerProtected
		}
		if *input.Role != models.RoleMember && *input.Role != models.RoleManager {
			return nil, fmt.Errorf("%w: недопустимая роль %q", ErrValidation, *input.Role)
		}
	}

	if input.Username != nil && *input.Username != target.Username {
		taken, err := s.repo.IsUsernameTaken(ctx, *input.Username)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, repository.ErrUsernameTaken
		}
	}

	var passwordHash *string
	if input.Password != nil && *input.Password != "" {
		hashed, err := utils.HashPassword(*input.Password)
		if err != nil {
			log.Error("Ошибка хеширования пароля (service)", zap.Error(err))
			return nil, err
		}
		passwordHash = &hashed
	}

	if err := s.repo.UpdateUserFields(ctx, targetID, input, passwordHash); err != nil {
		log.Error("Ошибка обновления учётки (service)", zap.Error(err), zap.String("target_id", targetID))
		return nil, err
	}

	log.Info("Учётка обновлена (service)", zap.String("target_id", targetID))
	return s.repo.GetUserByID(ctx, targetID)
}

// DeleteUser — удаление учётки. Доступно только владельцу, и учётка владельца
// не удаляется в принципе — даже по его собственному запросу.
func (s *UserService) DeleteUser(ctx context.Context, actorRole, targetID string) error {
	log := logger.WithCtx(ctx)
	log.Info("Удаление учётки (service)", zap.String("target_id", targetID))

	if actorRole != models.RoleOwner {
		return ErrForbidden
	}

	target, err := s.repo.GetUserByID(ctx, targetID)
	if err != nil {
		log.Warn("Учётка для удаления не найдена (service)", zap.String("target_id", targetID))
		return err
	}
	if target.Role == models.RoleOwner {
		return ErrOwnerProtected
	}

	if err := s.repo.DeleteUserByID(ctx, targetID); err != nil {
		log.Error("Ошибка удаления учётки (service)", zap.Error(err), zap.String("target_id", targetID))
		return err
	}

	log.Info("Учётка удалена (service)", zap.String("target_id", targetID))
	return nil
}
