package services

import (
	"context"

	"fanhub/internal/logger"
	"fanhub/internal/models"
	"fanhub/internal/utils"

	"go.uber.org/zap"
)

// ProfileService — операции пользователя над собственной учёткой.
// Username и роль этим путём не меняются.
type ProfileService struct {
	repo UserRepo
}

func NewProfileService(repo UserRepo) *ProfileService {
	return &ProfileService{repo: repo}
}

func (s *ProfileService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	return s.repo.GetUserByID(ctx, userID)
}

func (s *ProfileService) UpdateProfile(ctx context.Context, userID string, input *models.UpdateProfileRequest) (*models.User, error) {
	log := logger.WithCtx(ctx)
	log.Info("Обновление профиля (service)", zap.String("user_id", userID))

	var passwordHash *string
	if input.Password != nil && *input.Password != "" {
		hashed, err := utils.HashPassword(*input.Password)
		if err != nil {
			log.Error("Ошибка хеширования пароля (service)", zap.Error(err))
			return nil, err
		}
		passwordHash = &hashed
	}

	fields := &models.UpdateUserRequest{
		AuthorName:  input.AuthorName,
		Description: input.Description,
		AvatarImage: input.AvatarImage,
	}

	if err := s.repo.UpdateUserFields(ctx, userID, fields, passwordHash); err != nil {
		log.Error("Ошибка обновления профиля (service)", zap.Error(err), zap.String("user_id", userID))
		return nil, err
	}

	log.Info("Профиль обновлён (service)", zap.String("user_id", userID))
	return s.repo.GetUserByID(ctx, userID)
}
