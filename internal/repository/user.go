package repository

import (
	"context"
	"errors"
	"fmt"

	"fanhub/internal/logger"
	"fanhub/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const pgUniqueViolation = "23505"

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) error {
	logger.WithCtx(ctx).Info("Создание пользователя (repo)", zap.String("username", user.Username))
	query := `
	INSERT INTO users (id, username, password_hash, author_name, description, avatar_image, role)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING created_at, updated_at`
	err := r.db.QueryRow(ctx, query,
		user.ID,
		user.Username,
		user.PasswordHash,
		user.AuthorName,
		user.Description,
		user.AvatarImage,
		user.Role,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			// Проиграли гонку проверка-вставка — наружу тот же конфликт
			return ErrUsernameTaken
		}
		logger.WithCtx(ctx).Error("Ошибка создания пользователя (repo)", zap.Error(err))
	}
	return err
}

func (r *UserRepository) IsUsernameTaken(ctx context.Context, username string) (bool, error) {
	logger.WithCtx(ctx).Debug("Проверка username на уникальность (repo)", zap.String("username", username))
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`
	var exists bool
	err := r.db.QueryRow(ctx, query, username).Scan(&exists)
	if err != nil {
		logger.WithCtx(ctx).Error("Ошибка проверки username (repo)", zap.Error(err))
	}
	return exists, err
}

const userColumns = `id, username, password_hash, author_name, description, avatar_image, role, created_at, updated_at`

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.PasswordHash,
		&u.AuthorName,
		&u.Description,
		&u.AvatarImage,
		&u.Role,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	logger.WithCtx(ctx).Debug("Получение пользователя по username (repo)", zap.String("username", username))
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return scanUser(r.db.QueryRow(ctx, query, username))
}

func (r *UserRepository) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	logger.WithCtx(ctx).Debug("Получение пользователя по ID (repo)", zap.String("user_id", id))
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *UserRepository) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	logger.WithCtx(ctx).Debug("Получение всех пользователей (repo)")
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		logger.WithCtx(ctx).Error("Ошибка получения пользователей (repo)", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			logger.WithCtx(ctx).Error("Ошибка сканирования пользователя (repo)", zap.Error(err))
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// UpdateUserFields собирает частичный UPDATE: nil-поле не трогаем.
// Пароль сюда приходит уже захешированным.
func (r *UserRepository) UpdateUserFields(ctx context.Context, id string, input *models.UpdateUserRequest, passwordHash *string) error {
	logger.WithCtx(ctx).Info("Обновление пользователя (repo)", zap.String("user_id", id))
	query := `UPDATE users SET`
	var args []interface{}
	argNum := 1

	add := func(col string, val interface{}) {
		query += fmt.Sprintf(" %s = $%d,", col, argNum)
		args = append(args, val)
		argNum++
	}

	if input.Username != nil {
		add("username", *input.Username)
	}
	if passwordHash != nil {
		add("password_hash", *passwordHash)
	}
	if input.AuthorName != nil {
		add("author_name", *input.AuthorName)
	}
	if input.Description != nil {
		add("description", *input.Description)
	}
	if input.AvatarImage != nil {
		add("avatar_image", *input.AvatarImage)
	}
	if input.Role != nil {
		add("role", *input.Role)
	}

	if len(args) == 0 {
		logger.WithCtx(ctx).Warn("Нет полей для обновления пользователя (repo)", zap.String("user_id", id))
		return nil // ничего не обновляем
	}

	query += fmt.Sprintf(" updated_at = NOW() WHERE id = $%d", argNum)
	args = append(args, id)

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return ErrUsernameTaken
		}
		logger.WithCtx(ctx).Error("Ошибка обновления пользователя (repo)", zap.Error(err), zap.String("user_id", id))
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *UserRepository) DeleteUserByID(ctx context.Context, id string) error {
	logger.WithCtx(ctx).Info("Удаление пользователя (repo)", zap.String("user_id", id))
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		logger.WithCtx(ctx).Error("Ошибка удаления пользователя (repo)", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
