package repository

import "errors"

var (
	// ErrNotFound — запись с таким id/username отсутствует.
	ErrNotFound = errors.New("запись не найдена")
	// ErrUsernameTaken — нарушение уникальности username (схема — страховка
	// от гонки register/rename, см. unique-индекс в миграции).
	ErrUsernameTaken = errors.New("имя пользователя уже занято")
)
