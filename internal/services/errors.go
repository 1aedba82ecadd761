package services

import "errors"

var (
	// ErrInvalidCredentials — единое сообщение для «нет такого пользователя»
	// и «неверный пароль», чтобы не подсказывать перебор имён.
	ErrInvalidCredentials = errors.New("неверный логин или пароль")
	// ErrForbidden — аутентифицирован, но прав недостаточно.
	ErrForbidden = errors.New("доступ запрещён")
	// ErrOwnerProtected — операция нацелена на учётку владельца.
	ErrOwnerProtected = errors.New("учётная запись владельца защищена")
	// ErrValidation оборачивает ошибки проверки входных данных.
	ErrValidation = errors.New("ошибка валидации")
)
