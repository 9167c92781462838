package auth

import "errors"

var (
	// ErrInvalidCredentials возвращается при неверной паре email/пароль
	// Одна ошибка для неизвестного email и неверного пароля, чтобы не
	// раскрывать существование учетной записи
	ErrInvalidCredentials = errors.New("auth service: invalid credentials")

	// ErrInvalidSession возвращается при неизвестном или истекшем токене сессии
	ErrInvalidSession = errors.New("auth service: invalid session")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("auth service: internal error")
)
