package signups

import "errors"

var (
	// ErrSignupNotFound возвращается, когда заявка не найдена
	ErrSignupNotFound = errors.New("signups service: signup not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("signups service: internal error")
)
