package cancel_signup

import "errors"

var (
	// ErrSignupNotFound возвращается, когда токен не соответствует ни одной заявке
	ErrSignupNotFound = errors.New("cancel_signup: signup not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("cancel_signup: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_signup: internal error")
)
