package blockeddates

import "errors"

var (
	// ErrBlockedDateNotFound возвращается, когда дата не заблокирована
	ErrBlockedDateNotFound = errors.New("blockeddates service: blocked date not found")

	// ErrAlreadyBlocked возвращается при повторной блокировке той же даты
	ErrAlreadyBlocked = errors.New("blockeddates service: date is already blocked")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("blockeddates service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("blockeddates service: internal error")
)
