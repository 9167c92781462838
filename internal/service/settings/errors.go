package settings

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном диапазоне
	ErrInvalidInput = errors.New("settings service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("settings service: internal error")
)
