package stories

import "errors"

var (
	// ErrStoryNotFound возвращается, когда история не найдена
	ErrStoryNotFound = errors.New("stories service: story not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("stories service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("stories service: internal error")
)
