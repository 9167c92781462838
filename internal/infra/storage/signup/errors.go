package signup

import "errors"

var (
	// ErrSignupNotFound возвращается, когда запись не найдена
	ErrSignupNotFound = errors.New("signup.repository: signup not found")

	// ErrSlotTaken возвращается, когда уникальный индекс (дата, локация)
	// отклонил вставку — слот занят конкурентной записью
	ErrSlotTaken = errors.New("signup.repository: slot already taken")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("signup.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("signup.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("signup.repository: failed to scan row")
)
