package story

import "errors"

var (
	// ErrStoryNotFound возвращается, когда история не найдена
	ErrStoryNotFound = errors.New("story.repository: story not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("story.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("story.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("story.repository: failed to scan row")
)
