package create_batch_signups

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_batch_signups: invalid input data")

	// ErrNoDates возвращается, когда в заявке нет ни одной даты
	ErrNoDates = errors.New("create_batch_signups: at least one date is required")

	// ErrTooManyDates возвращается при превышении лимита дат в одной заявке
	ErrTooManyDates = errors.New("create_batch_signups: too many dates in one request")

	// ErrDatesUnavailable возвращается, когда хотя бы одна дата недоступна
	// Заявка атомарна: ни одна запись из пакета не создается
	ErrDatesUnavailable = errors.New("create_batch_signups: some dates are unavailable")
)

// ErrInternal возвращается при внутренних ошибках usecase
var ErrInternal = errors.New("create_batch_signups: internal error")

// Причины недоступности даты
const (
	ReasonPastDate      = "date is in the past"
	ReasonBlocked       = "date is blocked"
	ReasonFullyBooked   = "all locations are taken"
	ReasonLocationTaken = "location is already taken"
)

// DateConflict описывает одну недоступную дату пакета
type DateConflict struct {
	Date   string // YYYY-MM-DD
	Reason string
}

// DateConflictError ошибка с перечнем недоступных дат
// Сопоставляется с ErrDatesUnavailable через errors.Is, чтобы хендлеры
// могли различать её от остальных ошибок usecase
type DateConflictError struct {
	Conflicts []DateConflict
}

// Error реализует интерфейс error
func (e *DateConflictError) Error() string {
	parts := make([]string, 0, len(e.Conflicts))
	for _, c := range e.Conflicts {
		parts = append(parts, fmt.Sprintf("%s (%s)", c.Date, c.Reason))
	}
	return fmt.Sprintf("%v: %s", ErrDatesUnavailable, strings.Join(parts, ", "))
}

// Is сопоставляет ошибку с ErrDatesUnavailable
func (e *DateConflictError) Is(target error) bool {
	return target == ErrDatesUnavailable
}
