package create_batch_signups

import (
	"time"

	"github.com/chrismblake-alt/meal-signup-app/internal/domain"
)

// Request входные данные пакетной заявки
// Location == nil означает автоматическое распределение по свободным
// площадкам в каждую из дат
type Request struct {
	Name     string
	Email    string
	Phone    string
	Bringing string
	Notes    *string
	Dates    []time.Time
	Location *domain.Location
}

// Assignment одна созданная запись пакета
type Assignment struct {
	ID          int64
	Date        time.Time
	Location    domain.Location
	CancelToken string
}

// Response результат пакетной заявки
type Response struct {
	CreatedCount int
	Assignments  []Assignment
}
