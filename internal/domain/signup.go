package domain

import "time"

// Signup represents one donor commitment to bring a meal on a given
// date to a given location. Rows are never physically deleted: a signup
// is either active or cancelled, and cancellation is irreversible.
type Signup struct {
	ID       int64
	Name     string
	Email    string
	Phone    string
	Bringing string
	Notes    *string

	// Date is a calendar day; the time component is normalized to
	// midday UTC (see NormalizeDate) and carries no meaning.
	Date     time.Time
	Location Location

	Cancelled    bool
	CancelledAt  *time.Time
	ReminderSent bool

	// CancelToken is an unguessable token generated at creation.
	// Possession of the token is the only capability required to
	// cancel the signup. Immutable, never recycled.
	CancelToken string

	CreatedAt time.Time
}

// IsActive returns true if the signup still occupies its slot
func (s *Signup) IsActive() bool {
	return !s.Cancelled
}

// SignupFilter описывает выборку записей из репозитория
// Nil-поля не участвуют в фильтрации
type SignupFilter struct {
	StartDate      *time.Time // включительно, по календарному дню
	EndDate        *time.Time // включительно, по календарному дню
	Cancelled      *bool
	CancelledAfter *time.Time
	ReminderSent   *bool
}
