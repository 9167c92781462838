package create_batch_signups

import (
	"fmt"
	"time"

	"github.com/chrismblake-alt/meal-signup-app/internal/domain"
	createBatchSignups "github.com/chrismblake-alt/meal-signup-app/internal/usecase/create_batch_signups"
)

// CreateBatchSignupsRequest HTTP запрос на пакетную заявку
type CreateBatchSignupsRequest struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Phone    string   `json:"phone"`
	Bringing string   `json:"bringing"`
	Notes    *string  `json:"notes"`
	Dates    []string `json:"dates"`
	Location *string  `json:"location"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBatchSignupsRequest) ToUseCaseRequest() (*createBatchSignups.Request, error) {
	dates := make([]time.Time, 0, len(r.Dates))
	for _, raw := range r.Dates {
		date, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", raw, err)
		}
		dates = append(dates, date)
	}

	var location *domain.Location
	if r.Location != nil && *r.Location != "" {
		loc, ok := domain.ParseLocation(*r.Location)
		if !ok {
			return nil, fmt.Errorf("unknown location %q", *r.Location)
		}
		location = &loc
	}

	return &createBatchSignups.Request{
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		Bringing: r.Bringing,
		Notes:    r.Notes,
		Dates:    dates,
		Location: location,
	}, nil
}

// AssignmentResponse одна созданная запись в HTTP ответе
type AssignmentResponse struct {
	ID          int64  `json:"id"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	CancelToken string `json:"cancelToken"`
}

// CreateBatchSignupsResponse HTTP ответ пакетной заявки
type CreateBatchSignupsResponse struct {
	CreatedCount int                  `json:"createdCount"`
	Assignments  []AssignmentResponse `json:"assignments"`
}

// FailingDate одна недоступная дата в ответе 409
type FailingDate struct {
	Date   string `json:"date"`
	Reason string `json:"reason"`
}

// ConflictResponse HTTP ответ при недоступных датах
type ConflictResponse struct {
	Error        string        `json:"error"`
	FailingDates []FailingDate `json:"failingDates"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *createBatchSignups.Response) *CreateBatchSignupsResponse {
	assignments := make([]AssignmentResponse, 0, len(resp.Assignments))
	for _, a := range resp.Assignments {
		assignments = append(assignments, AssignmentResponse{
			ID:          a.ID,
			Date:        domain.DayKey(a.Date),
			Location:    string(a.Location),
			CancelToken: a.CancelToken,
		})
	}

	return &CreateBatchSignupsResponse{
		CreatedCount: resp.CreatedCount,
		Assignments:  assignments,
	}
}
