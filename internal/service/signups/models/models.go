package models

import (
	"github.com/chrismblake-alt/meal-signup-app/internal/domain"
)

// SignupResponse одна заявка в ответе API
type SignupResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	Bringing  string  `json:"bringing"`
	Notes     *string `json:"notes,omitempty"`
	Date      string  `json:"date"`
	Location  string  `json:"location"`
	Cancelled bool    `json:"cancelled"`
	CreatedAt string  `json:"createdAt"`
}

// DayGroup заявки одного календарного дня
type DayGroup struct {
	Date    string           `json:"date"`
	Signups []SignupResponse `json:"signups"`
}

// UpcomingResponse предстоящие заявки, сгруппированные по дням
type UpcomingResponse struct {
	Days  []DayGroup `json:"days"`
	Total int        `json:"total"`
}

// FromDomainSignup конвертирует domain.Signup в SignupResponse
func FromDomainSignup(s *domain.Signup) SignupResponse {
	return SignupResponse{
		ID:        s.ID,
		Name:      s.Name,
		Email:     s.Email,
		Phone:     s.Phone,
		Bringing:  s.Bringing,
		Notes:     s.Notes,
		Date:      domain.DayKey(s.Date),
		Location:  string(s.Location),
		Cancelled: s.Cancelled,
		CreatedAt: s.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// GroupByDay группирует заявки по календарным дням, сохраняя порядок
// следования входного среза
func GroupByDay(signups []*domain.Signup) *UpcomingResponse {
	resp := &UpcomingResponse{Days: []DayGroup{}, Total: len(signups)}

	index := make(map[string]int)
	for _, s := range signups {
		key := domain.DayKey(s.Date)
		i, ok := index[key]
		if !ok {
			i = len(resp.Days)
			index[key] = i
			resp.Days = append(resp.Days, DayGroup{Date: key})
		}
		resp.Days[i].Signups = append(resp.Days[i].Signups, FromDomainSignup(s))
	}

	return resp
}
