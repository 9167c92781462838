package get_availability

import (
	"github.com/chrismblake-alt/meal-signup-app/internal/domain"
	getOpenSlots "github.com/chrismblake-alt/meal-signup-app/internal/usecase/get_open_slots"
)

// DayResponse доступность одного дня в HTTP ответе
type DayResponse struct {
	Date          string   `json:"date"`
	Blocked       bool     `json:"blocked"`
	FullyBooked   bool     `json:"fullyBooked"`
	OpenLocations []string `json:"openLocations"`
}

// GetAvailabilityResponse HTTP ответ прогноза доступности
type GetAvailabilityResponse struct {
	Days []DayResponse `json:"days"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *getOpenSlots.Response) *GetAvailabilityResponse {
	days := make([]DayResponse, 0, len(resp.Days))
	for _, d := range resp.Days {
		open := make([]string, 0, len(d.OpenLocations))
		for _, loc := range d.OpenLocations {
			open = append(open, string(loc))
		}
		days = append(days, DayResponse{
			Date:          domain.DayKey(d.Date),
			Blocked:       d.Blocked,
			FullyBooked:   d.FullyBooked,
			OpenLocations: open,
		})
	}
	return &GetAvailabilityResponse{Days: days}
}
