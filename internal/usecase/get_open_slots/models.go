package get_open_slots

import (
	"time"

	"github.com/chrismblake-alt/meal-signup-app/internal/domain"
)

// Request параметры прогноза свободных слотов
// Start == nil означает "с сегодняшнего дня", Days == 0 — горизонт
// по умолчанию (domain.ForecastDays)
type Request struct {
	Start *time.Time
	Days  int
}

// DayAvailability доступность одного календарного дня
type DayAvailability struct {
	Date          time.Time
	Blocked       bool
	OpenLocations []domain.Location
	FullyBooked   bool
}

// Response результат прогноза
type Response struct {
	Days []DayAvailability
}
