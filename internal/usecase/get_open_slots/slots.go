package get_open_slots

import (
	"time"

	"github.com/chrismblake-alt/meal-signup-app/internal/domain"
)

// buildForecast строит прогноз доступности по дням поверх занятости и
// заблокированных дат. Чисто вычислительная функция.
func buildForecast(
	start time.Time,
	days int,
	blocked map[string]struct{},
	occ domain.DayOccupancy,
) []DayAvailability {
	forecast := make([]DayAvailability, 0, days)

	for i := 0; i < days; i++ {
		date := domain.NormalizeDate(start.AddDate(0, 0, i))
		key := domain.DayKey(date)

		if _, isBlocked := blocked[key]; isBlocked {
			forecast = append(forecast, DayAvailability{
				Date:          date,
				Blocked:       true,
				OpenLocations: []domain.Location{},
			})
			continue
		}

		free := occ.FreeLocations(key)
		forecast = append(forecast, DayAvailability{
			Date:          date,
			OpenLocations: free,
			FullyBooked:   len(free) == 0,
		})
	}

	return forecast
}

// blockedSet строит множество ключей заблокированных дат
func blockedSet(blockedDates []*domain.BlockedDate) map[string]struct{} {
	set := make(map[string]struct{}, len(blockedDates))
	for _, b := range blockedDates {
		set[domain.DayKey(b.Date)] = struct{}{}
	}
	return set
}
