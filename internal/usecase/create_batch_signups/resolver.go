package create_batch_signups

import (
	"time"

	"github.com/chrismblake-alt/meal-signup-app/internal/domain"
)

// resolvedSlot одна дата пакета с назначенной площадкой
type resolvedSlot struct {
	Date     time.Time
	Location domain.Location
}

// resolveSlots распределяет даты пакета по площадкам поверх текущей
// занятости. Чисто вычислительная функция: занятость и заблокированные
// даты читаются заранее, внутри транзакции.
//
// Каждая дата проверяется независимо, но занятые внутри пакета слоты
// учитываются для последующих дат. Любой конфликт отменяет весь пакет.
func resolveSlots(
	dates []time.Time,
	requested *domain.Location,
	blocked map[string]struct{},
	occ domain.DayOccupancy,
	now time.Time,
) ([]resolvedSlot, []DateConflict) {
	slots := make([]resolvedSlot, 0, len(dates))
	var conflicts []DateConflict

	for _, date := range dates {
		key := domain.DayKey(date)

		if domain.IsPastDay(date, now) {
			conflicts = append(conflicts, DateConflict{Date: key, Reason: ReasonPastDate})
			continue
		}

		if _, isBlocked := blocked[key]; isBlocked {
			conflicts = append(conflicts, DateConflict{Date: key, Reason: ReasonBlocked})
			continue
		}

		if requested != nil {
			if occ.IsTaken(key, *requested) {
				conflicts = append(conflicts, DateConflict{Date: key, Reason: ReasonLocationTaken})
				continue
			}
			occ.Take(key, *requested)
			slots = append(slots, resolvedSlot{Date: date, Location: *requested})
			continue
		}

		// Автоматическое распределение: первая свободная площадка
		// в объявленном порядке
		free := occ.FreeLocations(key)
		if len(free) == 0 {
			conflicts = append(conflicts, DateConflict{Date: key, Reason: ReasonFullyBooked})
			continue
		}

		occ.Take(key, free[0])
		slots = append(slots, resolvedSlot{Date: date, Location: free[0]})
	}

	return slots, conflicts
}

// blockedSet строит множество ключей заблокированных дат
func blockedSet(blockedDates []*domain.BlockedDate) map[string]struct{} {
	set := make(map[string]struct{}, len(blockedDates))
	for _, b := range blockedDates {
		set[domain.DayKey(b.Date)] = struct{}{}
	}
	return set
}

// dateRange возвращает минимальную и максимальную даты пакета
func dateRange(dates []time.Time) (time.Time, time.Time) {
	minDate, maxDate := dates[0], dates[0]
	for _, d := range dates[1:] {
		if d.Before(minDate) {
			minDate = d
		}
		if d.After(maxDate) {
			maxDate = d
		}
	}
	return minDate, maxDate
}
