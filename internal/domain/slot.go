package domain

import "time"

// A slot is a (calendar day, location) pair holding at most one active
// signup. Dates are compared at day granularity only; the canonical
// in-memory representation of a day is midday UTC, which keeps the day
// stable under timezone conversion at either side of midnight.

// NormalizeDate returns the canonical representation of the calendar
// day of t: the same year/month/day at 12:00 UTC
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

// DayKey returns the YYYY-MM-DD key of the calendar day of t
func DayKey(t time.Time) string {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Format(DateFormat)
}

// IsPastDay returns true if the calendar day of date is strictly
// before the calendar day of now. Both are compared in now's location,
// the service's reference timezone.
func IsPastDay(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}

// DayOccupancy maps a day key to the locations already taken by
// active signups on that day
type DayOccupancy map[string][]Location

// BuildOccupancy builds the day -> taken-locations map from a batch of
// signups. Cancelled signups do not occupy slots.
func BuildOccupancy(signups []*Signup) DayOccupancy {
	occ := make(DayOccupancy)
	for _, s := range signups {
		if !s.IsActive() {
			continue
		}
		key := DayKey(s.Date)
		occ[key] = append(occ[key], s.Location)
	}
	return occ
}

// IsTaken returns true if the location already has an active signup on
// the given day
func (o DayOccupancy) IsTaken(day string, loc Location) bool {
	for _, taken := range o[day] {
		if taken == loc {
			return true
		}
	}
	return false
}

// FreeLocations returns the untaken locations for the day in declared
// order, which makes automatic assignment deterministic
func (o DayOccupancy) FreeLocations(day string) []Location {
	free := make([]Location, 0, len(Locations))
	for _, loc := range Locations {
		if !o.IsTaken(day, loc) {
			free = append(free, loc)
		}
	}
	return free
}

// IsFullyBooked returns true if every valid location already has an
// active signup on the given day
func (o DayOccupancy) IsFullyBooked(day string) bool {
	return len(o.FreeLocations(day)) == 0
}

// Take marks the location as occupied on the given day. Used during
// batch resolution so later candidates in the same batch see slots
// claimed by earlier ones.
func (o DayOccupancy) Take(day string, loc Location) {
	o[day] = append(o[day], loc)
}
