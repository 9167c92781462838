package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "midnight UTC",
			in:   time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC),
			want: date(2026, time.March, 5),
		},
		{
			name: "late evening local time keeps the calendar day",
			in:   time.Date(2026, time.March, 5, 23, 45, 0, 0, time.FixedZone("EST", -5*3600)),
			want: date(2026, time.March, 5),
		},
		{
			name: "already normalized",
			in:   date(2026, time.March, 5),
			want: date(2026, time.March, 5),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeDate(tt.in))
		})
	}
}

func TestDayKey(t *testing.T) {
	assert.Equal(t, "2026-03-05", DayKey(date(2026, time.March, 5)))
	assert.Equal(t, "2026-12-31", DayKey(time.Date(2026, time.December, 31, 23, 59, 0, 0, time.UTC)))
}

func TestIsPastDay(t *testing.T) {
	now := time.Date(2026, time.March, 5, 9, 0, 0, 0, time.UTC)

	assert.True(t, IsPastDay(date(2026, time.March, 4), now))
	assert.False(t, IsPastDay(date(2026, time.March, 5), now), "same day is not past")
	assert.False(t, IsPastDay(date(2026, time.March, 6), now))
}

func TestBuildOccupancy_SkipsCancelled(t *testing.T) {
	signups := []*Signup{
		{Date: date(2026, time.March, 5), Location: LocationBrickBuilding},
		{Date: date(2026, time.March, 5), Location: LocationYellowFarmhouse, Cancelled: true},
		{Date: date(2026, time.March, 6), Location: LocationYellowFarmhouse},
	}

	occ := BuildOccupancy(signups)

	assert.True(t, occ.IsTaken("2026-03-05", LocationBrickBuilding))
	assert.False(t, occ.IsTaken("2026-03-05", LocationYellowFarmhouse), "cancelled signup frees the slot")
	assert.True(t, occ.IsTaken("2026-03-06", LocationYellowFarmhouse))
}

func TestDayOccupancy_FreeLocations(t *testing.T) {
	occ := make(DayOccupancy)

	// Пустой день: обе площадки свободны в объявленном порядке
	assert.Equal(t, []Location{LocationBrickBuilding, LocationYellowFarmhouse}, occ.FreeLocations("2026-03-05"))

	occ.Take("2026-03-05", LocationBrickBuilding)
	assert.Equal(t, []Location{LocationYellowFarmhouse}, occ.FreeLocations("2026-03-05"))
	assert.False(t, occ.IsFullyBooked("2026-03-05"))

	occ.Take("2026-03-05", LocationYellowFarmhouse)
	assert.Empty(t, occ.FreeLocations("2026-03-05"))
	assert.True(t, occ.IsFullyBooked("2026-03-05"))
}

func TestParseLocation(t *testing.T) {
	loc, ok := ParseLocation("Brick Building")
	assert.True(t, ok)
	assert.Equal(t, LocationBrickBuilding, loc)

	_, ok = ParseLocation("Garage")
	assert.False(t, ok)
}

func TestSiteSettings_KidCountDisplay(t *testing.T) {
	s := &SiteSettings{KidCountMin: 8, KidCountMax: 12}
	assert.Equal(t, "8-12", s.KidCountDisplay())

	s = &SiteSettings{KidCountMin: 10, KidCountMax: 10}
	assert.Equal(t, "10", s.KidCountDisplay())
}
