package get_open_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chrismblake-alt/meal-signup-app/internal/domain"
)

type fakeSignupRepo struct {
	active []*domain.Signup
}

func (f *fakeSignupRepo) FindActiveInRange(ctx context.Context, start, end time.Time) ([]*domain.Signup, error) {
	return f.active, nil
}

type fakeBlockedDateRepo struct {
	blocked []*domain.BlockedDate
}

func (f *fakeBlockedDateRepo) FindInRange(ctx context.Context, start, end time.Time) ([]*domain.BlockedDate, error) {
	return f.blocked, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestExecute_DefaultSevenDayForecast(t *testing.T) {
	repo := &fakeSignupRepo{
		active: []*domain.Signup{
			// День 5 прогноза занят полностью
			{Date: day(2026, time.March, 5), Location: domain.LocationBrickBuilding},
			{Date: day(2026, time.March, 5), Location: domain.LocationYellowFarmhouse},
			// День 2 занят наполовину
			{Date: day(2026, time.March, 2), Location: domain.LocationBrickBuilding},
		},
	}
	blocked := &fakeBlockedDateRepo{
		blocked: []*domain.BlockedDate{{Date: day(2026, time.March, 3)}},
	}

	uc := NewUseCase(repo, blocked, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2026, time.March, 1, 8, 0, 0, 0, time.UTC)}

	resp, err := uc.Execute(context.Background(), &Request{})

	require.NoError(t, err)
	require.Len(t, resp.Days, domain.ForecastDays)

	// 1 марта: обе площадки свободны
	assert.Equal(t, "2026-03-01", domain.DayKey(resp.Days[0].Date))
	assert.Equal(t, []domain.Location{domain.LocationBrickBuilding, domain.LocationYellowFarmhouse}, resp.Days[0].OpenLocations)

	// 2 марта: половина занята
	assert.Equal(t, []domain.Location{domain.LocationYellowFarmhouse}, resp.Days[1].OpenLocations)

	// 3 марта: заблокирован
	assert.True(t, resp.Days[2].Blocked)
	assert.Empty(t, resp.Days[2].OpenLocations)
	assert.False(t, resp.Days[2].FullyBooked, "blocked is reported separately from fully booked")

	// 5 марта: полностью занят
	assert.True(t, resp.Days[4].FullyBooked)
	assert.Empty(t, resp.Days[4].OpenLocations)
}

func TestExecute_ExplicitStartAndDays(t *testing.T) {
	uc := NewUseCase(&fakeSignupRepo{}, &fakeBlockedDateRepo{}, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2026, time.March, 1, 8, 0, 0, 0, time.UTC)}

	start := day(2026, time.April, 1)
	resp, err := uc.Execute(context.Background(), &Request{Start: &start, Days: 3})

	require.NoError(t, err)
	require.Len(t, resp.Days, 3)
	assert.Equal(t, "2026-04-01", domain.DayKey(resp.Days[0].Date))
	assert.Equal(t, "2026-04-03", domain.DayKey(resp.Days[2].Date))
}

func TestExecute_DaysOverLimit(t *testing.T) {
	uc := NewUseCase(&fakeSignupRepo{}, &fakeBlockedDateRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Days: domain.MaxForecastDays + 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
