package signups

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chrismblake-alt/meal-signup-app/internal/domain"
	signupRepo "github.com/chrismblake-alt/meal-signup-app/internal/infra/storage/signup"
	"github.com/chrismblake-alt/meal-signup-app/pkg/ptr"
)

type fakeSignupRepo struct {
	signups []*domain.Signup
	filter  domain.SignupFilter
	byToken map[string]*domain.Signup
}

func (f *fakeSignupRepo) FindWithFilter(ctx context.Context, filter domain.SignupFilter) ([]*domain.Signup, error) {
	f.filter = filter
	return f.signups, nil
}

func (f *fakeSignupRepo) GetByToken(ctx context.Context, token string) (*domain.Signup, error) {
	s, ok := f.byToken[token]
	if !ok {
		return nil, signupRepo.ErrSignupNotFound
	}
	return s, nil
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

func newTestService(repo *fakeSignupRepo) *Service {
	svc := NewService(repo, nopLogger{})
	svc.timeProvider = &fixedTimeProvider{now: time.Date(2026, time.March, 1, 8, 0, 0, 0, time.UTC)}
	return svc
}

func TestListUpcoming_GroupsByDay(t *testing.T) {
	repo := &fakeSignupRepo{
		signups: []*domain.Signup{
			{ID: 1, Name: "Jane", Date: day(2026, time.March, 10), Location: domain.LocationBrickBuilding},
			{ID: 2, Name: "John", Date: day(2026, time.March, 10), Location: domain.LocationYellowFarmhouse},
			{ID: 3, Name: "Mary", Date: day(2026, time.March, 12), Location: domain.LocationBrickBuilding},
		},
	}
	svc := newTestService(repo)

	resp, err := svc.ListUpcoming(context.Background(), nil, nil)

	require.NoError(t, err)
	assert.Equal(t, 3, resp.Total)
	require.Len(t, resp.Days, 2)
	assert.Equal(t, "2026-03-10", resp.Days[0].Date)
	assert.Len(t, resp.Days[0].Signups, 2)
	assert.Equal(t, "2026-03-12", resp.Days[1].Date)

	// Сервис запрашивает только активные с сегодняшнего дня
	require.NotNil(t, repo.filter.StartDate)
	assert.Equal(t, "2026-03-01", domain.DayKey(*repo.filter.StartDate))
	require.NotNil(t, repo.filter.Cancelled)
	assert.False(t, *repo.filter.Cancelled)
}

func TestListUpcoming_ExplicitRange(t *testing.T) {
	repo := &fakeSignupRepo{}
	svc := newTestService(repo)

	start := day(2026, time.April, 1)
	end := day(2026, time.April, 30)
	_, err := svc.ListUpcoming(context.Background(), &start, &end)

	require.NoError(t, err)
	require.NotNil(t, repo.filter.StartDate)
	assert.Equal(t, "2026-04-01", domain.DayKey(*repo.filter.StartDate))
	require.NotNil(t, repo.filter.EndDate)
	assert.Equal(t, "2026-04-30", domain.DayKey(*repo.filter.EndDate))
}

func TestExportCSV(t *testing.T) {
	repo := &fakeSignupRepo{
		signups: []*domain.Signup{
			{
				ID:        1,
				Name:      `Patrick O"Brien`,
				Email:     "patrick@example.com",
				Phone:     "203-555-0101",
				Bringing:  "Chili, cornbread",
				Notes:     ptr.Ptr("Ring the bell"),
				Date:      day(2026, time.March, 10),
				Location:  domain.LocationBrickBuilding,
				CreatedAt: time.Date(2026, time.February, 20, 14, 30, 0, 0, time.UTC),
			},
			{
				ID:        2,
				Name:      "Jane Donor",
				Email:     "jane@example.com",
				Phone:     "203-555-0102",
				Bringing:  "Pizza",
				Date:      day(2026, time.March, 11),
				Location:  domain.LocationYellowFarmhouse,
				CreatedAt: time.Date(2026, time.February, 21, 9, 0, 0, 0, time.UTC),
			},
		},
	}
	svc := newTestService(repo)

	data, err := svc.ExportCSV(context.Background(), nil, nil)

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, "Date,Name,Email,Phone,Bringing,Notes,Signed Up At", lines[0])

	// Кавычки в имени экранируются удвоением, запятая уводит поле в кавычки
	assert.Equal(t, `2026-03-10,"Patrick O""Brien",patrick@example.com,203-555-0101,"Chili, cornbread",Ring the bell,2026-02-20 14:30:00`, lines[1])

	// Пустые notes остаются пустым полем
	assert.Equal(t, "2026-03-11,Jane Donor,jane@example.com,203-555-0102,Pizza,,2026-02-21 09:00:00", lines[2])
}

func TestGetByToken(t *testing.T) {
	repo := &fakeSignupRepo{
		byToken: map[string]*domain.Signup{
			"token-1": {ID: 1, Name: "Jane", Date: day(2026, time.March, 10), Location: domain.LocationBrickBuilding},
		},
	}
	svc := newTestService(repo)

	resp, err := svc.GetByToken(context.Background(), "token-1")
	require.NoError(t, err)
	assert.Equal(t, "Jane", resp.Name)
	assert.Equal(t, "2026-03-10", resp.Date)

	_, err = svc.GetByToken(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSignupNotFound)
}
