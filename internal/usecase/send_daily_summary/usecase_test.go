package send_daily_summary

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chrismblake-alt/meal-signup-app/internal/domain"
	"github.com/chrismblake-alt/meal-signup-app/internal/mail"
)

type fakeSignupRepo struct {
	active    []*domain.Signup
	cancelled []*domain.Signup
	filter    domain.SignupFilter
}

func (f *fakeSignupRepo) FindWithFilter(ctx context.Context, filter domain.SignupFilter) ([]*domain.Signup, error) {
	f.filter = filter
	return f.cancelled, nil
}

func (f *fakeSignupRepo) FindActiveInRange(ctx context.Context, start, end time.Time) ([]*domain.Signup, error) {
	var out []*domain.Signup
	for _, s := range f.active {
		if !s.Date.Before(start) && !s.Date.After(end) {
			out = append(out, s)
		}
	}
	return out, nil
}

type fakeBlockedDateRepo struct {
	blocked []*domain.BlockedDate
}

func (f *fakeBlockedDateRepo) FindInRange(ctx context.Context, start, end time.Time) ([]*domain.BlockedDate, error) {
	return f.blocked, nil
}

type fakeEmailBuilder struct {
	data mail.DailySummaryData
}

func (f *fakeEmailBuilder) DailySummary(d mail.DailySummaryData) (string, string, error) {
	f.data = d
	return "summary", "<html></html>", nil
}

type fakeNotifier struct {
	to      string
	sendErr error
}

func (f *fakeNotifier) Send(ctx context.Context, to, subject, htmlBody string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.to = to
	return nil
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

func newTestUseCase(repo *fakeSignupRepo, blocked *fakeBlockedDateRepo, builder *fakeEmailBuilder, notifier *fakeNotifier, recipient string) *UseCase {
	uc := NewUseCase(repo, blocked, builder, notifier, recipient, time.UTC, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2026, time.March, 9, 6, 0, 0, 0, time.UTC)}
	return uc
}

func TestExecute_BuildsThreeDayDigest(t *testing.T) {
	repo := &fakeSignupRepo{
		active: []*domain.Signup{
			{Name: "Jane", Date: day(2026, time.March, 9), Location: domain.LocationBrickBuilding, Bringing: "Pizza"},
			{Name: "John", Date: day(2026, time.March, 10), Location: domain.LocationYellowFarmhouse, Bringing: "Tacos"},
			{Name: "Mary", Date: day(2026, time.March, 11), Location: domain.LocationBrickBuilding, Bringing: "Chili"},
			// За горизонтом трех дней, но в недельном прогнозе слотов
			{Name: "Paul", Date: day(2026, time.March, 14), Location: domain.LocationBrickBuilding, Bringing: "Soup"},
		},
		cancelled: []*domain.Signup{
			{Name: "Kate", Date: day(2026, time.March, 12), Location: domain.LocationBrickBuilding, Bringing: "Salad"},
		},
	}
	builder := &fakeEmailBuilder{}
	notifier := &fakeNotifier{}

	uc := newTestUseCase(repo, &fakeBlockedDateRepo{}, builder, notifier, "staff@example.com")

	resp, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "staff@example.com", notifier.to)
	assert.Equal(t, 1, resp.TodayCount)
	assert.Equal(t, 1, resp.TomorrowCount)
	assert.Equal(t, 1, resp.DayAfterCount)
	assert.Equal(t, 1, resp.Cancellations)

	require.Len(t, builder.data.Today, 1)
	assert.Equal(t, "Jane", builder.data.Today[0].Name)
	require.Len(t, builder.data.Tomorrow, 1)
	assert.Equal(t, "John", builder.data.Tomorrow[0].Name)
	assert.Equal(t, "Wednesday", builder.data.DayAfterHeading)

	// Отмены запрашиваются за последние сутки
	require.NotNil(t, repo.filter.CancelledAfter)
	assert.Equal(t, time.Date(2026, time.March, 8, 6, 0, 0, 0, time.UTC), *repo.filter.CancelledAfter)
}

func TestExecute_OpenSlotsSkipBlockedDays(t *testing.T) {
	repo := &fakeSignupRepo{
		active: []*domain.Signup{
			// 9 марта занят полностью
			{Date: day(2026, time.March, 9), Location: domain.LocationBrickBuilding},
			{Date: day(2026, time.March, 9), Location: domain.LocationYellowFarmhouse},
		},
	}
	blocked := &fakeBlockedDateRepo{
		blocked: []*domain.BlockedDate{{Date: day(2026, time.March, 10)}},
	}
	builder := &fakeEmailBuilder{}

	uc := newTestUseCase(repo, blocked, builder, &fakeNotifier{}, "staff@example.com")

	resp, err := uc.Execute(context.Background())

	require.NoError(t, err)
	// 7 дней, минус полностью занятый и заблокированный: 5 дней по 2 слота
	assert.Equal(t, 10, resp.OpenSlots)
	for _, row := range builder.data.OpenSlots {
		assert.NotContains(t, row.FormattedDate, "Mar 10")
	}
}

func TestExecute_NoRecipient(t *testing.T) {
	uc := newTestUseCase(&fakeSignupRepo{}, &fakeBlockedDateRepo{}, &fakeEmailBuilder{}, &fakeNotifier{}, "")

	_, err := uc.Execute(context.Background())
	assert.ErrorIs(t, err, ErrNoRecipient)
}

func TestExecute_SendFailure(t *testing.T) {
	notifier := &fakeNotifier{sendErr: errors.New("smtp down")}
	uc := newTestUseCase(&fakeSignupRepo{}, &fakeBlockedDateRepo{}, &fakeEmailBuilder{}, notifier, "staff@example.com")

	_, err := uc.Execute(context.Background())
	assert.ErrorIs(t, err, ErrSendFailed)
}
