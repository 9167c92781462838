package send_reminders

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
	due      []*domain.Signup
	filter   domain.SignupFilter
	marked   []int64
	markErr  error
}

func (f *fakeSignupRepo) FindWithFilter(ctx context.Context, filter domain.SignupFilter) ([]*domain.Signup, error) {
	f.filter = filter
	return f.due, nil
}

func (f *fakeSignupRepo) MarkReminderSent(ctx context.Context, id int64) error {
	if f.markErr != nil {
		return f.markErr
	}
	f.marked = append(f.marked, id)
	return nil
}

type fakeSettings struct{}

func (f *fakeSettings) Current(ctx context.Context) (*domain.SiteSettings, error) {
	return &domain.SiteSettings{KidCountMin: 8, KidCountMax: 12}, nil
}

type fakeEmailBuilder struct{}

func (f *fakeEmailBuilder) Reminder(d mail.ReminderData) (string, string, error) {
	return "reminder", "<html></html>", nil
}

func (f *fakeEmailBuilder) CancelURL(token string) string {
	return "http://example.com/cancel/" + token
}

type fakeNotifier struct {
	sent    []string
	failFor map[string]error
}

func (f *fakeNotifier) Send(ctx context.Context, to, subject, htmlBody string) error {
	if err, ok := f.failFor[to]; ok {
		return err
	}
	f.sent = append(f.sent, to)
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

func newTestUseCase(repo *fakeSignupRepo, notifier *fakeNotifier) *UseCase {
	uc := NewUseCase(repo, &fakeSettings{}, &fakeEmailBuilder{}, notifier, time.UTC, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2026, time.March, 9, 7, 0, 0, 0, time.UTC)}
	return uc
}

func TestExecute_SendsRemindersForTomorrow(t *testing.T) {
	repo := &fakeSignupRepo{
		due: []*domain.Signup{
			{ID: 1, Email: "a@example.com", Date: time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)},
			{ID: 2, Email: "b@example.com", Date: time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)},
		},
	}
	notifier := &fakeNotifier{}
	uc := newTestUseCase(repo, notifier)

	resp, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Processed)
	assert.Equal(t, 2, resp.Sent)
	assert.Equal(t, 0, resp.Failed)
	assert.Equal(t, []int64{1, 2}, repo.marked)

	// Фильтр запрашивает только завтрашние активные без отметки
	require.NotNil(t, repo.filter.StartDate)
	assert.Equal(t, "2026-03-10", domain.DayKey(*repo.filter.StartDate))
	require.NotNil(t, repo.filter.ReminderSent)
	assert.False(t, *repo.filter.ReminderSent)
	require.NotNil(t, repo.filter.Cancelled)
	assert.False(t, *repo.filter.Cancelled)
}

func TestExecute_FailedSendIsNotMarked(t *testing.T) {
	repo := &fakeSignupRepo{
		due: []*domain.Signup{
			{ID: 1, Email: "ok@example.com", Date: time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)},
			{ID: 2, Email: "down@example.com", Date: time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)},
		},
	}
	notifier := &fakeNotifier{failFor: map[string]error{"down@example.com": errors.New("smtp down")}}
	uc := newTestUseCase(repo, notifier)

	resp, err := uc.Execute(context.Background())

	require.NoError(t, err, "one failed email does not fail the whole run")
	assert.Equal(t, 1, resp.Sent)
	assert.Equal(t, 1, resp.Failed)

	// Сбойная заявка не отмечена и попадет в следующий прогон
	assert.Equal(t, []int64{1}, repo.marked)
}

func TestExecute_NothingDue(t *testing.T) {
	uc := newTestUseCase(&fakeSignupRepo{}, &fakeNotifier{})

	resp, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, resp.Processed)
	assert.Empty(t, resp.Results)
}
