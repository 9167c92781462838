package create_batch_signups

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chrismblake-alt/meal-signup-app/internal/domain"
	signupRepo "github.com/chrismblake-alt/meal-signup-app/internal/infra/storage/signup"
	"github.com/chrismblake-alt/meal-signup-app/internal/mail"
	"github.com/chrismblake-alt/meal-signup-app/pkg/ptr"
)

// --- fakes ---

type fakeSignupRepo struct {
	active   []*domain.Signup
	createFn func(ctx context.Context, s *domain.Signup) (*domain.Signup, error)
	created  []*domain.Signup
}

func (f *fakeSignupRepo) Create(ctx context.Context, s *domain.Signup) (*domain.Signup, error) {
	if f.createFn != nil {
		return f.createFn(ctx, s)
	}
	saved := *s
	saved.ID = int64(len(f.created) + 1)
	f.created = append(f.created, &saved)
	return &saved, nil
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

type fakeSettings struct{}

func (f *fakeSettings) Current(ctx context.Context) (*domain.SiteSettings, error) {
	return &domain.SiteSettings{ID: domain.SettingsID, KidCountMin: 8, KidCountMax: 12}, nil
}

type fakeEmailBuilder struct {
	built []mail.BatchConfirmationData
}

func (f *fakeEmailBuilder) BatchConfirmation(d mail.BatchConfirmationData) (string, string, error) {
	f.built = append(f.built, d)
	return "subject", "<html></html>", nil
}

func (f *fakeEmailBuilder) CancelURL(token string) string {
	return "http://example.com/cancel/" + token
}

type fakeNotifier struct {
	sent    []string
	sendErr error
}

func (f *fakeNotifier) Send(ctx context.Context, to, subject, htmlBody string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, to)
	return nil
}

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type seqTokenGenerator struct {
	n int
}

func (g *seqTokenGenerator) NewToken() string {
	g.n++
	return fmt.Sprintf("token-%d", g.n)
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

// --- helpers ---

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func validRequest(dates ...time.Time) *Request {
	return &Request{
		Name:     "Jane Donor",
		Email:    "jane@example.com",
		Phone:    "203-555-0101",
		Bringing: "Lasagna and salad",
		Dates:    dates,
	}
}

func newTestUseCase(repo *fakeSignupRepo, blocked *fakeBlockedDateRepo, notifier *fakeNotifier) (*UseCase, *fakeEmailBuilder, *fakeTxManager) {
	builder := &fakeEmailBuilder{}
	txMgr := &fakeTxManager{}

	uc := NewUseCase(repo, blocked, &fakeSettings{}, builder, notifier, txMgr, nopLogger{})
	uc.tokenGenerator = &seqTokenGenerator{}
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)}

	return uc, builder, txMgr
}

// --- tests ---

func TestExecute_AutoAssignsFirstFreeLocation(t *testing.T) {
	repo := &fakeSignupRepo{}
	notifier := &fakeNotifier{}
	uc, builder, txMgr := newTestUseCase(repo, &fakeBlockedDateRepo{}, notifier)

	resp, err := uc.Execute(context.Background(), validRequest(day(2026, time.March, 10), day(2026, time.March, 11)))

	require.NoError(t, err)
	assert.Equal(t, 2, resp.CreatedCount)
	assert.Equal(t, 1, txMgr.calls)

	// Обе даты свободны: автораспределение выбирает первую площадку
	assert.Equal(t, domain.LocationBrickBuilding, resp.Assignments[0].Location)
	assert.Equal(t, domain.LocationBrickBuilding, resp.Assignments[1].Location)
	assert.Equal(t, "token-1", resp.Assignments[0].CancelToken)
	assert.Equal(t, "token-2", resp.Assignments[1].CancelToken)

	// Письмо-подтверждение одно на весь пакет
	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "jane@example.com", notifier.sent[0])
	require.Len(t, builder.built, 1)
	assert.Equal(t, "8-12", builder.built[0].KidCountDisplay)
	assert.Len(t, builder.built[0].Dates, 2)
}

func TestExecute_AutoAssignsSecondLocationWhenFirstTaken(t *testing.T) {
	repo := &fakeSignupRepo{
		active: []*domain.Signup{
			{Date: day(2026, time.March, 10), Location: domain.LocationBrickBuilding},
		},
	}
	uc, _, _ := newTestUseCase(repo, &fakeBlockedDateRepo{}, &fakeNotifier{})

	resp, err := uc.Execute(context.Background(), validRequest(day(2026, time.March, 10)))

	require.NoError(t, err)
	require.Equal(t, 1, resp.CreatedCount)
	assert.Equal(t, domain.LocationYellowFarmhouse, resp.Assignments[0].Location)
}

func TestExecute_RequestedLocationTaken(t *testing.T) {
	repo := &fakeSignupRepo{
		active: []*domain.Signup{
			{Date: day(2026, time.March, 10), Location: domain.LocationBrickBuilding},
		},
	}
	uc, _, _ := newTestUseCase(repo, &fakeBlockedDateRepo{}, &fakeNotifier{})

	req := validRequest(day(2026, time.March, 10))
	req.Location = ptr.Ptr(domain.LocationBrickBuilding)

	_, err := uc.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrDatesUnavailable)

	var conflict *DateConflictError
	require.ErrorAs(t, err, &conflict)
	require.Len(t, conflict.Conflicts, 1)
	assert.Equal(t, "2026-03-10", conflict.Conflicts[0].Date)
	assert.Equal(t, ReasonLocationTaken, conflict.Conflicts[0].Reason)
	assert.Empty(t, repo.created, "no signups are created when any date conflicts")
}

func TestExecute_BlockedDateFailsWholeBatch(t *testing.T) {
	repo := &fakeSignupRepo{}
	blocked := &fakeBlockedDateRepo{
		blocked: []*domain.BlockedDate{{Date: day(2026, time.March, 11)}},
	}
	notifier := &fakeNotifier{}
	uc, _, _ := newTestUseCase(repo, blocked, notifier)

	_, err := uc.Execute(context.Background(), validRequest(
		day(2026, time.March, 10),
		day(2026, time.March, 11),
	))

	var conflict *DateConflictError
	require.ErrorAs(t, err, &conflict)
	require.Len(t, conflict.Conflicts, 1)
	assert.Equal(t, "2026-03-11", conflict.Conflicts[0].Date)
	assert.Equal(t, ReasonBlocked, conflict.Conflicts[0].Reason)

	// Пакет атомарен: свободная дата тоже не создается
	assert.Empty(t, repo.created)
	assert.Empty(t, notifier.sent)
}

func TestExecute_FullyBookedDay(t *testing.T) {
	repo := &fakeSignupRepo{
		active: []*domain.Signup{
			{Date: day(2026, time.March, 10), Location: domain.LocationBrickBuilding},
			{Date: day(2026, time.March, 10), Location: domain.LocationYellowFarmhouse},
		},
	}
	uc, _, _ := newTestUseCase(repo, &fakeBlockedDateRepo{}, &fakeNotifier{})

	_, err := uc.Execute(context.Background(), validRequest(day(2026, time.March, 10)))

	var conflict *DateConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, ReasonFullyBooked, conflict.Conflicts[0].Reason)
}

func TestExecute_PastDateRejected(t *testing.T) {
	uc, _, _ := newTestUseCase(&fakeSignupRepo{}, &fakeBlockedDateRepo{}, &fakeNotifier{})

	_, err := uc.Execute(context.Background(), validRequest(day(2026, time.February, 28)))

	var conflict *DateConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, ReasonPastDate, conflict.Conflicts[0].Reason)
}

func TestExecute_DuplicateDatesCollapse(t *testing.T) {
	repo := &fakeSignupRepo{}
	uc, _, _ := newTestUseCase(repo, &fakeBlockedDateRepo{}, &fakeNotifier{})

	// Один и тот же день в разных представлениях
	resp, err := uc.Execute(context.Background(), validRequest(
		day(2026, time.March, 10),
		time.Date(2026, time.March, 10, 23, 30, 0, 0, time.UTC),
	))

	require.NoError(t, err)
	assert.Equal(t, 1, resp.CreatedCount)
}

func TestExecute_RequestedLocationHonored(t *testing.T) {
	repo := &fakeSignupRepo{}
	uc, _, _ := newTestUseCase(repo, &fakeBlockedDateRepo{}, &fakeNotifier{})

	req := validRequest(day(2026, time.March, 10))
	req.Location = ptr.Ptr(domain.LocationYellowFarmhouse)

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	require.Equal(t, 1, resp.CreatedCount)
	assert.Equal(t, domain.LocationYellowFarmhouse, resp.Assignments[0].Location)
}

func TestExecute_SlotTakenAtCommit(t *testing.T) {
	repo := &fakeSignupRepo{
		createFn: func(ctx context.Context, s *domain.Signup) (*domain.Signup, error) {
			return nil, signupRepo.ErrSlotTaken
		},
	}
	uc, _, _ := newTestUseCase(repo, &fakeBlockedDateRepo{}, &fakeNotifier{})

	_, err := uc.Execute(context.Background(), validRequest(day(2026, time.March, 10)))

	var conflict *DateConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, ReasonLocationTaken, conflict.Conflicts[0].Reason)
}

func TestExecute_EmailFailureDoesNotFailBooking(t *testing.T) {
	repo := &fakeSignupRepo{}
	notifier := &fakeNotifier{sendErr: fmt.Errorf("smtp down")}
	uc, _, _ := newTestUseCase(repo, &fakeBlockedDateRepo{}, notifier)

	resp, err := uc.Execute(context.Background(), validRequest(day(2026, time.March, 10)))

	require.NoError(t, err, "booking is committed even when the confirmation email fails")
	assert.Equal(t, 1, resp.CreatedCount)
}

func TestExecute_TooManyDates(t *testing.T) {
	uc, _, _ := newTestUseCase(&fakeSignupRepo{}, &fakeBlockedDateRepo{}, &fakeNotifier{})

	dates := make([]time.Time, domain.MaxBatchDates+1)
	for i := range dates {
		dates[i] = day(2026, time.March, 1).AddDate(0, 0, i+1)
	}

	_, err := uc.Execute(context.Background(), validRequest(dates...))
	assert.ErrorIs(t, err, ErrTooManyDates)
}
