package cancel_signup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chrismblake-alt/meal-signup-app/internal/domain"
	signupRepo "github.com/chrismblake-alt/meal-signup-app/internal/infra/storage/signup"
)

type fakeSignupRepo struct {
	signups   map[string]*domain.Signup
	cancelled []string
}

func (f *fakeSignupRepo) GetByToken(ctx context.Context, token string) (*domain.Signup, error) {
	s, ok := f.signups[token]
	if !ok {
		return nil, signupRepo.ErrSignupNotFound
	}
	return s, nil
}

func (f *fakeSignupRepo) CancelByToken(ctx context.Context, token string, now time.Time) error {
	s, ok := f.signups[token]
	if !ok || s.Cancelled {
		return signupRepo.ErrSignupNotFound
	}
	s.Cancelled = true
	s.CancelledAt = &now
	f.cancelled = append(f.cancelled, token)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newRepo(signups ...*domain.Signup) *fakeSignupRepo {
	repo := &fakeSignupRepo{signups: make(map[string]*domain.Signup)}
	for _, s := range signups {
		repo.signups[s.CancelToken] = s
	}
	return repo
}

func TestExecute_CancelsActiveSignup(t *testing.T) {
	repo := newRepo(&domain.Signup{
		ID:          1,
		Name:        "Jane Donor",
		Date:        time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC),
		Location:    domain.LocationBrickBuilding,
		CancelToken: "token-1",
	})
	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Token: "token-1"})

	require.NoError(t, err)
	assert.False(t, resp.AlreadyCancelled)
	assert.Equal(t, "Jane Donor", resp.Name)
	assert.Equal(t, domain.LocationBrickBuilding, resp.Location)
	assert.Equal(t, []string{"token-1"}, repo.cancelled)
}

func TestExecute_SecondCancelIsIdempotent(t *testing.T) {
	repo := newRepo(&domain.Signup{
		ID:          1,
		Name:        "Jane Donor",
		Date:        time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC),
		Location:    domain.LocationBrickBuilding,
		CancelToken: "token-1",
	})
	uc := NewUseCase(repo, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Token: "token-1"})
	require.NoError(t, err)

	resp, err := uc.Execute(context.Background(), &Request{Token: "token-1"})

	require.NoError(t, err, "repeat cancellation succeeds")
	assert.True(t, resp.AlreadyCancelled)
	assert.Len(t, repo.cancelled, 1, "the update runs only once")
}

func TestExecute_UnknownToken(t *testing.T) {
	uc := NewUseCase(newRepo(), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Token: "missing"})
	assert.ErrorIs(t, err, ErrSignupNotFound)
}

func TestExecute_EmptyToken(t *testing.T) {
	uc := NewUseCase(newRepo(), nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Token: "   "})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
