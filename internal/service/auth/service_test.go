package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/chrismblake-alt/meal-signup-app/internal/domain"
	adminRepo "github.com/chrismblake-alt/meal-signup-app/internal/infra/storage/adminuser"
)

type fakeAdminRepo struct {
	admins map[string]*domain.AdminUser
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: make(map[string]*domain.AdminUser)}
}

func (f *fakeAdminRepo) GetByEmail(ctx context.Context, email string) (*domain.AdminUser, error) {
	admin, ok := f.admins[email]
	if !ok {
		return nil, adminRepo.ErrAdminNotFound
	}
	return admin, nil
}

func (f *fakeAdminRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.admins)), nil
}

func (f *fakeAdminRepo) Create(ctx context.Context, u *domain.AdminUser) (*domain.AdminUser, error) {
	u.ID = int64(len(f.admins) + 1)
	f.admins[u.Email] = u
	return u, nil
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

func newTestService(repo *fakeAdminRepo, clock *fixedTimeProvider) *Service {
	svc := NewService(repo, 24*time.Hour, nopLogger{})
	svc.timeProvider = clock
	return svc
}

func seedAdmin(t *testing.T, repo *fakeAdminRepo, email, password string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	repo.admins[email] = &domain.AdminUser{ID: 1, Email: email, PasswordHash: string(hash)}
}

func TestLogin(t *testing.T) {
	repo := newFakeAdminRepo()
	seedAdmin(t, repo, "admin@example.com", "secret")
	clock := &fixedTimeProvider{now: time.Date(2026, time.March, 1, 8, 0, 0, 0, time.UTC)}
	svc := newTestService(repo, clock)

	token, err := svc.Login(context.Background(), " Admin@Example.com ", "secret")

	require.NoError(t, err, "email is matched case-insensitively with surrounding spaces ignored")
	require.NotEmpty(t, token)

	email, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", email)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newFakeAdminRepo()
	seedAdmin(t, repo, "admin@example.com", "secret")
	svc := newTestService(repo, &fixedTimeProvider{now: time.Now()})

	_, err := svc.Login(context.Background(), "admin@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := newTestService(newFakeAdminRepo(), &fixedTimeProvider{now: time.Now()})

	_, err := svc.Login(context.Background(), "nobody@example.com", "secret")

	// Неизвестный email и неверный пароль дают одну и ту же ошибку
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidate_ExpiredSession(t *testing.T) {
	repo := newFakeAdminRepo()
	seedAdmin(t, repo, "admin@example.com", "secret")
	clock := &fixedTimeProvider{now: time.Date(2026, time.March, 1, 8, 0, 0, 0, time.UTC)}
	svc := newTestService(repo, clock)

	token, err := svc.Login(context.Background(), "admin@example.com", "secret")
	require.NoError(t, err)

	clock.now = clock.now.Add(25 * time.Hour)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestLogout(t *testing.T) {
	repo := newFakeAdminRepo()
	seedAdmin(t, repo, "admin@example.com", "secret")
	svc := newTestService(repo, &fixedTimeProvider{now: time.Now()})

	token, err := svc.Login(context.Background(), "admin@example.com", "secret")
	require.NoError(t, err)

	svc.Logout(token)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidSession)

	// Повторный logout с тем же токеном безопасен
	svc.Logout(token)
}

func TestEnsureAdmin(t *testing.T) {
	repo := newFakeAdminRepo()
	svc := newTestService(repo, &fixedTimeProvider{now: time.Now()})

	err := svc.EnsureAdmin(context.Background(), "Admin@Example.com", "secret")
	require.NoError(t, err)
	require.Len(t, repo.admins, 1)

	created, ok := repo.admins["admin@example.com"]
	require.True(t, ok, "email is stored lowercased")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("secret")))

	// Повторный вызов не создает второго администратора
	err = svc.EnsureAdmin(context.Background(), "other@example.com", "other")
	require.NoError(t, err)
	assert.Len(t, repo.admins, 1)
}
