package create_batch_signups

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/chrismblake-alt/meal-signup-app/internal/domain"
	"github.com/chrismblake-alt/meal-signup-app/internal/mail"
)

// SignupRepository интерфейс репозитория заявок
type SignupRepository interface {
	Create(ctx context.Context, s *domain.Signup) (*domain.Signup, error)
	FindActiveInRange(ctx context.Context, start, end time.Time) ([]*domain.Signup, error)
}

// BlockedDateRepository интерфейс репозитория заблокированных дат
type BlockedDateRepository interface {
	FindInRange(ctx context.Context, start, end time.Time) ([]*domain.BlockedDate, error)
}

// SettingsProvider интерфейс для чтения настроек сайта
type SettingsProvider interface {
	Current(ctx context.Context) (*domain.SiteSettings, error)
}

// EmailBuilder интерфейс сборщика писем
type EmailBuilder interface {
	BatchConfirmation(d mail.BatchConfirmationData) (subject, body string, err error)
	CancelURL(token string) string
}

// Notifier интерфейс отправки писем
type Notifier interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TokenGenerator интерфейс генерации токенов отмены (для тестирования)
type TokenGenerator interface {
	NewToken() string
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// UUIDTokenGenerator генератор токенов отмены на базе UUIDv4
type UUIDTokenGenerator struct{}

// NewToken возвращает новый токен отмены
func (g *UUIDTokenGenerator) NewToken() string {
	return uuid.NewString()
}
