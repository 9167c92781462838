package send_daily_summary

import (
	"context"
	"time"

	"github.com/chrismblake-alt/meal-signup-app/internal/domain"
	"github.com/chrismblake-alt/meal-signup-app/internal/mail"
)

// SignupRepository интерфейс репозитория заявок
type SignupRepository interface {
	FindWithFilter(ctx context.Context, filter domain.SignupFilter) ([]*domain.Signup, error)
	FindActiveInRange(ctx context.Context, start, end time.Time) ([]*domain.Signup, error)
}

// BlockedDateRepository интерфейс репозитория заблокированных дат
type BlockedDateRepository interface {
	FindInRange(ctx context.Context, start, end time.Time) ([]*domain.BlockedDate, error)
}

// EmailBuilder интерфейс сборщика писем
type EmailBuilder interface {
	DailySummary(d mail.DailySummaryData) (subject, body string, err error)
}

// Notifier интерфейс отправки писем
type Notifier interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
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
