package send_reminders

import (
	"context"
	"time"

	"github.com/chrismblake-alt/meal-signup-app/internal/domain"
	"github.com/chrismblake-alt/meal-signup-app/internal/mail"
)

// SignupRepository интерфейс репозитория заявок
type SignupRepository interface {
	FindWithFilter(ctx context.Context, filter domain.SignupFilter) ([]*domain.Signup, error)
	MarkReminderSent(ctx context.Context, id int64) error
}

// SettingsProvider интерфейс для чтения настроек сайта
type SettingsProvider interface {
	Current(ctx context.Context) (*domain.SiteSettings, error)
}

// EmailBuilder интерфейс сборщика писем
type EmailBuilder interface {
	Reminder(d mail.ReminderData) (subject, body string, err error)
	CancelURL(token string) string
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
