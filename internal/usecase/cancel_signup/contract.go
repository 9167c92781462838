package cancel_signup

import (
	"context"
	"time"

	"github.com/chrismblake-alt/meal-signup-app/internal/domain"
)

// SignupRepository интерфейс репозитория заявок
type SignupRepository interface {
	GetByToken(ctx context.Context, token string) (*domain.Signup, error)
	CancelByToken(ctx context.Context, token string, now time.Time) error
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
