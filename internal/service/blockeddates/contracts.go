package blockeddates

import (
	"context"
	"time"

	"github.com/chrismblake-alt/meal-signup-app/internal/domain"
)

// BlockedDateRepository интерфейс репозитория заблокированных дат
type BlockedDateRepository interface {
	FindInRange(ctx context.Context, start, end time.Time) ([]*domain.BlockedDate, error)
	Create(ctx context.Context, date time.Time, reason *string) (*domain.BlockedDate, error)
	DeleteByDate(ctx context.Context, date time.Time) error
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
