package auth

import (
	"context"
	"time"

	"github.com/chrismblake-alt/meal-signup-app/internal/domain"
)

// AdminUserRepository интерфейс репозитория администраторов
type AdminUserRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.AdminUser, error)
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, u *domain.AdminUser) (*domain.AdminUser, error)
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
