package settings

import (
	"context"

	"github.com/chrismblake-alt/meal-signup-app/internal/domain"
)

// SettingsRepository интерфейс репозитория настроек сайта
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.SiteSettings, error)
	Upsert(ctx context.Context, kidCountMin, kidCountMax int) (*domain.SiteSettings, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
