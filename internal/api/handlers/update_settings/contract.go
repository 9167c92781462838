package update_settings

import (
	"context"

	"github.com/chrismblake-alt/meal-signup-app/internal/service/settings/models"
)

type SettingsService interface {
	Update(ctx context.Context, kidCountMin, kidCountMax int) (*models.SettingsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
