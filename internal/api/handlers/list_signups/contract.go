package list_signups

import (
	"context"
	"time"

	"github.com/chrismblake-alt/meal-signup-app/internal/service/signups/models"
)

type SignupsService interface {
	ListUpcoming(ctx context.Context, start, end *time.Time) (*models.UpcomingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
