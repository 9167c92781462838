package blocked_dates

import (
	"context"
	"time"

	"github.com/chrismblake-alt/meal-signup-app/internal/service/blockeddates/models"
)

type BlockedDatesService interface {
	ListUpcoming(ctx context.Context) (*models.BlockedDateListResponse, error)
	Block(ctx context.Context, date time.Time, reason *string) (*models.BlockedDateResponse, error)
	Unblock(ctx context.Context, date time.Time) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
