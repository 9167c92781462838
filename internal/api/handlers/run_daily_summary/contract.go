package run_daily_summary

import (
	"context"

	sendDailySummary "github.com/chrismblake-alt/meal-signup-app/internal/usecase/send_daily_summary"
)

type SendDailySummaryUseCase interface {
	Execute(ctx context.Context) (*sendDailySummary.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
