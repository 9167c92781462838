package create_batch_signups

import (
	"context"

	createBatchSignups "github.com/chrismblake-alt/meal-signup-app/internal/usecase/create_batch_signups"
)

type CreateBatchSignupsUseCase interface {
	Execute(ctx context.Context, req *createBatchSignups.Request) (*createBatchSignups.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
