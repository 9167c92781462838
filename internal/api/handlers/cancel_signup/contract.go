package cancel_signup

import (
	"context"

	signupsService "github.com/chrismblake-alt/meal-signup-app/internal/service/signups/models"
	cancelSignup "github.com/chrismblake-alt/meal-signup-app/internal/usecase/cancel_signup"
)

type CancelSignupUseCase interface {
	Execute(ctx context.Context, req *cancelSignup.Request) (*cancelSignup.Response, error)
}

type SignupsService interface {
	GetByToken(ctx context.Context, token string) (*signupsService.SignupResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
