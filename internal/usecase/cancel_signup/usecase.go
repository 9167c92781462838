package cancel_signup

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/chrismblake-alt/meal-signup-app/internal/domain"
	signupRepo "github.com/chrismblake-alt/meal-signup-app/internal/infra/storage/signup"
)

// UseCase use case для отмены заявки по токену
type UseCase struct {
	signupRepo   SignupRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(signupRepo SignupRepository, logger Logger) *UseCase {
	return &UseCase{
		signupRepo:   signupRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case отмены заявки
// Отмена идемпотентна: повторная отмена по тому же токену возвращает
// успех с флагом AlreadyCancelled, слот при этом уже свободен
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	token := strings.TrimSpace(req.Token)
	if token == "" {
		return nil, fmt.Errorf("%w: token is required", ErrInvalidInput)
	}

	// 1. Ищем заявку по токену
	signup, err := uc.signupRepo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, signupRepo.ErrSignupNotFound) {
			uc.logger.Warn("CancelSignup: unknown token")
			return nil, ErrSignupNotFound
		}
		uc.logger.Error("CancelSignup: failed to get signup by token: %v", err)
		return nil, fmt.Errorf("%w: failed to get signup: %v", ErrInternal, err)
	}

	// 2. Повторная отмена: ничего не меняем
	if signup.Cancelled {
		uc.logger.Info("CancelSignup: signup id=%d already cancelled", signup.ID)
		return &Response{
			Name:             signup.Name,
			Date:             signup.Date,
			Location:         signup.Location,
			AlreadyCancelled: true,
		}, nil
	}

	// 3. Отменяем заявку
	// Условие NOT cancelled в запросе делает операцию безопасной при
	// гонке двух одновременных отмен: проигравшая трактуется как повтор
	now := uc.timeProvider.Now()
	if err := uc.signupRepo.CancelByToken(ctx, token, now); err != nil {
		if errors.Is(err, signupRepo.ErrSignupNotFound) {
			return &Response{
				Name:             signup.Name,
				Date:             signup.Date,
				Location:         signup.Location,
				AlreadyCancelled: true,
			}, nil
		}
		uc.logger.Error("CancelSignup: failed to cancel signup id=%d: %v", signup.ID, err)
		return nil, fmt.Errorf("%w: failed to cancel signup: %v", ErrInternal, err)
	}

	uc.logger.Info("CancelSignup: cancelled signup id=%d, date=%s, location=%s",
		signup.ID, domain.DayKey(signup.Date), signup.Location)

	return &Response{
		Name:     signup.Name,
		Date:     signup.Date,
		Location: signup.Location,
	}, nil
}
