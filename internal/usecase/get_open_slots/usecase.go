package get_open_slots

import (
	"context"
	"fmt"

	"github.com/chrismblake-alt/meal-signup-app/internal/domain"
)

// UseCase use case для прогноза свободных слотов
type UseCase struct {
	signupRepo      SignupRepository
	blockedDateRepo BlockedDateRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	signupRepo SignupRepository,
	blockedDateRepo BlockedDateRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		signupRepo:      signupRepo,
		blockedDateRepo: blockedDateRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case прогноза свободных слотов
// Прогноз консультативный: он не резервирует слоты, финальная проверка
// доступности происходит при создании заявки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetOpenSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Нормализуем параметры
	days := req.Days
	if days == 0 {
		days = domain.ForecastDays
	}

	start := uc.timeProvider.Now()
	if req.Start != nil {
		start = *req.Start
	}
	start = domain.NormalizeDate(start)
	end := domain.NormalizeDate(start.AddDate(0, 0, days-1))

	uc.logger.Info("GetOpenSlots: start=%s, days=%d", domain.DayKey(start), days)

	// 3. Занятость и заблокированные даты на горизонте прогноза
	active, err := uc.signupRepo.FindActiveInRange(ctx, start, end)
	if err != nil {
		uc.logger.Error("GetOpenSlots: failed to get active signups: %v", err)
		return nil, fmt.Errorf("%w: failed to get active signups: %v", ErrInternal, err)
	}

	blockedDates, err := uc.blockedDateRepo.FindInRange(ctx, start, end)
	if err != nil {
		uc.logger.Error("GetOpenSlots: failed to get blocked dates: %v", err)
		return nil, fmt.Errorf("%w: failed to get blocked dates: %v", ErrInternal, err)
	}

	// 4. Строим прогноз по дням
	forecast := buildForecast(start, days, blockedSet(blockedDates), domain.BuildOccupancy(active))

	return &Response{Days: forecast}, nil
}
