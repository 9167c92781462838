package blockeddates

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chrismblake-alt/meal-signup-app/internal/domain"
	blockedDateRepo "github.com/chrismblake-alt/meal-signup-app/internal/infra/storage/blockeddate"
	"github.com/chrismblake-alt/meal-signup-app/internal/service/blockeddates/models"
)

// Service сервис для управления заблокированными датами
type Service struct {
	blockedDateRepo BlockedDateRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса заблокированных дат
func NewService(blockedDateRepo BlockedDateRepository, logger Logger) *Service {
	return &Service{
		blockedDateRepo: blockedDateRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// ListUpcoming возвращает заблокированные даты с сегодняшнего дня на
// год вперед
func (s *Service) ListUpcoming(ctx context.Context) (*models.BlockedDateListResponse, error) {
	today := domain.NormalizeDate(s.timeProvider.Now())
	horizon := today.AddDate(1, 0, 0)

	dates, err := s.blockedDateRepo.FindInRange(ctx, today, horizon)
	if err != nil {
		s.logger.Error("ListUpcoming: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListUpcoming - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBlockedDateList(dates), nil
}

// Block блокирует календарный день для новых заявок
// Существующие заявки на этот день не затрагиваются
func (s *Service) Block(ctx context.Context, date time.Time, reason *string) (*models.BlockedDateResponse, error) {
	created, err := s.blockedDateRepo.Create(ctx, date, reason)
	if err != nil {
		if errors.Is(err, blockedDateRepo.ErrAlreadyBlocked) {
			s.logger.Warn("Block: date %s is already blocked", domain.DayKey(date))
			return nil, ErrAlreadyBlocked
		}
		s.logger.Error("Block: repository error for %s: %v", domain.DayKey(date), err)
		return nil, fmt.Errorf("%w: Block - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Block: blocked %s", domain.DayKey(created.Date))
	resp := models.FromDomainBlockedDate(created)
	return &resp, nil
}

// Unblock снимает блокировку с календарного дня
func (s *Service) Unblock(ctx context.Context, date time.Time) error {
	if err := s.blockedDateRepo.DeleteByDate(ctx, date); err != nil {
		if errors.Is(err, blockedDateRepo.ErrBlockedDateNotFound) {
			s.logger.Warn("Unblock: date %s is not blocked", domain.DayKey(date))
			return ErrBlockedDateNotFound
		}
		s.logger.Error("Unblock: repository error for %s: %v", domain.DayKey(date), err)
		return fmt.Errorf("%w: Unblock - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Unblock: unblocked %s", domain.DayKey(date))
	return nil
}
