package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/chrismblake-alt/meal-signup-app/internal/domain"
	settingsRepo "github.com/chrismblake-alt/meal-signup-app/internal/infra/storage/settings"
	"github.com/chrismblake-alt/meal-signup-app/internal/service/settings/models"
)

// Service сервис настроек сайта
// Единственная запись настроек создается лениво из значений по
// умолчанию при первом чтении
type Service struct {
	settingsRepo SettingsRepository
	defaultMin   int
	defaultMax   int
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(settingsRepo SettingsRepository, defaultMin, defaultMax int, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		defaultMin:   defaultMin,
		defaultMax:   defaultMax,
		logger:       logger,
	}
}

// Current возвращает настройки сайта как доменную модель, создавая
// запись по умолчанию, если её еще нет
func (s *Service) Current(ctx context.Context) (*domain.SiteSettings, error) {
	current, err := s.settingsRepo.Get(ctx)
	if err == nil {
		return current, nil
	}
	if !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
		s.logger.Error("Current: repository error: %v", err)
		return nil, fmt.Errorf("%w: Current - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Current: seeding default settings %d-%d", s.defaultMin, s.defaultMax)
	seeded, err := s.settingsRepo.Upsert(ctx, s.defaultMin, s.defaultMax)
	if err != nil {
		s.logger.Error("Current: failed to seed default settings: %v", err)
		return nil, fmt.Errorf("%w: Current - failed to seed defaults: %v", ErrInternal, err)
	}

	return seeded, nil
}

// Get возвращает настройки сайта для API
func (s *Service) Get(ctx context.Context) (*models.SettingsResponse, error) {
	current, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}
	return models.FromDomainSettings(current), nil
}

// Update обновляет отображаемый диапазон числа детей
func (s *Service) Update(ctx context.Context, kidCountMin, kidCountMax int) (*models.SettingsResponse, error) {
	if kidCountMin <= 0 {
		return nil, fmt.Errorf("%w: kidCountMin must be positive", ErrInvalidInput)
	}
	if kidCountMax < kidCountMin {
		return nil, fmt.Errorf("%w: kidCountMax must not be less than kidCountMin", ErrInvalidInput)
	}

	updated, err := s.settingsRepo.Upsert(ctx, kidCountMin, kidCountMax)
	if err != nil {
		s.logger.Error("Update: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: kid count set to %d-%d", kidCountMin, kidCountMax)
	return models.FromDomainSettings(updated), nil
}
