package signups

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"time"

	"github.com/chrismblake-alt/meal-signup-app/internal/domain"
	signupRepo "github.com/chrismblake-alt/meal-signup-app/internal/infra/storage/signup"
	"github.com/chrismblake-alt/meal-signup-app/internal/service/signups/models"
	"github.com/chrismblake-alt/meal-signup-app/pkg/ptr"
)

// csvHeader заголовок CSV выгрузки
var csvHeader = []string{"Date", "Name", "Email", "Phone", "Bringing", "Notes", "Signed Up At"}

// Service сервис для чтения и выгрузки заявок
type Service struct {
	signupRepo   SignupRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса заявок
func NewService(signupRepo SignupRepository, logger Logger) *Service {
	return &Service{
		signupRepo:   signupRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// ListUpcoming возвращает активные заявки, сгруппированные по календарным
// дням. По умолчанию начиная с сегодняшнего дня; start/end сужают диапазон
func (s *Service) ListUpcoming(ctx context.Context, start, end *time.Time) (*models.UpcomingResponse, error) {
	signups, err := s.signupRepo.FindWithFilter(ctx, s.rangeFilter(start, end))
	if err != nil {
		s.logger.Error("ListUpcoming: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListUpcoming - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListUpcoming: fetched %d signups", len(signups))
	return models.GroupByDay(signups), nil
}

// GetByToken возвращает заявку по токену отмены
// Используется страницей отмены для показа деталей перед подтверждением
func (s *Service) GetByToken(ctx context.Context, token string) (*models.SignupResponse, error) {
	signup, err := s.signupRepo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, signupRepo.ErrSignupNotFound) {
			s.logger.Warn("GetByToken: unknown token")
			return nil, ErrSignupNotFound
		}
		s.logger.Error("GetByToken: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetByToken - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainSignup(signup)
	return &resp, nil
}

// ExportCSV выгружает активные заявки в CSV, по умолчанию предстоящие
// Формат строки: Date,Name,Email,Phone,Bringing,Notes,Signed Up At
func (s *Service) ExportCSV(ctx context.Context, start, end *time.Time) ([]byte, error) {
	signups, err := s.signupRepo.FindWithFilter(ctx, s.rangeFilter(start, end))
	if err != nil {
		s.logger.Error("ExportCSV: repository error: %v", err)
		return nil, fmt.Errorf("%w: ExportCSV - repository error: %v", ErrInternal, err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("%w: ExportCSV - write header: %v", ErrInternal, err)
	}

	for _, signup := range signups {
		notes := ""
		if signup.Notes != nil {
			notes = *signup.Notes
		}

		record := []string{
			domain.DayKey(signup.Date),
			signup.Name,
			signup.Email,
			signup.Phone,
			signup.Bringing,
			notes,
			signup.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("%w: ExportCSV - write record: %v", ErrInternal, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("%w: ExportCSV - flush: %v", ErrInternal, err)
	}

	s.logger.Info("ExportCSV: exported %d signups", len(signups))
	return buf.Bytes(), nil
}

// rangeFilter строит фильтр активных заявок по диапазону дат
func (s *Service) rangeFilter(start, end *time.Time) domain.SignupFilter {
	filter := domain.SignupFilter{Cancelled: ptr.Ptr(false)}

	if start != nil {
		normalized := domain.NormalizeDate(*start)
		filter.StartDate = &normalized
	} else {
		today := domain.NormalizeDate(s.timeProvider.Now())
		filter.StartDate = &today
	}
	if end != nil {
		normalized := domain.NormalizeDate(*end)
		filter.EndDate = &normalized
	}

	return filter
}
