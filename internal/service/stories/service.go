package stories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/chrismblake-alt/meal-signup-app/internal/domain"
	storyRepo "github.com/chrismblake-alt/meal-signup-app/internal/infra/storage/story"
	"github.com/chrismblake-alt/meal-signup-app/internal/service/stories/models"
)

// Service сервис для работы с историями
type Service struct {
	storyRepo StoryRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса историй
func NewService(storyRepo StoryRepository, logger Logger) *Service {
	return &Service{
		storyRepo: storyRepo,
		logger:    logger,
	}
}

// ListActive возвращает активные истории для публичной страницы
func (s *Service) ListActive(ctx context.Context) (*models.StoryListResponse, error) {
	stories, err := s.storyRepo.ListActive(ctx)
	if err != nil {
		s.logger.Error("ListActive: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListActive - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainStoryList(stories), nil
}

// Create создает новую историю
func (s *Service) Create(ctx context.Context, req *models.CreateStoryRequest) (*models.StoryResponse, error) {
	if err := validateStory(req.Title, req.Content); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	created, err := s.storyRepo.Create(ctx, &domain.ImpactStory{
		Title:    req.Title,
		Content:  req.Content,
		ImageURL: req.ImageURL,
		Active:   active,
	})
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created story id=%d", created.ID)
	resp := models.FromDomainStory(created)
	return &resp, nil
}

// Update обновляет историю
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateStoryRequest) (*models.StoryResponse, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}
	if err := validateStory(req.Title, req.Content); err != nil {
		s.logger.Warn("Update: validation failed for story id=%d: %v", id, err)
		return nil, err
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	story := &domain.ImpactStory{
		ID:       id,
		Title:    req.Title,
		Content:  req.Content,
		ImageURL: req.ImageURL,
		Active:   active,
	}

	if err := s.storyRepo.Update(ctx, story); err != nil {
		if errors.Is(err, storyRepo.ErrStoryNotFound) {
			s.logger.Warn("Update: story id=%d not found", id)
			return nil, ErrStoryNotFound
		}
		s.logger.Error("Update: repository error for story id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: updated story id=%d", id)
	resp := models.FromDomainStory(story)
	return &resp, nil
}

// Delete удаляет историю
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	if err := s.storyRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, storyRepo.ErrStoryNotFound) {
			s.logger.Warn("Delete: story id=%d not found", id)
			return ErrStoryNotFound
		}
		s.logger.Error("Delete: repository error for story id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: deleted story id=%d", id)
	return nil
}

// validateStory проверяет обязательные поля истории
func validateStory(title, content string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("%w: content is required", ErrInvalidInput)
	}
	return nil
}
