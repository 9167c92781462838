package stories

import (
	"context"

	"github.com/chrismblake-alt/meal-signup-app/internal/domain"
)

// StoryRepository интерфейс репозитория историй
type StoryRepository interface {
	ListActive(ctx context.Context) ([]*domain.ImpactStory, error)
	Create(ctx context.Context, s *domain.ImpactStory) (*domain.ImpactStory, error)
	Update(ctx context.Context, s *domain.ImpactStory) error
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
