package manage_stories

import (
	"context"

	"github.com/chrismblake-alt/meal-signup-app/internal/service/stories/models"
)

type StoriesService interface {
	Create(ctx context.Context, req *models.CreateStoryRequest) (*models.StoryResponse, error)
	Update(ctx context.Context, id int64, req *models.UpdateStoryRequest) (*models.StoryResponse, error)
	Delete(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
