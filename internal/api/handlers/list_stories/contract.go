package list_stories

import (
	"context"

	"github.com/chrismblake-alt/meal-signup-app/internal/service/stories/models"
)

type StoriesService interface {
	ListActive(ctx context.Context) (*models.StoryListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
