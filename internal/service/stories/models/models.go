package models

import (
	"github.com/chrismblake-alt/meal-signup-app/internal/domain"
)

// StoryResponse история в ответе API
type StoryResponse struct {
	ID        int64   `json:"id"`
	Title     string  `json:"title"`
	Content   string  `json:"content"`
	ImageURL  *string `json:"imageUrl,omitempty"`
	Active    bool    `json:"active"`
	CreatedAt string  `json:"createdAt"`
}

// CreateStoryRequest запрос на создание истории
type CreateStoryRequest struct {
	Title    string  `json:"title"`
	Content  string  `json:"content"`
	ImageURL *string `json:"imageUrl"`
	Active   *bool   `json:"active"`
}

// UpdateStoryRequest запрос на обновление истории
type UpdateStoryRequest struct {
	Title    string  `json:"title"`
	Content  string  `json:"content"`
	ImageURL *string `json:"imageUrl"`
	Active   *bool   `json:"active"`
}

// StoryListResponse список историй
type StoryListResponse struct {
	Stories []StoryResponse `json:"stories"`
}

// FromDomainStory конвертирует domain.ImpactStory в StoryResponse
func FromDomainStory(s *domain.ImpactStory) StoryResponse {
	return StoryResponse{
		ID:        s.ID,
		Title:     s.Title,
		Content:   s.Content,
		ImageURL:  s.ImageURL,
		Active:    s.Active,
		CreatedAt: s.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// FromDomainStoryList конвертирует список историй
func FromDomainStoryList(stories []*domain.ImpactStory) *StoryListResponse {
	resp := &StoryListResponse{Stories: make([]StoryResponse, 0, len(stories))}
	for _, s := range stories {
		resp.Stories = append(resp.Stories, FromDomainStory(s))
	}
	return resp
}
