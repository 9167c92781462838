package list_stories

import (
	"net/http"

	"github.com/chrismblake-alt/meal-signup-app/internal/api/handlers"
)

type Handler struct {
	service StoriesService
	logger  Logger
}

func NewHandler(service StoriesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/stories
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListActive(r.Context())
	if err != nil {
		h.logger.Error("GET /stories - Failed to list stories: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
