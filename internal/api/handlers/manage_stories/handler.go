package manage_stories

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/chrismblake-alt/meal-signup-app/internal/api/handlers"
	"github.com/chrismblake-alt/meal-signup-app/internal/service/stories/models"
	storiesService "github.com/chrismblake-alt/meal-signup-app/internal/service/stories"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidStoryID     = "invalid story id"
	msgInvalidStory       = "title and content are required"
	msgStoryNotFound      = "story not found"
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

// HandleCreate POST /api/v1/admin/stories
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateStoryRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/stories - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, storiesService.ErrInvalidInput) {
			h.logger.Warn("POST /admin/stories - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStory)
			return
		}
		h.logger.Error("POST /admin/stories - Failed to create story: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleUpdate PUT /api/v1/admin/stories/{id}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := storyID(r)
	if err != nil {
		h.logger.Warn("PUT /admin/stories/{id} - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStoryID)
		return
	}

	var req models.UpdateStoryRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/stories/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, storiesService.ErrStoryNotFound):
			h.logger.Warn("PUT /admin/stories/{id} - Story id=%d not found", id)
			handlers.RespondNotFound(w, msgStoryNotFound)

		case errors.Is(err, storiesService.ErrInvalidInput):
			h.logger.Warn("PUT /admin/stories/{id} - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStory)

		default:
			h.logger.Error("PUT /admin/stories/{id} - Failed to update story id=%d: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDelete DELETE /api/v1/admin/stories/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := storyID(r)
	if err != nil {
		h.logger.Warn("DELETE /admin/stories/{id} - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStoryID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, storiesService.ErrStoryNotFound) {
			h.logger.Warn("DELETE /admin/stories/{id} - Story id=%d not found", id)
			handlers.RespondNotFound(w, msgStoryNotFound)
			return
		}
		h.logger.Error("DELETE /admin/stories/{id} - Failed to delete story id=%d: %v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

func storyID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}
