package update_settings

import (
	"errors"
	"net/http"

	"github.com/chrismblake-alt/meal-signup-app/internal/api/handlers"
	settingsService "github.com/chrismblake-alt/meal-signup-app/internal/service/settings"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidRange       = "invalid kid count range"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/admin/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req UpdateSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), req.KidCountMin, req.KidCountMax)
	if err != nil {
		if errors.Is(err, settingsService.ErrInvalidInput) {
			h.logger.Warn("PUT /admin/settings - Invalid range %d-%d", req.KidCountMin, req.KidCountMax)
			handlers.RespondBadRequest(w, msgInvalidRange)
			return
		}
		h.logger.Error("PUT /admin/settings - Failed to update settings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
