package list_signups

import (
	"net/http"
	"time"

	"github.com/chrismblake-alt/meal-signup-app/internal/api/handlers"
	"github.com/chrismblake-alt/meal-signup-app/internal/domain"
)

const (
	msgInvalidStart = "invalid start parameter, expected YYYY-MM-DD"
	msgInvalidEnd   = "invalid end parameter, expected YYYY-MM-DD"
)

type Handler struct {
	service SignupsService
	logger  Logger
}

func NewHandler(service SignupsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/signups?start=YYYY-MM-DD&end=YYYY-MM-DD
// Без параметров возвращает предстоящие заявки с сегодняшнего дня
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var start, end *time.Time

	if raw := r.URL.Query().Get("start"); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /admin/signups - Invalid start=%q: %v", raw, err)
			handlers.RespondBadRequest(w, msgInvalidStart)
			return
		}
		start = &parsed
	}

	if raw := r.URL.Query().Get("end"); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /admin/signups - Invalid end=%q: %v", raw, err)
			handlers.RespondBadRequest(w, msgInvalidEnd)
			return
		}
		end = &parsed
	}

	result, err := h.service.ListUpcoming(r.Context(), start, end)
	if err != nil {
		h.logger.Error("GET /admin/signups - Failed to list signups: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
