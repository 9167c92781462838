package get_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/chrismblake-alt/meal-signup-app/internal/api/handlers"
	"github.com/chrismblake-alt/meal-signup-app/internal/domain"
	getOpenSlots "github.com/chrismblake-alt/meal-signup-app/internal/usecase/get_open_slots"
)

const (
	msgInvalidStart = "invalid start parameter, expected YYYY-MM-DD"
	msgInvalidDays  = "invalid days parameter"
)

type Handler struct {
	useCase GetOpenSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetOpenSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability?start=YYYY-MM-DD&days=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &getOpenSlots.Request{}

	if raw := r.URL.Query().Get("start"); raw != "" {
		start, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /availability - Invalid start=%q: %v", raw, err)
			handlers.RespondBadRequest(w, msgInvalidStart)
			return
		}
		req.Start = &start
	}

	if raw := r.URL.Query().Get("days"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /availability - Invalid days=%q: %v", raw, err)
			handlers.RespondBadRequest(w, msgInvalidDays)
			return
		}
		req.Days = days
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		if errors.Is(err, getOpenSlots.ErrInvalidInput) {
			h.logger.Warn("GET /availability - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDays)
			return
		}
		h.logger.Error("GET /availability - Failed to build forecast: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
