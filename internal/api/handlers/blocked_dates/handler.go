package blocked_dates

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/chrismblake-alt/meal-signup-app/internal/api/handlers"
	"github.com/chrismblake-alt/meal-signup-app/internal/domain"
	blockedDatesService "github.com/chrismblake-alt/meal-signup-app/internal/service/blockeddates"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	msgAlreadyBlocked     = "date is already blocked"
	msgNotBlocked         = "date is not blocked"
)

type Handler struct {
	service BlockedDatesService
	logger  Logger
}

func NewHandler(service BlockedDatesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/v1/admin/blocked-dates
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListUpcoming(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/blocked-dates - Failed to list blocked dates: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleBlock POST /api/v1/admin/blocked-dates
func (h *Handler) HandleBlock(w http.ResponseWriter, r *http.Request) {
	var req BlockDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/blocked-dates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		h.logger.Warn("POST /admin/blocked-dates - Invalid date=%q: %v", req.Date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.Block(r.Context(), date, req.Reason)
	if err != nil {
		if errors.Is(err, blockedDatesService.ErrAlreadyBlocked) {
			h.logger.Warn("POST /admin/blocked-dates - Date %s already blocked", req.Date)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyBlocked)
			return
		}
		h.logger.Error("POST /admin/blocked-dates - Failed to block %s: %v", req.Date, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleUnblock DELETE /api/v1/admin/blocked-dates/{date}
func (h *Handler) HandleUnblock(w http.ResponseWriter, r *http.Request) {
	raw := mux.Vars(r)["date"]

	date, err := time.Parse(domain.DateFormat, raw)
	if err != nil {
		h.logger.Warn("DELETE /admin/blocked-dates/{date} - Invalid date=%q: %v", raw, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	if err := h.service.Unblock(r.Context(), date); err != nil {
		if errors.Is(err, blockedDatesService.ErrBlockedDateNotFound) {
			h.logger.Warn("DELETE /admin/blocked-dates/{date} - Date %s is not blocked", raw)
			handlers.RespondNotFound(w, msgNotBlocked)
			return
		}
		h.logger.Error("DELETE /admin/blocked-dates/{date} - Failed to unblock %s: %v", raw, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
