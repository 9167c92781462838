package create_batch_signups

import (
	"errors"
	"net/http"

	"github.com/chrismblake-alt/meal-signup-app/internal/api/handlers"
	createBatchSignups "github.com/chrismblake-alt/meal-signup-app/internal/usecase/create_batch_signups"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	msgDatesUnavailable   = "some of the selected dates are unavailable"
	msgInvalidInput       = "invalid signup data"
	msgNoDates            = "at least one date is required"
	msgTooManyDates       = "too many dates in one request"
)

type Handler struct {
	useCase CreateBatchSignupsUseCase
	logger  Logger
}

func NewHandler(useCase CreateBatchSignupsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/signups/batch
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBatchSignupsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /signups/batch - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /signups/batch - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var conflict *createBatchSignups.DateConflictError

		switch {
		case errors.As(err, &conflict):
			h.logger.Warn("POST /signups/batch - %d dates unavailable: email=%s",
				len(conflict.Conflicts), req.Email)
			failing := make([]FailingDate, 0, len(conflict.Conflicts))
			for _, c := range conflict.Conflicts {
				failing = append(failing, FailingDate{Date: c.Date, Reason: c.Reason})
			}
			handlers.RespondJSON(w, http.StatusConflict, ConflictResponse{
				Error:        msgDatesUnavailable,
				FailingDates: failing,
			})

		case errors.Is(err, createBatchSignups.ErrDatesUnavailable):
			h.logger.Warn("POST /signups/batch - Dates unavailable: email=%s", req.Email)
			handlers.RespondError(w, http.StatusConflict, msgDatesUnavailable)

		case errors.Is(err, createBatchSignups.ErrNoDates):
			h.logger.Warn("POST /signups/batch - No dates: email=%s", req.Email)
			handlers.RespondBadRequest(w, msgNoDates)

		case errors.Is(err, createBatchSignups.ErrTooManyDates):
			h.logger.Warn("POST /signups/batch - Too many dates: email=%s", req.Email)
			handlers.RespondBadRequest(w, msgTooManyDates)

		case errors.Is(err, createBatchSignups.ErrInvalidInput):
			h.logger.Warn("POST /signups/batch - Validation failed: email=%s, error=%v", req.Email, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /signups/batch - Failed to create signups: email=%s, error=%v", req.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /signups/batch - Created %d signups: email=%s", result.CreatedCount, req.Email)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
