package cancel_signup

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/chrismblake-alt/meal-signup-app/internal/api/handlers"
	signupsService "github.com/chrismblake-alt/meal-signup-app/internal/service/signups"
	cancelSignup "github.com/chrismblake-alt/meal-signup-app/internal/usecase/cancel_signup"
)

const (
	msgSignupNotFound = "signup not found"
	msgInvalidToken   = "invalid cancel token"
)

type Handler struct {
	useCase CancelSignupUseCase
	service SignupsService
	logger  Logger
}

func NewHandler(useCase CancelSignupUseCase, service SignupsService, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		service: service,
		logger:  logger,
	}
}

// HandleLookup GET /api/v1/cancel/{token}
// Показывает детали заявки перед подтверждением отмены
func (h *Handler) HandleLookup(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]

	signup, err := h.service.GetByToken(r.Context(), token)
	if err != nil {
		if errors.Is(err, signupsService.ErrSignupNotFound) {
			h.logger.Warn("GET /cancel/{token} - Unknown token")
			handlers.RespondNotFound(w, msgSignupNotFound)
			return
		}
		h.logger.Error("GET /cancel/{token} - Failed to get signup: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, signup)
}

// HandleCancel POST /api/v1/cancel/{token}
func (h *Handler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]

	result, err := h.useCase.Execute(r.Context(), &cancelSignup.Request{Token: token})
	if err != nil {
		switch {
		case errors.Is(err, cancelSignup.ErrSignupNotFound):
			h.logger.Warn("POST /cancel/{token} - Unknown token")
			handlers.RespondNotFound(w, msgSignupNotFound)

		case errors.Is(err, cancelSignup.ErrInvalidInput):
			h.logger.Warn("POST /cancel/{token} - Invalid token: %v", err)
			handlers.RespondBadRequest(w, msgInvalidToken)

		default:
			h.logger.Error("POST /cancel/{token} - Failed to cancel: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	resp := FromUseCaseResponse(result)
	h.logger.Info("POST /cancel/{token} - Cancelled signup for %s on %s", resp.Name, resp.Date)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
