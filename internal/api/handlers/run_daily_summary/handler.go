package run_daily_summary

import (
	"errors"
	"net/http"

	"github.com/chrismblake-alt/meal-signup-app/internal/api/handlers"
	sendDailySummary "github.com/chrismblake-alt/meal-signup-app/internal/usecase/send_daily_summary"
)

const msgNoRecipient = "summary recipient is not configured"

type Handler struct {
	useCase SendDailySummaryUseCase
	logger  Logger
}

func NewHandler(useCase SendDailySummaryUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/cron/daily-summary
// Запускается внешним планировщиком раз в сутки
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		if errors.Is(err, sendDailySummary.ErrNoRecipient) {
			h.logger.Warn("POST /cron/daily-summary - No recipient configured")
			handlers.RespondError(w, http.StatusConflict, msgNoRecipient)
			return
		}
		h.logger.Error("POST /cron/daily-summary - Run failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
