package export_signups

import (
	"fmt"
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

// Handle GET /api/v1/admin/export?start=YYYY-MM-DD&end=YYYY-MM-DD
// Отдает CSV выгрузку заявок как скачиваемый файл;
// без параметров выгружаются предстоящие заявки
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var start, end *time.Time

	if raw := r.URL.Query().Get("start"); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /admin/export - Invalid start=%q: %v", raw, err)
			handlers.RespondBadRequest(w, msgInvalidStart)
			return
		}
		start = &parsed
	}

	if raw := r.URL.Query().Get("end"); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /admin/export - Invalid end=%q: %v", raw, err)
			handlers.RespondBadRequest(w, msgInvalidEnd)
			return
		}
		end = &parsed
	}

	data, err := h.service.ExportCSV(r.Context(), start, end)
	if err != nil {
		h.logger.Error("GET /admin/export - Failed to export signups: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	filename := fmt.Sprintf("meal-signups-%s.csv", time.Now().Format("2006-01-02"))

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
