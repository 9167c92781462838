package create_batch_signups

import (
	"fmt"
	"strings"
	"time"

	"github.com/chrismblake-alt/meal-signup-app/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(req.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is too long (max %d characters)", ErrInvalidInput, domain.MaxNameLength)
	}

	if strings.TrimSpace(req.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if len(req.Email) > domain.MaxEmailLength {
		return fmt.Errorf("%w: email is too long (max %d characters)", ErrInvalidInput, domain.MaxEmailLength)
	}
	if !strings.Contains(req.Email, "@") {
		return fmt.Errorf("%w: email is invalid", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}
	if len(req.Phone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: phone is too long (max %d characters)", ErrInvalidInput, domain.MaxPhoneLength)
	}

	if strings.TrimSpace(req.Bringing) == "" {
		return fmt.Errorf("%w: bringing is required", ErrInvalidInput)
	}
	if len(req.Bringing) > domain.MaxBringingLength {
		return fmt.Errorf("%w: bringing is too long (max %d characters)", ErrInvalidInput, domain.MaxBringingLength)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes are too long (max %d characters)", ErrInvalidInput, domain.MaxNotesLength)
	}

	if req.Location != nil && !req.Location.Valid() {
		return fmt.Errorf("%w: unknown location %q", ErrInvalidInput, string(*req.Location))
	}

	if len(req.Dates) == 0 {
		return ErrNoDates
	}
	if len(req.Dates) > domain.MaxBatchDates {
		return fmt.Errorf("%w: got %d dates, limit is %d", ErrTooManyDates, len(req.Dates), domain.MaxBatchDates)
	}

	return nil
}

// dedupDates нормализует даты к каноническому полудню UTC и убирает
// дубликаты, сохраняя первое вхождение каждого календарного дня
func dedupDates(dates []time.Time) []time.Time {
	seen := make(map[string]struct{}, len(dates))
	out := make([]time.Time, 0, len(dates))

	for _, d := range dates {
		normalized := domain.NormalizeDate(d)
		key := domain.DayKey(normalized)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, normalized)
	}

	return out
}
