package get_open_slots

import (
	"fmt"

	"github.com/chrismblake-alt/meal-signup-app/internal/domain"
)

// validateRequest валидирует и нормализует параметры запроса
func validateRequest(req *Request) error {
	if req.Days < 0 {
		return fmt.Errorf("%w: days must not be negative", ErrInvalidInput)
	}
	if req.Days > domain.MaxForecastDays {
		return fmt.Errorf("%w: days must not exceed %d", ErrInvalidInput, domain.MaxForecastDays)
	}
	return nil
}
