package cancel_signup

import (
	"github.com/chrismblake-alt/meal-signup-app/internal/domain"
	cancelSignup "github.com/chrismblake-alt/meal-signup-app/internal/usecase/cancel_signup"
)

// CancelSignupResponse HTTP ответ отмены
type CancelSignupResponse struct {
	Cancelled        bool   `json:"cancelled"`
	AlreadyCancelled bool   `json:"alreadyCancelled"`
	Name             string `json:"name"`
	Date             string `json:"date"`
	Location         string `json:"location"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *cancelSignup.Response) *CancelSignupResponse {
	return &CancelSignupResponse{
		Cancelled:        true,
		AlreadyCancelled: resp.AlreadyCancelled,
		Name:             resp.Name,
		Date:             domain.DayKey(resp.Date),
		Location:         string(resp.Location),
	}
}
