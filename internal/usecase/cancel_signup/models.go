package cancel_signup

import (
	"time"

	"github.com/chrismblake-alt/meal-signup-app/internal/domain"
)

// Request входные данные отмены
type Request struct {
	Token string
}

// Response результат отмены
// AlreadyCancelled == true означает повторную отмену того же токена:
// операция идемпотентна и считается успешной
type Response struct {
	Name             string
	Date             time.Time
	Location         domain.Location
	AlreadyCancelled bool
}
