package middleware

import (
	"net/http"
	"strings"

	"github.com/chrismblake-alt/meal-signup-app/internal/api/handlers"
)

// SessionCookieName имя cookie с токеном сессии администратора
const SessionCookieName = "admin_token"

// SessionValidator проверяет токен сессии администратора
type SessionValidator interface {
	Validate(token string) (email string, err error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// SessionToken извлекает токен сессии из запроса: сначала заголовок
// Authorization (Bearer), затем cookie
func SessionToken(r *http.Request) string {
	if auth := r.Header.Get("Authorization"); auth != "" {
		if token, ok := strings.CutPrefix(auth, "Bearer "); ok {
			return token
		}
	}

	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		return cookie.Value
	}

	return ""
}

// NewAdminAuth возвращает middleware, пускающий дальше только запросы
// с действительной сессией администратора
func NewAdminAuth(validator SessionValidator, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := SessionToken(r)
			if token == "" {
				logger.Warn("AdminAuth: %s %s - no session token", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, "authentication required")
				return
			}

			if _, err := validator.Validate(token); err != nil {
				logger.Warn("AdminAuth: %s %s - invalid session: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, "invalid or expired session")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
