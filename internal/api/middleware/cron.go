package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/chrismblake-alt/meal-signup-app/internal/api/handlers"
)

// NewCronAuth возвращает middleware для cron эндпоинтов
// Секрет сверяется с заголовком Authorization: Bearer <secret>.
// Пустой секрет отключает проверку: эндпоинты остаются открытыми,
// что допустимо только за доверенным периметром.
func NewCronAuth(secret string, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if secret == "" {
				next.ServeHTTP(w, r)
				return
			}

			auth := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(auth, "Bearer ")
			if !ok || subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
				logger.Warn("CronAuth: %s %s - invalid cron secret", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, "invalid cron secret")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
