package models

import (
	"github.com/chrismblake-alt/meal-signup-app/internal/domain"
)

// SettingsResponse настройки сайта в ответе API
type SettingsResponse struct {
	KidCountMin     int    `json:"kidCountMin"`
	KidCountMax     int    `json:"kidCountMax"`
	KidCountDisplay string `json:"kidCountDisplay"`
}

// FromDomainSettings конвертирует domain.SiteSettings в SettingsResponse
func FromDomainSettings(s *domain.SiteSettings) *SettingsResponse {
	return &SettingsResponse{
		KidCountMin:     s.KidCountMin,
		KidCountMax:     s.KidCountMax,
		KidCountDisplay: s.KidCountDisplay(),
	}
}
