package update_settings

// UpdateSettingsRequest HTTP запрос на обновление настроек
type UpdateSettingsRequest struct {
	KidCountMin int `json:"kidCountMin"`
	KidCountMax int `json:"kidCountMax"`
}
