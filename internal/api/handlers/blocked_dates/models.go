package blocked_dates

// BlockDateRequest HTTP запрос на блокировку даты
type BlockDateRequest struct {
	Date   string  `json:"date"`
	Reason *string `json:"reason"`
}
