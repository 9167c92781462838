package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	// MaxBatchDates ограничение на количество дат в одной пакетной заявке
	MaxBatchDates = 30

	MaxNameLength     = 200
	MaxEmailLength    = 254
	MaxPhoneLength    = 40
	MaxBringingLength = 500
	MaxNotesLength    = 1000
)

// Reporting constants
const (
	// ForecastDays горизонт прогноза свободных слотов по умолчанию
	ForecastDays = 7

	// MaxForecastDays верхняя граница горизонта прогноза в запросе
	MaxForecastDays = 60
)
