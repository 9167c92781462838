package send_daily_summary

// Response сводка прогона дайджеста
type Response struct {
	Recipient       string
	TodayCount      int
	TomorrowCount   int
	DayAfterCount   int
	Cancellations   int
	OpenSlots       int
}
