package send_reminders

// ReminderResult результат отправки одного напоминания
type ReminderResult struct {
	SignupID int64
	Email    string
	Sent     bool
	Error    string
}

// Response сводка прогона напоминаний
type Response struct {
	Processed int
	Sent      int
	Failed    int
	Results   []ReminderResult
}
