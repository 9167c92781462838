package send_daily_summary

import "errors"

var (
	// ErrNoRecipient возвращается, когда адрес дайджеста не настроен
	ErrNoRecipient = errors.New("send_daily_summary: summary recipient is not configured")

	// ErrSendFailed возвращается, когда дайджест не удалось отправить
	ErrSendFailed = errors.New("send_daily_summary: failed to send summary")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("send_daily_summary: internal error")
)
