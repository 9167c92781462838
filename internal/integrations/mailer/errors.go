package mailer

import "errors"

var (
	// ErrSendFailed возвращается, когда SMTP сервер отклонил отправку
	ErrSendFailed = errors.New("mailer client: failed to send email")

	// ErrSendTimeout возвращается, когда отправка не уложилась в таймаут
	// Медленный SMTP не должен бесконечно держать ответ заявителю:
	// истекший таймаут трактуется как ошибка уведомления, не бронирования
	ErrSendTimeout = errors.New("mailer client: send timed out")
)
