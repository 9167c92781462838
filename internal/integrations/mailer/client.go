package mailer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gopkg.in/gomail.v2"
)

// Client SMTP клиент для отправки писем
// Единственная точка выхода уведомлений из сервиса: успех бронирования
// фиксируется в БД, письмо — best-effort побочный эффект
type Client struct {
	dialer  *gomail.Dialer
	from    string
	timeout time.Duration
	log     Logger
}

// NewClient создает новый SMTP клиент
func NewClient(host string, port int, user, password, from string, timeout time.Duration, log Logger) *Client {
	return &Client{
		dialer:  gomail.NewDialer(host, port, user, password),
		from:    from,
		timeout: timeout,
		log:     log,
	}
}

// Send отправляет HTML письмо
// Список получателей в to разделяется запятыми.
// Отправка ограничена таймаутом клиента и дедлайном контекста —
// что наступит раньше; по истечении возвращается ErrSendTimeout.
func (c *Client) Send(ctx context.Context, to, subject, htmlBody string) error {
	recipients := splitRecipients(to)
	if len(recipients) == 0 {
		return fmt.Errorf("%w: no recipients", ErrSendFailed)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", c.from)
	m.SetHeader("To", recipients...)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	done := make(chan error, 1)
	go func() {
		done <- c.dialer.DialAndSend(m)
	}()

	timer := time.NewTimer(c.timeout)
	defer timer.Stop()

	select {
	case err := <-done:
		if err != nil {
			c.log.Error("Send: smtp delivery to %s failed: %v", to, err)
			return fmt.Errorf("%w: %v", ErrSendFailed, err)
		}
		c.log.Info("Send: delivered email to %s, subject=%q", to, subject)
		return nil
	case <-timer.C:
		c.log.Error("Send: delivery to %s timed out after %s", to, c.timeout)
		return fmt.Errorf("%w: after %s", ErrSendTimeout, c.timeout)
	case <-ctx.Done():
		c.log.Error("Send: delivery to %s aborted: %v", to, ctx.Err())
		return fmt.Errorf("%w: %v", ErrSendTimeout, ctx.Err())
	}
}

func splitRecipients(to string) []string {
	parts := strings.Split(to, ",")
	recipients := make([]string, 0, len(parts))
	for _, p := range parts {
		if addr := strings.TrimSpace(p); addr != "" {
			recipients = append(recipients, addr)
		}
	}
	return recipients
}
