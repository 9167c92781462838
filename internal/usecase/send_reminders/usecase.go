package send_reminders

import (
	"context"
	"fmt"
	"time"

	"github.com/chrismblake-alt/meal-signup-app/internal/domain"
	"github.com/chrismblake-alt/meal-signup-app/internal/mail"
	"github.com/chrismblake-alt/meal-signup-app/pkg/ptr"
)

// UseCase use case для рассылки напоминаний за день до доставки
type UseCase struct {
	signupRepo   SignupRepository
	settings     SettingsProvider
	emailBuilder EmailBuilder
	notifier     Notifier
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// location задает часовой пояс, в котором определяется "завтра"
func NewUseCase(
	signupRepo SignupRepository,
	settings SettingsProvider,
	emailBuilder EmailBuilder,
	notifier Notifier,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		signupRepo:   signupRepo,
		settings:     settings,
		emailBuilder: emailBuilder,
		notifier:     notifier,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case рассылки напоминаний
// Находит активные заявки на завтра без отметки о напоминании и
// отправляет каждой письмо. Отметка reminder_sent ставится только
// после успешной отправки: сбойные получают письмо при следующем
// прогоне. Прогон идемпотентен.
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	now := uc.timeProvider.Now().In(uc.location)
	tomorrow := domain.NormalizeDate(now.AddDate(0, 0, 1))

	uc.logger.Info("SendReminders: run for %s", domain.DayKey(tomorrow))

	// 1. Активные заявки на завтра без отметки о напоминании
	signups, err := uc.signupRepo.FindWithFilter(ctx, domain.SignupFilter{
		StartDate:    &tomorrow,
		EndDate:      &tomorrow,
		Cancelled:    ptr.Ptr(false),
		ReminderSent: ptr.Ptr(false),
	})
	if err != nil {
		uc.logger.Error("SendReminders: failed to get signups: %v", err)
		return nil, fmt.Errorf("%w: failed to get signups: %v", ErrInternal, err)
	}

	if len(signups) == 0 {
		uc.logger.Info("SendReminders: no reminders due")
		return &Response{}, nil
	}

	kidCount := uc.kidCountDisplay(ctx)

	// 2. Отправляем напоминание каждой заявке
	resp := &Response{Results: make([]ReminderResult, 0, len(signups))}
	for _, s := range signups {
		resp.Processed++

		result := ReminderResult{SignupID: s.ID, Email: s.Email}

		if err := uc.sendReminder(ctx, s, kidCount); err != nil {
			uc.logger.Error("SendReminders: failed for signup id=%d: %v", s.ID, err)
			result.Error = err.Error()
			resp.Failed++
			resp.Results = append(resp.Results, result)
			continue
		}

		// 3. Отмечаем только после успешной отправки
		if err := uc.signupRepo.MarkReminderSent(ctx, s.ID); err != nil {
			// Письмо ушло, отметка не записалась: при следующем прогоне
			// получатель увидит дубль, что лучше потерянного напоминания
			uc.logger.Error("SendReminders: failed to mark signup id=%d: %v", s.ID, err)
		}

		result.Sent = true
		resp.Sent++
		resp.Results = append(resp.Results, result)
	}

	uc.logger.Info("SendReminders: processed=%d, sent=%d, failed=%d",
		resp.Processed, resp.Sent, resp.Failed)

	return resp, nil
}

// sendReminder собирает и отправляет одно напоминание
func (uc *UseCase) sendReminder(ctx context.Context, s *domain.Signup, kidCount string) error {
	subject, body, err := uc.emailBuilder.Reminder(mail.ReminderData{
		Name:            s.Name,
		FormattedDate:   s.Date.Format(mail.DisplayDateFormat),
		Location:        string(s.Location),
		Bringing:        s.Bringing,
		KidCountDisplay: kidCount,
		CancelURL:       uc.emailBuilder.CancelURL(s.CancelToken),
	})
	if err != nil {
		return fmt.Errorf("build reminder email: %w", err)
	}

	return uc.notifier.Send(ctx, s.Email, subject, body)
}

// kidCountDisplay возвращает отображаемое число детей из настроек
func (uc *UseCase) kidCountDisplay(ctx context.Context) string {
	settings, err := uc.settings.Current(ctx)
	if err != nil {
		uc.logger.Warn("SendReminders: failed to get site settings: %v", err)
		return ""
	}
	return settings.KidCountDisplay()
}
