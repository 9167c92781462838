package send_daily_summary

import (
	"context"
	"fmt"
	"time"

	"github.com/chrismblake-alt/meal-signup-app/internal/domain"
	"github.com/chrismblake-alt/meal-signup-app/internal/mail"
	"github.com/chrismblake-alt/meal-signup-app/pkg/ptr"
)

// UseCase use case для ежедневного дайджеста персоналу
type UseCase struct {
	signupRepo      SignupRepository
	blockedDateRepo BlockedDateRepository
	emailBuilder    EmailBuilder
	notifier        Notifier
	recipient       string
	location        *time.Location
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
// recipient — адрес (или список адресов через запятую) для дайджеста,
// location — часовой пояс, в котором определяется "сегодня"
func NewUseCase(
	signupRepo SignupRepository,
	blockedDateRepo BlockedDateRepository,
	emailBuilder EmailBuilder,
	notifier Notifier,
	recipient string,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		signupRepo:      signupRepo,
		blockedDateRepo: blockedDateRepo,
		emailBuilder:    emailBuilder,
		notifier:        notifier,
		recipient:       recipient,
		location:        location,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case ежедневного дайджеста
// Дайджест собирает доставки на сегодня, завтра и послезавтра, отмены
// за последние сутки и свободные слоты на неделю вперед
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	if uc.recipient == "" {
		uc.logger.Warn("SendDailySummary: no recipient configured, skipping")
		return nil, ErrNoRecipient
	}

	now := uc.timeProvider.Now().In(uc.location)
	today := domain.NormalizeDate(now)
	dayAfter := domain.NormalizeDate(now.AddDate(0, 0, 2))

	uc.logger.Info("SendDailySummary: run for %s", domain.DayKey(today))

	// 1. Активные доставки на три ближайших дня
	upcoming, err := uc.signupRepo.FindActiveInRange(ctx, today, dayAfter)
	if err != nil {
		uc.logger.Error("SendDailySummary: failed to get upcoming signups: %v", err)
		return nil, fmt.Errorf("%w: failed to get upcoming signups: %v", ErrInternal, err)
	}

	byDay := make(map[string][]*domain.Signup)
	for _, s := range upcoming {
		key := domain.DayKey(s.Date)
		byDay[key] = append(byDay[key], s)
	}

	todayRows := summaryRows(byDay[domain.DayKey(today)])
	tomorrowRows := summaryRows(byDay[domain.DayKey(now.AddDate(0, 0, 1))])
	dayAfterRows := summaryRows(byDay[domain.DayKey(dayAfter)])

	// 2. Отмены за последние 24 часа
	cancelledAfter := now.Add(-24 * time.Hour)
	cancelled, err := uc.signupRepo.FindWithFilter(ctx, domain.SignupFilter{
		Cancelled:      ptr.Ptr(true),
		CancelledAfter: &cancelledAfter,
	})
	if err != nil {
		uc.logger.Error("SendDailySummary: failed to get cancellations: %v", err)
		return nil, fmt.Errorf("%w: failed to get cancellations: %v", ErrInternal, err)
	}

	cancellationRows := make([]mail.CancellationRow, 0, len(cancelled))
	for _, s := range cancelled {
		cancellationRows = append(cancellationRows, mail.CancellationRow{
			Name:          s.Name,
			FormattedDate: s.Date.Format(mail.ShortDateFormat),
			Location:      string(s.Location),
			Bringing:      s.Bringing,
		})
	}

	// 3. Свободные слоты на неделю вперед
	openSlots, err := uc.openSlots(ctx, today)
	if err != nil {
		return nil, err
	}

	// 4. Собираем и отправляем дайджест
	subject, body, err := uc.emailBuilder.DailySummary(mail.DailySummaryData{
		FormattedToday:  today.Format(mail.DisplayDateFormat),
		DayAfterHeading: dayAfter.Format("Monday"),
		Today:           todayRows,
		Tomorrow:        tomorrowRows,
		DayAfter:        dayAfterRows,
		Cancellations:   cancellationRows,
		OpenSlots:       openSlots,
	})
	if err != nil {
		uc.logger.Error("SendDailySummary: failed to build summary email: %v", err)
		return nil, fmt.Errorf("%w: failed to build summary email: %v", ErrInternal, err)
	}

	if err := uc.notifier.Send(ctx, uc.recipient, subject, body); err != nil {
		uc.logger.Error("SendDailySummary: failed to send summary to %s: %v", uc.recipient, err)
		return nil, fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	uc.logger.Info("SendDailySummary: sent to %s (today=%d, tomorrow=%d, cancellations=%d, open=%d)",
		uc.recipient, len(todayRows), len(tomorrowRows), len(cancellationRows), len(openSlots))

	return &Response{
		Recipient:     uc.recipient,
		TodayCount:    len(todayRows),
		TomorrowCount: len(tomorrowRows),
		DayAfterCount: len(dayAfterRows),
		Cancellations: len(cancellationRows),
		OpenSlots:     len(openSlots),
	}, nil
}

// openSlots строит перечень свободных слотов на горизонте прогноза
func (uc *UseCase) openSlots(ctx context.Context, today time.Time) ([]mail.OpenSlotRow, error) {
	end := domain.NormalizeDate(today.AddDate(0, 0, domain.ForecastDays-1))

	active, err := uc.signupRepo.FindActiveInRange(ctx, today, end)
	if err != nil {
		uc.logger.Error("SendDailySummary: failed to get active signups: %v", err)
		return nil, fmt.Errorf("%w: failed to get active signups: %v", ErrInternal, err)
	}

	blockedDates, err := uc.blockedDateRepo.FindInRange(ctx, today, end)
	if err != nil {
		uc.logger.Error("SendDailySummary: failed to get blocked dates: %v", err)
		return nil, fmt.Errorf("%w: failed to get blocked dates: %v", ErrInternal, err)
	}

	blocked := make(map[string]struct{}, len(blockedDates))
	for _, b := range blockedDates {
		blocked[domain.DayKey(b.Date)] = struct{}{}
	}

	occ := domain.BuildOccupancy(active)

	var rows []mail.OpenSlotRow
	for i := 0; i < domain.ForecastDays; i++ {
		date := domain.NormalizeDate(today.AddDate(0, 0, i))
		key := domain.DayKey(date)

		if _, isBlocked := blocked[key]; isBlocked {
			continue
		}

		for _, loc := range occ.FreeLocations(key) {
			rows = append(rows, mail.OpenSlotRow{
				FormattedDate: date.Format("Monday, Jan 2"),
				Location:      string(loc),
			})
		}
	}

	return rows, nil
}

// summaryRows конвертирует заявки в строки таблицы дайджеста
func summaryRows(signups []*domain.Signup) []mail.SummaryRow {
	rows := make([]mail.SummaryRow, 0, len(signups))
	for _, s := range signups {
		rows = append(rows, mail.SummaryRow{
			Name:     s.Name,
			Phone:    s.Phone,
			Email:    s.Email,
			Bringing: s.Bringing,
			Location: string(s.Location),
		})
	}
	return rows
}
