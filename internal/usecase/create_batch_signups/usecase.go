package create_batch_signups

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/chrismblake-alt/meal-signup-app/internal/domain"
	signupRepo "github.com/chrismblake-alt/meal-signup-app/internal/infra/storage/signup"
	"github.com/chrismblake-alt/meal-signup-app/internal/mail"
)

// UseCase use case для создания пакета заявок на питание
type UseCase struct {
	signupRepo      SignupRepository
	blockedDateRepo BlockedDateRepository
	settings        SettingsProvider
	emailBuilder    EmailBuilder
	notifier        Notifier
	txManager       TransactionManager
	tokenGenerator  TokenGenerator
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	signupRepo SignupRepository,
	blockedDateRepo BlockedDateRepository,
	settings SettingsProvider,
	emailBuilder EmailBuilder,
	notifier Notifier,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		signupRepo:      signupRepo,
		blockedDateRepo: blockedDateRepo,
		settings:        settings,
		emailBuilder:    emailBuilder,
		notifier:        notifier,
		txManager:       txManager,
		tokenGenerator:  &UUIDTokenGenerator{},
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case пакетной заявки
// Пакет атомарен: либо создаются записи на все даты, либо ни на одну.
// Использует сериализуемую транзакцию для предотвращения гонки данных
// между конкурирующими заявками на одни и те же слоты.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBatchSignups: email=%s, dates=%d, location=%v",
		req.Email, len(req.Dates), req.Location)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBatchSignups: validation failed: %v", err)
		return nil, err
	}

	// 2. Нормализация и дедупликация дат (первое вхождение выигрывает)
	dates := dedupDates(req.Dates)

	// 3. Получаем текущее время
	now := uc.timeProvider.Now()

	var created []*domain.Signup

	// 4. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		created = created[:0]

		minDate, maxDate := dateRange(dates)

		// 4.1. Заблокированные даты в диапазоне пакета
		blockedDates, err := uc.blockedDateRepo.FindInRange(txCtx, minDate, maxDate)
		if err != nil {
			uc.logger.Error("CreateBatchSignups: failed to get blocked dates: %v", err)
			return fmt.Errorf("%w: failed to get blocked dates: %v", ErrInternal, err)
		}

		// 4.2. Активные заявки в диапазоне с блокировкой (FOR UPDATE)
		active, err := uc.signupRepo.FindActiveInRange(txCtx, minDate, maxDate)
		if err != nil {
			uc.logger.Error("CreateBatchSignups: failed to get active signups: %v", err)
			return fmt.Errorf("%w: failed to get active signups: %v", ErrInternal, err)
		}

		// 4.3. Распределяем даты по площадкам
		slots, conflicts := resolveSlots(dates, req.Location, blockedSet(blockedDates), domain.BuildOccupancy(active), now)
		if len(conflicts) > 0 {
			uc.logger.Warn("CreateBatchSignups: %d of %d dates unavailable", len(conflicts), len(dates))
			return &DateConflictError{Conflicts: conflicts}
		}

		// 4.4. Создаем запись на каждую дату
		// Частичный уникальный индекс на (дата, площадка) страхует от
		// гонки на случай деградации уровня изоляции: конкурирующая
		// заявка упадет на коммите с ErrSlotTaken
		for _, slot := range slots {
			signup := &domain.Signup{
				Name:        req.Name,
				Email:       req.Email,
				Phone:       req.Phone,
				Bringing:    req.Bringing,
				Notes:       req.Notes,
				Date:        slot.Date,
				Location:    slot.Location,
				CancelToken: uc.tokenGenerator.NewToken(),
			}

			saved, err := uc.signupRepo.Create(txCtx, signup)
			if err != nil {
				if errors.Is(err, signupRepo.ErrSlotTaken) {
					uc.logger.Warn("CreateBatchSignups: slot %s/%s taken at commit time",
						domain.DayKey(slot.Date), slot.Location)
					return &DateConflictError{Conflicts: []DateConflict{{
						Date:   domain.DayKey(slot.Date),
						Reason: ReasonLocationTaken,
					}}}
				}
				uc.logger.Error("CreateBatchSignups: failed to create signup: %v", err)
				return fmt.Errorf("%w: failed to create signup: %v", ErrInternal, err)
			}

			created = append(created, saved)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBatchSignups: created %d signups for %s", len(created), req.Email)

	// 5. Письмо-подтверждение после коммита: заявка уже создана,
	// сбой уведомления не откатывает бронирование
	uc.sendConfirmation(ctx, req, created)

	assignments := make([]Assignment, 0, len(created))
	for _, s := range created {
		assignments = append(assignments, Assignment{
			ID:          s.ID,
			Date:        s.Date,
			Location:    s.Location,
			CancelToken: s.CancelToken,
		})
	}

	return &Response{
		CreatedCount: len(assignments),
		Assignments:  assignments,
	}, nil
}

// sendConfirmation собирает и отправляет письмо-подтверждение
// Ошибки только логируются
func (uc *UseCase) sendConfirmation(ctx context.Context, req *Request, created []*domain.Signup) {
	if len(created) == 0 {
		return
	}

	kidCount := uc.kidCountDisplay(ctx)

	sorted := make([]*domain.Signup, len(created))
	copy(sorted, created)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })

	confirmed := make([]mail.ConfirmedDate, 0, len(sorted))
	for _, s := range sorted {
		confirmed = append(confirmed, mail.ConfirmedDate{
			Formatted: s.Date.Format(mail.DisplayDateFormat),
			Location:  string(s.Location),
			CancelURL: uc.emailBuilder.CancelURL(s.CancelToken),
		})
	}

	subject, body, err := uc.emailBuilder.BatchConfirmation(mail.BatchConfirmationData{
		Name:            req.Name,
		Bringing:        req.Bringing,
		KidCountDisplay: kidCount,
		Dates:           confirmed,
		FirstDate:       sorted[0].Date,
	})
	if err != nil {
		uc.logger.Error("CreateBatchSignups: failed to build confirmation email: %v", err)
		return
	}

	if err := uc.notifier.Send(ctx, req.Email, subject, body); err != nil {
		uc.logger.Error("CreateBatchSignups: failed to send confirmation email to %s: %v", req.Email, err)
	}
}

// kidCountDisplay возвращает отображаемое число детей из настроек
func (uc *UseCase) kidCountDisplay(ctx context.Context) string {
	settings, err := uc.settings.Current(ctx)
	if err != nil {
		uc.logger.Warn("CreateBatchSignups: failed to get site settings: %v", err)
		return ""
	}
	return settings.KidCountDisplay()
}
