package signup

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/chrismblake-alt/meal-signup-app/internal/domain"
	"github.com/chrismblake-alt/meal-signup-app/pkg/dbmetrics"
	"github.com/chrismblake-alt/meal-signup-app/pkg/psqlbuilder"
)

// pgUniqueViolation код ошибки PostgreSQL при нарушении уникального индекса
const pgUniqueViolation = "23505"

var signupColumns = []string{
	"id",
	"name",
	"email",
	"phone",
	"bringing",
	"notes",
	"signup_date",
	"location",
	"cancelled",
	"cancelled_at",
	"reminder_sent",
	"cancel_token",
	"created_at",
}

// Repository репозиторий для работы с записями на доставку еды
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись
// Если в контексте передана активная транзакция (через context.Value), использует её —
// так пакетное создание нескольких записей выполняется атомарно.
//
// Частичный уникальный индекс (signup_date, location) WHERE NOT cancelled
// служит страховкой от гонки между конкурентными заявками: оптимистичная
// проверка доступности в usecase не единственная гарантия, конфликтная
// вставка падает здесь с ErrSlotTaken вместо тихой перезаписи.
func (r *Repository) Create(ctx context.Context, s *domain.Signup) (*domain.Signup, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("meal_signups").
		Columns(
			"name",
			"email",
			"phone",
			"bringing",
			"notes",
			"signup_date",
			"location",
			"cancel_token",
		).
		Values(
			s.Name,
			s.Email,
			s.Phone,
			s.Bringing,
			s.Notes,
			s.Date,
			s.Location,
			s.CancelToken,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&createdAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: date=%s location=%s", ErrSlotTaken,
				s.Date.Format(domain.DateFormat), s.Location)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time

	return s, nil
}

// FindActiveInRange получает все активные записи за период [start, end] по календарным дням
// Если вызов идет внутри транзакции, строки блокируются через FOR UPDATE —
// это чтение occupancy перед пакетной вставкой
func (r *Repository) FindActiveInRange(ctx context.Context, start, end time.Time) ([]*domain.Signup, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(signupColumns...).
		From("meal_signups").
		Where(squirrel.GtOrEq{"signup_date": dayStart(start)}).
		Where(squirrel.Lt{"signup_date": dayStart(end).AddDate(0, 0, 1)}).
		Where(squirrel.Eq{"cancelled": false}).
		OrderBy("signup_date ASC, location ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindActiveInRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindActiveInRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSignups(rows)
}

// FindWithFilter получает записи по гибкому фильтру
// Используется для списка предстоящих доставок, CSV экспорта, напоминаний
// и выборки недавних отмен для дайджеста
func (r *Repository) FindWithFilter(ctx context.Context, filter domain.SignupFilter) ([]*domain.Signup, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(signupColumns...).
		From("meal_signups")

	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"signup_date": dayStart(*filter.StartDate)})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"signup_date": dayStart(*filter.EndDate).AddDate(0, 0, 1)})
	}
	if filter.Cancelled != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"cancelled": *filter.Cancelled})
	}
	if filter.CancelledAfter != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"cancelled_at": *filter.CancelledAfter})
	}
	if filter.ReminderSent != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"reminder_sent": *filter.ReminderSent})
	}

	// Отмены сортируем по времени отмены (сначала свежие), остальное — по дате доставки
	if filter.CancelledAfter != nil {
		selectBuilder = selectBuilder.OrderBy("cancelled_at DESC")
	} else {
		selectBuilder = selectBuilder.OrderBy("signup_date ASC, location ASC, name ASC")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSignups(rows)
}

// GetByToken получает запись по токену отмены
func (r *Repository) GetByToken(ctx context.Context, token string) (*domain.Signup, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(signupColumns...).
		From("meal_signups").
		Where(squirrel.Eq{"cancel_token": token}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByToken - build select query: %v", ErrBuildQuery, err)
	}

	s, err := r.scanSignup(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrSignupNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByToken - scan signup: %v", ErrScanRow, err)
	}

	return s, nil
}

// CancelByToken помечает запись отмененной
// Условие NOT cancelled делает операцию одноразовой: повторная отмена
// не затирает cancelled_at первой
func (r *Repository) CancelByToken(ctx context.Context, token string, now time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("meal_signups").
		Set("cancelled", true).
		Set("cancelled_at", now).
		Where(squirrel.Eq{"cancel_token": token}).
		Where(squirrel.Eq{"cancelled": false}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: CancelByToken - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: CancelByToken - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: CancelByToken - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSignupNotFound
	}

	return nil
}

// MarkReminderSent помечает, что напоминание по записи отправлено
func (r *Repository) MarkReminderSent(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("meal_signups").
		Set("reminder_sent", true).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkReminderSent - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkReminderSent - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkReminderSent - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSignupNotFound
	}

	return nil
}

// scanner общий интерфейс *sql.Row и *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanSignup(row scanner) (*domain.Signup, error) {
	var s domain.Signup
	var createdAt sql.NullTime

	err := row.Scan(
		&s.ID,
		&s.Name,
		&s.Email,
		&s.Phone,
		&s.Bringing,
		&s.Notes,
		&s.Date,
		&s.Location,
		&s.Cancelled,
		&s.CancelledAt,
		&s.ReminderSent,
		&s.CancelToken,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	s.CreatedAt = createdAt.Time
	return &s, nil
}

// scanSignups сканирует результаты запроса в слайс записей
func (r *Repository) scanSignups(rows *sql.Rows) ([]*domain.Signup, error) {
	signups := make([]*domain.Signup, 0)

	for rows.Next() {
		s, err := r.scanSignup(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanSignups - scan row: %v", ErrScanRow, err)
		}
		signups = append(signups, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSignups - rows error: %v", ErrScanRow, err)
	}

	return signups, nil
}

// dayStart обнуляет время даты в UTC для сравнения по календарным дням
func dayStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pgUniqueViolation
	}
	return false
}
