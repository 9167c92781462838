package blockeddate

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

const pgUniqueViolation = "23505"

// Repository репозиторий для работы с заблокированными датами
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория заблокированных дат
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// FindInRange получает заблокированные даты за период [start, end] по календарным дням
// Путь бронирования читает их одним запросом на весь диапазон заявки
func (r *Repository) FindInRange(ctx context.Context, start, end time.Time) ([]*domain.BlockedDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"blocked_date",
		"reason",
		"created_at",
	).
		From("blocked_dates").
		Where(squirrel.GtOrEq{"blocked_date": dayStart(start)}).
		Where(squirrel.Lt{"blocked_date": dayStart(end).AddDate(0, 0, 1)}).
		OrderBy("blocked_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FindInRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindInRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	dates := make([]*domain.BlockedDate, 0)
	for rows.Next() {
		var d domain.BlockedDate
		var createdAt sql.NullTime

		if err := rows.Scan(&d.ID, &d.Date, &d.Reason, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: FindInRange - scan row: %v", ErrScanRow, err)
		}

		d.CreatedAt = createdAt.Time
		dates = append(dates, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: FindInRange - rows error: %v", ErrScanRow, err)
	}

	return dates, nil
}

// Create блокирует дату
func (r *Repository) Create(ctx context.Context, date time.Time, reason *string) (*domain.BlockedDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	blocked := &domain.BlockedDate{
		Date:   domain.NormalizeDate(date),
		Reason: reason,
	}

	query, args, err := psqlbuilder.Insert("blocked_dates").
		Columns("blocked_date", "reason").
		Values(blocked.Date, blocked.Reason).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&blocked.ID, &createdAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrAlreadyBlocked
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	blocked.CreatedAt = createdAt.Time

	return blocked, nil
}

// DeleteByDate снимает блокировку с даты
func (r *Repository) DeleteByDate(ctx context.Context, date time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("blocked_dates").
		Where(squirrel.GtOrEq{"blocked_date": dayStart(date)}).
		Where(squirrel.Lt{"blocked_date": dayStart(date).AddDate(0, 0, 1)}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteByDate - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteByDate - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteByDate - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBlockedDateNotFound
	}

	return nil
}

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
