package settings

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/chrismblake-alt/meal-signup-app/internal/domain"
	"github.com/chrismblake-alt/meal-signup-app/pkg/dbmetrics"
	"github.com/chrismblake-alt/meal-signup-app/pkg/psqlbuilder"
)

// Repository репозиторий для работы с настройками сайта (singleton запись)
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает запись настроек
func (r *Repository) Get(ctx context.Context) (*domain.SiteSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"kid_count_min",
		"kid_count_max",
		"updated_at",
	).
		From("site_settings").
		Where(squirrel.Eq{"id": domain.SettingsID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.SiteSettings
	var updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.KidCountMin,
		&s.KidCountMax,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan settings: %v", ErrScanRow, err)
	}

	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

// Upsert создает или обновляет запись настроек
func (r *Repository) Upsert(ctx context.Context, kidCountMin, kidCountMax int) (*domain.SiteSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("site_settings").
		Columns("id", "kid_count_min", "kid_count_max").
		Values(domain.SettingsID, kidCountMin, kidCountMax).
		Suffix(`ON CONFLICT (id) DO UPDATE
			SET kid_count_min = EXCLUDED.kid_count_min,
			    kid_count_max = EXCLUDED.kid_count_max,
			    updated_at = NOW()
			RETURNING id, kid_count_min, kid_count_max, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var s domain.SiteSettings
	var updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.KidCountMin,
		&s.KidCountMax,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	s.UpdatedAt = updatedAt.Time

	return &s, nil
}
