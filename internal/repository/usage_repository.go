package repository

import (
	"context"
	"database/sql"
	"time"

	"prdgen/internal/model"
)

// UsageRepository keeps daily per-provider counters in the api_usage table.
type UsageRepository struct {
	db *sql.DB
}

func NewUsageRepository(db *sql.DB) *UsageRepository {
	return &UsageRepository{db: db}
}

func (r *UsageRepository) Record(ctx context.Context, apiName string, day time.Time, tokens int) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO api_usage(api_name, usage_date, request_count, token_count)
		VALUES($1, $2, 1, $3)
		ON CONFLICT (api_name, usage_date)
		DO UPDATE SET request_count = api_usage.request_count + 1,
		              token_count = api_usage.token_count + EXCLUDED.token_count
	`, apiName, day.Format("2006-01-02"), tokens)
	return err
}

func (r *UsageRepository) GetUsage(ctx context.Context, apiName string, day time.Time) (*model.ApiUsage, error) {
	var u model.ApiUsage
	err := r.db.QueryRowContext(ctx, `
		SELECT id, api_name, usage_date, request_count, token_count
		FROM api_usage
		WHERE api_name = $1 AND usage_date = $2
	`, apiName, day.Format("2006-01-02")).Scan(&u.ID, &u.ApiName, &u.UsageDate, &u.RequestCount, &u.TokenCount)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UsageRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
