package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Arora962/NagarikMitra/pkg/e"
)

// KV stores entries in a two-column table. Set is a single upsert.
type KV struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
	table  string
}

// NewKV creates table if needed. table must be a plain identifier; config
// validation guarantees that.
func NewKV(ctx context.Context, pool *pgxpool.Pool, table string, logger *slog.Logger) (*KV, error) {
	const op = "postgres.KV.Init"

	kv := &KV{pool: pool, logger: logger, table: pgx.Identifier{table}.Sanitize()}

	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			key        text PRIMARY KEY,
			value      text NOT NULL,
			updated_at timestamptz NOT NULL DEFAULT now()
		)`, kv.table)
	if _, err := pool.Exec(ctx, query); err != nil {
		logger.Error("create kv table failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	return kv, nil
}

func (p *KV) Get(ctx context.Context, key string) (string, bool, error) {
	const op = "postgres.KV.Get"

	query := fmt.Sprintf(`SELECT value FROM %s WHERE key = $1`, p.table)

	var value string
	err := p.pool.QueryRow(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("key", key))
		return "", false, e.WrapError(ctx, op, err)
	}
	return value, true, nil
}

func (p *KV) Set(ctx context.Context, key, value string) error {
	const op = "postgres.KV.Set"

	query := fmt.Sprintf(`
		INSERT INTO %s (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`, p.table)

	if _, err := p.pool.Exec(ctx, query, key, value); err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("key", key))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

// Close is a no-op; the pool belongs to Postgres.
func (p *KV) Close() error { return nil }
