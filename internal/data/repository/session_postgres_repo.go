package repository

import (
	"context"
	"errors"
	"fmt"

	"room-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type postgresSessionRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

// NewPostgresSessionRepository keeps the session in a shared database, for
// kiosk deployments where several front-end processes serve one device login.
func NewPostgresSessionRepository(ctx context.Context, db database.PgxIface, log *zap.Logger) (SessionRepository, error) {
	repo := &postgresSessionRepository{
		db:  db,
		log: log.With(zap.String("repository", "session"), zap.String("driver", SessionDriverPostgres)),
	}

	query := `
		CREATE TABLE IF NOT EXISTS session_store (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	if _, err := db.Exec(ctx, query); err != nil {
		db.Close()
		return nil, fmt.Errorf("create session table: %w", err)
	}

	return repo, nil
}

func (r *postgresSessionRepository) Get(ctx context.Context, key string) (string, bool, error) {
	query := `SELECT value FROM session_store WHERE key = $1`

	var value string
	err := r.db.QueryRow(ctx, query, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		r.log.Error("Failed to read session key",
			zap.Error(err),
			zap.String("key", key),
		)
		return "", false, fmt.Errorf("read session key %s: %w", key, err)
	}

	return value, true, nil
}

func (r *postgresSessionRepository) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO session_store (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`

	if _, err := r.db.Exec(ctx, query, key, value); err != nil {
		r.log.Error("Failed to write session key",
			zap.Error(err),
			zap.String("key", key),
		)
		return fmt.Errorf("write session key %s: %w", key, err)
	}

	return nil
}

func (r *postgresSessionRepository) Delete(ctx context.Context, keys ...string) error {
	query := `DELETE FROM session_store WHERE key = ANY($1)`

	if _, err := r.db.Exec(ctx, query, keys); err != nil {
		r.log.Error("Failed to delete session keys",
			zap.Error(err),
			zap.Strings("keys", keys),
		)
		return fmt.Errorf("delete session keys: %w", err)
	}

	return nil
}

func (r *postgresSessionRepository) Close() error {
	r.db.Close()
	return nil
}
