package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

type sqliteSessionRepository struct {
	db  *sql.DB
	log *zap.Logger
}

func NewSQLiteSessionRepository(ctx context.Context, db *sql.DB, log *zap.Logger) (SessionRepository, error) {
	repo := &sqliteSessionRepository{
		db:  db,
		log: log.With(zap.String("repository", "session"), zap.String("driver", SessionDriverSQLite)),
	}

	_, err := db.ExecContext(ctx, `
	CREATE TABLE IF NOT EXISTS session_store (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create session table: %w", err)
	}

	return repo, nil
}

func (r *sqliteSessionRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM session_store WHERE key = ?`, key).Scan(&value)

	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		r.log.Error("Failed to read session key", zap.Error(err), zap.String("key", key))
		return "", false, fmt.Errorf("read session key %s: %w", key, err)
	}
	return value, true, nil
}

func (r *sqliteSessionRepository) Set(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO session_store (key, value, updated_at)
	VALUES (?, ?, CURRENT_TIMESTAMP)
	ON CONFLICT(key) DO UPDATE SET
		value = excluded.value,
		updated_at = excluded.updated_at`,
		key, value)
	if err != nil {
		r.log.Error("Failed to write session key", zap.Error(err), zap.String("key", key))
		return fmt.Errorf("write session key %s: %w", key, err)
	}
	return nil
}

func (r *sqliteSessionRepository) Delete(ctx context.Context, keys ...string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, key := range keys {
		if _, err := tx.ExecContext(ctx, `DELETE FROM session_store WHERE key = ?`, key); err != nil {
			r.log.Error("Failed to delete session key", zap.Error(err), zap.String("key", key))
			return fmt.Errorf("delete session key %s: %w", key, err)
		}
	}

	return tx.Commit()
}

func (r *sqliteSessionRepository) Close() error {
	return r.db.Close()
}
