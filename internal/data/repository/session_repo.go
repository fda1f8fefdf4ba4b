package repository

import (
	"context"
	"errors"
	"fmt"

	"room-booking/pkg/database"
	"room-booking/pkg/secure"
	"room-booking/pkg/utils"

	"go.uber.org/zap"
)

const (
	SessionDriverBolt     = "bolt"
	SessionDriverSQLite   = "sqlite"
	SessionDriverPostgres = "postgres"
)

var ErrSessionStoreClosed = errors.New("session store is not configured")

// SessionRepository is the device-local key-value store holding the login.
type SessionRepository interface {
	// Get returns ok=false when the key has never been set.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
	Close() error
}

// OpenSessionRepository picks the store backend from config and, when a
// secret is configured, seals every value at rest.
func OpenSessionRepository(ctx context.Context, config *utils.Config, log *zap.Logger) (SessionRepository, error) {
	var (
		repo SessionRepository
		err  error
	)

	switch config.Session.Driver {
	case "", SessionDriverBolt:
		db, openErr := database.OpenBolt(config.Session.Path)
		if openErr != nil {
			return nil, openErr
		}
		repo, err = NewBoltSessionRepository(db, log)
	case SessionDriverSQLite:
		db, openErr := database.OpenSQLite(ctx, config.Session.Path)
		if openErr != nil {
			return nil, openErr
		}
		repo, err = NewSQLiteSessionRepository(ctx, db, log)
	case SessionDriverPostgres:
		db, openErr := database.InitDB(ctx, config.Database)
		if openErr != nil {
			return nil, openErr
		}
		repo, err = NewPostgresSessionRepository(ctx, db, log)
	default:
		return nil, fmt.Errorf("unknown session driver %q", config.Session.Driver)
	}
	if err != nil {
		return nil, err
	}

	if config.Session.Secret == "" {
		return repo, nil
	}

	sealer, err := secure.NewSealer(config.Session.Secret)
	if err != nil {
		repo.Close()
		return nil, err
	}
	return NewSealedSessionRepository(repo, sealer), nil
}

type sealedSessionRepository struct {
	inner  SessionRepository
	sealer *secure.Sealer
}

// NewSealedSessionRepository encrypts values on Set and decrypts on Get.
// Plaintext values written before a secret was configured still read back.
func NewSealedSessionRepository(inner SessionRepository, sealer *secure.Sealer) SessionRepository {
	return &sealedSessionRepository{inner: inner, sealer: sealer}
}

func (r *sealedSessionRepository) Get(ctx context.Context, key string) (string, bool, error) {
	value, ok, err := r.inner.Get(ctx, key)
	if err != nil || !ok {
		return value, ok, err
	}

	plain, err := r.sealer.Open(key, value)
	if err != nil {
		return "", false, fmt.Errorf("open %s: %w", key, err)
	}
	return plain, true, nil
}

func (r *sealedSessionRepository) Set(ctx context.Context, key, value string) error {
	sealed, err := r.sealer.Seal(key, value)
	if err != nil {
		return fmt.Errorf("seal %s: %w", key, err)
	}
	return r.inner.Set(ctx, key, sealed)
}

func (r *sealedSessionRepository) Delete(ctx context.Context, keys ...string) error {
	return r.inner.Delete(ctx, keys...)
}

func (r *sealedSessionRepository) Close() error {
	return r.inner.Close()
}
