package repository

import (
	"context"
	"fmt"
	"strings"

	"go.etcd.io/bbolt"
	"go.uber.org/zap"
)

const sessionBucket = "session"

type boltSessionRepository struct {
	db  *bbolt.DB
	log *zap.Logger
}

func NewBoltSessionRepository(db *bbolt.DB, log *zap.Logger) (SessionRepository, error) {
	repo := &boltSessionRepository{
		db:  db,
		log: log.With(zap.String("repository", "session"), zap.String("driver", SessionDriverBolt)),
	}
	if err := repo.ensureBuckets(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return repo, nil
}

func (r *boltSessionRepository) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	if r == nil || r.db == nil {
		return "", false, ErrSessionStoreClosed
	}
	if strings.TrimSpace(key) == "" {
		return "", false, fmt.Errorf("session key is required")
	}

	var (
		value string
		ok    bool
	)
	err := r.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(sessionBucket))
		if bucket == nil {
			return fmt.Errorf("session bucket is missing")
		}
		payload := bucket.Get([]byte(key))
		if payload == nil {
			return nil
		}
		// bbolt memory is only valid inside the transaction
		value, ok = string(payload), true
		return nil
	})
	if err != nil {
		r.log.Error("Failed to read session key", zap.Error(err), zap.String("key", key))
		return "", false, fmt.Errorf("read session key %s: %w", key, err)
	}

	return value, ok, nil
}

func (r *boltSessionRepository) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if r == nil || r.db == nil {
		return ErrSessionStoreClosed
	}
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("session key is required")
	}

	err := r.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(sessionBucket))
		if bucket == nil {
			return fmt.Errorf("session bucket is missing")
		}
		return bucket.Put([]byte(key), []byte(value))
	})
	if err != nil {
		r.log.Error("Failed to write session key", zap.Error(err), zap.String("key", key))
		return fmt.Errorf("write session key %s: %w", key, err)
	}
	return nil
}

func (r *boltSessionRepository) Delete(ctx context.Context, keys ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if r == nil || r.db == nil {
		return ErrSessionStoreClosed
	}

	err := r.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(sessionBucket))
		if bucket == nil {
			return fmt.Errorf("session bucket is missing")
		}
		for _, key := range keys {
			if err := bucket.Delete([]byte(key)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		r.log.Error("Failed to delete session keys", zap.Error(err), zap.Strings("keys", keys))
		return fmt.Errorf("delete session keys: %w", err)
	}
	return nil
}

func (r *boltSessionRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

func (r *boltSessionRepository) ensureBuckets() error {
	return r.db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(sessionBucket)); err != nil {
			return fmt.Errorf("create session bucket: %w", err)
		}
		return nil
	})
}
