package store

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	bolt "go.etcd.io/bbolt"
)

// stateBucket holds all state blobs in the bbolt file.
var stateBucket = []byte("state")

// boltKV implements KV on an embedded bbolt file. This is the default
// backend: a single local durable store with exactly one writer, matching
// the application's single-process model.
type boltKV struct {
	db     *bolt.DB
	logger zerolog.Logger
}

// NewBolt opens (creating if necessary) the bbolt file at path.
func NewBolt(path string, logger zerolog.Logger) (KV, error) {
	logger = logger.With().Str("component", "bolt-kv").Logger()

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		logger.Error().Err(err).Str("path", path).Msg("failed to open state file")
		return nil, fmt.Errorf("failed to open state file %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(stateBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create state bucket: %w", err)
	}

	logger.Info().Str("path", path).Msg("state file opened")

	return &boltKV{db: db, logger: logger}, nil
}

// Get returns the blob stored under key, or (nil, nil) when absent.
func (b *boltKV) Get(_ context.Context, key string) ([]byte, error) {
	var value []byte
	err := b.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(stateBucket).Get([]byte(key))
		if data != nil {
			// The slice is only valid inside the transaction.
			value = make([]byte, len(data))
			copy(value, data)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read key %s: %w", key, err)
	}
	return value, nil
}

// Put stores value under key, replacing any previous blob.
func (b *boltKV) Put(_ context.Context, key string, value []byte) error {
	err := b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(stateBucket).Put([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	return nil
}

// Close closes the underlying bbolt file.
func (b *boltKV) Close() error {
	return b.db.Close()
}
