package store

import (
	"context"
	"encoding/json"
	"fmt"

	"boutik/internal/model"

	"github.com/rs/zerolog"
)

// Keys of the three top-level state blobs. The names are part of the
// persisted format and must not change.
const (
	KeyProducts     = "res_products"
	KeyComments     = "res_comments"
	KeyReservations = "res_reservations"
)

// Store persists the three top-level state trees. Loads return a nil
// collection when the key is absent or its blob cannot be decoded; callers
// substitute their defaults (seed catalogue, empty map, empty log).
type Store interface {
	LoadProducts(ctx context.Context) ([]model.Product, error)
	SaveProducts(ctx context.Context, products []model.Product) error

	LoadComments(ctx context.Context) (map[string][]model.Comment, error)
	SaveComments(ctx context.Context, comments map[string][]model.Comment) error

	LoadReservations(ctx context.Context) ([]model.Reservation, error)
	SaveReservations(ctx context.Context, reservations []model.Reservation) error

	// Close releases the underlying key-value store.
	Close() error
}

// KV is a raw string-keyed blob store. Get returns (nil, nil) when the key
// is absent.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Close() error
}

// blobStore implements Store by JSON-encoding each state tree into one KV
// entry, rewritten in full after every mutation.
type blobStore struct {
	kv     KV
	logger zerolog.Logger
}

// New creates a Store on top of the given key-value backend.
func New(kv KV, logger zerolog.Logger) Store {
	return &blobStore{
		kv:     kv,
		logger: logger.With().Str("component", "store").Logger(),
	}
}

// LoadProducts retrieves the persisted product list. A nil result means the
// store holds no usable product blob.
func (s *blobStore) LoadProducts(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := s.load(ctx, KeyProducts, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// SaveProducts overwrites the persisted product list.
func (s *blobStore) SaveProducts(ctx context.Context, products []model.Product) error {
	return s.save(ctx, KeyProducts, products)
}

// LoadComments retrieves the persisted comment mapping.
func (s *blobStore) LoadComments(ctx context.Context) (map[string][]model.Comment, error) {
	var comments map[string][]model.Comment
	if err := s.load(ctx, KeyComments, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// SaveComments overwrites the persisted comment mapping.
func (s *blobStore) SaveComments(ctx context.Context, comments map[string][]model.Comment) error {
	return s.save(ctx, KeyComments, comments)
}

// LoadReservations retrieves the persisted reservation log.
func (s *blobStore) LoadReservations(ctx context.Context) ([]model.Reservation, error) {
	var reservations []model.Reservation
	if err := s.load(ctx, KeyReservations, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

// SaveReservations overwrites the persisted reservation log.
func (s *blobStore) SaveReservations(ctx context.Context, reservations []model.Reservation) error {
	return s.save(ctx, KeyReservations, reservations)
}

// Close releases the underlying key-value store.
func (s *blobStore) Close() error {
	return s.kv.Close()
}

// load decodes the blob at key into dst. An absent key leaves dst zero. A
// malformed blob is logged and treated as absent rather than failing the
// caller: state degrades to built-in defaults instead of wedging the app.
func (s *blobStore) load(ctx context.Context, key string, dst interface{}) error {
	data, err := s.kv.Get(ctx, key)
	if err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("failed to read state blob")
		return fmt.Errorf("failed to read state blob %s: %w", key, err)
	}
	if data == nil {
		return nil
	}

	if err := json.Unmarshal(data, dst); err != nil {
		s.logger.Warn().
			Err(err).
			Str("key", key).
			Int("size", len(data)).
			Msg("discarding malformed state blob, falling back to defaults")
		return nil
	}

	return nil
}

// save encodes src and overwrites the blob at key.
func (s *blobStore) save(ctx context.Context, key string, src interface{}) error {
	data, err := json.Marshal(src)
	if err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("failed to encode state blob")
		return fmt.Errorf("failed to encode state blob %s: %w", key, err)
	}

	if err := s.kv.Put(ctx, key, data); err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("failed to write state blob")
		return fmt.Errorf("failed to write state blob %s: %w", key, err)
	}

	return nil
}
