package store

import (
	"context"
	"fmt"
	"time"

	"boutik/internal/config"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// postgresKV implements KV on a single-table Postgres key-value schema, for
// deployments that want the state in a managed database instead of a local
// file. Semantics are identical to the bbolt backend.
type postgresKV struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewPool creates a PostgreSQL connection pool for the state store.
func NewPool(ctx context.Context, cfg config.PostgresConfig, logger zerolog.Logger) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolConfig.MaxConns = int32(cfg.MaxConnections)
	poolConfig.MinConns = int32(cfg.MinConnections)
	poolConfig.MaxConnLifetime = time.Duration(cfg.MaxConnLifetime) * time.Second
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	logger.Info().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Str("database", cfg.Database).
		Msg("creating database connection pool")

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, nil
}

// NewPostgres creates a Postgres-backed KV on the given pool, ensuring the
// state table exists.
func NewPostgres(ctx context.Context, pool *pgxpool.Pool, logger zerolog.Logger) (KV, error) {
	logger = logger.With().Str("component", "postgres-kv").Logger()

	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS app_state (
			key   TEXT PRIMARY KEY,
			value BYTEA NOT NULL
		)
	`)
	if err != nil {
		logger.Error().Err(err).Msg("failed to create state table")
		return nil, fmt.Errorf("failed to create state table: %w", err)
	}

	logger.Info().Msg("postgres state store ready")

	return &postgresKV{pool: pool, logger: logger}, nil
}

// Get returns the blob stored under key, or (nil, nil) when absent.
func (p *postgresKV) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := p.pool.QueryRow(ctx, `SELECT value FROM app_state WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		p.logger.Error().Err(err).Str("key", key).Msg("failed to query state blob")
		return nil, fmt.Errorf("failed to query key %s: %w", key, err)
	}
	return value, nil
}

// Put stores value under key, replacing any previous blob.
func (p *postgresKV) Put(ctx context.Context, key string, value []byte) error {
	_, err := p.pool.Exec(ctx, `
		INSERT INTO app_state (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value
	`, key, value)
	if err != nil {
		p.logger.Error().Err(err).Str("key", key).Msg("failed to write state blob")
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	return nil
}

// Close closes the underlying connection pool.
func (p *postgresKV) Close() error {
	p.pool.Close()
	return nil
}
