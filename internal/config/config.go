package config

import (
	"fmt"
	"os"
	"strconv"
)

// Store drivers.
const (
	DriverBolt     = "bolt"
	DriverPostgres = "postgres"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	Store  StoreConfig
	Logger LoggerConfig
	Shop   ShopConfig
	Seed   SeedConfig
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host string
	Port int
}

// StoreConfig selects and configures the state store backend.
type StoreConfig struct {
	Driver   string // "bolt" or "postgres"
	Path     string // bbolt file path
	Postgres PostgresConfig
}

// PostgresConfig holds connection settings for the Postgres state store.
type PostgresConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Database        string
	MaxConnections  int
	MinConnections  int
	MaxConnLifetime int // seconds
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// ShopConfig holds storefront-wide settings: the operator PIN and the
// payment routing constants.
type ShopConfig struct {
	AdminPIN      string
	OwnerPhone    string // MonCash destination
	DefaultSeller string // fallback seller tag
}

// SeedConfig configures the optional seed-catalogue override.
type SeedConfig struct {
	File     string // local JSON file; empty means built-in seed only
	S3Config S3Config
}

// S3Config holds AWS S3 configuration for seed-catalogue files.
type S3Config struct {
	Enabled bool
	Bucket  string
	Region  string
	Key     string // object key of the seed catalogue JSON
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 8080),
		},
		Store: StoreConfig{
			Driver: getEnv("STORE_DRIVER", DriverBolt),
			Path:   getEnv("STORE_PATH", "data/boutik.db"),
			Postgres: PostgresConfig{
				Host:            getEnv("DB_HOST", "localhost"),
				Port:            getEnvAsInt("DB_PORT", 5432),
				User:            getEnv("DB_USER", "postgres"),
				Password:        getEnv("DB_PASSWORD", ""),
				Database:        getEnv("DB_NAME", "boutik"),
				MaxConnections:  getEnvAsInt("DB_MAX_CONNECTIONS", 25),
				MinConnections:  getEnvAsInt("DB_MIN_CONNECTIONS", 5),
				MaxConnLifetime: getEnvAsInt("DB_MAX_CONN_LIFETIME", 300),
			},
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Shop: ShopConfig{
			AdminPIN:      getEnv("ADMIN_PIN", "2025"),
			OwnerPhone:    getEnv("OWNER_PHONE", "+1 849-470-6077"),
			DefaultSeller: getEnv("DEFAULT_SELLER", "$emilien"),
		},
		Seed: SeedConfig{
			File: getEnv("SEED_FILE", ""),
			S3Config: S3Config{
				Enabled: getEnvAsBool("S3_ENABLED", false),
				Bucket:  getEnv("S3_BUCKET", ""),
				Region:  getEnv("S3_REGION", "us-east-1"),
				Key:     getEnv("S3_KEY", "seed/catalogue.json"),
			},
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	switch c.Store.Driver {
	case DriverBolt:
		if c.Store.Path == "" {
			return fmt.Errorf("store path is required for the bolt driver")
		}
	case DriverPostgres:
		pg := c.Store.Postgres
		if pg.Host == "" {
			return fmt.Errorf("database host is required")
		}
		if pg.Port < 1 || pg.Port > 65535 {
			return fmt.Errorf("invalid database port: %d", pg.Port)
		}
		if pg.User == "" {
			return fmt.Errorf("database user is required")
		}
		if pg.Database == "" {
			return fmt.Errorf("database name is required")
		}
		if pg.MaxConnections < 1 {
			return fmt.Errorf("database max connections must be at least 1")
		}
		if pg.MinConnections < 1 {
			return fmt.Errorf("database min connections must be at least 1")
		}
		if pg.MinConnections > pg.MaxConnections {
			return fmt.Errorf("database min connections cannot exceed max connections")
		}
	default:
		return fmt.Errorf("invalid store driver: %s (must be %s or %s)", c.Store.Driver, DriverBolt, DriverPostgres)
	}

	if c.Shop.AdminPIN == "" {
		return fmt.Errorf("admin PIN is required")
	}

	if c.Shop.OwnerPhone == "" {
		return fmt.Errorf("owner phone is required")
	}

	if c.Shop.DefaultSeller == "" {
		return fmt.Errorf("default seller tag is required")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	if c.Seed.S3Config.Enabled {
		if c.Seed.S3Config.Bucket == "" {
			return fmt.Errorf("S3 bucket is required when S3 is enabled")
		}
		if c.Seed.S3Config.Region == "" {
			return fmt.Errorf("S3 region is required when S3 is enabled")
		}
	}

	return nil
}

// ConnectionString returns the PostgreSQL connection string.
func (c *PostgresConfig) ConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
	)
}

// Address returns the server address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value.
func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
