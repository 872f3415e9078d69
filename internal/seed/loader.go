package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"boutik/internal/model"

	"github.com/rs/zerolog"
)

// fileLoader implements Loader for reading seed catalogue files from disk.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based seed catalogue loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "seed-loader").Logger(),
	}
}

// Load reads a JSON seed catalogue file and returns its product list. Every
// entry must pass the same validation an admin-created product would.
func (l *fileLoader) Load(ctx context.Context, filePath string) ([]model.Product, error) {
	l.logger.Info().Str("file", filePath).Msg("loading seed catalogue file")

	data, err := os.ReadFile(filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to read seed catalogue file")
		return nil, fmt.Errorf("failed to read seed catalogue file %s: %w", filePath, err)
	}

	products, err := decodeCatalogue(data)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("invalid seed catalogue file")
		return nil, fmt.Errorf("invalid seed catalogue file %s: %w", filePath, err)
	}

	l.logger.Info().
		Str("file", filePath).
		Int("products_loaded", len(products)).
		Msg("seed catalogue file loaded successfully")

	return products, nil
}

// decodeCatalogue parses and validates a JSON product list.
func decodeCatalogue(data []byte) ([]model.Product, error) {
	var products []model.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("failed to parse product list: %w", err)
	}

	seen := make(map[string]struct{}, len(products))
	for i, p := range products {
		if p.ID == "" {
			return nil, fmt.Errorf("product %d: missing id", i)
		}
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("product %d: duplicate id %s", i, p.ID)
		}
		seen[p.ID] = struct{}{}

		if p.Name == "" {
			return nil, fmt.Errorf("product %s: missing name", p.ID)
		}
		if !p.Category.Valid() {
			return nil, fmt.Errorf("product %s: invalid category %q", p.ID, p.Category)
		}
		if p.Price < 0 {
			return nil, fmt.Errorf("product %s: negative price", p.ID)
		}
	}

	return products, nil
}
