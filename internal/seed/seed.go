// Package seed provides the built-in seed catalogue and the loaders that can
// replace it with an operator-supplied one from disk or S3. The seed is only
// used when the state store holds no product blob yet.
package seed

import (
	"context"

	"boutik/internal/config"
	"boutik/internal/model"

	"github.com/rs/zerolog"
)

// Loader reads a seed catalogue from an external source.
type Loader interface {
	// Load reads a JSON product list from the given source (file path or
	// object key, depending on the implementation).
	Load(ctx context.Context, source string) ([]model.Product, error)
}

// Builtin returns the default seed catalogue.
func Builtin() []model.Product {
	return []model.Product{
		{
			ID:          "1",
			Name:        "Wòb Swa Elegan",
			Category:    model.CategoryRad,
			Price:       4500,
			Image:       "https://picsum.photos/seed/dress1/400/500",
			Description: "Yon bèl wòb swa pou tout okazyon espesyal ou yo.",
		},
		{
			ID:          "2",
			Name:        "Sandal Kwi Atizanal",
			Category:    model.CategorySandal,
			Price:       2500,
			Image:       "https://picsum.photos/seed/sandal1/400/500",
			Description: "Sandal kwi bon kalite, konfòtab ak dirab.",
		},
		{
			ID:          "3",
			Name:        "Cheve Brezilyen 22 pous",
			Category:    model.CategoryCheve,
			Price:       15000,
			Image:       "https://picsum.photos/seed/hair1/400/500",
			Description: "Cheve natirèl 100%, ou ka kolore l epi lave l san pwoblèm.",
		},
		{
			ID:          "4",
			Name:        "Chenn Lò 14K",
			Category:    model.CategoryBijou,
			Price:       25000,
			Image:       "https://picsum.photos/seed/jewelry1/400/500",
			Description: "Yon bèl chenn an lò pou ba w plis klere.",
		},
		{
			ID:          "5",
			Name:        "Twous Makiyaj Pwofesyonèl",
			Category:    model.CategoryKosmetik,
			Price:       3500,
			Image:       "https://picsum.photos/seed/cosmetic1/400/500",
			Description: "Tout sa w bezwen pou w toujou parèt bèl.",
		},
		{
			ID:          "6",
			Name:        "Anpoul LED Smart",
			Category:    model.CategoryElektrik,
			Price:       750,
			Image:       "https://picsum.photos/seed/electric1/400/500",
			Description: "Anpoul k ap ekonomize kouran epi ou ka kontwole ak telefòn ou.",
		},
		{
			ID:          "7",
			Name:        "Chemiz Gason Klasik",
			Category:    model.CategoryRad,
			Price:       1800,
			Image:       "https://picsum.photos/seed/shirt1/400/500",
			Description: "Chemiz koton fre pou travay oswa randevou.",
		},
		{
			ID:          "8",
			Name:        "Pwodwi Swen Po",
			Category:    model.CategoryKosmetik,
			Price:       2200,
			Image:       "https://picsum.photos/seed/skin1/400/500",
			Description: "Krèm idratan pou kenbe po w jèn epi an sante.",
		},
	}
}

// Catalogue resolves the seed catalogue for this deployment: an
// operator-supplied file or S3 object when configured, otherwise the
// built-in seed. Loader failures degrade to the built-in seed rather than
// blocking startup.
func Catalogue(ctx context.Context, cfg config.SeedConfig, loader Loader, logger zerolog.Logger) []model.Product {
	logger = logger.With().Str("component", "seed").Logger()

	source := cfg.File
	if cfg.S3Config.Enabled {
		source = cfg.S3Config.Key
	}

	if source == "" || loader == nil {
		logger.Debug().Msg("using built-in seed catalogue")
		return Builtin()
	}

	products, err := loader.Load(ctx, source)
	if err != nil {
		logger.Warn().
			Err(err).
			Str("source", source).
			Msg("failed to load seed catalogue, falling back to built-in seed")
		return Builtin()
	}

	if len(products) == 0 {
		logger.Warn().Str("source", source).Msg("seed catalogue is empty, falling back to built-in seed")
		return Builtin()
	}

	logger.Info().
		Str("source", source).
		Int("products", len(products)).
		Msg("seed catalogue loaded")

	return products
}
