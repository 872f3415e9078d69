package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"boutik/internal/model"
	"boutik/internal/session"
	"boutik/internal/store"

	"github.com/rs/zerolog"
)

// catalogService implements CatalogService. The catalogue is held in memory
// and rewritten to the store in full after every mutation; there is exactly
// one writer process, so no cross-process coordination is needed.
type catalogService struct {
	store         store.Store
	sessions      *session.Manager
	defaultSeller string
	logger        zerolog.Logger

	mu       sync.RWMutex
	products []model.Product
}

// NewCatalogService creates a catalog service, loading the persisted
// catalogue or falling back to the given seed when the store holds none.
func NewCatalogService(
	ctx context.Context,
	st store.Store,
	sessions *session.Manager,
	seed []model.Product,
	defaultSeller string,
	logger zerolog.Logger,
) (CatalogService, error) {
	logger = logger.With().Str("service", "catalog").Logger()

	products, err := st.LoadProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalogue: %w", err)
	}

	if products == nil {
		products = make([]model.Product, len(seed))
		copy(products, seed)
		if err := st.SaveProducts(ctx, products); err != nil {
			return nil, fmt.Errorf("failed to persist seed catalogue: %w", err)
		}
		logger.Info().Int("count", len(products)).Msg("catalogue seeded")
	} else {
		logger.Info().Int("count", len(products)).Msg("catalogue loaded")
	}

	return &catalogService{
		store:         st,
		sessions:      sessions,
		defaultSeller: defaultSeller,
		logger:        logger,
		products:      products,
	}, nil
}

// List returns the catalogue in insertion order (newest first).
func (s *catalogService) List() []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Get retrieves a single product by ID.
func (s *catalogService) Get(id string) (*model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, model.ErrProductNotFound
}

// Project computes the fixed-size gallery for a department. Matching
// products keep catalogue order; placeholders fill the remaining positions
// up to the fixed gallery size. When more products match than there are
// positions, all of them are returned and no placeholder is added — the
// gallery grows rather than truncating.
func (s *catalogService) Project(category model.Category, filter string) []model.Slot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(filter)

	slots := make([]model.Slot, 0, model.SlotsPerCategory)
	for _, p := range s.products {
		if p.Category != category {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(p.Name), needle) {
			continue
		}
		slots = append(slots, model.Slot{Product: p})
	}

	for len(slots) < model.SlotsPerCategory {
		slots = append(slots, model.NewPlaceholderSlot(category, len(slots)))
	}

	return slots
}

// Create validates the draft and prepends a new product to the catalogue.
func (s *catalogService) Create(ctx context.Context, token string, draft model.ProductDraft) (*model.Product, error) {
	if !s.sessions.IsAdmin(token) {
		s.logger.Debug().Msg("create ignored: session is not admin")
		return nil, nil
	}

	product, err := draft.Build(model.NewID(), s.defaultSeller)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = append([]model.Product{product}, s.products...)

	if err := s.persistLocked(ctx); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("product_id", product.ID).
		Str("category", string(product.Category)).
		Msg("product created")

	return &product, nil
}

// Update replaces the mutable fields of an existing product in place,
// preserving its identity and position.
func (s *catalogService) Update(ctx context.Context, token, id string, draft model.ProductDraft) (*model.Product, error) {
	if !s.sessions.IsAdmin(token) {
		s.logger.Debug().Str("product_id", id).Msg("update ignored: session is not admin")
		return nil, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, p := range s.products {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.logger.Debug().Str("product_id", id).Msg("update ignored: unknown product")
		return nil, nil
	}

	product, err := draft.Build(id, s.defaultSeller)
	if err != nil {
		return nil, err
	}

	s.products[idx] = product

	if err := s.persistLocked(ctx); err != nil {
		return nil, err
	}

	s.logger.Info().Str("product_id", id).Msg("product updated")

	return &product, nil
}

// Delete removes a product from the catalogue. Cart lines and reservations
// keep their value snapshots; nothing cascades.
func (s *catalogService) Delete(ctx context.Context, token, id string, confirmed bool) error {
	if !s.sessions.IsAdmin(token) {
		s.logger.Debug().Str("product_id", id).Msg("delete ignored: session is not admin")
		return nil
	}
	if !confirmed {
		s.logger.Debug().Str("product_id", id).Msg("delete ignored: not confirmed")
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.products {
		if p.ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)

			if err := s.persistLocked(ctx); err != nil {
				return err
			}

			s.logger.Info().Str("product_id", id).Msg("product deleted")
			return nil
		}
	}

	s.logger.Debug().Str("product_id", id).Msg("delete ignored: unknown product")
	return nil
}

// persistLocked writes the full catalogue to the store. Callers must hold
// the write lock.
func (s *catalogService) persistLocked(ctx context.Context) error {
	if err := s.store.SaveProducts(ctx, s.products); err != nil {
		s.logger.Error().Err(err).Msg("failed to persist catalogue")
		return fmt.Errorf("failed to persist catalogue: %w", err)
	}
	return nil
}
