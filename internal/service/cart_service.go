package service

import (
	"sync"

	"boutik/internal/model"

	"github.com/rs/zerolog"
)

// cartService implements CartService with in-memory per-session carts. Cart
// lines hold value snapshots of products, so catalogue edits made after an
// item was added do not change what is in the cart.
type cartService struct {
	catalog CatalogService
	logger  zerolog.Logger

	mu    sync.Mutex
	carts map[string][]model.CartItem
}

// NewCartService creates a cart service backed by the given catalogue.
func NewCartService(catalog CatalogService, logger zerolog.Logger) CartService {
	return &cartService{
		catalog: catalog,
		logger:  logger.With().Str("service", "cart").Logger(),
		carts:   make(map[string][]model.CartItem),
	}
}

// Add puts the product in the session's cart: a second add of the same
// product increments its quantity instead of creating a second line.
func (s *cartService) Add(token, productID string) ([]model.CartItem, error) {
	product, err := s.catalog.Get(productID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[token]
	for i := range items {
		if items[i].ID == productID {
			items[i].Quantity++
			s.logger.Debug().
				Str("product_id", productID).
				Int("quantity", items[i].Quantity).
				Msg("cart quantity incremented")
			return s.snapshotLocked(token), nil
		}
	}

	s.carts[token] = append(items, model.CartItem{Product: *product, Quantity: 1})

	s.logger.Debug().Str("product_id", productID).Msg("cart line added")

	return s.snapshotLocked(token), nil
}

// Remove drops the line for the given product unconditionally.
func (s *cartService) Remove(token, productID string) []model.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[token]
	for i := range items {
		if items[i].ID == productID {
			s.carts[token] = append(items[:i], items[i+1:]...)
			s.logger.Debug().Str("product_id", productID).Msg("cart line removed")
			break
		}
	}

	return s.snapshotLocked(token)
}

// SetQuantity updates a line's quantity, clamping to a minimum of 1. A
// quantity of zero never removes the line; that is Remove's job.
func (s *cartService) SetQuantity(token, productID string, quantity int) []model.CartItem {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[token]
	for i := range items {
		if items[i].ID == productID {
			items[i].Quantity = quantity
			break
		}
	}

	return s.snapshotLocked(token)
}

// Items returns the session's cart lines in insertion order.
func (s *cartService) Items(token string) []model.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshotLocked(token)
}

// Total returns the sum of price times quantity across the cart.
func (s *cartService) Total(token string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return model.CartTotal(s.carts[token])
}

// Clear empties the session's cart.
func (s *cartService) Clear(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, token)
}

// snapshotLocked copies the session's cart. Callers must hold the lock.
func (s *cartService) snapshotLocked(token string) []model.CartItem {
	items := s.carts[token]
	out := make([]model.CartItem, len(items))
	copy(out, items)
	return out
}
