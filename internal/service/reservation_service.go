package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"boutik/internal/model"
	"boutik/internal/store"

	"github.com/rs/zerolog"
)

// reservationService implements ReservationService. The log is append-only
// and newest-first; every reservation owns a full snapshot of the product as
// it was at reservation time.
//
// Status transitions beyond Pending are an extension point: the Confirmed
// and Cancelled states round-trip through the store but no operation here
// produces them yet.
type reservationService struct {
	store   store.Store
	catalog CatalogService
	logger  zerolog.Logger

	mu           sync.Mutex
	reservations []model.Reservation
}

// NewReservationService creates a reservation service, loading the persisted
// log (an absent or malformed blob yields an empty log).
func NewReservationService(
	ctx context.Context,
	st store.Store,
	catalog CatalogService,
	logger zerolog.Logger,
) (ReservationService, error) {
	logger = logger.With().Str("service", "reservation").Logger()

	reservations, err := st.LoadReservations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load reservations: %w", err)
	}

	logger.Info().Int("count", len(reservations)).Msg("reservation log loaded")

	return &reservationService{
		store:        st,
		catalog:      catalog,
		logger:       logger,
		reservations: reservations,
	}, nil
}

// Reserve records a Pending reservation holding a snapshot of the product.
func (s *reservationService) Reserve(ctx context.Context, productID string) (*model.Reservation, error) {
	product, err := s.catalog.Get(productID)
	if err != nil {
		return nil, err
	}

	reservation := model.Reservation{
		ID:      model.NewID(),
		Product: *product,
		Date:    model.FormatLongDate(time.Now()),
		Status:  model.StatusPending,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.reservations = append([]model.Reservation{reservation}, s.reservations...)

	if err := s.store.SaveReservations(ctx, s.reservations); err != nil {
		s.logger.Error().Err(err).Msg("failed to persist reservations")
		return nil, fmt.Errorf("failed to persist reservations: %w", err)
	}

	s.logger.Info().
		Str("reservation_id", reservation.ID).
		Str("product_id", productID).
		Msg("product reserved")

	return &reservation, nil
}

// List returns all reservations, newest first.
func (s *reservationService) List() []model.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Reservation, len(s.reservations))
	copy(out, s.reservations)
	return out
}
