package service

import (
	"sync"

	"boutik/internal/config"
	"boutik/internal/model"

	"github.com/rs/zerolog"
)

// checkoutService implements CheckoutService. Each session has at most one
// payment step in flight; the step captures total and seller tag at the
// moment checkout begins, so later cart changes do not alter it.
type checkoutService struct {
	cart   CartService
	shop   config.ShopConfig
	logger zerolog.Logger

	mu    sync.Mutex
	steps map[string]model.PaymentStep
}

// NewCheckoutService creates a checkout service routing payments per the
// shop configuration.
func NewCheckoutService(cart CartService, shop config.ShopConfig, logger zerolog.Logger) CheckoutService {
	return &checkoutService{
		cart:   cart,
		shop:   shop,
		logger: logger.With().Str("service", "checkout").Logger(),
		steps:  make(map[string]model.PaymentStep),
	}
}

// Begin captures the chosen method, the cart total and the seller tag of
// the first cart line (the configured default tag when the cart is empty).
func (s *checkoutService) Begin(token string, method model.PaymentMethod) (*model.PaymentStep, error) {
	if !method.Valid() {
		return nil, model.ErrInvalidPayment
	}

	items := s.cart.Items(token)

	seller := s.shop.DefaultSeller
	if len(items) > 0 && items[0].Seller != "" {
		seller = items[0].Seller
	}

	step := model.PaymentStep{
		Method:  method,
		Total:   model.CartTotal(items),
		Seller:  seller,
		Details: s.paymentDetails(method, seller),
	}

	s.mu.Lock()
	s.steps[token] = step
	s.mu.Unlock()

	s.logger.Info().
		Str("method", string(method)).
		Float64("total", step.Total).
		Msg("checkout started")

	return &step, nil
}

// Current returns the in-progress payment step, or nil when idle.
func (s *checkoutService) Current(token string) *model.PaymentStep {
	s.mu.Lock()
	defer s.mu.Unlock()

	if step, ok := s.steps[token]; ok {
		return &step
	}
	return nil
}

// Complete ends the checkout: the cart is cleared and the flow returns to
// idle. Nothing verifies that money actually moved.
func (s *checkoutService) Complete(token string) error {
	s.mu.Lock()
	step, ok := s.steps[token]
	if ok {
		delete(s.steps, token)
	}
	s.mu.Unlock()

	if !ok {
		return model.ErrNoCheckoutInProgress
	}

	s.cart.Clear(token)

	s.logger.Info().
		Str("method", string(step.Method)).
		Float64("total", step.Total).
		Msg("checkout completed")

	return nil
}

// Cancel abandons the in-progress step, keeping the cart.
func (s *checkoutService) Cancel(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.steps, token)
}

// paymentDetails resolves where the buyer should send the money: Wise and
// Bank route to the captured seller tag, MonCash to the shop's phone number.
func (s *checkoutService) paymentDetails(method model.PaymentMethod, seller string) model.PaymentDetails {
	switch method {
	case model.PaymentWise:
		return model.PaymentDetails{Label: "Wise Tag / Tag Peman", Value: seller}
	case model.PaymentBank:
		return model.PaymentDetails{Label: "Kont Bankè / Non Mèt", Value: seller}
	default:
		return model.PaymentDetails{Label: "Nimewo MonCash", Value: s.shop.OwnerPhone}
	}
}
