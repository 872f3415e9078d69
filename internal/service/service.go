package service

import (
	"context"

	"boutik/internal/model"
)

// CatalogService defines operations on the product catalogue. Mutations are
// gated on an admin session token and are deliberately quiet when the gate
// fails: a non-admin call is a no-op, not an error.
type CatalogService interface {
	// List returns the catalogue in insertion order (newest first).
	List() []model.Product

	// Get retrieves a single product by ID.
	Get(id string) (*model.Product, error)

	// Project computes the fixed-size gallery for a department: matching
	// products first, placeholders filling the remaining positions.
	Project(category model.Category, filter string) []model.Slot

	// Create validates the draft and adds a new product. Returns (nil, nil)
	// when the session is not admin.
	Create(ctx context.Context, token string, draft model.ProductDraft) (*model.Product, error)

	// Update replaces the mutable fields of an existing product. Returns
	// (nil, nil) when the session is not admin or the ID is unknown.
	Update(ctx context.Context, token, id string, draft model.ProductDraft) (*model.Product, error)

	// Delete removes a product. A no-op when the session is not admin, the
	// caller has not confirmed, or the ID is unknown.
	Delete(ctx context.Context, token, id string, confirmed bool) error
}

// CartService defines operations on per-session shopping carts. Carts are
// volatile: they live in memory for the lifetime of the session only.
type CartService interface {
	// Add puts the product in the session's cart, incrementing the quantity
	// if a line for it already exists. Returns the updated cart.
	Add(token, productID string) ([]model.CartItem, error)

	// Remove drops the line for the given product unconditionally.
	Remove(token, productID string) []model.CartItem

	// SetQuantity updates a line's quantity, clamping to a minimum of 1.
	// Removal is only possible through Remove.
	SetQuantity(token, productID string, quantity int) []model.CartItem

	// Items returns the session's cart lines in insertion order.
	Items(token string) []model.CartItem

	// Total returns the sum of price times quantity across the cart.
	Total(token string) float64

	// Clear empties the session's cart.
	Clear(token string)
}

// ReservationService maintains the append-only reservation log.
type ReservationService interface {
	// Reserve records a Pending reservation holding a snapshot of the
	// product as it exists right now.
	Reserve(ctx context.Context, productID string) (*model.Reservation, error)

	// List returns all reservations, newest first.
	List() []model.Reservation
}

// CommentService maintains per-product comment threads.
type CommentService interface {
	// List returns a product's comments, newest first.
	List(productID string) []model.Comment

	// Add validates and prepends a comment to the product's thread.
	Add(ctx context.Context, productID, text, userName string) (*model.Comment, error)

	// Delete removes a comment. A no-op when the session is not admin or
	// the comment does not exist.
	Delete(ctx context.Context, token, productID, commentID string) error
}

// CheckoutService drives the per-session checkout state machine:
// Idle -> MethodChosen -> (Completed -> Idle).
type CheckoutService interface {
	// Begin captures the chosen payment method together with the cart's
	// current total and the seller tag of the first cart line, and resolves
	// the routing details for the method.
	Begin(token string, method model.PaymentMethod) (*model.PaymentStep, error)

	// Current returns the in-progress payment step, or nil when idle.
	Current(token string) *model.PaymentStep

	// Complete records that the buyer reports having sent the money: the
	// cart is cleared and the flow returns to idle. No payment verification
	// happens; this is a manual trust-based handoff.
	Complete(token string) error

	// Cancel abandons the in-progress step, keeping the cart.
	Cancel(token string)
}
