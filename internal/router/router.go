package router

import (
	"net/http"

	"boutik/internal/handler"
	"boutik/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	sessionHandler *handler.SessionHandler,
	productHandler *handler.ProductHandler,
	cartHandler *handler.CartHandler,
	reservationHandler *handler.ReservationHandler,
	commentHandler *handler.CommentHandler,
	checkoutHandler *handler.CheckoutHandler,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Sessions and the admin PIN gate
	mux.HandleFunc("POST /api/sessions", sessionHandler.Create)
	mux.HandleFunc("POST /api/sessions/login", sessionHandler.Login)
	mux.HandleFunc("POST /api/sessions/logout", sessionHandler.Logout)
	mux.HandleFunc("GET /api/sessions/me", sessionHandler.Me)

	// Catalogue and department galleries
	mux.HandleFunc("GET /api/categories", productHandler.Categories)
	mux.HandleFunc("GET /api/slots", productHandler.Slots)
	mux.HandleFunc("GET /api/products", productHandler.GetAll)
	mux.HandleFunc("POST /api/products", productHandler.Create)
	mux.HandleFunc("GET /api/products/{id}", productHandler.GetByID)
	mux.HandleFunc("PUT /api/products/{id}", productHandler.Update)
	mux.HandleFunc("DELETE /api/products/{id}", productHandler.Delete)

	// Carts
	mux.HandleFunc("GET /api/cart", cartHandler.Get)
	mux.HandleFunc("POST /api/cart/items", cartHandler.AddItem)
	mux.HandleFunc("PATCH /api/cart/items/{id}", cartHandler.UpdateItem)
	mux.HandleFunc("DELETE /api/cart/items/{id}", cartHandler.RemoveItem)

	// Reservations
	mux.HandleFunc("GET /api/reservations", reservationHandler.GetAll)
	mux.HandleFunc("POST /api/reservations", reservationHandler.Create)

	// Comments
	mux.HandleFunc("GET /api/products/{id}/comments", commentHandler.GetAll)
	mux.HandleFunc("POST /api/products/{id}/comments", commentHandler.Create)
	mux.HandleFunc("DELETE /api/products/{id}/comments/{commentId}", commentHandler.Delete)

	// Checkout
	mux.HandleFunc("GET /api/checkout", checkoutHandler.Get)
	mux.HandleFunc("POST /api/checkout", checkoutHandler.Begin)
	mux.HandleFunc("POST /api/checkout/complete", checkoutHandler.Complete)
	mux.HandleFunc("POST /api/checkout/cancel", checkoutHandler.Cancel)

	// Apply middleware in order: Recovery -> Logging -> CORS
	var h http.Handler = mux
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
