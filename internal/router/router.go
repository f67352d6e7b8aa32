package router

import (
	"net/http"

	"checkcheck/internal/handler"
	"checkcheck/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Handlers bundles the HTTP handlers mounted by the router.
type Handlers struct {
	Catalog *handler.CatalogHandler
	Cart    *handler.CartHandler
	Auth    *handler.AuthHandler
	OTP     *handler.OTPHandler
	Order   *handler.OrderHandler
	Admin   *handler.AdminHandler
}

// New creates the HTTP router with all routes and middleware configured.
func New(h Handlers, sessions *handler.Sessions, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	// Apply middleware in order: Recovery -> Logging -> CORS
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS)

	// Health check endpoint (no authentication required)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Password-reset flow. PUT verifies a code; POST performs the reset.
	r.Post("/otp/send", h.OTP.Send)
	r.Put("/otp/verify", h.OTP.Verify)
	r.Post("/otp/verify", h.OTP.Reset)

	r.Route("/api", func(r chi.Router) {
		r.Get("/menu", h.Catalog.Menu)
		r.Get("/zones", h.Catalog.Zones)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", h.Cart.Get)
			r.Delete("/", h.Cart.Clear)
			r.Post("/items", h.Cart.AddItem)
			r.Put("/items/{id}", h.Cart.UpdateItem)
			r.Delete("/items/{id}", h.Cart.RemoveItem)
			r.Put("/zone", h.Cart.SetZone)
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/logout", h.Auth.Logout)
			r.Get("/me", h.Auth.Me)
			r.Put("/profile", h.Auth.UpdateProfile)
		})

		r.Post("/orders", h.Order.Create)
		r.Get("/orders", h.Order.ListMine)

		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", h.Admin.Login)

			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminGate(sessions, logger))
				r.Post("/logout", h.Admin.Logout)
				r.Get("/orders", h.Admin.List)
				r.Get("/orders/export", h.Admin.Export)
				r.Put("/orders/{id}/status", h.Admin.UpdateStatus)
			})
		})
	})

	return r
}
