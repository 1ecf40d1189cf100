package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"donatehub/internal/domain"
	"donatehub/internal/http/handlers"
	"donatehub/internal/infra"
	"donatehub/internal/middleware"
)

// NewRouter wires every route group. Public reads stay outside the auth
// middleware; write paths and personal views require a Bearer token, and
// role-gated groups stack RequireRole on top.
func NewRouter(app *handlers.App, cfg *infra.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(app.Logger),
		middleware.CORS(cfg.AllowedOrigins),
		middleware.RateLimit(cfg.RateLimitPerMin, time.Minute),
	)

	authed := middleware.Authenticate(app.Tokens)

	r.Get("/v1/healthz", app.Health)

	r.Route("/users", func(r chi.Router) {
		r.Post("/register", app.UsersRegister)
		r.Post("/login", app.UsersLogin)

		r.Group(func(r chi.Router) {
			r.Use(authed)
			r.Post("/logout", app.UsersLogout)
			r.Post("/update-details", app.UsersUpdateDetails)
			r.Post("/change-password", app.UsersChangePassword)
			r.Post("/current-user", app.UsersCurrent)
		})
	})

	r.Route("/campaigns", func(r chi.Router) {
		r.Get("/", app.CampaignsList)
		r.Get("/categories", app.CampaignsCategories)

		r.Group(func(r chi.Router) {
			r.Use(authed, middleware.RequireRole(domain.RoleNGO))
			r.Get("/my-campaigns", app.CampaignsMine)
			r.Post("/create", app.CampaignsCreate)
		})

		r.Get("/{campaignID}", app.CampaignsGet)
		r.Group(func(r chi.Router) {
			r.Use(authed)
			r.Put("/{campaignID}", app.CampaignsUpdate)
			r.Delete("/{campaignID}", app.CampaignsDelete)
		})
	})

	r.Route("/donations", func(r chi.Router) {
		r.Use(authed)
		r.Post("/donate", app.DonationsDonate)
		r.Get("/history", app.DonationsHistory)
		r.Get("/supported-campaigns", app.DonationsSupportedCampaigns)
		r.Get("/campaign/{campaignID}", app.DonationsByCampaign)
		r.Get("/{donationID}", app.DonationsGet)
	})

	r.Route("/dashboard", func(r chi.Router) {
		r.Get("/stats", app.DashboardStats)

		r.Group(func(r chi.Router) {
			r.Use(authed, middleware.RequireRole(domain.RoleNGO))
			r.Get("/ngo", app.DashboardNGO)
		})
		r.Group(func(r chi.Router) {
			r.Use(authed, middleware.RequireRole(domain.RoleDonor))
			r.Get("/donor", app.DashboardDonor)
		})
	})

	return r
}
