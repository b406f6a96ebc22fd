package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/calebmartin/wishlist-backend/api/controllers"
	"github.com/calebmartin/wishlist-backend/api/middleware"
	"github.com/calebmartin/wishlist-backend/internal/auth"
	"github.com/calebmartin/wishlist-backend/internal/wishlists"
	"github.com/calebmartin/wishlist-backend/pkg/config"
	"github.com/calebmartin/wishlist-backend/pkg/db"
	"github.com/calebmartin/wishlist-backend/pkg/logger"
	"github.com/calebmartin/wishlist-backend/pkg/metrics"
	"github.com/calebmartin/wishlist-backend/pkg/render"
)

// NewRouter wires the HTML pages, the JSON API and the operational
// endpoints onto a single chi mux.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	resolver middleware.IdentityResolver,
	authService auth.Service,
	registerService auth.RegisterService,
	wishlistService wishlists.Service,
	renderer *render.Renderer,
	registry *prometheus.Registry,
) http.Handler {
	r := chi.NewRouter()

	httpMetrics := metrics.NewHTTPMetrics(registry)

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	// Browser-facing pages. The role cookie only picks which page the UI
	// shows; every mutation is re-checked against the session.
	r.Group(func(r chi.Router) {
		r.Use(middleware.RoleClaim())
		r.Get("/", controllers.PageRoot())
		r.Get("/viewer", controllers.PageViewer(renderer, resolver, logg))
		r.Get("/creator", controllers.PageCreator(renderer, resolver, logg))
		r.Get("/login", controllers.PageLogin(renderer, logg))
		r.Get("/register", controllers.PageRegister(renderer, logg))
		r.Post("/set-role", controllers.SetRole())
	})

	r.Post("/register", controllers.AuthRegister(registerService, logg))
	r.Post("/login", controllers.AuthLogin(authService, logg))
	r.Get("/logout", controllers.AuthLogout(logg))

	r.Route("/api", func(r chi.Router) {
		// Reads and the purchase toggle stay open so gift buyers never
		// need an account.
		r.Get("/wishlists", controllers.WishlistList(wishlistService, logg))
		r.Post("/items/{itemID}/purchase", controllers.ItemTogglePurchase(wishlistService, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.SessionAuth(resolver, logg))
			r.Post("/wishlists", controllers.WishlistCreate(wishlistService, logg))
			r.Delete("/wishlists/{wishlistID}", controllers.WishlistDelete(wishlistService, logg))
			r.Post("/wishlists/{wishlistID}/items", controllers.ItemCreate(wishlistService, logg))
			r.Delete("/items/{itemID}", controllers.ItemDelete(wishlistService, logg))
		})
	})

	if cfg.App.StaticDir != "" {
		fs := http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.App.StaticDir)))
		r.Handle("/static/*", fs)
	}

	return r
}
