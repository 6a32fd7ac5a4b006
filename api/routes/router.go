package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mannyautos/storefront-backend/api/controllers"
	"github.com/mannyautos/storefront-backend/api/middleware"
	cartsvc "github.com/mannyautos/storefront-backend/internal/cart"
	"github.com/mannyautos/storefront-backend/internal/catalog"
	"github.com/mannyautos/storefront-backend/internal/orders"
	"github.com/mannyautos/storefront-backend/pkg/config"
	"github.com/mannyautos/storefront-backend/pkg/logger"
	"github.com/mannyautos/storefront-backend/pkg/metrics"
)

// NewRouter assembles the storefront API.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	cartStore controllers.Pinger,
	repo *catalog.Repository,
	tax *catalog.Taxonomy,
	cartService cartsvc.Service,
	handoff *orders.Handoff,
	registry *prometheus.Registry,
) http.Handler {
	r := chi.NewRouter()

	httpMetrics := metrics.NewHTTPMetrics(registry)

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.CORS(),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, cartStore))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/catalog/meta", controllers.CatalogMeta(repo))

		r.Get("/search", controllers.Search(repo, cfg.Search, logg))

		r.Route("/parts/{id}", func(r chi.Router) {
			r.Get("/", controllers.PartByID(repo, logg))
			r.Get("/selection", controllers.PartSelection(repo, logg))
		})

		r.Route("/facets", func(r chi.Router) {
			r.Get("/", controllers.FacetIndex(repo))
			r.Get("/categories", controllers.FacetCategories(repo))
			r.Get("/brands", controllers.FacetBrands(repo))
			r.Get("/models", controllers.FacetModels(repo))
			r.Get("/tags", controllers.FacetTags(repo))
		})

		r.Route("/taxonomy", func(r chi.Router) {
			r.Get("/brands", controllers.TaxonomyBrands(tax))
			r.Get("/models", controllers.TaxonomyModels(tax))
			r.Get("/years", controllers.TaxonomyYears(tax))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Use(middleware.Session(logg))
			r.Get("/", controllers.CartGet(cartService, logg))
			r.Delete("/", controllers.CartClear(cartService, logg))
			r.Post("/items", controllers.CartAdd(cartService, logg))
			r.Patch("/items/{index}", controllers.CartChangeQuantity(cartService, logg))
			r.Delete("/items/{index}", controllers.CartRemove(cartService, logg))
			r.Post("/checkout", controllers.CartCheckout(cartService, handoff, logg))
		})

		r.Route("/orders", func(r chi.Router) {
			r.Post("/quick", controllers.OrderQuick(repo, handoff, logg))
			r.Post("/inquiry", controllers.OrderInquiry(repo, handoff, logg))
		})
	})

	return r
}
