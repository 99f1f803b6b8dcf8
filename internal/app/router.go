package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/atlas-backoffice/atlas-backoffice/internal/addresses"
	"github.com/atlas-backoffice/atlas-backoffice/internal/categories"
	"github.com/atlas-backoffice/atlas-backoffice/internal/customers"
	"github.com/atlas-backoffice/atlas-backoffice/internal/departments"
	"github.com/atlas-backoffice/atlas-backoffice/internal/groups"
	"github.com/atlas-backoffice/atlas-backoffice/internal/observability"
	"github.com/atlas-backoffice/atlas-backoffice/internal/products"
	"github.com/atlas-backoffice/atlas-backoffice/jobs"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger *slog.Logger
	Config *Config

	DepartmentHandler *departments.Handler
	CustomerHandler   *customers.Handler
	AddressHandler    *addresses.Handler
	GroupHandler      *groups.Handler
	ProductHandler    *products.Handler
	CategoryHandler   *categories.Handler
	JobHandler        *jobs.Handler

	Metrics *observability.Metrics
}

// NewRouter constructs the chi.Router with Atlas defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:  params.Logger,
		Config:  params.Config,
		Metrics: params.Metrics,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/departments", params.DepartmentHandler.MountRoutes)
		r.Route("/customers", params.CustomerHandler.MountRoutes)
		r.Route("/addresses", params.AddressHandler.MountRoutes)
		r.Route("/groups", params.GroupHandler.MountRoutes)
		r.Route("/products", params.ProductHandler.MountRoutes)
		r.Route("/categories", params.CategoryHandler.MountRoutes)
		if params.JobHandler != nil {
			r.Route("/jobs", params.JobHandler.MountRoutes)
		}
	})

	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	return r
}
