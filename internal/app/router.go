package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/mrshahbazdev/Active-Feet/internal/auth"
	"github.com/mrshahbazdev/Active-Feet/internal/bom"
	"github.com/mrshahbazdev/Active-Feet/internal/catalog"
	"github.com/mrshahbazdev/Active-Feet/internal/dashboard"
	"github.com/mrshahbazdev/Active-Feet/internal/dispatch"
	"github.com/mrshahbazdev/Active-Feet/internal/payroll"
	"github.com/mrshahbazdev/Active-Feet/internal/production"
	"github.com/mrshahbazdev/Active-Feet/internal/shared"
	"github.com/mrshahbazdev/Active-Feet/internal/stock"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger            *slog.Logger
	Config            *Config
	SessionManager    *shared.SessionManager
	AuthHandler       *auth.Handler
	CatalogHandler    *catalog.Handler
	StockHandler      *stock.Handler
	ProductionHandler *production.Handler
	DispatchHandler   *dispatch.Handler
	BOMHandler        *bom.Handler
	PayrollHandler    *payroll.Handler
	DashboardHandler  *dashboard.Handler
}

// NewRouter constructs the chi.Router with application defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:         params.Logger,
		Config:         params.Config,
		SessionManager: params.SessionManager,
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
		r.Route("/auth", params.AuthHandler.MountRoutes)

		r.Group(func(r chi.Router) {
			r.Use(RequireUser)

			r.Route("/catalog", params.CatalogHandler.MountRoutes)
			r.Route("/stock", params.StockHandler.MountRoutes)
			r.Route("/production", params.ProductionHandler.MountRoutes)
			r.Route("/dispatch", params.DispatchHandler.MountRoutes)
			r.Route("/bom", params.BOMHandler.MountRoutes)
			r.Route("/employees", params.PayrollHandler.MountRoutes)
			r.Route("/dashboard", params.DashboardHandler.MountRoutes)
		})
	})

	return r
}
