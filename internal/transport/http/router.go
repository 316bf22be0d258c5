// Package httptransport assembles the public HTTP surface: the access gate,
// the audit application form, and the catalog, behind one middleware chain.
package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	applicationHandler "fixlist/internal/application/handler"
	catalogHandler "fixlist/internal/catalog/handler"
	"fixlist/internal/platform/metrics"
	"fixlist/internal/platform/middleware"
	subscriberHandler "fixlist/internal/subscriber/handler"
)

// Deps carries everything the router mounts.
type Deps struct {
	Logger       *slog.Logger
	Metrics      *metrics.Metrics
	Access       *subscriberHandler.Handler
	Audit        *applicationHandler.Handler
	Catalog      *catalogHandler.Handler
	SheetURL     string
	AdminKeyHash string
}

// NewRouter wires all endpoints behind the shared middleware chain.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(d.Logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.ClientMetadata)
	r.Use(middleware.Logger(d.Logger))
	r.Use(middleware.Latency(d.Metrics))

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(30 * time.Second))

		d.Access.Register(r)
		d.Audit.Register(r)
		d.Catalog.Register(r)

		r.Group(func(r chi.Router) {
			r.Use(middleware.AdminKey(d.AdminKeyHash, d.Logger))
			d.Audit.RegisterAdmin(r)
		})
	})

	// The watch stream is long-lived and sits outside the request timeout.
	d.Access.RegisterStream(r)

	// The published sheet is the canonical home of the list itself.
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, d.SheetURL, http.StatusFound)
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	return r
}
