package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"

	"github.com/evento/discovery-service/internal/config"
	"github.com/evento/discovery-service/internal/transport/http/handlers"
	appmw "github.com/evento/discovery-service/internal/transport/http/middleware"
)

func New(
	h *handlers.EventsHandler,
	a *handlers.AdminHandler,
	z *handlers.HealthHandler,
	adminKey *appmw.AdminKey,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	r.Use(appmw.RequestID)
	r.Use(appmw.SecurityHeaders)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(appmw.AccessLog)

	if cfg.RLEnabled {
		r.Use(httprate.LimitByIP(cfg.RLLimit, cfg.RLWindow))
	}

	r.Get("/healthz", z.Healthz)

	r.Route("/api", func(r chi.Router) {
		r.Route("/events", func(r chi.Router) {
			r.Get("/", h.List)
			r.Post("/", h.Submit)
			r.Get("/nearby", h.Nearby)
			r.Get("/{event_id}", h.Get)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(adminKey.Require)
			r.Get("/events", a.ListApproved)
			r.Post("/events", a.Create)
			r.Get("/events/pending", a.ListPending)
			r.Get("/events/{event_id}", a.Get)
			r.Put("/events/{event_id}", a.Update)
			r.Patch("/events/{event_id}/approve", a.Approve)
			r.Patch("/events/{event_id}/reject", a.Reject)
			r.Delete("/events/{event_id}", a.Delete)
		})
	})

	return r
}
