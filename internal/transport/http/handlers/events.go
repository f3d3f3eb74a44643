package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/evento/discovery-service/internal/application/event"
	"github.com/evento/discovery-service/internal/domain"
	"github.com/evento/discovery-service/internal/transport/http/dto"
	"github.com/evento/discovery-service/internal/transport/http/response"
	"github.com/evento/discovery-service/internal/transport/http/validate"
)

type EventsHandler struct {
	svc *event.Service
}

func NewEventsHandler(svc *event.Service) *EventsHandler {
	return &EventsHandler{svc: svc}
}

// Nearby handles GET /api/events/nearby?lat=&lng=[&radius_km=].
// Results are approved listings within the radius, nearest first, each
// annotated with its great-circle distance.
func (h *EventsHandler) Nearby(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	lat, lng, err := validate.ParseLatLng(q)
	if err != nil {
		response.Err(w, err)
		return
	}
	radiusKm := validate.ParseOptionalFloat(q, "radius_km")

	items, err := h.svc.Nearby(r.Context(), lat, lng, radiusKm)
	if err != nil {
		response.Err(w, err)
		return
	}

	out := dto.ToNearbyRespList(items)
	response.DataCount(w, http.StatusOK, len(out), out)
}

// List handles GET /api/events: approved listings newest-first, optionally
// narrowed in memory by q, categories, date and lat/lng/radius_km params.
func (h *EventsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	criteria := domain.Criteria{
		Query:  q.Get("q"),
		Window: domain.ParseDateWindow(q.Get("date")),
	}
	if raw := strings.TrimSpace(q.Get("categories")); raw != "" {
		criteria.Categories = strings.Split(raw, ",")
	}
	if q.Get("lat") != "" || q.Get("lng") != "" {
		lat, lng, err := validate.ParseLatLng(q)
		if err != nil {
			response.Err(w, err)
			return
		}
		if err := domain.ValidatePoint(lng, lat); err != nil {
			response.Err(w, err)
			return
		}
		criteria.Origin = &domain.Origin{Lat: lat, Lng: lng}
		criteria.RadiusKm = validate.ParseOptionalFloat(q, "radius_km")
	}

	events, err := h.svc.ListApproved(r.Context(), criteria)
	if err != nil {
		response.Err(w, err)
		return
	}

	out := dto.ToEventRespList(events)
	response.DataCount(w, http.StatusOK, len(out), out)
}

// Get handles GET /api/events/{event_id}. Only approved listings are
// reachable on this path.
func (h *EventsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "event_id")
	if !validate.IsUUID(id) {
		response.Err(w, domain.ErrInvalidID("invalid event id format"))
		return
	}

	e, err := h.svc.GetPublic(r.Context(), id)
	if err != nil {
		response.Err(w, err)
		return
	}

	response.Data(w, http.StatusOK, dto.ToEventResp(e))
}

// Submit handles POST /api/events: public submission, forced to pending.
func (h *EventsHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEventReq
	if err := validate.DecodeJSON(r, &req); err != nil {
		response.Err(w, domain.ErrValidationMeta("invalid json body", map[string]string{
			"body": "malformed JSON or invalid fields",
		}))
		return
	}

	in, err := req.Input()
	if err != nil {
		response.Err(w, err)
		return
	}

	e, err := h.svc.Submit(r.Context(), in)
	if err != nil {
		response.Err(w, err)
		return
	}

	response.Accepted(w, http.StatusCreated,
		"Event submitted successfully. It will be reviewed by an admin.",
		dto.SubmitResp{ID: e.ID, Title: e.Title, Status: string(e.Status)},
	)
}
