package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/evento/discovery-service/internal/application/event"
	"github.com/evento/discovery-service/internal/domain"
	"github.com/evento/discovery-service/internal/transport/http/dto"
	"github.com/evento/discovery-service/internal/transport/http/response"
	"github.com/evento/discovery-service/internal/transport/http/validate"
)

// AdminHandler serves the moderation surface. Routes mounting it are gated
// by the admin-key middleware.
type AdminHandler struct {
	svc *event.Service
}

func NewAdminHandler(svc *event.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

// ListApproved handles GET /api/admin/events.
func (h *AdminHandler) ListApproved(w http.ResponseWriter, r *http.Request) {
	events, err := h.svc.ListApproved(r.Context(), domain.Criteria{})
	if err != nil {
		response.Err(w, err)
		return
	}
	out := dto.ToEventRespList(events)
	response.DataCount(w, http.StatusOK, len(out), out)
}

// ListPending handles GET /api/admin/events/pending: the moderation queue.
func (h *AdminHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	events, err := h.svc.ListPending(r.Context())
	if err != nil {
		response.Err(w, err)
		return
	}
	out := dto.ToEventRespList(events)
	response.DataCount(w, http.StatusOK, len(out), out)
}

// Get handles GET /api/admin/events/{event_id}: any status is visible.
func (h *AdminHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "event_id")
	if !validate.IsUUID(id) {
		response.Err(w, domain.ErrInvalidID("invalid event id format"))
		return
	}

	e, err := h.svc.GetAdmin(r.Context(), id)
	if err != nil {
		response.Err(w, err)
		return
	}
	response.Data(w, http.StatusOK, dto.ToEventResp(e))
}

// Create handles POST /api/admin/events: the listing bypasses moderation and
// is inserted as approved.
func (h *AdminHandler) Create(w http.ResponseWriter, r *http.Request) {
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

	e, err := h.svc.AdminCreate(r.Context(), in)
	if err != nil {
		response.Err(w, err)
		return
	}
	response.Data(w, http.StatusCreated, dto.ToEventResp(e))
}

// Update handles PUT /api/admin/events/{event_id}: partial merge, with the
// date invariant re-checked against the merged record.
func (h *AdminHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "event_id")
	if !validate.IsUUID(id) {
		response.Err(w, domain.ErrInvalidID("invalid event id format"))
		return
	}

	var req dto.UpdateEventReq
	if err := validate.DecodeJSON(r, &req); err != nil {
		response.Err(w, domain.ErrValidationMeta("invalid json body", map[string]string{
			"body": "malformed JSON or invalid fields",
		}))
		return
	}

	e, err := h.svc.AdminUpdate(r.Context(), id, req.Patch())
	if err != nil {
		response.Err(w, err)
		return
	}
	response.Data(w, http.StatusOK, dto.ToEventResp(e))
}

// Approve handles PATCH /api/admin/events/{event_id}/approve.
func (h *AdminHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.moderate(w, r, h.svc.Approve, "Event approved successfully")
}

// Reject handles PATCH /api/admin/events/{event_id}/reject.
func (h *AdminHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.moderate(w, r, h.svc.Reject, "Event rejected successfully")
}

func (h *AdminHandler) moderate(
	w http.ResponseWriter,
	r *http.Request,
	fn func(ctx context.Context, id string) (*domain.Event, error),
	message string,
) {
	id := chi.URLParam(r, "event_id")
	if !validate.IsUUID(id) {
		response.Err(w, domain.ErrInvalidID("invalid event id format"))
		return
	}

	e, err := fn(r.Context(), id)
	if err != nil {
		response.Err(w, err)
		return
	}
	response.Accepted(w, http.StatusOK, message, dto.ToEventResp(e))
}

// Delete handles DELETE /api/admin/events/{event_id}.
func (h *AdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "event_id")
	if !validate.IsUUID(id) {
		response.Err(w, domain.ErrInvalidID("invalid event id format"))
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		response.Err(w, err)
		return
	}
	response.Accepted(w, http.StatusOK, "Event deleted successfully", nil)
}
