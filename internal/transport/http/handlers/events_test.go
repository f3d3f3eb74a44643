package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/evento/discovery-service/internal/application/event"
	"github.com/evento/discovery-service/internal/domain"
	"github.com/evento/discovery-service/internal/geo"
)

// --- fixtures ---

type fakeClock struct{ t time.Time }

func (c fakeClock) Now() time.Time { return c.t }

type memRepo struct {
	byID map[string]*domain.Event
}

func newMemRepo() *memRepo { return &memRepo{byID: map[string]*domain.Event{}} }

func (m *memRepo) Create(ctx context.Context, e *domain.Event) error {
	m.byID[e.ID] = e
	return nil
}

func (m *memRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	e, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrNotFound("event not found")
	}
	clone := *e
	return &clone, nil
}

func (m *memRepo) Update(ctx context.Context, e *domain.Event) error {
	m.byID[e.ID] = e
	return nil
}

func (m *memRepo) Delete(ctx context.Context, id string) error {
	if _, ok := m.byID[id]; !ok {
		return domain.ErrNotFound("event not found")
	}
	delete(m.byID, id)
	return nil
}

func (m *memRepo) SetStatus(ctx context.Context, id string, status domain.EventStatus) (*domain.Event, error) {
	e, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrNotFound("event not found")
	}
	e.Status = status
	clone := *e
	return &clone, nil
}

func (m *memRepo) List(ctx context.Context, status domain.EventStatus) ([]*domain.Event, error) {
	out := []*domain.Event{}
	for _, e := range m.byID {
		if status == "" || e.Status == status {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memRepo) FindWithinRadius(ctx context.Context, lng, lat, radiusMeters float64, status domain.EventStatus) ([]*domain.Event, error) {
	out := []*domain.Event{}
	for _, e := range m.byID {
		if status != "" && e.Status != status {
			continue
		}
		if geo.KmToMeters(geo.Distance(lat, lng, e.Latitude, e.Longitude)) <= radiusMeters {
			out = append(out, e)
		}
	}
	return out, nil
}

func testNow(t *testing.T) time.Time {
	t.Helper()
	tt, err := time.Parse(time.RFC3339, "2026-09-01T10:00:00Z")
	assert.NoError(t, err)
	return tt.UTC()
}

func seedEvent(t *testing.T, repo *memRepo, now time.Time, title string, status domain.EventStatus, lat, lng float64) *domain.Event {
	t.Helper()
	e, err := domain.NewEvent(domain.EventInput{
		Title: title, Description: "d", Category: "Music",
		Address: "12 MG Road", City: "Bangalore",
		Longitude: lng, Latitude: lat,
		StartDate: now.Add(24 * time.Hour), EndDate: now.Add(28 * time.Hour),
	}, status, now)
	assert.NoError(t, err)
	repo.byID[e.ID] = e
	return e
}

func publicRouter(repo *memRepo, now time.Time) http.Handler {
	svc := event.New(repo, fakeClock{t: now}, event.NoopPublisher{}, nil, 0, 0, 0)
	h := NewEventsHandler(svc)

	r := chi.NewRouter()
	r.Route("/api/events", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Submit)
		r.Get("/nearby", h.Nearby)
		r.Get("/{event_id}", h.Get)
	})
	return r
}

type envelope struct {
	Success bool            `json:"success"`
	Count   *int            `json:"count"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Fields  map[string]string `json:"fields"`
	} `json:"error"`
}

func do(t *testing.T, h http.Handler, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var rd *strings.Reader
	if body == "" {
		rd = strings.NewReader("")
	} else {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

// --- tests ---

func TestEventsHandler_Nearby(t *testing.T) {
	now := testNow(t)
	repo := newMemRepo()
	seedEvent(t, repo, now, "Near", domain.StatusApproved, 12.98, 77.60)
	seedEvent(t, repo, now, "Pending", domain.StatusPending, 12.98, 77.60)
	seedEvent(t, repo, now, "Mumbai", domain.StatusApproved, 19.0760, 72.8777)
	h := publicRouter(repo, now)

	t.Run("returns_count_and_distance", func(t *testing.T) {
		rec, env := do(t, h, "GET", "/api/events/nearby?lat=12.9716&lng=77.5946", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, env.Success)
		assert.NotNil(t, env.Count)
		assert.Equal(t, 1, *env.Count)

		var data []map[string]any
		assert.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, "Near", data[0]["title"])
		assert.Contains(t, data[0], "distanceKm")
	})

	t.Run("missing_coordinates", func(t *testing.T) {
		rec, env := do(t, h, "GET", "/api/events/nearby", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "invalid_coordinates", env.Error.Code)
	})

	t.Run("out_of_range_coordinates", func(t *testing.T) {
		rec, env := do(t, h, "GET", "/api/events/nearby?lat=95&lng=77.5946", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "invalid_coordinates", env.Error.Code)
	})

	t.Run("custom_radius_reaches_farther", func(t *testing.T) {
		_, env := do(t, h, "GET", "/api/events/nearby?lat=12.9716&lng=77.5946&radius_km=900", "")
		assert.Equal(t, 2, *env.Count)
	})
}

func TestEventsHandler_List(t *testing.T) {
	now := testNow(t)
	repo := newMemRepo()
	approved := seedEvent(t, repo, now, "Jazz Night", domain.StatusApproved, 12.98, 77.60)
	seedEvent(t, repo, now, "Pending Thing", domain.StatusPending, 12.98, 77.60)
	h := publicRouter(repo, now)

	t.Run("lists_only_approved", func(t *testing.T) {
		rec, env := do(t, h, "GET", "/api/events", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 1, *env.Count)

		var data []map[string]any
		assert.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, approved.ID, data[0]["id"])
		loc := data[0]["location"].(map[string]any)
		assert.Equal(t, "Point", loc["type"])
		coords := loc["coordinates"].([]any)
		assert.Equal(t, 77.60, coords[0])
		assert.Equal(t, 12.98, coords[1])
	})

	t.Run("text_filter", func(t *testing.T) {
		_, env := do(t, h, "GET", "/api/events?q=jazz", "")
		assert.Equal(t, 1, *env.Count)

		_, env = do(t, h, "GET", "/api/events?q=opera", "")
		assert.Equal(t, 0, *env.Count)
	})

	t.Run("category_filter", func(t *testing.T) {
		_, env := do(t, h, "GET", "/api/events?categories=music,tech", "")
		assert.Equal(t, 1, *env.Count)

		_, env = do(t, h, "GET", "/api/events?categories=sports", "")
		assert.Equal(t, 0, *env.Count)
	})

	t.Run("invalid_lat_without_lng", func(t *testing.T) {
		rec, env := do(t, h, "GET", "/api/events?lat=12.9", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "invalid_coordinates", env.Error.Code)
	})

	t.Run("radius_filter_works_on_listing", func(t *testing.T) {
		_, env := do(t, h, "GET", "/api/events?lat=19.0760&lng=72.8777&radius_km=5", "")
		assert.Equal(t, 0, *env.Count)
	})
}

func TestEventsHandler_Get(t *testing.T) {
	now := testNow(t)
	repo := newMemRepo()
	approved := seedEvent(t, repo, now, "Jazz Night", domain.StatusApproved, 12.98, 77.60)
	pending := seedEvent(t, repo, now, "Pending Thing", domain.StatusPending, 12.98, 77.60)
	h := publicRouter(repo, now)

	t.Run("approved_is_visible", func(t *testing.T) {
		rec, env := do(t, h, "GET", "/api/events/"+approved.ID, "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, env.Success)
	})

	t.Run("malformed_id_is_400_not_404", func(t *testing.T) {
		rec, env := do(t, h, "GET", "/api/events/12345", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "invalid_id", env.Error.Code)
	})

	t.Run("pending_reads_as_not_found", func(t *testing.T) {
		rec, env := do(t, h, "GET", "/api/events/"+pending.ID, "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "not_found", env.Error.Code)
	})
}

func TestEventsHandler_Submit(t *testing.T) {
	now := testNow(t)
	repo := newMemRepo()
	h := publicRouter(repo, now)

	validBody := `{
		"title": "Jazz Night",
		"description": "Live jazz downtown",
		"category": "Music",
		"address": "12 MG Road",
		"city": "Bangalore",
		"latitude": 12.9716,
		"longitude": 77.5946,
		"startDate": "2026-09-10T19:00:00Z",
		"endDate": "2026-09-10T23:00:00Z"
	}`

	t.Run("valid_submission_is_pending", func(t *testing.T) {
		rec, env := do(t, h, "POST", "/api/events", validBody)
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, env.Message, "reviewed by an admin")

		var data map[string]string
		assert.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, "pending", data["status"])
		assert.Equal(t, domain.StatusPending, repo.byID[data["id"]].Status)
	})

	t.Run("status_field_is_rejected", func(t *testing.T) {
		body := strings.Replace(validBody, `"title": "Jazz Night",`, `"title": "x", "status": "approved",`, 1)
		rec, env := do(t, h, "POST", "/api/events", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "validation_error", env.Error.Code)
	})

	t.Run("missing_fields", func(t *testing.T) {
		rec, env := do(t, h, "POST", "/api/events", `{"title":"Only a title"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "validation_error", env.Error.Code)
		assert.Contains(t, env.Error.Fields, "description")
		assert.Contains(t, env.Error.Fields, "latitude")
	})

	t.Run("malformed_json", func(t *testing.T) {
		rec, _ := do(t, h, "POST", "/api/events", `{`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
