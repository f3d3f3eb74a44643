package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"github.com/evento/discovery-service/internal/config"
)

func TestNewApp(t *testing.T) {
	db, _, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	cfg := &config.Config{
		HTTPAddr:        ":8081",
		AdminAPIKey:     "test-key",
		DefaultRadiusKm: 20,
		RLEnabled:       false,
		RLWindow:        time.Minute,
	}

	t.Run("wires_dependencies", func(t *testing.T) {
		app, err := NewApp(cfg, db)
		assert.NoError(t, err)
		assert.NotNil(t, app.Handler)
		assert.NotNil(t, app.Service)
	})

	t.Run("serves_health_endpoint", func(t *testing.T) {
		app, err := NewApp(cfg, db)
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/healthz", nil)
		rec := httptest.NewRecorder()
		app.Handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("admin_routes_are_gated", func(t *testing.T) {
		app, err := NewApp(cfg, db)
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/api/admin/events/pending", nil)
		rec := httptest.NewRecorder()
		app.Handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestSysClock_Now(t *testing.T) {
	now := sysClock{}.Now()
	assert.Equal(t, "UTC", now.Location().String())
}
