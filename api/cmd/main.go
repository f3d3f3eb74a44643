package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	zlog "github.com/rs/zerolog/log"

	"github.com/evento/discovery-service/internal/application/event"
	"github.com/evento/discovery-service/internal/config"
	"github.com/evento/discovery-service/internal/infrastructure/caching/redis"
	"github.com/evento/discovery-service/internal/infrastructure/db/postgres"
	"github.com/evento/discovery-service/internal/infrastructure/messaging/rabbitmq"
	"github.com/evento/discovery-service/internal/logger"
	"github.com/evento/discovery-service/internal/transport/http/handlers"
	appmw "github.com/evento/discovery-service/internal/transport/http/middleware"
	"github.com/evento/discovery-service/internal/transport/http/router"
)

type sysClock struct{}

func (sysClock) Now() time.Time { return time.Now().UTC() }

// App bundles everything main wires together, so tests can assemble the
// same graph against fakes.
type App struct {
	Handler http.Handler
	Service *event.Service

	closers []func() error
}

func (a *App) Close() {
	for _, c := range a.closers {
		_ = c()
	}
}

func NewApp(cfg *config.Config, db *sql.DB) (*App, error) {
	app := &App{}

	repo := postgres.New(db)

	var cache event.Cache
	if cfg.RedisURL != "" {
		rc, err := redis.New(cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		app.closers = append(app.closers, rc.Close)
		cache = rc
	}

	var pub event.Publisher = event.NoopPublisher{}
	if cfg.RabbitURL != "" {
		p, err := rabbitmq.NewPublisher(cfg.RabbitURL, cfg.RabbitExchange)
		if err != nil {
			return nil, err
		}
		app.closers = append(app.closers, p.Close)
		pub = p
	}

	svc := event.New(repo, sysClock{}, pub, cache, cfg.CacheTTLDetails, cfg.CacheTTLList, cfg.DefaultRadiusKm)
	app.Service = svc

	eventsH := handlers.NewEventsHandler(svc)
	adminH := handlers.NewAdminHandler(svc)
	healthH := handlers.NewHealthHandler()
	adminKey := appmw.NewAdminKey(cfg.AdminAPIKey)

	app.Handler = router.New(eventsH, adminH, healthH, adminKey, cfg)
	return app, nil
}

func main() {
	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		zlog.Fatal().Err(err).Msg("config load failed")
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		zlog.Fatal().Err(err).Msg("db open failed")
	}
	defer db.Close()

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := db.PingContext(pingCtx); err != nil {
		cancel()
		zlog.Fatal().Err(err).Msg("db ping failed")
	}
	cancel()

	app, err := NewApp(cfg, db)
	if err != nil {
		zlog.Fatal().Err(err).Msg("app wiring failed")
	}
	defer app.Close()

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      app.Handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	go func() {
		zlog.Info().Str("addr", cfg.HTTPAddr).Str("env", cfg.AppEnv).Msg("discovery service listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal().Err(err).Msg("server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	zlog.Info().Msg("shutting down")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Error().Err(err).Msg("graceful shutdown failed")
	}
}
