package event

import (
	"context"
	"time"

	zlog "github.com/rs/zerolog/log"

	"github.com/evento/discovery-service/internal/domain"
)

const DefaultRadiusKm = 20.0

type Service struct {
	repo  EventRepo
	pub   Publisher
	cache Cache
	clock Clock

	ttlDetails      time.Duration
	ttlList         time.Duration
	defaultRadiusKm float64
}

func New(
	repo EventRepo,
	clock Clock,
	pub Publisher,
	cache Cache,
	ttlDetails, ttlList time.Duration,
	defaultRadiusKm float64,
) *Service {
	if ttlDetails == 0 {
		ttlDetails = 5 * time.Minute
	}
	if ttlList == 0 {
		ttlList = 15 * time.Second
	}
	if defaultRadiusKm <= 0 {
		defaultRadiusKm = DefaultRadiusKm
	}

	return &Service{
		repo:            repo,
		pub:             pub,
		cache:           cache,
		clock:           clock,
		ttlDetails:      ttlDetails,
		ttlList:         ttlList,
		defaultRadiusKm: defaultRadiusKm,
	}
}

// storeErr passes domain errors through untouched and translates anything
// else into query_failed, keeping store diagnostics in the logs only.
func storeErr(err error, msg string) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(*domain.AppError); ok {
		return err
	}
	zlog.Error().Err(err).Msg(msg)
	return domain.ErrQueryFailed(msg)
}

// invalidate drops cached entries, best-effort.
func (s *Service) invalidate(ctx context.Context, keys ...string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, keys...); err != nil {
		zlog.Warn().Err(err).Strs("keys", keys).Msg("cache invalidate failed")
	}
}
