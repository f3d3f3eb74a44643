package event

import (
	"context"

	zlog "github.com/rs/zerolog/log"

	"github.com/evento/discovery-service/internal/domain"
)

// GetPublic returns an approved listing by id. Pending and rejected listings
// are reported as not found on this path.
func (s *Service) GetPublic(ctx context.Context, id string) (*domain.Event, error) {
	key := cacheKeyEventDetails(id)

	if s.cache != nil {
		var cached domain.Event
		found, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			zlog.Warn().Err(err).Str("key", key).Msg("cache get failed")
		} else if found {
			return &cached, nil
		}
	}

	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, "failed to fetch event")
	}
	if e.Status != domain.StatusApproved {
		return nil, domain.ErrNotFound("event not found")
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, e, s.ttlDetails); err != nil {
			zlog.Warn().Err(err).Str("key", key).Msg("cache set failed")
		}
	}

	return e, nil
}

// GetAdmin returns a listing of any status. No caching: the admin view needs
// strict consistency during moderation.
func (s *Service) GetAdmin(ctx context.Context, id string) (*domain.Event, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, "failed to fetch event")
	}
	return e, nil
}
