package event

import (
	"context"

	zlog "github.com/rs/zerolog/log"

	"github.com/evento/discovery-service/internal/domain"
)

// ListApproved returns approved listings newest-first, optionally narrowed
// in memory by c. Only the unfiltered listing is cached; filtered views are
// cheap recombinations of it and depend on the clock.
func (s *Service) ListApproved(ctx context.Context, c domain.Criteria) ([]*domain.Event, error) {
	unfiltered := c.Query == "" && len(c.Categories) == 0 && c.Window == "" && c.Origin == nil

	key := cacheKeyApprovedList()
	if unfiltered && s.cache != nil {
		var cached []*domain.Event
		found, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			zlog.Warn().Err(err).Str("key", key).Msg("cache list get failed")
		} else if found {
			return cached, nil
		}
	}

	events, err := s.repo.List(ctx, domain.StatusApproved)
	if err != nil {
		return nil, storeErr(err, "failed to fetch events")
	}

	if unfiltered {
		if s.cache != nil && len(events) > 0 {
			if err := s.cache.Set(ctx, key, events, s.ttlList); err != nil {
				zlog.Warn().Err(err).Str("key", key).Msg("cache list set failed")
			}
		}
		return events, nil
	}

	return domain.FilterEvents(events, c, s.clock.Now()), nil
}

// ListPending returns the moderation queue, newest-first.
func (s *Service) ListPending(ctx context.Context) ([]*domain.Event, error) {
	events, err := s.repo.List(ctx, domain.StatusPending)
	if err != nil {
		return nil, storeErr(err, "failed to fetch pending events")
	}
	return events, nil
}
