package event

import (
	"context"

	"github.com/evento/discovery-service/internal/domain"
)

// AdminUpdate merges a partial edit onto the stored listing and re-validates
// invariants against the merged record. Status is untouched: an edit never
// reverts a moderation decision.
func (s *Service) AdminUpdate(ctx context.Context, id string, patch domain.EventPatch) (*domain.Event, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, "failed to fetch event")
	}

	if err := e.ApplyPatch(patch, s.clock.Now()); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, e); err != nil {
		return nil, storeErr(err, "failed to update event")
	}

	s.invalidate(ctx, cacheKeyEventDetails(e.ID), cacheKeyApprovedList())
	return e, nil
}
