package event

import (
	"context"

	"github.com/evento/discovery-service/internal/domain"
)

// Submit creates a listing from a public submission. Status is forced to
// pending regardless of input; the listing stays invisible to public queries
// until an admin approves it.
func (s *Service) Submit(ctx context.Context, in domain.EventInput) (*domain.Event, error) {
	e, err := domain.NewEvent(in, domain.StatusPending, s.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, storeErr(err, "failed to submit event")
	}

	s.emitModeration(ctx, RKSubmitted, e)
	return e, nil
}

// AdminCreate creates a listing through the admin path. It bypasses
// moderation entirely: the event is inserted as approved.
func (s *Service) AdminCreate(ctx context.Context, in domain.EventInput) (*domain.Event, error) {
	e, err := domain.NewEvent(in, domain.StatusApproved, s.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, storeErr(err, "failed to create event")
	}

	s.invalidate(ctx, cacheKeyApprovedList())
	return e, nil
}
