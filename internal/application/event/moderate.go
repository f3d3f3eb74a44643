package event

import (
	"context"

	"github.com/evento/discovery-service/internal/domain"
)

// Approve transitions a pending listing to approved, making it visible to
// the public query paths.
func (s *Service) Approve(ctx context.Context, id string) (*domain.Event, error) {
	return s.moderate(ctx, id, domain.StatusApproved, RKApproved)
}

// Reject transitions a pending listing to rejected. The listing stays
// visible to admin queries only.
func (s *Service) Reject(ctx context.Context, id string) (*domain.Event, error) {
	return s.moderate(ctx, id, domain.StatusRejected, RKRejected)
}

func (s *Service) moderate(ctx context.Context, id string, target domain.EventStatus, routingKey string) (*domain.Event, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr(err, "failed to fetch event")
	}

	// Validate the transition before touching the store; approved and
	// rejected are terminal.
	now := s.clock.Now()
	switch target {
	case domain.StatusApproved:
		err = e.Approve(now)
	case domain.StatusRejected:
		err = e.Reject(now)
	default:
		err = domain.ErrInvalidState("unsupported moderation target")
	}
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.SetStatus(ctx, id, target)
	if err != nil {
		return nil, storeErr(err, "failed to update event status")
	}

	s.invalidate(ctx, cacheKeyEventDetails(id), cacheKeyApprovedList())
	s.emitModeration(ctx, routingKey, updated)
	return updated, nil
}
