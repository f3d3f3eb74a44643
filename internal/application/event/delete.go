package event

import "context"

// Delete removes a listing permanently. There is no soft-delete.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeErr(err, "failed to delete event")
	}

	s.invalidate(ctx, cacheKeyEventDetails(id), cacheKeyApprovedList())
	return nil
}
