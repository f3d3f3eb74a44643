package event

import (
	"context"
	"sort"

	"github.com/evento/discovery-service/internal/domain"
	"github.com/evento/discovery-service/internal/geo"
)

// EventWithDistance annotates a listing with its great-circle distance from
// the query origin.
type EventWithDistance struct {
	Event      *domain.Event
	DistanceKm float64
}

// Nearby returns approved listings within radiusKm of the origin, nearest
// first. radiusKm <= 0 falls back to the configured default (20 km in the
// stock configuration).
//
// The store's near-query already yields proximity order, but the distance we
// attach is recomputed with the Haversine formula: the store may rank on a
// different sphere model, and the displayed number must match our own math.
func (s *Service) Nearby(ctx context.Context, lat, lng, radiusKm float64) ([]EventWithDistance, error) {
	if err := domain.ValidatePoint(lng, lat); err != nil {
		return nil, err
	}
	if radiusKm <= 0 {
		radiusKm = s.defaultRadiusKm
	}

	events, err := s.repo.FindWithinRadius(ctx, lng, lat, geo.KmToMeters(radiusKm), domain.StatusApproved)
	if err != nil {
		return nil, storeErr(err, "failed to fetch nearby events")
	}

	out := make([]EventWithDistance, 0, len(events))
	for _, e := range events {
		// The event's stored point is [lng, lat]; Distance takes (lat, lng).
		out = append(out, EventWithDistance{
			Event:      e,
			DistanceKm: geo.Distance(lat, lng, e.Latitude, e.Longitude),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DistanceKm < out[j].DistanceKm
	})

	return out, nil
}
