package event

import (
	"context"
	"time"

	"github.com/evento/discovery-service/internal/domain"
)

type Clock interface {
	Now() time.Time
}

// EventRepo is the persistence surface the use cases need. Implementations
// must return domain errors (not_found etc.) for expected conditions and raw
// errors for infrastructure failures; the service translates the latter.
type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	Update(ctx context.Context, e *domain.Event) error
	Delete(ctx context.Context, id string) error

	// SetStatus is the only mutation path moderation uses.
	SetStatus(ctx context.Context, id string, status domain.EventStatus) (*domain.Event, error)

	// List returns events in the given status, newest first.
	// An empty status returns every event.
	List(ctx context.Context, status domain.EventStatus) ([]*domain.Event, error)

	// FindWithinRadius returns events whose point lies within radiusMeters of
	// the origin, restricted to status when non-empty, ordered nearest first.
	FindWithinRadius(ctx context.Context, lng, lat, radiusMeters float64, status domain.EventStatus) ([]*domain.Event, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, val any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// Publisher emits moderation domain events. Best-effort: failures are logged,
// never surfaced to the caller.
type Publisher interface {
	Publish(ctx context.Context, routingKey, messageID string, body []byte) error
}
