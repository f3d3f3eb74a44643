package event

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	zlog "github.com/rs/zerolog/log"

	"github.com/evento/discovery-service/internal/domain"
	appctx "github.com/evento/discovery-service/internal/pkg/context"
)

const (
	EnvelopeVersion = 1
	Producer        = "discovery-service"

	// Routing keys for moderation lifecycle events.
	RKSubmitted = "event.submitted"
	RKApproved  = "event.approved"
	RKRejected  = "event.rejected"
)

// Envelope is the stable contract for emitted moderation events. Consumers
// should rely on version/producer/message_id/occurred_at plus the payload.
type Envelope[T any] struct {
	Version    int       `json:"version"`
	Producer   string    `json:"producer"`
	MessageID  string    `json:"message_id"`
	TraceID    string    `json:"trace_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    T         `json:"payload"`
}

// ModerationPayload describes the listing a moderation event refers to.
type ModerationPayload struct {
	EventID   string    `json:"event_id"`
	Title     string    `json:"title"`
	City      string    `json:"city"`
	Category  string    `json:"category"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Status    string    `json:"status"`
}

// emitModeration publishes a lifecycle event, best-effort. A broker failure
// never fails the request that triggered it.
func (s *Service) emitModeration(ctx context.Context, routingKey string, e *domain.Event) {
	if s.pub == nil {
		return
	}

	env := Envelope[ModerationPayload]{
		Version:    EnvelopeVersion,
		Producer:   Producer,
		MessageID:  uuid.NewString(),
		TraceID:    appctx.RequestID(ctx),
		OccurredAt: s.clock.Now().UTC(),
		Payload: ModerationPayload{
			EventID:   e.ID,
			Title:     e.Title,
			City:      e.City,
			Category:  e.Category,
			StartDate: e.StartDate,
			EndDate:   e.EndDate,
			Status:    string(e.Status),
		},
	}

	body, err := json.Marshal(env)
	if err != nil {
		zlog.Error().Err(err).Str("rk", routingKey).Msg("moderation event marshal failed")
		return
	}

	if err := s.pub.Publish(ctx, routingKey, env.MessageID, body); err != nil {
		zlog.Error().
			Err(err).
			Str("rk", routingKey).
			Str("event_id", e.ID).
			Msg("moderation event publish failed")
	}
}
