package event

import "context"

// NoopPublisher is wired when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, routingKey, messageID string, body []byte) error {
	return nil
}
