package input

import (
	"context"

	"sitekit/internal/domain/entities"
)

// FeedbackSender relays one feedback submission to the configured chat
// backend. A single delivery attempt: it either succeeds or reports failure.
type FeedbackSender interface {
	Submit(ctx context.Context, fb *entities.Feedback) error
}
