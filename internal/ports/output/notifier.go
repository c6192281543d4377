package output

import "context"

// Notifier delivers a feedback message to the downstream chat backend.
// Exactly one attempt per call; retries are the caller's decision (and the
// relay deliberately makes none).
type Notifier interface {
	Send(ctx context.Context, text string) error
	SendFile(ctx context.Context, text, filename string, data []byte) error
}
