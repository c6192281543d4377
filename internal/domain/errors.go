package domain

import "errors"

// Domain errors.
var (
	ErrRelayNotConfigured = errors.New("feedback relay is not configured")
	ErrUnsupportedBackend = errors.New("unsupported feedback backend")
)
