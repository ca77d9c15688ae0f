package shared

import (
	"context"
)

// CommandPublisher hands an encoded enrollment command to the queue.
// Publishing is fire-and-forget from the caller's point of view.
type CommandPublisher interface {
	Publish(ctx context.Context, payload string) error
}
