package queue

import (
	"context"

	"course-enrollment/internal/pkg/errs"
)

var (
	ErrClosed = errs.New("queue closed")
	ErrFull   = errs.Mark(errs.New("queue full"), errs.ErrPublishFailed)
)

// Publisher appends a payload to the end of the command queue.
type Publisher interface {
	Publish(ctx context.Context, payload string) error
}

// Consumer hands out deliveries in publish order. Receive blocks until a
// delivery is available or ctx is done. Implementations are used by exactly
// one goroutine.
type Consumer interface {
	Receive(ctx context.Context) (Delivery, error)
	Close() error
}

// Delivery is one received payload. Ack removes it from the queue; an
// unacknowledged delivery is handed out again after a restart.
type Delivery interface {
	Body() string
	Ack(ctx context.Context) error
}
