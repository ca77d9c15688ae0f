package queue

import (
	"context"
	"sync"
)

// MemoryQueue is an in-process FIFO for tests and single-binary local runs.
type MemoryQueue struct {
	ch        chan string
	done      chan struct{}
	closeOnce sync.Once
}

func NewMemoryQueue(buffer int) *MemoryQueue {
	if buffer <= 0 {
		buffer = 1
	}
	return &MemoryQueue{
		ch:   make(chan string, buffer),
		done: make(chan struct{}),
	}
}

// Publish never waits for buffer space; a full buffer fails with ErrFull.
func (q *MemoryQueue) Publish(_ context.Context, payload string) error {
	select {
	case <-q.done:
		return ErrClosed
	default:
	}

	select {
	case q.ch <- payload:
		return nil
	default:
		return ErrFull
	}
}

func (q *MemoryQueue) Receive(ctx context.Context) (Delivery, error) {
	select {
	case payload := <-q.ch:
		return memoryDelivery(payload), nil
	case <-q.done:
		return nil, ErrClosed
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (q *MemoryQueue) Len() int {
	return len(q.ch)
}

func (q *MemoryQueue) Close() error {
	q.closeOnce.Do(func() { close(q.done) })
	return nil
}

type memoryDelivery string

func (d memoryDelivery) Body() string                { return string(d) }
func (d memoryDelivery) Ack(_ context.Context) error { return nil }
