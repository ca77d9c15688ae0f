package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"course-enrollment/internal/infra/queue"
	usecaseworker "course-enrollment/internal/usecase/worker"
)

// CommandProcessor handles one raw payload to completion.
type CommandProcessor interface {
	Process(ctx context.Context, raw string) usecaseworker.Outcome
}

// Runner is the single consumer of the command queue. One goroutine receives,
// processes and acknowledges deliveries strictly one after another.
type Runner struct {
	consumer  queue.Consumer
	processor CommandProcessor
	logger    *slog.Logger

	minBackoff time.Duration
	maxBackoff time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

type Option func(*Runner)

func WithBackoff(minWait, maxWait time.Duration) Option {
	return func(r *Runner) {
		r.minBackoff = minWait
		r.maxBackoff = maxWait
	}
}

func NewRunner(consumer queue.Consumer, processor CommandProcessor, logger *slog.Logger, opts ...Option) *Runner {
	r := &Runner{
		consumer:   consumer,
		processor:  processor,
		logger:     logger,
		minBackoff: 100 * time.Millisecond,
		maxBackoff: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Start launches the consume loop. Calling Start twice is a no-op.
func (r *Runner) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.done != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.done = make(chan struct{})

	go func() {
		defer close(r.done)
		r.loop(ctx)
	}()
	r.logger.Info("enrollment worker started")
}

// Stop cancels the loop and waits for the in-flight command, or for ctx.
func (r *Runner) Stop(ctx context.Context) error {
	r.mu.Lock()
	cancel, done := r.cancel, r.done
	r.mu.Unlock()
	if done == nil {
		return nil
	}

	cancel()
	select {
	case <-done:
		r.logger.Info("enrollment worker stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Done is closed when the loop has exited.
func (r *Runner) Done() <-chan struct{} {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.done
}

func (r *Runner) loop(ctx context.Context) {
	wait := r.minBackoff
	for {
		d, err := r.consumer.Receive(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, queue.ErrClosed) {
				return
			}
			r.logger.Error("receive from command queue failed", "error", err.Error(), "retry_in", wait.String())
			if !sleep(ctx, wait) {
				return
			}
			wait = min(wait*2, r.maxBackoff)
			continue
		}
		wait = r.minBackoff

		r.handle(ctx, d)
	}
}

// A command already received runs to completion even during shutdown.
func (r *Runner) handle(ctx context.Context, d queue.Delivery) {
	workCtx := context.WithoutCancel(ctx)
	r.processor.Process(workCtx, d.Body())

	if err := d.Ack(workCtx); err != nil {
		r.logger.Error("ack enrollment command failed", "command", d.Body(), "error", err.Error())
	}
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}
