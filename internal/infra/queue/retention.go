package queue

import (
	"context"
	"log/slog"
	"time"

	"course-enrollment/internal/pkg/clock"
	"course-enrollment/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// Trimmer drops queue history older than a cutoff.
type Trimmer interface {
	TrimBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// Retention periodically trims the stream to the configured replay window.
// Trimmers stop at the oldest command the consumer still owes, so a lagging
// worker only delays the trim.
type Retention struct {
	cron    *cron.Cron
	trimmer Trimmer
	keep    time.Duration
	clock   clock.Clock
	logger  *slog.Logger
	timeout time.Duration
}

func NewRetention(trimmer Trimmer, keep time.Duration, schedule string, clk clock.Clock, logger *slog.Logger) (*Retention, error) {
	if keep <= 0 {
		return nil, errs.New("retention window must be positive")
	}
	r := &Retention{
		cron:    cron.New(),
		trimmer: trimmer,
		keep:    keep,
		clock:   clk,
		logger:  logger,
		timeout: 30 * time.Second,
	}
	if _, err := r.cron.AddFunc(schedule, r.tick); err != nil {
		return nil, errs.Wrap(err, "parse retention schedule")
	}
	return r, nil
}

func (r *Retention) Start() {
	r.cron.Start()
	r.logger.Info("queue retention scheduler started", "keep", r.keep.String())
}

// Stop waits for a running trim to finish.
func (r *Retention) Stop() {
	<-r.cron.Stop().Done()
}

// RunOnce trims everything older than now minus the window.
func (r *Retention) RunOnce(ctx context.Context) (int64, error) {
	cutoff := r.clock.Now().Add(-r.keep)
	return r.trimmer.TrimBefore(ctx, cutoff)
}

func (r *Retention) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	n, err := r.RunOnce(ctx)
	if err != nil {
		r.logger.Error("queue retention trim failed", "error", err.Error())
		return
	}
	r.logger.Info("queue retention trim finished", "removed", n)
}
