package bootstrap

import (
	"context"
	"log/slog"

	"course-enrollment/internal/infra/queue"
	"course-enrollment/internal/infra/sqlc"
	"course-enrollment/internal/infra/uow"
	"course-enrollment/internal/pkg/clock"
	"course-enrollment/internal/pkg/config"
	usecaseworker "course-enrollment/internal/usecase/worker"
	"course-enrollment/internal/worker"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// WorkerModule runs the enrollment command consumer and, for Redis, the
// stream retention job. Exactly one process per queue may include it.
var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewProcessor,
		NewRunner,
	),
	fx.Invoke(
		func(*worker.Runner) {},
		StartRetention,
	),
)

// EmbeddedWorkerModule starts the consumer inside the API process when the
// in-memory queue is used, since nothing else can reach that queue.
var EmbeddedWorkerModule = fx.Module("embedded-worker",
	fx.Invoke(startEmbeddedWorker),
)

// NewProcessor gives the worker its own unit of work so that transaction
// retries follow WORKER_TX_MAX_RETRIES rather than the gateway default.
func NewProcessor(cfg config.Config, pool *pgxpool.Pool, q *sqlc.Queries, logger *slog.Logger) *usecaseworker.Processor {
	w := uow.NewPostgresUoW(pool, q, uow.WithMaxRetries(cfg.Worker.TxMaxRetries))
	return usecaseworker.NewProcessor(w, clock.NewRealClock(), logger.With("component", "enrollment-worker"))
}

func NewRunner(lc fx.Lifecycle, q *Queue, p *usecaseworker.Processor, logger *slog.Logger) (*worker.Runner, error) {
	consumer, err := q.Consumer()
	if err != nil {
		return nil, err
	}
	r := worker.NewRunner(consumer, p, logger)
	registerRunner(lc, r, consumer)
	return r, nil
}

func StartRetention(lc fx.Lifecycle, cfg config.Config, q *Queue, logger *slog.Logger) error {
	trimmer := q.Trimmer()
	if trimmer == nil {
		return nil
	}
	r, err := queue.NewRetention(trimmer, cfg.Queue.Retention, cfg.Queue.RetentionSchedule, clock.NewRealClock(), logger)
	if err != nil {
		return err
	}
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			r.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			r.Stop()
			return nil
		},
	})
	return nil
}

func startEmbeddedWorker(lc fx.Lifecycle, cfg config.Config, q *Queue, pool *pgxpool.Pool, sq *sqlc.Queries, logger *slog.Logger) error {
	if cfg.Queue.Backend != config.QueueBackendMemory {
		return nil
	}
	_, err := NewRunner(lc, q, NewProcessor(cfg, pool, sq, logger), logger)
	return err
}

func registerRunner(lc fx.Lifecycle, r *worker.Runner, consumer queue.Consumer) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			r.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if err := r.Stop(ctx); err != nil {
				return err
			}
			return consumer.Close()
		},
	})
}
