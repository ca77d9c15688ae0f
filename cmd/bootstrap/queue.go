package bootstrap

import (
	"context"
	"errors"
	"log/slog"

	"course-enrollment/internal/infra/queue"
	"course-enrollment/internal/pkg/config"
	"course-enrollment/internal/pkg/errs"
	"course-enrollment/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var QueueModule = fx.Module("queue",
	fx.Provide(
		NewQueue,
		func(q *Queue) shared.CommandPublisher { return q.Publisher() },
	),
)

// Queue holds the clients of the configured command queue backend.
type Queue struct {
	cfg config.QueueConfig

	memory *queue.MemoryQueue
	client *redis.Client
	stream *queue.RedisStream
	amqp   *queue.AMQPQueue
}

func NewQueue(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*Queue, error) {
	q, err := OpenQueue(cfg.Queue, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if q.stream == nil {
				return nil
			}
			if err := q.client.Ping(ctx).Err(); err != nil {
				return errs.Wrap(err, "ping redis")
			}
			return q.stream.EnsureGroup(ctx)
		},
		OnStop: func(_ context.Context) error {
			return q.Close()
		},
	})

	logger.Info("command queue configured", "backend", cfg.Queue.Backend)
	return q, nil
}

func OpenQueue(cfg config.QueueConfig, logger *slog.Logger) (*Queue, error) {
	q := &Queue{cfg: cfg}
	switch cfg.Backend {
	case config.QueueBackendMemory:
		q.memory = queue.NewMemoryQueue(cfg.MemoryBuffer)
	case config.QueueBackendRedis:
		q.client = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		q.stream = queue.NewRedisStream(q.client, queue.RedisStreamConfig{
			Stream:       cfg.Stream,
			Group:        cfg.Group,
			Consumer:     cfg.Consumer,
			BlockTimeout: cfg.BlockTimeout,
		})
	case config.QueueBackendAMQP:
		a, err := queue.DialAMQP(cfg.AMQPURL, cfg.AMQPQueue, logger)
		if err != nil {
			return nil, err
		}
		q.amqp = a
	default:
		return nil, errs.New("unsupported queue backend: " + cfg.Backend)
	}
	return q, nil
}

func (q *Queue) Backend() string {
	return q.cfg.Backend
}

func (q *Queue) Publisher() queue.Publisher {
	switch {
	case q.memory != nil:
		return q.memory
	case q.stream != nil:
		return q.stream
	default:
		return q.amqp
	}
}

// Consumer attaches the single consumer. Call it from the worker only.
func (q *Queue) Consumer() (queue.Consumer, error) {
	switch {
	case q.memory != nil:
		return q.memory, nil
	case q.stream != nil:
		return q.stream, nil
	default:
		return q.amqp.Consumer(q.cfg.Consumer)
	}
}

// Trimmer is nil for backends without replayable history.
func (q *Queue) Trimmer() queue.Trimmer {
	if q.stream == nil {
		return nil
	}
	return q.stream
}

func (q *Queue) Close() error {
	var err error
	if q.memory != nil {
		err = errors.Join(err, q.memory.Close())
	}
	if q.client != nil {
		err = errors.Join(err, q.client.Close())
	}
	if q.amqp != nil {
		err = errors.Join(err, q.amqp.Close())
	}
	return err
}
