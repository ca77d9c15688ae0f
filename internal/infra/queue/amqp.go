package queue

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"course-enrollment/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	redialMin = 200 * time.Millisecond
	redialMax = 10 * time.Second
)

// AMQPQueue is a command queue on one durable RabbitMQ queue. The consumer
// side attaches exclusively with prefetch 1, so a second worker cannot
// attach and deliveries stay ordered.
//
// When the broker drops the connection the queue redials in the background.
// Publishes fail fast until the new connection is up.
type AMQPQueue struct {
	url    string
	queue  string
	logger *slog.Logger

	mu     sync.Mutex
	conn   *amqp.Connection
	pubCh  *amqp.Channel
	closed bool
	done   chan struct{}
}

func DialAMQP(url, queue string, logger *slog.Logger) (*AMQPQueue, error) {
	q := &AMQPQueue{
		url:    url,
		queue:  queue,
		logger: logger,
		done:   make(chan struct{}),
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	if err := q.connectLocked(); err != nil {
		return nil, err
	}
	return q, nil
}

func (q *AMQPQueue) connectLocked() error {
	conn, err := amqp.Dial(q.url)
	if err != nil {
		return errs.Wrap(err, "dial rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return errs.Wrap(err, "open publish channel")
	}

	if _, err := ch.QueueDeclare(q.queue, true, false, false, false, nil); err != nil {
		_ = conn.Close()
		return errs.Wrap(err, "declare queue")
	}

	q.conn = conn
	q.pubCh = ch
	go q.watch(conn.NotifyClose(make(chan *amqp.Error, 1)))
	return nil
}

// watch redials after an abnormal close. A Close from this side closes the
// notify channel without a reason and ends the watch.
func (q *AMQPQueue) watch(notify <-chan *amqp.Error) {
	reason, ok := <-notify
	if !ok || reason == nil {
		return
	}
	q.logger.Warn("rabbitmq connection lost", "reason", reason.Error())

	delay := redialMin
	for {
		q.mu.Lock()
		if q.closed {
			q.mu.Unlock()
			return
		}
		err := q.connectLocked()
		q.mu.Unlock()
		if err == nil {
			q.logger.Info("rabbitmq connection restored")
			return
		}
		q.logger.Warn("rabbitmq redial failed", "error", err, "retry_in", delay.String())

		select {
		case <-time.After(delay):
		case <-q.done:
			return
		}
		delay = min(delay*2, redialMax)
	}
}

func (q *AMQPQueue) Publish(ctx context.Context, payload string) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrClosed
	}
	if q.conn.IsClosed() {
		return errs.New("rabbitmq connection is down")
	}
	if q.pubCh.IsClosed() {
		ch, err := q.conn.Channel()
		if err != nil {
			return errs.Wrap(err, "reopen publish channel")
		}
		q.pubCh = ch
	}

	err := q.pubCh.PublishWithContext(ctx, "", q.queue, false, false, amqp.Publishing{
		ContentType:  "text/plain",
		DeliveryMode: amqp.Persistent,
		Body:         []byte(payload),
	})
	if err != nil {
		return errs.Wrap(err, "publish enrollment command")
	}
	return nil
}

// Consumer registers an exclusive consumer on its own channel. The consumer
// reattaches on the next Receive after a connection loss.
func (q *AMQPQueue) Consumer(tag string) (Consumer, error) {
	c := &amqpConsumer{q: q, tag: tag}
	if err := c.attach(); err != nil {
		return nil, err
	}
	return c, nil
}

func (q *AMQPQueue) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return nil
	}
	q.closed = true
	close(q.done)
	if q.conn.IsClosed() {
		return nil
	}
	return q.conn.Close()
}

type amqpConsumer struct {
	q   *AMQPQueue
	tag string

	ch         *amqp.Channel
	deliveries <-chan amqp.Delivery
}

func (c *amqpConsumer) attach() error {
	c.q.mu.Lock()
	defer c.q.mu.Unlock()
	if c.q.closed {
		return ErrClosed
	}
	if c.q.conn.IsClosed() {
		return errs.New("rabbitmq connection is down")
	}

	ch, err := c.q.conn.Channel()
	if err != nil {
		return errs.Wrap(err, "open consume channel")
	}
	if err := ch.Qos(1, 0, false); err != nil {
		_ = ch.Close()
		return errs.Wrap(err, "set prefetch")
	}
	deliveries, err := ch.Consume(c.q.queue, c.tag, false, true, false, false, nil)
	if err != nil {
		_ = ch.Close()
		return errs.Wrap(err, "register exclusive consumer")
	}
	c.ch = ch
	c.deliveries = deliveries
	return nil
}

func (c *amqpConsumer) Receive(ctx context.Context) (Delivery, error) {
	if c.deliveries == nil {
		if err := c.attach(); err != nil {
			return nil, err
		}
	}

	select {
	case d, ok := <-c.deliveries:
		if !ok {
			c.deliveries = nil
			if c.isQueueClosed() {
				return nil, ErrClosed
			}
			return nil, errs.New("rabbitmq consumer channel closed")
		}
		return amqpDelivery{d: d}, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (c *amqpConsumer) isQueueClosed() bool {
	c.q.mu.Lock()
	defer c.q.mu.Unlock()
	return c.q.closed
}

func (c *amqpConsumer) Close() error {
	if c.ch == nil || c.ch.IsClosed() {
		return nil
	}
	return c.ch.Close()
}

type amqpDelivery struct {
	d amqp.Delivery
}

func (a amqpDelivery) Body() string { return string(a.d.Body) }

func (a amqpDelivery) Ack(_ context.Context) error {
	return a.d.Ack(false)
}
