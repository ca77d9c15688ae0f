package queue

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"course-enrollment/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const bodyField = "body"

// RedisStream is a command queue on a single Redis stream. Publishing is an
// XADD; consumption goes through one consumer group with one fixed consumer
// name, which keeps delivery strictly ordered.
type RedisStream struct {
	client   *redis.Client
	stream   string
	group    string
	consumer string
	block    time.Duration

	pendingCursor string
	pendingDone   bool
}

type RedisStreamConfig struct {
	Stream       string
	Group        string
	Consumer     string
	BlockTimeout time.Duration
}

func NewRedisStream(client *redis.Client, cfg RedisStreamConfig) *RedisStream {
	block := cfg.BlockTimeout
	if block <= 0 {
		block = 5 * time.Second
	}
	return &RedisStream{
		client:        client,
		stream:        cfg.Stream,
		group:         cfg.Group,
		consumer:      cfg.Consumer,
		block:         block,
		pendingCursor: "0",
	}
}

// EnsureGroup creates the stream and consumer group if missing. The group
// starts at the beginning of the stream so commands published before the
// first worker start are not lost.
func (r *RedisStream) EnsureGroup(ctx context.Context) error {
	err := r.client.XGroupCreateMkStream(ctx, r.stream, r.group, "0").Err()
	if err != nil && !strings.HasPrefix(err.Error(), "BUSYGROUP") {
		return errs.Wrap(err, "create consumer group")
	}
	return nil
}

func (r *RedisStream) Publish(ctx context.Context, payload string) error {
	err := r.client.XAdd(ctx, &redis.XAddArgs{
		Stream: r.stream,
		Values: map[string]interface{}{bodyField: payload},
	}).Err()
	if err != nil {
		return errs.Wrap(err, "xadd enrollment command")
	}
	return nil
}

// Receive first replays entries this consumer read but never acknowledged,
// then blocks for new ones.
func (r *RedisStream) Receive(ctx context.Context) (Delivery, error) {
	for !r.pendingDone {
		d, ok, err := r.read(ctx, r.pendingCursor, -1)
		if err != nil {
			return nil, err
		}
		if ok {
			r.pendingCursor = d.id
			return d, nil
		}
		r.pendingDone = true
	}

	for {
		d, ok, err := r.read(ctx, ">", r.block)
		if err != nil {
			return nil, err
		}
		if ok {
			return d, nil
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}
}

func (r *RedisStream) read(ctx context.Context, id string, block time.Duration) (*redisDelivery, bool, error) {
	streams, err := r.client.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    r.group,
		Consumer: r.consumer,
		Streams:  []string{r.stream, id},
		Count:    1,
		Block:    block,
	}).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, false, ctxErr
		}
		return nil, false, errs.Wrap(err, "xreadgroup")
	}

	for _, s := range streams {
		for _, msg := range s.Messages {
			return &redisDelivery{r: r, id: msg.ID, body: fieldString(msg.Values[bodyField])}, true, nil
		}
	}
	return nil, false, nil
}

// TrimBefore drops stream entries older than cutoff. Entries the group has
// not delivered yet, or delivered but not acknowledged, are never trimmed,
// whatever their age.
func (r *RedisStream) TrimBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	groups, err := r.client.XInfoGroups(ctx, r.stream).Result()
	if err != nil {
		if strings.Contains(err.Error(), "no such key") {
			return 0, nil
		}
		return 0, errs.Wrap(err, "xinfo groups")
	}
	lastDelivered := ""
	for _, g := range groups {
		if g.Name == r.group {
			lastDelivered = g.LastDeliveredID
		}
	}
	if lastDelivered == "" {
		return 0, nil
	}

	pending, err := r.client.XPending(ctx, r.stream, r.group).Result()
	if err != nil {
		return 0, errs.Wrap(err, "xpending")
	}

	minID, err := trimFloor(fmt.Sprintf("%d-0", cutoff.UnixMilli()), lastDelivered, pending.Count, pending.Lower)
	if err != nil {
		return 0, err
	}
	n, err := r.client.XTrimMinID(ctx, r.stream, minID).Result()
	if err != nil {
		return 0, errs.Wrap(err, "xtrim enrollment stream")
	}
	return n, nil
}

// trimFloor returns the lowest of cutoffID, the oldest pending entry and the
// first entry after lastDelivered. XTRIM MINID keeps everything at or above it.
func trimFloor(cutoffID, lastDelivered string, pendingCount int64, pendingLower string) (string, error) {
	floor, err := parseStreamID(lastDelivered)
	if err != nil {
		return "", err
	}
	floor.seq++
	if pendingCount > 0 {
		lower, err := parseStreamID(pendingLower)
		if err != nil {
			return "", err
		}
		if lower.less(floor) {
			floor = lower
		}
	}
	cut, err := parseStreamID(cutoffID)
	if err != nil {
		return "", err
	}
	if cut.less(floor) {
		floor = cut
	}
	return floor.String(), nil
}

type streamID struct {
	ms  uint64
	seq uint64
}

func parseStreamID(s string) (streamID, error) {
	msPart, seqPart, ok := strings.Cut(s, "-")
	if !ok {
		seqPart = "0"
	}
	ms, err := strconv.ParseUint(msPart, 10, 64)
	if err != nil {
		return streamID{}, errs.Wrap(err, "parse stream id "+s)
	}
	seq, err := strconv.ParseUint(seqPart, 10, 64)
	if err != nil {
		return streamID{}, errs.Wrap(err, "parse stream id "+s)
	}
	return streamID{ms: ms, seq: seq}, nil
}

func (id streamID) less(o streamID) bool {
	if id.ms != o.ms {
		return id.ms < o.ms
	}
	return id.seq < o.seq
}

func (id streamID) String() string {
	return fmt.Sprintf("%d-%d", id.ms, id.seq)
}

func (r *RedisStream) Close() error {
	return nil
}

// Entries trimmed while still pending come back without values.
func fieldString(v interface{}) string {
	switch s := v.(type) {
	case string:
		return s
	case []byte:
		return string(s)
	default:
		return ""
	}
}

type redisDelivery struct {
	r    *RedisStream
	id   string
	body string
}

func (d *redisDelivery) Body() string { return d.body }

func (d *redisDelivery) ID() string { return d.id }

func (d *redisDelivery) Ack(ctx context.Context) error {
	if err := d.r.client.XAck(ctx, d.r.stream, d.r.group, d.id).Err(); err != nil {
		return errs.Wrap(err, "xack enrollment command")
	}
	return nil
}
