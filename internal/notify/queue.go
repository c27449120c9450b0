package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/itsDrac/bidhub/internal/cache"
	"github.com/itsDrac/bidhub/pkg/logger"
)

var ErrQueueClosed = errors.New("notify: queue is closed")

// Handler processes one delivered notification.
type Handler func(ctx context.Context, n Notification) error

type Publisher interface {
	Publish(ctx context.Context, n Notification) error
}

type Consumer interface {
	// Consume blocks, feeding notifications to h until ctx is done.
	Consume(ctx context.Context, h Handler) error
}

type Queue interface {
	Publisher
	Consumer
	Close() error
}

// RedisQueue keeps notifications in a redis list.
type RedisQueue struct {
	cache       cache.Cacher
	key         string
	pollTimeout time.Duration
	log         *logger.Logger
}

func NewRedisQueue(c cache.Cacher, key string, log *logger.Logger) *RedisQueue {
	return &RedisQueue{
		cache:       c,
		key:         key,
		pollTimeout: 2 * time.Second,
		log:         log.Named("redis-queue"),
	}
}

func (q *RedisQueue) Publish(ctx context.Context, n Notification) error {
	body, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}
	return q.cache.Push(ctx, q.key, string(body))
}

func (q *RedisQueue) Consume(ctx context.Context, h Handler) error {
	for {
		if ctx.Err() != nil {
			return nil
		}
		raw, ok, err := q.cache.Pop(ctx, q.key, q.pollTimeout)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			q.log.Errorw("pop failed", "key", q.key, "error", err)
			sleep(ctx, q.pollTimeout)
			continue
		}
		if !ok {
			continue
		}

		var n Notification
		if err := json.Unmarshal([]byte(raw), &n); err != nil {
			q.log.Warnw("dropping malformed notification", "error", err)
			continue
		}
		if err := h(ctx, n); err != nil {
			q.log.Errorw("handler failed", "id", n.ID, "kind", n.Kind, "error", err)
		}
	}
}

// Close is a no-op; the redis client is owned by the caller.
func (q *RedisQueue) Close() error {
	return nil
}

// MemoryQueue is a bounded in-process queue. Publish waits for room instead
// of dropping, so a large batch is paced by the worker.
type MemoryQueue struct {
	ch chan Notification
}

func NewMemoryQueue(size int) *MemoryQueue {
	if size <= 0 {
		size = 256
	}
	return &MemoryQueue{ch: make(chan Notification, size)}
}

func (q *MemoryQueue) Publish(ctx context.Context, n Notification) error {
	select {
	case q.ch <- n:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *MemoryQueue) Consume(ctx context.Context, h Handler) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case n := <-q.ch:
			_ = h(ctx, n)
		}
	}
}

func (q *MemoryQueue) Len() int {
	return len(q.ch)
}

func (q *MemoryQueue) Close() error {
	return nil
}

func sleep(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
