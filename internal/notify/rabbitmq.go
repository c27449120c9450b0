package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/itsDrac/bidhub/pkg/logger"
	amqp "github.com/rabbitmq/amqp091-go"
)

// AMQPQueue publishes notifications as persistent JSON messages on a durable
// RabbitMQ queue.
type AMQPQueue struct {
	conn  *amqp.Connection
	mu    sync.Mutex // guards pub; amqp channels are not safe for concurrent publish
	pub   *amqp.Channel
	queue string
	log   *logger.Logger
}

func NewAMQPQueue(url, queue string, log *logger.Logger) (*AMQPQueue, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	return &AMQPQueue{
		conn:  conn,
		pub:   ch,
		queue: queue,
		log:   log.Named("amqp-queue"),
	}, nil
}

func (q *AMQPQueue) Publish(ctx context.Context, n Notification) error {
	body, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	return q.pub.PublishWithContext(
		ctx,
		"",
		q.queue,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    n.ID.String(),
			Timestamp:    n.CreatedAt,
			Body:         body,
		},
	)
}

// Consume uses its own channel with manual acks. Malformed messages and
// messages whose handler fails are dropped, not requeued.
func (q *AMQPQueue) Consume(ctx context.Context, h Handler) error {
	ch, err := q.conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer ch.Close()

	if err := ch.Qos(10, 0, false); err != nil {
		return fmt.Errorf("failed to set qos: %w", err)
	}

	msgs, err := ch.Consume(q.queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to consume: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return ErrQueueClosed
			}
			var n Notification
			if err := json.Unmarshal(d.Body, &n); err != nil {
				q.log.Warnw("invalid message", "error", err)
				_ = d.Nack(false, false)
				continue
			}
			if err := h(ctx, n); err != nil {
				q.log.Errorw("handler failed", "id", n.ID, "kind", n.Kind, "error", err)
				_ = d.Nack(false, false)
				continue
			}
			if err := d.Ack(false); err != nil {
				q.log.Warnw("failed to ack message", "error", err)
			}
		}
	}
}

func (q *AMQPQueue) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.pub != nil {
		_ = q.pub.Close()
	}
	return q.conn.Close()
}
