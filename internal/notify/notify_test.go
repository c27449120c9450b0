package notify

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/itsDrac/bidhub/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// listCache is an in-memory stand-in for the redis list commands.
type listCache struct {
	mu    sync.Mutex
	lists map[string][]string
}

func newListCache() *listCache {
	return &listCache{lists: map[string][]string{}}
}

func (c *listCache) Push(_ context.Context, key, val string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lists[key] = append([]string{val}, c.lists[key]...)
	return nil
}

func (c *listCache) Pop(ctx context.Context, key string, timeout time.Duration) (string, bool, error) {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		c.mu.Lock()
		l := c.lists[key]
		if len(l) > 0 {
			v := l[len(l)-1]
			c.lists[key] = l[:len(l)-1]
			c.mu.Unlock()
			return v, true, nil
		}
		c.mu.Unlock()
		select {
		case <-ctx.Done():
			return "", false, ctx.Err()
		case <-time.After(5 * time.Millisecond):
		}
	}
	return "", false, nil
}

func (c *listCache) Len(_ context.Context, key string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return int64(len(c.lists[key])), nil
}

func (c *listCache) Ping(context.Context) error { return nil }
func (c *listCache) Close() error               { return nil }

type recordingMailer struct {
	mu       sync.Mutex
	sent     []Notification
	attempts int
	err      error
}

func (m *recordingMailer) Send(_ context.Context, n Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.attempts++
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, n)
	return nil
}

func (m *recordingMailer) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

type failingPublisher struct{ calls int }

func (p *failingPublisher) Publish(context.Context, Notification) error {
	p.calls++
	return errors.New("broker down")
}

func TestSubject(t *testing.T) {
	n := New(KindAuctionWon, uuid.New(), uuid.New(), "Camera")
	n.Amount = decimal.RequireFromString("110")
	assert.Equal(t, `You won "Camera" for 110.00`, n.Subject())

	n.Kind = KindBidRequestDecided
	n.Detail = "approved"
	assert.Equal(t, `Your bid request for "Camera" was approved`, n.Subject())

	n.Kind = Kind("something_else")
	assert.Equal(t, `Update on "Camera"`, n.Subject())
}

func TestRedisQueue_PublishConsumeInOrder(t *testing.T) {
	c := newListCache()
	q := NewRedisQueue(c, "notifications", logger.Nop())
	q.pollTimeout = 20 * time.Millisecond

	ctx := context.Background()
	first := New(KindAuctionSold, uuid.New(), uuid.New(), "Lamp")
	second := New(KindAuctionWon, uuid.New(), first.ProductID, "Lamp")
	require.NoError(t, q.Publish(ctx, first))
	require.NoError(t, q.Publish(ctx, second))

	n, err := c.Len(ctx, "notifications")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var mu sync.Mutex
	var got []uuid.UUID
	done := make(chan struct{})
	go func() {
		_ = q.Consume(runCtx, func(_ context.Context, n Notification) error {
			mu.Lock()
			got = append(got, n.ID)
			mu.Unlock()
			return nil
		})
		close(done)
	}()

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) == 2
	}, time.Second, 10*time.Millisecond)
	cancel()
	<-done

	assert.Equal(t, []uuid.UUID{first.ID, second.ID}, got)
}

func TestRedisQueue_SkipsMalformed(t *testing.T) {
	c := newListCache()
	q := NewRedisQueue(c, "n", logger.Nop())
	q.pollTimeout = 20 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, c.Push(ctx, "n", "{not json"))
	require.NoError(t, q.Publish(ctx, New(KindOutbid, uuid.New(), uuid.New(), "Vase")))

	mailer := &recordingMailer{}
	w := NewWorker(q, mailer, logger.Nop())
	go func() { _ = w.Run(ctx) }()

	require.Eventually(t, func() bool { return mailer.count() == 1 }, time.Second, 10*time.Millisecond)
}

func TestMemoryQueue_FullWaitsForRoom(t *testing.T) {
	q := NewMemoryQueue(1)
	ctx := context.Background()
	require.NoError(t, q.Publish(ctx, New(KindKicked, uuid.New(), uuid.New(), "Bike")))

	short, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()
	err := q.Publish(short, New(KindKicked, uuid.New(), uuid.New(), "Bike"))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 1, q.Len())
}

func TestMemoryQueue_BatchLargerThanBuffer(t *testing.T) {
	q := NewMemoryQueue(4)
	mailer := &recordingMailer{}
	w := NewWorker(q, mailer, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	d := NewDispatcher(q, logger.Nop())
	batch := make([]Notification, 0, 50)
	for i := 0; i < cap(batch); i++ {
		batch = append(batch, New(KindAuctionSold, uuid.New(), uuid.New(), "Lamp"))
	}
	d.Notify(ctx, batch...)

	require.Eventually(t, func() bool { return mailer.count() == len(batch) }, time.Second, 5*time.Millisecond)
}

func TestDirectNotifier_DeliversEveryNotification(t *testing.T) {
	mailer := &recordingMailer{}
	n := NewDirectNotifier(mailer, logger.Nop())

	// more than any in-process queue would buffer
	batch := make([]Notification, 0, 3000)
	for i := 0; i < cap(batch); i++ {
		batch = append(batch, New(KindAuctionSold, uuid.New(), uuid.New(), "Lamp"))
	}
	n.Notify(context.Background(), batch...)

	assert.Equal(t, len(batch), mailer.count())
}

func TestDirectNotifier_MailerErrorsAreLogged(t *testing.T) {
	mailer := &recordingMailer{err: errors.New("smtp down")}
	n := NewDirectNotifier(mailer, logger.Nop())

	assert.NotPanics(t, func() {
		n.Notify(context.Background(),
			New(KindOutbid, uuid.New(), uuid.New(), "Desk"),
			New(KindOutbid, uuid.New(), uuid.New(), "Desk"),
		)
	})
	mailer.mu.Lock()
	defer mailer.mu.Unlock()
	assert.Equal(t, 2, mailer.attempts)
	assert.Zero(t, len(mailer.sent))
}

func TestWorker_DeliversUntilCancelled(t *testing.T) {
	q := NewMemoryQueue(8)
	mailer := &recordingMailer{}
	w := NewWorker(q, mailer, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	d := NewDispatcher(q, logger.Nop())
	d.Notify(ctx,
		New(KindAuctionExpired, uuid.New(), uuid.New(), "Chair"),
		New(KindOutbid, uuid.New(), uuid.New(), "Table"),
	)

	require.Eventually(t, func() bool { return mailer.count() == 2 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}

func TestWorker_MailerErrorDoesNotStopWorker(t *testing.T) {
	q := NewMemoryQueue(8)
	mailer := &recordingMailer{err: errors.New("smtp down")}
	w := NewWorker(q, mailer, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	require.NoError(t, q.Publish(ctx, New(KindOutbid, uuid.New(), uuid.New(), "Desk")))
	require.Eventually(t, func() bool {
		mailer.mu.Lock()
		defer mailer.mu.Unlock()
		return mailer.attempts == 1
	}, time.Second, 5*time.Millisecond)

	mailer.mu.Lock()
	mailer.err = nil
	mailer.mu.Unlock()

	require.NoError(t, q.Publish(ctx, New(KindOutbid, uuid.New(), uuid.New(), "Desk")))
	require.Eventually(t, func() bool { return mailer.count() == 1 }, time.Second, 5*time.Millisecond)
}

func TestDispatcher_SwallowsPublishErrors(t *testing.T) {
	pub := &failingPublisher{}
	d := NewDispatcher(pub, logger.Nop())

	assert.NotPanics(t, func() {
		d.Notify(context.Background(),
			New(KindAuctionSold, uuid.New(), uuid.New(), "Clock"),
			New(KindAuctionWon, uuid.New(), uuid.New(), "Clock"),
		)
	})
	assert.Equal(t, 2, pub.calls)
}
