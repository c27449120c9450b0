package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/itsDrac/bidhub/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_RunsImmediatelyAndOnInterval(t *testing.T) {
	var runs atomic.Int32
	s := New(logger.Nop(), Job{
		Name:     "count",
		Interval: 10 * time.Millisecond,
		Run: func(context.Context) error {
			runs.Add(1)
			return nil
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)

	require.Eventually(t, func() bool { return runs.Load() >= 3 }, time.Second, 5*time.Millisecond)
	cancel()
	s.Wait()

	after := runs.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, runs.Load(), "no runs after stop")
}

func TestScheduler_SkipsTickWhileRunning(t *testing.T) {
	release := make(chan struct{})
	var runs atomic.Int32
	s := New(logger.Nop())
	j := &job{Job: Job{
		Name: "slow",
		Run: func(ctx context.Context) error {
			runs.Add(1)
			<-release
			return nil
		},
	}}

	ctx := context.Background()
	assert.True(t, s.trigger(ctx, j))
	require.Eventually(t, func() bool { return runs.Load() == 1 }, time.Second, time.Millisecond)
	assert.False(t, s.trigger(ctx, j))

	close(release)
	s.Wait()
	assert.True(t, s.trigger(ctx, j))
	s.Wait()
	assert.Equal(t, int32(2), runs.Load())
}

func TestScheduler_SurvivesFailuresAndPanics(t *testing.T) {
	var calls atomic.Int32
	s := New(logger.Nop(), Job{
		Name:     "flaky",
		Interval: 5 * time.Millisecond,
		Run: func(context.Context) error {
			switch calls.Add(1) {
			case 1:
				return errors.New("boom")
			case 2:
				panic("worse")
			case 3:
				return ErrSkip
			}
			return nil
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.Start(ctx)

	require.Eventually(t, func() bool { return calls.Load() >= 4 }, time.Second, time.Millisecond)
	cancel()
	s.Wait()
}

func TestScheduler_DisabledJob(t *testing.T) {
	var runs atomic.Int32
	s := New(logger.Nop(), Job{
		Name: "off",
		Run: func(context.Context) error {
			runs.Add(1)
			return nil
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)
	cancel()
	s.Wait()
	assert.Zero(t, runs.Load())
}
