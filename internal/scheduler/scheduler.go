// Package scheduler runs the periodic auction jobs. Each job has its own
// ticker and never overlaps with itself inside one process; overlap across
// processes is prevented by the jobs' database locks.
package scheduler

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/itsDrac/bidhub/pkg/logger"
)

// ErrSkip is returned by a job that decided not to run this time, for
// example because another instance is already running it.
var ErrSkip = errors.New("job skipped")

type Job struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context) error
}

type job struct {
	Job
	running atomic.Bool
}

type Scheduler struct {
	jobs []*job
	log  *logger.Logger
	wg   sync.WaitGroup
}

func New(log *logger.Logger, jobs ...Job) *Scheduler {
	s := &Scheduler{log: log.Named("scheduler")}
	for _, j := range jobs {
		s.jobs = append(s.jobs, &job{Job: j})
	}
	return s
}

// Start runs every job once right away and then on its interval until ctx
// is cancelled. It does not block.
func (s *Scheduler) Start(ctx context.Context) {
	for _, j := range s.jobs {
		if j.Interval <= 0 {
			s.log.Warnw("job disabled", "job", j.Name)
			continue
		}
		s.wg.Add(1)
		go s.loop(ctx, j)
	}
	s.log.Infow("scheduler started", "jobs", len(s.jobs))
}

// Wait blocks until every loop and in-flight run has returned.
func (s *Scheduler) Wait() {
	s.wg.Wait()
}

func (s *Scheduler) loop(ctx context.Context, j *job) {
	defer s.wg.Done()

	ticker := time.NewTicker(j.Interval)
	defer ticker.Stop()

	s.trigger(ctx, j)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.trigger(ctx, j)
		}
	}
}

// trigger starts one run of j unless the previous one is still going.
func (s *Scheduler) trigger(ctx context.Context, j *job) bool {
	if !j.running.CompareAndSwap(false, true) {
		s.log.Infow("previous run still in progress, skipping tick", "job", j.Name)
		return false
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer j.running.Store(false)
		s.run(ctx, j)
	}()
	return true
}

func (s *Scheduler) run(ctx context.Context, j *job) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Errorw("job panicked", "job", j.Name, "panic", r)
		}
	}()

	start := time.Now()
	err := j.Run(ctx)
	switch {
	case err == nil:
		s.log.Debugw("job finished", "job", j.Name, "took", time.Since(start))
	case errors.Is(err, ErrSkip):
		s.log.Infow("job skipped", "job", j.Name)
	case errors.Is(err, context.Canceled):
		s.log.Infow("job cancelled", "job", j.Name)
	default:
		s.log.Errorw("job failed", "job", j.Name, "error", err, "took", time.Since(start))
	}
}
