// Package scheduler runs a job on a cron schedule until its context is cancelled.
package scheduler

import (
	"context"
	"fmt"
	"sync"

	"github.com/lerenn/issues-full/pkg/logger"
	"github.com/robfig/cron/v3"
)

// Job is one scheduled run. Its context is cancelled when the scheduler stops.
type Job func(ctx context.Context) error

// Scheduler triggers a job on a cron schedule.
//
// Runs never overlap: a tick arriving while the previous run is still in
// progress is skipped.
type Scheduler struct {
	cron     *cron.Cron
	schedule string
	job      Job
	logger   logger.Logger

	mu     sync.Mutex
	runCtx context.Context
}

// New creates a scheduler for the given cron expression or descriptor
// (for example "*/15 * * * *" or "@every 15m").
func New(schedule string, job Job, log logger.Logger) (*Scheduler, error) {
	if job == nil {
		return nil, ErrNilJob
	}
	if log == nil {
		log = logger.NewNoopLogger()
	}

	s := &Scheduler{
		schedule: schedule,
		job:      job,
		logger:   log,
	}
	s.cron = cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	if _, err := s.cron.AddFunc(schedule, s.tick); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidSchedule, schedule, err)
	}
	return s, nil
}

// ValidateSchedule reports whether schedule is a valid cron expression or descriptor.
func ValidateSchedule(schedule string) error {
	if _, err := cron.ParseStandard(schedule); err != nil {
		return fmt.Errorf("%w: %q: %w", ErrInvalidSchedule, schedule, err)
	}
	return nil
}

// Run executes the job once immediately, then on every tick until ctx is done.
// It waits for a run in progress to finish before returning.
func (s *Scheduler) Run(ctx context.Context) error {
	s.mu.Lock()
	s.runCtx = ctx
	s.mu.Unlock()

	s.logger.Logf("Scheduling runs with %q", s.schedule)
	s.tick()

	s.cron.Start()
	<-ctx.Done()
	<-s.cron.Stop().Done()

	return nil
}

func (s *Scheduler) tick() {
	s.mu.Lock()
	ctx := s.runCtx
	s.mu.Unlock()

	if ctx == nil || ctx.Err() != nil {
		return
	}
	if err := s.job(ctx); err != nil {
		s.logger.Logf("Scheduled run failed: %v", err)
	}
}
