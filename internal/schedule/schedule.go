// Package schedule runs configured topic decks on cron expressions.
package schedule

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/deck-flow/internal/config"
	"github.com/nguyentantai21042004/deck-flow/internal/logger"
	"github.com/robfig/cron/v3"
)

// ErrUnknownJob is returned by RunNow for a name not in the schedule.
var ErrUnknownJob = errors.New("unknown job")

// JobFunc generates the deck for one job.
type JobFunc func(ctx context.Context, job config.JobConfig) error

// Scheduler owns one cron entry per configured job.
type Scheduler interface {
	// Start fires jobs on their schedule until ctx is cancelled, then waits
	// for running jobs to finish.
	Start(ctx context.Context) error
	// RunNow runs the named job once, outside its schedule.
	RunNow(ctx context.Context, name string) error
	Jobs() []config.JobConfig
}

type implScheduler struct {
	jobs   []config.JobConfig
	run    JobFunc
	logger logger.Logger
	parser cron.Parser
}

// New validates every job and its cron expression.
func New(jobs []config.JobConfig, run JobFunc, log logger.Logger) (Scheduler, error) {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

	seen := make(map[string]bool, len(jobs))
	for i, job := range jobs {
		if job.Name == "" {
			return nil, fmt.Errorf("job %d: name is required", i)
		}
		if seen[job.Name] {
			return nil, fmt.Errorf("job %q: duplicate name", job.Name)
		}
		seen[job.Name] = true

		if strings.TrimSpace(job.Topic) == "" {
			return nil, fmt.Errorf("job %q: topic is required", job.Name)
		}
		if _, err := parser.Parse(job.Cron); err != nil {
			return nil, fmt.Errorf("job %q: invalid cron %q: %w", job.Name, job.Cron, err)
		}
	}

	return &implScheduler{
		jobs:   jobs,
		run:    run,
		logger: log,
		parser: parser,
	}, nil
}

func (s *implScheduler) Start(ctx context.Context) error {
	if len(s.jobs) == 0 {
		return errors.New("no scheduled jobs configured")
	}

	c := cron.New(
		cron.WithParser(s.parser),
		cron.WithChain(cron.Recover(cron.DefaultLogger), cron.SkipIfStillRunning(cron.DefaultLogger)),
	)

	for _, job := range s.jobs {
		job := job
		if _, err := c.AddFunc(job.Cron, func() { s.fire(ctx, job) }); err != nil {
			return fmt.Errorf("schedule %q: %w", job.Name, err)
		}
		s.logger.Info(ctx, "Scheduled job %s (%s): %s", job.Name, job.Cron, job.Topic)
	}

	c.Start()
	<-ctx.Done()

	s.logger.Info(ctx, "Stopping scheduler, waiting for running jobs...")
	<-c.Stop().Done()
	return ctx.Err()
}

func (s *implScheduler) RunNow(ctx context.Context, name string) error {
	for _, job := range s.jobs {
		if job.Name == name {
			return s.run(ctx, job)
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownJob, name)
}

func (s *implScheduler) Jobs() []config.JobConfig {
	return s.jobs
}

func (s *implScheduler) fire(ctx context.Context, job config.JobConfig) {
	if ctx.Err() != nil {
		return
	}
	s.logger.Info(ctx, "Scheduled run starting: %s", job.Name)
	if err := s.run(ctx, job); err != nil {
		s.logger.Error(ctx, "Scheduled run %s failed: %v", job.Name, err)
		return
	}
	s.logger.Info(ctx, "Scheduled run completed: %s", job.Name)
}
