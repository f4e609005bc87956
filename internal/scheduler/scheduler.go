// Package scheduler runs the ranking pipeline on a cron schedule, for
// keeping a rankings table current through the season without manual runs.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jmoran/mlbrank/pkg/logger"
)

// Job is a unit of scheduled work.
type Job interface {
	Name() string
	Run(ctx context.Context) error
}

// Result records one job execution.
type Result struct {
	JobName   string
	StartTime time.Time
	Duration  time.Duration
	Success   bool
	Error     string
}

// Scheduler manages scheduled jobs
// SSOT: schedule management happens here only
type Scheduler struct {
	cron   *cron.Cron
	logger *logger.Logger

	mu   sync.RWMutex
	last map[string]Result

	maxRetries int
	retryDelay time.Duration
}

// New creates a new scheduler
func New(log *logger.Logger) *Scheduler {
	return &Scheduler{
		cron:       cron.New(),
		logger:     log,
		last:       make(map[string]Result),
		maxRetries: 2,
		retryDelay: 1 * time.Minute,
	}
}

// AddJob schedules a job with a cron spec (standard five-field format).
func (s *Scheduler) AddJob(spec string, job Job) error {
	_, err := s.cron.AddFunc(spec, func() {
		s.runJob(job)
	})
	if err != nil {
		return fmt.Errorf("failed to schedule job %s: %w", job.Name(), err)
	}

	s.logger.WithFields(map[string]interface{}{
		"job":      job.Name(),
		"schedule": spec,
	}).Info("Job added to scheduler")

	return nil
}

// Start starts the scheduler
func (s *Scheduler) Start() {
	s.logger.Info("Starting scheduler")
	s.cron.Start()
}

// Stop stops the scheduler and waits for a running job to finish
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping scheduler")
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Scheduler stopped")
}

// runJob executes a job with retry logic
func (s *Scheduler) runJob(job Job) {
	jobName := job.Name()
	startTime := time.Now()

	s.logger.WithField("job", jobName).Info("Job started")

	var lastErr error
	var success bool

	for attempt := 0; attempt <= s.maxRetries; attempt++ {
		err := job.Run(context.Background())
		if err == nil {
			success = true
			break
		}

		lastErr = err
		s.logger.WithFields(map[string]interface{}{
			"job":     jobName,
			"attempt": attempt + 1,
			"error":   err.Error(),
		}).Warn("Job execution failed")

		if attempt < s.maxRetries {
			time.Sleep(s.retryDelay)
		}
	}

	duration := time.Since(startTime)

	result := Result{
		JobName:   jobName,
		StartTime: startTime,
		Duration:  duration,
		Success:   success,
	}
	if !success && lastErr != nil {
		result.Error = lastErr.Error()
	}

	s.mu.Lock()
	s.last[jobName] = result
	s.mu.Unlock()

	if success {
		s.logger.WithFields(map[string]interface{}{
			"job":      jobName,
			"duration": duration,
		}).Info("Job completed successfully")
	} else {
		s.logger.WithFields(map[string]interface{}{
			"job":      jobName,
			"duration": duration,
			"error":    lastErr.Error(),
		}).Error("Job failed after all retries")
	}
}

// LastResult returns the most recent execution of a job, if any.
func (s *Scheduler) LastResult(jobName string) (Result, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result, ok := s.last[jobName]
	return result, ok
}
