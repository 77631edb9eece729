// Package jobs provides scheduled background tasks for the yard system,
// built on github.com/robfig/cron/v3. Jobs observe the appointment book and
// report through structured logging; state changes stay with the command
// handlers.
package jobs

import (
	"fmt"
	"log/slog"

	"yardgate/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	overdueScheduleJob *OverdueScheduleJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(scheduleUoWFactory commands.ScheduleUoWFactory, logger *slog.Logger) *JobManager {
	return &JobManager{
		overdueScheduleJob: NewOverdueScheduleJob(scheduleUoWFactory, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.overdueScheduleJob.Start(); err != nil {
		return fmt.Errorf("failed to start overdue schedule job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.overdueScheduleJob.Stop()
}
