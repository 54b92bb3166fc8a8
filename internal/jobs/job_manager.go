package jobs

import (
	"fmt"
	"log/slog"
)

// Schedules holds the cron expressions (with seconds) of the kitchen jobs.
type Schedules struct {
	Bake  string
	Serve string
}

// DefaultSchedules bakes one pizza every five seconds and empties the oven every fifteen.
var DefaultSchedules = Schedules{
	Bake:  "*/5 * * * * *",
	Serve: "*/15 * * * * *",
}

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	ovenLoadingJob   *OvenLoadingJob
	ovenUnloadingJob *OvenUnloadingJob
}

func NewJobManager(
	startBakingHandler StartBakingHandler,
	finishBakingHandler FinishBakingHandler,
	schedules Schedules,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		ovenLoadingJob:   NewOvenLoadingJob(startBakingHandler, schedules.Bake, logger),
		ovenUnloadingJob: NewOvenUnloadingJob(finishBakingHandler, schedules.Serve, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.ovenLoadingJob.Start(); err != nil {
		return fmt.Errorf("failed to start oven loading job: %w", err)
	}

	if err := jm.ovenUnloadingJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.ovenLoadingJob.Stop()
		return fmt.Errorf("failed to start oven unloading job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.ovenUnloadingJob.Stop()
	jm.ovenLoadingJob.Stop()
}
