package jobs

import (
	"context"
	"errors"
	"log/slog"

	"pizzeria/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

type StartBakingHandler interface {
	Handle(ctx context.Context, cmd commands.StartBakingCommand) error
}

// OvenLoadingJob puts the oldest waiting order into the oven on every tick.
type OvenLoadingJob struct {
	handler  StartBakingHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOvenLoadingJob creates the job. schedule is a cron expression with a
// leading seconds field, e.g. "*/5 * * * * *".
func NewOvenLoadingJob(handler StartBakingHandler, schedule string, logger *slog.Logger) *OvenLoadingJob {
	return &OvenLoadingJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "oven_loading_job"),
	}
}

// Run executes one tick.
func (j *OvenLoadingJob) Run(ctx context.Context) {
	if err := j.handler.Handle(ctx, commands.NewStartBakingCommand()); err != nil {
		// An empty queue is the normal idle state
		if !errors.Is(err, commands.ErrNoOrderToBake) {
			j.logger.ErrorContext(ctx, "Oven loading job failed", "error", err)
		}
	}
}

func (j *OvenLoadingJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Oven loading job started", "schedule", j.schedule)
	return nil
}

// Stop stops scheduling and waits for a running tick to finish.
func (j *OvenLoadingJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Oven loading job stopped")
}
