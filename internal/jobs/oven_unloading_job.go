package jobs

import (
	"context"
	"log/slog"

	"pizzeria/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

type FinishBakingHandler interface {
	Handle(ctx context.Context, cmd commands.FinishBakingCommand) error
}

// OvenUnloadingJob takes every baked pizza out of the oven on each tick.
type OvenUnloadingJob struct {
	handler  FinishBakingHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewOvenUnloadingJob(handler FinishBakingHandler, schedule string, logger *slog.Logger) *OvenUnloadingJob {
	return &OvenUnloadingJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "oven_unloading_job"),
	}
}

// Run executes one tick. Every error is logged since none is expected.
func (j *OvenUnloadingJob) Run(ctx context.Context) {
	if err := j.handler.Handle(ctx, commands.NewFinishBakingCommand()); err != nil {
		j.logger.ErrorContext(ctx, "Oven unloading job failed", "error", err)
	}
}

func (j *OvenUnloadingJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Oven unloading job started", "schedule", j.schedule)
	return nil
}

func (j *OvenUnloadingJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Oven unloading job stopped")
}
