// Package jobs runs the kitchen: scheduled background tasks that move orders
// through the oven.
//
// Jobs are built on github.com/robfig/cron/v3 with seconds precision.
//
// # Available Jobs
//
// 1. OvenLoadingJob - puts the oldest Created order into the oven (Created -> Baking)
// 2. OvenUnloadingJob - takes every Baking order out of the oven (Baking -> Completed)
//
// # Usage
//
//	jobManager := jobs.NewJobManager(startBakingHandler, finishBakingHandler, jobs.DefaultSchedules, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The loading job stays quiet when the queue is empty (commands.ErrNoOrderToBake).
// Everything else is logged and retried on the next tick.
package jobs
