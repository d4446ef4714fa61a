// Package jobs provides scheduled background tasks for the order service.
//
// Jobs are built on github.com/robfig/cron/v3 and managed through JobManager,
// which offers a unified start/stop interface:
//
//	jobManager := jobs.NewJobManager(orderStatsHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// OrderStatsJob runs once per minute and logs the number of orders in each
// lifecycle status. It is read-only; failures are logged and the next run
// proceeds normally.
package jobs
