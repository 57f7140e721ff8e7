// Package jobs provides scheduled background tasks for the delivery order
// lifecycle.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OrderClosingJob - periodically sweeps settled orders (Delivered,
// Exception, Canceled) whose retention window has passed into the terminal
// Closed status. Closing runs out of band; neither role can reach Closed
// through the transition tables.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(closeHandler, retention, interval, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
package jobs
