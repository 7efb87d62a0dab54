// Package jobs provides scheduled background tasks built on github.com/robfig/cron/v3.
//
// # Available Jobs
//
// SynchronizationJob keeps the order store and the invoicing system in step. Every
// interval (15 minutes by default) it:
//
//  1. pulls the invoices pending delivery and upserts them as Pending orders
//  2. pushes every Delivered order the invoicing system has not acknowledged yet
//
// # Usage
//
//	job := jobs.NewSynchronizationJob(pullHandler, pushHandler, tango, metrics, jobs.SyncJobConfig{
//		Interval: cfg.SyncInterval,
//	}, logger)
//	jobManager := jobs.NewJobManager(job)
//	if err := jobManager.StartAll(ctx); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
//   - a pull rejected for authentication is retried once after a short backoff
//   - any other pull failure is logged and the push still runs
//   - each push is independent; failed orders stay awaiting sync for the next cycle
//   - a tick that fires while a cycle is still running is skipped
package jobs
