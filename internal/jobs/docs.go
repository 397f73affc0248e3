// Package jobs provides scheduled background tasks for the restaurant backend.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. CartExpiryJob - Purges cart lines older than CART_TTL on CART_EXPIRY_SCHEDULE
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	cartExpiry := jobs.NewCartExpiryJob(purgeHandler, "@hourly", 72*time.Hour, logger)
//	jobManager := jobs.NewJobManager(cartExpiry)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - A failed purge is logged and retried at the next tick
// - Failed job starts will stop any already running jobs
package jobs
