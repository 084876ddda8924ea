// Package jobs provides scheduled background tasks for the dispatch system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance the dispatch service needs.
//
// # Available Jobs
//
// 1. CourierLivenessJob - Runs every minute to mark couriers offline when
// their last location report is older than the configured threshold
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(markStaleHandler, offlineAfter, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The liveness job logs failures and keeps running; a single failed sweep is
// retried on the next tick. The sweep only flips the availability flag, so it
// is safe to run concurrently with courier requests.
package jobs
