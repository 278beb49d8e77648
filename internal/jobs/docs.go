// Package jobs provides scheduled background tasks for the forwarding
// platform.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the billing engine.
//
// # Available Jobs
//
// 1. OverdueInvoiceJob - Runs hourly to flag pending invoices past their due date as overdue
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(markOverdueHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The sweep is idempotent; a failed run is logged and retried on the next
// tick with no cleanup needed.
package jobs
