// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// The core itself is pull-only: nothing in here mutates the store. The one
// job, SummaryReportJob, periodically logs per-status order counts so the
// operational pulse of the venue is visible in the server logs between
// client polls.
//
// Jobs are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(summaryStatsHandler, interval, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs
