package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"canteen/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	summaryReportJob *SummaryReportJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(
	summaryStatsHandler queries.GetSummaryStatsQueryHandler,
	reportInterval time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		summaryReportJob: NewSummaryReportJob(summaryStatsHandler, reportInterval, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.summaryReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start summary report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.summaryReportJob.Stop()
}
