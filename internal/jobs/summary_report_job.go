package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"canteen/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// SummaryReportJob periodically logs per-status order counts. It is a pure
// read: the store is never touched beyond the summary query.
type SummaryReportJob struct {
	handler  queries.GetSummaryStatsQueryHandler
	interval time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewSummaryReportJob creates a job logging the summary every interval.
// Intervals below one second are rounded up; cron's finest grain is seconds.
func NewSummaryReportJob(
	handler queries.GetSummaryStatsQueryHandler,
	interval time.Duration,
	logger *slog.Logger,
) *SummaryReportJob {
	if interval < time.Second {
		interval = time.Second
	}

	return &SummaryReportJob{
		handler:  handler,
		interval: interval,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "summary_report_job"),
	}
}

// Start begins the periodic summary report.
func (j *SummaryReportJob) Start() error {
	schedule := fmt.Sprintf("@every %s", j.interval)

	_, err := j.cron.AddFunc(schedule, func() {
		ctx := context.Background()

		stats, handleErr := j.handler.Handle(ctx, queries.NewGetSummaryStatsQuery())
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Summary report job failed", "error", handleErr)
			return
		}

		attrs := make([]any, 0, 2*len(stats.CountByStatus)+2)
		for status, count := range stats.CountByStatus {
			attrs = append(attrs, status.String(), count)
		}
		attrs = append(attrs, "total", stats.Total)

		j.logger.InfoContext(ctx, "Order summary", attrs...)
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Summary report job started", "interval", j.interval.String())
	return nil
}

// Stop stops the summary report job.
func (j *SummaryReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Summary report job stopped")
}
