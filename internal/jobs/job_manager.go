package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/pkg/clock"
)

// Schedules holds the cron expressions of the scheduled jobs. An empty expression
// disables the job.
type Schedules struct {
	SettlementReport string
	OverdueReport    string
	OverdueAfter     time.Duration
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	settlementReportJob *SettlementReportJob
	overdueDispatchJob  *OverdueDispatchJob
}

// NewJobManager creates a new job manager with the jobs enabled in schedules.
func NewJobManager(
	settlementHandler queries.GetSettlementQueryHandler,
	overdueHandler queries.GetOverdueDispatchesQueryHandler,
	clk clock.Clock,
	schedules Schedules,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{}
	if schedules.SettlementReport != "" {
		jm.settlementReportJob = NewSettlementReportJob(settlementHandler, clk, schedules.SettlementReport, logger)
	}
	if schedules.OverdueReport != "" {
		jm.overdueDispatchJob = NewOverdueDispatchJob(
			overdueHandler, clk, schedules.OverdueAfter, schedules.OverdueReport, logger,
		)
	}
	return jm
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if jm.settlementReportJob != nil {
		if err := jm.settlementReportJob.Start(); err != nil {
			return fmt.Errorf("failed to start settlement report job: %w", err)
		}
	}

	if jm.overdueDispatchJob != nil {
		if err := jm.overdueDispatchJob.Start(); err != nil {
			// Stop already started jobs if this one fails
			if jm.settlementReportJob != nil {
				jm.settlementReportJob.Stop()
			}
			return fmt.Errorf("failed to start overdue dispatch job: %w", err)
		}
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully, waiting for running executions.
func (jm *JobManager) StopAll() {
	if jm.overdueDispatchJob != nil {
		jm.overdueDispatchJob.Stop()
	}
	if jm.settlementReportJob != nil {
		jm.settlementReportJob.Stop()
	}
}
