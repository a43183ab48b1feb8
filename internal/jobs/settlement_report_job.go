package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/clock"

	"github.com/robfig/cron/v3"
)

// SettlementReportJob logs the settlement of the previous UTC day for every courier.
type SettlementReportJob struct {
	handler  queries.GetSettlementQueryHandler
	clock    clock.Clock
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewSettlementReportJob creates the job. schedule is a cron expression with a seconds
// field, e.g. "0 0 6 * * *" for every day at 06:00.
func NewSettlementReportJob(
	handler queries.GetSettlementQueryHandler,
	clk clock.Clock,
	schedule string,
	logger *slog.Logger,
) *SettlementReportJob {
	return &SettlementReportJob{
		handler:  handler,
		clock:    clk,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "settlement_report_job"),
	}
}

// Start schedules the report.
func (j *SettlementReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Settlement report job failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Settlement report job started", "schedule", j.schedule)
	return nil
}

// Stop stops the settlement report job.
func (j *SettlementReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Settlement report job stopped")
}

// Run reports yesterday's settlement once.
func (j *SettlementReportJob) Run(ctx context.Context) error {
	day := kernel.TruncateToDate(j.clock.Now()).AddDate(0, 0, -1).Format(kernel.DateLayout)

	query, err := queries.NewGetSettlementQuery("", day, day)
	if err != nil {
		return err
	}

	settlement, err := j.handler.Handle(ctx, query)
	if err != nil {
		return err
	}

	for _, line := range settlement.Lines {
		j.logger.InfoContext(ctx, "Courier settlement",
			"date", day,
			"courier", line.Courier,
			"dispatches", line.Count,
			"total", line.Total.String(),
		)
	}
	j.logger.InfoContext(ctx, "Settlement report",
		"date", day,
		"couriers", len(settlement.Lines),
		"dispatches", settlement.Count,
		"total", settlement.Total.String(),
	)
	return nil
}
