package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/pkg/clock"

	"github.com/robfig/cron/v3"
)

// OverdueDispatchJob warns about dispatched waybills that still have no reception after
// the configured age.
type OverdueDispatchJob struct {
	handler   queries.GetOverdueDispatchesQueryHandler
	clock     clock.Clock
	olderThan time.Duration
	schedule  string
	cron      *cron.Cron
	logger    *slog.Logger
}

func NewOverdueDispatchJob(
	handler queries.GetOverdueDispatchesQueryHandler,
	clk clock.Clock,
	olderThan time.Duration,
	schedule string,
	logger *slog.Logger,
) *OverdueDispatchJob {
	return &OverdueDispatchJob{
		handler:   handler,
		clock:     clk,
		olderThan: olderThan,
		schedule:  schedule,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "overdue_dispatch_job"),
	}
}

// Start schedules the check. The age is validated before anything is scheduled.
func (j *OverdueDispatchJob) Start() error {
	if _, err := queries.NewGetOverdueDispatchesQuery(j.olderThan); err != nil {
		return err
	}

	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if _, err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Overdue dispatch job failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue dispatch job started",
		"schedule", j.schedule,
		"older_than", j.olderThan.String(),
	)
	return nil
}

// Stop stops the overdue dispatch job.
func (j *OverdueDispatchJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Overdue dispatch job stopped")
}

// Run checks once and returns how many dispatches are overdue.
func (j *OverdueDispatchJob) Run(ctx context.Context) (int, error) {
	query, err := queries.NewGetOverdueDispatchesQuery(j.olderThan)
	if err != nil {
		return 0, err
	}

	overdue, err := j.handler.Handle(ctx, query)
	if err != nil {
		return 0, err
	}

	now := j.clock.Now()
	for _, d := range overdue {
		j.logger.WarnContext(ctx, "Dispatch without reception",
			"tracking_number", d.TrackingNumber,
			"courier", d.Courier,
			"zone", d.Zone,
			"age", now.Sub(d.DispatchedAt).Truncate(time.Minute).String(),
		)
	}
	if len(overdue) > 0 {
		j.logger.WarnContext(ctx, "Overdue dispatches found", "count", len(overdue))
	}
	return len(overdue), nil
}
