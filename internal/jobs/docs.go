// Package jobs provides scheduled background tasks for the logistics service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// Schedules take a leading seconds field.
//
// # Available Jobs
//
// 1. SettlementReportJob - logs yesterday's settlement per courier, with totals
// 2. OverdueDispatchJob - warns about dispatches without a reception after a configured age
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(settlementHandler, overdueHandler, clk, jobs.Schedules{
//		SettlementReport: "0 0 6 * * *",
//		OverdueReport:    "0 0 * * * *",
//		OverdueAfter:     72 * time.Hour,
//	}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Failures of a run are logged and the next run proceeds as scheduled
// - Failed job starts will stop any already running jobs
package jobs
