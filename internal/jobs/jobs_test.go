package jobs

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/courier"
	"logistics/internal/core/domain/model/dispatch"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"
	"logistics/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSettlementReader struct{ mock.Mock }

func (m *MockSettlementReader) Settle(
	ctx context.Context,
	courierName *kernel.Name,
	period kernel.DateRange,
) ([]ports.SettlementRow, error) {
	args := m.Called(ctx, courierName, period)
	if rows := args.Get(0); rows != nil {
		return rows.([]ports.SettlementRow), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockDispatchRepository struct{ mock.Mock }

func (m *MockDispatchRepository) Add(ctx context.Context, d *dispatch.Dispatch) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDispatchRepository) Get(ctx context.Context, tn kernel.TrackingNumber) (*dispatch.Dispatch, error) {
	args := m.Called(ctx, tn)
	if d := args.Get(0); d != nil {
		return d.(*dispatch.Dispatch), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDispatchRepository) GetAll(ctx context.Context) ([]*dispatch.Dispatch, error) {
	args := m.Called(ctx)
	if d := args.Get(0); d != nil {
		return d.([]*dispatch.Dispatch), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDispatchRepository) GetUnreceivedBefore(ctx context.Context, cutoff time.Time) ([]*dispatch.Dispatch, error) {
	args := m.Called(ctx, cutoff)
	if d := args.Get(0); d != nil {
		return d.([]*dispatch.Dispatch), args.Error(1)
	}
	return nil, args.Error(1)
}

type dispatchRepos struct {
	repo *MockDispatchRepository
}

func (r dispatchRepos) DispatchRepository() ports.DispatchRepository {
	return r.repo
}

var now = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

func newLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewJSONHandler(&buf, nil)), &buf
}

func periodOf(day string) any {
	return mock.MatchedBy(func(p kernel.DateRange) bool {
		return p.From().Format(kernel.DateLayout) == day && p.To().Format(kernel.DateLayout) == day
	})
}

func newTestDispatch(t *testing.T, tn, name string, at time.Time) *dispatch.Dispatch {
	t.Helper()
	c, err := courier.NewCourier(kernel.MustName(name), kernel.MustName("Norte"))
	require.NoError(t, err)
	d, err := dispatch.NewDispatch(kernel.MustTrackingNumber(tn), c, at)
	require.NoError(t, err)
	return d
}

func TestSettlementReportJob_Run(t *testing.T) {
	reader := &MockSettlementReader{}
	reader.On("Settle", mock.Anything, (*kernel.Name)(nil), periodOf("2024-03-14")).Return([]ports.SettlementRow{
		{Courier: kernel.MustName("Ana"), Count: 2, Total: kernel.MustMoney("150.00")},
		{Courier: kernel.MustName("Luis"), Count: 1, Total: kernel.MustMoney("75.50")},
	}, nil)

	logger, buf := newLogger()
	job := NewSettlementReportJob(queries.NewGetSettlementQueryHandler(reader), clock.NewFixed(now), "0 0 6 * * *", logger)

	require.NoError(t, job.Run(context.Background()))

	out := buf.String()
	assert.Contains(t, out, `"component":"settlement_report_job"`)
	assert.Contains(t, out, `"courier":"Ana"`)
	assert.Contains(t, out, `"courier":"Luis"`)
	assert.Contains(t, out, `"date":"2024-03-14"`)
	assert.Contains(t, out, `"total":"225.50"`)
	assert.Contains(t, out, `"dispatches":3`)
	reader.AssertExpectations(t)
}

func TestSettlementReportJob_RunFailure(t *testing.T) {
	reader := &MockSettlementReader{}
	reader.On("Settle", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

	logger, _ := newLogger()
	job := NewSettlementReportJob(queries.NewGetSettlementQueryHandler(reader), clock.NewFixed(now), "0 0 6 * * *", logger)

	err := job.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestSettlementReportJob_StartRejectsBadSchedule(t *testing.T) {
	logger, _ := newLogger()
	job := NewSettlementReportJob(
		queries.NewGetSettlementQueryHandler(&MockSettlementReader{}), clock.NewFixed(now), "every day", logger,
	)

	require.Error(t, job.Start())
}

func TestOverdueDispatchJob_Run(t *testing.T) {
	repo := &MockDispatchRepository{}
	repo.On("GetUnreceivedBefore", mock.Anything, now.Add(-72*time.Hour)).Return([]*dispatch.Dispatch{
		newTestDispatch(t, "GU-1", "Ana", now.Add(-100*time.Hour)),
		newTestDispatch(t, "GU-2", "Luis", now.Add(-80*time.Hour)),
	}, nil)

	logger, buf := newLogger()
	clk := clock.NewFixed(now)
	handler := queries.NewGetOverdueDispatchesQueryHandler(dispatchRepos{repo: repo}, clk)
	job := NewOverdueDispatchJob(handler, clk, 72*time.Hour, "0 0 * * * *", logger)

	count, err := job.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	out := buf.String()
	assert.Contains(t, out, `"tracking_number":"GU-1"`)
	assert.Contains(t, out, `"age":"100h0m0s"`)
	assert.Contains(t, out, `"count":2`)
	repo.AssertExpectations(t)
}

func TestOverdueDispatchJob_RunNothingOverdue(t *testing.T) {
	repo := &MockDispatchRepository{}
	repo.On("GetUnreceivedBefore", mock.Anything, mock.Anything).Return([]*dispatch.Dispatch{}, nil)

	logger, buf := newLogger()
	clk := clock.NewFixed(now)
	job := NewOverdueDispatchJob(
		queries.NewGetOverdueDispatchesQueryHandler(dispatchRepos{repo: repo}, clk), clk, time.Hour, "0 0 * * * *", logger,
	)

	count, err := job.Run(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.NotContains(t, buf.String(), "Overdue dispatches found")
}

func TestOverdueDispatchJob_StartRejectsNonPositiveAge(t *testing.T) {
	logger, _ := newLogger()
	clk := clock.NewFixed(now)
	job := NewOverdueDispatchJob(
		queries.NewGetOverdueDispatchesQueryHandler(dispatchRepos{repo: &MockDispatchRepository{}}, clk),
		clk, 0, "0 0 * * * *", logger,
	)

	require.Error(t, job.Start())
}

func TestJobManager(t *testing.T) {
	logger, _ := newLogger()
	clk := clock.NewFixed(now)
	settlement := queries.NewGetSettlementQueryHandler(&MockSettlementReader{})
	overdue := queries.NewGetOverdueDispatchesQueryHandler(dispatchRepos{repo: &MockDispatchRepository{}}, clk)

	t.Run("starts and stops enabled jobs", func(t *testing.T) {
		jm := NewJobManager(settlement, overdue, clk, Schedules{
			SettlementReport: "0 0 6 * * *",
			OverdueReport:    "0 0 * * * *",
			OverdueAfter:     72 * time.Hour,
		}, logger)

		require.NoError(t, jm.StartAll())
		jm.StopAll()
	})

	t.Run("empty schedules disable jobs", func(t *testing.T) {
		jm := NewJobManager(settlement, overdue, clk, Schedules{}, logger)

		assert.Nil(t, jm.settlementReportJob)
		assert.Nil(t, jm.overdueDispatchJob)
		require.NoError(t, jm.StartAll())
		jm.StopAll()
	})

	t.Run("failed start reports the job", func(t *testing.T) {
		jm := NewJobManager(settlement, overdue, clk, Schedules{
			SettlementReport: "0 0 6 * * *",
			OverdueReport:    "hourly",
			OverdueAfter:     time.Hour,
		}, logger)

		err := jm.StartAll()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "overdue dispatch job")
	})
}
