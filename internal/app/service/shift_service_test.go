package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shift-payroll/internal/domain"
	"shift-payroll/internal/payroll"
	"shift-payroll/internal/repository/sqlite"
)

type stubShiftRepo struct {
	added     []domain.ShiftRecord
	addErr    error
	getErr    error
	deleteErr error
	gotFrom   time.Time
	gotTo     time.Time
}

func (r *stubShiftRepo) AddShift(_ context.Context, shift domain.ShiftRecord) error {
	if r.addErr != nil {
		return r.addErr
	}
	r.added = append(r.added, shift)
	return nil
}

func (r *stubShiftRepo) GetShifts(_ context.Context, from, to time.Time) ([]domain.ShiftRecord, error) {
	r.gotFrom, r.gotTo = from, to
	if r.getErr != nil {
		return nil, r.getErr
	}
	return r.added, nil
}

func (r *stubShiftRepo) DeleteAll(context.Context) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	r.added = nil
	return nil
}

func fixedClock(y int, m time.Month, d int) func() time.Time {
	return func() time.Time { return time.Date(y, m, d, 15, 30, 0, 0, time.Local) }
}

func newTestService(repo domain.ShiftRepo) *ShiftServiceImpl {
	svc := NewShiftService(repo, payroll.NewAggregator(payroll.DefaultRates()))
	svc.Now = fixedClock(2024, time.May, 10)
	return svc
}

func TestCurrentPeriodFollowsClock(t *testing.T) {
	svc := newTestService(&stubShiftRepo{})

	assert.Equal(t, time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC), svc.Today())
	p := svc.CurrentPeriod()
	assert.Equal(t, time.Date(2024, time.April, 26, 0, 0, 0, 0, time.UTC), p.Start)
	assert.Equal(t, time.Date(2024, time.May, 25, 0, 0, 0, 0, time.UTC), p.End)
}

func TestAddShiftComputesPay(t *testing.T) {
	repo := &stubShiftRepo{}
	svc := newTestService(repo)

	rec, err := svc.AddShift(context.Background(), svc.CurrentPeriod().End, domain.Shift22To6, domain.PartTime)
	require.NoError(t, err)

	assert.Equal(t, int64(8), rec.Hours)
	assert.Equal(t, int64(247520), rec.Salary)
	require.Len(t, repo.added, 1)
	assert.Equal(t, rec, repo.added[0])
}

func TestAddShiftUnknownCodeIsStoredWithoutPay(t *testing.T) {
	repo := &stubShiftRepo{}
	svc := newTestService(repo)

	rec, err := svc.AddShift(context.Background(), svc.Today(), "7-15", domain.FullTime)
	require.NoError(t, err)

	assert.Equal(t, int64(0), rec.Hours)
	assert.Equal(t, int64(0), rec.Salary)
	assert.Len(t, repo.added, 1)
}

func TestAddShiftOutsidePeriod(t *testing.T) {
	repo := &stubShiftRepo{}
	svc := newTestService(repo)
	p := svc.CurrentPeriod()

	for _, d := range []time.Time{p.Start.AddDate(0, 0, -1), p.End.AddDate(0, 0, 1)} {
		_, err := svc.AddShift(context.Background(), d, domain.Shift6To14, domain.FullTime)

		var oop *OutOfPeriodError
		require.True(t, errors.As(err, &oop), "expected OutOfPeriodError, got %v", err)
		assert.Equal(t, p, oop.Period)
		assert.Contains(t, err.Error(), "2024-04-26 → 2024-05-25")
	}
	assert.Empty(t, repo.added)
}

func TestAddShiftStorageError(t *testing.T) {
	boom := errors.New("disk full")
	svc := newTestService(&stubShiftRepo{addErr: boom})

	_, err := svc.AddShift(context.Background(), svc.Today(), domain.Shift6To14, domain.FullTime)
	assert.ErrorIs(t, err, boom)
}

func TestReportQueriesCurrentPeriod(t *testing.T) {
	repo := &stubShiftRepo{}
	svc := newTestService(repo)

	_, err := svc.Report(context.Background())
	require.NoError(t, err)

	assert.Equal(t, svc.CurrentPeriod().Start, repo.gotFrom)
	assert.Equal(t, svc.CurrentPeriod().End, repo.gotTo)
}

func TestReportStorageError(t *testing.T) {
	boom := errors.New("locked")
	svc := newTestService(&stubShiftRepo{getErr: boom})

	_, err := svc.Report(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestResetStorageError(t *testing.T) {
	boom := errors.New("locked")
	svc := newTestService(&stubShiftRepo{deleteErr: boom})

	assert.ErrorIs(t, svc.Reset(context.Background()), boom)
}

func TestEndToEndWithSqlite(t *testing.T) {
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "shifts.db"))
	require.NoError(t, err)
	defer db.Close()
	ctx := context.Background()
	require.NoError(t, sqlite.Migrate(ctx, db))

	svc := newTestService(sqlite.NewSqliteShiftRepo(db))
	start := svc.CurrentPeriod().Start

	_, err = svc.AddShift(ctx, start, domain.Shift6To14, domain.FullTime)
	require.NoError(t, err)

	report, err := svc.Report(ctx)
	require.NoError(t, err)
	require.Len(t, report.Rows, 1)
	assert.Equal(t, int64(8), report.TotalHours)
	assert.Equal(t, "190,400", report.FormattedMainSalary())
	assert.Equal(t, "300,000", report.FormattedSubsidy())
	assert.Equal(t, "490,400", report.FormattedTotalSalary())

	_, err = svc.AddShift(ctx, start, domain.Shift6To10, domain.PartTime)
	require.NoError(t, err)
	report, err = svc.Report(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(300000), report.Subsidy)

	require.NoError(t, svc.Reset(ctx))
	report, err = svc.Report(ctx)
	require.NoError(t, err)
	assert.Empty(t, report.Rows)
	assert.Equal(t, int64(0), report.TotalSalary)
}
