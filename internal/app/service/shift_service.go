package service

import (
	"context"
	"fmt"
	"time"

	"shift-payroll/internal/domain"
	"shift-payroll/internal/payroll"
	"shift-payroll/pkg/calendar"
)

type ShiftServiceImpl struct {
	Repo       domain.ShiftRepo
	Aggregator *payroll.Aggregator
	// Now is the clock; nil means time.Now.
	Now func() time.Time
}

func NewShiftService(repo domain.ShiftRepo, aggregator *payroll.Aggregator) *ShiftServiceImpl {
	return &ShiftServiceImpl{Repo: repo, Aggregator: aggregator, Now: time.Now}
}

func (s *ShiftServiceImpl) Today() time.Time {
	if s.Now == nil {
		return calendar.DateOf(time.Now())
	}
	return calendar.DateOf(s.Now())
}

func (s *ShiftServiceImpl) CurrentPeriod() calendar.Period {
	return calendar.CurrentPeriod(s.Today())
}

// AddShift stores a shift dated within the current pay period. Hours and salary
// are computed here; an unknown code is stored with zero hours.
func (s *ShiftServiceImpl) AddShift(ctx context.Context, date time.Time, code domain.ShiftCode, employeeType domain.EmployeeType) (domain.ShiftRecord, error) {
	period := s.CurrentPeriod()
	if !period.Contains(date) {
		return domain.ShiftRecord{}, &OutOfPeriodError{Date: calendar.DateOf(date), Period: period}
	}
	rec := s.Aggregator.NewRecord(date, code, employeeType)
	if err := s.Repo.AddShift(ctx, rec); err != nil {
		return domain.ShiftRecord{}, err
	}
	return rec, nil
}

func (s *ShiftServiceImpl) Report(ctx context.Context) (domain.Report, error) {
	period := s.CurrentPeriod()
	shifts, err := s.Repo.GetShifts(ctx, period.Start, period.End)
	if err != nil {
		return domain.Report{}, fmt.Errorf("load shifts for %s: %w", period, err)
	}
	return s.Aggregator.Aggregate(period, shifts), nil
}

// Reset deletes every stored shift.
func (s *ShiftServiceImpl) Reset(ctx context.Context) error {
	return s.Repo.DeleteAll(ctx)
}

var _ domain.ShiftService = (*ShiftServiceImpl)(nil)
