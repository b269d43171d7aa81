package domain

import (
	"context"
	"time"

	"shift-payroll/pkg/calendar"
)

// ShiftService is what the delivery layers need from the application.
type ShiftService interface {
	CurrentPeriod() calendar.Period
	Today() time.Time
	AddShift(ctx context.Context, date time.Time, code ShiftCode, employeeType EmployeeType) (ShiftRecord, error)
	Report(ctx context.Context) (Report, error)
	Reset(ctx context.Context) error
}
