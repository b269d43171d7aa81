package service

import (
	"fmt"
	"time"

	"shift-payroll/pkg/calendar"
)

// OutOfPeriodError rejects a shift dated outside the active pay period.
type OutOfPeriodError struct {
	Date   time.Time
	Period calendar.Period
}

func (e *OutOfPeriodError) Error() string {
	return fmt.Sprintf("date %s is outside the pay period %s", calendar.FormatDate(e.Date), e.Period)
}
