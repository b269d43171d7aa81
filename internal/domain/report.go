package domain

import (
	"fmt"
	"strings"

	"shift-payroll/pkg/calendar"
)

// Report is the payroll summary of one pay period.
type Report struct {
	Period      calendar.Period
	Rows        []ShiftRecord
	TotalHours  int64
	MainSalary  int64
	Subsidy     int64
	TotalSalary int64
}

func (r Report) FormattedMainSalary() string  { return FormatAmount(r.MainSalary) }
func (r Report) FormattedSubsidy() string     { return FormatAmount(r.Subsidy) }
func (r Report) FormattedTotalSalary() string { return FormatAmount(r.TotalSalary) }

// Text renders the report for plain-text channels.
func (r Report) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Payroll %s\n", r.Period)
	if len(r.Rows) == 0 {
		b.WriteString("No shifts recorded.\n")
	}
	for _, row := range r.Rows {
		fmt.Fprintf(&b, "%s  %-5s  %-9s  %dh  %s VND\n",
			calendar.FormatDate(row.Date), row.Shift, row.EmployeeType, row.Hours, row.FormattedSalary())
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Total hours: %d\n", r.TotalHours)
	fmt.Fprintf(&b, "Main salary: %s VND\n", r.FormattedMainSalary())
	fmt.Fprintf(&b, "Parking subsidy: %s VND\n", r.FormattedSubsidy())
	fmt.Fprintf(&b, "Total income: %s VND\n", r.FormattedTotalSalary())
	return b.String()
}
