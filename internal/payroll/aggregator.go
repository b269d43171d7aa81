package payroll

import (
	"time"

	"shift-payroll/internal/domain"
	"shift-payroll/pkg/calendar"
)

type Aggregator struct {
	Rates Rates
}

func NewAggregator(rates Rates) *Aggregator {
	return &Aggregator{Rates: rates}
}

// NewRecord builds a record with hours and salary derived from code.
func (a *Aggregator) NewRecord(date time.Time, code domain.ShiftCode, employeeType domain.EmployeeType) domain.ShiftRecord {
	return domain.ShiftRecord{
		Date:         calendar.DateOf(date),
		Shift:        code,
		Hours:        code.Hours(),
		Salary:       a.Rates.Salary(code),
		EmployeeType: employeeType,
	}
}

// Aggregate sums the records of a period. The subsidy is added once per report.
func (a *Aggregator) Aggregate(period calendar.Period, records []domain.ShiftRecord) domain.Report {
	report := domain.Report{Period: period, Rows: records}
	types := make(map[domain.EmployeeType]bool)
	for _, rec := range records {
		report.TotalHours += rec.Hours
		report.MainSalary += rec.Salary
		types[rec.EmployeeType] = true
	}
	report.Subsidy = a.Rates.Subsidy(types)
	report.TotalSalary = report.MainSalary + report.Subsidy
	return report
}
