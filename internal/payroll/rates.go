// Package payroll turns shift codes into pay and shift records into a report.
package payroll

import (
	"math"

	"shift-payroll/internal/domain"
)

// Rates holds the pay rules. Amounts are in VND.
type Rates struct {
	Hourly          int64
	NightMultiplier float64
	FullTimeSubsidy int64
	PartTimeSubsidy int64
}

func DefaultRates() Rates {
	return Rates{
		Hourly:          23800,
		NightMultiplier: 1.3,
		FullTimeSubsidy: 300000,
		PartTimeSubsidy: 150000,
	}
}

// NightRate is the hourly rate of the overnight shift, rounded to a whole amount.
func (r Rates) NightRate() int64 {
	return int64(math.Round(float64(r.Hourly) * r.NightMultiplier))
}

func (r Rates) RateFor(code domain.ShiftCode) int64 {
	if code.IsNight() {
		return r.NightRate()
	}
	return r.Hourly
}

func (r Rates) Salary(code domain.ShiftCode) int64 {
	return code.Hours() * r.RateFor(code)
}

// Subsidy is the parking allowance for a report containing the given employee types.
// A single full-time entry wins over any number of part-time ones.
func (r Rates) Subsidy(types map[domain.EmployeeType]bool) int64 {
	switch {
	case types[domain.FullTime]:
		return r.FullTimeSubsidy
	case types[domain.PartTime]:
		return r.PartTimeSubsidy
	default:
		return 0
	}
}
