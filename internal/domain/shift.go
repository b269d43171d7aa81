package domain

import (
	"time"

	"github.com/dustin/go-humanize"
)

// ShiftCode names a working slot as "startHour-endHour", or OFF.
type ShiftCode string

const (
	Shift6To10  ShiftCode = "6-10"
	Shift10To14 ShiftCode = "10-14"
	Shift14To18 ShiftCode = "14-18"
	Shift18To22 ShiftCode = "18-22"
	Shift6To14  ShiftCode = "6-14"
	Shift14To22 ShiftCode = "14-22"
	Shift22To6  ShiftCode = "22-6"
	ShiftOff    ShiftCode = "OFF"
)

// ShiftCodes lists the known codes in the order they are offered for entry.
var ShiftCodes = []ShiftCode{
	Shift6To10, Shift10To14, Shift14To18, Shift18To22,
	Shift6To14, Shift14To22, Shift22To6, ShiftOff,
}

// Hours returns the paid hours of the shift. Unknown codes are worth 0 hours.
func (c ShiftCode) Hours() int64 {
	switch c {
	case Shift6To10, Shift10To14, Shift14To18, Shift18To22:
		return 4
	case Shift6To14, Shift14To22, Shift22To6:
		return 8
	case ShiftOff:
		return 0
	default:
		return 0
	}
}

// IsNight reports whether the shift is paid at the night rate.
func (c ShiftCode) IsNight() bool {
	return c == Shift22To6
}

func (c ShiftCode) IsValid() bool {
	for _, known := range ShiftCodes {
		if c == known {
			return true
		}
	}
	return false
}

type EmployeeType string

const (
	PartTime EmployeeType = "part-time"
	FullTime EmployeeType = "full-time"
)

var EmployeeTypes = []EmployeeType{PartTime, FullTime}

func (t EmployeeType) IsValid() bool {
	switch t {
	case PartTime, FullTime:
		return true
	}
	return false
}

// ShiftRecord is one stored shift entry. Hours and Salary are derived from Shift
// when the record is created and never change afterwards.
type ShiftRecord struct {
	ID           int64
	Date         time.Time
	Shift        ShiftCode
	Hours        int64
	Salary       int64
	EmployeeType EmployeeType
}

func (r ShiftRecord) FormattedSalary() string {
	return FormatAmount(r.Salary)
}

// FormatAmount renders an amount with thousands separators, e.g. 1,234,567.
func FormatAmount(v int64) string {
	return humanize.Comma(v)
}
