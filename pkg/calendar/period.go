package calendar

import (
	"time"
)

// DateLayout is the ISO date layout used for form values and storage.
const DateLayout = "2006-01-02"

// CycleStartDay is the day of month a pay period starts on; it ends the day before
// in the following month.
const CycleStartDay = 26

// Period is an inclusive range of calendar dates.
type Period struct {
	Start time.Time
	End   time.Time
}

// CurrentPeriod returns the 26th-to-25th pay cycle containing today.
func CurrentPeriod(today time.Time) Period {
	d := DateOf(today)
	start := time.Date(d.Year(), d.Month(), CycleStartDay, 0, 0, 0, 0, time.UTC)
	if d.Day() < CycleStartDay {
		// month 0 normalizes to December of the previous year
		start = time.Date(d.Year(), d.Month()-1, CycleStartDay, 0, 0, 0, 0, time.UTC)
	}
	end := time.Date(start.Year(), start.Month()+1, CycleStartDay-1, 0, 0, 0, 0, time.UTC)
	return Period{Start: start, End: end}
}

// DateOf drops the clock and location from t, keeping its calendar date.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Contains reports whether the calendar date of d lies within the period, ends included.
func (p Period) Contains(d time.Time) bool {
	d = DateOf(d)
	return !d.Before(p.Start) && !d.After(p.End)
}

// Days lists every date of the period in order.
func (p Period) Days() []time.Time {
	var days []time.Time
	for d := p.Start; !d.After(p.End); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

func (p Period) String() string {
	return FormatDate(p.Start) + " → " + FormatDate(p.End)
}

// ParseDate parses an ISO date such as 2024-05-26.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
