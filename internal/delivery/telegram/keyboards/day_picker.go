package keyboards

import (
	"strconv"
	"time"

	"gopkg.in/telebot.v3"

	"shift-payroll/pkg/calendar"
)

const daysPerRow = 7

// BuildDayKeyboard offers every date of the pay period, a week per row.
func BuildDayKeyboard(period calendar.Period, today time.Time) (string, *telebot.ReplyMarkup) {
	markup := &telebot.ReplyMarkup{}
	var rows []telebot.Row
	week := telebot.Row{}
	for _, d := range period.Days() {
		label := strconv.Itoa(d.Day())
		if d.Equal(calendar.DateOf(today)) {
			label = "•" + label
		}
		week = append(week, markup.Data(label, "pick_day", calendar.FormatDate(d)))
		if len(week) == daysPerRow {
			rows = append(rows, week)
			week = telebot.Row{}
		}
	}
	if len(week) > 0 {
		rows = append(rows, week)
	}
	markup.Inline(rows...)
	return "Pick the work date (" + period.String() + "):", markup
}
