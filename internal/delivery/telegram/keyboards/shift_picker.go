package keyboards

import (
	"time"

	"gopkg.in/telebot.v3"

	"shift-payroll/internal/domain"
	"shift-payroll/pkg/calendar"
)

const shiftsPerRow = 4

func BuildShiftKeyboard(date time.Time) (string, *telebot.ReplyMarkup) {
	markup := &telebot.ReplyMarkup{}
	day := calendar.FormatDate(date)
	var rows []telebot.Row
	for i := 0; i < len(domain.ShiftCodes); i += shiftsPerRow {
		row := telebot.Row{}
		for _, code := range domain.ShiftCodes[i:min(i+shiftsPerRow, len(domain.ShiftCodes))] {
			row = append(row, markup.Data(string(code), "pick_shift", day, string(code)))
		}
		rows = append(rows, row)
	}
	markup.Inline(rows...)
	return "Shift on " + day + ":", markup
}

func BuildTypeKeyboard(date time.Time, code domain.ShiftCode) (string, *telebot.ReplyMarkup) {
	markup := &telebot.ReplyMarkup{}
	day := calendar.FormatDate(date)
	row := telebot.Row{}
	for _, t := range domain.EmployeeTypes {
		row = append(row, markup.Data(string(t), "pick_type", day, string(code), string(t)))
	}
	markup.Inline(row)
	return "Employee type for " + day + " " + string(code) + ":", markup
}
