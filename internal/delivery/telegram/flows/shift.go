package flows

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gopkg.in/telebot.v3"

	"shift-payroll/internal/app/service"
	"shift-payroll/internal/delivery/telegram/keyboards"
	"shift-payroll/internal/delivery/telegram/middleware"
	"shift-payroll/internal/delivery/telegram/router"
	"shift-payroll/internal/domain"
	"shift-payroll/pkg/calendar"
)

const requestTimeout = 10 * time.Second

// Async runs fn off the update goroutine and waits for its result.
type Async interface {
	SubmitAsync(ctx context.Context, fn func() (any, error)) (any, error)
}

// StartShiftEntry shows the day picker for the current pay period.
func StartShiftEntry(c telebot.Context, shifts domain.ShiftService) error {
	title, markup := keyboards.BuildDayKeyboard(shifts.CurrentPeriod(), shifts.Today())
	return c.Send(title, markup)
}

// RegisterShiftEntry wires the day → shift → employee type picker. Every button
// carries the choices made so far, so nothing is kept between updates.
func RegisterShiftEntry(r *router.CallbackRouter, shifts domain.ShiftService, async Async, log *zap.Logger) {
	r.Register("pick_day", func(c telebot.Context, payload string) error {
		date, err := calendar.ParseDate(payload)
		if err != nil {
			return middleware.EditOrSend(c, "Invalid date.", nil)
		}
		title, markup := keyboards.BuildShiftKeyboard(date)
		return middleware.EditOrSend(c, title, markup)
	})

	r.Register("pick_shift", func(c telebot.Context, payload string) error {
		parts := strings.Split(payload, "|")
		if len(parts) != 2 {
			return nil
		}
		date, err := calendar.ParseDate(parts[0])
		if err != nil {
			return middleware.EditOrSend(c, "Invalid date.", nil)
		}
		title, markup := keyboards.BuildTypeKeyboard(date, domain.ShiftCode(parts[1]))
		return middleware.EditOrSend(c, title, markup)
	})

	r.Register("pick_type", func(c telebot.Context, payload string) error {
		parts := strings.Split(payload, "|")
		if len(parts) != 3 {
			return nil
		}
		date, err := calendar.ParseDate(parts[0])
		if err != nil {
			return middleware.EditOrSend(c, "Invalid date.", nil)
		}
		code := domain.ShiftCode(parts[1])
		employeeType := domain.EmployeeType(parts[2])
		if !employeeType.IsValid() {
			return middleware.EditOrSend(c, "Unknown employee type.", nil)
		}

		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		v, err := async.SubmitAsync(ctx, func() (any, error) {
			return shifts.AddShift(ctx, date, code, employeeType)
		})
		var oop *service.OutOfPeriodError
		switch {
		case errors.As(err, &oop):
			return middleware.EditOrSend(c, fmt.Sprintf("Shifts can only be entered from %s to %s.",
				calendar.FormatDate(oop.Period.Start), calendar.FormatDate(oop.Period.End)), nil)
		case err != nil:
			log.Error("add shift failed", zap.Error(err))
			return middleware.EditOrSend(c, "Could not save the shift, please try again.", nil)
		}

		rec := v.(domain.ShiftRecord)
		log.Info("shift recorded via telegram",
			zap.String("date", calendar.FormatDate(rec.Date)),
			zap.String("shift", string(rec.Shift)),
			zap.String("type", string(rec.EmployeeType)))
		return middleware.EditOrSend(c, fmt.Sprintf("Saved: %s %s (%s), %dh, %s VND",
			calendar.FormatDate(rec.Date), rec.Shift, rec.EmployeeType, rec.Hours, rec.FormattedSalary()), nil)
	})
}

// SendReport replies with the payroll report of the current period.
func SendReport(c telebot.Context, shifts domain.ShiftService, async Async, log *zap.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	v, err := async.SubmitAsync(ctx, func() (any, error) {
		return shifts.Report(ctx)
	})
	if err != nil {
		log.Error("build report failed", zap.Error(err))
		return c.Send("Could not build the report, please try again.")
	}
	return c.Send(v.(domain.Report).Text())
}

func SendPeriod(c telebot.Context, shifts domain.ShiftService) error {
	return c.Send("Current pay period: " + shifts.CurrentPeriod().String())
}
