package telegram

import (
	"go.uber.org/zap"
	"gopkg.in/telebot.v3"

	"shift-payroll/internal/app/service"
	"shift-payroll/internal/delivery/telegram/flows"
	"shift-payroll/internal/delivery/telegram/router"
	"shift-payroll/internal/domain"
)

type Handler struct {
	Bot    *telebot.Bot
	Shifts domain.ShiftService
	Async  *service.AsyncService
	Log    *zap.Logger
}

var (
	btnAddShift = telebot.Btn{Text: "📅 Add shift"}
	btnReport   = telebot.Btn{Text: "💰 Report"}
	btnPeriod   = telebot.Btn{Text: "🗓 Pay period"}
)

func (h *Handler) Register() {
	h.Bot.Handle("/start", h.handleStart)
	h.Bot.Handle("/report", h.handleReport)
	h.Bot.Handle("/period", h.handlePeriod)
	h.Bot.Handle(telebot.OnText, h.handleText)

	r := router.New(h.Log)
	flows.RegisterShiftEntry(r, h.Shifts, h.Async, h.Log)
	r.Attach(h.Bot)
}

func (h *Handler) handleStart(c telebot.Context) error {
	markup := &telebot.ReplyMarkup{ResizeKeyboard: true}
	markup.Reply(
		markup.Row(markup.Text(btnAddShift.Text)),
		markup.Row(markup.Text(btnReport.Text), markup.Text(btnPeriod.Text)),
	)
	return c.Send("Welcome! Record a shift or check the payroll.", markup)
}

func (h *Handler) handleReport(c telebot.Context) error {
	return flows.SendReport(c, h.Shifts, h.Async, h.Log)
}

func (h *Handler) handlePeriod(c telebot.Context) error {
	return flows.SendPeriod(c, h.Shifts)
}

func (h *Handler) handleText(c telebot.Context) error {
	switch c.Text() {
	case btnAddShift.Text:
		return flows.StartShiftEntry(c, h.Shifts)
	case btnReport.Text:
		return h.handleReport(c)
	case btnPeriod.Text:
		return h.handlePeriod(c)
	}
	return nil
}
