package web

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shift-payroll/internal/app/service"
	"shift-payroll/internal/domain"
	"shift-payroll/pkg/calendar"
)

type Handler struct {
	Shifts domain.ShiftService
	Log    *zap.Logger
}

// ShiftForm is the body of POST /.
type ShiftForm struct {
	Date  string `form:"date" binding:"required"`
	Shift string `form:"shift" binding:"required"`
	Type  string `form:"type" binding:"required,oneof=part-time full-time"`
}

func (h *Handler) Register(r gin.IRouter) {
	r.GET("/", h.showForm)
	r.POST("/", h.submitShift)
	r.GET("/report", h.showReport)
	r.GET("/reset", h.reset)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

func (h *Handler) showForm(c *gin.Context) {
	period := h.Shifts.CurrentPeriod()
	c.HTML(http.StatusOK, "form.html", gin.H{
		"Start":  calendar.FormatDate(period.Start),
		"End":    calendar.FormatDate(period.End),
		"Today":  calendar.FormatDate(h.Shifts.Today()),
		"Shifts": domain.ShiftCodes,
	})
}

func (h *Handler) submitShift(c *gin.Context) {
	var form ShiftForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderError(c, http.StatusBadRequest, FormatBindingError(err))
		return
	}

	period := h.Shifts.CurrentPeriod()
	date, err := calendar.ParseDate(form.Date)
	if err != nil {
		h.renderError(c, http.StatusBadRequest, outOfPeriodMessage(period))
		return
	}

	rec, err := h.Shifts.AddShift(c.Request.Context(), date, domain.ShiftCode(form.Shift), domain.EmployeeType(form.Type))
	var oop *service.OutOfPeriodError
	switch {
	case errors.As(err, &oop):
		h.renderError(c, http.StatusBadRequest, outOfPeriodMessage(oop.Period))
		return
	case err != nil:
		h.fail(c, "add shift", err)
		return
	}

	h.Log.Info("shift recorded",
		zap.String("date", calendar.FormatDate(rec.Date)),
		zap.String("shift", string(rec.Shift)),
		zap.String("type", string(rec.EmployeeType)),
		zap.Int64("hours", rec.Hours),
		zap.Int64("salary", rec.Salary),
	)
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) showReport(c *gin.Context) {
	report, err := h.Shifts.Report(c.Request.Context())
	if err != nil {
		h.fail(c, "build report", err)
		return
	}
	c.HTML(http.StatusOK, "report.html", gin.H{
		"Start":  calendar.FormatDate(report.Period.Start),
		"End":    calendar.FormatDate(report.Period.End),
		"Report": report,
	})
}

func (h *Handler) reset(c *gin.Context) {
	if err := h.Shifts.Reset(c.Request.Context()); err != nil {
		h.fail(c, "reset shifts", err)
		return
	}
	h.Log.Warn("all shifts deleted", zap.String("client_ip", c.ClientIP()))
	c.Redirect(http.StatusSeeOther, "/")
}

func outOfPeriodMessage(p calendar.Period) string {
	return fmt.Sprintf("Shifts can only be entered from %s to %s", calendar.FormatDate(p.Start), calendar.FormatDate(p.End))
}

func (h *Handler) renderError(c *gin.Context, status int, message string) {
	c.HTML(status, "error.html", gin.H{"Message": message})
}

// fail reports a storage failure without leaking its details to the client.
func (h *Handler) fail(c *gin.Context, op string, err error) {
	h.Log.Error(op+" failed", zap.Error(err), zap.String("request_id", c.GetString(requestIDKey)))
	_ = c.Error(err)
	h.renderError(c, http.StatusInternalServerError, "Something went wrong, please try again")
}
