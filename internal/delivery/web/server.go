// Package web serves the shift entry form and the payroll report over HTTP.
package web

import (
	"embed"
	"html/template"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shift-payroll/internal/domain"
	"shift-payroll/pkg/calendar"
)

//go:embed templates/*.html
var templateFS embed.FS

func parseTemplates() (*template.Template, error) {
	return template.New("").
		Funcs(template.FuncMap{"formatDate": calendar.FormatDate}).
		ParseFS(templateFS, "templates/*.html")
}

// NewRouter wires the handlers, templates and middleware into a gin engine.
func NewRouter(shifts domain.ShiftService, log *zap.Logger) (*gin.Engine, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(RequestID(), AccessLog(log), gin.Recovery())
	r.SetHTMLTemplate(tmpl)

	h := &Handler{Shifts: shifts, Log: log}
	h.Register(r)
	return r, nil
}
