package output

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"hbsreport/internal/timeutil"
	"hbsreport/report"
)

//go:embed templates/report.html
var templateFS embed.FS

type HTMLWriter struct{}

type htmlPage struct {
	ReportDate    string
	Organizations []organizationView
}

func (w *HTMLWriter) Write(out io.Writer, rpt report.Report) error {
	tmpl, err := template.ParseFS(templateFS, "templates/report.html")
	if err != nil {
		return fmt.Errorf("parse report template: %w", err)
	}

	page := htmlPage{
		ReportDate:    timeutil.FormatDay(rpt.ReportDate),
		Organizations: organizationViews(rpt),
	}
	if err := tmpl.Execute(out, page); err != nil {
		return fmt.Errorf("render report template: %w", err)
	}
	return nil
}
