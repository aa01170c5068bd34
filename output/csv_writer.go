package output

import (
	"encoding/csv"
	"fmt"
	"io"

	"hbsreport/internal/timeutil"
	"hbsreport/report"
)

type CSVWriter struct{}

func (w *CSVWriter) Write(out io.Writer, rpt report.Report) error {
	writer := csv.NewWriter(out)

	headers := []string{"ReportDate", "Organization", "Project", "User", "Tracked"}
	if err := writer.Write(headers); err != nil {
		return fmt.Errorf("write csv headers: %w", err)
	}

	reportDate := timeutil.FormatDay(rpt.ReportDate)
	for _, view := range organizationViews(rpt) {
		for _, row := range view.Rows {
			for i, user := range view.Users {
				record := []string{reportDate, view.Name, row.Project, user, row.Cells[i]}
				if err := writer.Write(record); err != nil {
					return fmt.Errorf("write csv row: %w", err)
				}
			}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv output: %w", err)
	}
	return nil
}
