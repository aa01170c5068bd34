package output

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"hbsreport/report"
)

type ExcelWriter struct{}

func (w *ExcelWriter) Write(out io.Writer, rpt report.Report) error {
	file := excelize.NewFile()
	defer file.Close()

	defaultSheet := file.GetSheetName(0)
	for i, view := range organizationViews(rpt) {
		sheet := sheetName(view.Name)
		if i == 0 {
			if err := file.SetSheetName(defaultSheet, sheet); err != nil {
				return fmt.Errorf("rename sheet %q: %w", sheet, err)
			}
		} else {
			if _, err := file.NewSheet(sheet); err != nil {
				return fmt.Errorf("create sheet %q: %w", sheet, err)
			}
		}

		headers := append([]string{"Project"}, view.Users...)
		for col, header := range headers {
			cell, _ := excelize.CoordinatesToCellName(col+1, 1)
			if err := file.SetCellValue(sheet, cell, header); err != nil {
				return fmt.Errorf("set excel header %s: %w", cell, err)
			}
		}

		for rowIdx, row := range view.Rows {
			values := append([]string{row.Project}, row.Cells...)
			for col, value := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, rowIdx+2)
				if err := file.SetCellValue(sheet, cell, value); err != nil {
					return fmt.Errorf("set excel value %s: %w", cell, err)
				}
			}
		}
	}

	if err := file.Write(out); err != nil {
		return fmt.Errorf("write excel output: %w", err)
	}
	return nil
}

// sheetName fits an organization name into Excel's 31-character sheet limit.
func sheetName(name string) string {
	if len(name) > 31 {
		return name[:31]
	}
	return name
}
