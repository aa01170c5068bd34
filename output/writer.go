package output

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"hbsreport/report"
)

type Writer interface {
	Write(out io.Writer, rpt report.Report) error
}

func WriterForFormat(format string) (Writer, error) {
	switch normalizeFormat(format) {
	case "html":
		return &HTMLWriter{}, nil
	case "csv":
		return &CSVWriter{}, nil
	case "excel", "xlsx":
		return &ExcelWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

func normalizeFormat(value string) string {
	return strings.TrimSpace(strings.ToLower(value))
}

// FormatDuration renders a duration as H:MM:SS.
func FormatDuration(d time.Duration) string {
	total := int64(d / time.Second)
	return fmt.Sprintf("%d:%02d:%02d", total/3600, total%3600/60, total%60)
}

type organizationView struct {
	Name  string
	Users []string
	Rows  []projectRow
}

type projectRow struct {
	Project string
	Cells   []string
}

// organizationViews flattens a report into render-ready tables with
// deterministic ordering: organizations, rows, and columns all ascending.
func organizationViews(rpt report.Report) []organizationView {
	names := make([]string, 0, len(rpt.TrackedActivities))
	for name := range rpt.TrackedActivities {
		names = append(names, name)
	}
	sort.Strings(names)

	views := make([]organizationView, 0, len(names))
	for _, name := range names {
		matrix := rpt.TrackedActivities[name]
		users := matrix.UserNames()

		rows := make([]projectRow, 0, len(matrix))
		for _, project := range matrix.ProjectNames() {
			cells := make([]string, 0, len(users))
			for _, user := range users {
				cells = append(cells, FormatDuration(matrix[project][user]))
			}
			rows = append(rows, projectRow{Project: project, Cells: cells})
		}

		views = append(views, organizationView{Name: name, Users: users, Rows: rows})
	}
	return views
}
