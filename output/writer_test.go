package output

import (
	"testing"
	"time"

	"hbsreport/report"
)

func sampleReport() report.Report {
	return report.Report{
		ReportDate: time.Date(2024, 9, 2, 0, 0, 0, 0, time.Local),
		TrackedActivities: map[string]report.Matrix{
			"Org2": {
				"Project 1": {"User 1": time.Hour, "User 2": 0},
				"Project 2": {"User 1": 0, "User 2": 90 * time.Minute},
			},
			"Org1": {
				"Project 1": {"User 1": time.Hour},
			},
		},
	}
}

func TestWriterForFormat(t *testing.T) {
	t.Parallel()

	cases := []struct {
		format string
		want   any
	}{
		{"html", &HTMLWriter{}},
		{"HTML", &HTMLWriter{}},
		{"csv", &CSVWriter{}},
		{" excel ", &ExcelWriter{}},
		{"xlsx", &ExcelWriter{}},
	}
	for _, tc := range cases {
		writer, err := WriterForFormat(tc.format)
		if err != nil {
			t.Fatalf("format %q: %v", tc.format, err)
		}
		if writer == nil {
			t.Fatalf("format %q: nil writer", tc.format)
		}
	}

	if _, err := WriterForFormat("pdf"); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   time.Duration
		want string
	}{
		{0, "0:00:00"},
		{time.Second, "0:00:01"},
		{90 * time.Minute, "1:30:00"},
		{time.Hour, "1:00:00"},
		{26*time.Hour + 5*time.Minute + 9*time.Second, "26:05:09"},
	}
	for _, tc := range cases {
		if got := FormatDuration(tc.in); got != tc.want {
			t.Fatalf("%v: expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestOrganizationViews_DeterministicOrdering(t *testing.T) {
	t.Parallel()

	views := organizationViews(sampleReport())
	if len(views) != 2 {
		t.Fatalf("expected 2 organization views, got %d", len(views))
	}
	if views[0].Name != "Org1" || views[1].Name != "Org2" {
		t.Fatalf("expected sorted organization names, got %+v", views)
	}

	org2 := views[1]
	if len(org2.Users) != 2 || org2.Users[0] != "User 1" || org2.Users[1] != "User 2" {
		t.Fatalf("expected sorted user columns, got %v", org2.Users)
	}
	if org2.Rows[0].Project != "Project 1" || org2.Rows[1].Project != "Project 2" {
		t.Fatalf("expected sorted project rows, got %+v", org2.Rows)
	}
	if org2.Rows[0].Cells[0] != "1:00:00" || org2.Rows[0].Cells[1] != "0:00:00" {
		t.Fatalf("unexpected cells: %v", org2.Rows[0].Cells)
	}
	if org2.Rows[1].Cells[1] != "1:30:00" {
		t.Fatalf("unexpected cells: %v", org2.Rows[1].Cells)
	}
}
