package timeutil

import (
	"fmt"
	"strings"
	"time"
)

// DayLayout is the wire format for report dates and the DateStart/DateStop headers.
const DayLayout = "2006-01-02"

func FormatDay(day time.Time) string {
	return day.Format(DayLayout)
}

func ParseDay(value string) (time.Time, error) {
	parsed, err := time.ParseInLocation(DayLayout, strings.TrimSpace(value), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse day %q: %w", value, err)
	}
	return parsed, nil
}

func StartOfDay(value time.Time) time.Time {
	return time.Date(value.Year(), value.Month(), value.Day(), 0, 0, 0, 0, value.Location())
}

// Yesterday returns the start of the previous calendar day in local time.
func Yesterday() time.Time {
	return StartOfDay(time.Now().AddDate(0, 0, -1))
}
