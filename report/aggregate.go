package report

import (
	"fmt"
	"sort"
	"time"

	"hbsreport/hubstaff"
)

// Matrix maps project name -> user name -> accumulated tracked duration.
// Every matrix is dense: each row holds a cell for every user seen in the
// response, zero-filled, so dimensions depend only on the project/user sets
// and never on activity order.
type Matrix map[string]map[string]time.Duration

// ProjectNames returns the row labels in ascending order.
func (m Matrix) ProjectNames() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// UserNames returns the column labels in ascending order. All rows share the
// same column set, so any row serves.
func (m Matrix) UserNames() []string {
	for _, row := range m {
		names := make([]string, 0, len(row))
		for name := range row {
			names = append(names, name)
		}
		sort.Strings(names)
		return names
	}
	return []string{}
}

// LookupError signals an activity record referencing a project or user id the
// response never declared. That is an API consistency violation; dropping the
// record silently would corrupt the report.
type LookupError struct {
	Kind       string
	ID         int64
	ActivityID int64
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("activity %d references unknown %s id %d", e.ActivityID, e.Kind, e.ID)
}

// Accumulate cross-tabulates one fully paginated daily-activities response
// into a project x user duration matrix.
func Accumulate(resp hubstaff.DailyActivitiesResponse) (Matrix, error) {
	projectNames := make(map[int64]string, len(resp.Projects))
	for project := range resp.Projects {
		projectNames[project.ID] = project.Name
	}
	userNames := make(map[int64]string, len(resp.Users))
	for user := range resp.Users {
		userNames[user.ID] = user.Name
	}

	matrix := make(Matrix, len(projectNames))
	for _, projectName := range projectNames {
		row := make(map[string]time.Duration, len(userNames))
		for _, userName := range userNames {
			row[userName] = 0
		}
		matrix[projectName] = row
	}

	for _, activity := range resp.DailyActivities {
		projectName, ok := projectNames[activity.ProjectID]
		if !ok {
			return nil, &LookupError{Kind: "project", ID: activity.ProjectID, ActivityID: activity.ID}
		}
		userName, ok := userNames[activity.UserID]
		if !ok {
			return nil, &LookupError{Kind: "user", ID: activity.UserID, ActivityID: activity.ID}
		}
		matrix[projectName][userName] += time.Duration(activity.Tracked) * time.Second
	}

	return matrix, nil
}
