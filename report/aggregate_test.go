package report

import (
	"errors"
	"testing"
	"time"

	"hbsreport/hubstaff"
)

func activity(id, projectID, userID, tracked int64) hubstaff.DailyActivity {
	return hubstaff.DailyActivity{
		ID:        id,
		Date:      "2024-09-02",
		UserID:    userID,
		ProjectID: projectID,
		Tracked:   tracked,
	}
}

func response(activities []hubstaff.DailyActivity, projects []hubstaff.Project, users []hubstaff.User) hubstaff.DailyActivitiesResponse {
	resp := hubstaff.DailyActivitiesResponse{
		DailyActivities: activities,
		Users:           map[hubstaff.User]struct{}{},
		Projects:        map[hubstaff.Project]struct{}{},
	}
	for _, project := range projects {
		resp.Projects[project] = struct{}{}
	}
	for _, user := range users {
		resp.Users[user] = struct{}{}
	}
	return resp
}

func TestAccumulate_ZeroFillsFullCartesianProduct(t *testing.T) {
	t.Parallel()

	resp := response(
		[]hubstaff.DailyActivity{activity(1, 1, 1, 3600)},
		[]hubstaff.Project{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}},
		[]hubstaff.User{{ID: 1, Name: "X"}, {ID: 2, Name: "Y"}},
	)

	matrix, err := Accumulate(resp)
	if err != nil {
		t.Fatalf("accumulate: %v", err)
	}

	want := Matrix{
		"A": {"X": time.Hour, "Y": 0},
		"B": {"X": 0, "Y": 0},
	}
	if len(matrix) != len(want) {
		t.Fatalf("unexpected row count: %d", len(matrix))
	}
	for project, row := range want {
		for user, duration := range row {
			if got := matrix[project][user]; got != duration {
				t.Fatalf("cell (%s,%s): expected %v, got %v", project, user, duration, got)
			}
		}
	}
}

func TestAccumulate_SumsActivitiesInSameCell(t *testing.T) {
	t.Parallel()

	resp := response(
		[]hubstaff.DailyActivity{
			activity(1, 1, 1, 1800),
			activity(2, 1, 1, 1800),
		},
		[]hubstaff.Project{{ID: 1, Name: "A"}},
		[]hubstaff.User{{ID: 1, Name: "X"}},
	)

	matrix, err := Accumulate(resp)
	if err != nil {
		t.Fatalf("accumulate: %v", err)
	}
	if got := matrix["A"]["X"]; got != time.Hour {
		t.Fatalf("expected 3600s in cell (A,X), got %v", got)
	}
}

func TestAccumulate_OrderIndependentDimensions(t *testing.T) {
	t.Parallel()

	projects := []hubstaff.Project{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}
	users := []hubstaff.User{{ID: 1, Name: "X"}, {ID: 2, Name: "Y"}}

	forward := response([]hubstaff.DailyActivity{activity(1, 1, 1, 600), activity(2, 2, 2, 900)}, projects, users)
	reversed := response([]hubstaff.DailyActivity{activity(2, 2, 2, 900), activity(1, 1, 1, 600)}, projects, users)

	a, err := Accumulate(forward)
	if err != nil {
		t.Fatalf("accumulate forward: %v", err)
	}
	b, err := Accumulate(reversed)
	if err != nil {
		t.Fatalf("accumulate reversed: %v", err)
	}

	if len(a.ProjectNames()) != 2 || len(a.UserNames()) != 2 {
		t.Fatalf("unexpected dimensions: %v x %v", a.ProjectNames(), a.UserNames())
	}
	for _, project := range a.ProjectNames() {
		for _, user := range a.UserNames() {
			if a[project][user] != b[project][user] {
				t.Fatalf("cell (%s,%s) depends on activity order", project, user)
			}
		}
	}
}

func TestAccumulate_SortedDimensionNames(t *testing.T) {
	t.Parallel()

	resp := response(
		nil,
		[]hubstaff.Project{{ID: 1, Name: "Zeta"}, {ID: 2, Name: "Alpha"}},
		[]hubstaff.User{{ID: 1, Name: "Walter"}, {ID: 2, Name: "Ada"}},
	)

	matrix, err := Accumulate(resp)
	if err != nil {
		t.Fatalf("accumulate: %v", err)
	}

	projects := matrix.ProjectNames()
	if projects[0] != "Alpha" || projects[1] != "Zeta" {
		t.Fatalf("expected sorted project names, got %v", projects)
	}
	users := matrix.UserNames()
	if users[0] != "Ada" || users[1] != "Walter" {
		t.Fatalf("expected sorted user names, got %v", users)
	}
}

func TestAccumulate_UnknownProjectFailsLoudly(t *testing.T) {
	t.Parallel()

	resp := response(
		[]hubstaff.DailyActivity{activity(9, 99, 1, 60)},
		[]hubstaff.Project{{ID: 1, Name: "A"}},
		[]hubstaff.User{{ID: 1, Name: "X"}},
	)

	_, err := Accumulate(resp)
	var lookupErr *LookupError
	if !errors.As(err, &lookupErr) {
		t.Fatalf("expected LookupError, got %T: %v", err, err)
	}
	if lookupErr.Kind != "project" || lookupErr.ID != 99 || lookupErr.ActivityID != 9 {
		t.Fatalf("unexpected lookup error: %+v", lookupErr)
	}
}

func TestAccumulate_UnknownUserFailsLoudly(t *testing.T) {
	t.Parallel()

	resp := response(
		[]hubstaff.DailyActivity{activity(9, 1, 77, 60)},
		[]hubstaff.Project{{ID: 1, Name: "A"}},
		[]hubstaff.User{{ID: 1, Name: "X"}},
	)

	_, err := Accumulate(resp)
	var lookupErr *LookupError
	if !errors.As(err, &lookupErr) {
		t.Fatalf("expected LookupError, got %T: %v", err, err)
	}
	if lookupErr.Kind != "user" || lookupErr.ID != 77 {
		t.Fatalf("unexpected lookup error: %+v", lookupErr)
	}
}

func TestAccumulate_EmptyResponse(t *testing.T) {
	t.Parallel()

	matrix, err := Accumulate(response(nil, nil, nil))
	if err != nil {
		t.Fatalf("accumulate: %v", err)
	}
	if len(matrix) != 0 {
		t.Fatalf("expected empty matrix, got %+v", matrix)
	}
	if len(matrix.UserNames()) != 0 {
		t.Fatalf("expected no columns, got %v", matrix.UserNames())
	}
}
