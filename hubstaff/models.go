package hubstaff

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Organization is one account-visible Hubstaff organization.
type Organization struct {
	ID   int64
	Name string
}

// Project participates in a deduplicating set across pages, so it must stay a
// comparable struct (no slices, maps, or pointers).
type Project struct {
	ID       int64
	Name     string
	Status   string
	Billable bool
}

// User participates in a deduplicating set across pages; same comparability
// constraint as Project.
type User struct {
	ID        int64
	Name      string
	FirstName string
	LastName  string
	Email     string
	TimeZone  string
	Status    string
}

// DailyActivity is one tracked-time record. TaskID may be absent. All
// durations are in seconds.
type DailyActivity struct {
	ID        int64
	Date      string
	UserID    int64
	ProjectID int64
	TaskID    *int64
	Tracked   int64
	Manual    int64
	Billable  int64
}

// Pagination carries the cursor for the next page; its presence on a response
// means more pages exist.
type Pagination struct {
	NextPageStartID int64
}

// OrganizationsResponse is the merged result of a full organizations
// pagination run. Organizations keep arrival order.
type OrganizationsResponse struct {
	Organizations []Organization
}

// DailyActivitiesResponse is the merged result of a full operations-by-day
// pagination run. Activities keep arrival order; users and projects are
// deduplicated by full value equality.
type DailyActivitiesResponse struct {
	DailyActivities []DailyActivity
	Users           map[User]struct{}
	Projects        map[Project]struct{}
}

var errFieldMissing = errors.New("required field is missing")

func missingField(path string) error {
	return &ValidationError{Field: path, Err: errFieldMissing}
}

// pageBody is implemented by every wire-level response shape. validate
// enforces presence of required fields after decoding; type conformance is
// enforced by the JSON decoder itself.
type pageBody interface {
	validate() error
}

// decodePage maps a raw response body onto the declared shape. Unknown extra
// fields are ignored; any structural or type violation is a ValidationError
// carrying the offending field path where the decoder reports one.
func decodePage(data []byte, out pageBody) error {
	if err := json.Unmarshal(data, out); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return &ValidationError{Field: typeErr.Field, Err: err}
		}
		return &ValidationError{Err: err}
	}
	return out.validate()
}

// Wire shapes. Required fields are pointers so that an absent field is
// distinguishable from a legitimate zero value (tracked=0, billable=false).

type authTokenPage struct {
	AuthToken *string `json:"auth_token"`
}

func (p *authTokenPage) validate() error {
	if p.AuthToken == nil {
		return missingField("auth_token")
	}
	return nil
}

type paginationWire struct {
	NextPageStartID *int64 `json:"next_page_start_id"`
}

type organizationWire struct {
	ID   *int64  `json:"id"`
	Name *string `json:"name"`
}

func (w organizationWire) validate(path string) error {
	if w.ID == nil {
		return missingField(path + ".id")
	}
	if w.Name == nil {
		return missingField(path + ".name")
	}
	return nil
}

type organizationsPage struct {
	Organizations *[]organizationWire `json:"organizations"`
	Pagination    *paginationWire     `json:"pagination"`
}

func (p *organizationsPage) validate() error {
	if p.Organizations == nil {
		return missingField("organizations")
	}
	for i, org := range *p.Organizations {
		if err := org.validate(fmt.Sprintf("organizations[%d]", i)); err != nil {
			return err
		}
	}
	return validatePagination(p.Pagination)
}

func (p *organizationsPage) organizations() []Organization {
	out := make([]Organization, 0, len(*p.Organizations))
	for _, org := range *p.Organizations {
		out = append(out, Organization{ID: *org.ID, Name: *org.Name})
	}
	return out
}

type userWire struct {
	ID        *int64  `json:"id"`
	Name      *string `json:"name"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	TimeZone  *string `json:"time_zone"`
	Status    *string `json:"status"`
}

func (w userWire) validate(path string) error {
	checks := []struct {
		name    string
		present bool
	}{
		{"id", w.ID != nil},
		{"name", w.Name != nil},
		{"first_name", w.FirstName != nil},
		{"last_name", w.LastName != nil},
		{"email", w.Email != nil},
		{"time_zone", w.TimeZone != nil},
		{"status", w.Status != nil},
	}
	for _, check := range checks {
		if !check.present {
			return missingField(path + "." + check.name)
		}
	}
	return nil
}

type projectWire struct {
	ID       *int64  `json:"id"`
	Name     *string `json:"name"`
	Status   *string `json:"status"`
	Billable *bool   `json:"billable"`
}

func (w projectWire) validate(path string) error {
	checks := []struct {
		name    string
		present bool
	}{
		{"id", w.ID != nil},
		{"name", w.Name != nil},
		{"status", w.Status != nil},
		{"billable", w.Billable != nil},
	}
	for _, check := range checks {
		if !check.present {
			return missingField(path + "." + check.name)
		}
	}
	return nil
}

type dailyActivityWire struct {
	ID        *int64  `json:"id"`
	Date      *string `json:"date"`
	UserID    *int64  `json:"user_id"`
	ProjectID *int64  `json:"project_id"`
	TaskID    *int64  `json:"task_id"`
	Tracked   *int64  `json:"tracked"`
	Manual    *int64  `json:"manual"`
	Billable  *int64  `json:"billable"`
}

func (w dailyActivityWire) validate(path string) error {
	checks := []struct {
		name    string
		present bool
	}{
		{"id", w.ID != nil},
		{"date", w.Date != nil},
		{"user_id", w.UserID != nil},
		{"project_id", w.ProjectID != nil},
		{"tracked", w.Tracked != nil},
		{"manual", w.Manual != nil},
		{"billable", w.Billable != nil},
	}
	for _, check := range checks {
		if !check.present {
			return missingField(path + "." + check.name)
		}
	}
	return nil
}

type dailyActivitiesPage struct {
	DailyActivities *[]dailyActivityWire `json:"daily_activities"`
	Users           *[]userWire          `json:"users"`
	Projects        *[]projectWire       `json:"projects"`
	Pagination      *paginationWire      `json:"pagination"`
}

func (p *dailyActivitiesPage) validate() error {
	if p.DailyActivities == nil {
		return missingField("daily_activities")
	}
	if p.Users == nil {
		return missingField("users")
	}
	if p.Projects == nil {
		return missingField("projects")
	}
	for i, activity := range *p.DailyActivities {
		if err := activity.validate(fmt.Sprintf("daily_activities[%d]", i)); err != nil {
			return err
		}
	}
	for i, user := range *p.Users {
		if err := user.validate(fmt.Sprintf("users[%d]", i)); err != nil {
			return err
		}
	}
	for i, project := range *p.Projects {
		if err := project.validate(fmt.Sprintf("projects[%d]", i)); err != nil {
			return err
		}
	}
	return validatePagination(p.Pagination)
}

func (p *dailyActivitiesPage) activities() []DailyActivity {
	out := make([]DailyActivity, 0, len(*p.DailyActivities))
	for _, w := range *p.DailyActivities {
		activity := DailyActivity{
			ID:        *w.ID,
			Date:      *w.Date,
			UserID:    *w.UserID,
			ProjectID: *w.ProjectID,
			Tracked:   *w.Tracked,
			Manual:    *w.Manual,
			Billable:  *w.Billable,
		}
		if w.TaskID != nil {
			taskID := *w.TaskID
			activity.TaskID = &taskID
		}
		out = append(out, activity)
	}
	return out
}

func (p *dailyActivitiesPage) users() []User {
	out := make([]User, 0, len(*p.Users))
	for _, w := range *p.Users {
		out = append(out, User{
			ID:        *w.ID,
			Name:      *w.Name,
			FirstName: *w.FirstName,
			LastName:  *w.LastName,
			Email:     *w.Email,
			TimeZone:  *w.TimeZone,
			Status:    *w.Status,
		})
	}
	return out
}

func (p *dailyActivitiesPage) projects() []Project {
	out := make([]Project, 0, len(*p.Projects))
	for _, w := range *p.Projects {
		out = append(out, Project{
			ID:       *w.ID,
			Name:     *w.Name,
			Status:   *w.Status,
			Billable: *w.Billable,
		})
	}
	return out
}

func validatePagination(w *paginationWire) error {
	if w == nil {
		return nil
	}
	if w.NextPageStartID == nil {
		return missingField("pagination.next_page_start_id")
	}
	return nil
}

func (w *paginationWire) cursor() *Pagination {
	if w == nil {
		return nil
	}
	return &Pagination{NextPageStartID: *w.NextPageStartID}
}
