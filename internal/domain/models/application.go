package models

import "time"

// ApplicationStatus is the lifecycle state of an application.
// The only transition is pending -> cancelled.
type ApplicationStatus string

const (
	ApplicationPending   ApplicationStatus = "pending"
	ApplicationCancelled ApplicationStatus = "cancelled"
)

// Application is a visitor's postulation to a position (course section).
type Application struct {
	ID            string            `json:"id"`
	PositionID    string            `json:"position_id"`
	PositionTitle string            `json:"position_title"`
	Department    string            `json:"department"`
	Section       string            `json:"section"`
	Category      *string           `json:"category,omitempty"` // nil when the position has no categories
	Reason        string            `json:"reason"`
	SubmittedAt   time.Time         `json:"submitted_at"`
	Status        ApplicationStatus `json:"status"`
}

// IsPending reports whether the application is still active.
func (a Application) IsPending() bool {
	return a.Status == ApplicationPending
}

// CategoryValue returns the category or "" when undefined.
func (a Application) CategoryValue() string {
	if a.Category == nil {
		return ""
	}
	return *a.Category
}

// NewApplication holds the caller-supplied fields of an application.
// ID, SubmittedAt and Status are assigned by the store.
type NewApplication struct {
	PositionID    string
	PositionTitle string
	Department    string
	Section       string
	Category      *string
	Reason        string
}

// OptionalCategory converts a form value into a category pointer.
// Blank input means "no category".
func OptionalCategory(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
