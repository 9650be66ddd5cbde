package models

// ActivityType classifies an interaction logged against a lead or contact.
type ActivityType string

const (
	ActivityCall    ActivityType = "Call"
	ActivityEmail   ActivityType = "Email"
	ActivityNote    ActivityType = "Note"
	ActivityMeeting ActivityType = "Meeting"
)

// Valid reports whether the type is one of the known values.
func (t ActivityType) Valid() bool {
	switch t {
	case ActivityCall, ActivityEmail, ActivityNote, ActivityMeeting:
		return true
	}
	return false
}

// Activity is one logged interaction. IDs are unique within the owning
// record only. CreatedBy is a display name, not a user reference.
type Activity struct {
	ID        int          `json:"id"`
	Date      string       `json:"date"`
	Type      ActivityType `json:"type"`
	Notes     string       `json:"notes"`
	CreatedBy string       `json:"created_by"`
}

// NextActivityID returns the per-parent id for a new activity.
func NextActivityID(activities []Activity) int {
	next := 1
	for _, a := range activities {
		if a.ID >= next {
			next = a.ID + 1
		}
	}
	return next
}
