package models

// TaskStatus is the task progress stage.
type TaskStatus string

const (
	TaskNotStarted TaskStatus = "Not Started"
	TaskInProgress TaskStatus = "In Progress"
	TaskCompleted  TaskStatus = "Completed"
)

// Valid reports whether the status is one of the known values.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskNotStarted, TaskInProgress, TaskCompleted:
		return true
	}
	return false
}

// RelatedType names the record kind a task points at.
type RelatedType string

const (
	RelatedLead    RelatedType = "Lead"
	RelatedContact RelatedType = "Contact"
)

// TaskRef links a task to its lead or contact.
type TaskRef struct {
	Type RelatedType `json:"type"`
	ID   int         `json:"id"`
	Name string      `json:"name"`
}

// Task is a follow-up item. Tasks carry no institution/year/session triple
// and are therefore role-scoped but never context-filtered.
type Task struct {
	ID         int        `json:"id"`
	Subject    string     `json:"subject"`
	DueDate    string     `json:"due_date"`
	Status     TaskStatus `json:"status"`
	AssignedTo User       `json:"assigned_to"`
	RelatedTo  TaskRef    `json:"related_to"`
}

// AssigneeID implements Assignable.
func (t Task) AssigneeID() int { return t.AssignedTo.ID }
