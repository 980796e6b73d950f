package models

// TaskPriority represents the priority of a task
type TaskPriority string

const (
	PriorityHigh   TaskPriority = "high"
	PriorityMedium TaskPriority = "medium"
	PriorityLow    TaskPriority = "low"
)

// IsValid reports whether the priority is one of the known values.
func (p TaskPriority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

// XPValue returns the XP awarded for completing a task of this priority.
func (p TaskPriority) XPValue() int {
	switch p {
	case PriorityHigh:
		return 25
	case PriorityLow:
		return 10
	default:
		return 15
	}
}

// Task represents a task in the system.
// Timestamps are Unix milliseconds to match the persisted document shape.
type Task struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Notes        string       `json:"notes"`
	Completed    bool         `json:"completed"`
	Priority     TaskPriority `json:"priority"`
	DueDate      string       `json:"dueDate,omitempty"`
	CreatedAt    int64        `json:"createdAt"`
	CompletedAt  *int64       `json:"completedAt,omitempty"`
	FocusMinutes int          `json:"focusMinutes,omitempty"`
}
