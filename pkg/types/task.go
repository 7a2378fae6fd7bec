package types

import "time"

// Task statuses.
const (
	TaskTodo       = "todo"
	TaskInProgress = "in-progress"
	TaskCompleted  = "completed"
	TaskCancelled  = "cancelled"
)

// Task priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

var validTaskStatuses = map[string]bool{
	TaskTodo:       true,
	TaskInProgress: true,
	TaskCompleted:  true,
	TaskCancelled:  true,
}

var validTaskPriorities = map[string]bool{
	PriorityLow:    true,
	PriorityMedium: true,
	PriorityHigh:   true,
	PriorityUrgent: true,
}

// Task represents a unit of work assigned to a user by username. The
// assignee is a weak reference; the store does not enforce it.
// CompletedDate is set if and only if Status is "completed".
type Task struct {
	ID             int64      `json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Status         string     `json:"status"`
	Priority       string     `json:"priority"`
	Assignee       string     `json:"assignee"`
	DueDate        time.Time  `json:"dueDate"`
	CreateDate     time.Time  `json:"createDate"`
	CompletedDate  *time.Time `json:"completedDate,omitempty"`
	Tags           []string   `json:"tags"`
	EstimatedHours float64    `json:"estimatedHours,omitempty"`
	ActualHours    float64    `json:"actualHours,omitempty"`
}

// Validate checks required fields and enum membership, plus the
// completed-date invariant.
func (t *Task) Validate() error {
	if t.Title == "" {
		return ErrInvalidName
	}
	if !validTaskStatuses[t.Status] {
		return ErrInvalidStatus
	}
	if !validTaskPriorities[t.Priority] {
		return ErrInvalidPriority
	}
	if (t.Status == TaskCompleted) != (t.CompletedDate != nil) {
		return ErrInvalidTransition
	}
	return nil
}

// Complete marks the task completed at the given time.
// Idempotent: completing a completed task keeps its original date.
func (t *Task) Complete(now time.Time) {
	if t.Status == TaskCompleted && t.CompletedDate != nil {
		return
	}
	t.Status = TaskCompleted
	done := now
	t.CompletedDate = &done
}

// Reopen moves a task back to a non-completed status and drops the
// completion date. Returns ErrInvalidStatus for unknown statuses and
// ErrInvalidTransition when reopening straight into "completed".
func (t *Task) Reopen(status string) error {
	if !validTaskStatuses[status] {
		return ErrInvalidStatus
	}
	if status == TaskCompleted {
		return ErrInvalidTransition
	}
	t.Status = status
	t.CompletedDate = nil
	return nil
}
