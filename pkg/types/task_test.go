package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskValidate(t *testing.T) {
	now := time.Now().UTC()
	tests := []struct {
		name    string
		task    Task
		wantErr error
	}{
		{
			name: "valid todo task",
			task: Task{Title: "Review designs", Status: TaskTodo, Priority: PriorityMedium},
		},
		{
			name: "valid completed task",
			task: Task{Title: "Ship release", Status: TaskCompleted, Priority: PriorityHigh, CompletedDate: &now},
		},
		{
			name:    "empty title rejected",
			task:    Task{Status: TaskTodo, Priority: PriorityLow},
			wantErr: ErrInvalidName,
		},
		{
			name:    "unknown status rejected",
			task:    Task{Title: "x", Status: "paused", Priority: PriorityLow},
			wantErr: ErrInvalidStatus,
		},
		{
			name:    "unknown priority rejected",
			task:    Task{Title: "x", Status: TaskTodo, Priority: "critical"},
			wantErr: ErrInvalidPriority,
		},
		{
			name:    "completed without completion date rejected",
			task:    Task{Title: "x", Status: TaskCompleted, Priority: PriorityLow},
			wantErr: ErrInvalidTransition,
		},
		{
			name:    "completion date on open task rejected",
			task:    Task{Title: "x", Status: TaskTodo, Priority: PriorityLow, CompletedDate: &now},
			wantErr: ErrInvalidTransition,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.task.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestTaskCompleteIsIdempotent(t *testing.T) {
	task := Task{Title: "x", Status: TaskInProgress, Priority: PriorityMedium}
	first := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	later := first.Add(48 * time.Hour)

	task.Complete(first)
	require.Equal(t, TaskCompleted, task.Status)
	require.NotNil(t, task.CompletedDate)
	assert.Equal(t, first, *task.CompletedDate)

	task.Complete(later)
	assert.Equal(t, first, *task.CompletedDate, "second Complete must keep the original date")
	assert.NoError(t, task.Validate())
}

func TestTaskReopen(t *testing.T) {
	task := Task{Title: "x", Status: TaskInProgress, Priority: PriorityMedium}
	task.Complete(time.Now().UTC())

	assert.ErrorIs(t, task.Reopen("blocked"), ErrInvalidStatus)
	assert.ErrorIs(t, task.Reopen(TaskCompleted), ErrInvalidTransition)
	assert.Equal(t, TaskCompleted, task.Status, "failed reopen must not change the task")

	require.NoError(t, task.Reopen(TaskInProgress))
	assert.Equal(t, TaskInProgress, task.Status)
	assert.Nil(t, task.CompletedDate)
	assert.NoError(t, task.Validate())
}
