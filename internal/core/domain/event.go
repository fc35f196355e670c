package domain

import "time"

type TaskEventType string

const (
	TaskEventCreated TaskEventType = "task.created"
	TaskEventUpdated TaskEventType = "task.updated"
	TaskEventDeleted TaskEventType = "task.deleted"
)

type TaskEvent struct {
	Type       TaskEventType
	TaskID     string
	ProjectID  string
	Owner      *string
	OccurredAt time.Time
}
