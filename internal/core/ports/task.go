package ports

import (
	"context"

	"taskhub/internal/core/domain"
)

// TaskClient is the atomic task service.
type TaskClient interface {
	ListTasks(ctx context.Context) ([]*domain.TaskRecord, error)
	ListTasksByUser(ctx context.Context, userID string) ([]*domain.TaskRecord, error)
	GetTask(ctx context.Context, taskID string) (*domain.TaskRecord, error)
	ListSubtasks(ctx context.Context, parentTaskID string) ([]*domain.TaskRecord, error)
	CreateTask(ctx context.Context, payload domain.TaskUpsert) (*domain.TaskRecord, error)
	UpdateTask(ctx context.Context, taskID string, payload domain.TaskUpsert) (*domain.TaskRecord, error)
	DeleteTask(ctx context.Context, taskID string) error
}

type TaskService interface {
	ListTasks(ctx context.Context) ([]*domain.Task, error)
	ListTasksByUser(ctx context.Context, userID string) ([]*domain.Task, error)
	GetTask(ctx context.Context, taskID string) (*domain.Task, error)
	ListSubtasks(ctx context.Context, parentTaskID string) ([]*domain.Task, error)
	CreateTask(ctx context.Context, input domain.TaskInput) (*domain.Task, error)
	UpdateTask(ctx context.Context, taskID string, input domain.TaskInput) (*domain.Task, error)
	DeleteTask(ctx context.Context, taskID string) error
}

// TaskEventPublisher announces task changes to other services.
type TaskEventPublisher interface {
	PublishTaskEvent(ctx context.Context, event domain.TaskEvent) error
}
