package atomic

import (
	"context"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"taskhub/internal/core/domain"
	"taskhub/internal/core/ports"
)

type TaskClient struct {
	client
}

func NewTaskClient(baseURL string, httpClient *http.Client, logger *zap.Logger) *TaskClient {
	return &TaskClient{client: newClient("task", baseURL, "/task/", httpClient, logger)}
}

func (c *TaskClient) ListTasks(ctx context.Context) ([]*domain.TaskRecord, error) {
	return c.list(ctx, "list tasks", "/task/all", nil)
}

func (c *TaskClient) ListTasksByUser(ctx context.Context, userID string) ([]*domain.TaskRecord, error) {
	return c.list(ctx, "list tasks by user", "/task/by-user/"+url.PathEscape(userID), nil)
}

func (c *TaskClient) ListSubtasks(ctx context.Context, parentTaskID string) ([]*domain.TaskRecord, error) {
	return c.list(ctx, "list subtasks", "/task/subtask/"+url.PathEscape(parentTaskID), domain.ErrTaskNotFound)
}

func (c *TaskClient) GetTask(ctx context.Context, taskID string) (*domain.TaskRecord, error) {
	var record *taskRecordWire
	err := c.do(ctx, "get task", http.MethodGet, "/task/id/"+url.PathEscape(taskID), nil, &record)
	if err != nil {
		return nil, notFoundAs(err, domain.ErrTaskNotFound)
	}
	if record == nil {
		return nil, domain.ErrTaskNotFound
	}
	return c.record(record, "get task")
}

// CreateTask posts a new task. The task service answers with an array whose
// first element is the created record.
func (c *TaskClient) CreateTask(ctx context.Context, payload domain.TaskUpsert) (*domain.TaskRecord, error) {
	var records []*taskRecordWire
	err := c.do(ctx, "create task", http.MethodPost, "/task/new", fromTaskUpsert(payload), &records)
	if err != nil {
		return nil, c.routeMissing("create task", err)
	}
	if len(records) == 0 || records[0] == nil {
		return nil, c.malformed("create task")
	}
	return c.record(records[0], "create task")
}

func (c *TaskClient) UpdateTask(ctx context.Context, taskID string, payload domain.TaskUpsert) (*domain.TaskRecord, error) {
	var record *taskRecordWire
	err := c.do(ctx, "update task", http.MethodPut, "/task/edit/"+url.PathEscape(taskID), fromTaskUpsert(payload), &record)
	if err != nil {
		return nil, notFoundAs(err, domain.ErrTaskNotFound)
	}
	if record == nil {
		return nil, c.malformed("update task")
	}
	return c.record(record, "update task")
}

func (c *TaskClient) DeleteTask(ctx context.Context, taskID string) error {
	err := c.do(ctx, "delete task", http.MethodDelete, "/task/"+url.PathEscape(taskID), nil, nil)
	return notFoundAs(err, domain.ErrTaskNotFound)
}

// list treats a 404 as an empty result unless notFound is set.
func (c *TaskClient) list(ctx context.Context, operation, endpoint string, notFound error) ([]*domain.TaskRecord, error) {
	var records []*taskRecordWire
	if err := c.do(ctx, operation, http.MethodGet, endpoint, nil, &records); err != nil {
		if notFound == nil && isNotFound(err) {
			return []*domain.TaskRecord{}, nil
		}
		return nil, notFoundAs(err, notFound)
	}

	result := make([]*domain.TaskRecord, 0, len(records))
	for _, record := range records {
		if record == nil {
			continue
		}
		converted, err := c.record(record, operation)
		if err != nil {
			return nil, err
		}
		result = append(result, converted)
	}
	return result, nil
}

// record rejects payloads without a task id.
func (c *TaskClient) record(wire *taskRecordWire, operation string) (*domain.TaskRecord, error) {
	if wire.ID == "" {
		return nil, c.malformed(operation)
	}
	return wire.toDomain(), nil
}

var _ ports.TaskClient = (*TaskClient)(nil)
var _ ports.HealthChecker = (*TaskClient)(nil)
