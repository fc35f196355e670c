package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"taskhub/internal/app/shape"
	"taskhub/internal/core/domain"
	"taskhub/internal/core/ports"
)

type TaskService struct {
	tasks      ports.TaskClient
	translator *shape.TaskTranslator
	events     ports.TaskEventPublisher
	logger     *zap.Logger
	now        func() time.Time
}

// NewTaskService wires the task use cases. events may be nil.
func NewTaskService(
	tasks ports.TaskClient,
	translator *shape.TaskTranslator,
	events ports.TaskEventPublisher,
	logger *zap.Logger,
) *TaskService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TaskService{
		tasks:      tasks,
		translator: translator,
		events:     events,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *TaskService) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	records, err := s.tasks.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	return s.translator.ToTasks(ctx, records)
}

func (s *TaskService) ListTasksByUser(ctx context.Context, userID string) ([]*domain.Task, error) {
	records, err := s.tasks.ListTasksByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.translator.ToTasks(ctx, records)
}

func (s *TaskService) GetTask(ctx context.Context, taskID string) (*domain.Task, error) {
	record, err := s.tasks.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, domain.ErrTaskNotFound
	}
	return s.translator.ToTask(ctx, record)
}

func (s *TaskService) ListSubtasks(ctx context.Context, parentTaskID string) ([]*domain.Task, error) {
	records, err := s.tasks.ListSubtasks(ctx, parentTaskID)
	if err != nil {
		return nil, err
	}
	return s.translator.ToTasks(ctx, records)
}

func (s *TaskService) CreateTask(ctx context.Context, input domain.TaskInput) (*domain.Task, error) {
	payload := s.translator.ToUpsert(input)
	s.logger.Debug("creating task",
		zap.String("title", payload.Title),
		zap.Int("participants", len(payload.Participants)),
	)

	record, err := s.tasks.CreateTask(ctx, payload)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, fmt.Errorf("create task: %w", domain.ErrMalformedResponse)
	}

	s.publish(ctx, domain.TaskEventCreated, record.ID, record.ProjectID, s.translator.Owner(record))
	return s.translator.ToTask(ctx, record)
}

func (s *TaskService) UpdateTask(ctx context.Context, taskID string, input domain.TaskInput) (*domain.Task, error) {
	record, err := s.tasks.UpdateTask(ctx, taskID, s.translator.ToUpsert(input))
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, fmt.Errorf("update task %s: %w", taskID, domain.ErrMalformedResponse)
	}

	s.publish(ctx, domain.TaskEventUpdated, record.ID, record.ProjectID, s.translator.Owner(record))
	return s.translator.ToTask(ctx, record)
}

func (s *TaskService) DeleteTask(ctx context.Context, taskID string) error {
	if err := s.tasks.DeleteTask(ctx, taskID); err != nil {
		return err
	}
	s.publish(ctx, domain.TaskEventDeleted, taskID, "", nil)
	return nil
}

// publish runs once the atomic service has accepted a mutation, before
// enrichment. A broker failure never fails the request.
func (s *TaskService) publish(ctx context.Context, eventType domain.TaskEventType, taskID, projectID string, owner *string) {
	if s.events == nil || strings.TrimSpace(taskID) == "" {
		return
	}
	err := s.events.PublishTaskEvent(ctx, domain.TaskEvent{
		Type:       eventType,
		TaskID:     taskID,
		ProjectID:  projectID,
		Owner:      owner,
		OccurredAt: s.now().UTC(),
	})
	if err != nil {
		s.logger.Warn("failed to publish task event",
			zap.String("type", string(eventType)),
			zap.String("task_id", taskID),
			zap.Error(err),
		)
	}
}

var _ ports.TaskService = (*TaskService)(nil)
