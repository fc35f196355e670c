package service_test

import (
	"context"

	"taskhub/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

type taskClientMock struct {
	mock.Mock
}

func (m *taskClientMock) records(args mock.Arguments) ([]*domain.TaskRecord, error) {
	var records []*domain.TaskRecord
	if value := args.Get(0); value != nil {
		records = value.([]*domain.TaskRecord)
	}
	return records, args.Error(1)
}

func (m *taskClientMock) record(args mock.Arguments) (*domain.TaskRecord, error) {
	var record *domain.TaskRecord
	if value := args.Get(0); value != nil {
		record = value.(*domain.TaskRecord)
	}
	return record, args.Error(1)
}

func (m *taskClientMock) ListTasks(ctx context.Context) ([]*domain.TaskRecord, error) {
	return m.records(m.Called(ctx))
}

func (m *taskClientMock) ListTasksByUser(ctx context.Context, userID string) ([]*domain.TaskRecord, error) {
	return m.records(m.Called(ctx, userID))
}

func (m *taskClientMock) GetTask(ctx context.Context, taskID string) (*domain.TaskRecord, error) {
	return m.record(m.Called(ctx, taskID))
}

func (m *taskClientMock) ListSubtasks(ctx context.Context, parentTaskID string) ([]*domain.TaskRecord, error) {
	return m.records(m.Called(ctx, parentTaskID))
}

func (m *taskClientMock) CreateTask(ctx context.Context, payload domain.TaskUpsert) (*domain.TaskRecord, error) {
	return m.record(m.Called(ctx, payload))
}

func (m *taskClientMock) UpdateTask(ctx context.Context, taskID string, payload domain.TaskUpsert) (*domain.TaskRecord, error) {
	return m.record(m.Called(ctx, taskID, payload))
}

func (m *taskClientMock) DeleteTask(ctx context.Context, taskID string) error {
	return m.Called(ctx, taskID).Error(0)
}

type eventPublisherMock struct {
	mock.Mock
}

func (m *eventPublisherMock) PublishTaskEvent(ctx context.Context, event domain.TaskEvent) error {
	return m.Called(ctx, event).Error(0)
}

type profileLookupMock struct {
	mock.Mock
}

func (m *profileLookupMock) GetUserByID(ctx context.Context, userID string) (*domain.UserProfile, error) {
	args := m.Called(ctx, userID)

	var profile *domain.UserProfile
	if value := args.Get(0); value != nil {
		profile = value.(*domain.UserProfile)
	}
	return profile, args.Error(1)
}

type projectClientMock struct {
	mock.Mock
}

func (m *projectClientMock) records(args mock.Arguments) ([]*domain.ProjectRecord, error) {
	var records []*domain.ProjectRecord
	if value := args.Get(0); value != nil {
		records = value.([]*domain.ProjectRecord)
	}
	return records, args.Error(1)
}

func (m *projectClientMock) record(args mock.Arguments) (*domain.ProjectRecord, error) {
	var record *domain.ProjectRecord
	if value := args.Get(0); value != nil {
		record = value.(*domain.ProjectRecord)
	}
	return record, args.Error(1)
}

func (m *projectClientMock) ListProjects(ctx context.Context) ([]*domain.ProjectRecord, error) {
	return m.records(m.Called(ctx))
}

func (m *projectClientMock) ListProjectsByUser(ctx context.Context, userID string) ([]*domain.ProjectRecord, error) {
	return m.records(m.Called(ctx, userID))
}

func (m *projectClientMock) GetProject(ctx context.Context, projectID string) (*domain.ProjectRecord, error) {
	return m.record(m.Called(ctx, projectID))
}

func (m *projectClientMock) CreateProject(ctx context.Context, payload domain.NewProjectPayload) (*domain.ProjectRecord, error) {
	return m.record(m.Called(ctx, payload))
}

func (m *projectClientMock) UpdateProject(ctx context.Context, projectID string, input domain.UpdateProjectInput) (*domain.ProjectRecord, error) {
	return m.record(m.Called(ctx, projectID, input))
}

func (m *projectClientMock) DeleteProject(ctx context.Context, projectID string) error {
	return m.Called(ctx, projectID).Error(0)
}

func (m *projectClientMock) ReplaceCollaborators(ctx context.Context, projectID string, collaborators []string) (string, *domain.ProjectRecord, error) {
	args := m.Called(ctx, projectID, collaborators)

	var record *domain.ProjectRecord
	if value := args.Get(1); value != nil {
		record = value.(*domain.ProjectRecord)
	}
	return args.String(0), record, args.Error(2)
}

func (m *projectClientMock) ChangeOwner(ctx context.Context, projectID, newOwnerID string) (*domain.ProjectRecord, error) {
	return m.record(m.Called(ctx, projectID, newOwnerID))
}

type recurrenceClientMock struct {
	mock.Mock
}

func (m *recurrenceClientMock) GetRecurrence(ctx context.Context, recurrenceID string) (*domain.Recurrence, error) {
	args := m.Called(ctx, recurrenceID)

	var recurrence *domain.Recurrence
	if value := args.Get(0); value != nil {
		recurrence = value.(*domain.Recurrence)
	}
	return recurrence, args.Error(1)
}

func (m *recurrenceClientMock) ListRecurrencesByTask(ctx context.Context, taskID string) ([]domain.Recurrence, error) {
	args := m.Called(ctx, taskID)

	var recurrences []domain.Recurrence
	if value := args.Get(0); value != nil {
		recurrences = value.([]domain.Recurrence)
	}
	return recurrences, args.Error(1)
}

func (m *recurrenceClientMock) CreateRecurrence(ctx context.Context, recurrence domain.Recurrence) error {
	return m.Called(ctx, recurrence).Error(0)
}

func (m *recurrenceClientMock) UpdateRecurrence(ctx context.Context, recurrenceID string, recurrence domain.Recurrence) error {
	return m.Called(ctx, recurrenceID, recurrence).Error(0)
}

func (m *recurrenceClientMock) DeleteRecurrence(ctx context.Context, recurrenceID string) error {
	return m.Called(ctx, recurrenceID).Error(0)
}

func strPtr(s string) *string {
	return &s
}
