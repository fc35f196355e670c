package tests

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"taskhub/internal/core/domain"
	"taskhub/pkg/apierrors"
	"taskhub/pkg/translator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	args := m.Called(ctx)
	tasks, _ := args.Get(0).([]*domain.Task)
	return tasks, args.Error(1)
}

func (m *taskServiceMock) ListTasksByUser(ctx context.Context, userID string) ([]*domain.Task, error) {
	args := m.Called(ctx, userID)
	tasks, _ := args.Get(0).([]*domain.Task)
	return tasks, args.Error(1)
}

func (m *taskServiceMock) GetTask(ctx context.Context, taskID string) (*domain.Task, error) {
	args := m.Called(ctx, taskID)
	task, _ := args.Get(0).(*domain.Task)
	return task, args.Error(1)
}

func (m *taskServiceMock) ListSubtasks(ctx context.Context, parentTaskID string) ([]*domain.Task, error) {
	args := m.Called(ctx, parentTaskID)
	tasks, _ := args.Get(0).([]*domain.Task)
	return tasks, args.Error(1)
}

func (m *taskServiceMock) CreateTask(ctx context.Context, input domain.TaskInput) (*domain.Task, error) {
	args := m.Called(ctx, input)
	task, _ := args.Get(0).(*domain.Task)
	return task, args.Error(1)
}

func (m *taskServiceMock) UpdateTask(ctx context.Context, taskID string, input domain.TaskInput) (*domain.Task, error) {
	args := m.Called(ctx, taskID, input)
	task, _ := args.Get(0).(*domain.Task)
	return task, args.Error(1)
}

func (m *taskServiceMock) DeleteTask(ctx context.Context, taskID string) error {
	return m.Called(ctx, taskID).Error(0)
}

type projectServiceMock struct {
	mock.Mock
}

func (m *projectServiceMock) ListProjects(ctx context.Context) ([]*domain.Project, error) {
	args := m.Called(ctx)
	projects, _ := args.Get(0).([]*domain.Project)
	return projects, args.Error(1)
}

func (m *projectServiceMock) ListProjectsByUser(ctx context.Context, userID string) ([]*domain.Project, error) {
	args := m.Called(ctx, userID)
	projects, _ := args.Get(0).([]*domain.Project)
	return projects, args.Error(1)
}

func (m *projectServiceMock) GetProject(ctx context.Context, projectID string) (*domain.Project, error) {
	args := m.Called(ctx, projectID)
	project, _ := args.Get(0).(*domain.Project)
	return project, args.Error(1)
}

func (m *projectServiceMock) CreateProject(ctx context.Context, input domain.NewProjectInput) (*domain.Project, error) {
	args := m.Called(ctx, input)
	project, _ := args.Get(0).(*domain.Project)
	return project, args.Error(1)
}

func (m *projectServiceMock) UpdateProject(ctx context.Context, projectID string, input domain.UpdateProjectInput) (*domain.Project, error) {
	args := m.Called(ctx, projectID, input)
	project, _ := args.Get(0).(*domain.Project)
	return project, args.Error(1)
}

func (m *projectServiceMock) DeleteProject(ctx context.Context, projectID string) error {
	return m.Called(ctx, projectID).Error(0)
}

func (m *projectServiceMock) ReplaceCollaborators(ctx context.Context, projectID string, collaborators []string) (*domain.CollaboratorsUpdate, error) {
	args := m.Called(ctx, projectID, collaborators)
	update, _ := args.Get(0).(*domain.CollaboratorsUpdate)
	return update, args.Error(1)
}

func (m *projectServiceMock) ChangeOwner(ctx context.Context, projectID, newOwnerID string) (*domain.Project, error) {
	args := m.Called(ctx, projectID, newOwnerID)
	project, _ := args.Get(0).(*domain.Project)
	return project, args.Error(1)
}

type recurrenceServiceMock struct {
	mock.Mock
}

func (m *recurrenceServiceMock) GetRecurrence(ctx context.Context, recurrenceID string) (*domain.Recurrence, error) {
	args := m.Called(ctx, recurrenceID)
	recurrence, _ := args.Get(0).(*domain.Recurrence)
	return recurrence, args.Error(1)
}

func (m *recurrenceServiceMock) ListRecurrencesByTask(ctx context.Context, taskID string) ([]domain.Recurrence, error) {
	args := m.Called(ctx, taskID)
	recurrences, _ := args.Get(0).([]domain.Recurrence)
	return recurrences, args.Error(1)
}

func (m *recurrenceServiceMock) CreateRecurrence(ctx context.Context, recurrence domain.Recurrence) error {
	return m.Called(ctx, recurrence).Error(0)
}

func (m *recurrenceServiceMock) UpdateRecurrence(ctx context.Context, recurrenceID string, recurrence domain.Recurrence) error {
	return m.Called(ctx, recurrenceID, recurrence).Error(0)
}

func (m *recurrenceServiceMock) DeleteRecurrence(ctx context.Context, recurrenceID string) error {
	return m.Called(ctx, recurrenceID).Error(0)
}

type checkerStub struct {
	name string
	err  error
}

func (s checkerStub) Name() string {
	return s.name
}

func (s checkerStub) Ping(_ context.Context) error {
	return s.err
}

func strPtr(s string) *string {
	return &s
}

func newRequest(method, target, body string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func record(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// serve sends a request with an English Accept-Language header.
func serve(router *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	return record(router, newRequest(method, target, body))
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apierrors.Err {
	t.Helper()
	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, rec.Code, got.ErrDetails.Code)
	return got.ErrDetails
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, status int) {
	t.Helper()
	require.Equal(t, status, rec.Code, rec.Body.String())
}
