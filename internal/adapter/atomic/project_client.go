package atomic

import (
	"context"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"taskhub/internal/core/domain"
	"taskhub/internal/core/ports"
)

type ProjectClient struct {
	client
}

func NewProjectClient(baseURL string, httpClient *http.Client, logger *zap.Logger) *ProjectClient {
	return &ProjectClient{client: newClient("project", baseURL, "/project/", httpClient, logger)}
}

func (c *ProjectClient) ListProjects(ctx context.Context) ([]*domain.ProjectRecord, error) {
	return c.list(ctx, "list projects", "/project/all")
}

func (c *ProjectClient) ListProjectsByUser(ctx context.Context, userID string) ([]*domain.ProjectRecord, error) {
	return c.list(ctx, "list projects by user", "/project/user/"+url.PathEscape(userID))
}

func (c *ProjectClient) GetProject(ctx context.Context, projectID string) (*domain.ProjectRecord, error) {
	var record *projectRecordWire
	if err := c.do(ctx, "get project", http.MethodGet, c.projectPath(projectID), nil, &record); err != nil {
		return nil, notFoundAs(err, domain.ErrProjectNotFound)
	}
	if record == nil {
		return nil, domain.ErrProjectNotFound
	}
	return c.record(record, "get project")
}

func (c *ProjectClient) CreateProject(ctx context.Context, payload domain.NewProjectPayload) (*domain.ProjectRecord, error) {
	body := newProjectWire{
		Title:         payload.Title,
		Description:   payload.Description,
		Owner:         payload.Owner,
		Collaborators: payload.Collaborators,
	}
	if body.Collaborators == nil {
		body.Collaborators = []string{}
	}

	var record *projectRecordWire
	if err := c.do(ctx, "create project", http.MethodPost, "/project/new", body, &record); err != nil {
		return nil, c.routeMissing("create project", err)
	}
	if record == nil {
		return nil, c.malformed("create project")
	}
	return c.record(record, "create project")
}

// UpdateProject sends only the fields set on input.
func (c *ProjectClient) UpdateProject(ctx context.Context, projectID string, input domain.UpdateProjectInput) (*domain.ProjectRecord, error) {
	body := map[string]any{}
	if input.Title != nil {
		body["title"] = *input.Title
	}
	if input.Description != nil {
		body["description"] = *input.Description
	}
	if input.CollaboratorsSet {
		body["collaborators"] = nonNil(input.Collaborators)
	}
	if input.TaskIDsSet {
		body["tasklist"] = nonNil(input.TaskIDs)
	}

	var record *projectRecordWire
	if err := c.do(ctx, "update project", http.MethodPut, c.projectPath(projectID), body, &record); err != nil {
		return nil, notFoundAs(err, domain.ErrProjectNotFound)
	}
	if record == nil {
		return nil, c.malformed("update project")
	}
	return c.record(record, "update project")
}

func (c *ProjectClient) DeleteProject(ctx context.Context, projectID string) error {
	err := c.do(ctx, "delete project", http.MethodDelete, c.projectPath(projectID), nil, nil)
	return notFoundAs(err, domain.ErrProjectNotFound)
}

func (c *ProjectClient) ReplaceCollaborators(ctx context.Context, projectID string, collaborators []string) (string, *domain.ProjectRecord, error) {
	var resp projectMutationWire
	body := collaboratorsWire{Collaborators: nonNil(collaborators)}
	if err := c.do(ctx, "replace collaborators", http.MethodPut, c.projectPath(projectID)+"/collaborators", body, &resp); err != nil {
		return "", nil, notFoundAs(err, domain.ErrProjectNotFound)
	}
	if resp.Project == nil {
		return resp.Message, nil, nil
	}
	record, err := c.record(resp.Project, "replace collaborators")
	return resp.Message, record, err
}

// ChangeOwner returns a nil record when the service only acknowledges the change.
func (c *ProjectClient) ChangeOwner(ctx context.Context, projectID, newOwnerID string) (*domain.ProjectRecord, error) {
	var resp projectMutationWire
	body := changeOwnerWire{NewOwnerID: newOwnerID}
	if err := c.do(ctx, "change owner", http.MethodPut, c.projectPath(projectID)+"/owner", body, &resp); err != nil {
		return nil, notFoundAs(err, domain.ErrProjectNotFound)
	}
	if resp.Project == nil {
		return nil, nil
	}
	return c.record(resp.Project, "change owner")
}

// GetProjectOwner returns nil when the project service has no owner
// sub-resource or the project has no owner.
func (c *ProjectClient) GetProjectOwner(ctx context.Context, projectID string) (*string, error) {
	var resp *projectOwnerWire
	if err := c.do(ctx, "get project owner", http.MethodGet, c.projectPath(projectID)+"/owner", nil, &resp); err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	if resp == nil {
		return nil, nil
	}
	return resp.ProfileID, nil
}

// GetProjectCollaborators is empty, never nil, when the sub-resource is missing.
func (c *ProjectClient) GetProjectCollaborators(ctx context.Context, projectID string) ([]domain.Participant, error) {
	var resp []projectCollaboratorWire
	if err := c.do(ctx, "get project collaborators", http.MethodGet, c.projectPath(projectID)+"/collaborators", nil, &resp); err != nil {
		if isNotFound(err) {
			return []domain.Participant{}, nil
		}
		return nil, err
	}
	participants := toCollaboratorParticipants(resp)
	if participants == nil {
		participants = []domain.Participant{}
	}
	return participants, nil
}

func (c *ProjectClient) list(ctx context.Context, operation, endpoint string) ([]*domain.ProjectRecord, error) {
	var records []*projectRecordWire
	if err := c.do(ctx, operation, http.MethodGet, endpoint, nil, &records); err != nil {
		if isNotFound(err) {
			return []*domain.ProjectRecord{}, nil
		}
		return nil, err
	}

	result := make([]*domain.ProjectRecord, 0, len(records))
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

func (c *ProjectClient) record(wire *projectRecordWire, operation string) (*domain.ProjectRecord, error) {
	if wire.ID == "" {
		return nil, c.malformed(operation)
	}
	return wire.toDomain(), nil
}

func (c *ProjectClient) projectPath(projectID string) string {
	return "/project/" + url.PathEscape(projectID)
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

var (
	_ ports.ProjectClient        = (*ProjectClient)(nil)
	_ ports.ProjectMembersClient = (*ProjectClient)(nil)
	_ ports.HealthChecker        = (*ProjectClient)(nil)
)
