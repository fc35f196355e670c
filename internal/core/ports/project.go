package ports

import (
	"context"

	"taskhub/internal/core/domain"
)

// ProjectClient is the atomic project service.
type ProjectClient interface {
	ListProjects(ctx context.Context) ([]*domain.ProjectRecord, error)
	ListProjectsByUser(ctx context.Context, userID string) ([]*domain.ProjectRecord, error)
	GetProject(ctx context.Context, projectID string) (*domain.ProjectRecord, error)
	CreateProject(ctx context.Context, payload domain.NewProjectPayload) (*domain.ProjectRecord, error)
	UpdateProject(ctx context.Context, projectID string, input domain.UpdateProjectInput) (*domain.ProjectRecord, error)
	DeleteProject(ctx context.Context, projectID string) error
	ReplaceCollaborators(ctx context.Context, projectID string, collaborators []string) (string, *domain.ProjectRecord, error)
	ChangeOwner(ctx context.Context, projectID, newOwnerID string) (*domain.ProjectRecord, error)
}

// ProjectMembersClient exposes the owner and collaborator sub-resources some
// project service deployments provide.
type ProjectMembersClient interface {
	GetProjectOwner(ctx context.Context, projectID string) (*string, error)
	GetProjectCollaborators(ctx context.Context, projectID string) ([]domain.Participant, error)
}

type ProjectService interface {
	ListProjects(ctx context.Context) ([]*domain.Project, error)
	ListProjectsByUser(ctx context.Context, userID string) ([]*domain.Project, error)
	GetProject(ctx context.Context, projectID string) (*domain.Project, error)
	CreateProject(ctx context.Context, input domain.NewProjectInput) (*domain.Project, error)
	UpdateProject(ctx context.Context, projectID string, input domain.UpdateProjectInput) (*domain.Project, error)
	DeleteProject(ctx context.Context, projectID string) error
	ReplaceCollaborators(ctx context.Context, projectID string, collaborators []string) (*domain.CollaboratorsUpdate, error)
	ChangeOwner(ctx context.Context, projectID, newOwnerID string) (*domain.Project, error)
}
