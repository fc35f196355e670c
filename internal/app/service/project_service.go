package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"taskhub/internal/app/shape"
	"taskhub/internal/core/domain"
	"taskhub/internal/core/identifier"
	"taskhub/internal/core/ports"
)

type ProjectService struct {
	projects   ports.ProjectClient
	translator *shape.ProjectTranslator
	validator  identifier.Validator
	logger     *zap.Logger
}

func NewProjectService(
	projects ports.ProjectClient,
	translator *shape.ProjectTranslator,
	validator identifier.Validator,
	logger *zap.Logger,
) *ProjectService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProjectService{projects: projects, translator: translator, validator: validator, logger: logger}
}

func (s *ProjectService) ListProjects(ctx context.Context) ([]*domain.Project, error) {
	records, err := s.projects.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	return s.translator.ToProjects(ctx, records)
}

func (s *ProjectService) ListProjectsByUser(ctx context.Context, userID string) ([]*domain.Project, error) {
	records, err := s.projects.ListProjectsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.translator.ToProjects(ctx, records)
}

func (s *ProjectService) GetProject(ctx context.Context, projectID string) (*domain.Project, error) {
	record, err := s.projects.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, domain.ErrProjectNotFound
	}
	return s.translator.ToProject(ctx, record)
}

func (s *ProjectService) CreateProject(ctx context.Context, input domain.NewProjectInput) (*domain.Project, error) {
	payload := s.translator.ToNewProjectPayload(input)
	record, err := s.projects.CreateProject(ctx, payload)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, fmt.Errorf("create project: %w", domain.ErrMalformedResponse)
	}
	return s.translator.ToProject(ctx, record)
}

func (s *ProjectService) UpdateProject(ctx context.Context, projectID string, input domain.UpdateProjectInput) (*domain.Project, error) {
	if input.CollaboratorsSet {
		input.Collaborators = s.translator.SanitizeCollaborators(input.Collaborators)
	}
	record, err := s.projects.UpdateProject(ctx, projectID, input)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, fmt.Errorf("update project %s: %w", projectID, domain.ErrMalformedResponse)
	}
	return s.translator.ToProject(ctx, record)
}

func (s *ProjectService) DeleteProject(ctx context.Context, projectID string) error {
	return s.projects.DeleteProject(ctx, projectID)
}

func (s *ProjectService) ReplaceCollaborators(ctx context.Context, projectID string, collaborators []string) (*domain.CollaboratorsUpdate, error) {
	ids := s.translator.SanitizeCollaborators(collaborators)
	message, record, err := s.projects.ReplaceCollaborators(ctx, projectID, ids)
	if err != nil {
		return nil, err
	}

	project, err := s.translator.ToProject(ctx, record)
	if err != nil {
		return nil, err
	}
	return &domain.CollaboratorsUpdate{Message: message, Project: project}, nil
}

// ChangeOwner replaces the owner atomically on the project service. The new
// owner id must pass the identifier policy.
func (s *ProjectService) ChangeOwner(ctx context.Context, projectID, newOwnerID string) (*domain.Project, error) {
	ownerID, ok := s.validator.Validate(newOwnerID)
	if !ok {
		return nil, fmt.Errorf("new owner id %q: %w", newOwnerID, domain.ErrInvalidPayload)
	}

	record, err := s.projects.ChangeOwner(ctx, projectID, ownerID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		s.logger.Debug("owner change returned no project, fetching it", zap.String("project_id", projectID))
		return s.GetProject(ctx, projectID)
	}
	return s.translator.ToProject(ctx, record)
}

var _ ports.ProjectService = (*ProjectService)(nil)
