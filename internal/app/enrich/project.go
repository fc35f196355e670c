package enrich

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"taskhub/internal/core/domain"
	"taskhub/internal/core/participant"
	"taskhub/internal/core/ports"
)

// ProjectEnricher completes projects whose record came back without owner or
// collaborator data, then attaches the owner's profile.
type ProjectEnricher struct {
	owners     *OwnerEnricher
	members    ports.ProjectMembersClient
	reconciler *participant.Reconciler
	logger     *zap.Logger
}

// NewProjectEnricher returns an enricher. members may be nil when the project
// service does not expose the owner and collaborator sub-resources.
func NewProjectEnricher(
	owners *OwnerEnricher,
	members ports.ProjectMembersClient,
	reconciler *participant.Reconciler,
	logger *zap.Logger,
) *ProjectEnricher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProjectEnricher{owners: owners, members: members, reconciler: reconciler, logger: logger}
}

func (e *ProjectEnricher) CanFillMembers() bool {
	return e.members != nil
}

// FillMembers fetches the owner and the collaborators of project concurrently
// and applies whichever call succeeded. Failures are joined and returned so
// the caller never mistakes a partial result for a complete one.
func (e *ProjectEnricher) FillMembers(ctx context.Context, project *domain.Project) error {
	if project == nil || e.members == nil {
		return nil
	}

	var (
		owner        *string
		participants []domain.Participant
		ownerErr     error
		collabErr    error
		g            errgroup.Group
	)
	g.Go(func() error {
		owner, ownerErr = e.members.GetProjectOwner(ctx, project.ID)
		return nil
	})
	g.Go(func() error {
		participants, collabErr = e.members.GetProjectCollaborators(ctx, project.ID)
		return nil
	})
	_ = g.Wait()

	if ownerErr == nil {
		if id, ok := e.owners.validator.ValidatePtr(owner); ok {
			project.Owner = &id
		}
	}
	if collabErr == nil {
		if project.Owner == nil {
			project.Owner, _ = e.reconciler.Split(participants)
		}
		ids := make([]string, 0, len(participants))
		for _, p := range participants {
			ids = append(ids, p.ProfileID)
		}
		project.Collaborators = participant.Collaborators(e.reconciler.Reconcile(project.Owner, ids))
	}

	var errs []error
	if ownerErr != nil {
		e.logger.Warn("project owner lookup failed", zap.String("project_id", project.ID), zap.Error(ownerErr))
		errs = append(errs, fmt.Errorf("fetch owner of project %s: %w", project.ID, ownerErr))
	}
	if collabErr != nil {
		e.logger.Warn("project collaborators lookup failed", zap.String("project_id", project.ID), zap.Error(collabErr))
		errs = append(errs, fmt.Errorf("fetch collaborators of project %s: %w", project.ID, collabErr))
	}
	return errors.Join(errs...)
}

func (e *ProjectEnricher) EnrichProject(ctx context.Context, project *domain.Project) error {
	return e.owners.EnrichProject(ctx, project)
}
