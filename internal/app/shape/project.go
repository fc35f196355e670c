package shape

import (
	"context"

	"taskhub/internal/core/domain"
	"taskhub/internal/core/identifier"
	"taskhub/internal/core/participant"
)

// ProjectEnricher completes and enriches a translated project.
type ProjectEnricher interface {
	CanFillMembers() bool
	FillMembers(ctx context.Context, project *domain.Project) error
	EnrichProject(ctx context.Context, project *domain.Project) error
}

type ProjectTranslator struct {
	validator        identifier.Validator
	reconciler       *participant.Reconciler
	enricher         ProjectEnricher
	secondaryLookups bool
}

func NewProjectTranslator(
	validator identifier.Validator,
	reconciler *participant.Reconciler,
	enricher ProjectEnricher,
	secondaryLookups bool,
) *ProjectTranslator {
	return &ProjectTranslator{
		validator:        validator,
		reconciler:       reconciler,
		enricher:         enricher,
		secondaryLookups: secondaryLookups,
	}
}

// ToProject converts a stored project. When the record carries neither an
// owner nor a participant list, the members are fetched from the project
// service first; owner enrichment always runs last because it needs the
// final owner.
func (t *ProjectTranslator) ToProject(ctx context.Context, record *domain.ProjectRecord) (*domain.Project, error) {
	if record == nil {
		return nil, nil
	}

	project := &domain.Project{
		ID:          record.ID,
		Title:       record.Title,
		Description: record.Description,
		CreatedAt:   record.CreatedAt,
		UpdatedAt:   record.UpdatedAt,
		TaskIDs:     append([]string(nil), record.TaskIDs...),
	}

	if ownerID, ok := t.validator.ValidatePtr(record.Owner); ok {
		ids := make([]string, 0, len(record.Participants))
		for _, p := range record.Participants {
			ids = append(ids, p.ProfileID)
		}
		project.Owner = &ownerID
		project.Collaborators = participant.Collaborators(t.reconciler.Reconcile(&ownerID, ids))
	} else {
		project.Owner, project.Collaborators = t.reconciler.Split(record.Participants)
	}

	if record.Owner == nil && record.Participants == nil && t.secondaryLookups && t.enricher.CanFillMembers() {
		if err := t.enricher.FillMembers(ctx, project); err != nil {
			return nil, err
		}
	}

	if err := t.enricher.EnrichProject(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (t *ProjectTranslator) ToProjects(ctx context.Context, records []*domain.ProjectRecord) ([]*domain.Project, error) {
	projects := make([]*domain.Project, 0, len(records))
	for _, record := range records {
		if record == nil {
			continue
		}
		project, err := t.ToProject(ctx, record)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}
	return projects, nil
}

// ToNewProjectPayload reconciles the owner and collaborators of a new project.
// The owner never appears among the collaborators.
func (t *ProjectTranslator) ToNewProjectPayload(input domain.NewProjectInput) domain.NewProjectPayload {
	participants := t.reconciler.Reconcile(input.Owner, input.Collaborators)

	payload := domain.NewProjectPayload{
		Title:         input.Title,
		Description:   input.Description,
		Collaborators: participant.Collaborators(participants),
	}
	for _, p := range participants {
		if p.IsOwner {
			ownerID := p.ProfileID
			payload.Owner = &ownerID
		}
	}
	return payload
}

// SanitizeCollaborators validates and deduplicates a replacement collaborator
// list, preserving order.
func (t *ProjectTranslator) SanitizeCollaborators(collaborators []string) []string {
	return participant.Collaborators(t.reconciler.Reconcile(nil, collaborators))
}
