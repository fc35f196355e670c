// Package enrich attaches profile data from the profile service to composite
// tasks and projects.
package enrich

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"taskhub/internal/core/domain"
	"taskhub/internal/core/identifier"
	"taskhub/internal/core/ports"
)

type OwnerEnricher struct {
	profiles  ports.ProfileLookup
	validator identifier.Validator
	logger    *zap.Logger
}

func NewOwnerEnricher(profiles ports.ProfileLookup, validator identifier.Validator, logger *zap.Logger) *OwnerEnricher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OwnerEnricher{profiles: profiles, validator: validator, logger: logger}
}

// EnrichTask sets the owner name and department of task in place. Invalid
// owners and unknown profiles resolve to domain.UnknownOwner; errors from the
// profile service are returned and leave task untouched.
func (e *OwnerEnricher) EnrichTask(ctx context.Context, task *domain.Task) error {
	if task == nil {
		return nil
	}
	name, department, err := e.resolve(ctx, task.Owner)
	if err != nil {
		return err
	}
	task.OwnerName = name
	task.OwnerDepartment = department
	return nil
}

// EnrichProject is EnrichTask for projects.
func (e *OwnerEnricher) EnrichProject(ctx context.Context, project *domain.Project) error {
	if project == nil {
		return nil
	}
	name, department, err := e.resolve(ctx, project.Owner)
	if err != nil {
		return err
	}
	project.OwnerName = name
	project.OwnerDepartment = department
	return nil
}

func (e *OwnerEnricher) resolve(ctx context.Context, owner *string) (*string, *string, error) {
	ownerID, ok := e.validator.ValidatePtr(owner)
	if !ok {
		return unknownOwner()
	}

	profile, err := e.profiles.GetUserByID(ctx, ownerID)
	switch {
	case errors.Is(err, domain.ErrProfileNotFound):
		e.logger.Debug("owner profile not found", zap.String("owner_id", ownerID))
		return unknownOwner()
	case err != nil:
		return nil, nil, fmt.Errorf("resolve owner %s: %w", ownerID, err)
	case profile == nil:
		return unknownOwner()
	}

	name := profile.DisplayName
	department := profile.DepartmentName
	return &name, &department, nil
}

func unknownOwner() (*string, *string, error) {
	name, department := domain.UnknownOwner, domain.UnknownOwner
	return &name, &department, nil
}
