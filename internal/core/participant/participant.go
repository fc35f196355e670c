// Package participant converts between owner/collaborator identifiers and
// participant sets.
package participant

import (
	"taskhub/internal/core/domain"
	"taskhub/internal/core/identifier"
)

type Reconciler struct {
	validator identifier.Validator
}

func NewReconciler(validator identifier.Validator) *Reconciler {
	return &Reconciler{validator: validator}
}

// Reconcile builds a participant set with at most one owner and no repeated
// profile ids. Invalid identifiers are skipped. The owner entry comes first;
// collaborators follow in input order.
func (r *Reconciler) Reconcile(owner *string, collaborators []string) []domain.Participant {
	seen := make(map[string]struct{}, len(collaborators)+1)
	participants := make([]domain.Participant, 0, len(collaborators)+1)

	if id, ok := r.validator.ValidatePtr(owner); ok {
		seen[id] = struct{}{}
		participants = append(participants, domain.Participant{IsOwner: true, ProfileID: id})
	}

	for _, raw := range collaborators {
		id, ok := r.validator.Validate(raw)
		if !ok {
			continue
		}
		if _, exists := seen[id]; exists {
			continue
		}
		seen[id] = struct{}{}
		participants = append(participants, domain.Participant{IsOwner: false, ProfileID: id})
	}

	return participants
}

// Collaborators returns the non-owner identifiers of a reconciled set.
func Collaborators(participants []domain.Participant) []string {
	ids := make([]string, 0, len(participants))
	for _, p := range participants {
		if !p.IsOwner {
			ids = append(ids, p.ProfileID)
		}
	}
	return ids
}

// Split decomposes a stored participant list into owner and collaborators.
//
// The first owner entry decides the owner; if its identifier is invalid the
// owner is nil. Any other entry, including later owner entries, becomes a
// collaborator when its identifier is valid, differs from the owner and has
// not been seen yet. Source order is preserved.
func (r *Reconciler) Split(participants []domain.Participant) (*string, []string) {
	var owner *string
	for _, p := range participants {
		if !p.IsOwner {
			continue
		}
		if id, ok := r.validator.Validate(p.ProfileID); ok {
			owner = &id
		}
		break
	}

	collaborators := make([]string, 0, len(participants))
	seen := make(map[string]struct{}, len(participants))
	if owner != nil {
		seen[*owner] = struct{}{}
	}
	firstOwnerSkipped := false
	for _, p := range participants {
		if p.IsOwner && !firstOwnerSkipped {
			firstOwnerSkipped = true
			continue
		}
		id, ok := r.validator.Validate(p.ProfileID)
		if !ok {
			continue
		}
		if _, exists := seen[id]; exists {
			continue
		}
		seen[id] = struct{}{}
		collaborators = append(collaborators, id)
	}

	return owner, collaborators
}
