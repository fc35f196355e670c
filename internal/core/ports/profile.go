package ports

import (
	"context"

	"taskhub/internal/core/domain"
)

// ProfileLookup resolves a profile by id. It returns domain.ErrProfileNotFound
// when the profile service has no such user.
type ProfileLookup interface {
	GetUserByID(ctx context.Context, userID string) (*domain.UserProfile, error)
}
