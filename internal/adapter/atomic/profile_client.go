package atomic

import (
	"context"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"taskhub/internal/core/domain"
	"taskhub/internal/core/ports"
)

type ProfileClient struct {
	client
}

func NewProfileClient(baseURL string, httpClient *http.Client, logger *zap.Logger) *ProfileClient {
	return &ProfileClient{client: newClient("profile", baseURL, "/user/", httpClient, logger)}
}

// GetUserByID treats both a 404 and a null body as an unknown user.
func (c *ProfileClient) GetUserByID(ctx context.Context, userID string) (*domain.UserProfile, error) {
	var profile *userProfileWire
	if err := c.do(ctx, "get user", http.MethodGet, "/user/"+url.PathEscape(userID), nil, &profile); err != nil {
		return nil, notFoundAs(err, domain.ErrProfileNotFound)
	}
	if profile == nil {
		return nil, domain.ErrProfileNotFound
	}
	return profile.toDomain(), nil
}

var (
	_ ports.ProfileLookup = (*ProfileClient)(nil)
	_ ports.HealthChecker = (*ProfileClient)(nil)
)
