package enrich_test

import (
	"context"
	"errors"
	"testing"

	"taskhub/internal/app/enrich"
	"taskhub/internal/core/domain"
	"taskhub/internal/core/identifier"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type profileLookupMock struct {
	mock.Mock
}

func (m *profileLookupMock) GetUserByID(ctx context.Context, userID string) (*domain.UserProfile, error) {
	args := m.Called(ctx, userID)

	var profile *domain.UserProfile
	if value := args.Get(0); value != nil {
		profile = value.(*domain.UserProfile)
	}
	return profile, args.Error(1)
}

func strPtr(s string) *string {
	return &s
}

func newOwnerEnricher(profiles *profileLookupMock) *enrich.OwnerEnricher {
	return enrich.NewOwnerEnricher(profiles, identifier.NewValidator(identifier.ModeLenient), nil)
}

func TestOwnerEnricher_Hit(t *testing.T) {
	profiles := new(profileLookupMock)
	profiles.On("GetUserByID", mock.Anything, "owner-123").Return(&domain.UserProfile{
		ID:             "owner-123",
		DisplayName:    "John Doe",
		DepartmentName: "Engineering",
	}, nil).Once()

	task := &domain.Task{Owner: strPtr("owner-123")}
	require.NoError(t, newOwnerEnricher(profiles).EnrichTask(context.Background(), task))

	require.NotNil(t, task.OwnerName)
	assert.Equal(t, "John Doe", *task.OwnerName)
	assert.Equal(t, "Engineering", *task.OwnerDepartment)
	profiles.AssertExpectations(t)
}

func TestOwnerEnricher_NilTaskIsNoop(t *testing.T) {
	profiles := new(profileLookupMock)

	require.NoError(t, newOwnerEnricher(profiles).EnrichTask(context.Background(), nil))
	require.NoError(t, newOwnerEnricher(profiles).EnrichProject(context.Background(), nil))

	profiles.AssertNotCalled(t, "GetUserByID", mock.Anything, mock.Anything)
}

func TestOwnerEnricher_InvalidOwnerSkipsLookup(t *testing.T) {
	for _, owner := range []*string{nil, strPtr(""), strPtr("   "), strPtr("null"), strPtr(" NULL ")} {
		profiles := new(profileLookupMock)
		task := &domain.Task{Owner: owner}

		require.NoError(t, newOwnerEnricher(profiles).EnrichTask(context.Background(), task))

		assert.Equal(t, domain.UnknownOwner, *task.OwnerName)
		assert.Equal(t, domain.UnknownOwner, *task.OwnerDepartment)
		profiles.AssertNumberOfCalls(t, "GetUserByID", 0)
	}
}

func TestOwnerEnricher_NotFound(t *testing.T) {
	profiles := new(profileLookupMock)
	profiles.On("GetUserByID", mock.Anything, "owner-123").Return(nil, domain.ErrProfileNotFound).Once()

	task := &domain.Task{Owner: strPtr(" owner-123 ")}
	require.NoError(t, newOwnerEnricher(profiles).EnrichTask(context.Background(), task))

	assert.Equal(t, domain.UnknownOwner, *task.OwnerName)
	assert.Equal(t, domain.UnknownOwner, *task.OwnerDepartment)
	profiles.AssertNumberOfCalls(t, "GetUserByID", 1)
}

func TestOwnerEnricher_NilProfileIsUnknown(t *testing.T) {
	profiles := new(profileLookupMock)
	profiles.On("GetUserByID", mock.Anything, "owner-123").Return(nil, nil).Once()

	project := &domain.Project{Owner: strPtr("owner-123")}
	require.NoError(t, newOwnerEnricher(profiles).EnrichProject(context.Background(), project))

	assert.Equal(t, domain.UnknownOwner, *project.OwnerName)
	profiles.AssertExpectations(t)
}

func TestOwnerEnricher_TransportErrorPropagates(t *testing.T) {
	profiles := new(profileLookupMock)
	unavailable := &domain.DependencyError{Service: "profile", Operation: "get user", Err: errors.New("connection refused")}
	profiles.On("GetUserByID", mock.Anything, "owner-123").Return(nil, unavailable).Once()

	task := &domain.Task{Owner: strPtr("owner-123")}
	err := newOwnerEnricher(profiles).EnrichTask(context.Background(), task)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDependencyUnavailable)
	assert.Nil(t, task.OwnerName)
	assert.Nil(t, task.OwnerDepartment)
}
