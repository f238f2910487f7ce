package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahlimouna/gari-app/internal/entities"
)

func TestGetOrCreateProfileCreatesOnFirstLogin(t *testing.T) {
	users := newMemoryUserStore()
	svc := NewProfileService(users)

	profile, err := svc.GetOrCreateProfile("user-1", "amine@example.com")
	require.NoError(t, err)
	assert.Equal(t, "user-1", profile.ID)
	assert.Equal(t, "amine@example.com", profile.Email)
	assert.True(t, profile.NotificationsEnabled)
	require.NotNil(t, users.users["amine@example.com"], "a bare profile row is created")

	again, err := svc.GetOrCreateProfile("user-1", "amine@example.com")
	require.NoError(t, err)
	assert.Equal(t, profile.ID, again.ID)
}

func TestUpdateProfile(t *testing.T) {
	users := newMemoryUserStore()
	svc := NewProfileService(users)

	_, err := svc.GetOrCreateProfile("user-1", "amine@example.com")
	require.NoError(t, err)

	updated, err := svc.UpdateProfile("user-1", entities.UpdateProfileRequest{
		FirstName:            "Amine",
		LastName:             "Bouchiba",
		Phone:                "+213550123456",
		NotificationsEnabled: false,
	})
	require.NoError(t, err)
	assert.Equal(t, "Amine", updated.FirstName)
	assert.False(t, updated.NotificationsEnabled)

	_, err = svc.UpdateProfile("ghost", entities.UpdateProfileRequest{})
	assert.Error(t, err)
}
