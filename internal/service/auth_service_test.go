package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/institute-crm/internal/models"
	appErrors "github.com/noah-isme/institute-crm/pkg/errors"
)

func TestAuthServiceLoginResolvesUserProfileAndTeam(t *testing.T) {
	env := newTestEnv(t)

	cases := []struct {
		role        models.Role
		wantUserID  int
		wantProfile string
		wantTeamID  int
	}{
		{models.RoleAdmin, 1, "Admin Profile", 2},
		{models.RoleCounselor, 2, "Counselor Profile", 1},
		{models.RoleTelecaller, 3, "Telecaller Profile", 1},
		{models.RoleManager, 4, "Manager Profile", 1},
		{models.RoleDirector, 5, "Admin Profile", 2},
	}
	for _, tc := range cases {
		t.Run(string(tc.role), func(t *testing.T) {
			sess, err := env.auth.Login(context.Background(), tc.role)
			require.NoError(t, err)
			assert.Equal(t, tc.wantUserID, sess.User.ID)
			assert.Equal(t, tc.role, sess.User.Role)
			assert.Equal(t, tc.wantProfile, sess.Profile.Name)
			require.NotNil(t, sess.Team)
			assert.Equal(t, tc.wantTeamID, sess.Team.ID)
		})
	}
}

func TestAuthServiceLoginUnknownRole(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.auth.Login(context.Background(), models.Role("Janitor"))
	require.Error(t, err)
	assert.ErrorIs(t, err, appErrors.ErrValidation)
}

func TestAuthServiceLoginRoleWithoutUser(t *testing.T) {
	env := newTestEnv(t)

	// No seed user carries the Student role until a conversion happens.
	_, err := env.auth.Login(context.Background(), models.RoleStudent)
	require.Error(t, err)
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
}
