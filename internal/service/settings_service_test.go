package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/institute-crm/pkg/errors"
)

func TestSettingsServiceOnlyAdminProfilesMayCreate(t *testing.T) {
	env := newTestEnv(t)

	for name, sess := range map[string]*Session{
		"counselor":  env.counselor(t),
		"telecaller": env.telecaller(t),
		"manager":    env.manager(t),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := env.settings.CreateInstitution(context.Background(), sess, CreateInstitutionRequest{Name: "X"})
			require.Error(t, err)
			assert.ErrorIs(t, err, appErrors.ErrPermissionDenied)
		})
	}
	assert.Len(t, env.store.Institutions(), 2)
}

func TestSettingsServiceCreateInstitution(t *testing.T) {
	env := newTestEnv(t)

	insts, err := env.settings.CreateInstitution(context.Background(), env.admin(t), CreateInstitutionRequest{
		Name: "  Nova Arts College  ",
	})
	require.NoError(t, err)
	require.Len(t, insts, 3)
	assert.Equal(t, 3, insts[2].ID)
	assert.Equal(t, "Nova Arts College", insts[2].Name)
}

func TestSettingsServiceCreateAcademicYear(t *testing.T) {
	env := newTestEnv(t)
	admin := env.admin(t)

	years, err := env.settings.CreateAcademicYear(context.Background(), admin, CreateAcademicYearRequest{Name: "2026-2027"})
	require.NoError(t, err)
	require.Len(t, years, 3)
	assert.Equal(t, "2026-2027", years[2].Name)

	for _, bad := range []string{"2026", "26-27", "2027-2026", "2026-2026", "next year"} {
		_, err := env.settings.CreateAcademicYear(context.Background(), admin, CreateAcademicYearRequest{Name: bad})
		require.Error(t, err, "name %q", bad)
		assert.ErrorIs(t, err, appErrors.ErrValidation)
	}
	assert.Len(t, env.store.AcademicYears(), 3)
}

func TestSettingsServiceCreateAcademicSession(t *testing.T) {
	env := newTestEnv(t)
	admin := env.admin(t)

	sessions, err := env.settings.CreateAcademicSession(context.Background(), admin, CreateAcademicSessionRequest{
		Name:           "Summer 2025 Intake",
		AcademicYearID: 1,
	})
	require.NoError(t, err)
	require.Len(t, sessions, 5)
	assert.Equal(t, 5, sessions[4].ID)
	assert.Equal(t, 1, sessions[4].AcademicYearID)

	_, err = env.settings.CreateAcademicSession(context.Background(), admin, CreateAcademicSessionRequest{
		Name:           "Orphan Intake",
		AcademicYearID: 9,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
}

func TestSettingsServiceCreateFeeStructure(t *testing.T) {
	env := newTestEnv(t)
	admin := env.admin(t)

	fees, err := env.settings.CreateFeeStructure(context.Background(), admin, CreateFeeStructureRequest{
		Name:        "Evening Diploma Fee",
		TotalAmount: 45000,
	})
	require.NoError(t, err)
	require.Len(t, fees, 4)
	assert.Equal(t, 4, fees[0].ID, "new structure goes to the front")
	assert.Equal(t, float64(45000), fees[0].TotalAmount)

	_, err = env.settings.CreateFeeStructure(context.Background(), admin, CreateFeeStructureRequest{
		Name:        "Free Course",
		TotalAmount: 0,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, appErrors.ErrValidation)
}

func TestSettingsServiceListUsers(t *testing.T) {
	env := newTestEnv(t)

	users, err := env.settings.ListUsers(context.Background(), env.admin(t))
	require.NoError(t, err)
	assert.Len(t, users, 5)

	_, err = env.settings.ListUsers(context.Background(), env.counselor(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, appErrors.ErrPermissionDenied)
}
