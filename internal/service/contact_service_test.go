package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/institute-crm/internal/models"
	appErrors "github.com/noah-isme/institute-crm/pkg/errors"
)

func TestContactServiceListFiltersByContext(t *testing.T) {
	env := newTestEnv(t)

	// Only Ganesh sits in the default context; contacts are not role
	// scoped, so the telecaller sees him too.
	for name, sess := range map[string]*Session{
		"admin":      env.admin(t),
		"telecaller": env.telecaller(t),
	} {
		t.Run(name, func(t *testing.T) {
			contacts, err := env.contacts.List(context.Background(), sess)
			require.NoError(t, err)
			require.Len(t, contacts, 1)
			assert.Equal(t, "Ganesh Iyer", contacts[0].Name)
		})
	}
}

func TestContactServiceCreate(t *testing.T) {
	env := newTestEnv(t)

	contact, err := env.contacts.Create(context.Background(), env.counselor(t), CreateContactRequest{
		Name:              "Lakshmi Nair",
		Phone:             "+91 90909 80808",
		Email:             "lakshmi.n@example.com",
		InstitutionID:     1,
		AcademicYearID:    1,
		AcademicSessionID: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, 4, contact.ID)
	assert.Equal(t, "2024-07-24", contact.CreatedDate)
	assert.Equal(t, "Global Institute of Technology", contact.Institution.Name)
	assert.Empty(t, contact.Activities)

	all := env.store.Contacts()
	require.Len(t, all, 4)
	assert.Equal(t, 4, all[0].ID, "new contact goes to the front")
}

func TestContactServiceCreateValidation(t *testing.T) {
	env := newTestEnv(t)

	t.Run("bad email", func(t *testing.T) {
		_, err := env.contacts.Create(context.Background(), env.admin(t), CreateContactRequest{
			Name: "X", Phone: "1", Email: "not-an-email",
			InstitutionID: 1, AcademicYearID: 1, AcademicSessionID: 1,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, appErrors.ErrValidation)
	})

	t.Run("session outside year", func(t *testing.T) {
		_, err := env.contacts.Create(context.Background(), env.admin(t), CreateContactRequest{
			Name: "X", Phone: "1", Email: "x@example.com",
			InstitutionID: 1, AcademicYearID: 1, AcademicSessionID: 3,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, appErrors.ErrValidation)
		assert.Len(t, env.store.Contacts(), 3)
	})

	t.Run("unknown institution", func(t *testing.T) {
		_, err := env.contacts.Create(context.Background(), env.admin(t), CreateContactRequest{
			Name: "X", Phone: "1", Email: "x@example.com",
			InstitutionID: 42, AcademicYearID: 1, AcademicSessionID: 1,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, appErrors.ErrNotFound)
	})
}

func TestContactServiceAddActivity(t *testing.T) {
	env := newTestEnv(t)

	contact, err := env.contacts.AddActivity(context.Background(), env.telecaller(t), 1, ActivityRequest{
		Type:  models.ActivityCall,
		Notes: "Reached him, call back next week.",
	})
	require.NoError(t, err)
	require.Len(t, contact.Activities, 3)
	assert.Equal(t, 3, contact.Activities[2].ID)
	assert.Equal(t, "Rajesh Singh", contact.Activities[2].CreatedBy)
}

func TestContactServiceDelete(t *testing.T) {
	env := newTestEnv(t)

	// The manager profile carries full contact permissions.
	err := env.contacts.Delete(context.Background(), env.manager(t), 1)
	require.NoError(t, err)
	assert.Len(t, env.store.Contacts(), 2)

	_, err = env.store.ContactByID(1)
	assert.ErrorIs(t, err, appErrors.ErrNotFound)

	err = env.contacts.Delete(context.Background(), env.manager(t), 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
}

func TestContactServiceDeleteRequiresPermission(t *testing.T) {
	env := newTestEnv(t)

	for name, sess := range map[string]*Session{
		"counselor":  env.counselor(t),
		"telecaller": env.telecaller(t),
	} {
		t.Run(name, func(t *testing.T) {
			err := env.contacts.Delete(context.Background(), sess, 1)
			require.Error(t, err)
			assert.ErrorIs(t, err, appErrors.ErrPermissionDenied)
		})
	}
	assert.Len(t, env.store.Contacts(), 3)
}

func TestContactServicePromote(t *testing.T) {
	env := newTestEnv(t)
	sess := env.counselor(t)

	lead, err := env.contacts.Promote(context.Background(), sess, 1)
	require.NoError(t, err)

	assert.Equal(t, 6, lead.ID)
	assert.Equal(t, "Ganesh Iyer", lead.Name)
	assert.Equal(t, models.LeadNew, lead.Status)
	assert.Equal(t, "From Contact", lead.Source)
	assert.Equal(t, "Not Specified", lead.EnquiryFor)
	assert.Equal(t, sess.User.ID, lead.AssignedTo.ID)
	assert.Equal(t, "2024-07-24", lead.LastContacted)

	// The contact's triple carries over.
	assert.Equal(t, 1, lead.Institution.ID)
	assert.Equal(t, 1, lead.AcademicYear.ID)
	assert.Equal(t, 1, lead.AcademicSession.ID)

	require.Len(t, lead.Activities, 1)
	assert.Equal(t, models.ActivityNote, lead.Activities[0].Type)
	assert.Equal(t, "Lead created from contact by Priya Sharma.", lead.Activities[0].Notes)

	// Promotion is non-destructive: the contact stays as it was.
	contact, err := env.store.ContactByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Ganesh Iyer", contact.Name)
	assert.Len(t, contact.Activities, 2)

	leads := env.store.Leads()
	require.Len(t, leads, 6)
	assert.Equal(t, 6, leads[0].ID)
}

func TestContactServicePromoteNeedsLeadCreatePermission(t *testing.T) {
	env := newTestEnv(t)

	// The telecaller profile can read and update leads but not create them.
	_, err := env.contacts.Promote(context.Background(), env.telecaller(t), 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, appErrors.ErrPermissionDenied)
	assert.Len(t, env.store.Leads(), 5)
}

func TestContactServicePromoteMissingContact(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.contacts.Promote(context.Background(), env.admin(t), 41)
	require.Error(t, err)
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
}
