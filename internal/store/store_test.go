package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/institute-crm/internal/models"
	appErrors "github.com/noah-isme/institute-crm/pkg/errors"
)

func TestNextIDsEmptyCollectionsStartAtOne(t *testing.T) {
	s := New()
	assert.Equal(t, 1, s.NextLeadID())
	assert.Equal(t, 1, s.NextUserID())
	assert.Equal(t, 1, s.NextStudentID())
	assert.Equal(t, 1, s.NextInstitutionID())
	assert.Equal(t, 1, s.NextFeeStructureID())
}

func TestNextIDsAreMaxPlusOne(t *testing.T) {
	s := New()
	s.Load(Data{
		Leads: []models.Lead{{ID: 7}, {ID: 2}, {ID: 5}},
		Users: []models.User{{ID: 3}},
	})
	assert.Equal(t, 8, s.NextLeadID())
	assert.Equal(t, 4, s.NextUserID())
}

func TestAddLeadPrependsNewestFirst(t *testing.T) {
	s := New()
	s.Load(Data{Leads: []models.Lead{{ID: 1}}})
	s.AddLead(models.Lead{ID: 2})

	leads := s.Leads()
	require.Len(t, leads, 2)
	assert.Equal(t, 2, leads[0].ID)
}

func TestReadsReturnCopies(t *testing.T) {
	s := New()
	s.Load(Data{Leads: []models.Lead{{ID: 1, Name: "Aisha"}}})

	leads := s.Leads()
	leads[0].Name = "changed"

	fresh, err := s.LeadByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Aisha", fresh.Name)
}

func TestLookupsReportNotFound(t *testing.T) {
	s := New()
	_, err := s.LeadByID(99)
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
	_, err = s.FirstUserByRole(models.RoleDirector)
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
	assert.ErrorIs(t, s.UpdateLead(models.Lead{ID: 99}), appErrors.ErrNotFound)
}

func TestSessionsForYear(t *testing.T) {
	s := New()
	s.Load(Data{AcademicSessions: []models.AcademicSession{
		{ID: 1, AcademicYearID: 1},
		{ID: 2, AcademicYearID: 1},
		{ID: 3, AcademicYearID: 2},
	}})

	sessions := s.SessionsForYear(1)
	require.Len(t, sessions, 2)
	assert.Equal(t, 1, sessions[0].ID)
	assert.Empty(t, s.SessionsForYear(9))
}

func TestCommitConversionAppliesFullBatch(t *testing.T) {
	s := New()
	s.Load(Data{
		Leads: []models.Lead{{ID: 3, Status: models.LeadQualified}},
		Users: []models.User{{ID: 1}},
	})

	student := models.Student{ID: 1, OriginalLeadID: 3}
	studentUser := models.User{ID: 2, Role: models.RoleStudent}
	require.NoError(t, s.CommitConversion(3, student, studentUser))

	lead, err := s.LeadByID(3)
	require.NoError(t, err)
	assert.Equal(t, models.LeadConverted, lead.Status)

	students := s.Students()
	require.Len(t, students, 1)
	assert.Equal(t, 3, students[0].OriginalLeadID)

	assert.Len(t, s.Users(), 2)
}

func TestCommitConversionMissingLeadLeavesStoreUntouched(t *testing.T) {
	s := New()
	s.Load(Data{Users: []models.User{{ID: 1}}})

	err := s.CommitConversion(42, models.Student{ID: 1}, models.User{ID: 2})
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
	assert.Empty(t, s.Students())
	assert.Len(t, s.Users(), 1)
}
