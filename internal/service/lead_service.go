package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/institute-crm/internal/models"
	"github.com/noah-isme/institute-crm/internal/scope"
	"github.com/noah-isme/institute-crm/internal/scoring"
	"github.com/noah-isme/institute-crm/internal/store"
	appErrors "github.com/noah-isme/institute-crm/pkg/errors"
)

const dateLayout = "2006-01-02"

// LeadService handles the lead pipeline: listing, status transitions,
// activity logging, scoring and the conversion to a student.
type LeadService struct {
	store     *store.Store
	contexts  *ContextService
	scoring   *ScoringService
	validator *validator.Validate
	logger    *zap.Logger
	metrics   *MetricsService
	now       func() time.Time
}

// LeadServiceParams groups constructor dependencies.
type LeadServiceParams struct {
	Store     *store.Store
	Contexts  *ContextService
	Scoring   *ScoringService
	Validator *validator.Validate
	Logger    *zap.Logger
	Metrics   *MetricsService
	Now       func() time.Time
}

// NewLeadService constructs the lead service.
func NewLeadService(params LeadServiceParams) *LeadService {
	if params.Validator == nil {
		params.Validator = validator.New()
	}
	if params.Logger == nil {
		params.Logger = zap.NewNop()
	}
	if params.Now == nil {
		params.Now = time.Now
	}
	return &LeadService{
		store:     params.Store,
		contexts:  params.Contexts,
		scoring:   params.Scoring,
		validator: params.Validator,
		logger:    params.Logger,
		metrics:   params.Metrics,
		now:       params.Now,
	}
}

func (s *LeadService) deny(module models.Module, action models.Action, message string) error {
	s.metrics.RecordPermissionDenied(string(module), string(action))
	return appErrors.Clone(appErrors.ErrPermissionDenied, message)
}

// List returns the leads visible to the session: inside the current
// context and within the session's role scope.
func (s *LeadService) List(ctx context.Context, sess *Session) ([]models.Lead, error) {
	if sess == nil {
		return nil, appErrors.Clone(appErrors.ErrUnauthenticated, "login required")
	}
	if !sess.Can(models.ModuleLeads, models.ActionRead) {
		return nil, s.deny(models.ModuleLeads, models.ActionRead, "no read permission on leads")
	}
	leads := scope.FilterByContext(s.contexts.Current(), s.store.Leads())
	return scope.VisibleRecords(leads, sess.User, sess.Team), nil
}

// UpdateStatus moves a lead along the pipeline. Converted is not reachable
// here; only the conversion transaction sets it.
func (s *LeadService) UpdateStatus(ctx context.Context, sess *Session, leadID int, status models.LeadStatus) (models.Lead, error) {
	if sess == nil {
		return models.Lead{}, appErrors.Clone(appErrors.ErrUnauthenticated, "login required")
	}
	if !sess.Can(models.ModuleLeads, models.ActionUpdate) {
		return models.Lead{}, s.deny(models.ModuleLeads, models.ActionUpdate, "no update permission on leads")
	}
	if !status.Valid() {
		return models.Lead{}, appErrors.Clone(appErrors.ErrValidation, "unknown lead status")
	}
	if status == models.LeadConverted {
		return models.Lead{}, appErrors.Clone(appErrors.ErrValidation, "leads are converted through the conversion flow")
	}

	lead, err := s.store.LeadByID(leadID)
	if err != nil {
		return models.Lead{}, err
	}
	if lead.Status.Terminal() {
		return models.Lead{}, appErrors.Clone(appErrors.ErrConflict, fmt.Sprintf("lead is %s and cannot change status", lead.Status))
	}
	if !lead.Status.CanTransitionTo(status) {
		return models.Lead{}, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("cannot move lead from %s to %s", lead.Status, status))
	}

	lead.Status = status
	if err := s.store.UpdateLead(lead); err != nil {
		return models.Lead{}, err
	}
	s.logger.Info("lead status updated",
		zap.Int("lead_id", lead.ID),
		zap.String("status", string(status)),
		zap.Int("user_id", sess.User.ID),
	)
	return lead, nil
}

// ActivityRequest is the payload for logging an interaction.
type ActivityRequest struct {
	Type  models.ActivityType `validate:"required"`
	Notes string              `validate:"required"`
}

// AddActivity logs an interaction on a lead, stamps the last-contacted
// date and moves a New lead to Contacted.
func (s *LeadService) AddActivity(ctx context.Context, sess *Session, leadID int, req ActivityRequest) (models.Lead, error) {
	if sess == nil {
		return models.Lead{}, appErrors.Clone(appErrors.ErrUnauthenticated, "login required")
	}
	if !sess.Can(models.ModuleLeads, models.ActionUpdate) {
		return models.Lead{}, s.deny(models.ModuleLeads, models.ActionUpdate, "no update permission on leads")
	}
	if err := s.validator.Struct(req); err != nil {
		return models.Lead{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid activity payload")
	}
	if !req.Type.Valid() {
		return models.Lead{}, appErrors.Clone(appErrors.ErrValidation, "unknown activity type")
	}

	lead, err := s.store.LeadByID(leadID)
	if err != nil {
		return models.Lead{}, err
	}

	today := s.now().Format(dateLayout)
	lead.Activities = append(lead.Activities, models.Activity{
		ID:        models.NextActivityID(lead.Activities),
		Date:      today,
		Type:      req.Type,
		Notes:     req.Notes,
		CreatedBy: sess.User.Name,
	})
	lead.LastContacted = today
	if lead.Status == models.LeadNew {
		lead.Status = models.LeadContacted
	}

	if err := s.store.UpdateLead(lead); err != nil {
		return models.Lead{}, err
	}
	return lead, nil
}

// ConversionResult reports the entities produced by a conversion.
type ConversionResult struct {
	Lead        models.Lead
	Student     models.Student
	StudentUser models.User
}

// Convert turns a Qualified lead into a student plus a student user
// account and switches the global context to the lead's triple. The three
// store effects commit as one batch; every precondition is checked before
// anything mutates.
func (s *LeadService) Convert(ctx context.Context, sess *Session, leadID int) (ConversionResult, error) {
	if sess == nil {
		return ConversionResult{}, appErrors.Clone(appErrors.ErrUnauthenticated, "login required")
	}
	if !sess.Can(models.ModuleLeads, models.ActionUpdate) {
		return ConversionResult{}, s.deny(models.ModuleLeads, models.ActionUpdate, "no update permission on leads")
	}

	lead, err := s.store.LeadByID(leadID)
	if err != nil {
		return ConversionResult{}, err
	}
	if lead.Status == models.LeadConverted {
		return ConversionResult{}, appErrors.Clone(appErrors.ErrConflict, "lead is already converted")
	}
	if lead.Status != models.LeadQualified {
		return ConversionResult{}, appErrors.Clone(appErrors.ErrValidation, "only qualified leads can be converted")
	}

	courses := s.store.Courses()
	if len(courses) == 0 {
		return ConversionResult{}, appErrors.Clone(appErrors.ErrValidation, "no courses configured")
	}
	studentProfile, err := s.store.ProfileByName(models.StudentProfileName)
	if err != nil {
		return ConversionResult{}, appErrors.Clone(appErrors.ErrNotFound, "student profile is not configured")
	}

	student := models.Student{
		ID:              s.store.NextStudentID(),
		Name:            lead.Name,
		Email:           lead.Email,
		Phone:           lead.Phone,
		AdmissionDate:   s.now().Format(dateLayout),
		Course:          bestEffortCourse(lead.EnquiryFor, courses),
		Institution:     lead.Institution,
		AcademicYear:    lead.AcademicYear,
		AcademicSession: lead.AcademicSession,
		OriginalLeadID:  lead.ID,
		FeeDetails:      models.FeeDetails{Structure: nil, PaidAmount: 0, Balance: 0},
	}
	studentUser := models.User{
		ID:        s.store.NextUserID(),
		Name:      lead.Name,
		Role:      models.RoleStudent,
		Avatar:    fmt.Sprintf("https://i.pravatar.cc/150?u=%s", lead.Email),
		ProfileID: studentProfile.ID,
		TeamID:    models.NoTeam,
	}

	if err := s.store.CommitConversion(lead.ID, student, studentUser); err != nil {
		return ConversionResult{}, err
	}
	s.contexts.adopt(lead.Institution, lead.AcademicYear, lead.AcademicSession)

	s.metrics.RecordConversion()
	s.metrics.RecordEntityCreated("student")
	s.metrics.RecordEntityCreated("user")
	s.logger.Info("lead converted",
		zap.Int("lead_id", lead.ID),
		zap.Int("student_id", student.ID),
		zap.Int("student_user_id", studentUser.ID),
		zap.Int("user_id", sess.User.ID),
	)

	lead.Status = models.LeadConverted
	return ConversionResult{Lead: lead, Student: student, StudentUser: studentUser}, nil
}

// Score asks the scoring collaborator about a visible lead. The call never
// fails on the collaborator's account, only on permissions or a missing
// lead.
func (s *LeadService) Score(ctx context.Context, sess *Session, leadID int) (scoring.Result, error) {
	if sess == nil {
		return scoring.Result{}, appErrors.Clone(appErrors.ErrUnauthenticated, "login required")
	}
	if !sess.Can(models.ModuleLeads, models.ActionRead) {
		return scoring.Result{}, s.deny(models.ModuleLeads, models.ActionRead, "no read permission on leads")
	}
	lead, err := s.store.LeadByID(leadID)
	if err != nil {
		return scoring.Result{}, err
	}
	return s.scoring.ScoreLead(ctx, lead), nil
}

// bestEffortCourse matches the free-text enquiry against course names by
// substring containment, falling back to the first course when nothing
// matches.
func bestEffortCourse(enquiryFor string, courses []models.Course) models.Course {
	for _, c := range courses {
		if strings.Contains(enquiryFor, c.Name) {
			return c
		}
	}
	return courses[0]
}
