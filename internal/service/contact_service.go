package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/institute-crm/internal/models"
	"github.com/noah-isme/institute-crm/internal/scope"
	"github.com/noah-isme/institute-crm/internal/store"
	appErrors "github.com/noah-isme/institute-crm/pkg/errors"
)

// ContactService handles raw enquiries and their promotion into the lead
// pipeline.
type ContactService struct {
	store     *store.Store
	contexts  *ContextService
	validator *validator.Validate
	logger    *zap.Logger
	metrics   *MetricsService
	now       func() time.Time
}

// ContactServiceParams groups constructor dependencies.
type ContactServiceParams struct {
	Store     *store.Store
	Contexts  *ContextService
	Validator *validator.Validate
	Logger    *zap.Logger
	Metrics   *MetricsService
	Now       func() time.Time
}

// NewContactService constructs the contact service.
func NewContactService(params ContactServiceParams) *ContactService {
	if params.Validator == nil {
		params.Validator = validator.New()
	}
	if params.Logger == nil {
		params.Logger = zap.NewNop()
	}
	if params.Now == nil {
		params.Now = time.Now
	}
	return &ContactService{
		store:     params.Store,
		contexts:  params.Contexts,
		validator: params.Validator,
		logger:    params.Logger,
		metrics:   params.Metrics,
		now:       params.Now,
	}
}

func (s *ContactService) deny(action models.Action, message string) error {
	s.metrics.RecordPermissionDenied(string(models.ModuleContacts), string(action))
	return appErrors.Clone(appErrors.ErrPermissionDenied, message)
}

// List returns the contacts inside the current context. Contacts carry no
// assignee, so no role scoping applies.
func (s *ContactService) List(ctx context.Context, sess *Session) ([]models.Contact, error) {
	if sess == nil {
		return nil, appErrors.Clone(appErrors.ErrUnauthenticated, "login required")
	}
	if !sess.Can(models.ModuleContacts, models.ActionRead) {
		return nil, s.deny(models.ActionRead, "no read permission on contacts")
	}
	return scope.FilterByContext(s.contexts.Current(), s.store.Contacts()), nil
}

// CreateContactRequest is the payload for a new contact.
type CreateContactRequest struct {
	Name              string `validate:"required"`
	Phone             string `validate:"required"`
	Email             string `validate:"required,email"`
	InstitutionID     int    `validate:"required"`
	AcademicYearID    int    `validate:"required"`
	AcademicSessionID int    `validate:"required"`
}

// Create registers a contact under the given context triple.
func (s *ContactService) Create(ctx context.Context, sess *Session, req CreateContactRequest) (models.Contact, error) {
	if sess == nil {
		return models.Contact{}, appErrors.Clone(appErrors.ErrUnauthenticated, "login required")
	}
	if !sess.Can(models.ModuleContacts, models.ActionCreate) {
		return models.Contact{}, s.deny(models.ActionCreate, "no create permission on contacts")
	}
	if err := s.validator.Struct(req); err != nil {
		return models.Contact{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid contact payload")
	}

	inst, err := s.store.InstitutionByID(req.InstitutionID)
	if err != nil {
		return models.Contact{}, err
	}
	year, err := s.store.AcademicYearByID(req.AcademicYearID)
	if err != nil {
		return models.Contact{}, err
	}
	session, err := s.store.AcademicSessionByID(req.AcademicSessionID)
	if err != nil {
		return models.Contact{}, err
	}
	if session.AcademicYearID != year.ID {
		return models.Contact{}, appErrors.Clone(appErrors.ErrValidation, "session does not belong to the academic year")
	}

	contact := models.Contact{
		ID:              s.store.NextContactID(),
		Name:            req.Name,
		Phone:           req.Phone,
		Email:           req.Email,
		CreatedDate:     s.now().Format(dateLayout),
		Institution:     inst,
		AcademicYear:    year,
		AcademicSession: session,
		Activities:      []models.Activity{},
	}
	s.store.AddContact(contact)
	s.metrics.RecordEntityCreated("contact")
	s.logger.Info("contact created", zap.Int("contact_id", contact.ID), zap.Int("user_id", sess.User.ID))
	return contact, nil
}

// AddActivity logs an interaction on a contact.
func (s *ContactService) AddActivity(ctx context.Context, sess *Session, contactID int, req ActivityRequest) (models.Contact, error) {
	if sess == nil {
		return models.Contact{}, appErrors.Clone(appErrors.ErrUnauthenticated, "login required")
	}
	if !sess.Can(models.ModuleContacts, models.ActionUpdate) {
		return models.Contact{}, s.deny(models.ActionUpdate, "no update permission on contacts")
	}
	if err := s.validator.Struct(req); err != nil {
		return models.Contact{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid activity payload")
	}
	if !req.Type.Valid() {
		return models.Contact{}, appErrors.Clone(appErrors.ErrValidation, "unknown activity type")
	}

	contact, err := s.store.ContactByID(contactID)
	if err != nil {
		return models.Contact{}, err
	}
	contact.Activities = append(contact.Activities, models.Activity{
		ID:        models.NextActivityID(contact.Activities),
		Date:      s.now().Format(dateLayout),
		Type:      req.Type,
		Notes:     req.Notes,
		CreatedBy: sess.User.Name,
	})
	if err := s.store.UpdateContact(contact); err != nil {
		return models.Contact{}, err
	}
	return contact, nil
}

// Delete removes a contact. Leads previously promoted from it are their
// own records and stay.
func (s *ContactService) Delete(ctx context.Context, sess *Session, contactID int) error {
	if sess == nil {
		return appErrors.Clone(appErrors.ErrUnauthenticated, "login required")
	}
	if !sess.Can(models.ModuleContacts, models.ActionDelete) {
		return s.deny(models.ActionDelete, "no delete permission on contacts")
	}
	if err := s.store.RemoveContact(contactID); err != nil {
		return err
	}
	s.logger.Info("contact deleted", zap.Int("contact_id", contactID), zap.Int("user_id", sess.User.ID))
	return nil
}

// Promote creates a new lead from a contact. The contact itself is left
// untouched; promotion is non-destructive. The lead starts as New, sourced
// "From Contact", assigned to the acting user and seeded with one note.
func (s *ContactService) Promote(ctx context.Context, sess *Session, contactID int) (models.Lead, error) {
	if sess == nil {
		return models.Lead{}, appErrors.Clone(appErrors.ErrUnauthenticated, "login required")
	}
	if !sess.Can(models.ModuleLeads, models.ActionCreate) {
		s.metrics.RecordPermissionDenied(string(models.ModuleLeads), string(models.ActionCreate))
		return models.Lead{}, appErrors.Clone(appErrors.ErrPermissionDenied, "no create permission on leads")
	}

	contact, err := s.store.ContactByID(contactID)
	if err != nil {
		return models.Lead{}, err
	}

	today := s.now().Format(dateLayout)
	lead := models.Lead{
		ID:              s.store.NextLeadID(),
		Name:            contact.Name,
		Phone:           contact.Phone,
		Email:           contact.Email,
		Status:          models.LeadNew,
		Source:          "From Contact",
		AssignedTo:      sess.User,
		LastContacted:   today,
		EnquiryFor:      "Not Specified",
		Institution:     contact.Institution,
		AcademicYear:    contact.AcademicYear,
		AcademicSession: contact.AcademicSession,
		Activities: []models.Activity{{
			ID:        1,
			Date:      today,
			Type:      models.ActivityNote,
			Notes:     fmt.Sprintf("Lead created from contact by %s.", sess.User.Name),
			CreatedBy: sess.User.Name,
		}},
	}
	s.store.AddLead(lead)

	s.metrics.RecordPromotion()
	s.metrics.RecordEntityCreated("lead")
	s.logger.Info("contact promoted to lead",
		zap.Int("contact_id", contact.ID),
		zap.Int("lead_id", lead.ID),
		zap.Int("user_id", sess.User.ID),
	)
	return lead, nil
}
