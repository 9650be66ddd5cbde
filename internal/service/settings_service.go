package service

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/institute-crm/internal/models"
	"github.com/noah-isme/institute-crm/internal/store"
	appErrors "github.com/noah-isme/institute-crm/pkg/errors"
)

var yearRangePattern = regexp.MustCompile(`^\d{4}-\d{4}$`)

// SettingsService handles the admin reference data: institutions,
// academic years and sessions, and fee structures. Every creation returns
// the updated collection, matching what the settings screen renders.
type SettingsService struct {
	store     *store.Store
	validator *validator.Validate
	logger    *zap.Logger
	metrics   *MetricsService
}

// NewSettingsService constructs the settings service.
func NewSettingsService(st *store.Store, validate *validator.Validate, logger *zap.Logger, metrics *MetricsService) *SettingsService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SettingsService{store: st, validator: validate, logger: logger, metrics: metrics}
}

func (s *SettingsService) requireCreate(sess *Session) error {
	if sess == nil {
		return appErrors.Clone(appErrors.ErrUnauthenticated, "login required")
	}
	if !sess.Can(models.ModuleSettings, models.ActionCreate) {
		s.metrics.RecordPermissionDenied(string(models.ModuleSettings), string(models.ActionCreate))
		return appErrors.Clone(appErrors.ErrPermissionDenied, "no create permission on settings")
	}
	return nil
}

// ListUsers returns every user account for the admin screen.
func (s *SettingsService) ListUsers(ctx context.Context, sess *Session) ([]models.User, error) {
	if sess == nil {
		return nil, appErrors.Clone(appErrors.ErrUnauthenticated, "login required")
	}
	if !sess.Can(models.ModuleSettings, models.ActionRead) {
		return nil, appErrors.Clone(appErrors.ErrPermissionDenied, "no read permission on settings")
	}
	return s.store.Users(), nil
}

// CreateInstitutionRequest is the payload for a new institution.
type CreateInstitutionRequest struct {
	Name string `validate:"required"`
}

// CreateInstitution registers an institution and returns the updated
// collection.
func (s *SettingsService) CreateInstitution(ctx context.Context, sess *Session, req CreateInstitutionRequest) ([]models.Institution, error) {
	if err := s.requireCreate(sess); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid institution payload")
	}

	inst := models.Institution{ID: s.store.NextInstitutionID(), Name: strings.TrimSpace(req.Name)}
	s.store.AddInstitution(inst)
	s.metrics.RecordEntityCreated("institution")
	s.logger.Info("institution created", zap.String("name", inst.Name), zap.Int("id", inst.ID))
	return s.store.Institutions(), nil
}

// CreateAcademicYearRequest is the payload for a new academic year.
type CreateAcademicYearRequest struct {
	Name string `validate:"required"`
}

// CreateAcademicYear registers a year. The name must be a range like
// "2024-2025" with the closing year after the opening one.
func (s *SettingsService) CreateAcademicYear(ctx context.Context, sess *Session, req CreateAcademicYearRequest) ([]models.AcademicYear, error) {
	if err := s.requireCreate(sess); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid academic year payload")
	}

	name := strings.TrimSpace(req.Name)
	if !yearRangePattern.MatchString(name) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "academic year must look like 2024-2025")
	}
	parts := strings.SplitN(name, "-", 2)
	from, _ := strconv.Atoi(parts[0])
	to, _ := strconv.Atoi(parts[1])
	if to <= from {
		return nil, appErrors.Clone(appErrors.ErrValidation, "academic year range must be increasing")
	}

	year := models.AcademicYear{ID: s.store.NextAcademicYearID(), Name: name}
	s.store.AddAcademicYear(year)
	s.metrics.RecordEntityCreated("academic_year")
	s.logger.Info("academic year created", zap.String("name", year.Name), zap.Int("id", year.ID))
	return s.store.AcademicYears(), nil
}

// CreateAcademicSessionRequest is the payload for a new session.
type CreateAcademicSessionRequest struct {
	Name           string `validate:"required"`
	AcademicYearID int    `validate:"required"`
}

// CreateAcademicSession registers a session under an existing year.
func (s *SettingsService) CreateAcademicSession(ctx context.Context, sess *Session, req CreateAcademicSessionRequest) ([]models.AcademicSession, error) {
	if err := s.requireCreate(sess); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid academic session payload")
	}
	if _, err := s.store.AcademicYearByID(req.AcademicYearID); err != nil {
		return nil, err
	}

	session := models.AcademicSession{
		ID:             s.store.NextAcademicSessionID(),
		Name:           strings.TrimSpace(req.Name),
		AcademicYearID: req.AcademicYearID,
	}
	s.store.AddAcademicSession(session)
	s.metrics.RecordEntityCreated("academic_session")
	s.logger.Info("academic session created", zap.String("name", session.Name), zap.Int("id", session.ID))
	return s.store.AcademicSessions(), nil
}

// CreateFeeStructureRequest is the payload for a new fee structure.
type CreateFeeStructureRequest struct {
	Name        string  `validate:"required"`
	TotalAmount float64 `validate:"required,gt=0"`
}

// CreateFeeStructure registers a fee structure.
func (s *SettingsService) CreateFeeStructure(ctx context.Context, sess *Session, req CreateFeeStructureRequest) ([]models.FeeStructure, error) {
	if err := s.requireCreate(sess); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid fee structure payload")
	}

	fee := models.FeeStructure{
		ID:          s.store.NextFeeStructureID(),
		Name:        strings.TrimSpace(req.Name),
		TotalAmount: req.TotalAmount,
	}
	s.store.AddFeeStructure(fee)
	s.metrics.RecordEntityCreated("fee_structure")
	s.logger.Info("fee structure created", zap.String("name", fee.Name), zap.Float64("total", fee.TotalAmount))
	return s.store.FeeStructures(), nil
}
