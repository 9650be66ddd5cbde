package service

import (
	"context"
	"strconv"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/institute-crm/internal/models"
	"github.com/noah-isme/institute-crm/internal/scope"
	"github.com/noah-isme/institute-crm/internal/store"
	appErrors "github.com/noah-isme/institute-crm/pkg/errors"
)

// StudentService handles admitted students and their fee records.
type StudentService struct {
	store     *store.Store
	contexts  *ContextService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewStudentService constructs the student service.
func NewStudentService(st *store.Store, contexts *ContextService, validate *validator.Validate, logger *zap.Logger) *StudentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{store: st, contexts: contexts, validator: validate, logger: logger}
}

// List returns the students inside the current context. Students carry no
// assignee, so no role scoping applies.
func (s *StudentService) List(ctx context.Context, sess *Session) ([]models.Student, error) {
	if sess == nil {
		return nil, appErrors.Clone(appErrors.ErrUnauthenticated, "login required")
	}
	if !sess.Can(models.ModuleStudents, models.ActionRead) {
		return nil, appErrors.Clone(appErrors.ErrPermissionDenied, "no read permission on students")
	}
	return scope.FilterByContext(s.contexts.Current(), s.store.Students()), nil
}

// AssignFeeStructure binds a fee structure to a student and recomputes the
// balance against the amount already paid.
func (s *StudentService) AssignFeeStructure(ctx context.Context, sess *Session, studentID, feeStructureID int) (models.Student, error) {
	if sess == nil {
		return models.Student{}, appErrors.Clone(appErrors.ErrUnauthenticated, "login required")
	}
	if !sess.Can(models.ModuleStudents, models.ActionUpdate) {
		return models.Student{}, appErrors.Clone(appErrors.ErrPermissionDenied, "no update permission on students")
	}

	student, err := s.store.StudentByID(studentID)
	if err != nil {
		return models.Student{}, err
	}
	structure, err := s.store.FeeStructureByID(feeStructureID)
	if err != nil {
		return models.Student{}, err
	}

	student.FeeDetails.Structure = &structure
	student.FeeDetails.Recalculate()
	if err := s.store.UpdateStudent(student); err != nil {
		return models.Student{}, err
	}
	s.logger.Info("fee structure assigned",
		zap.Int("student_id", student.ID),
		zap.String("structure", structure.Name),
		zap.Float64("balance", student.FeeDetails.Balance),
	)
	return student, nil
}

// RecordPaymentRequest carries the raw payment amount. The UI submits free
// text, so the amount arrives as a string and is parsed here.
type RecordPaymentRequest struct {
	Amount string `validate:"required"`
}

// RecordPayment adds a payment to the student's fee record. The amount
// must parse as a positive number and a fee structure must already be
// assigned; anything else is rejected before any state changes.
func (s *StudentService) RecordPayment(ctx context.Context, sess *Session, studentID int, req RecordPaymentRequest) (models.Student, error) {
	if sess == nil {
		return models.Student{}, appErrors.Clone(appErrors.ErrUnauthenticated, "login required")
	}
	if !sess.Can(models.ModuleStudents, models.ActionUpdate) {
		return models.Student{}, appErrors.Clone(appErrors.ErrPermissionDenied, "no update permission on students")
	}
	if err := s.validator.Struct(req); err != nil {
		return models.Student{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid payment payload")
	}

	amount, err := strconv.ParseFloat(req.Amount, 64)
	if err != nil {
		return models.Student{}, appErrors.Clone(appErrors.ErrValidation, "payment amount must be a number")
	}
	if amount <= 0 {
		return models.Student{}, appErrors.Clone(appErrors.ErrValidation, "payment amount must be positive")
	}

	student, err := s.store.StudentByID(studentID)
	if err != nil {
		return models.Student{}, err
	}
	if student.FeeDetails.Structure == nil {
		return models.Student{}, appErrors.Clone(appErrors.ErrValidation, "no fee structure assigned")
	}

	student.FeeDetails.PaidAmount += amount
	student.FeeDetails.Recalculate()
	if err := s.store.UpdateStudent(student); err != nil {
		return models.Student{}, err
	}
	s.logger.Info("payment recorded",
		zap.Int("student_id", student.ID),
		zap.Float64("amount", amount),
		zap.Float64("balance", student.FeeDetails.Balance),
	)
	return student, nil
}
