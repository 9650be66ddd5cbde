package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/institute-crm/internal/models"
	"github.com/noah-isme/institute-crm/internal/scope"
	"github.com/noah-isme/institute-crm/internal/store"
	appErrors "github.com/noah-isme/institute-crm/pkg/errors"
)

// TaskService handles follow-up tasks. Tasks are role-scoped like leads
// but carry no context triple, so the global context never filters them.
type TaskService struct {
	store     *store.Store
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewTaskService constructs the task service.
func NewTaskService(st *store.Store, validate *validator.Validate, logger *zap.Logger) *TaskService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TaskService{store: st, validator: validate, logger: logger, now: time.Now}
}

// List returns the tasks visible to the session under the role rule.
func (s *TaskService) List(ctx context.Context, sess *Session) ([]models.Task, error) {
	if sess == nil {
		return nil, appErrors.Clone(appErrors.ErrUnauthenticated, "login required")
	}
	if !sess.Can(models.ModuleTasks, models.ActionRead) {
		return nil, appErrors.Clone(appErrors.ErrPermissionDenied, "no read permission on tasks")
	}
	return scope.VisibleRecords(s.store.Tasks(), sess.User, sess.Team), nil
}

// CreateTaskRequest is the payload for a new task.
type CreateTaskRequest struct {
	Subject     string             `validate:"required"`
	DueDate     string             `validate:"required"`
	AssignedTo  int                `validate:"required"`
	RelatedType models.RelatedType `validate:"required"`
	RelatedID   int                `validate:"required"`
}

// Create registers a task against an existing lead or contact.
func (s *TaskService) Create(ctx context.Context, sess *Session, req CreateTaskRequest) (models.Task, error) {
	if sess == nil {
		return models.Task{}, appErrors.Clone(appErrors.ErrUnauthenticated, "login required")
	}
	if !sess.Can(models.ModuleTasks, models.ActionCreate) {
		return models.Task{}, appErrors.Clone(appErrors.ErrPermissionDenied, "no create permission on tasks")
	}
	if err := s.validator.Struct(req); err != nil {
		return models.Task{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, "invalid task payload")
	}
	if _, err := time.Parse(dateLayout, req.DueDate); err != nil {
		return models.Task{}, appErrors.Clone(appErrors.ErrValidation, "due date must be YYYY-MM-DD")
	}

	var assignee models.User
	found := false
	for _, u := range s.store.Users() {
		if u.ID == req.AssignedTo {
			assignee = u
			found = true
			break
		}
	}
	if !found {
		return models.Task{}, appErrors.Clone(appErrors.ErrNotFound, "assignee not found")
	}

	var relatedName string
	switch req.RelatedType {
	case models.RelatedLead:
		lead, err := s.store.LeadByID(req.RelatedID)
		if err != nil {
			return models.Task{}, err
		}
		relatedName = lead.Name
	case models.RelatedContact:
		contact, err := s.store.ContactByID(req.RelatedID)
		if err != nil {
			return models.Task{}, err
		}
		relatedName = contact.Name
	default:
		return models.Task{}, appErrors.Clone(appErrors.ErrValidation, "related type must be Lead or Contact")
	}

	task := models.Task{
		ID:         s.store.NextTaskID(),
		Subject:    req.Subject,
		DueDate:    req.DueDate,
		Status:     models.TaskNotStarted,
		AssignedTo: assignee,
		RelatedTo:  models.TaskRef{Type: req.RelatedType, ID: req.RelatedID, Name: relatedName},
	}
	s.store.AddTask(task)
	s.logger.Info("task created", zap.Int("task_id", task.ID), zap.Int("user_id", sess.User.ID))
	return task, nil
}

// Delete removes a task.
func (s *TaskService) Delete(ctx context.Context, sess *Session, taskID int) error {
	if sess == nil {
		return appErrors.Clone(appErrors.ErrUnauthenticated, "login required")
	}
	if !sess.Can(models.ModuleTasks, models.ActionDelete) {
		return appErrors.Clone(appErrors.ErrPermissionDenied, "no delete permission on tasks")
	}
	if err := s.store.RemoveTask(taskID); err != nil {
		return err
	}
	s.logger.Info("task deleted", zap.Int("task_id", taskID), zap.Int("user_id", sess.User.ID))
	return nil
}

// UpdateStatus moves a task between progress stages.
func (s *TaskService) UpdateStatus(ctx context.Context, sess *Session, taskID int, status models.TaskStatus) (models.Task, error) {
	if sess == nil {
		return models.Task{}, appErrors.Clone(appErrors.ErrUnauthenticated, "login required")
	}
	if !sess.Can(models.ModuleTasks, models.ActionUpdate) {
		return models.Task{}, appErrors.Clone(appErrors.ErrPermissionDenied, "no update permission on tasks")
	}
	if !status.Valid() {
		return models.Task{}, appErrors.Clone(appErrors.ErrValidation, "unknown task status")
	}

	task, err := s.store.TaskByID(taskID)
	if err != nil {
		return models.Task{}, err
	}
	task.Status = status
	if err := s.store.UpdateTask(task); err != nil {
		return models.Task{}, err
	}
	return task, nil
}
