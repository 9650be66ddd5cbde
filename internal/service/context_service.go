package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/noah-isme/institute-crm/internal/models"
	"github.com/noah-isme/institute-crm/internal/scope"
	"github.com/noah-isme/institute-crm/internal/store"
	appErrors "github.com/noah-isme/institute-crm/pkg/errors"
)

// ContextService owns the process-wide institution/year/session selection.
// Changing it requires a profile with the context-switch flag; lead
// conversion adopts the converted lead's triple without a permission check
// so the new student is immediately visible.
type ContextService struct {
	store  *store.Store
	logger *zap.Logger

	mu      sync.Mutex
	current scope.Context
}

// NewContextService constructs the service and initialises the selection
// to the first institution, the first year and that year's first session.
func NewContextService(st *store.Store, logger *zap.Logger) *ContextService {
	if logger == nil {
		logger = zap.NewNop()
	}
	svc := &ContextService{store: st, logger: logger}
	svc.reset()
	return svc
}

func (s *ContextService) reset() {
	var cur scope.Context
	if insts := s.store.Institutions(); len(insts) > 0 {
		inst := insts[0]
		cur.Institution = &inst
	}
	if years := s.store.AcademicYears(); len(years) > 0 {
		year := years[0]
		cur.AcademicYear = &year
		if sessions := s.store.SessionsForYear(year.ID); len(sessions) > 0 {
			sess := sessions[0]
			cur.AcademicSession = &sess
		}
	}
	s.mu.Lock()
	s.current = cur
	s.mu.Unlock()
}

// Current returns the selection.
func (s *ContextService) Current() scope.Context {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// SetContextRequest carries the optional dimensions to change. Setting a
// year without a session cascades the session to the year's first one.
type SetContextRequest struct {
	InstitutionID     *int
	AcademicYearID    *int
	AcademicSessionID *int
}

// SetContext changes the selection for sessions allowed to switch context.
// The selection is only replaced once every referenced id has resolved, so
// a failed call leaves it untouched.
func (s *ContextService) SetContext(ctx context.Context, sess *Session, req SetContextRequest) (scope.Context, error) {
	if sess == nil {
		return s.Current(), appErrors.Clone(appErrors.ErrUnauthenticated, "login required")
	}
	if !sess.CanSwitchContext() {
		return s.Current(), appErrors.Clone(appErrors.ErrPermissionDenied, "profile may not switch the global context")
	}

	next := s.Current()

	if req.InstitutionID != nil {
		inst, err := s.store.InstitutionByID(*req.InstitutionID)
		if err != nil {
			return s.Current(), err
		}
		next.Institution = &inst
	}

	if req.AcademicYearID != nil {
		year, err := s.store.AcademicYearByID(*req.AcademicYearID)
		if err != nil {
			return s.Current(), err
		}
		next.AcademicYear = &year
		// Cascade: a year change invalidates the session selection.
		next.AcademicSession = nil
		if sessions := s.store.SessionsForYear(year.ID); len(sessions) > 0 {
			first := sessions[0]
			next.AcademicSession = &first
		}
	}

	if req.AcademicSessionID != nil {
		session, err := s.store.AcademicSessionByID(*req.AcademicSessionID)
		if err != nil {
			return s.Current(), err
		}
		if next.AcademicYear != nil && session.AcademicYearID != next.AcademicYear.ID {
			return s.Current(), appErrors.Clone(appErrors.ErrValidation, "session does not belong to the selected academic year")
		}
		next.AcademicSession = &session
	}

	s.mu.Lock()
	s.current = next
	s.mu.Unlock()

	s.logger.Info("global context changed",
		zap.Int("user_id", sess.User.ID),
		zap.Any("context", describeContext(next)),
	)
	return next, nil
}

// adopt replaces the selection with the given triple, bypassing the
// permission gate. Used by lead conversion only.
func (s *ContextService) adopt(inst models.Institution, year models.AcademicYear, session models.AcademicSession) {
	s.mu.Lock()
	s.current = scope.Context{Institution: &inst, AcademicYear: &year, AcademicSession: &session}
	s.mu.Unlock()
}

func describeContext(c scope.Context) map[string]any {
	out := map[string]any{}
	if c.Institution != nil {
		out["institution"] = c.Institution.Name
	}
	if c.AcademicYear != nil {
		out["academic_year"] = c.AcademicYear.Name
	}
	if c.AcademicSession != nil {
		out["academic_session"] = c.AcademicSession.Name
	}
	return out
}
