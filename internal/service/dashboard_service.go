package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/institute-crm/internal/models"
	"github.com/noah-isme/institute-crm/internal/scope"
	"github.com/noah-isme/institute-crm/internal/store"
	appErrors "github.com/noah-isme/institute-crm/pkg/errors"
)

// DashboardStats is the aggregate view over the records visible to the
// session.
type DashboardStats struct {
	TotalLeads      int     `json:"total_leads"`
	NewLeads        int     `json:"new_leads"`
	ContactedLeads  int     `json:"contacted_leads"`
	QualifiedLeads  int     `json:"qualified_leads"`
	ConvertedLeads  int     `json:"converted_leads"`
	LostLeads       int     `json:"lost_leads"`
	TotalStudents   int     `json:"total_students"`
	FeesCollected   float64 `json:"fees_collected"`
	FeesOutstanding float64 `json:"fees_outstanding"`
	OpenTasks       int     `json:"open_tasks"`
}

// DashboardService composes the dashboard payload.
type DashboardService struct {
	store    *store.Store
	contexts *ContextService
	logger   *zap.Logger
}

// NewDashboardService constructs the dashboard service.
func NewDashboardService(st *store.Store, contexts *ContextService, logger *zap.Logger) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{store: st, contexts: contexts, logger: logger}
}

// Stats aggregates over the context-filtered, role-scoped collections.
func (s *DashboardService) Stats(ctx context.Context, sess *Session) (DashboardStats, error) {
	if sess == nil {
		return DashboardStats{}, appErrors.Clone(appErrors.ErrUnauthenticated, "login required")
	}
	if !sess.Can(models.ModuleDashboard, models.ActionRead) {
		return DashboardStats{}, appErrors.Clone(appErrors.ErrPermissionDenied, "no read permission on dashboard")
	}

	current := s.contexts.Current()
	leads := scope.VisibleRecords(scope.FilterByContext(current, s.store.Leads()), sess.User, sess.Team)
	students := scope.FilterByContext(current, s.store.Students())
	tasks := scope.VisibleRecords(s.store.Tasks(), sess.User, sess.Team)

	stats := DashboardStats{TotalLeads: len(leads), TotalStudents: len(students)}
	for _, l := range leads {
		switch l.Status {
		case models.LeadNew:
			stats.NewLeads++
		case models.LeadContacted:
			stats.ContactedLeads++
		case models.LeadQualified:
			stats.QualifiedLeads++
		case models.LeadConverted:
			stats.ConvertedLeads++
		case models.LeadLost:
			stats.LostLeads++
		}
	}
	for _, st := range students {
		stats.FeesCollected += st.FeeDetails.PaidAmount
		stats.FeesOutstanding += st.FeeDetails.Balance
	}
	for _, t := range tasks {
		if t.Status != models.TaskCompleted {
			stats.OpenTasks++
		}
	}
	return stats, nil
}
