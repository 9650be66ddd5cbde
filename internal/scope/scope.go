// Package scope computes the subset of records a user may see. Two
// independent filters apply: the global context (institution, year,
// session) partitions the data, then the role rule restricts assignable
// records to the user's reach.
package scope

import "github.com/noah-isme/institute-crm/internal/models"

// Context is the tri-level selection partitioning operational records.
// A nil dimension matches everything on that axis; normal operation keeps
// all three set.
type Context struct {
	Institution     *models.Institution
	AcademicYear    *models.AcademicYear
	AcademicSession *models.AcademicSession
}

// Matches reports whether the record triple falls inside the selection.
func (c Context) Matches(ref models.ContextRef) bool {
	if c.Institution != nil && ref.InstitutionID != c.Institution.ID {
		return false
	}
	if c.AcademicYear != nil && ref.AcademicYearID != c.AcademicYear.ID {
		return false
	}
	if c.AcademicSession != nil && ref.AcademicSessionID != c.AcademicSession.ID {
		return false
	}
	return true
}

// Consistent reports whether the selected session belongs to the selected
// year. A missing session or year is consistent by definition.
func (c Context) Consistent() bool {
	if c.AcademicYear == nil || c.AcademicSession == nil {
		return true
	}
	return c.AcademicSession.AcademicYearID == c.AcademicYear.ID
}

// FilterByContext keeps the records matching the selection.
func FilterByContext[T models.ContextScoped](ctx Context, records []T) []T {
	out := make([]T, 0, len(records))
	for _, rec := range records {
		if ctx.Matches(rec.ContextRef()) {
			out = append(out, rec)
		}
	}
	return out
}

// VisibleRecords applies the role visibility rule, in precedence order:
// Admin and Director see everything; a Manager sees records assigned to a
// team member or to themselves (no team means self only); everyone else
// sees only their own records. Callers context-filter first.
func VisibleRecords[T models.Assignable](records []T, user models.User, team *models.Team) []T {
	switch user.Role {
	case models.RoleAdmin, models.RoleDirector:
		return records
	case models.RoleManager:
		out := make([]T, 0, len(records))
		for _, rec := range records {
			id := rec.AssigneeID()
			if id == user.ID || (team != nil && team.HasMember(id)) {
				out = append(out, rec)
			}
		}
		return out
	default:
		out := make([]T, 0, len(records))
		for _, rec := range records {
			if rec.AssigneeID() == user.ID {
				out = append(out, rec)
			}
		}
		return out
	}
}
