package models

// LeadStatus is the lead pipeline stage. Qualified is the "Enquiry" stage.
type LeadStatus string

const (
	LeadNew       LeadStatus = "New"
	LeadContacted LeadStatus = "Contacted"
	LeadQualified LeadStatus = "Qualified"
	LeadLost      LeadStatus = "Lost"
	LeadConverted LeadStatus = "Converted"
)

// Valid reports whether the status is one of the known values.
func (s LeadStatus) Valid() bool {
	switch s {
	case LeadNew, LeadContacted, LeadQualified, LeadLost, LeadConverted:
		return true
	}
	return false
}

// Terminal reports whether no further transition is defined.
func (s LeadStatus) Terminal() bool {
	return s == LeadLost || s == LeadConverted
}

// CanTransitionTo reports whether the status machine allows moving to next.
// Qualified and Lost are reachable from any earlier stage; Converted only
// from Qualified.
func (s LeadStatus) CanTransitionTo(next LeadStatus) bool {
	if s.Terminal() {
		return false
	}
	switch next {
	case LeadContacted:
		return s == LeadNew
	case LeadQualified:
		return s == LeadNew || s == LeadContacted
	case LeadLost:
		return true
	case LeadConverted:
		return s == LeadQualified
	}
	return false
}

// Lead is a prospective admission.
type Lead struct {
	ID              int             `json:"id"`
	Name            string          `json:"name"`
	Phone           string          `json:"phone"`
	Email           string          `json:"email"`
	Status          LeadStatus      `json:"status"`
	Source          string          `json:"source"`
	AssignedTo      User            `json:"assigned_to"`
	LastContacted   string          `json:"last_contacted"`
	EnquiryFor      string          `json:"enquiry_for"`
	Institution     Institution     `json:"institution"`
	AcademicYear    AcademicYear    `json:"academic_year"`
	AcademicSession AcademicSession `json:"academic_session"`
	Activities      []Activity      `json:"activities"`
}

// ContextRef implements ContextScoped.
func (l Lead) ContextRef() ContextRef {
	return ContextRef{
		InstitutionID:     l.Institution.ID,
		AcademicYearID:    l.AcademicYear.ID,
		AcademicSessionID: l.AcademicSession.ID,
	}
}

// AssigneeID implements Assignable.
func (l Lead) AssigneeID() int { return l.AssignedTo.ID }
