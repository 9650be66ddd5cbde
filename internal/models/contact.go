package models

// Contact is a raw enquiry that has not entered the lead pipeline. It has
// no status and no assignee; promotion creates a new Lead and leaves the
// contact untouched.
type Contact struct {
	ID              int             `json:"id"`
	Name            string          `json:"name"`
	Phone           string          `json:"phone"`
	Email           string          `json:"email"`
	CreatedDate     string          `json:"created_date"`
	Institution     Institution     `json:"institution"`
	AcademicYear    AcademicYear    `json:"academic_year"`
	AcademicSession AcademicSession `json:"academic_session"`
	Activities      []Activity      `json:"activities"`
}

// ContextRef implements ContextScoped.
func (c Contact) ContextRef() ContextRef {
	return ContextRef{
		InstitutionID:     c.Institution.ID,
		AcademicYearID:    c.AcademicYear.ID,
		AcademicSessionID: c.AcademicSession.ID,
	}
}
