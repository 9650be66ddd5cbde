package models

// FeeStructure is a named total fee for a program.
type FeeStructure struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	TotalAmount float64 `json:"total_amount"`
}

// FeeDetails tracks fee progress for a student. Balance is derived:
// structure total minus paid, recomputed on every assignment and payment.
type FeeDetails struct {
	Structure  *FeeStructure `json:"structure"`
	PaidAmount float64       `json:"paid_amount"`
	Balance    float64       `json:"balance"`
}

// Recalculate restores the balance invariant after a structure or payment
// change.
func (f *FeeDetails) Recalculate() {
	if f.Structure == nil {
		f.Balance = 0
		return
	}
	f.Balance = f.Structure.TotalAmount - f.PaidAmount
}

// Student is an admitted lead. OriginalLeadID is a back-reference, not
// ownership.
type Student struct {
	ID              int             `json:"id"`
	Name            string          `json:"name"`
	Email           string          `json:"email"`
	Phone           string          `json:"phone"`
	AdmissionDate   string          `json:"admission_date"`
	Course          Course          `json:"course"`
	Institution     Institution     `json:"institution"`
	AcademicYear    AcademicYear    `json:"academic_year"`
	AcademicSession AcademicSession `json:"academic_session"`
	OriginalLeadID  int             `json:"original_lead_id"`
	FeeDetails      FeeDetails      `json:"fee_details"`
}

// ContextRef implements ContextScoped.
func (s Student) ContextRef() ContextRef {
	return ContextRef{
		InstitutionID:     s.Institution.ID,
		AcademicYearID:    s.AcademicYear.ID,
		AcademicSessionID: s.AcademicSession.ID,
	}
}
