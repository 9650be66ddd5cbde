package models

// Institution is a campus or school within the group.
type Institution struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// AcademicYear is a year range such as "2024-2025".
type AcademicYear struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// AcademicSession is an intake within an academic year.
type AcademicSession struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	AcademicYearID int    `json:"academic_year_id"`
}

// Course is an offered program, matched against lead enquiries during
// conversion.
type Course struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Duration string `json:"duration"`
}

// ContextRef is the institution/year/session triple that partitions
// operational records.
type ContextRef struct {
	InstitutionID     int `json:"institution_id"`
	AcademicYearID    int `json:"academic_year_id"`
	AcademicSessionID int `json:"academic_session_id"`
}

// ContextScoped is implemented by records carrying the partitioning triple.
type ContextScoped interface {
	ContextRef() ContextRef
}

// Assignable is implemented by records owned by a user, subject to
// role-based visibility.
type Assignable interface {
	AssigneeID() int
}
