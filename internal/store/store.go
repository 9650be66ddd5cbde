// Package store holds the canonical in-memory entity collections. Reads
// hand out copies; writes go through commit methods that apply a full
// batch of changes under one lock, so no caller can observe a lifecycle
// transition half-applied.
package store

import (
	"sync"

	"github.com/noah-isme/institute-crm/internal/models"
	appErrors "github.com/noah-isme/institute-crm/pkg/errors"
)

// Store owns all top-level collections. Slice order is significant: login
// picks the first user with a role and the context selector initialises to
// the first element of each reference collection.
type Store struct {
	mu sync.RWMutex

	profiles      []models.Profile
	teams         []models.Team
	users         []models.User
	institutions  []models.Institution
	academicYears []models.AcademicYear
	sessions      []models.AcademicSession
	courses       []models.Course
	feeStructures []models.FeeStructure
	leads         []models.Lead
	contacts      []models.Contact
	students      []models.Student
	tasks         []models.Task
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// Load replaces every collection. Intended for seeding.
func (s *Store) Load(data Data) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles = data.Profiles
	s.teams = data.Teams
	s.users = data.Users
	s.institutions = data.Institutions
	s.academicYears = data.AcademicYears
	s.sessions = data.AcademicSessions
	s.courses = data.Courses
	s.feeStructures = data.FeeStructures
	s.leads = data.Leads
	s.contacts = data.Contacts
	s.students = data.Students
	s.tasks = data.Tasks
}

// Data bundles full collections for loading.
type Data struct {
	Profiles         []models.Profile
	Teams            []models.Team
	Users            []models.User
	Institutions     []models.Institution
	AcademicYears    []models.AcademicYear
	AcademicSessions []models.AcademicSession
	Courses          []models.Course
	FeeStructures    []models.FeeStructure
	Leads            []models.Lead
	Contacts         []models.Contact
	Students         []models.Student
	Tasks            []models.Task
}

func copySlice[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}

// nextID implements the max(existing)+1 rule, 1 for an empty collection.
func nextID[T any](items []T, id func(T) int) int {
	next := 1
	for _, item := range items {
		if id(item) >= next {
			next = id(item) + 1
		}
	}
	return next
}

// Profiles returns a copy of the profile collection.
func (s *Store) Profiles() []models.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.profiles)
}

// Teams returns a copy of the team collection.
func (s *Store) Teams() []models.Team {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.teams)
}

// Users returns a copy of the user collection.
func (s *Store) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.users)
}

// Institutions returns a copy of the institution collection.
func (s *Store) Institutions() []models.Institution {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.institutions)
}

// AcademicYears returns a copy of the academic year collection.
func (s *Store) AcademicYears() []models.AcademicYear {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.academicYears)
}

// AcademicSessions returns a copy of the session collection.
func (s *Store) AcademicSessions() []models.AcademicSession {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.sessions)
}

// SessionsForYear returns the sessions belonging to the year, in
// collection order.
func (s *Store) SessionsForYear(yearID int) []models.AcademicSession {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.AcademicSession, 0)
	for _, sess := range s.sessions {
		if sess.AcademicYearID == yearID {
			out = append(out, sess)
		}
	}
	return out
}

// Courses returns a copy of the course collection.
func (s *Store) Courses() []models.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.courses)
}

// FeeStructures returns a copy of the fee structure collection.
func (s *Store) FeeStructures() []models.FeeStructure {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.feeStructures)
}

// Leads returns a copy of the lead collection.
func (s *Store) Leads() []models.Lead {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.leads)
}

// Contacts returns a copy of the contact collection.
func (s *Store) Contacts() []models.Contact {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.contacts)
}

// Students returns a copy of the student collection.
func (s *Store) Students() []models.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.students)
}

// Tasks returns a copy of the task collection.
func (s *Store) Tasks() []models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.tasks)
}

// FirstUserByRole returns the first user carrying the role.
func (s *Store) FirstUserByRole(role models.Role) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Role == role {
			return u, nil
		}
	}
	return models.User{}, appErrors.Clone(appErrors.ErrNotFound, "no user with role "+string(role))
}

// ProfileByID looks up a profile.
func (s *Store) ProfileByID(id int) (models.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.profiles {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Profile{}, appErrors.Clone(appErrors.ErrNotFound, "profile not found")
}

// ProfileByName looks up a profile by its display name.
func (s *Store) ProfileByName(name string) (models.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.profiles {
		if p.Name == name {
			return p, nil
		}
	}
	return models.Profile{}, appErrors.Clone(appErrors.ErrNotFound, "profile not found")
}

// TeamByID looks up a team.
func (s *Store) TeamByID(id int) (models.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.teams {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Team{}, appErrors.Clone(appErrors.ErrNotFound, "team not found")
}

// InstitutionByID looks up an institution.
func (s *Store) InstitutionByID(id int) (models.Institution, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, in := range s.institutions {
		if in.ID == id {
			return in, nil
		}
	}
	return models.Institution{}, appErrors.Clone(appErrors.ErrNotFound, "institution not found")
}

// AcademicYearByID looks up an academic year.
func (s *Store) AcademicYearByID(id int) (models.AcademicYear, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, y := range s.academicYears {
		if y.ID == id {
			return y, nil
		}
	}
	return models.AcademicYear{}, appErrors.Clone(appErrors.ErrNotFound, "academic year not found")
}

// AcademicSessionByID looks up an academic session.
func (s *Store) AcademicSessionByID(id int) (models.AcademicSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sess := range s.sessions {
		if sess.ID == id {
			return sess, nil
		}
	}
	return models.AcademicSession{}, appErrors.Clone(appErrors.ErrNotFound, "academic session not found")
}

// FeeStructureByID looks up a fee structure.
func (s *Store) FeeStructureByID(id int) (models.FeeStructure, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, f := range s.feeStructures {
		if f.ID == id {
			return f, nil
		}
	}
	return models.FeeStructure{}, appErrors.Clone(appErrors.ErrNotFound, "fee structure not found")
}

// LeadByID looks up a lead.
func (s *Store) LeadByID(id int) (models.Lead, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, l := range s.leads {
		if l.ID == id {
			return l, nil
		}
	}
	return models.Lead{}, appErrors.Clone(appErrors.ErrNotFound, "lead not found")
}

// ContactByID looks up a contact.
func (s *Store) ContactByID(id int) (models.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.contacts {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Contact{}, appErrors.Clone(appErrors.ErrNotFound, "contact not found")
}

// StudentByID looks up a student.
func (s *Store) StudentByID(id int) (models.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, st := range s.students {
		if st.ID == id {
			return st, nil
		}
	}
	return models.Student{}, appErrors.Clone(appErrors.ErrNotFound, "student not found")
}

// TaskByID looks up a task.
func (s *Store) TaskByID(id int) (models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Task{}, appErrors.Clone(appErrors.ErrNotFound, "task not found")
}
