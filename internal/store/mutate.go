package store

import (
	"github.com/noah-isme/institute-crm/internal/models"
	appErrors "github.com/noah-isme/institute-crm/pkg/errors"
)

// NextUserID returns the id a new user will receive.
func (s *Store) NextUserID() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return nextID(s.users, func(u models.User) int { return u.ID })
}

// NextLeadID returns the id a new lead will receive.
func (s *Store) NextLeadID() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return nextID(s.leads, func(l models.Lead) int { return l.ID })
}

// NextContactID returns the id a new contact will receive.
func (s *Store) NextContactID() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return nextID(s.contacts, func(c models.Contact) int { return c.ID })
}

// NextStudentID returns the id a new student will receive.
func (s *Store) NextStudentID() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return nextID(s.students, func(st models.Student) int { return st.ID })
}

// NextTaskID returns the id a new task will receive.
func (s *Store) NextTaskID() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return nextID(s.tasks, func(t models.Task) int { return t.ID })
}

// NextInstitutionID returns the id a new institution will receive.
func (s *Store) NextInstitutionID() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return nextID(s.institutions, func(i models.Institution) int { return i.ID })
}

// NextAcademicYearID returns the id a new academic year will receive.
func (s *Store) NextAcademicYearID() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return nextID(s.academicYears, func(y models.AcademicYear) int { return y.ID })
}

// NextAcademicSessionID returns the id a new session will receive.
func (s *Store) NextAcademicSessionID() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return nextID(s.sessions, func(sess models.AcademicSession) int { return sess.ID })
}

// NextFeeStructureID returns the id a new fee structure will receive.
func (s *Store) NextFeeStructureID() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return nextID(s.feeStructures, func(f models.FeeStructure) int { return f.ID })
}

// AddLead prepends a lead, newest first.
func (s *Store) AddLead(lead models.Lead) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leads = append([]models.Lead{lead}, s.leads...)
}

// AddContact prepends a contact, newest first.
func (s *Store) AddContact(contact models.Contact) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contacts = append([]models.Contact{contact}, s.contacts...)
}

// AddTask appends a task.
func (s *Store) AddTask(task models.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append(s.tasks, task)
}

// AddInstitution appends an institution.
func (s *Store) AddInstitution(inst models.Institution) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.institutions = append(s.institutions, inst)
}

// AddAcademicYear appends an academic year.
func (s *Store) AddAcademicYear(year models.AcademicYear) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.academicYears = append(s.academicYears, year)
}

// AddAcademicSession appends a session.
func (s *Store) AddAcademicSession(sess models.AcademicSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = append(s.sessions, sess)
}

// AddFeeStructure prepends a fee structure, newest first.
func (s *Store) AddFeeStructure(fee models.FeeStructure) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.feeStructures = append([]models.FeeStructure{fee}, s.feeStructures...)
}

// RemoveContact deletes the contact with the id.
func (s *Store) RemoveContact(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.contacts {
		if s.contacts[i].ID == id {
			s.contacts = append(s.contacts[:i], s.contacts[i+1:]...)
			return nil
		}
	}
	return appErrors.Clone(appErrors.ErrNotFound, "contact not found")
}

// RemoveTask deletes the task with the id.
func (s *Store) RemoveTask(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return nil
		}
	}
	return appErrors.Clone(appErrors.ErrNotFound, "task not found")
}

// UpdateLead replaces the lead with the same id.
func (s *Store) UpdateLead(lead models.Lead) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.leads {
		if s.leads[i].ID == lead.ID {
			s.leads[i] = lead
			return nil
		}
	}
	return appErrors.Clone(appErrors.ErrNotFound, "lead not found")
}

// UpdateContact replaces the contact with the same id.
func (s *Store) UpdateContact(contact models.Contact) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.contacts {
		if s.contacts[i].ID == contact.ID {
			s.contacts[i] = contact
			return nil
		}
	}
	return appErrors.Clone(appErrors.ErrNotFound, "contact not found")
}

// UpdateStudent replaces the student with the same id.
func (s *Store) UpdateStudent(student models.Student) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.students {
		if s.students[i].ID == student.ID {
			s.students[i] = student
			return nil
		}
	}
	return appErrors.Clone(appErrors.ErrNotFound, "student not found")
}

// UpdateTask replaces the task with the same id.
func (s *Store) UpdateTask(task models.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == task.ID {
			s.tasks[i] = task
			return nil
		}
	}
	return appErrors.Clone(appErrors.ErrNotFound, "task not found")
}

// CommitConversion applies the lead conversion batch in one step: the lead
// flips to Converted, the student is prepended and the student user is
// appended. Callers stage and validate everything first; a missing lead
// leaves the store untouched.
func (s *Store) CommitConversion(leadID int, student models.Student, studentUser models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := -1
	for i := range s.leads {
		if s.leads[i].ID == leadID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return appErrors.Clone(appErrors.ErrNotFound, "lead not found")
	}
	s.leads[idx].Status = models.LeadConverted
	s.students = append([]models.Student{student}, s.students...)
	s.users = append(s.users, studentUser)
	return nil
}
