// Package seed carries the built-in demo dataset. The module has no
// persistence; every run starts from these collections.
package seed

import (
	"time"

	"github.com/noah-isme/institute-crm/internal/models"
	"github.com/noah-isme/institute-crm/internal/store"
)

const dateLayout = "2006-01-02"

func allGranted() models.PermissionSet {
	return models.PermissionSet{Read: true, Create: true, Update: true, Delete: true}
}

func readOnly() models.PermissionSet {
	return models.PermissionSet{Read: true}
}

// Profiles returns the built-in permission profiles.
func Profiles() []models.Profile {
	return []models.Profile{
		{
			ID: 1, Name: "Admin Profile",
			CanSwitchGlobalContext: true,
			Permissions: models.ModulePermissions{
				Dashboard: allGranted(),
				Contacts:  allGranted(),
				Leads:     allGranted(),
				Students:  allGranted(),
				Tasks:     allGranted(),
				Settings:  allGranted(),
			},
		},
		{
			ID: 2, Name: "Manager Profile",
			CanSwitchGlobalContext: true,
			Permissions: models.ModulePermissions{
				Dashboard: readOnly(),
				Contacts:  allGranted(),
				Leads:     models.PermissionSet{Read: true, Create: true, Update: true},
				Students:  models.PermissionSet{Read: true, Update: true},
				Tasks:     models.PermissionSet{Read: true, Create: true, Update: true},
				Settings:  models.PermissionSet{},
			},
		},
		{
			ID: 3, Name: "Counselor Profile",
			CanSwitchGlobalContext: false,
			Permissions: models.ModulePermissions{
				Dashboard: readOnly(),
				Contacts:  models.PermissionSet{Read: true, Create: true, Update: true},
				Leads:     models.PermissionSet{Read: true, Create: true, Update: true},
				Students:  models.PermissionSet{Read: true, Update: true},
				Tasks:     models.PermissionSet{Read: true, Create: true, Update: true},
				Settings:  models.PermissionSet{},
			},
		},
		{
			ID: 4, Name: "Telecaller Profile",
			CanSwitchGlobalContext: false,
			Permissions: models.ModulePermissions{
				Dashboard: readOnly(),
				Contacts:  models.PermissionSet{Read: true, Create: true},
				Leads:     models.PermissionSet{Read: true, Update: true},
				Students:  models.PermissionSet{},
				Tasks:     models.PermissionSet{Read: true, Create: true, Update: true},
				Settings:  models.PermissionSet{},
			},
		},
		{
			ID: 5, Name: models.StudentProfileName,
			CanSwitchGlobalContext: false,
			Permissions: models.ModulePermissions{
				Dashboard: readOnly(),
				Contacts:  models.PermissionSet{},
				Leads:     models.PermissionSet{},
				Students:  readOnly(),
				Tasks:     readOnly(),
				Settings:  models.PermissionSet{},
			},
		},
	}
}

// Teams returns the built-in teams.
func Teams() []models.Team {
	return []models.Team{
		{ID: 1, Name: "Admissions Team Alpha", ManagerID: 4, MemberIDs: []int{2, 3}},
		{ID: 2, Name: "Executive Team", ManagerID: 5, MemberIDs: []int{1, 4}},
	}
}

// Users returns the built-in users.
func Users() []models.User {
	return []models.User{
		{ID: 1, Name: "Arun Kumar", Role: models.RoleAdmin, Avatar: "https://picsum.photos/seed/user1/100/100", ProfileID: 1, TeamID: 2},
		{ID: 2, Name: "Priya Sharma", Role: models.RoleCounselor, Avatar: "https://picsum.photos/seed/user2/100/100", ProfileID: 3, TeamID: 1},
		{ID: 3, Name: "Rajesh Singh", Role: models.RoleTelecaller, Avatar: "https://picsum.photos/seed/user3/100/100", ProfileID: 4, TeamID: 1},
		{ID: 4, Name: "Sunita Menon", Role: models.RoleManager, Avatar: "https://picsum.photos/seed/user4/100/100", ProfileID: 2, TeamID: 1},
		{ID: 5, Name: "Vikram Reddy", Role: models.RoleDirector, Avatar: "https://picsum.photos/seed/user5/100/100", ProfileID: 1, TeamID: 2},
	}
}

// Data assembles the complete demo dataset.
func Data() store.Data {
	profiles := Profiles()
	teams := Teams()
	users := Users()

	institutions := []models.Institution{
		{ID: 1, Name: "Global Institute of Technology"},
		{ID: 2, Name: "Future Leaders Business School"},
	}

	years := []models.AcademicYear{
		{ID: 1, Name: "2024-2025"},
		{ID: 2, Name: "2025-2026"},
	}

	sessions := []models.AcademicSession{
		{ID: 1, Name: "Fall 2024 Intake", AcademicYearID: 1},
		{ID: 2, Name: "Spring 2025 Intake", AcademicYearID: 1},
		{ID: 3, Name: "Fall 2025 Intake", AcademicYearID: 2},
		{ID: 4, Name: "Spring 2026 Intake", AcademicYearID: 2},
	}

	courses := []models.Course{
		{ID: 1, Name: "B.Tech Computer Science", Duration: "4 Years"},
		{ID: 2, Name: "MBA General Management", Duration: "2 Years"},
		{ID: 3, Name: "Data Science Certification", Duration: "6 Months"},
	}

	feeStructures := []models.FeeStructure{
		{ID: 1, Name: "B.Tech Annual Fee 2024", TotalAmount: 150000},
		{ID: 2, Name: "MBA Full-Time Fee 2024", TotalAmount: 400000},
		{ID: 3, Name: "Data Science Program Fee", TotalAmount: 75000},
	}

	leads := []models.Lead{
		{
			ID: 1, Name: "Aisha Begum", Phone: "+91 98765 43210", Email: "aisha.b@example.com",
			Status: models.LeadNew, Source: "Website", AssignedTo: users[1],
			LastContacted: "2024-07-20", EnquiryFor: "MBA Program",
			Institution: institutions[1], AcademicYear: years[0], AcademicSession: sessions[1],
			Activities: []models.Activity{
				{ID: 1, Date: "2024-07-21", Type: models.ActivityCall, Notes: "Initial call, sent brochure.", CreatedBy: "Priya Sharma"},
			},
		},
		{
			ID: 2, Name: "Bhavin Patel", Phone: "+91 91234 56789", Email: "bhavin.p@example.com",
			Status: models.LeadContacted, Source: "Referral", AssignedTo: users[2],
			LastContacted: "2024-07-19", EnquiryFor: "B.Tech CSE",
			Institution: institutions[0], AcademicYear: years[0], AcademicSession: sessions[0],
			Activities: []models.Activity{
				{ID: 1, Date: "2024-07-19", Type: models.ActivityCall, Notes: "Spoke about curriculum, seems interested.", CreatedBy: "Rajesh Singh"},
				{ID: 2, Date: "2024-07-22", Type: models.ActivityEmail, Notes: "Follow-up email sent with fee structure.", CreatedBy: "Rajesh Singh"},
			},
		},
		{
			ID: 3, Name: "Catherine D'Souza", Phone: "+91 99887 76655", Email: "catherine.d@example.com",
			Status: models.LeadQualified, Source: "Social Media", AssignedTo: users[1],
			LastContacted: "2024-07-22", EnquiryFor: "Data Science Certification",
			Institution: institutions[0], AcademicYear: years[1], AcademicSession: sessions[2],
			Activities: []models.Activity{
				{ID: 1, Date: "2024-07-22", Type: models.ActivityMeeting, Notes: "Campus visit scheduled for this Friday.", CreatedBy: "Priya Sharma"},
			},
		},
		{
			ID: 4, Name: "David Raj", Phone: "+91 90000 11111", Email: "david.r@example.com",
			Status: models.LeadConverted, Source: "Education Fair", AssignedTo: users[1],
			LastContacted: "2024-07-15", EnquiryFor: "MBA Program",
			Institution: institutions[1], AcademicYear: years[0], AcademicSession: sessions[0],
			Activities: []models.Activity{
				{ID: 1, Date: "2024-07-15", Type: models.ActivityMeeting, Notes: "Admission confirmed. Payment received.", CreatedBy: "Priya Sharma"},
			},
		},
		{
			ID: 5, Name: "Fathima Sheikh", Phone: "+91 88888 22222", Email: "fathima.s@example.com",
			Status: models.LeadLost, Source: "Website", AssignedTo: users[2],
			LastContacted: "2024-07-18", EnquiryFor: "B.Tech CSE",
			Institution: institutions[0], AcademicYear: years[0], AcademicSession: sessions[0],
			Activities: []models.Activity{
				{ID: 1, Date: "2024-07-18", Type: models.ActivityCall, Notes: "Joined another institute.", CreatedBy: "Rajesh Singh"},
			},
		},
	}

	contacts := []models.Contact{
		{
			ID: 1, Name: "Ganesh Iyer", Phone: "+91 9876512345", Email: "ganesh.i@example.com",
			CreatedDate: "2024-07-10",
			Institution: institutions[0], AcademicYear: years[0], AcademicSession: sessions[0],
			Activities: []models.Activity{
				{ID: 1, Date: "2024-07-10", Type: models.ActivityNote, Notes: "Contact created from inbound web query.", CreatedBy: "System"},
				{ID: 2, Date: "2024-07-11", Type: models.ActivityCall, Notes: "Called and left a voicemail.", CreatedBy: "Rajesh Singh"},
			},
		},
		{
			ID: 2, Name: "Harini Varma", Phone: "+91 9123456780", Email: "harini.v@example.com",
			CreatedDate: "2024-07-11",
			Institution: institutions[1], AcademicYear: years[0], AcademicSession: sessions[1],
			Activities: []models.Activity{
				{ID: 1, Date: "2024-07-11", Type: models.ActivityEmail, Notes: "Sent initial introductory email.", CreatedBy: "Priya Sharma"},
			},
		},
		{
			ID: 3, Name: "Imran Khan", Phone: "+91 9988776654", Email: "imran.k@example.com",
			CreatedDate: "2024-07-12",
			Institution: institutions[0], AcademicYear: years[1], AcademicSession: sessions[2],
			Activities:  []models.Activity{},
		},
	}

	mbaFee := feeStructures[1]
	students := []models.Student{
		{
			ID: 1, Name: "David Raj", Email: "david.r@example.com", Phone: "+91 90000 11111",
			AdmissionDate: "2024-07-15", Course: courses[1],
			Institution: institutions[1], AcademicYear: years[0], AcademicSession: sessions[0],
			OriginalLeadID: 4,
			FeeDetails: models.FeeDetails{
				Structure:  &mbaFee,
				PaidAmount: 200000,
				Balance:    200000,
			},
		},
	}

	today := time.Now().Format(dateLayout)
	tomorrow := time.Now().AddDate(0, 0, 1).Format(dateLayout)
	dayAfter := time.Now().AddDate(0, 0, 2).Format(dateLayout)

	tasks := []models.Task{
		{
			ID: 1, Subject: "Call Bhavin Patel for follow-up", DueDate: today,
			Status: models.TaskNotStarted, AssignedTo: users[2],
			RelatedTo: models.TaskRef{Type: models.RelatedLead, ID: 2, Name: "Bhavin Patel"},
		},
		{
			ID: 2, Subject: "Send fee structure to Aisha Begum", DueDate: tomorrow,
			Status: models.TaskNotStarted, AssignedTo: users[1],
			RelatedTo: models.TaskRef{Type: models.RelatedLead, ID: 1, Name: "Aisha Begum"},
		},
		{
			ID: 3, Subject: "Prepare admission documents for David Raj", DueDate: today,
			Status: models.TaskCompleted, AssignedTo: users[1],
			RelatedTo: models.TaskRef{Type: models.RelatedLead, ID: 4, Name: "David Raj"},
		},
		{
			ID: 4, Subject: "Initial call to Ganesh Iyer", DueDate: dayAfter,
			Status: models.TaskInProgress, AssignedTo: users[2],
			RelatedTo: models.TaskRef{Type: models.RelatedContact, ID: 1, Name: "Ganesh Iyer"},
		},
	}

	return store.Data{
		Profiles:         profiles,
		Teams:            teams,
		Users:            users,
		Institutions:     institutions,
		AcademicYears:    years,
		AcademicSessions: sessions,
		Courses:          courses,
		FeeStructures:    feeStructures,
		Leads:            leads,
		Contacts:         contacts,
		Students:         students,
		Tasks:            tasks,
	}
}

// Store returns a store loaded with the demo dataset.
func Store() *store.Store {
	s := store.New()
	s.Load(Data())
	return s
}
