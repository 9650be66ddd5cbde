package models

// Role determines record visibility (scope). CRUD rights come from the
// user's Profile; the two axes are independent.
type Role string

const (
	RoleAdmin      Role = "Admin"
	RoleCounselor  Role = "Counselor"
	RoleTelecaller Role = "Telecaller"
	RoleManager    Role = "Manager"
	RoleDirector   Role = "Director"
	RoleStudent    Role = "Student"
)

// Roles lists every known role.
func Roles() []Role {
	return []Role{RoleAdmin, RoleCounselor, RoleTelecaller, RoleManager, RoleDirector, RoleStudent}
}

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleCounselor, RoleTelecaller, RoleManager, RoleDirector, RoleStudent:
		return true
	}
	return false
}

// NoTeam is the sentinel TeamID for users without a team.
const NoTeam = 0

// User is a CRM operator or a student account created by conversion.
type User struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Role      Role   `json:"role"`
	Avatar    string `json:"avatar"`
	ProfileID int    `json:"profile_id"`
	TeamID    int    `json:"team_id"`
}

// Team groups users under a manager for visibility scoping.
type Team struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	ManagerID int    `json:"manager_id"`
	MemberIDs []int  `json:"member_ids"`
}

// HasMember reports whether the user id is in the team's member list.
func (t Team) HasMember(userID int) bool {
	for _, id := range t.MemberIDs {
		if id == userID {
			return true
		}
	}
	return false
}
