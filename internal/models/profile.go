package models

// Action is a CRUD capability bit.
type Action string

const (
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Module identifies an application area gated by permissions.
type Module string

const (
	ModuleDashboard Module = "dashboard"
	ModuleContacts  Module = "contacts"
	ModuleLeads     Module = "leads"
	ModuleStudents  Module = "students"
	ModuleTasks     Module = "tasks"
	ModuleSettings  Module = "settings"
)

// Modules lists every module in display order.
func Modules() []Module {
	return []Module{ModuleDashboard, ModuleContacts, ModuleLeads, ModuleStudents, ModuleTasks, ModuleSettings}
}

// PermissionSet holds the CRUD bits for one module.
type PermissionSet struct {
	Read   bool `json:"read"`
	Create bool `json:"create"`
	Update bool `json:"update"`
	Delete bool `json:"delete"`
}

// Allows reports whether the action bit is set. Unknown actions are denied.
func (p PermissionSet) Allows(action Action) bool {
	switch action {
	case ActionRead:
		return p.Read
	case ActionCreate:
		return p.Create
	case ActionUpdate:
		return p.Update
	case ActionDelete:
		return p.Delete
	}
	return false
}

// ModulePermissions is the full permission matrix of a profile. One field
// per module keeps the map exhaustive at compile time; there is no way to
// build a profile with a missing module.
type ModulePermissions struct {
	Dashboard PermissionSet `json:"dashboard"`
	Contacts  PermissionSet `json:"contacts"`
	Leads     PermissionSet `json:"leads"`
	Students  PermissionSet `json:"students"`
	Tasks     PermissionSet `json:"tasks"`
	Settings  PermissionSet `json:"settings"`
}

// ForModule returns the permission set for the module. Unknown modules
// report ok=false and an all-deny set.
func (m ModulePermissions) ForModule(module Module) (PermissionSet, bool) {
	switch module {
	case ModuleDashboard:
		return m.Dashboard, true
	case ModuleContacts:
		return m.Contacts, true
	case ModuleLeads:
		return m.Leads, true
	case ModuleStudents:
		return m.Students, true
	case ModuleTasks:
		return m.Tasks, true
	case ModuleSettings:
		return m.Settings, true
	}
	return PermissionSet{}, false
}

// Profile bundles per-module CRUD rights and the context-switch flag.
type Profile struct {
	ID                     int               `json:"id"`
	Name                   string            `json:"name"`
	CanSwitchGlobalContext bool              `json:"can_switch_global_context"`
	Permissions            ModulePermissions `json:"permissions"`
}

// StudentProfileName is the profile bound to user accounts created by lead
// conversion.
const StudentProfileName = "Student Profile"
