// Package authz is the single authority consulted before any create,
// update, delete or context-switch affordance. It decides CRUD rights
// only; record visibility is the scope package's concern.
package authz

import "github.com/noah-isme/institute-crm/internal/models"

// CanPerform reports whether the profile grants the action on the module.
// It fails closed: a nil profile, an unknown module or an unknown action
// all deny. It never panics.
func CanPerform(profile *models.Profile, module models.Module, action models.Action) bool {
	if profile == nil {
		return false
	}
	perms, ok := profile.Permissions.ForModule(module)
	if !ok {
		return false
	}
	return perms.Allows(action)
}

// CanSwitchContext reports whether the profile may change the global
// institution/year/session selection.
func CanSwitchContext(profile *models.Profile) bool {
	return profile != nil && profile.CanSwitchGlobalContext
}
