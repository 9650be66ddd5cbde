package service

import (
	"github.com/noah-isme/institute-crm/internal/authz"
	"github.com/noah-isme/institute-crm/internal/models"
)

// Session is the authenticated actor: the user, their resolved profile and
// their team, if any. There is no token or expiry; dropping the value is
// logging out. Services take the session explicitly so no operation relies
// on hidden global state.
type Session struct {
	User    models.User
	Profile models.Profile
	Team    *models.Team
}

// Can reports whether the session's profile grants the action. A nil
// session denies everything.
func (s *Session) Can(module models.Module, action models.Action) bool {
	if s == nil {
		return false
	}
	return authz.CanPerform(&s.Profile, module, action)
}

// CanSwitchContext reports whether the session may change the global
// context selection.
func (s *Session) CanSwitchContext() bool {
	if s == nil {
		return false
	}
	return authz.CanSwitchContext(&s.Profile)
}
