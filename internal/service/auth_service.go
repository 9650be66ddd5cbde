package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/noah-isme/institute-crm/internal/models"
	"github.com/noah-isme/institute-crm/internal/store"
	appErrors "github.com/noah-isme/institute-crm/pkg/errors"
)

// AuthService resolves the demo role-select login into a session.
type AuthService struct {
	store  *store.Store
	logger *zap.Logger
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(st *store.Store, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{store: st, logger: logger}
}

// Login picks the first user carrying the role and resolves their profile
// and team. There are no credentials; this is the role-select login of the
// demo application.
func (s *AuthService) Login(ctx context.Context, role models.Role) (*Session, error) {
	if !role.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown role")
	}
	user, err := s.store.FirstUserByRole(role)
	if err != nil {
		return nil, err
	}
	profile, err := s.store.ProfileByID(user.ProfileID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrNotFound.Code, "user has no profile")
	}

	sess := &Session{User: user, Profile: profile}
	if user.TeamID != models.NoTeam {
		if team, err := s.store.TeamByID(user.TeamID); err == nil {
			sess.Team = &team
		}
	}

	s.logger.Info("user logged in",
		zap.Int("user_id", user.ID),
		zap.String("role", string(user.Role)),
		zap.String("profile", profile.Name),
	)
	return sess, nil
}
