package service

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/institute-crm/internal/models"
	"github.com/noah-isme/institute-crm/internal/scoring"
	"github.com/noah-isme/institute-crm/internal/seed"
	"github.com/noah-isme/institute-crm/internal/store"
)

// testEnv wires every service over one seeded store, the way the sim
// binary does, with a frozen clock.
type testEnv struct {
	store     *store.Store
	contexts  *ContextService
	auth      *AuthService
	leads     *LeadService
	contacts  *ContactService
	students  *StudentService
	tasks     *TaskService
	settings  *SettingsService
	dashboard *DashboardService
}

func testNow() time.Time {
	return time.Date(2024, 7, 24, 12, 0, 0, 0, time.UTC)
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	st := seed.Store()
	validate := validator.New()
	logger := zap.NewNop()

	contexts := NewContextService(st, logger)
	scoringSvc := NewScoringService(scoring.NewHeuristicScorer(testNow), logger, nil)

	return &testEnv{
		store:    st,
		contexts: contexts,
		auth:     NewAuthService(st, logger),
		leads: NewLeadService(LeadServiceParams{
			Store:     st,
			Contexts:  contexts,
			Scoring:   scoringSvc,
			Validator: validate,
			Logger:    logger,
			Now:       testNow,
		}),
		contacts: NewContactService(ContactServiceParams{
			Store:     st,
			Contexts:  contexts,
			Validator: validate,
			Logger:    logger,
			Now:       testNow,
		}),
		students:  NewStudentService(st, contexts, validate, logger),
		tasks:     NewTaskService(st, validate, logger),
		settings:  NewSettingsService(st, validate, logger, nil),
		dashboard: NewDashboardService(st, contexts, logger),
	}
}

// sessionFor builds a session from seed data for the given user id.
func (env *testEnv) sessionFor(t *testing.T, userID int) *Session {
	t.Helper()

	var user models.User
	found := false
	for _, u := range env.store.Users() {
		if u.ID == userID {
			user = u
			found = true
			break
		}
	}
	require.True(t, found, "seed user %d", userID)

	profile, err := env.store.ProfileByID(user.ProfileID)
	require.NoError(t, err)

	sess := &Session{User: user, Profile: profile}
	if user.TeamID != models.NoTeam {
		if team, err := env.store.TeamByID(user.TeamID); err == nil {
			sess.Team = &team
		}
	}
	return sess
}

func (env *testEnv) admin(t *testing.T) *Session      { return env.sessionFor(t, 1) }
func (env *testEnv) counselor(t *testing.T) *Session  { return env.sessionFor(t, 2) }
func (env *testEnv) telecaller(t *testing.T) *Session { return env.sessionFor(t, 3) }
func (env *testEnv) manager(t *testing.T) *Session    { return env.sessionFor(t, 4) }
func (env *testEnv) director(t *testing.T) *Session   { return env.sessionFor(t, 5) }

func intPtr(v int) *int { return &v }
