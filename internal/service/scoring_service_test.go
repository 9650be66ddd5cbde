package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/institute-crm/internal/models"
	"github.com/noah-isme/institute-crm/internal/scoring"
	"github.com/noah-isme/institute-crm/internal/seed"
)

func qualifiedLead() models.Lead {
	for _, l := range seed.Data().Leads {
		if l.Status == models.LeadQualified {
			return l
		}
	}
	panic("no qualified lead in seed data")
}

func TestScoringServicePassesResultThrough(t *testing.T) {
	scorer := scoring.ScorerFunc(func(ctx context.Context, req scoring.Request) (scoring.Result, error) {
		assert.Equal(t, 3, req.LeadID)
		return scoring.Result{Score: 77, Reasoning: "strong intent"}, nil
	})
	svc := NewScoringService(scorer, nil, nil)

	result := svc.ScoreLead(context.Background(), qualifiedLead())
	assert.Equal(t, 77, result.Score)
	assert.Equal(t, "strong intent", result.Reasoning)
}

func TestScoringServiceDegradesToFallback(t *testing.T) {
	lead := qualifiedLead()

	t.Run("no scorer configured", func(t *testing.T) {
		svc := NewScoringService(nil, nil, nil)
		assert.Equal(t, scoring.Fallback(), svc.ScoreLead(context.Background(), lead))
	})

	t.Run("scorer error", func(t *testing.T) {
		scorer := scoring.ScorerFunc(func(ctx context.Context, req scoring.Request) (scoring.Result, error) {
			return scoring.Result{}, errors.New("provider unreachable")
		})
		svc := NewScoringService(scorer, nil, nil)
		assert.Equal(t, scoring.Fallback(), svc.ScoreLead(context.Background(), lead))
	})

	t.Run("score out of range", func(t *testing.T) {
		for _, score := range []int{0, -5, 101, 1000} {
			scorer := scoring.ScorerFunc(func(ctx context.Context, req scoring.Request) (scoring.Result, error) {
				return scoring.Result{Score: score, Reasoning: "looks off"}, nil
			})
			svc := NewScoringService(scorer, nil, nil)
			result := svc.ScoreLead(context.Background(), lead)
			assert.Equal(t, scoring.Fallback(), result, "score %d", score)
		}
	})
}

func TestScoringServiceHeuristicEndToEnd(t *testing.T) {
	svc := NewScoringService(scoring.NewHeuristicScorer(testNow), nil, nil)

	result := svc.ScoreLead(context.Background(), qualifiedLead())
	require.GreaterOrEqual(t, result.Score, 1)
	require.LessOrEqual(t, result.Score, 100)
	assert.NotEqual(t, scoring.FallbackReasoning, result.Reasoning)
}
