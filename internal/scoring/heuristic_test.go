package scoring

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/institute-crm/internal/models"
)

func fixedNow() time.Time {
	return time.Date(2024, 7, 24, 12, 0, 0, 0, time.UTC)
}

func TestHeuristicScorerIsDeterministicAndInRange(t *testing.T) {
	scorer := NewHeuristicScorer(fixedNow)
	req := Request{
		LeadID:        3,
		Name:          "Catherine D'Souza",
		Status:        models.LeadQualified,
		Source:        "Social Media",
		LastContacted: "2024-07-22",
		EnquiryFor:    "Data Science Certification",
		ActivityNotes: []string{"Campus visit scheduled for this Friday."},
	}

	first, err := scorer.ScoreLead(context.Background(), req)
	require.NoError(t, err)
	second, err := scorer.ScoreLead(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.GreaterOrEqual(t, first.Score, 1)
	assert.LessOrEqual(t, first.Score, 100)
	assert.NotEmpty(t, first.Reasoning)
	// qualified 70 + social media 5 + recent contact 10 + one activity 3
	assert.Equal(t, 88, first.Score)
}

func TestHeuristicScorerStaleLeadsScoreLower(t *testing.T) {
	scorer := NewHeuristicScorer(fixedNow)

	fresh, err := scorer.ScoreLead(context.Background(), Request{Status: models.LeadContacted, LastContacted: "2024-07-23"})
	require.NoError(t, err)
	stale, err := scorer.ScoreLead(context.Background(), Request{Status: models.LeadContacted, LastContacted: "2024-05-01"})
	require.NoError(t, err)

	assert.Greater(t, fresh.Score, stale.Score)
}

func TestHeuristicScorerRejectsBadInput(t *testing.T) {
	scorer := NewHeuristicScorer(fixedNow)

	_, err := scorer.ScoreLead(context.Background(), Request{Status: models.LeadStatus("Unknown")})
	assert.Error(t, err)

	_, err = scorer.ScoreLead(context.Background(), Request{Status: models.LeadNew, LastContacted: "yesterday"})
	assert.Error(t, err)
}

func TestHeuristicScorerHonoursContextCancellation(t *testing.T) {
	scorer := NewHeuristicScorer(fixedNow)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := scorer.ScoreLead(ctx, Request{Status: models.LeadNew})
	assert.Error(t, err)
}

func TestRequestForLeadConcatenatesActivityNotes(t *testing.T) {
	lead := models.Lead{
		ID:     2,
		Name:   "Bhavin Patel",
		Status: models.LeadContacted,
		Activities: []models.Activity{
			{ID: 1, Notes: "first call"},
			{ID: 2, Notes: "follow-up email"},
		},
	}

	req := RequestForLead(lead)
	assert.Equal(t, 2, req.LeadID)
	assert.Equal(t, []string{"first call", "follow-up email"}, req.ActivityNotes)
}

func TestFallbackIsZeroScore(t *testing.T) {
	fb := Fallback()
	assert.Equal(t, 0, fb.Score)
	assert.Equal(t, FallbackReasoning, fb.Reasoning)
}
