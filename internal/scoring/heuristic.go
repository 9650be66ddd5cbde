package scoring

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/noah-isme/institute-crm/internal/models"
)

const dateLayout = "2006-01-02"

// HeuristicScorer is the built-in provider: a deterministic rule set over
// status, source, contact recency and engagement. It stands in for the
// remote AI collaborator and never performs I/O.
type HeuristicScorer struct {
	now func() time.Time
}

// NewHeuristicScorer constructs the scorer. now may be nil.
func NewHeuristicScorer(now func() time.Time) *HeuristicScorer {
	if now == nil {
		now = time.Now
	}
	return &HeuristicScorer{now: now}
}

// ScoreLead implements Scorer.
func (h *HeuristicScorer) ScoreLead(ctx context.Context, req Request) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	score := 0
	reasons := make([]string, 0, 4)

	switch req.Status {
	case models.LeadQualified:
		score += 70
		reasons = append(reasons, "lead is at the enquiry stage")
	case models.LeadContacted:
		score += 50
		reasons = append(reasons, "lead has been contacted")
	case models.LeadNew:
		score += 35
		reasons = append(reasons, "lead is fresh and untouched")
	case models.LeadConverted:
		score += 95
		reasons = append(reasons, "lead already converted")
	case models.LeadLost:
		score += 5
		reasons = append(reasons, "lead was lost")
	default:
		return Result{}, fmt.Errorf("unknown lead status %q", req.Status)
	}

	switch req.Source {
	case "Referral":
		score += 15
		reasons = append(reasons, "referrals convert well")
	case "Education Fair":
		score += 10
		reasons = append(reasons, "fair walk-ins show intent")
	case "Website", "Social Media":
		score += 5
		reasons = append(reasons, "inbound digital enquiry")
	}

	if req.LastContacted != "" {
		last, err := time.Parse(dateLayout, req.LastContacted)
		if err != nil {
			return Result{}, fmt.Errorf("parse last contacted: %w", err)
		}
		days := int(h.now().Sub(last).Hours() / 24)
		switch {
		case days <= 3:
			score += 10
			reasons = append(reasons, "contacted within the last three days")
		case days <= 7:
			score += 5
			reasons = append(reasons, "contacted within the last week")
		case days > 30:
			score -= 10
			reasons = append(reasons, "gone cold, no contact in over a month")
		}
	}

	engagement := 3 * len(req.ActivityNotes)
	if engagement > 15 {
		engagement = 15
	}
	if engagement > 0 {
		score += engagement
		reasons = append(reasons, fmt.Sprintf("%d follow-up activities on record", len(req.ActivityNotes)))
	}

	if score < 1 {
		score = 1
	}
	if score > 100 {
		score = 100
	}

	return Result{Score: score, Reasoning: strings.Join(reasons, "; ")}, nil
}
