// Package scoring defines the contract with the external lead-scoring
// collaborator. The collaborator is best-effort: callers wrap it so a
// failure degrades to a zero score and never reaches entity state.
package scoring

import (
	"context"

	"github.com/noah-isme/institute-crm/internal/models"
)

// Request is the outbound payload describing one lead.
type Request struct {
	LeadID        int
	Name          string
	Status        models.LeadStatus
	Source        string
	LastContacted string
	EnquiryFor    string
	ActivityNotes []string
}

// Result is the collaborator's answer: a score between 1 and 100 and a
// free-text justification.
type Result struct {
	Score     int    `json:"score"`
	Reasoning string `json:"reasoning"`
}

// FallbackReasoning accompanies the zero score returned when the
// collaborator fails.
const FallbackReasoning = "Could not generate AI score due to an error. Please try again later."

// Fallback is the degraded result used on any collaborator failure.
func Fallback() Result {
	return Result{Score: 0, Reasoning: FallbackReasoning}
}

// Scorer produces a score for a lead. Implementations may call out to an
// AI provider; the built-in one is a local heuristic.
type Scorer interface {
	ScoreLead(ctx context.Context, req Request) (Result, error)
}

// ScorerFunc adapts a function to the Scorer interface.
type ScorerFunc func(ctx context.Context, req Request) (Result, error)

// ScoreLead implements Scorer.
func (f ScorerFunc) ScoreLead(ctx context.Context, req Request) (Result, error) {
	return f(ctx, req)
}

// RequestForLead projects a lead onto the outbound payload, concatenating
// its activity notes.
func RequestForLead(lead models.Lead) Request {
	notes := make([]string, 0, len(lead.Activities))
	for _, a := range lead.Activities {
		notes = append(notes, a.Notes)
	}
	return Request{
		LeadID:        lead.ID,
		Name:          lead.Name,
		Status:        lead.Status,
		Source:        lead.Source,
		LastContacted: lead.LastContacted,
		EnquiryFor:    lead.EnquiryFor,
		ActivityNotes: notes,
	}
}
