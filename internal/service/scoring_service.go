package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/institute-crm/internal/models"
	"github.com/noah-isme/institute-crm/internal/scoring"
)

// ScoringService fronts the external scoring collaborator. It is
// fire-and-forget from the caller's perspective: any failure, including a
// result outside the 1-100 contract, degrades to the zero-score fallback.
// It never touches entity state.
type ScoringService struct {
	scorer  scoring.Scorer
	logger  *zap.Logger
	metrics *MetricsService
}

// NewScoringService constructs the service. scorer may be nil, in which
// case every call degrades to the fallback.
func NewScoringService(scorer scoring.Scorer, logger *zap.Logger, metrics *MetricsService) *ScoringService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScoringService{scorer: scorer, logger: logger, metrics: metrics}
}

// ScoreLead asks the collaborator for a score. The returned result is
// always usable; failures are logged and counted, never propagated.
func (s *ScoringService) ScoreLead(ctx context.Context, lead models.Lead) scoring.Result {
	requestID := uuid.NewString()
	log := s.logger.With(
		zap.String("request_id", requestID),
		zap.Int("lead_id", lead.ID),
	)

	if s.scorer == nil {
		log.Warn("lead scoring unavailable, no provider configured")
		s.metrics.RecordScoringFailure()
		return scoring.Fallback()
	}

	result, err := s.scorer.ScoreLead(ctx, scoring.RequestForLead(lead))
	if err != nil {
		log.Warn("lead scoring failed", zap.Error(err))
		s.metrics.RecordScoringFailure()
		return scoring.Fallback()
	}
	if result.Score < 1 || result.Score > 100 {
		log.Warn("lead scoring returned out-of-range score", zap.Int("score", result.Score))
		s.metrics.RecordScoringFailure()
		return scoring.Fallback()
	}

	log.Info("lead scored", zap.Int("score", result.Score))
	return result
}
