// crm-sim boots the CRM core with the demo dataset and walks one scripted
// session, standing in for the UI shell the module is normally embedded
// in. It takes no arguments.
package main

import (
	"context"
	"log"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/institute-crm/internal/models"
	"github.com/noah-isme/institute-crm/internal/scoring"
	"github.com/noah-isme/institute-crm/internal/seed"
	"github.com/noah-isme/institute-crm/internal/service"
	"github.com/noah-isme/institute-crm/internal/store"
	"github.com/noah-isme/institute-crm/pkg/config"
	"github.com/noah-isme/institute-crm/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	var st *store.Store
	if cfg.Seed.Demo {
		st = seed.Store()
	} else {
		st = store.New()
	}

	var metrics *service.MetricsService
	if cfg.Metrics.Enabled {
		metrics = service.NewMetricsService()
	}

	var scorer scoring.Scorer
	if cfg.Scoring.Enabled {
		scorer = scoring.NewHeuristicScorer(nil)
	}

	validate := validator.New()
	contexts := service.NewContextService(st, logr)
	auth := service.NewAuthService(st, logr)
	scoringSvc := service.NewScoringService(scorer, logr, metrics)
	leads := service.NewLeadService(service.LeadServiceParams{
		Store:     st,
		Contexts:  contexts,
		Scoring:   scoringSvc,
		Validator: validate,
		Logger:    logr,
		Metrics:   metrics,
	})
	dashboard := service.NewDashboardService(st, contexts, logr)

	ctx := context.Background()

	sess, err := auth.Login(ctx, models.RoleAdmin)
	if err != nil {
		logr.Fatal("login failed", zap.Error(err))
	}

	stats, err := dashboard.Stats(ctx, sess)
	if err != nil {
		logr.Fatal("dashboard failed", zap.Error(err))
	}
	logr.Info("dashboard before conversion", zap.Any("stats", stats))

	visible, err := leads.List(ctx, sess)
	if err != nil {
		logr.Fatal("lead listing failed", zap.Error(err))
	}
	for _, l := range visible {
		result, err := leads.Score(ctx, sess, l.ID)
		if err != nil {
			logr.Warn("scoring failed", zap.Int("lead_id", l.ID), zap.Error(err))
			continue
		}
		logr.Info("lead score",
			zap.Int("lead_id", l.ID),
			zap.String("name", l.Name),
			zap.Int("score", result.Score),
			zap.String("reasoning", result.Reasoning),
		)
	}

	for _, l := range st.Leads() {
		if l.Status != models.LeadQualified {
			continue
		}
		converted, err := leads.Convert(ctx, sess, l.ID)
		if err != nil {
			logr.Warn("conversion failed", zap.Int("lead_id", l.ID), zap.Error(err))
			continue
		}
		logr.Info("converted lead",
			zap.Int("lead_id", converted.Lead.ID),
			zap.Int("student_id", converted.Student.ID),
			zap.String("course", converted.Student.Course.Name),
		)
	}

	stats, err = dashboard.Stats(ctx, sess)
	if err != nil {
		logr.Fatal("dashboard failed", zap.Error(err))
	}
	logr.Info("dashboard after conversion", zap.Any("stats", stats))
}
