// Package jobs runs the scheduled background work: periodic significance
// refreshes and cache warming.
package jobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/variantlab/abtest/ent"
	"github.com/variantlab/abtest/ent/experiment"
	"github.com/variantlab/abtest/pkg/analysis"
	"github.com/variantlab/abtest/pkg/assignment"
	"github.com/variantlab/abtest/pkg/cache"
)

// experimentTypes lists every type the cache warmer refreshes
var experimentTypes = []experiment.Type{
	experiment.TypeSearchAlgorithm,
	experiment.TypeUIComponent,
	experiment.TypePersonalization,
	experiment.TypeRecommendation,
	experiment.TypePricing,
	experiment.TypeContent,
	experiment.TypeFeatureFlag,
}

// CronManager manages scheduled jobs
type CronManager struct {
	cron        *cron.Cron
	db          *ent.Client
	analysis    *analysis.Service
	assignments *assignment.Service
	monitor     *HealthMonitor
	logger      *log.Logger
}

// NewCronManager creates a new cron manager
func NewCronManager(db *ent.Client, cacheClient *cache.Client, analysisService *analysis.Service, assignmentService *assignment.Service, logger *log.Logger) *CronManager {
	if logger == nil {
		logger = log.Default()
	}

	return &CronManager{
		cron:        cron.New(),
		db:          db,
		analysis:    analysisService,
		assignments: assignmentService,
		monitor:     NewHealthMonitor(db, cacheClient, logger),
		logger:      logger,
	}
}

// SetupJobs configures all scheduled jobs
func (cm *CronManager) SetupJobs() error {
	cm.logger.Println("Setting up cron jobs...")

	// Hourly: refresh significance numbers on running experiments so the
	// persisted confidence columns stay current for dashboards
	_, err := cm.cron.AddFunc("0 * * * *", func() {
		cm.logger.Println("🕐 Running hourly significance refresh...")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()

		if err := cm.RefreshSignificance(ctx); err != nil {
			cm.logger.Printf("❌ Significance refresh failed: %v", err)
			return
		}

		cm.logger.Println("✅ Significance refresh completed")
	})
	if err != nil {
		return err
	}

	// Every 5 minutes: re-warm the active-experiment cache per type so the
	// storefront path rarely pays the database round trip
	_, err = cm.cron.AddFunc("*/5 * * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		cm.WarmActiveCache(ctx)
	})
	if err != nil {
		return err
	}

	// Daily at 06:00: data health checks over running experiments
	_, err = cm.cron.AddFunc("0 6 * * *", func() {
		cm.logger.Println("🕐 Running experiment health checks...")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()

		if err := cm.monitor.RunHealthChecks(ctx); err != nil {
			cm.logger.Printf("❌ Health checks failed: %v", err)
			return
		}

		cm.logger.Println("✅ Health checks completed")
	})
	if err != nil {
		return err
	}

	cm.logger.Println("✅ Cron jobs configured")
	return nil
}

// RefreshSignificance recomputes significance for every running experiment.
// One failing experiment does not stop the others.
func (cm *CronManager) RefreshSignificance(ctx context.Context) error {
	ids, err := cm.db.Experiment.
		Query().
		Where(experiment.StatusEQ(experiment.StatusRunning)).
		IDs(ctx)
	if err != nil {
		return err
	}

	for _, id := range ids {
		if _, err := cm.analysis.CalculateStatisticalSignificance(ctx, id); err != nil {
			cm.logger.Printf("⚠️ Significance refresh failed for experiment %d: %v", id, err)
		}
	}

	return nil
}

// WarmActiveCache refreshes the cached active-experiment list per type
func (cm *CronManager) WarmActiveCache(ctx context.Context) {
	for _, typ := range experimentTypes {
		if _, err := cm.assignments.GetActiveExperiments(ctx, string(typ)); err != nil {
			cm.logger.Printf("⚠️ Cache warm failed for type %s: %v", typ, err)
		}
	}
}

// Start begins executing scheduled jobs
func (cm *CronManager) Start() {
	cm.cron.Start()
	cm.logger.Println("🚀 Cron scheduler started")
}

// Stop gracefully stops the cron scheduler
func (cm *CronManager) Stop() {
	ctx := cm.cron.Stop()
	<-ctx.Done()
	cm.logger.Println("🛑 Cron scheduler stopped")
}
