package jobs

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/variantlab/abtest/ent"
	"github.com/variantlab/abtest/ent/experiment"
	"github.com/variantlab/abtest/ent/experimentassignment"
	"github.com/variantlab/abtest/ent/experimentresult"
	"github.com/variantlab/abtest/pkg/cache"
)

// srmZThreshold is the |z| above which a traffic split counts as a sample
// ratio mismatch. Three sigma keeps the false alarm rate around 0.3%.
const srmZThreshold = 3.0

// SampleRatioAlert flags an experiment whose observed traffic split deviates
// from the expected even split across variants
type SampleRatioAlert struct {
	ExperimentID   int     `json:"experiment_id"`
	ExperimentName string  `json:"experiment_name"`
	VariantID      int     `json:"variant_id"`
	VariantName    string  `json:"variant_name"`
	Expected       float64 `json:"expected"`
	Observed       int     `json:"observed"`
	Total          int     `json:"total"`
	ZScore         float64 `json:"z_score"`
}

// StalledExperimentAlert flags a running experiment that stopped receiving events
type StalledExperimentAlert struct {
	ExperimentID   int        `json:"experiment_id"`
	ExperimentName string     `json:"experiment_name"`
	LastEventAt    *time.Time `json:"last_event_at"`
}

// HealthMonitor watches running experiments for data quality problems:
// skewed traffic splits and experiments that silently stopped tracking.
type HealthMonitor struct {
	db     *ent.Client
	cache  *cache.Client
	logger *log.Logger
}

// NewHealthMonitor creates a new health monitor instance
func NewHealthMonitor(db *ent.Client, cacheClient *cache.Client, logger *log.Logger) *HealthMonitor {
	if logger == nil {
		logger = log.Default()
	}

	return &HealthMonitor{
		db:     db,
		cache:  cacheClient,
		logger: logger,
	}
}

// DetectSampleRatioMismatch checks every running experiment for a traffic
// split that deviates from the expected even split. A mismatch usually means
// a broken assignment path rather than real visitor behavior, so the numbers
// of an affected experiment cannot be trusted.
func (m *HealthMonitor) DetectSampleRatioMismatch(ctx context.Context) ([]SampleRatioAlert, error) {
	experiments, err := m.db.Experiment.Query().
		Where(experiment.StatusEQ(experiment.StatusRunning)).
		WithVariants().
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query running experiments: %w", err)
	}

	var alerts []SampleRatioAlert
	for _, exp := range experiments {
		variants := exp.Edges.Variants
		if len(variants) < 2 {
			continue
		}

		counts := make([]int, len(variants))
		total := 0
		for i, v := range variants {
			count, err := m.db.ExperimentAssignment.Query().
				Where(experimentassignment.VariantIDEQ(v.ID)).
				Count(ctx)
			if err != nil {
				return nil, fmt.Errorf("failed to count assignments for variant %d: %w", v.ID, err)
			}
			counts[i] = count
			total += count
		}

		// Too little traffic for the normal approximation to mean anything
		if total < 100 {
			continue
		}

		share := 1.0 / float64(len(variants))
		expected := float64(total) * share
		se := math.Sqrt(float64(total) * share * (1 - share))

		for i, v := range variants {
			z := (float64(counts[i]) - expected) / se
			if math.Abs(z) > srmZThreshold {
				alerts = append(alerts, SampleRatioAlert{
					ExperimentID:   exp.ID,
					ExperimentName: exp.Name,
					VariantID:      v.ID,
					VariantName:    v.Name,
					Expected:       expected,
					Observed:       counts[i],
					Total:          total,
					ZScore:         z,
				})
			}
		}
	}

	m.logger.Printf("Sample ratio check: %d experiments inspected, %d alerts", len(experiments), len(alerts))
	return alerts, nil
}

// DetectStalledExperiments finds running experiments whose most recent tracked
// event is older than maxAge. These usually mean the client integration was
// removed while the experiment was left running.
func (m *HealthMonitor) DetectStalledExperiments(ctx context.Context, maxAge time.Duration) ([]StalledExperimentAlert, error) {
	experiments, err := m.db.Experiment.Query().
		Where(experiment.StatusEQ(experiment.StatusRunning)).
		WithVariants().
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query running experiments: %w", err)
	}

	cutoff := time.Now().Add(-maxAge)

	var alerts []StalledExperimentAlert
	for _, exp := range experiments {
		// Give fresh experiments time to collect their first events
		if exp.StartDate != nil && exp.StartDate.After(cutoff) {
			continue
		}

		variantIDs := make([]int, 0, len(exp.Edges.Variants))
		for _, v := range exp.Edges.Variants {
			variantIDs = append(variantIDs, v.ID)
		}
		if len(variantIDs) == 0 {
			continue
		}

		last, err := m.db.ExperimentResult.Query().
			Where(experimentresult.VariantIDIn(variantIDs...)).
			Order(ent.Desc(experimentresult.FieldCreatedAt)).
			First(ctx)
		if err != nil {
			if !ent.IsNotFound(err) {
				return nil, fmt.Errorf("failed to query latest event for experiment %d: %w", exp.ID, err)
			}
			alerts = append(alerts, StalledExperimentAlert{
				ExperimentID:   exp.ID,
				ExperimentName: exp.Name,
			})
			continue
		}

		if last.CreatedAt.Before(cutoff) {
			lastAt := last.CreatedAt
			alerts = append(alerts, StalledExperimentAlert{
				ExperimentID:   exp.ID,
				ExperimentName: exp.Name,
				LastEventAt:    &lastAt,
			})
		}
	}

	m.logger.Printf("Stalled experiment check: %d experiments inspected, %d alerts", len(experiments), len(alerts))
	return alerts, nil
}

// RunHealthChecks runs both checks and logs every new alert once. Alerts are
// deduplicated through the cache so a persistent problem does not spam the
// logs on every run.
func (m *HealthMonitor) RunHealthChecks(ctx context.Context) error {
	srmAlerts, err := m.DetectSampleRatioMismatch(ctx)
	if err != nil {
		return err
	}
	for _, alert := range srmAlerts {
		key := m.alertKey("srm", alert.ExperimentID)
		if m.alreadyAlerted(ctx, key) {
			continue
		}
		m.logger.Printf("⚠️ Sample ratio mismatch on experiment %d (%s): variant %q got %d of %d assignments (expected %.0f, z=%.2f)",
			alert.ExperimentID, alert.ExperimentName, alert.VariantName, alert.Observed, alert.Total, alert.Expected, alert.ZScore)
		m.markAlerted(ctx, key)
	}

	stalledAlerts, err := m.DetectStalledExperiments(ctx, 48*time.Hour)
	if err != nil {
		return err
	}
	for _, alert := range stalledAlerts {
		key := m.alertKey("stalled", alert.ExperimentID)
		if m.alreadyAlerted(ctx, key) {
			continue
		}
		if alert.LastEventAt != nil {
			m.logger.Printf("⚠️ Experiment %d (%s) is running but last received an event at %s",
				alert.ExperimentID, alert.ExperimentName, alert.LastEventAt.Format(time.RFC3339))
		} else {
			m.logger.Printf("⚠️ Experiment %d (%s) is running but has never received an event",
				alert.ExperimentID, alert.ExperimentName)
		}
		m.markAlerted(ctx, key)
	}

	return nil
}

func (m *HealthMonitor) alertKey(kind string, experimentID int) string {
	return fmt.Sprintf("health_alert:%s:%d", kind, experimentID)
}

func (m *HealthMonitor) alreadyAlerted(ctx context.Context, key string) bool {
	if m.cache == nil {
		return false
	}
	exists, err := m.cache.Exists(ctx, key)
	if err != nil {
		m.logger.Printf("Warning: failed to check alert status for %s: %v", key, err)
		return false
	}
	return exists
}

func (m *HealthMonitor) markAlerted(ctx context.Context, key string) {
	if m.cache == nil {
		return
	}
	if err := m.cache.Set(ctx, key, "alerted", 24*time.Hour); err != nil {
		m.logger.Printf("Warning: failed to mark alert %s: %v", key, err)
	}
}
