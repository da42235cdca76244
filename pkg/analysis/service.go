package analysis

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/variantlab/abtest/ent"
	"github.com/variantlab/abtest/ent/experiment"
	"github.com/variantlab/abtest/ent/experimentresult"
	"github.com/variantlab/abtest/pkg/domain"
	"github.com/variantlab/abtest/pkg/metrics"
)

// VariantSignificance holds the z-test outcome for one variant vs control.
// The control arm appears first with its raw counts and no test values.
type VariantSignificance struct {
	VariantID       int     `json:"variant_id"`
	VariantName     string  `json:"variant_name"`
	IsControl       bool    `json:"is_control"`
	IsWinner        bool    `json:"is_winner"`
	Impressions     int     `json:"impressions"`
	Conversions     int     `json:"conversions"`
	ConversionRate  float64 `json:"conversion_rate"`
	Improvement     float64 `json:"improvement"`
	ZScore          float64 `json:"z_score"`
	PValue          float64 `json:"p_value"`
	ConfidenceLevel float64 `json:"confidence_level"`
	Significant     bool    `json:"significant"`
}

// SignificanceReport holds the full significance analysis for an experiment
type SignificanceReport struct {
	ExperimentID   int                   `json:"experiment_id"`
	ExperimentName string                `json:"experiment_name"`
	Status         string                `json:"status"`
	Results        []VariantSignificance `json:"results"`
}

// CompletionEstimate projects when an experiment will reach the sample size
// needed to detect its minimum detectable effect
type CompletionEstimate struct {
	ExperimentID            int       `json:"experiment_id"`
	ExperimentName          string    `json:"experiment_name"`
	BaselineConversionRate  float64   `json:"baseline_conversion_rate"`
	MinDetectableEffect     float64   `json:"min_detectable_effect"`
	RequiredPerVariant      int       `json:"required_sample_size_per_variant"`
	RequiredTotal           int       `json:"required_sample_size_total"`
	CurrentImpressions      int       `json:"current_impressions"`
	RemainingImpressions    int       `json:"remaining_impressions"`
	EstimatedDaysRemaining  int       `json:"estimated_days_remaining"`
	EstimatedCompletionDate time.Time `json:"estimated_completion_date"`
}

// MetricPoint is one time bucket for one variant
type MetricPoint struct {
	Period         string    `json:"period"`
	Start          time.Time `json:"start"`
	Impressions    int       `json:"impressions"`
	Conversions    int       `json:"conversions"`
	ConversionRate float64   `json:"conversion_rate"`
}

// VariantSeries is the bucketed metric history of one variant
type VariantSeries struct {
	VariantID   int           `json:"variant_id"`
	VariantName string        `json:"variant_name"`
	IsControl   bool          `json:"is_control"`
	Points      []MetricPoint `json:"points"`
}

// TimeSeriesReport holds per-variant metrics bucketed over time
type TimeSeriesReport struct {
	ExperimentID int             `json:"experiment_id"`
	Interval     string          `json:"interval"`
	Variants     []VariantSeries `json:"variants"`
}

// Service computes statistical reports over tracked experiment results
type Service struct {
	db      *ent.Client
	metrics *metrics.Metrics
}

// NewService creates a new analysis service. Metrics may be nil.
func NewService(db *ent.Client, m *metrics.Metrics) *Service {
	return &Service{db: db, metrics: m}
}

// CalculateStatisticalSignificance runs the two-proportion z-test of every
// variant against the control arm and persists the confidence level and
// improvement rate on the variant rows
func (s *Service) CalculateStatisticalSignificance(ctx context.Context, experimentID int) (*SignificanceReport, error) {
	exp, err := s.getExperiment(ctx, experimentID)
	if err != nil {
		return nil, err
	}

	control := findControl(exp.Edges.Variants)
	if control == nil {
		return nil, domain.NewPreconditionFailedError("experiment has no control variant")
	}

	controlImpressions, controlConversions, err := s.variantCounts(ctx, control.ID)
	if err != nil {
		return nil, err
	}
	controlRate := rate(controlConversions, controlImpressions)

	report := &SignificanceReport{
		ExperimentID:   exp.ID,
		ExperimentName: exp.Name,
		Status:         string(exp.Status),
		Results: []VariantSignificance{{
			VariantID:      control.ID,
			VariantName:    control.Name,
			IsControl:      true,
			IsWinner:       control.IsWinner,
			Impressions:    controlImpressions,
			Conversions:    controlConversions,
			ConversionRate: controlRate,
			PValue:         1,
		}},
	}

	for _, v := range exp.Edges.Variants {
		if v.IsControl {
			continue
		}

		impressions, conversions, err := s.variantCounts(ctx, v.ID)
		if err != nil {
			return nil, err
		}

		test := TwoProportionZTest(controlConversions, controlImpressions, conversions, impressions)
		variantRate := rate(conversions, impressions)

		improvement := 0.0
		if controlRate > 0 {
			improvement = (variantRate - controlRate) / controlRate
		}

		if _, err := s.db.ExperimentVariant.
			UpdateOneID(v.ID).
			SetConfidenceLevel(test.ConfidenceLevel).
			SetImprovementRate(improvement).
			Save(ctx); err != nil {
			return nil, fmt.Errorf("failed to persist analysis for variant %d: %w", v.ID, err)
		}

		report.Results = append(report.Results, VariantSignificance{
			VariantID:       v.ID,
			VariantName:     v.Name,
			IsWinner:        v.IsWinner,
			Impressions:     impressions,
			Conversions:     conversions,
			ConversionRate:  variantRate,
			Improvement:     improvement,
			ZScore:          test.ZScore,
			PValue:          test.PValue,
			ConfidenceLevel: test.ConfidenceLevel,
			Significant:     test.Significant,
		})
	}

	if s.metrics != nil {
		s.metrics.RecordAnalysisRun()
	}

	return report, nil
}

// EstimateTimeToCompletion projects the days left until the experiment has
// enough impressions, given the expected daily traffic across all variants
func (s *Service) EstimateTimeToCompletion(ctx context.Context, experimentID, dailyTraffic int) (*CompletionEstimate, error) {
	if dailyTraffic <= 0 {
		return nil, domain.NewValidationError("dailyTraffic must be greater than zero")
	}

	exp, err := s.getExperiment(ctx, experimentID)
	if err != nil {
		return nil, err
	}

	control := findControl(exp.Edges.Variants)
	if control == nil {
		return nil, domain.NewPreconditionFailedError("experiment has no control variant")
	}

	controlImpressions, controlConversions, err := s.variantCounts(ctx, control.ID)
	if err != nil {
		return nil, err
	}

	baseline := rate(controlConversions, controlImpressions)
	if baseline == 0 {
		return nil, domain.NewPreconditionFailedError("control variant has no conversions yet, cannot estimate completion")
	}

	mde := DefaultMinDetectableEffect
	if exp.MinDetectableEffect != nil && *exp.MinDetectableEffect > 0 {
		mde = *exp.MinDetectableEffect
	}

	required := RequiredSampleSize(baseline, mde, DefaultSignificanceLevel, DefaultPower)
	requiredTotal := required * len(exp.Edges.Variants)

	current := 0
	for _, v := range exp.Edges.Variants {
		impressions, _, err := s.variantCounts(ctx, v.ID)
		if err != nil {
			return nil, err
		}
		current += impressions
	}

	remaining := requiredTotal - current
	if remaining < 0 {
		remaining = 0
	}

	days := int(math.Ceil(float64(remaining) / float64(dailyTraffic)))

	return &CompletionEstimate{
		ExperimentID:            exp.ID,
		ExperimentName:          exp.Name,
		BaselineConversionRate:  baseline,
		MinDetectableEffect:     mde,
		RequiredPerVariant:      required,
		RequiredTotal:           requiredTotal,
		CurrentImpressions:      current,
		RemainingImpressions:    remaining,
		EstimatedDaysRemaining:  days,
		EstimatedCompletionDate: time.Now().AddDate(0, 0, days),
	}, nil
}

// MetricsOverTime buckets impressions and conversions per variant by day,
// week, or month. Buckets with no events are zero-filled so charts have no
// gaps.
func (s *Service) MetricsOverTime(ctx context.Context, experimentID int, interval string) (*TimeSeriesReport, error) {
	if interval != "day" && interval != "week" && interval != "month" {
		return nil, domain.NewValidationError(fmt.Sprintf("invalid interval: %s (expected day, week, or month)", interval))
	}

	exp, err := s.getExperiment(ctx, experimentID)
	if err != nil {
		return nil, err
	}

	report := &TimeSeriesReport{
		ExperimentID: exp.ID,
		Interval:     interval,
		Variants:     make([]VariantSeries, 0, len(exp.Edges.Variants)),
	}

	variantIDs := make([]int, 0, len(exp.Edges.Variants))
	for _, v := range exp.Edges.Variants {
		variantIDs = append(variantIDs, v.ID)
	}

	results, err := s.db.ExperimentResult.
		Query().
		Where(
			experimentresult.VariantIDIn(variantIDs...),
			experimentresult.ResultTypeIn(
				experimentresult.ResultTypeImpression,
				experimentresult.ResultTypeConversion,
			),
		).
		Order(ent.Asc(experimentresult.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query results: %w", err)
	}

	if len(results) == 0 {
		for _, v := range exp.Edges.Variants {
			report.Variants = append(report.Variants, VariantSeries{
				VariantID:   v.ID,
				VariantName: v.Name,
				IsControl:   v.IsControl,
				Points:      []MetricPoint{},
			})
		}
		return report, nil
	}

	type bucketCounts struct {
		impressions int
		conversions int
	}

	counts := make(map[int]map[int64]*bucketCounts)
	for _, r := range results {
		bucket := truncate(r.CreatedAt, interval).Unix()
		if counts[r.VariantID] == nil {
			counts[r.VariantID] = make(map[int64]*bucketCounts)
		}
		bc := counts[r.VariantID][bucket]
		if bc == nil {
			bc = &bucketCounts{}
			counts[r.VariantID][bucket] = bc
		}
		switch r.ResultType {
		case experimentresult.ResultTypeImpression:
			bc.impressions++
		case experimentresult.ResultTypeConversion:
			bc.conversions++
		}
	}

	first := truncate(results[0].CreatedAt, interval)
	last := truncate(results[len(results)-1].CreatedAt, interval)

	for _, v := range exp.Edges.Variants {
		series := VariantSeries{
			VariantID:   v.ID,
			VariantName: v.Name,
			IsControl:   v.IsControl,
			Points:      []MetricPoint{},
		}

		for bucket := first; !bucket.After(last); bucket = advance(bucket, interval) {
			point := MetricPoint{
				Period: label(bucket, interval),
				Start:  bucket,
			}
			if bc := counts[v.ID][bucket.Unix()]; bc != nil {
				point.Impressions = bc.impressions
				point.Conversions = bc.conversions
				point.ConversionRate = rate(bc.conversions, bc.impressions)
			}
			series.Points = append(series.Points, point)
		}

		report.Variants = append(report.Variants, series)
	}

	return report, nil
}

func (s *Service) getExperiment(ctx context.Context, id int) (*ent.Experiment, error) {
	exp, err := s.db.Experiment.
		Query().
		Where(experiment.IDEQ(id)).
		WithVariants().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("experiment")
		}
		return nil, fmt.Errorf("failed to get experiment: %w", err)
	}
	return exp, nil
}

// variantCounts returns impression and conversion counts for a variant
func (s *Service) variantCounts(ctx context.Context, variantID int) (impressions, conversions int, err error) {
	impressions, err = s.db.ExperimentResult.
		Query().
		Where(
			experimentresult.VariantIDEQ(variantID),
			experimentresult.ResultTypeEQ(experimentresult.ResultTypeImpression),
		).
		Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count impressions: %w", err)
	}

	conversions, err = s.db.ExperimentResult.
		Query().
		Where(
			experimentresult.VariantIDEQ(variantID),
			experimentresult.ResultTypeEQ(experimentresult.ResultTypeConversion),
		).
		Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count conversions: %w", err)
	}

	return impressions, conversions, nil
}

func findControl(variants []*ent.ExperimentVariant) *ent.ExperimentVariant {
	for _, v := range variants {
		if v.IsControl {
			return v
		}
	}
	return nil
}

func truncate(t time.Time, interval string) time.Time {
	switch interval {
	case "week":
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
		monday := (int(day.Weekday()) + 6) % 7
		return day.AddDate(0, 0, -monday)
	case "month":
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	default:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	}
}

func advance(t time.Time, interval string) time.Time {
	switch interval {
	case "week":
		return t.AddDate(0, 0, 7)
	case "month":
		return t.AddDate(0, 1, 0)
	default:
		return t.AddDate(0, 0, 1)
	}
}

func label(t time.Time, interval string) string {
	if interval == "month" {
		return t.Format("2006-01")
	}
	return t.Format("2006-01-02")
}
