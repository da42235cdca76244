package analysis

import (
	"context"
	"testing"
	"time"

	"github.com/variantlab/abtest/ent"
	"github.com/variantlab/abtest/ent/enttest"
	"github.com/variantlab/abtest/ent/experiment"
	"github.com/variantlab/abtest/ent/experimentresult"
	"github.com/variantlab/abtest/pkg/domain"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (*ent.Client, func()) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	return client, func() { client.Close() }
}

type testExperiment struct {
	exp       *ent.Experiment
	control   *ent.ExperimentVariant
	treatment *ent.ExperimentVariant
}

func createTestExperiment(t *testing.T, client *ent.Client, withControl bool) testExperiment {
	ctx := context.Background()

	exp, err := client.Experiment.
		Create().
		SetName("Checkout Button Test").
		SetType(experiment.TypeUIComponent).
		SetStatus(experiment.StatusRunning).
		Save(ctx)
	require.NoError(t, err)

	var control *ent.ExperimentVariant
	if withControl {
		control, err = client.ExperimentVariant.
			Create().
			SetExperimentID(exp.ID).
			SetName("control").
			SetIsControl(true).
			Save(ctx)
		require.NoError(t, err)
	}

	treatment, err := client.ExperimentVariant.
		Create().
		SetExperimentID(exp.ID).
		SetName("treatment").
		Save(ctx)
	require.NoError(t, err)

	return testExperiment{exp: exp, control: control, treatment: treatment}
}

func seedCounts(t *testing.T, client *ent.Client, variantID, impressions, conversions int) {
	ctx := context.Background()
	for i := 0; i < impressions; i++ {
		_, err := client.ExperimentResult.
			Create().
			SetVariantID(variantID).
			SetResultType(experimentresult.ResultTypeImpression).
			Save(ctx)
		require.NoError(t, err)
	}
	for i := 0; i < conversions; i++ {
		_, err := client.ExperimentResult.
			Create().
			SetVariantID(variantID).
			SetResultType(experimentresult.ResultTypeConversion).
			Save(ctx)
		require.NoError(t, err)
	}
}

func TestCalculateStatisticalSignificance(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := NewService(client, nil)
	ctx := context.Background()

	t.Run("Success - Clear lift marks treatment significant", func(t *testing.T) {
		te := createTestExperiment(t, client, true)
		seedCounts(t, client, te.control.ID, 100, 10)
		seedCounts(t, client, te.treatment.ID, 100, 20)

		report, err := service.CalculateStatisticalSignificance(ctx, te.exp.ID)
		require.NoError(t, err)
		require.Len(t, report.Results, 2)

		controlRes := report.Results[0]
		assert.True(t, controlRes.IsControl)
		assert.InDelta(t, 0.10, controlRes.ConversionRate, 1e-9)

		treatmentRes := report.Results[1]
		assert.InDelta(t, 0.20, treatmentRes.ConversionRate, 1e-9)
		assert.InDelta(t, 1.980, treatmentRes.ZScore, 0.001)
		assert.True(t, treatmentRes.Significant)
		assert.InDelta(t, 1.0, treatmentRes.Improvement, 1e-9)

		// Confidence and improvement are persisted on the variant row
		v, err := client.ExperimentVariant.Get(ctx, te.treatment.ID)
		require.NoError(t, err)
		require.NotNil(t, v.ConfidenceLevel)
		assert.Greater(t, *v.ConfidenceLevel, 95.0)
		require.NotNil(t, v.ImprovementRate)
		assert.InDelta(t, 1.0, *v.ImprovementRate, 1e-9)
	})

	t.Run("Success - Identical rates are not significant", func(t *testing.T) {
		te := createTestExperiment(t, client, true)
		seedCounts(t, client, te.control.ID, 50, 5)
		seedCounts(t, client, te.treatment.ID, 50, 5)

		report, err := service.CalculateStatisticalSignificance(ctx, te.exp.ID)
		require.NoError(t, err)

		treatmentRes := report.Results[1]
		assert.InDelta(t, 0, treatmentRes.ZScore, 1e-9)
		assert.False(t, treatmentRes.Significant)
	})

	t.Run("Success - No data yields a quiet report", func(t *testing.T) {
		te := createTestExperiment(t, client, true)

		report, err := service.CalculateStatisticalSignificance(ctx, te.exp.ID)
		require.NoError(t, err)
		require.Len(t, report.Results, 2)
		assert.False(t, report.Results[1].Significant)
		assert.Equal(t, 1.0, report.Results[1].PValue)
	})

	t.Run("Failure - No control variant", func(t *testing.T) {
		te := createTestExperiment(t, client, false)

		_, err := service.CalculateStatisticalSignificance(ctx, te.exp.ID)
		assert.True(t, domain.IsPreconditionFailed(err))
	})

	t.Run("Failure - Missing experiment", func(t *testing.T) {
		_, err := service.CalculateStatisticalSignificance(ctx, 9999)
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestEstimateTimeToCompletion(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := NewService(client, nil)
	ctx := context.Background()

	t.Run("Success - Remaining days from daily traffic", func(t *testing.T) {
		te := createTestExperiment(t, client, true)
		seedCounts(t, client, te.control.ID, 100, 10)
		seedCounts(t, client, te.treatment.ID, 100, 12)

		estimate, err := service.EstimateTimeToCompletion(ctx, te.exp.ID, 1000)
		require.NoError(t, err)

		assert.InDelta(t, 0.10, estimate.BaselineConversionRate, 1e-9)
		assert.Equal(t, DefaultMinDetectableEffect, estimate.MinDetectableEffect)
		assert.Equal(t, estimate.RequiredPerVariant*2, estimate.RequiredTotal)
		assert.Equal(t, 200, estimate.CurrentImpressions)
		assert.Equal(t, estimate.RequiredTotal-200, estimate.RemainingImpressions)
		assert.Greater(t, estimate.EstimatedDaysRemaining, 0)
	})

	t.Run("Success - Experiment-level effect overrides the default", func(t *testing.T) {
		te := createTestExperiment(t, client, true)
		_, err := client.Experiment.
			UpdateOneID(te.exp.ID).
			SetMinDetectableEffect(0.5).
			Save(ctx)
		require.NoError(t, err)
		seedCounts(t, client, te.control.ID, 100, 10)

		estimate, err := service.EstimateTimeToCompletion(ctx, te.exp.ID, 1000)
		require.NoError(t, err)
		assert.Equal(t, 0.5, estimate.MinDetectableEffect)
	})

	t.Run("Success - Oversampled experiment clamps remaining to zero", func(t *testing.T) {
		te := createTestExperiment(t, client, true)
		_, err := client.Experiment.
			UpdateOneID(te.exp.ID).
			SetMinDetectableEffect(1.0).
			Save(ctx)
		require.NoError(t, err)
		seedCounts(t, client, te.control.ID, 200, 40)
		seedCounts(t, client, te.treatment.ID, 200, 40)

		estimate, err := service.EstimateTimeToCompletion(ctx, te.exp.ID, 100)
		require.NoError(t, err)
		assert.Equal(t, 0, estimate.RemainingImpressions)
		assert.Equal(t, 0, estimate.EstimatedDaysRemaining)
	})

	t.Run("Failure - Non-positive daily traffic", func(t *testing.T) {
		te := createTestExperiment(t, client, true)

		_, err := service.EstimateTimeToCompletion(ctx, te.exp.ID, 0)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("Failure - Control without conversions", func(t *testing.T) {
		te := createTestExperiment(t, client, true)
		seedCounts(t, client, te.control.ID, 50, 0)

		_, err := service.EstimateTimeToCompletion(ctx, te.exp.ID, 100)
		assert.True(t, domain.IsPreconditionFailed(err))
	})
}

func TestMetricsOverTime(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := NewService(client, nil)
	ctx := context.Background()

	seedAt := func(t *testing.T, variantID int, rt experimentresult.ResultType, at time.Time, n int) {
		for i := 0; i < n; i++ {
			_, err := client.ExperimentResult.
				Create().
				SetVariantID(variantID).
				SetResultType(rt).
				SetCreatedAt(at).
				Save(ctx)
			require.NoError(t, err)
		}
	}

	t.Run("Success - Daily buckets are zero-filled across gaps", func(t *testing.T) {
		te := createTestExperiment(t, client, true)

		day1 := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
		day3 := time.Date(2026, 8, 3, 15, 30, 0, 0, time.UTC)

		seedAt(t, te.control.ID, experimentresult.ResultTypeImpression, day1, 4)
		seedAt(t, te.control.ID, experimentresult.ResultTypeConversion, day1, 1)
		seedAt(t, te.control.ID, experimentresult.ResultTypeImpression, day3, 2)
		seedAt(t, te.control.ID, experimentresult.ResultTypeConversion, day3, 2)

		report, err := service.MetricsOverTime(ctx, te.exp.ID, "day")
		require.NoError(t, err)
		require.Len(t, report.Variants, 2)

		var controlSeries *VariantSeries
		for i := range report.Variants {
			if report.Variants[i].VariantID == te.control.ID {
				controlSeries = &report.Variants[i]
			}
		}
		require.NotNil(t, controlSeries)
		require.Len(t, controlSeries.Points, 3)

		assert.Equal(t, "2026-08-01", controlSeries.Points[0].Period)
		assert.Equal(t, 4, controlSeries.Points[0].Impressions)
		assert.InDelta(t, 0.25, controlSeries.Points[0].ConversionRate, 1e-9)

		// Gap day present with zero counts
		assert.Equal(t, "2026-08-02", controlSeries.Points[1].Period)
		assert.Equal(t, 0, controlSeries.Points[1].Impressions)
		assert.Equal(t, 0, controlSeries.Points[1].Conversions)

		assert.Equal(t, "2026-08-03", controlSeries.Points[2].Period)
		assert.Equal(t, 2, controlSeries.Points[2].Impressions)
		assert.InDelta(t, 1.0, controlSeries.Points[2].ConversionRate, 1e-9)
	})

	t.Run("Success - Monthly buckets", func(t *testing.T) {
		te := createTestExperiment(t, client, true)

		seedAt(t, te.treatment.ID, experimentresult.ResultTypeImpression, time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC), 3)
		seedAt(t, te.treatment.ID, experimentresult.ResultTypeImpression, time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC), 5)

		report, err := service.MetricsOverTime(ctx, te.exp.ID, "month")
		require.NoError(t, err)

		var series *VariantSeries
		for i := range report.Variants {
			if report.Variants[i].VariantID == te.treatment.ID {
				series = &report.Variants[i]
			}
		}
		require.NotNil(t, series)
		require.Len(t, series.Points, 3)
		assert.Equal(t, "2026-06", series.Points[0].Period)
		assert.Equal(t, "2026-07", series.Points[1].Period)
		assert.Equal(t, 0, series.Points[1].Impressions)
		assert.Equal(t, "2026-08", series.Points[2].Period)
		assert.Equal(t, 5, series.Points[2].Impressions)
	})

	t.Run("Success - No events yields empty series per variant", func(t *testing.T) {
		te := createTestExperiment(t, client, true)

		report, err := service.MetricsOverTime(ctx, te.exp.ID, "week")
		require.NoError(t, err)
		require.Len(t, report.Variants, 2)
		assert.Empty(t, report.Variants[0].Points)
	})

	t.Run("Failure - Invalid interval", func(t *testing.T) {
		te := createTestExperiment(t, client, true)

		_, err := service.MetricsOverTime(ctx, te.exp.ID, "hourly")
		assert.True(t, domain.IsValidation(err))
	})
}
