package jobs

import (
	"context"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/variantlab/abtest/ent"
	"github.com/variantlab/abtest/ent/enttest"
	"github.com/variantlab/abtest/ent/experiment"
	"github.com/variantlab/abtest/ent/experimentresult"
	"github.com/variantlab/abtest/pkg/cache"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMonitorDB(t *testing.T) (*ent.Client, func()) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	return client, func() { client.Close() }
}

func setupMonitorCache(t *testing.T) *cache.Client {
	mr := miniredis.RunT(t)
	return cache.NewClientFromRedis(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
}

func createRunningExperiment(t *testing.T, client *ent.Client, startedDaysAgo int) (*ent.Experiment, *ent.ExperimentVariant, *ent.ExperimentVariant) {
	ctx := context.Background()

	exp, err := client.Experiment.Create().
		SetName("Checkout Button Test").
		SetType(experiment.TypeUIComponent).
		SetStatus(experiment.StatusRunning).
		SetStartDate(time.Now().AddDate(0, 0, -startedDaysAgo)).
		Save(ctx)
	require.NoError(t, err)

	control, err := client.ExperimentVariant.Create().
		SetExperimentID(exp.ID).
		SetName("control").
		SetIsControl(true).
		Save(ctx)
	require.NoError(t, err)

	treatment, err := client.ExperimentVariant.Create().
		SetExperimentID(exp.ID).
		SetName("treatment").
		SetIsControl(false).
		Save(ctx)
	require.NoError(t, err)

	return exp, control, treatment
}

func seedAssignments(t *testing.T, client *ent.Client, experimentID, variantID, count int) {
	ctx := context.Background()

	builders := make([]*ent.ExperimentAssignmentCreate, count)
	for i := 0; i < count; i++ {
		builders[i] = client.ExperimentAssignment.Create().
			SetExperimentID(experimentID).
			SetVariantID(variantID).
			SetSessionID(fmt.Sprintf("session-%d-%d", variantID, i))
	}
	require.NoError(t, client.ExperimentAssignment.CreateBulk(builders...).Exec(ctx))
}

func TestDetectSampleRatioMismatch(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - skewed split raises an alert", func(t *testing.T) {
		client, teardown := setupMonitorDB(t)
		defer teardown()

		exp, control, treatment := createRunningExperiment(t, client, 7)
		seedAssignments(t, client, exp.ID, control.ID, 170)
		seedAssignments(t, client, exp.ID, treatment.ID, 30)

		monitor := NewHealthMonitor(client, nil, nil)
		alerts, err := monitor.DetectSampleRatioMismatch(ctx)
		require.NoError(t, err)

		require.NotEmpty(t, alerts)
		assert.Equal(t, exp.ID, alerts[0].ExperimentID)
		assert.Equal(t, 200, alerts[0].Total)
		assert.Greater(t, math.Abs(alerts[0].ZScore), srmZThreshold)
	})

	t.Run("Success - even split raises no alert", func(t *testing.T) {
		client, teardown := setupMonitorDB(t)
		defer teardown()

		exp, control, treatment := createRunningExperiment(t, client, 7)
		seedAssignments(t, client, exp.ID, control.ID, 100)
		seedAssignments(t, client, exp.ID, treatment.ID, 100)

		monitor := NewHealthMonitor(client, nil, nil)
		alerts, err := monitor.DetectSampleRatioMismatch(ctx)
		require.NoError(t, err)
		assert.Empty(t, alerts)
	})

	t.Run("Success - low traffic experiments are skipped", func(t *testing.T) {
		client, teardown := setupMonitorDB(t)
		defer teardown()

		exp, control, treatment := createRunningExperiment(t, client, 7)
		seedAssignments(t, client, exp.ID, control.ID, 9)
		seedAssignments(t, client, exp.ID, treatment.ID, 1)

		monitor := NewHealthMonitor(client, nil, nil)
		alerts, err := monitor.DetectSampleRatioMismatch(ctx)
		require.NoError(t, err)
		assert.Empty(t, alerts)
	})
}

func TestDetectStalledExperiments(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - experiment with only old events is stalled", func(t *testing.T) {
		client, teardown := setupMonitorDB(t)
		defer teardown()

		exp, control, _ := createRunningExperiment(t, client, 14)
		_, err := client.ExperimentResult.Create().
			SetVariantID(control.ID).
			SetResultType(experimentresult.ResultTypeImpression).
			SetCreatedAt(time.Now().AddDate(0, 0, -5)).
			Save(ctx)
		require.NoError(t, err)

		monitor := NewHealthMonitor(client, nil, nil)
		alerts, err := monitor.DetectStalledExperiments(ctx, 48*time.Hour)
		require.NoError(t, err)

		require.Len(t, alerts, 1)
		assert.Equal(t, exp.ID, alerts[0].ExperimentID)
		require.NotNil(t, alerts[0].LastEventAt)
	})

	t.Run("Success - experiment with recent events is healthy", func(t *testing.T) {
		client, teardown := setupMonitorDB(t)
		defer teardown()

		_, control, _ := createRunningExperiment(t, client, 14)
		_, err := client.ExperimentResult.Create().
			SetVariantID(control.ID).
			SetResultType(experimentresult.ResultTypeImpression).
			Save(ctx)
		require.NoError(t, err)

		monitor := NewHealthMonitor(client, nil, nil)
		alerts, err := monitor.DetectStalledExperiments(ctx, 48*time.Hour)
		require.NoError(t, err)
		assert.Empty(t, alerts)
	})

	t.Run("Success - experiment with no events at all is stalled", func(t *testing.T) {
		client, teardown := setupMonitorDB(t)
		defer teardown()

		exp, _, _ := createRunningExperiment(t, client, 14)

		monitor := NewHealthMonitor(client, nil, nil)
		alerts, err := monitor.DetectStalledExperiments(ctx, 48*time.Hour)
		require.NoError(t, err)

		require.Len(t, alerts, 1)
		assert.Equal(t, exp.ID, alerts[0].ExperimentID)
		assert.Nil(t, alerts[0].LastEventAt)
	})

	t.Run("Success - freshly started experiment gets a grace period", func(t *testing.T) {
		client, teardown := setupMonitorDB(t)
		defer teardown()

		createRunningExperiment(t, client, 0)

		monitor := NewHealthMonitor(client, nil, nil)
		alerts, err := monitor.DetectStalledExperiments(ctx, 48*time.Hour)
		require.NoError(t, err)
		assert.Empty(t, alerts)
	})
}

func TestRunHealthChecks(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - alerts are deduplicated through the cache", func(t *testing.T) {
		client, teardown := setupMonitorDB(t)
		defer teardown()
		cacheClient := setupMonitorCache(t)

		exp, control, treatment := createRunningExperiment(t, client, 7)
		seedAssignments(t, client, exp.ID, control.ID, 170)
		seedAssignments(t, client, exp.ID, treatment.ID, 30)

		monitor := NewHealthMonitor(client, cacheClient, nil)
		require.NoError(t, monitor.RunHealthChecks(ctx))

		exists, err := cacheClient.Exists(ctx, fmt.Sprintf("health_alert:srm:%d", exp.ID))
		require.NoError(t, err)
		assert.True(t, exists)

		// A second run sees the cached alert and stays quiet
		require.NoError(t, monitor.RunHealthChecks(ctx))
	})
}
