package assignment

import (
	"context"
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/variantlab/abtest/ent"
	"github.com/variantlab/abtest/ent/enttest"
	"github.com/variantlab/abtest/ent/experiment"
	"github.com/variantlab/abtest/ent/experimentresult"
	"github.com/variantlab/abtest/pkg/cache"
	"github.com/variantlab/abtest/pkg/domain"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (*ent.Client, func()) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	return client, func() { client.Close() }
}

func setupTestCache(t *testing.T) *cache.Client {
	mr := miniredis.RunT(t)
	return cache.NewClientFromRedis(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
}

type testExperiment struct {
	exp       *ent.Experiment
	control   *ent.ExperimentVariant
	treatment *ent.ExperimentVariant
}

func createTestExperiment(t *testing.T, client *ent.Client, status experiment.Status, audiencePct *float64) testExperiment {
	ctx := context.Background()

	builder := client.Experiment.
		Create().
		SetName("Search Ranker Test").
		SetType(experiment.TypeSearchAlgorithm).
		SetStatus(status)
	if audiencePct != nil {
		builder.SetAudiencePercentage(*audiencePct)
	}
	exp, err := builder.Save(ctx)
	require.NoError(t, err)

	control, err := client.ExperimentVariant.
		Create().
		SetExperimentID(exp.ID).
		SetName("control").
		SetIsControl(true).
		SetConfiguration(map[string]interface{}{"ranker": "legacy"}).
		Save(ctx)
	require.NoError(t, err)

	treatment, err := client.ExperimentVariant.
		Create().
		SetExperimentID(exp.ID).
		SetName("semantic").
		SetConfiguration(map[string]interface{}{"ranker": "semantic"}).
		Save(ctx)
	require.NoError(t, err)

	return testExperiment{exp: exp, control: control, treatment: treatment}
}

func TestGetOrCreateAssignment(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := NewService(client, nil, nil)
	ctx := context.Background()

	t.Run("Success - Repeated calls return the same assignment", func(t *testing.T) {
		te := createTestExperiment(t, client, experiment.StatusRunning, nil)

		first, err := service.GetOrCreateAssignment(ctx, te.exp.ID, "user-1", "")
		require.NoError(t, err)

		second, err := service.GetOrCreateAssignment(ctx, te.exp.ID, "user-1", "")
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, first.VariantID, second.VariantID)
	})

	t.Run("Success - Session identity works like user identity", func(t *testing.T) {
		te := createTestExperiment(t, client, experiment.StatusRunning, nil)

		first, err := service.GetOrCreateAssignment(ctx, te.exp.ID, "", "sess-1")
		require.NoError(t, err)
		second, err := service.GetOrCreateAssignment(ctx, te.exp.ID, "", "sess-1")
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
	})

	t.Run("Success - Audience percentage zero pins to control", func(t *testing.T) {
		pct := 0.0
		te := createTestExperiment(t, client, experiment.StatusRunning, &pct)

		for i := 0; i < 20; i++ {
			a, err := service.GetOrCreateAssignment(ctx, te.exp.ID, "", fmt.Sprintf("excluded-%d", i))
			require.NoError(t, err)
			assert.Equal(t, te.control.ID, a.VariantID)
		}
	})

	t.Run("Success - Bucketing is roughly uniform", func(t *testing.T) {
		te := createTestExperiment(t, client, experiment.StatusRunning, nil)

		counts := map[int]int{}
		for i := 0; i < 200; i++ {
			a, err := service.GetOrCreateAssignment(ctx, te.exp.ID, "", fmt.Sprintf("uniform-%d", i))
			require.NoError(t, err)
			counts[a.VariantID]++
		}

		assert.Greater(t, counts[te.control.ID], 60)
		assert.Greater(t, counts[te.treatment.ID], 60)
	})

	t.Run("Failure - Missing identity", func(t *testing.T) {
		te := createTestExperiment(t, client, experiment.StatusRunning, nil)

		_, err := service.GetOrCreateAssignment(ctx, te.exp.ID, "", "")
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("Failure - Both identities", func(t *testing.T) {
		te := createTestExperiment(t, client, experiment.StatusRunning, nil)

		_, err := service.GetOrCreateAssignment(ctx, te.exp.ID, "user-2", "sess-2")
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("Failure - Experiment not running", func(t *testing.T) {
		te := createTestExperiment(t, client, experiment.StatusDraft, nil)

		_, err := service.GetOrCreateAssignment(ctx, te.exp.ID, "user-3", "")
		assert.True(t, domain.IsPreconditionFailed(err))
	})

	t.Run("Failure - Missing experiment", func(t *testing.T) {
		_, err := service.GetOrCreateAssignment(ctx, 9999, "user-4", "")
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestGetActiveExperiments(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	cacheClient := setupTestCache(t)
	service := NewService(client, cacheClient, nil)
	ctx := context.Background()

	running := createTestExperiment(t, client, experiment.StatusRunning, nil)
	createTestExperiment(t, client, experiment.StatusDraft, nil)

	t.Run("Success - Only running experiments of the type", func(t *testing.T) {
		exps, err := service.GetActiveExperiments(ctx, "search_algorithm")
		require.NoError(t, err)
		require.Len(t, exps, 1)
		assert.Equal(t, running.exp.ID, exps[0].ID)
		assert.Len(t, exps[0].Edges.Variants, 2)
	})

	t.Run("Success - Second call is served from cache", func(t *testing.T) {
		exps, err := service.GetActiveExperiments(ctx, "search_algorithm")
		require.NoError(t, err)
		require.Len(t, exps, 1)

		ok, err := cacheClient.Exists(ctx, "experiments:active:search_algorithm")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Success - Unknown type yields empty list", func(t *testing.T) {
		exps, err := service.GetActiveExperiments(ctx, "astrology")
		require.NoError(t, err)
		assert.Empty(t, exps)
	})
}

func TestGetVariantConfiguration(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := NewService(client, nil, nil)
	ctx := context.Background()

	t.Run("Success - Returns configuration and auto-tracks impression", func(t *testing.T) {
		te := createTestExperiment(t, client, experiment.StatusRunning, nil)

		configs := service.GetVariantConfiguration(ctx, "search_algorithm", "user-1", "")
		require.Len(t, configs, 1)

		cfg, ok := configs[te.exp.ID]
		require.True(t, ok)
		assert.NotZero(t, cfg.VariantID)
		assert.NotZero(t, cfg.AssignmentID)
		assert.Contains(t, cfg.Configuration, "ranker")

		a, err := client.ExperimentAssignment.Get(ctx, cfg.AssignmentID)
		require.NoError(t, err)
		assert.True(t, a.HasImpression)
	})

	t.Run("Success - Missing identity yields nil, not an error", func(t *testing.T) {
		configs := service.GetVariantConfiguration(ctx, "search_algorithm", "", "")
		assert.Nil(t, configs)
	})

	t.Run("Success - No active experiments yields nil", func(t *testing.T) {
		configs := service.GetVariantConfiguration(ctx, "pricing", "user-2", "")
		assert.Nil(t, configs)
	})
}

func TestTracking(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := NewService(client, nil, nil)
	ctx := context.Background()

	newAssignment := func(t *testing.T, identity string) *ent.ExperimentAssignment {
		te := createTestExperiment(t, client, experiment.StatusRunning, nil)
		a, err := service.GetOrCreateAssignment(ctx, te.exp.ID, identity, "")
		require.NoError(t, err)
		return a
	}

	countResults := func(t *testing.T, variantID int, rt experimentresult.ResultType) int {
		n, err := client.ExperimentResult.
			Query().
			Where(
				experimentresult.VariantIDEQ(variantID),
				experimentresult.ResultTypeEQ(rt),
			).
			Count(ctx)
		require.NoError(t, err)
		return n
	}

	t.Run("Success - Impression flag is set once, events accumulate", func(t *testing.T) {
		a := newAssignment(t, "imp-user")

		service.TrackImpression(ctx, a.ID)
		service.TrackImpression(ctx, a.ID)

		reloaded, err := client.ExperimentAssignment.Get(ctx, a.ID)
		require.NoError(t, err)
		assert.True(t, reloaded.HasImpression)
		assert.Equal(t, 2, countResults(t, a.VariantID, experimentresult.ResultTypeImpression))
	})

	t.Run("Success - Interaction records click events", func(t *testing.T) {
		a := newAssignment(t, "click-user")

		service.TrackInteraction(ctx, a.ID, "search_results", map[string]interface{}{"position": 3})

		reloaded, err := client.ExperimentAssignment.Get(ctx, a.ID)
		require.NoError(t, err)
		assert.True(t, reloaded.HasInteraction)
		assert.Equal(t, 1, countResults(t, a.VariantID, experimentresult.ResultTypeClick))
	})

	t.Run("Success - Conversion with value writes conversion and revenue rows", func(t *testing.T) {
		a := newAssignment(t, "conv-user")

		value := 129.95
		service.TrackConversion(ctx, a.ID, &value, "checkout", nil)

		reloaded, err := client.ExperimentAssignment.Get(ctx, a.ID)
		require.NoError(t, err)
		assert.True(t, reloaded.HasConversion)
		assert.Equal(t, 1, countResults(t, a.VariantID, experimentresult.ResultTypeConversion))
		assert.Equal(t, 1, countResults(t, a.VariantID, experimentresult.ResultTypeRevenue))

		revenue, err := client.ExperimentResult.
			Query().
			Where(
				experimentresult.VariantIDEQ(a.VariantID),
				experimentresult.ResultTypeEQ(experimentresult.ResultTypeRevenue),
			).
			Only(ctx)
		require.NoError(t, err)
		require.NotNil(t, revenue.Value)
		assert.InDelta(t, 129.95, *revenue.Value, 1e-9)
	})

	t.Run("Success - Conversion without value writes no revenue row", func(t *testing.T) {
		a := newAssignment(t, "freeconv-user")

		service.TrackConversion(ctx, a.ID, nil, "signup", nil)

		assert.Equal(t, 1, countResults(t, a.VariantID, experimentresult.ResultTypeConversion))
		assert.Equal(t, 0, countResults(t, a.VariantID, experimentresult.ResultTypeRevenue))
	})

	t.Run("Success - Custom event merges type and context into metadata", func(t *testing.T) {
		a := newAssignment(t, "custom-user")

		service.TrackCustomEvent(ctx, a.ID, "filter_applied", nil, "facet_panel", map[string]interface{}{"facet": "brand"})

		result, err := client.ExperimentResult.
			Query().
			Where(
				experimentresult.VariantIDEQ(a.VariantID),
				experimentresult.ResultTypeEQ(experimentresult.ResultTypeCustom),
			).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, "filter_applied", result.Metadata["event_type"])
		assert.Equal(t, "facet_panel", result.Metadata["custom_context"])
		assert.Equal(t, "brand", result.Metadata["facet"])
	})

	t.Run("Success - Tracking a missing assignment is swallowed", func(t *testing.T) {
		service.TrackImpression(ctx, 99999)
		service.TrackConversion(ctx, 99999, nil, "", nil)
	})
}

func TestGetUserAssignments(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := NewService(client, nil, nil)
	ctx := context.Background()

	first := createTestExperiment(t, client, experiment.StatusRunning, nil)
	second := createTestExperiment(t, client, experiment.StatusRunning, nil)

	_, err := service.GetOrCreateAssignment(ctx, first.exp.ID, "history-user", "")
	require.NoError(t, err)
	_, err = service.GetOrCreateAssignment(ctx, second.exp.ID, "history-user", "")
	require.NoError(t, err)

	t.Run("Success - All assignments for a user", func(t *testing.T) {
		assignments, err := service.GetUserAssignments(ctx, "history-user", "")
		require.NoError(t, err)
		require.Len(t, assignments, 2)
		assert.NotNil(t, assignments[0].Edges.Experiment)
		assert.NotNil(t, assignments[0].Edges.Variant)
	})

	t.Run("Success - Unknown user yields empty list", func(t *testing.T) {
		assignments, err := service.GetUserAssignments(ctx, "nobody", "")
		require.NoError(t, err)
		assert.Empty(t, assignments)
	})

	t.Run("Failure - Missing identity", func(t *testing.T) {
		_, err := service.GetUserAssignments(ctx, "", "")
		assert.True(t, domain.IsValidation(err))
	})
}
