package experiments

import (
	"context"
	"testing"

	"github.com/variantlab/abtest/ent"
	"github.com/variantlab/abtest/ent/enttest"
	"github.com/variantlab/abtest/ent/experiment"
	"github.com/variantlab/abtest/ent/experimentresult"
	"github.com/variantlab/abtest/pkg/domain"
	"github.com/variantlab/abtest/pkg/models"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (*ent.Client, func()) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	return client, func() { client.Close() }
}

func twoVariantRequest(name string) *models.CreateExperimentRequest {
	return &models.CreateExperimentRequest{
		Name: name,
		Type: "ui_component",
		Variants: []models.VariantRequest{
			{Name: "control", IsControl: true},
			{Name: "blue_button", Configuration: map[string]interface{}{"color": "blue"}},
		},
	}
}

func TestCreate(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := NewService(client, nil)
	ctx := context.Background()

	t.Run("Success - Create experiment with variants", func(t *testing.T) {
		exp, err := service.Create(ctx, twoVariantRequest("Homepage CTA Test"))

		require.NoError(t, err)
		assert.Equal(t, "Homepage CTA Test", exp.Name)
		assert.Equal(t, experiment.StatusDraft, exp.Status)
		require.Len(t, exp.Edges.Variants, 2)

		controls := 0
		for _, v := range exp.Edges.Variants {
			if v.IsControl {
				controls++
			}
		}
		assert.Equal(t, 1, controls)
	})

	t.Run("Failure - No variants", func(t *testing.T) {
		_, err := service.Create(ctx, &models.CreateExperimentRequest{
			Name: "Empty",
			Type: "pricing",
		})
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("Failure - Two control variants", func(t *testing.T) {
		_, err := service.Create(ctx, &models.CreateExperimentRequest{
			Name: "Double Control",
			Type: "pricing",
			Variants: []models.VariantRequest{
				{Name: "a", IsControl: true},
				{Name: "b", IsControl: true},
			},
		})
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("Failure - Invalid type", func(t *testing.T) {
		req := twoVariantRequest("Bad Type")
		req.Type = "astrology"
		_, err := service.Create(ctx, req)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("Failure - Audience percentage out of range", func(t *testing.T) {
		req := twoVariantRequest("Too Much Audience")
		pct := 150.0
		req.AudiencePercentage = &pct
		_, err := service.Create(ctx, req)
		assert.True(t, domain.IsValidation(err))
	})
}

func TestFindAll(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := NewService(client, nil)
	ctx := context.Background()

	first, err := service.Create(ctx, twoVariantRequest("First"))
	require.NoError(t, err)
	_, err = service.Create(ctx, twoVariantRequest("Second"))
	require.NoError(t, err)
	_, err = service.Start(ctx, first.ID)
	require.NoError(t, err)

	t.Run("Success - All experiments", func(t *testing.T) {
		exps, err := service.FindAll(ctx, "")
		require.NoError(t, err)
		assert.Len(t, exps, 2)
	})

	t.Run("Success - Filtered by status", func(t *testing.T) {
		exps, err := service.FindAll(ctx, "running")
		require.NoError(t, err)
		require.Len(t, exps, 1)
		assert.Equal(t, "First", exps[0].Name)
	})

	t.Run("Failure - Invalid status filter", func(t *testing.T) {
		_, err := service.FindAll(ctx, "exploded")
		assert.True(t, domain.IsValidation(err))
	})
}

func TestFindByID(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := NewService(client, nil)
	ctx := context.Background()

	t.Run("Failure - Missing experiment", func(t *testing.T) {
		_, err := service.FindByID(ctx, 9999)
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestUpdate(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := NewService(client, nil)
	ctx := context.Background()

	t.Run("Success - Partial update leaves other fields alone", func(t *testing.T) {
		exp, err := service.Create(ctx, twoVariantRequest("Original Name"))
		require.NoError(t, err)

		hypothesis := "Blue converts better"
		updated, err := service.Update(ctx, exp.ID, &models.UpdateExperimentRequest{
			Hypothesis: &hypothesis,
		})
		require.NoError(t, err)
		assert.Equal(t, "Original Name", updated.Name)
		assert.Equal(t, "Blue converts better", updated.Hypothesis)
	})

	t.Run("Success - Replace variants while draft", func(t *testing.T) {
		exp, err := service.Create(ctx, twoVariantRequest("Draft Replacement"))
		require.NoError(t, err)

		updated, err := service.Update(ctx, exp.ID, &models.UpdateExperimentRequest{
			Variants: []models.VariantRequest{
				{Name: "control", IsControl: true},
				{Name: "red_button"},
				{Name: "green_button"},
			},
		})
		require.NoError(t, err)
		assert.Len(t, updated.Edges.Variants, 3)
	})

	t.Run("Failure - Replace variants after start", func(t *testing.T) {
		exp, err := service.Create(ctx, twoVariantRequest("Running Replacement"))
		require.NoError(t, err)
		_, err = service.Start(ctx, exp.ID)
		require.NoError(t, err)

		_, err = service.Update(ctx, exp.ID, &models.UpdateExperimentRequest{
			Variants: []models.VariantRequest{
				{Name: "control", IsControl: true},
				{Name: "new"},
			},
		})
		assert.True(t, domain.IsPreconditionFailed(err))
	})
}

func TestLifecycle(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := NewService(client, nil)
	ctx := context.Background()

	t.Run("Success - Full lifecycle walk", func(t *testing.T) {
		exp, err := service.Create(ctx, twoVariantRequest("Lifecycle"))
		require.NoError(t, err)
		assert.Equal(t, experiment.StatusDraft, exp.Status)
		assert.Nil(t, exp.StartDate)

		exp, err = service.Start(ctx, exp.ID)
		require.NoError(t, err)
		assert.Equal(t, experiment.StatusRunning, exp.Status)
		assert.NotNil(t, exp.StartDate)

		exp, err = service.Pause(ctx, exp.ID)
		require.NoError(t, err)
		assert.Equal(t, experiment.StatusPaused, exp.Status)

		exp, err = service.Start(ctx, exp.ID)
		require.NoError(t, err)
		assert.Equal(t, experiment.StatusRunning, exp.Status)

		exp, err = service.Complete(ctx, exp.ID)
		require.NoError(t, err)
		assert.Equal(t, experiment.StatusCompleted, exp.Status)
		assert.NotNil(t, exp.EndDate)

		exp, err = service.Archive(ctx, exp.ID)
		require.NoError(t, err)
		assert.Equal(t, experiment.StatusArchived, exp.Status)
	})

	t.Run("Failure - Pause a draft experiment", func(t *testing.T) {
		exp, err := service.Create(ctx, twoVariantRequest("Pause Draft"))
		require.NoError(t, err)

		_, err = service.Pause(ctx, exp.ID)
		assert.True(t, domain.IsPreconditionFailed(err))
	})

	t.Run("Failure - Complete a draft experiment", func(t *testing.T) {
		exp, err := service.Create(ctx, twoVariantRequest("Complete Draft"))
		require.NoError(t, err)

		_, err = service.Complete(ctx, exp.ID)
		assert.True(t, domain.IsPreconditionFailed(err))
	})

	t.Run("Failure - Archive a running experiment", func(t *testing.T) {
		exp, err := service.Create(ctx, twoVariantRequest("Archive Running"))
		require.NoError(t, err)
		_, err = service.Start(ctx, exp.ID)
		require.NoError(t, err)

		_, err = service.Archive(ctx, exp.ID)
		assert.True(t, domain.IsPreconditionFailed(err))
	})

	t.Run("Failure - Start a completed experiment", func(t *testing.T) {
		exp, err := service.Create(ctx, twoVariantRequest("Restart Completed"))
		require.NoError(t, err)
		_, err = service.Start(ctx, exp.ID)
		require.NoError(t, err)
		_, err = service.Complete(ctx, exp.ID)
		require.NoError(t, err)

		_, err = service.Start(ctx, exp.ID)
		assert.True(t, domain.IsPreconditionFailed(err))
	})

	t.Run("Success - Start keeps the original start date on resume", func(t *testing.T) {
		exp, err := service.Create(ctx, twoVariantRequest("Resume Date"))
		require.NoError(t, err)

		exp, err = service.Start(ctx, exp.ID)
		require.NoError(t, err)
		firstStart := *exp.StartDate

		_, err = service.Pause(ctx, exp.ID)
		require.NoError(t, err)
		exp, err = service.Start(ctx, exp.ID)
		require.NoError(t, err)

		assert.Equal(t, firstStart.Unix(), exp.StartDate.Unix())
	})
}

func TestDeclareWinner(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := NewService(client, nil)
	ctx := context.Background()

	t.Run("Success - Declare and re-declare winner", func(t *testing.T) {
		exp, err := service.Create(ctx, twoVariantRequest("Winner"))
		require.NoError(t, err)

		first := exp.Edges.Variants[0]
		second := exp.Edges.Variants[1]

		exp, err = service.DeclareWinner(ctx, exp.ID, first.ID)
		require.NoError(t, err)
		assert.True(t, exp.HasWinner)
		require.NotNil(t, exp.WinningVariantID)
		assert.Equal(t, first.ID, *exp.WinningVariantID)

		exp, err = service.DeclareWinner(ctx, exp.ID, second.ID)
		require.NoError(t, err)
		assert.Equal(t, second.ID, *exp.WinningVariantID)

		winners := 0
		for _, v := range exp.Edges.Variants {
			if v.IsWinner {
				winners++
				assert.Equal(t, second.ID, v.ID)
			}
		}
		assert.Equal(t, 1, winners)
	})

	t.Run("Failure - Variant from another experiment", func(t *testing.T) {
		exp, err := service.Create(ctx, twoVariantRequest("Winner A"))
		require.NoError(t, err)
		other, err := service.Create(ctx, twoVariantRequest("Winner B"))
		require.NoError(t, err)

		_, err = service.DeclareWinner(ctx, exp.ID, other.Edges.Variants[0].ID)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("Failure - Missing experiment", func(t *testing.T) {
		_, err := service.DeclareWinner(ctx, 9999, 1)
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestRemove(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := NewService(client, nil)
	ctx := context.Background()

	t.Run("Success - Remove experiment and dependents", func(t *testing.T) {
		exp, err := service.Create(ctx, twoVariantRequest("Doomed"))
		require.NoError(t, err)

		variant := exp.Edges.Variants[0]
		_, err = client.ExperimentAssignment.
			Create().
			SetExperimentID(exp.ID).
			SetVariantID(variant.ID).
			SetUserID("user-1").
			Save(ctx)
		require.NoError(t, err)
		_, err = client.ExperimentResult.
			Create().
			SetVariantID(variant.ID).
			SetResultType(experimentresult.ResultTypeImpression).
			Save(ctx)
		require.NoError(t, err)

		require.NoError(t, service.Remove(ctx, exp.ID))

		_, err = service.FindByID(ctx, exp.ID)
		assert.True(t, domain.IsNotFound(err))

		remaining, err := client.ExperimentResult.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, remaining)
	})

	t.Run("Failure - Missing experiment", func(t *testing.T) {
		err := service.Remove(ctx, 9999)
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestResults(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := NewService(client, nil)
	ctx := context.Background()

	exp, err := service.Create(ctx, twoVariantRequest("Report"))
	require.NoError(t, err)

	var control, treatment *ent.ExperimentVariant
	for _, v := range exp.Edges.Variants {
		if v.IsControl {
			control = v
		} else {
			treatment = v
		}
	}
	require.NotNil(t, control)
	require.NotNil(t, treatment)

	seedResults := func(variantID, impressions, conversions int, revenue float64) {
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
		if revenue > 0 {
			_, err := client.ExperimentResult.
				Create().
				SetVariantID(variantID).
				SetResultType(experimentresult.ResultTypeRevenue).
				SetValue(revenue).
				Save(ctx)
			require.NoError(t, err)
		}
	}

	seedResults(control.ID, 10, 1, 0)
	seedResults(treatment.ID, 10, 3, 49.99)

	report, err := service.Results(ctx, exp.ID)
	require.NoError(t, err)
	require.Len(t, report.Variants, 2)

	for _, v := range report.Variants {
		switch v.VariantID {
		case control.ID:
			assert.Equal(t, 10, v.Impressions)
			assert.Equal(t, 1, v.Conversions)
			assert.InDelta(t, 0.1, v.ConversionRate, 1e-9)
		case treatment.ID:
			assert.Equal(t, 3, v.Conversions)
			assert.InDelta(t, 0.3, v.ConversionRate, 1e-9)
			assert.InDelta(t, 49.99, v.Revenue, 1e-9)
		}
	}
}
