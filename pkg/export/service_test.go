package export

import (
	"context"
	"testing"

	"github.com/variantlab/abtest/ent"
	"github.com/variantlab/abtest/ent/enttest"
	"github.com/variantlab/abtest/ent/experimentresult"
	"github.com/variantlab/abtest/pkg/analysis"
	"github.com/variantlab/abtest/pkg/domain"
	"github.com/variantlab/abtest/pkg/experiments"
	"github.com/variantlab/abtest/pkg/models"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (*ent.Client, func()) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	return client, func() { client.Close() }
}

func TestBuildResultsWorkbook(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	experimentService := experiments.NewService(client, nil)
	analysisService := analysis.NewService(client, nil)
	service := NewService(experimentService, analysisService)
	ctx := context.Background()

	t.Run("Success - Workbook carries summary and variant rows", func(t *testing.T) {
		exp, err := experimentService.Create(ctx, &models.CreateExperimentRequest{
			Name: "Pricing Page Test",
			Type: "pricing",
			Variants: []models.VariantRequest{
				{Name: "control", IsControl: true},
				{Name: "discount_banner"},
			},
		})
		require.NoError(t, err)

		for _, v := range exp.Edges.Variants {
			for i := 0; i < 10; i++ {
				_, err := client.ExperimentResult.
					Create().
					SetVariantID(v.ID).
					SetResultType(experimentresult.ResultTypeImpression).
					Save(ctx)
				require.NoError(t, err)
			}
			_, err := client.ExperimentResult.
				Create().
				SetVariantID(v.ID).
				SetResultType(experimentresult.ResultTypeConversion).
				Save(ctx)
			require.NoError(t, err)
		}

		f, err := service.BuildResultsWorkbook(ctx, exp.ID)
		require.NoError(t, err)
		defer f.Close()

		assert.ElementsMatch(t, []string{"Summary", "Variants"}, f.GetSheetList())

		name, err := f.GetCellValue("Summary", "B1")
		require.NoError(t, err)
		assert.Equal(t, "Pricing Page Test", name)

		header, err := f.GetCellValue("Variants", "A1")
		require.NoError(t, err)
		assert.Equal(t, "Variant", header)

		firstVariant, err := f.GetCellValue("Variants", "A2")
		require.NoError(t, err)
		assert.NotEmpty(t, firstVariant)
		secondVariant, err := f.GetCellValue("Variants", "A3")
		require.NoError(t, err)
		assert.NotEmpty(t, secondVariant)
	})

	t.Run("Failure - Missing experiment", func(t *testing.T) {
		_, err := service.BuildResultsWorkbook(ctx, 9999)
		assert.True(t, domain.IsNotFound(err))
	})
}
