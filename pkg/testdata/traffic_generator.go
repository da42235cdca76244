package testdata

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/variantlab/abtest/ent"
	"github.com/variantlab/abtest/ent/experiment"
	"github.com/variantlab/abtest/ent/experimentresult"
)

// TrafficConfig configures simulated visitor traffic for one experiment
type TrafficConfig struct {
	Visitors        int
	AnonymousShare  float64   // 0.0-1.0 (share identified by session instead of user)
	ImpressionRate  float64   // probability a visitor sees their variant
	InteractionRate float64   // probability an impressed visitor clicks
	ConversionRates []float64 // per-variant conversion probability, indexed by variant order
	MinOrderValue   float64
	MaxOrderValue   float64
}

// Event contexts weighted the way real storefront traffic distributes
var eventContexts = []string{
	"search_results", "search_results", "search_results",
	"product_page", "product_page",
	"category_page",
	"homepage",
	"checkout",
}

// Experiment name parts per experiment type
var experimentNameParts = map[experiment.Type]struct {
	Prefixes []string
	Suffixes []string
}{
	experiment.TypeSearchAlgorithm: {
		Prefixes: []string{"Semantic", "Fuzzy", "Boosted", "Hybrid", "Ranked", "Weighted"},
		Suffixes: []string{"Search Ranking", "Query Expansion", "Relevance Tuning", "Result Ordering"},
	},
	experiment.TypeUIComponent: {
		Prefixes: []string{"Sticky", "Compact", "Expanded", "Inline", "Floating", "Minimal"},
		Suffixes: []string{"Checkout Button", "Filter Sidebar", "Product Card", "Navigation Bar", "Signup Modal"},
	},
	experiment.TypePersonalization: {
		Prefixes: []string{"Behavioral", "Session-Based", "History-Aware", "Segmented"},
		Suffixes: []string{"Homepage Feed", "Category Ordering", "Banner Rotation"},
	},
	experiment.TypeRecommendation: {
		Prefixes: []string{"Collaborative", "Content-Based", "Trending", "Similar-Item"},
		Suffixes: []string{"Recommendations", "Cross-Sell Widget", "Also-Bought Rail"},
	},
	experiment.TypePricing: {
		Prefixes: []string{"Anchored", "Bundled", "Rounded", "Tiered"},
		Suffixes: []string{"Price Display", "Discount Badge", "Shipping Threshold"},
	},
	experiment.TypeContent: {
		Prefixes: []string{"Short-Form", "Long-Form", "Video-First", "Social-Proof"},
		Suffixes: []string{"Product Description", "Landing Copy", "Review Placement"},
	},
	experiment.TypeFeatureFlag: {
		Prefixes: []string{"Gradual", "Canary", "Beta", "Dark-Launch"},
		Suffixes: []string{"Rollout", "Feature Gate", "Kill Switch"},
	},
}

// GenerateExperimentName creates a type-specific realistic experiment name
func GenerateExperimentName(expType experiment.Type) string {
	parts, ok := experimentNameParts[expType]
	if !ok {
		return fmt.Sprintf("%s %s Test", gofakeit.BuzzWord(), gofakeit.HackerNoun())
	}

	prefix := parts.Prefixes[rand.Intn(len(parts.Prefixes))]
	suffix := parts.Suffixes[rand.Intn(len(parts.Suffixes))]

	return fmt.Sprintf("%s %s", prefix, suffix)
}

// GenerateExperiment builds a running experiment of the given type
func GenerateExperiment(client *ent.Client, expType experiment.Type) *ent.ExperimentCreate {
	started := time.Now().AddDate(0, 0, -rand.Intn(21)-7)

	return client.Experiment.Create().
		SetName(GenerateExperimentName(expType)).
		SetDescription(gofakeit.Sentence(12)).
		SetType(expType).
		SetStatus(experiment.StatusRunning).
		SetHypothesis(fmt.Sprintf("Changing the %s will improve %s.", gofakeit.HackerNoun(), gofakeit.BuzzWord())).
		SetPrimaryMetric("conversion_rate").
		SetMinDetectableEffect(0.1).
		SetStartDate(started)
}

// GenerateVariants builds one control and n-1 treatment variants for an experiment
func GenerateVariants(client *ent.Client, experimentID, count int) []*ent.ExperimentVariantCreate {
	variants := make([]*ent.ExperimentVariantCreate, count)
	for i := 0; i < count; i++ {
		name := "control"
		if i > 0 {
			name = fmt.Sprintf("treatment_%c", 'a'+i-1)
		}
		variants[i] = client.ExperimentVariant.Create().
			SetExperimentID(experimentID).
			SetName(name).
			SetIsControl(i == 0).
			SetConfiguration(map[string]interface{}{
				"variant_key": name,
				"weight":      1,
			})
	}
	return variants
}

// DefaultTrafficConfig returns a funnel shaped like real storefront traffic,
// with the treatment variants converting slightly better than control.
func DefaultTrafficConfig(visitors, variantCount int) TrafficConfig {
	rates := make([]float64, variantCount)
	for i := range rates {
		rates[i] = 0.08 + 0.02*float64(i) // control 8%, each treatment +2pp
	}
	return TrafficConfig{
		Visitors:        visitors,
		AnonymousShare:  0.6,
		ImpressionRate:  0.9,
		InteractionRate: 0.35,
		ConversionRates: rates,
		MinOrderValue:   9.99,
		MaxOrderValue:   249.99,
	}
}

// SimulateTraffic drives config.Visitors synthetic visitors through the
// experiment's funnel: assignment, impression, interaction, conversion.
// The experiment must be loaded with its variants.
func SimulateTraffic(ctx context.Context, client *ent.Client, exp *ent.Experiment, config TrafficConfig, batchSize int) error {
	variants := exp.Edges.Variants
	if len(variants) == 0 {
		return fmt.Errorf("experiment %d has no variants loaded", exp.ID)
	}

	assignments := make([]*ent.ExperimentAssignmentCreate, 0, config.Visitors)
	results := make([]*ent.ExperimentResultCreate, 0, config.Visitors*2)

	for i := 0; i < config.Visitors; i++ {
		variantIdx := rand.Intn(len(variants))
		variant := variants[variantIdx]

		var userID, sessionID string
		if rand.Float64() < config.AnonymousShare {
			sessionID = gofakeit.UUID()
		} else {
			userID = fmt.Sprintf("user-%s", gofakeit.Username())
		}

		seen := rand.Float64() < config.ImpressionRate
		clicked := seen && rand.Float64() < config.InteractionRate
		converted := clicked && rand.Float64() < conversionRate(config, variantIdx)

		// Funnel events land over the experiment's lifetime, not all at once
		eventTime := randomEventTime(exp)
		eventContext := eventContexts[rand.Intn(len(eventContexts))]

		assignment := client.ExperimentAssignment.Create().
			SetExperimentID(exp.ID).
			SetVariantID(variant.ID).
			SetHasImpression(seen).
			SetHasInteraction(clicked).
			SetHasConversion(converted).
			SetCreatedAt(eventTime)
		if userID != "" {
			assignment.SetUserID(userID)
		} else {
			assignment.SetSessionID(sessionID)
		}
		assignments = append(assignments, assignment)

		if seen {
			results = append(results, newResult(client, variant.ID, userID, sessionID,
				experimentresult.ResultTypeImpression, eventContext, eventTime))
		}
		if clicked {
			results = append(results, newResult(client, variant.ID, userID, sessionID,
				experimentresult.ResultTypeClick, eventContext, eventTime.Add(time.Duration(rand.Intn(60))*time.Second)))
		}
		if converted {
			convertedAt := eventTime.Add(time.Duration(rand.Intn(600))*time.Second + time.Minute)
			results = append(results, newResult(client, variant.ID, userID, sessionID,
				experimentresult.ResultTypeConversion, "checkout", convertedAt))

			orderValue := config.MinOrderValue + rand.Float64()*(config.MaxOrderValue-config.MinOrderValue)
			results = append(results, newResult(client, variant.ID, userID, sessionID,
				experimentresult.ResultTypeRevenue, "checkout", convertedAt).
				SetValue(orderValue))
		}
	}

	if err := BulkInsertAssignments(ctx, client, assignments, batchSize); err != nil {
		return err
	}
	return BulkInsertResults(ctx, client, results, batchSize)
}

func conversionRate(config TrafficConfig, variantIdx int) float64 {
	if variantIdx < len(config.ConversionRates) {
		return config.ConversionRates[variantIdx]
	}
	return 0.1
}

func randomEventTime(exp *ent.Experiment) time.Time {
	start := time.Now().AddDate(0, 0, -14)
	if exp.StartDate != nil {
		start = *exp.StartDate
	}
	window := time.Since(start)
	if window <= 0 {
		return time.Now()
	}
	return start.Add(time.Duration(rand.Int63n(int64(window))))
}

func newResult(client *ent.Client, variantID int, userID, sessionID string, resultType experimentresult.ResultType, eventContext string, at time.Time) *ent.ExperimentResultCreate {
	create := client.ExperimentResult.Create().
		SetVariantID(variantID).
		SetResultType(resultType).
		SetContext(eventContext).
		SetCreatedAt(at)
	if userID != "" {
		create.SetUserID(userID)
	}
	if sessionID != "" {
		create.SetSessionID(sessionID)
	}
	return create
}

// BulkInsertAssignments inserts assignments in batches for performance
func BulkInsertAssignments(ctx context.Context, client *ent.Client, assignments []*ent.ExperimentAssignmentCreate, batchSize int) error {
	for i := 0; i < len(assignments); i += batchSize {
		end := i + batchSize
		if end > len(assignments) {
			end = len(assignments)
		}

		batch := assignments[i:end]
		if err := client.ExperimentAssignment.CreateBulk(batch...).Exec(ctx); err != nil {
			return fmt.Errorf("failed to insert assignment batch %d-%d: %w", i, end, err)
		}
	}
	return nil
}

// BulkInsertResults inserts result events in batches for performance
func BulkInsertResults(ctx context.Context, client *ent.Client, results []*ent.ExperimentResultCreate, batchSize int) error {
	for i := 0; i < len(results); i += batchSize {
		end := i + batchSize
		if end > len(results) {
			end = len(results)
		}

		batch := results[i:end]
		if err := client.ExperimentResult.CreateBulk(batch...).Exec(ctx); err != nil {
			return fmt.Errorf("failed to insert result batch %d-%d: %w", i, end, err)
		}
	}
	return nil
}
