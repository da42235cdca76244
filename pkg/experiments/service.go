// Package experiments manages the experiment lifecycle: definition,
// state transitions, winner declaration, and result summaries.
package experiments

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/variantlab/abtest/ent"
	"github.com/variantlab/abtest/ent/experiment"
	"github.com/variantlab/abtest/ent/experimentassignment"
	"github.com/variantlab/abtest/ent/experimentresult"
	"github.com/variantlab/abtest/ent/experimentvariant"
	"github.com/variantlab/abtest/pkg/cache"
	"github.com/variantlab/abtest/pkg/domain"
	"github.com/variantlab/abtest/pkg/models"
)

// activeCachePattern matches the cached active-experiment lists kept by the
// assignment engine. Lifecycle transitions invalidate them.
const activeCachePattern = "experiments:active:*"

// VariantSummary holds aggregated counts for a single variant
type VariantSummary struct {
	VariantID      int     `json:"variant_id"`
	VariantName    string  `json:"variant_name"`
	IsControl      bool    `json:"is_control"`
	IsWinner       bool    `json:"is_winner"`
	Assignments    int     `json:"assignments"`
	Impressions    int     `json:"impressions"`
	Interactions   int     `json:"interactions"`
	Conversions    int     `json:"conversions"`
	ConversionRate float64 `json:"conversion_rate"`
	Revenue        float64 `json:"revenue"`
}

// ExperimentReport holds aggregated results for an experiment
type ExperimentReport struct {
	ExperimentID     int              `json:"experiment_id"`
	Name             string           `json:"name"`
	Status           string           `json:"status"`
	StartDate        *time.Time       `json:"start_date,omitempty"`
	EndDate          *time.Time       `json:"end_date,omitempty"`
	TotalAssignments int              `json:"total_assignments"`
	Variants         []VariantSummary `json:"variants"`
}

// Service handles experiment management operations
type Service struct {
	db    *ent.Client
	cache *cache.Client
}

// NewService creates a new experiment management service.
// The cache client may be nil; invalidation is then skipped.
func NewService(db *ent.Client, cacheClient *cache.Client) *Service {
	return &Service{db: db, cache: cacheClient}
}

// Create creates a new experiment with its variants in draft status
func (s *Service) Create(ctx context.Context, req *models.CreateExperimentRequest) (*ent.Experiment, error) {
	if err := experiment.TypeValidator(experiment.Type(req.Type)); err != nil {
		return nil, domain.NewValidationError(fmt.Sprintf("invalid experiment type: %s", req.Type))
	}
	if req.AudiencePercentage != nil && (*req.AudiencePercentage < 0 || *req.AudiencePercentage > 100) {
		return nil, domain.NewValidationError("audience_percentage must be between 0 and 100")
	}
	if err := validateVariants(req.Variants); err != nil {
		return nil, err
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed starting transaction: %w", err)
	}

	builder := tx.Experiment.
		Create().
		SetName(req.Name).
		SetType(experiment.Type(req.Type)).
		SetNillableAudiencePercentage(req.AudiencePercentage).
		SetNillableStartDate(req.StartDate).
		SetNillableEndDate(req.EndDate).
		SetNillableMinDetectableEffect(req.MinDetectableEffect)

	if req.Description != "" {
		builder.SetDescription(req.Description)
	}
	if req.TargetAudience != "" {
		builder.SetTargetAudience(req.TargetAudience)
	}
	if req.Hypothesis != "" {
		builder.SetHypothesis(req.Hypothesis)
	}
	if req.PrimaryMetric != "" {
		builder.SetPrimaryMetric(req.PrimaryMetric)
	}
	if req.SecondaryMetrics != nil {
		builder.SetSecondaryMetrics(req.SecondaryMetrics)
	}
	if req.Segmentation != nil {
		builder.SetSegmentation(req.Segmentation)
	}

	exp, err := builder.Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create experiment: %w", err)
	}

	variantBuilders := make([]*ent.ExperimentVariantCreate, len(req.Variants))
	for i, v := range req.Variants {
		vb := tx.ExperimentVariant.
			Create().
			SetExperimentID(exp.ID).
			SetName(v.Name).
			SetIsControl(v.IsControl)
		if v.Description != "" {
			vb.SetDescription(v.Description)
		}
		if v.Configuration != nil {
			vb.SetConfiguration(v.Configuration)
		}
		variantBuilders[i] = vb
	}

	if _, err := tx.ExperimentVariant.CreateBulk(variantBuilders...).Save(ctx); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create variants: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed committing transaction: %w", err)
	}

	return s.FindByID(ctx, exp.ID)
}

// FindAll returns all experiments, newest first, optionally filtered by status
func (s *Service) FindAll(ctx context.Context, status string) ([]*ent.Experiment, error) {
	q := s.db.Experiment.
		Query().
		WithVariants().
		Order(ent.Desc(experiment.FieldCreatedAt))

	if status != "" {
		if err := experiment.StatusValidator(experiment.Status(status)); err != nil {
			return nil, domain.NewValidationError(fmt.Sprintf("invalid experiment status: %s", status))
		}
		q = q.Where(experiment.StatusEQ(experiment.Status(status)))
	}

	exps, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list experiments: %w", err)
	}
	return exps, nil
}

// FindByID returns an experiment with its variants
func (s *Service) FindByID(ctx context.Context, id int) (*ent.Experiment, error) {
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

// Update applies a partial update to an experiment. Status is never touched
// here; lifecycle transitions go through Start/Pause/Complete/Archive.
// Variants may only be replaced while the experiment is still draft, since
// existing assignments reference variant rows.
func (s *Service) Update(ctx context.Context, id int, req *models.UpdateExperimentRequest) (*ent.Experiment, error) {
	exp, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.AudiencePercentage != nil && (*req.AudiencePercentage < 0 || *req.AudiencePercentage > 100) {
		return nil, domain.NewValidationError("audience_percentage must be between 0 and 100")
	}
	if req.Variants != nil {
		if exp.Status != experiment.StatusDraft {
			return nil, domain.NewPreconditionFailedError("variants can only be replaced while the experiment is draft")
		}
		if err := validateVariants(req.Variants); err != nil {
			return nil, err
		}
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed starting transaction: %w", err)
	}

	upd := tx.Experiment.UpdateOneID(id)
	if req.Name != nil {
		upd.SetName(*req.Name)
	}
	if req.Description != nil {
		upd.SetDescription(*req.Description)
	}
	if req.TargetAudience != nil {
		upd.SetTargetAudience(*req.TargetAudience)
	}
	if req.AudiencePercentage != nil {
		upd.SetAudiencePercentage(*req.AudiencePercentage)
	}
	if req.StartDate != nil {
		upd.SetStartDate(*req.StartDate)
	}
	if req.EndDate != nil {
		upd.SetEndDate(*req.EndDate)
	}
	if req.Hypothesis != nil {
		upd.SetHypothesis(*req.Hypothesis)
	}
	if req.PrimaryMetric != nil {
		upd.SetPrimaryMetric(*req.PrimaryMetric)
	}
	if req.SecondaryMetrics != nil {
		upd.SetSecondaryMetrics(req.SecondaryMetrics)
	}
	if req.Segmentation != nil {
		upd.SetSegmentation(req.Segmentation)
	}
	if req.MinDetectableEffect != nil {
		upd.SetMinDetectableEffect(*req.MinDetectableEffect)
	}

	if _, err := upd.Save(ctx); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to update experiment: %w", err)
	}

	if req.Variants != nil {
		if _, err := tx.ExperimentVariant.
			Delete().
			Where(experimentvariant.ExperimentIDEQ(id)).
			Exec(ctx); err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("failed to delete variants: %w", err)
		}

		for _, v := range req.Variants {
			vb := tx.ExperimentVariant.
				Create().
				SetExperimentID(id).
				SetName(v.Name).
				SetIsControl(v.IsControl)
			if v.Description != "" {
				vb.SetDescription(v.Description)
			}
			if v.Configuration != nil {
				vb.SetConfiguration(v.Configuration)
			}
			if _, err := vb.Save(ctx); err != nil {
				tx.Rollback()
				return nil, fmt.Errorf("failed to create variant: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed committing transaction: %w", err)
	}

	return s.FindByID(ctx, id)
}

// UpdateVariant applies a partial update to a single variant
func (s *Service) UpdateVariant(ctx context.Context, experimentID, variantID int, req *models.UpdateVariantRequest) (*ent.ExperimentVariant, error) {
	v, err := s.db.ExperimentVariant.
		Query().
		Where(
			experimentvariant.IDEQ(variantID),
			experimentvariant.ExperimentIDEQ(experimentID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("variant")
		}
		return nil, fmt.Errorf("failed to get variant: %w", err)
	}

	upd := v.Update()
	if req.Name != nil {
		upd.SetName(*req.Name)
	}
	if req.Description != nil {
		upd.SetDescription(*req.Description)
	}
	if req.Configuration != nil {
		upd.SetConfiguration(req.Configuration)
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update variant: %w", err)
	}
	return updated, nil
}

// Remove deletes an experiment together with its variants, assignments, and
// tracked results
func (s *Service) Remove(ctx context.Context, id int) error {
	if _, err := s.FindByID(ctx, id); err != nil {
		return err
	}

	variantIDs, err := s.db.ExperimentVariant.
		Query().
		Where(experimentvariant.ExperimentIDEQ(id)).
		IDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list variants: %w", err)
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed starting transaction: %w", err)
	}

	if len(variantIDs) > 0 {
		if _, err := tx.ExperimentResult.
			Delete().
			Where(experimentresult.VariantIDIn(variantIDs...)).
			Exec(ctx); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to delete results: %w", err)
		}
	}

	if _, err := tx.ExperimentAssignment.
		Delete().
		Where(experimentassignment.ExperimentIDEQ(id)).
		Exec(ctx); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to delete assignments: %w", err)
	}

	if _, err := tx.ExperimentVariant.
		Delete().
		Where(experimentvariant.ExperimentIDEQ(id)).
		Exec(ctx); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to delete variants: %w", err)
	}

	if err := tx.Experiment.DeleteOneID(id).Exec(ctx); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to delete experiment: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed committing transaction: %w", err)
	}

	s.invalidateActiveCache(ctx)
	return nil
}

// Start transitions an experiment to running. Allowed from draft and paused.
func (s *Service) Start(ctx context.Context, id int) (*ent.Experiment, error) {
	exp, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if exp.Status != experiment.StatusDraft && exp.Status != experiment.StatusPaused {
		return nil, domain.NewPreconditionFailedError(fmt.Sprintf("cannot start experiment in status %s", exp.Status))
	}

	upd := s.db.Experiment.UpdateOneID(id).SetStatus(experiment.StatusRunning)
	if exp.StartDate == nil {
		upd.SetStartDate(time.Now())
	}

	if _, err := upd.Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to start experiment: %w", err)
	}

	s.invalidateActiveCache(ctx)
	return s.FindByID(ctx, id)
}

// Pause transitions a running experiment to paused
func (s *Service) Pause(ctx context.Context, id int) (*ent.Experiment, error) {
	exp, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if exp.Status != experiment.StatusRunning {
		return nil, domain.NewPreconditionFailedError(fmt.Sprintf("cannot pause experiment in status %s", exp.Status))
	}

	if _, err := s.db.Experiment.
		UpdateOneID(id).
		SetStatus(experiment.StatusPaused).
		Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to pause experiment: %w", err)
	}

	s.invalidateActiveCache(ctx)
	return s.FindByID(ctx, id)
}

// Complete finishes an experiment. Allowed from running and paused.
func (s *Service) Complete(ctx context.Context, id int) (*ent.Experiment, error) {
	exp, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if exp.Status != experiment.StatusRunning && exp.Status != experiment.StatusPaused {
		return nil, domain.NewPreconditionFailedError(fmt.Sprintf("cannot complete experiment in status %s", exp.Status))
	}

	upd := s.db.Experiment.UpdateOneID(id).SetStatus(experiment.StatusCompleted)
	if exp.EndDate == nil {
		upd.SetEndDate(time.Now())
	}

	if _, err := upd.Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to complete experiment: %w", err)
	}

	s.invalidateActiveCache(ctx)
	return s.FindByID(ctx, id)
}

// Archive retires an experiment. Allowed from any status except running;
// a running experiment has to be paused or completed first.
func (s *Service) Archive(ctx context.Context, id int) (*ent.Experiment, error) {
	exp, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if exp.Status == experiment.StatusRunning {
		return nil, domain.NewPreconditionFailedError("cannot archive a running experiment")
	}

	if _, err := s.db.Experiment.
		UpdateOneID(id).
		SetStatus(experiment.StatusArchived).
		Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to archive experiment: %w", err)
	}

	s.invalidateActiveCache(ctx)
	return s.FindByID(ctx, id)
}

// DeclareWinner marks one of the experiment's variants as the winner.
// Allowed in any status; the variant must belong to the experiment.
func (s *Service) DeclareWinner(ctx context.Context, experimentID, variantID int) (*ent.Experiment, error) {
	exp, err := s.FindByID(ctx, experimentID)
	if err != nil {
		return nil, err
	}

	found := false
	for _, v := range exp.Edges.Variants {
		if v.ID == variantID {
			found = true
			break
		}
	}
	if !found {
		return nil, domain.NewValidationError("variant does not belong to this experiment")
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed starting transaction: %w", err)
	}

	// Re-declaring moves the flag, it never leaves two winners behind
	if _, err := tx.ExperimentVariant.
		Update().
		Where(experimentvariant.ExperimentIDEQ(experimentID)).
		SetIsWinner(false).
		Save(ctx); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to clear winner flags: %w", err)
	}

	if _, err := tx.ExperimentVariant.
		UpdateOneID(variantID).
		SetIsWinner(true).
		Save(ctx); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to set winner flag: %w", err)
	}

	if _, err := tx.Experiment.
		UpdateOneID(experimentID).
		SetHasWinner(true).
		SetWinningVariantID(variantID).
		Save(ctx); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to record winner: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed committing transaction: %w", err)
	}

	return s.FindByID(ctx, experimentID)
}

// Results aggregates per-variant counts and revenue for an experiment
func (s *Service) Results(ctx context.Context, id int) (*ExperimentReport, error) {
	exp, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	report := &ExperimentReport{
		ExperimentID: exp.ID,
		Name:         exp.Name,
		Status:       string(exp.Status),
		StartDate:    exp.StartDate,
		EndDate:      exp.EndDate,
		Variants:     make([]VariantSummary, 0, len(exp.Edges.Variants)),
	}

	for _, v := range exp.Edges.Variants {
		assignments, err := s.db.ExperimentAssignment.
			Query().
			Where(experimentassignment.VariantIDEQ(v.ID)).
			Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count assignments: %w", err)
		}

		impressions, err := s.countResults(ctx, v.ID, experimentresult.ResultTypeImpression)
		if err != nil {
			return nil, err
		}
		interactions, err := s.countResults(ctx, v.ID, experimentresult.ResultTypeClick)
		if err != nil {
			return nil, err
		}
		conversions, err := s.countResults(ctx, v.ID, experimentresult.ResultTypeConversion)
		if err != nil {
			return nil, err
		}

		revenueRows, err := s.db.ExperimentResult.
			Query().
			Where(
				experimentresult.VariantIDEQ(v.ID),
				experimentresult.ResultTypeEQ(experimentresult.ResultTypeRevenue),
			).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to query revenue: %w", err)
		}

		revenue := 0.0
		for _, r := range revenueRows {
			if r.Value != nil {
				revenue += *r.Value
			}
		}

		rate := 0.0
		if impressions > 0 {
			rate = float64(conversions) / float64(impressions)
		}

		report.TotalAssignments += assignments
		report.Variants = append(report.Variants, VariantSummary{
			VariantID:      v.ID,
			VariantName:    v.Name,
			IsControl:      v.IsControl,
			IsWinner:       v.IsWinner,
			Assignments:    assignments,
			Impressions:    impressions,
			Interactions:   interactions,
			Conversions:    conversions,
			ConversionRate: rate,
			Revenue:        revenue,
		})
	}

	return report, nil
}

func (s *Service) countResults(ctx context.Context, variantID int, rt experimentresult.ResultType) (int, error) {
	count, err := s.db.ExperimentResult.
		Query().
		Where(
			experimentresult.VariantIDEQ(variantID),
			experimentresult.ResultTypeEQ(rt),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s results: %w", rt, err)
	}
	return count, nil
}

func (s *Service) invalidateActiveCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeletePattern(ctx, activeCachePattern); err != nil {
		log.Printf("⚠️ Failed to invalidate active experiment cache: %v", err)
	}
}

func validateVariants(variants []models.VariantRequest) error {
	if len(variants) == 0 {
		return domain.NewValidationError("experiment must have at least one variant")
	}

	controls := 0
	for _, v := range variants {
		if v.IsControl {
			controls++
		}
	}
	if controls != 1 {
		return domain.NewValidationError("experiment must have exactly one control variant")
	}
	return nil
}
