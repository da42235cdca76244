// Package assignment buckets visitors into experiment variants and records
// tracked events against them.
package assignment

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/variantlab/abtest/ent"
	"github.com/variantlab/abtest/ent/experiment"
	"github.com/variantlab/abtest/ent/experimentassignment"
	"github.com/variantlab/abtest/ent/experimentresult"
	"github.com/variantlab/abtest/pkg/cache"
	"github.com/variantlab/abtest/pkg/domain"
	"github.com/variantlab/abtest/pkg/metrics"
)

const (
	activeCacheKeyPrefix = "experiments:active:"
	activeCacheTTL       = time.Minute
)

// VariantConfiguration is what the consuming feature receives for one
// experiment the visitor participates in
type VariantConfiguration struct {
	VariantID     int                    `json:"variant_id"`
	VariantName   string                 `json:"variant_name"`
	Configuration map[string]interface{} `json:"configuration"`
	AssignmentID  int                    `json:"assignment_id"`
}

// Service handles visitor bucketing and event tracking
type Service struct {
	db      *ent.Client
	cache   *cache.Client
	metrics *metrics.Metrics
}

// NewService creates a new assignment service. Cache and metrics may be nil.
func NewService(db *ent.Client, cacheClient *cache.Client, m *metrics.Metrics) *Service {
	return &Service{db: db, cache: cacheClient, metrics: m}
}

// GetOrCreateAssignment returns the visitor's assignment for an experiment,
// bucketing them on first contact. Repeated calls with the same identity
// return the same row. Exactly one of userID/sessionID identifies the
// visitor.
func (s *Service) GetOrCreateAssignment(ctx context.Context, experimentID int, userID, sessionID string) (*ent.ExperimentAssignment, error) {
	if err := validateIdentity(userID, sessionID); err != nil {
		return nil, err
	}

	exp, err := s.db.Experiment.
		Query().
		Where(experiment.IDEQ(experimentID)).
		WithVariants().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("experiment")
		}
		return nil, fmt.Errorf("failed to get experiment: %w", err)
	}

	if exp.Status != experiment.StatusRunning {
		return nil, domain.NewPreconditionFailedError(fmt.Sprintf("experiment is not running (status: %s)", exp.Status))
	}

	existing, err := s.findAssignment(ctx, experimentID, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	variant, err := s.pickVariant(exp)
	if err != nil {
		return nil, err
	}

	builder := s.db.ExperimentAssignment.
		Create().
		SetExperimentID(exp.ID).
		SetVariantID(variant.ID)
	if userID != "" {
		builder.SetUserID(userID)
	} else {
		builder.SetSessionID(sessionID)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		// A concurrent request for the same visitor won the insert race.
		// The unique index makes the re-read authoritative.
		if ent.IsConstraintError(err) {
			winner, lookupErr := s.findAssignment(ctx, experimentID, userID, sessionID)
			if lookupErr != nil {
				return nil, lookupErr
			}
			if winner != nil {
				return winner, nil
			}
			return nil, domain.NewConflictError("assignment already exists")
		}
		return nil, fmt.Errorf("failed to create assignment: %w", err)
	}

	if s.metrics != nil {
		s.metrics.RecordAssignmentCreated(string(exp.Type))
	}

	return created, nil
}

// GetActiveExperiments returns running experiments of a given type, with
// variants loaded. Results are cached briefly since every storefront request
// hits this path. An unknown type yields an empty list, not an error.
func (s *Service) GetActiveExperiments(ctx context.Context, experimentType string) ([]*ent.Experiment, error) {
	if err := experiment.TypeValidator(experiment.Type(experimentType)); err != nil {
		log.Printf("⚠️ Unknown experiment type requested: %s", experimentType)
		return []*ent.Experiment{}, nil
	}

	cacheKey := activeCacheKeyPrefix + experimentType

	if s.cache != nil {
		val, err := s.cache.Get(ctx, cacheKey)
		if err == nil {
			var cached []*ent.Experiment
			if jsonErr := json.Unmarshal([]byte(val), &cached); jsonErr == nil {
				if s.metrics != nil {
					s.metrics.RecordCacheHit("redis")
				}
				return cached, nil
			}
		} else if err != redis.Nil {
			log.Printf("⚠️ Active experiment cache read failed: %v", err)
		}
		if s.metrics != nil {
			s.metrics.RecordCacheMiss("redis")
		}
	}

	exps, err := s.db.Experiment.
		Query().
		Where(
			experiment.StatusEQ(experiment.StatusRunning),
			experiment.TypeEQ(experiment.Type(experimentType)),
		).
		WithVariants().
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query active experiments: %w", err)
	}

	if s.cache != nil {
		if payload, err := json.Marshal(exps); err == nil {
			if err := s.cache.Set(ctx, cacheKey, payload, activeCacheTTL); err != nil {
				log.Printf("⚠️ Active experiment cache write failed: %v", err)
			}
		}
	}

	return exps, nil
}

// GetVariantConfiguration assigns the visitor to every running experiment of
// the given type, auto-tracks impressions, and returns the configuration per
// experiment ID. Failures are logged and yield nil; this path never breaks
// the caller.
func (s *Service) GetVariantConfiguration(ctx context.Context, experimentType, userID, sessionID string) map[int]VariantConfiguration {
	if userID == "" && sessionID == "" {
		log.Printf("⚠️ Variant configuration requested without identity")
		return nil
	}

	exps, err := s.GetActiveExperiments(ctx, experimentType)
	if err != nil {
		log.Printf("⚠️ Failed to load active experiments: %v", err)
		return nil
	}
	if len(exps) == 0 {
		return nil
	}

	configs := make(map[int]VariantConfiguration, len(exps))
	for _, exp := range exps {
		a, err := s.GetOrCreateAssignment(ctx, exp.ID, userID, sessionID)
		if err != nil {
			log.Printf("⚠️ Failed to assign visitor to experiment %d: %v", exp.ID, err)
			return nil
		}

		var variant *ent.ExperimentVariant
		for _, v := range exp.Edges.Variants {
			if v.ID == a.VariantID {
				variant = v
				break
			}
		}
		if variant == nil {
			// Cached experiment is stale against the assignment row
			log.Printf("⚠️ Assignment %d references unknown variant %d", a.ID, a.VariantID)
			return nil
		}

		s.TrackImpression(ctx, a.ID)

		configs[exp.ID] = VariantConfiguration{
			VariantID:     variant.ID,
			VariantName:   variant.Name,
			Configuration: variant.Configuration,
			AssignmentID:  a.ID,
		}
	}

	return configs
}

// GetUserAssignments returns a visitor's assignments, newest first, with
// experiment and variant loaded
func (s *Service) GetUserAssignments(ctx context.Context, userID, sessionID string) ([]*ent.ExperimentAssignment, error) {
	if userID == "" && sessionID == "" {
		return nil, domain.NewValidationError("either userId or sessionId must be provided")
	}

	q := s.db.ExperimentAssignment.
		Query().
		WithExperiment().
		WithVariant().
		Order(ent.Desc(experimentassignment.FieldCreatedAt))

	if userID != "" {
		q = q.Where(experimentassignment.UserIDEQ(userID))
	} else {
		q = q.Where(experimentassignment.SessionIDEQ(sessionID))
	}

	assignments, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments: %w", err)
	}
	return assignments, nil
}

// TrackImpression records that the visitor saw their variant. The flag is
// set once; an impression event row is appended on every call. Errors are
// logged and swallowed so tracking never breaks the product surface.
func (s *Service) TrackImpression(ctx context.Context, assignmentID int) {
	a, err := s.db.ExperimentAssignment.Get(ctx, assignmentID)
	if err != nil {
		log.Printf("⚠️ Failed to track impression for assignment %d: %v", assignmentID, err)
		return
	}

	if !a.HasImpression {
		s.setFlagOnce(ctx, assignmentID, experimentassignment.FieldHasImpression)
	}

	s.appendResult(ctx, a, experimentresult.ResultTypeImpression, nil, "", nil)
	s.recordEvent("impression")
}

// TrackInteraction records a click or comparable interaction
func (s *Service) TrackInteraction(ctx context.Context, assignmentID int, eventContext string, metadata map[string]interface{}) {
	a, err := s.db.ExperimentAssignment.Get(ctx, assignmentID)
	if err != nil {
		log.Printf("⚠️ Failed to track interaction for assignment %d: %v", assignmentID, err)
		return
	}

	if !a.HasInteraction {
		s.setFlagOnce(ctx, assignmentID, experimentassignment.FieldHasInteraction)
	}

	s.appendResult(ctx, a, experimentresult.ResultTypeClick, nil, eventContext, metadata)
	s.recordEvent("interaction")
}

// TrackConversion records a conversion. When a monetary value is given, a
// revenue event is appended alongside the conversion event.
func (s *Service) TrackConversion(ctx context.Context, assignmentID int, value *float64, eventContext string, metadata map[string]interface{}) {
	a, err := s.db.ExperimentAssignment.Get(ctx, assignmentID)
	if err != nil {
		log.Printf("⚠️ Failed to track conversion for assignment %d: %v", assignmentID, err)
		return
	}

	if !a.HasConversion {
		s.setFlagOnce(ctx, assignmentID, experimentassignment.FieldHasConversion)
	}

	s.appendResult(ctx, a, experimentresult.ResultTypeConversion, nil, eventContext, metadata)
	if value != nil {
		s.appendResult(ctx, a, experimentresult.ResultTypeRevenue, value, eventContext, metadata)
	}
	s.recordEvent("conversion")
}

// TrackCustomEvent records an arbitrary named event. The event type and
// custom context are folded into the stored metadata.
func (s *Service) TrackCustomEvent(ctx context.Context, assignmentID int, eventType string, value *float64, eventContext string, metadata map[string]interface{}) {
	a, err := s.db.ExperimentAssignment.Get(ctx, assignmentID)
	if err != nil {
		log.Printf("⚠️ Failed to track custom event for assignment %d: %v", assignmentID, err)
		return
	}

	merged := make(map[string]interface{}, len(metadata)+2)
	for k, v := range metadata {
		merged[k] = v
	}
	merged["event_type"] = eventType
	if eventContext != "" {
		merged["custom_context"] = eventContext
	}

	s.appendResult(ctx, a, experimentresult.ResultTypeCustom, value, eventType, merged)
	s.recordEvent("custom")
}

// pickVariant draws the audience gate first, then a uniform variant.
// Visitors outside the audience share are pinned to control.
func (s *Service) pickVariant(exp *ent.Experiment) (*ent.ExperimentVariant, error) {
	variants := exp.Edges.Variants
	if len(variants) == 0 {
		return nil, domain.NewPreconditionFailedError("experiment has no variants")
	}

	if exp.AudiencePercentage != nil {
		if draw := rand.Float64() * 100; draw >= *exp.AudiencePercentage {
			for _, v := range variants {
				if v.IsControl {
					return v, nil
				}
			}
			return nil, domain.NewPreconditionFailedError("experiment has no control variant")
		}
	}

	return variants[rand.Intn(len(variants))], nil
}

func (s *Service) findAssignment(ctx context.Context, experimentID int, userID, sessionID string) (*ent.ExperimentAssignment, error) {
	q := s.db.ExperimentAssignment.
		Query().
		Where(experimentassignment.ExperimentIDEQ(experimentID))

	if userID != "" {
		q = q.Where(experimentassignment.UserIDEQ(userID))
	} else {
		q = q.Where(experimentassignment.SessionIDEQ(sessionID))
	}

	a, err := q.Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query assignment: %w", err)
	}
	return a, nil
}

// setFlagOnce flips a has_* flag with a guarded update so concurrent
// trackers cannot race each other
func (s *Service) setFlagOnce(ctx context.Context, assignmentID int, field string) {
	upd := s.db.ExperimentAssignment.
		Update().
		Where(experimentassignment.IDEQ(assignmentID))

	switch field {
	case experimentassignment.FieldHasImpression:
		upd.Where(experimentassignment.HasImpressionEQ(false)).SetHasImpression(true)
	case experimentassignment.FieldHasInteraction:
		upd.Where(experimentassignment.HasInteractionEQ(false)).SetHasInteraction(true)
	case experimentassignment.FieldHasConversion:
		upd.Where(experimentassignment.HasConversionEQ(false)).SetHasConversion(true)
	default:
		return
	}

	if _, err := upd.Save(ctx); err != nil {
		log.Printf("⚠️ Failed to update %s for assignment %d: %v", field, assignmentID, err)
	}
}

func (s *Service) appendResult(ctx context.Context, a *ent.ExperimentAssignment, rt experimentresult.ResultType, value *float64, eventContext string, metadata map[string]interface{}) {
	builder := s.db.ExperimentResult.
		Create().
		SetVariantID(a.VariantID).
		SetResultType(rt).
		SetNillableValue(value)

	if a.UserID != "" {
		builder.SetUserID(a.UserID)
	}
	if a.SessionID != "" {
		builder.SetSessionID(a.SessionID)
	}
	if eventContext != "" {
		builder.SetContext(eventContext)
	}
	if metadata != nil {
		builder.SetMetadata(metadata)
	}

	if _, err := builder.Save(ctx); err != nil {
		log.Printf("⚠️ Failed to record %s result for assignment %d: %v", rt, a.ID, err)
	}
}

func (s *Service) recordEvent(eventType string) {
	if s.metrics != nil {
		s.metrics.RecordEventTracked(eventType)
	}
}

func validateIdentity(userID, sessionID string) error {
	if userID == "" && sessionID == "" {
		return domain.NewValidationError("either userId or sessionId must be provided")
	}
	if userID != "" && sessionID != "" {
		return domain.NewValidationError("only one of userId or sessionId may be provided")
	}
	return nil
}
