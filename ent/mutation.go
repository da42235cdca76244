// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/variantlab/abtest/ent/experiment"
	"github.com/variantlab/abtest/ent/experimentassignment"
	"github.com/variantlab/abtest/ent/experimentresult"
	"github.com/variantlab/abtest/ent/experimentvariant"
	"github.com/variantlab/abtest/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeExperiment           = "Experiment"
	TypeExperimentAssignment = "ExperimentAssignment"
	TypeExperimentResult     = "ExperimentResult"
	TypeExperimentVariant    = "ExperimentVariant"
)

// ExperimentMutation represents an operation that mutates the Experiment nodes in the graph.
type ExperimentMutation struct {
	config
	op                       Op
	typ                      string
	id                       *int
	name                     *string
	description              *string
	status                   *experiment.Status
	_type                    *experiment.Type
	target_audience          *string
	audience_percentage      *float64
	addaudience_percentage   *float64
	start_date               *time.Time
	end_date                 *time.Time
	hypothesis               *string
	primary_metric           *string
	secondary_metrics        *[]string
	appendsecondary_metrics  []string
	segmentation             *map[string]interface{}
	min_detectable_effect    *float64
	addmin_detectable_effect *float64
	has_winner               *bool
	winning_variant_id       *int
	addwinning_variant_id    *int
	created_at               *time.Time
	updated_at               *time.Time
	clearedFields            map[string]struct{}
	variants                 map[int]struct{}
	removedvariants          map[int]struct{}
	clearedvariants          bool
	assignments              map[int]struct{}
	removedassignments       map[int]struct{}
	clearedassignments       bool
	done                     bool
	oldValue                 func(context.Context) (*Experiment, error)
	predicates               []predicate.Experiment
}

var _ ent.Mutation = (*ExperimentMutation)(nil)

// experimentOption allows management of the mutation configuration using functional options.
type experimentOption func(*ExperimentMutation)

// newExperimentMutation creates new mutation for the Experiment entity.
func newExperimentMutation(c config, op Op, opts ...experimentOption) *ExperimentMutation {
	m := &ExperimentMutation{
		config:        c,
		op:            op,
		typ:           TypeExperiment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExperimentID sets the ID field of the mutation.
func withExperimentID(id int) experimentOption {
	return func(m *ExperimentMutation) {
		var (
			err   error
			once  sync.Once
			value *Experiment
		)
		m.oldValue = func(ctx context.Context) (*Experiment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Experiment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExperiment sets the old Experiment of the mutation.
func withExperiment(node *Experiment) experimentOption {
	return func(m *ExperimentMutation) {
		m.oldValue = func(context.Context) (*Experiment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExperimentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExperimentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExperimentMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExperimentMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Experiment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ExperimentMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ExperimentMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Experiment entity.
// If the Experiment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExperimentMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ExperimentMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *ExperimentMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ExperimentMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Experiment entity.
// If the Experiment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExperimentMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ExperimentMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[experiment.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ExperimentMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[experiment.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ExperimentMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, experiment.FieldDescription)
}

// SetStatus sets the "status" field.
func (m *ExperimentMutation) SetStatus(e experiment.Status) {
	m.status = &e
}

// Status returns the value of the "status" field in the mutation.
func (m *ExperimentMutation) Status() (r experiment.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Experiment entity.
// If the Experiment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExperimentMutation) OldStatus(ctx context.Context) (v experiment.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ExperimentMutation) ResetStatus() {
	m.status = nil
}

// SetType sets the "type" field.
func (m *ExperimentMutation) SetType(e experiment.Type) {
	m._type = &e
}

// GetType returns the value of the "type" field in the mutation.
func (m *ExperimentMutation) GetType() (r experiment.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Experiment entity.
// If the Experiment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExperimentMutation) OldType(ctx context.Context) (v experiment.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *ExperimentMutation) ResetType() {
	m._type = nil
}

// SetTargetAudience sets the "target_audience" field.
func (m *ExperimentMutation) SetTargetAudience(s string) {
	m.target_audience = &s
}

// TargetAudience returns the value of the "target_audience" field in the mutation.
func (m *ExperimentMutation) TargetAudience() (r string, exists bool) {
	v := m.target_audience
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetAudience returns the old "target_audience" field's value of the Experiment entity.
// If the Experiment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExperimentMutation) OldTargetAudience(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetAudience is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetAudience requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetAudience: %w", err)
	}
	return oldValue.TargetAudience, nil
}

// ClearTargetAudience clears the value of the "target_audience" field.
func (m *ExperimentMutation) ClearTargetAudience() {
	m.target_audience = nil
	m.clearedFields[experiment.FieldTargetAudience] = struct{}{}
}

// TargetAudienceCleared returns if the "target_audience" field was cleared in this mutation.
func (m *ExperimentMutation) TargetAudienceCleared() bool {
	_, ok := m.clearedFields[experiment.FieldTargetAudience]
	return ok
}

// ResetTargetAudience resets all changes to the "target_audience" field.
func (m *ExperimentMutation) ResetTargetAudience() {
	m.target_audience = nil
	delete(m.clearedFields, experiment.FieldTargetAudience)
}

// SetAudiencePercentage sets the "audience_percentage" field.
func (m *ExperimentMutation) SetAudiencePercentage(f float64) {
	m.audience_percentage = &f
	m.addaudience_percentage = nil
}

// AudiencePercentage returns the value of the "audience_percentage" field in the mutation.
func (m *ExperimentMutation) AudiencePercentage() (r float64, exists bool) {
	v := m.audience_percentage
	if v == nil {
		return
	}
	return *v, true
}

// OldAudiencePercentage returns the old "audience_percentage" field's value of the Experiment entity.
// If the Experiment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExperimentMutation) OldAudiencePercentage(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAudiencePercentage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAudiencePercentage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAudiencePercentage: %w", err)
	}
	return oldValue.AudiencePercentage, nil
}

// AddAudiencePercentage adds f to the "audience_percentage" field.
func (m *ExperimentMutation) AddAudiencePercentage(f float64) {
	if m.addaudience_percentage != nil {
		*m.addaudience_percentage += f
	} else {
		m.addaudience_percentage = &f
	}
}

// AddedAudiencePercentage returns the value that was added to the "audience_percentage" field in this mutation.
func (m *ExperimentMutation) AddedAudiencePercentage() (r float64, exists bool) {
	v := m.addaudience_percentage
	if v == nil {
		return
	}
	return *v, true
}

// ClearAudiencePercentage clears the value of the "audience_percentage" field.
func (m *ExperimentMutation) ClearAudiencePercentage() {
	m.audience_percentage = nil
	m.addaudience_percentage = nil
	m.clearedFields[experiment.FieldAudiencePercentage] = struct{}{}
}

// AudiencePercentageCleared returns if the "audience_percentage" field was cleared in this mutation.
func (m *ExperimentMutation) AudiencePercentageCleared() bool {
	_, ok := m.clearedFields[experiment.FieldAudiencePercentage]
	return ok
}

// ResetAudiencePercentage resets all changes to the "audience_percentage" field.
func (m *ExperimentMutation) ResetAudiencePercentage() {
	m.audience_percentage = nil
	m.addaudience_percentage = nil
	delete(m.clearedFields, experiment.FieldAudiencePercentage)
}

// SetStartDate sets the "start_date" field.
func (m *ExperimentMutation) SetStartDate(t time.Time) {
	m.start_date = &t
}

// StartDate returns the value of the "start_date" field in the mutation.
func (m *ExperimentMutation) StartDate() (r time.Time, exists bool) {
	v := m.start_date
	if v == nil {
		return
	}
	return *v, true
}

// OldStartDate returns the old "start_date" field's value of the Experiment entity.
// If the Experiment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExperimentMutation) OldStartDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartDate: %w", err)
	}
	return oldValue.StartDate, nil
}

// ClearStartDate clears the value of the "start_date" field.
func (m *ExperimentMutation) ClearStartDate() {
	m.start_date = nil
	m.clearedFields[experiment.FieldStartDate] = struct{}{}
}

// StartDateCleared returns if the "start_date" field was cleared in this mutation.
func (m *ExperimentMutation) StartDateCleared() bool {
	_, ok := m.clearedFields[experiment.FieldStartDate]
	return ok
}

// ResetStartDate resets all changes to the "start_date" field.
func (m *ExperimentMutation) ResetStartDate() {
	m.start_date = nil
	delete(m.clearedFields, experiment.FieldStartDate)
}

// SetEndDate sets the "end_date" field.
func (m *ExperimentMutation) SetEndDate(t time.Time) {
	m.end_date = &t
}

// EndDate returns the value of the "end_date" field in the mutation.
func (m *ExperimentMutation) EndDate() (r time.Time, exists bool) {
	v := m.end_date
	if v == nil {
		return
	}
	return *v, true
}

// OldEndDate returns the old "end_date" field's value of the Experiment entity.
// If the Experiment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExperimentMutation) OldEndDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndDate: %w", err)
	}
	return oldValue.EndDate, nil
}

// ClearEndDate clears the value of the "end_date" field.
func (m *ExperimentMutation) ClearEndDate() {
	m.end_date = nil
	m.clearedFields[experiment.FieldEndDate] = struct{}{}
}

// EndDateCleared returns if the "end_date" field was cleared in this mutation.
func (m *ExperimentMutation) EndDateCleared() bool {
	_, ok := m.clearedFields[experiment.FieldEndDate]
	return ok
}

// ResetEndDate resets all changes to the "end_date" field.
func (m *ExperimentMutation) ResetEndDate() {
	m.end_date = nil
	delete(m.clearedFields, experiment.FieldEndDate)
}

// SetHypothesis sets the "hypothesis" field.
func (m *ExperimentMutation) SetHypothesis(s string) {
	m.hypothesis = &s
}

// Hypothesis returns the value of the "hypothesis" field in the mutation.
func (m *ExperimentMutation) Hypothesis() (r string, exists bool) {
	v := m.hypothesis
	if v == nil {
		return
	}
	return *v, true
}

// OldHypothesis returns the old "hypothesis" field's value of the Experiment entity.
// If the Experiment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExperimentMutation) OldHypothesis(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHypothesis is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHypothesis requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHypothesis: %w", err)
	}
	return oldValue.Hypothesis, nil
}

// ClearHypothesis clears the value of the "hypothesis" field.
func (m *ExperimentMutation) ClearHypothesis() {
	m.hypothesis = nil
	m.clearedFields[experiment.FieldHypothesis] = struct{}{}
}

// HypothesisCleared returns if the "hypothesis" field was cleared in this mutation.
func (m *ExperimentMutation) HypothesisCleared() bool {
	_, ok := m.clearedFields[experiment.FieldHypothesis]
	return ok
}

// ResetHypothesis resets all changes to the "hypothesis" field.
func (m *ExperimentMutation) ResetHypothesis() {
	m.hypothesis = nil
	delete(m.clearedFields, experiment.FieldHypothesis)
}

// SetPrimaryMetric sets the "primary_metric" field.
func (m *ExperimentMutation) SetPrimaryMetric(s string) {
	m.primary_metric = &s
}

// PrimaryMetric returns the value of the "primary_metric" field in the mutation.
func (m *ExperimentMutation) PrimaryMetric() (r string, exists bool) {
	v := m.primary_metric
	if v == nil {
		return
	}
	return *v, true
}

// OldPrimaryMetric returns the old "primary_metric" field's value of the Experiment entity.
// If the Experiment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExperimentMutation) OldPrimaryMetric(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrimaryMetric is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrimaryMetric requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrimaryMetric: %w", err)
	}
	return oldValue.PrimaryMetric, nil
}

// ClearPrimaryMetric clears the value of the "primary_metric" field.
func (m *ExperimentMutation) ClearPrimaryMetric() {
	m.primary_metric = nil
	m.clearedFields[experiment.FieldPrimaryMetric] = struct{}{}
}

// PrimaryMetricCleared returns if the "primary_metric" field was cleared in this mutation.
func (m *ExperimentMutation) PrimaryMetricCleared() bool {
	_, ok := m.clearedFields[experiment.FieldPrimaryMetric]
	return ok
}

// ResetPrimaryMetric resets all changes to the "primary_metric" field.
func (m *ExperimentMutation) ResetPrimaryMetric() {
	m.primary_metric = nil
	delete(m.clearedFields, experiment.FieldPrimaryMetric)
}

// SetSecondaryMetrics sets the "secondary_metrics" field.
func (m *ExperimentMutation) SetSecondaryMetrics(s []string) {
	m.secondary_metrics = &s
	m.appendsecondary_metrics = nil
}

// SecondaryMetrics returns the value of the "secondary_metrics" field in the mutation.
func (m *ExperimentMutation) SecondaryMetrics() (r []string, exists bool) {
	v := m.secondary_metrics
	if v == nil {
		return
	}
	return *v, true
}

// OldSecondaryMetrics returns the old "secondary_metrics" field's value of the Experiment entity.
// If the Experiment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExperimentMutation) OldSecondaryMetrics(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSecondaryMetrics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSecondaryMetrics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSecondaryMetrics: %w", err)
	}
	return oldValue.SecondaryMetrics, nil
}

// AppendSecondaryMetrics adds s to the "secondary_metrics" field.
func (m *ExperimentMutation) AppendSecondaryMetrics(s []string) {
	m.appendsecondary_metrics = append(m.appendsecondary_metrics, s...)
}

// AppendedSecondaryMetrics returns the list of values that were appended to the "secondary_metrics" field in this mutation.
func (m *ExperimentMutation) AppendedSecondaryMetrics() ([]string, bool) {
	if len(m.appendsecondary_metrics) == 0 {
		return nil, false
	}
	return m.appendsecondary_metrics, true
}

// ClearSecondaryMetrics clears the value of the "secondary_metrics" field.
func (m *ExperimentMutation) ClearSecondaryMetrics() {
	m.secondary_metrics = nil
	m.appendsecondary_metrics = nil
	m.clearedFields[experiment.FieldSecondaryMetrics] = struct{}{}
}

// SecondaryMetricsCleared returns if the "secondary_metrics" field was cleared in this mutation.
func (m *ExperimentMutation) SecondaryMetricsCleared() bool {
	_, ok := m.clearedFields[experiment.FieldSecondaryMetrics]
	return ok
}

// ResetSecondaryMetrics resets all changes to the "secondary_metrics" field.
func (m *ExperimentMutation) ResetSecondaryMetrics() {
	m.secondary_metrics = nil
	m.appendsecondary_metrics = nil
	delete(m.clearedFields, experiment.FieldSecondaryMetrics)
}

// SetSegmentation sets the "segmentation" field.
func (m *ExperimentMutation) SetSegmentation(value map[string]interface{}) {
	m.segmentation = &value
}

// Segmentation returns the value of the "segmentation" field in the mutation.
func (m *ExperimentMutation) Segmentation() (r map[string]interface{}, exists bool) {
	v := m.segmentation
	if v == nil {
		return
	}
	return *v, true
}

// OldSegmentation returns the old "segmentation" field's value of the Experiment entity.
// If the Experiment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExperimentMutation) OldSegmentation(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSegmentation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSegmentation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSegmentation: %w", err)
	}
	return oldValue.Segmentation, nil
}

// ClearSegmentation clears the value of the "segmentation" field.
func (m *ExperimentMutation) ClearSegmentation() {
	m.segmentation = nil
	m.clearedFields[experiment.FieldSegmentation] = struct{}{}
}

// SegmentationCleared returns if the "segmentation" field was cleared in this mutation.
func (m *ExperimentMutation) SegmentationCleared() bool {
	_, ok := m.clearedFields[experiment.FieldSegmentation]
	return ok
}

// ResetSegmentation resets all changes to the "segmentation" field.
func (m *ExperimentMutation) ResetSegmentation() {
	m.segmentation = nil
	delete(m.clearedFields, experiment.FieldSegmentation)
}

// SetMinDetectableEffect sets the "min_detectable_effect" field.
func (m *ExperimentMutation) SetMinDetectableEffect(f float64) {
	m.min_detectable_effect = &f
	m.addmin_detectable_effect = nil
}

// MinDetectableEffect returns the value of the "min_detectable_effect" field in the mutation.
func (m *ExperimentMutation) MinDetectableEffect() (r float64, exists bool) {
	v := m.min_detectable_effect
	if v == nil {
		return
	}
	return *v, true
}

// OldMinDetectableEffect returns the old "min_detectable_effect" field's value of the Experiment entity.
// If the Experiment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExperimentMutation) OldMinDetectableEffect(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMinDetectableEffect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMinDetectableEffect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMinDetectableEffect: %w", err)
	}
	return oldValue.MinDetectableEffect, nil
}

// AddMinDetectableEffect adds f to the "min_detectable_effect" field.
func (m *ExperimentMutation) AddMinDetectableEffect(f float64) {
	if m.addmin_detectable_effect != nil {
		*m.addmin_detectable_effect += f
	} else {
		m.addmin_detectable_effect = &f
	}
}

// AddedMinDetectableEffect returns the value that was added to the "min_detectable_effect" field in this mutation.
func (m *ExperimentMutation) AddedMinDetectableEffect() (r float64, exists bool) {
	v := m.addmin_detectable_effect
	if v == nil {
		return
	}
	return *v, true
}

// ClearMinDetectableEffect clears the value of the "min_detectable_effect" field.
func (m *ExperimentMutation) ClearMinDetectableEffect() {
	m.min_detectable_effect = nil
	m.addmin_detectable_effect = nil
	m.clearedFields[experiment.FieldMinDetectableEffect] = struct{}{}
}

// MinDetectableEffectCleared returns if the "min_detectable_effect" field was cleared in this mutation.
func (m *ExperimentMutation) MinDetectableEffectCleared() bool {
	_, ok := m.clearedFields[experiment.FieldMinDetectableEffect]
	return ok
}

// ResetMinDetectableEffect resets all changes to the "min_detectable_effect" field.
func (m *ExperimentMutation) ResetMinDetectableEffect() {
	m.min_detectable_effect = nil
	m.addmin_detectable_effect = nil
	delete(m.clearedFields, experiment.FieldMinDetectableEffect)
}

// SetHasWinner sets the "has_winner" field.
func (m *ExperimentMutation) SetHasWinner(b bool) {
	m.has_winner = &b
}

// HasWinner returns the value of the "has_winner" field in the mutation.
func (m *ExperimentMutation) HasWinner() (r bool, exists bool) {
	v := m.has_winner
	if v == nil {
		return
	}
	return *v, true
}

// OldHasWinner returns the old "has_winner" field's value of the Experiment entity.
// If the Experiment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExperimentMutation) OldHasWinner(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHasWinner is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHasWinner requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHasWinner: %w", err)
	}
	return oldValue.HasWinner, nil
}

// ResetHasWinner resets all changes to the "has_winner" field.
func (m *ExperimentMutation) ResetHasWinner() {
	m.has_winner = nil
}

// SetWinningVariantID sets the "winning_variant_id" field.
func (m *ExperimentMutation) SetWinningVariantID(i int) {
	m.winning_variant_id = &i
	m.addwinning_variant_id = nil
}

// WinningVariantID returns the value of the "winning_variant_id" field in the mutation.
func (m *ExperimentMutation) WinningVariantID() (r int, exists bool) {
	v := m.winning_variant_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWinningVariantID returns the old "winning_variant_id" field's value of the Experiment entity.
// If the Experiment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExperimentMutation) OldWinningVariantID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWinningVariantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWinningVariantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWinningVariantID: %w", err)
	}
	return oldValue.WinningVariantID, nil
}

// AddWinningVariantID adds i to the "winning_variant_id" field.
func (m *ExperimentMutation) AddWinningVariantID(i int) {
	if m.addwinning_variant_id != nil {
		*m.addwinning_variant_id += i
	} else {
		m.addwinning_variant_id = &i
	}
}

// AddedWinningVariantID returns the value that was added to the "winning_variant_id" field in this mutation.
func (m *ExperimentMutation) AddedWinningVariantID() (r int, exists bool) {
	v := m.addwinning_variant_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearWinningVariantID clears the value of the "winning_variant_id" field.
func (m *ExperimentMutation) ClearWinningVariantID() {
	m.winning_variant_id = nil
	m.addwinning_variant_id = nil
	m.clearedFields[experiment.FieldWinningVariantID] = struct{}{}
}

// WinningVariantIDCleared returns if the "winning_variant_id" field was cleared in this mutation.
func (m *ExperimentMutation) WinningVariantIDCleared() bool {
	_, ok := m.clearedFields[experiment.FieldWinningVariantID]
	return ok
}

// ResetWinningVariantID resets all changes to the "winning_variant_id" field.
func (m *ExperimentMutation) ResetWinningVariantID() {
	m.winning_variant_id = nil
	m.addwinning_variant_id = nil
	delete(m.clearedFields, experiment.FieldWinningVariantID)
}

// SetCreatedAt sets the "created_at" field.
func (m *ExperimentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExperimentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Experiment entity.
// If the Experiment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExperimentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExperimentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ExperimentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ExperimentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Experiment entity.
// If the Experiment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExperimentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ExperimentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddVariantIDs adds the "variants" edge to the ExperimentVariant entity by ids.
func (m *ExperimentMutation) AddVariantIDs(ids ...int) {
	if m.variants == nil {
		m.variants = make(map[int]struct{})
	}
	for i := range ids {
		m.variants[ids[i]] = struct{}{}
	}
}

// ClearVariants clears the "variants" edge to the ExperimentVariant entity.
func (m *ExperimentMutation) ClearVariants() {
	m.clearedvariants = true
}

// VariantsCleared reports if the "variants" edge to the ExperimentVariant entity was cleared.
func (m *ExperimentMutation) VariantsCleared() bool {
	return m.clearedvariants
}

// RemoveVariantIDs removes the "variants" edge to the ExperimentVariant entity by IDs.
func (m *ExperimentMutation) RemoveVariantIDs(ids ...int) {
	if m.removedvariants == nil {
		m.removedvariants = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.variants, ids[i])
		m.removedvariants[ids[i]] = struct{}{}
	}
}

// RemovedVariants returns the removed IDs of the "variants" edge to the ExperimentVariant entity.
func (m *ExperimentMutation) RemovedVariantsIDs() (ids []int) {
	for id := range m.removedvariants {
		ids = append(ids, id)
	}
	return
}

// VariantsIDs returns the "variants" edge IDs in the mutation.
func (m *ExperimentMutation) VariantsIDs() (ids []int) {
	for id := range m.variants {
		ids = append(ids, id)
	}
	return
}

// ResetVariants resets all changes to the "variants" edge.
func (m *ExperimentMutation) ResetVariants() {
	m.variants = nil
	m.clearedvariants = false
	m.removedvariants = nil
}

// AddAssignmentIDs adds the "assignments" edge to the ExperimentAssignment entity by ids.
func (m *ExperimentMutation) AddAssignmentIDs(ids ...int) {
	if m.assignments == nil {
		m.assignments = make(map[int]struct{})
	}
	for i := range ids {
		m.assignments[ids[i]] = struct{}{}
	}
}

// ClearAssignments clears the "assignments" edge to the ExperimentAssignment entity.
func (m *ExperimentMutation) ClearAssignments() {
	m.clearedassignments = true
}

// AssignmentsCleared reports if the "assignments" edge to the ExperimentAssignment entity was cleared.
func (m *ExperimentMutation) AssignmentsCleared() bool {
	return m.clearedassignments
}

// RemoveAssignmentIDs removes the "assignments" edge to the ExperimentAssignment entity by IDs.
func (m *ExperimentMutation) RemoveAssignmentIDs(ids ...int) {
	if m.removedassignments == nil {
		m.removedassignments = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.assignments, ids[i])
		m.removedassignments[ids[i]] = struct{}{}
	}
}

// RemovedAssignments returns the removed IDs of the "assignments" edge to the ExperimentAssignment entity.
func (m *ExperimentMutation) RemovedAssignmentsIDs() (ids []int) {
	for id := range m.removedassignments {
		ids = append(ids, id)
	}
	return
}

// AssignmentsIDs returns the "assignments" edge IDs in the mutation.
func (m *ExperimentMutation) AssignmentsIDs() (ids []int) {
	for id := range m.assignments {
		ids = append(ids, id)
	}
	return
}

// ResetAssignments resets all changes to the "assignments" edge.
func (m *ExperimentMutation) ResetAssignments() {
	m.assignments = nil
	m.clearedassignments = false
	m.removedassignments = nil
}

// Where appends a list predicates to the ExperimentMutation builder.
func (m *ExperimentMutation) Where(ps ...predicate.Experiment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExperimentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExperimentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Experiment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExperimentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExperimentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Experiment).
func (m *ExperimentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExperimentMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.name != nil {
		fields = append(fields, experiment.FieldName)
	}
	if m.description != nil {
		fields = append(fields, experiment.FieldDescription)
	}
	if m.status != nil {
		fields = append(fields, experiment.FieldStatus)
	}
	if m._type != nil {
		fields = append(fields, experiment.FieldType)
	}
	if m.target_audience != nil {
		fields = append(fields, experiment.FieldTargetAudience)
	}
	if m.audience_percentage != nil {
		fields = append(fields, experiment.FieldAudiencePercentage)
	}
	if m.start_date != nil {
		fields = append(fields, experiment.FieldStartDate)
	}
	if m.end_date != nil {
		fields = append(fields, experiment.FieldEndDate)
	}
	if m.hypothesis != nil {
		fields = append(fields, experiment.FieldHypothesis)
	}
	if m.primary_metric != nil {
		fields = append(fields, experiment.FieldPrimaryMetric)
	}
	if m.secondary_metrics != nil {
		fields = append(fields, experiment.FieldSecondaryMetrics)
	}
	if m.segmentation != nil {
		fields = append(fields, experiment.FieldSegmentation)
	}
	if m.min_detectable_effect != nil {
		fields = append(fields, experiment.FieldMinDetectableEffect)
	}
	if m.has_winner != nil {
		fields = append(fields, experiment.FieldHasWinner)
	}
	if m.winning_variant_id != nil {
		fields = append(fields, experiment.FieldWinningVariantID)
	}
	if m.created_at != nil {
		fields = append(fields, experiment.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, experiment.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExperimentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case experiment.FieldName:
		return m.Name()
	case experiment.FieldDescription:
		return m.Description()
	case experiment.FieldStatus:
		return m.Status()
	case experiment.FieldType:
		return m.GetType()
	case experiment.FieldTargetAudience:
		return m.TargetAudience()
	case experiment.FieldAudiencePercentage:
		return m.AudiencePercentage()
	case experiment.FieldStartDate:
		return m.StartDate()
	case experiment.FieldEndDate:
		return m.EndDate()
	case experiment.FieldHypothesis:
		return m.Hypothesis()
	case experiment.FieldPrimaryMetric:
		return m.PrimaryMetric()
	case experiment.FieldSecondaryMetrics:
		return m.SecondaryMetrics()
	case experiment.FieldSegmentation:
		return m.Segmentation()
	case experiment.FieldMinDetectableEffect:
		return m.MinDetectableEffect()
	case experiment.FieldHasWinner:
		return m.HasWinner()
	case experiment.FieldWinningVariantID:
		return m.WinningVariantID()
	case experiment.FieldCreatedAt:
		return m.CreatedAt()
	case experiment.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExperimentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case experiment.FieldName:
		return m.OldName(ctx)
	case experiment.FieldDescription:
		return m.OldDescription(ctx)
	case experiment.FieldStatus:
		return m.OldStatus(ctx)
	case experiment.FieldType:
		return m.OldType(ctx)
	case experiment.FieldTargetAudience:
		return m.OldTargetAudience(ctx)
	case experiment.FieldAudiencePercentage:
		return m.OldAudiencePercentage(ctx)
	case experiment.FieldStartDate:
		return m.OldStartDate(ctx)
	case experiment.FieldEndDate:
		return m.OldEndDate(ctx)
	case experiment.FieldHypothesis:
		return m.OldHypothesis(ctx)
	case experiment.FieldPrimaryMetric:
		return m.OldPrimaryMetric(ctx)
	case experiment.FieldSecondaryMetrics:
		return m.OldSecondaryMetrics(ctx)
	case experiment.FieldSegmentation:
		return m.OldSegmentation(ctx)
	case experiment.FieldMinDetectableEffect:
		return m.OldMinDetectableEffect(ctx)
	case experiment.FieldHasWinner:
		return m.OldHasWinner(ctx)
	case experiment.FieldWinningVariantID:
		return m.OldWinningVariantID(ctx)
	case experiment.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case experiment.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Experiment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExperimentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case experiment.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case experiment.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case experiment.FieldStatus:
		v, ok := value.(experiment.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case experiment.FieldType:
		v, ok := value.(experiment.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case experiment.FieldTargetAudience:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetAudience(v)
		return nil
	case experiment.FieldAudiencePercentage:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAudiencePercentage(v)
		return nil
	case experiment.FieldStartDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartDate(v)
		return nil
	case experiment.FieldEndDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndDate(v)
		return nil
	case experiment.FieldHypothesis:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHypothesis(v)
		return nil
	case experiment.FieldPrimaryMetric:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrimaryMetric(v)
		return nil
	case experiment.FieldSecondaryMetrics:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSecondaryMetrics(v)
		return nil
	case experiment.FieldSegmentation:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSegmentation(v)
		return nil
	case experiment.FieldMinDetectableEffect:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMinDetectableEffect(v)
		return nil
	case experiment.FieldHasWinner:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHasWinner(v)
		return nil
	case experiment.FieldWinningVariantID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWinningVariantID(v)
		return nil
	case experiment.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case experiment.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Experiment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExperimentMutation) AddedFields() []string {
	var fields []string
	if m.addaudience_percentage != nil {
		fields = append(fields, experiment.FieldAudiencePercentage)
	}
	if m.addmin_detectable_effect != nil {
		fields = append(fields, experiment.FieldMinDetectableEffect)
	}
	if m.addwinning_variant_id != nil {
		fields = append(fields, experiment.FieldWinningVariantID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExperimentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case experiment.FieldAudiencePercentage:
		return m.AddedAudiencePercentage()
	case experiment.FieldMinDetectableEffect:
		return m.AddedMinDetectableEffect()
	case experiment.FieldWinningVariantID:
		return m.AddedWinningVariantID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExperimentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case experiment.FieldAudiencePercentage:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAudiencePercentage(v)
		return nil
	case experiment.FieldMinDetectableEffect:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMinDetectableEffect(v)
		return nil
	case experiment.FieldWinningVariantID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWinningVariantID(v)
		return nil
	}
	return fmt.Errorf("unknown Experiment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExperimentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(experiment.FieldDescription) {
		fields = append(fields, experiment.FieldDescription)
	}
	if m.FieldCleared(experiment.FieldTargetAudience) {
		fields = append(fields, experiment.FieldTargetAudience)
	}
	if m.FieldCleared(experiment.FieldAudiencePercentage) {
		fields = append(fields, experiment.FieldAudiencePercentage)
	}
	if m.FieldCleared(experiment.FieldStartDate) {
		fields = append(fields, experiment.FieldStartDate)
	}
	if m.FieldCleared(experiment.FieldEndDate) {
		fields = append(fields, experiment.FieldEndDate)
	}
	if m.FieldCleared(experiment.FieldHypothesis) {
		fields = append(fields, experiment.FieldHypothesis)
	}
	if m.FieldCleared(experiment.FieldPrimaryMetric) {
		fields = append(fields, experiment.FieldPrimaryMetric)
	}
	if m.FieldCleared(experiment.FieldSecondaryMetrics) {
		fields = append(fields, experiment.FieldSecondaryMetrics)
	}
	if m.FieldCleared(experiment.FieldSegmentation) {
		fields = append(fields, experiment.FieldSegmentation)
	}
	if m.FieldCleared(experiment.FieldMinDetectableEffect) {
		fields = append(fields, experiment.FieldMinDetectableEffect)
	}
	if m.FieldCleared(experiment.FieldWinningVariantID) {
		fields = append(fields, experiment.FieldWinningVariantID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExperimentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExperimentMutation) ClearField(name string) error {
	switch name {
	case experiment.FieldDescription:
		m.ClearDescription()
		return nil
	case experiment.FieldTargetAudience:
		m.ClearTargetAudience()
		return nil
	case experiment.FieldAudiencePercentage:
		m.ClearAudiencePercentage()
		return nil
	case experiment.FieldStartDate:
		m.ClearStartDate()
		return nil
	case experiment.FieldEndDate:
		m.ClearEndDate()
		return nil
	case experiment.FieldHypothesis:
		m.ClearHypothesis()
		return nil
	case experiment.FieldPrimaryMetric:
		m.ClearPrimaryMetric()
		return nil
	case experiment.FieldSecondaryMetrics:
		m.ClearSecondaryMetrics()
		return nil
	case experiment.FieldSegmentation:
		m.ClearSegmentation()
		return nil
	case experiment.FieldMinDetectableEffect:
		m.ClearMinDetectableEffect()
		return nil
	case experiment.FieldWinningVariantID:
		m.ClearWinningVariantID()
		return nil
	}
	return fmt.Errorf("unknown Experiment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExperimentMutation) ResetField(name string) error {
	switch name {
	case experiment.FieldName:
		m.ResetName()
		return nil
	case experiment.FieldDescription:
		m.ResetDescription()
		return nil
	case experiment.FieldStatus:
		m.ResetStatus()
		return nil
	case experiment.FieldType:
		m.ResetType()
		return nil
	case experiment.FieldTargetAudience:
		m.ResetTargetAudience()
		return nil
	case experiment.FieldAudiencePercentage:
		m.ResetAudiencePercentage()
		return nil
	case experiment.FieldStartDate:
		m.ResetStartDate()
		return nil
	case experiment.FieldEndDate:
		m.ResetEndDate()
		return nil
	case experiment.FieldHypothesis:
		m.ResetHypothesis()
		return nil
	case experiment.FieldPrimaryMetric:
		m.ResetPrimaryMetric()
		return nil
	case experiment.FieldSecondaryMetrics:
		m.ResetSecondaryMetrics()
		return nil
	case experiment.FieldSegmentation:
		m.ResetSegmentation()
		return nil
	case experiment.FieldMinDetectableEffect:
		m.ResetMinDetectableEffect()
		return nil
	case experiment.FieldHasWinner:
		m.ResetHasWinner()
		return nil
	case experiment.FieldWinningVariantID:
		m.ResetWinningVariantID()
		return nil
	case experiment.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case experiment.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Experiment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExperimentMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.variants != nil {
		edges = append(edges, experiment.EdgeVariants)
	}
	if m.assignments != nil {
		edges = append(edges, experiment.EdgeAssignments)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExperimentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case experiment.EdgeVariants:
		ids := make([]ent.Value, 0, len(m.variants))
		for id := range m.variants {
			ids = append(ids, id)
		}
		return ids
	case experiment.EdgeAssignments:
		ids := make([]ent.Value, 0, len(m.assignments))
		for id := range m.assignments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExperimentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedvariants != nil {
		edges = append(edges, experiment.EdgeVariants)
	}
	if m.removedassignments != nil {
		edges = append(edges, experiment.EdgeAssignments)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExperimentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case experiment.EdgeVariants:
		ids := make([]ent.Value, 0, len(m.removedvariants))
		for id := range m.removedvariants {
			ids = append(ids, id)
		}
		return ids
	case experiment.EdgeAssignments:
		ids := make([]ent.Value, 0, len(m.removedassignments))
		for id := range m.removedassignments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExperimentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedvariants {
		edges = append(edges, experiment.EdgeVariants)
	}
	if m.clearedassignments {
		edges = append(edges, experiment.EdgeAssignments)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExperimentMutation) EdgeCleared(name string) bool {
	switch name {
	case experiment.EdgeVariants:
		return m.clearedvariants
	case experiment.EdgeAssignments:
		return m.clearedassignments
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExperimentMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Experiment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExperimentMutation) ResetEdge(name string) error {
	switch name {
	case experiment.EdgeVariants:
		m.ResetVariants()
		return nil
	case experiment.EdgeAssignments:
		m.ResetAssignments()
		return nil
	}
	return fmt.Errorf("unknown Experiment edge %s", name)
}

// ExperimentAssignmentMutation represents an operation that mutates the ExperimentAssignment nodes in the graph.
type ExperimentAssignmentMutation struct {
	config
	op                Op
	typ               string
	id                *int
	user_id           *string
	session_id        *string
	has_impression    *bool
	has_interaction   *bool
	has_conversion    *bool
	metadata          *map[string]interface{}
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	experiment        *int
	clearedexperiment bool
	variant           *int
	clearedvariant    bool
	done              bool
	oldValue          func(context.Context) (*ExperimentAssignment, error)
	predicates        []predicate.ExperimentAssignment
}

var _ ent.Mutation = (*ExperimentAssignmentMutation)(nil)

// experimentassignmentOption allows management of the mutation configuration using functional options.
type experimentassignmentOption func(*ExperimentAssignmentMutation)

// newExperimentAssignmentMutation creates new mutation for the ExperimentAssignment entity.
func newExperimentAssignmentMutation(c config, op Op, opts ...experimentassignmentOption) *ExperimentAssignmentMutation {
	m := &ExperimentAssignmentMutation{
		config:        c,
		op:            op,
		typ:           TypeExperimentAssignment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExperimentAssignmentID sets the ID field of the mutation.
func withExperimentAssignmentID(id int) experimentassignmentOption {
	return func(m *ExperimentAssignmentMutation) {
		var (
			err   error
			once  sync.Once
			value *ExperimentAssignment
		)
		m.oldValue = func(ctx context.Context) (*ExperimentAssignment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExperimentAssignment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExperimentAssignment sets the old ExperimentAssignment of the mutation.
func withExperimentAssignment(node *ExperimentAssignment) experimentassignmentOption {
	return func(m *ExperimentAssignmentMutation) {
		m.oldValue = func(context.Context) (*ExperimentAssignment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExperimentAssignmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExperimentAssignmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExperimentAssignmentMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExperimentAssignmentMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExperimentAssignment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetExperimentID sets the "experiment_id" field.
func (m *ExperimentAssignmentMutation) SetExperimentID(i int) {
	m.experiment = &i
}

// ExperimentID returns the value of the "experiment_id" field in the mutation.
func (m *ExperimentAssignmentMutation) ExperimentID() (r int, exists bool) {
	v := m.experiment
	if v == nil {
		return
	}
	return *v, true
}

// OldExperimentID returns the old "experiment_id" field's value of the ExperimentAssignment entity.
// If the ExperimentAssignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExperimentAssignmentMutation) OldExperimentID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExperimentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExperimentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExperimentID: %w", err)
	}
	return oldValue.ExperimentID, nil
}

// ResetExperimentID resets all changes to the "experiment_id" field.
func (m *ExperimentAssignmentMutation) ResetExperimentID() {
	m.experiment = nil
}

// SetUserID sets the "user_id" field.
func (m *ExperimentAssignmentMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ExperimentAssignmentMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ExperimentAssignment entity.
// If the ExperimentAssignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExperimentAssignmentMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ClearUserID clears the value of the "user_id" field.
func (m *ExperimentAssignmentMutation) ClearUserID() {
	m.user_id = nil
	m.clearedFields[experimentassignment.FieldUserID] = struct{}{}
}

// UserIDCleared returns if the "user_id" field was cleared in this mutation.
func (m *ExperimentAssignmentMutation) UserIDCleared() bool {
	_, ok := m.clearedFields[experimentassignment.FieldUserID]
	return ok
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ExperimentAssignmentMutation) ResetUserID() {
	m.user_id = nil
	delete(m.clearedFields, experimentassignment.FieldUserID)
}

// SetSessionID sets the "session_id" field.
func (m *ExperimentAssignmentMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ExperimentAssignmentMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the ExperimentAssignment entity.
// If the ExperimentAssignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExperimentAssignmentMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ClearSessionID clears the value of the "session_id" field.
func (m *ExperimentAssignmentMutation) ClearSessionID() {
	m.session_id = nil
	m.clearedFields[experimentassignment.FieldSessionID] = struct{}{}
}

// SessionIDCleared returns if the "session_id" field was cleared in this mutation.
func (m *ExperimentAssignmentMutation) SessionIDCleared() bool {
	_, ok := m.clearedFields[experimentassignment.FieldSessionID]
	return ok
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *ExperimentAssignmentMutation) ResetSessionID() {
	m.session_id = nil
	delete(m.clearedFields, experimentassignment.FieldSessionID)
}

// SetVariantID sets the "variant_id" field.
func (m *ExperimentAssignmentMutation) SetVariantID(i int) {
	m.variant = &i
}

// VariantID returns the value of the "variant_id" field in the mutation.
func (m *ExperimentAssignmentMutation) VariantID() (r int, exists bool) {
	v := m.variant
	if v == nil {
		return
	}
	return *v, true
}

// OldVariantID returns the old "variant_id" field's value of the ExperimentAssignment entity.
// If the ExperimentAssignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExperimentAssignmentMutation) OldVariantID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVariantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVariantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVariantID: %w", err)
	}
	return oldValue.VariantID, nil
}

// ResetVariantID resets all changes to the "variant_id" field.
func (m *ExperimentAssignmentMutation) ResetVariantID() {
	m.variant = nil
}

// SetHasImpression sets the "has_impression" field.
func (m *ExperimentAssignmentMutation) SetHasImpression(b bool) {
	m.has_impression = &b
}

// HasImpression returns the value of the "has_impression" field in the mutation.
func (m *ExperimentAssignmentMutation) HasImpression() (r bool, exists bool) {
	v := m.has_impression
	if v == nil {
		return
	}
	return *v, true
}

// OldHasImpression returns the old "has_impression" field's value of the ExperimentAssignment entity.
// If the ExperimentAssignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExperimentAssignmentMutation) OldHasImpression(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHasImpression is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHasImpression requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHasImpression: %w", err)
	}
	return oldValue.HasImpression, nil
}

// ResetHasImpression resets all changes to the "has_impression" field.
func (m *ExperimentAssignmentMutation) ResetHasImpression() {
	m.has_impression = nil
}

// SetHasInteraction sets the "has_interaction" field.
func (m *ExperimentAssignmentMutation) SetHasInteraction(b bool) {
	m.has_interaction = &b
}

// HasInteraction returns the value of the "has_interaction" field in the mutation.
func (m *ExperimentAssignmentMutation) HasInteraction() (r bool, exists bool) {
	v := m.has_interaction
	if v == nil {
		return
	}
	return *v, true
}

// OldHasInteraction returns the old "has_interaction" field's value of the ExperimentAssignment entity.
// If the ExperimentAssignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExperimentAssignmentMutation) OldHasInteraction(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHasInteraction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHasInteraction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHasInteraction: %w", err)
	}
	return oldValue.HasInteraction, nil
}

// ResetHasInteraction resets all changes to the "has_interaction" field.
func (m *ExperimentAssignmentMutation) ResetHasInteraction() {
	m.has_interaction = nil
}

// SetHasConversion sets the "has_conversion" field.
func (m *ExperimentAssignmentMutation) SetHasConversion(b bool) {
	m.has_conversion = &b
}

// HasConversion returns the value of the "has_conversion" field in the mutation.
func (m *ExperimentAssignmentMutation) HasConversion() (r bool, exists bool) {
	v := m.has_conversion
	if v == nil {
		return
	}
	return *v, true
}

// OldHasConversion returns the old "has_conversion" field's value of the ExperimentAssignment entity.
// If the ExperimentAssignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExperimentAssignmentMutation) OldHasConversion(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHasConversion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHasConversion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHasConversion: %w", err)
	}
	return oldValue.HasConversion, nil
}

// ResetHasConversion resets all changes to the "has_conversion" field.
func (m *ExperimentAssignmentMutation) ResetHasConversion() {
	m.has_conversion = nil
}

// SetMetadata sets the "metadata" field.
func (m *ExperimentAssignmentMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *ExperimentAssignmentMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the ExperimentAssignment entity.
// If the ExperimentAssignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExperimentAssignmentMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *ExperimentAssignmentMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[experimentassignment.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *ExperimentAssignmentMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[experimentassignment.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *ExperimentAssignmentMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, experimentassignment.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *ExperimentAssignmentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExperimentAssignmentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ExperimentAssignment entity.
// If the ExperimentAssignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExperimentAssignmentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExperimentAssignmentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ExperimentAssignmentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ExperimentAssignmentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ExperimentAssignment entity.
// If the ExperimentAssignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExperimentAssignmentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ExperimentAssignmentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearExperiment clears the "experiment" edge to the Experiment entity.
func (m *ExperimentAssignmentMutation) ClearExperiment() {
	m.clearedexperiment = true
	m.clearedFields[experimentassignment.FieldExperimentID] = struct{}{}
}

// ExperimentCleared reports if the "experiment" edge to the Experiment entity was cleared.
func (m *ExperimentAssignmentMutation) ExperimentCleared() bool {
	return m.clearedexperiment
}

// ExperimentIDs returns the "experiment" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ExperimentID instead. It exists only for internal usage by the builders.
func (m *ExperimentAssignmentMutation) ExperimentIDs() (ids []int) {
	if id := m.experiment; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetExperiment resets all changes to the "experiment" edge.
func (m *ExperimentAssignmentMutation) ResetExperiment() {
	m.experiment = nil
	m.clearedexperiment = false
}

// ClearVariant clears the "variant" edge to the ExperimentVariant entity.
func (m *ExperimentAssignmentMutation) ClearVariant() {
	m.clearedvariant = true
	m.clearedFields[experimentassignment.FieldVariantID] = struct{}{}
}

// VariantCleared reports if the "variant" edge to the ExperimentVariant entity was cleared.
func (m *ExperimentAssignmentMutation) VariantCleared() bool {
	return m.clearedvariant
}

// VariantIDs returns the "variant" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// VariantID instead. It exists only for internal usage by the builders.
func (m *ExperimentAssignmentMutation) VariantIDs() (ids []int) {
	if id := m.variant; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetVariant resets all changes to the "variant" edge.
func (m *ExperimentAssignmentMutation) ResetVariant() {
	m.variant = nil
	m.clearedvariant = false
}

// Where appends a list predicates to the ExperimentAssignmentMutation builder.
func (m *ExperimentAssignmentMutation) Where(ps ...predicate.ExperimentAssignment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExperimentAssignmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExperimentAssignmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExperimentAssignment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExperimentAssignmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExperimentAssignmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExperimentAssignment).
func (m *ExperimentAssignmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExperimentAssignmentMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.experiment != nil {
		fields = append(fields, experimentassignment.FieldExperimentID)
	}
	if m.user_id != nil {
		fields = append(fields, experimentassignment.FieldUserID)
	}
	if m.session_id != nil {
		fields = append(fields, experimentassignment.FieldSessionID)
	}
	if m.variant != nil {
		fields = append(fields, experimentassignment.FieldVariantID)
	}
	if m.has_impression != nil {
		fields = append(fields, experimentassignment.FieldHasImpression)
	}
	if m.has_interaction != nil {
		fields = append(fields, experimentassignment.FieldHasInteraction)
	}
	if m.has_conversion != nil {
		fields = append(fields, experimentassignment.FieldHasConversion)
	}
	if m.metadata != nil {
		fields = append(fields, experimentassignment.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, experimentassignment.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, experimentassignment.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExperimentAssignmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case experimentassignment.FieldExperimentID:
		return m.ExperimentID()
	case experimentassignment.FieldUserID:
		return m.UserID()
	case experimentassignment.FieldSessionID:
		return m.SessionID()
	case experimentassignment.FieldVariantID:
		return m.VariantID()
	case experimentassignment.FieldHasImpression:
		return m.HasImpression()
	case experimentassignment.FieldHasInteraction:
		return m.HasInteraction()
	case experimentassignment.FieldHasConversion:
		return m.HasConversion()
	case experimentassignment.FieldMetadata:
		return m.Metadata()
	case experimentassignment.FieldCreatedAt:
		return m.CreatedAt()
	case experimentassignment.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExperimentAssignmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case experimentassignment.FieldExperimentID:
		return m.OldExperimentID(ctx)
	case experimentassignment.FieldUserID:
		return m.OldUserID(ctx)
	case experimentassignment.FieldSessionID:
		return m.OldSessionID(ctx)
	case experimentassignment.FieldVariantID:
		return m.OldVariantID(ctx)
	case experimentassignment.FieldHasImpression:
		return m.OldHasImpression(ctx)
	case experimentassignment.FieldHasInteraction:
		return m.OldHasInteraction(ctx)
	case experimentassignment.FieldHasConversion:
		return m.OldHasConversion(ctx)
	case experimentassignment.FieldMetadata:
		return m.OldMetadata(ctx)
	case experimentassignment.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case experimentassignment.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExperimentAssignment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExperimentAssignmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case experimentassignment.FieldExperimentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExperimentID(v)
		return nil
	case experimentassignment.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case experimentassignment.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case experimentassignment.FieldVariantID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVariantID(v)
		return nil
	case experimentassignment.FieldHasImpression:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHasImpression(v)
		return nil
	case experimentassignment.FieldHasInteraction:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHasInteraction(v)
		return nil
	case experimentassignment.FieldHasConversion:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHasConversion(v)
		return nil
	case experimentassignment.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case experimentassignment.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case experimentassignment.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExperimentAssignment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExperimentAssignmentMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExperimentAssignmentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExperimentAssignmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ExperimentAssignment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExperimentAssignmentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(experimentassignment.FieldUserID) {
		fields = append(fields, experimentassignment.FieldUserID)
	}
	if m.FieldCleared(experimentassignment.FieldSessionID) {
		fields = append(fields, experimentassignment.FieldSessionID)
	}
	if m.FieldCleared(experimentassignment.FieldMetadata) {
		fields = append(fields, experimentassignment.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExperimentAssignmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExperimentAssignmentMutation) ClearField(name string) error {
	switch name {
	case experimentassignment.FieldUserID:
		m.ClearUserID()
		return nil
	case experimentassignment.FieldSessionID:
		m.ClearSessionID()
		return nil
	case experimentassignment.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown ExperimentAssignment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExperimentAssignmentMutation) ResetField(name string) error {
	switch name {
	case experimentassignment.FieldExperimentID:
		m.ResetExperimentID()
		return nil
	case experimentassignment.FieldUserID:
		m.ResetUserID()
		return nil
	case experimentassignment.FieldSessionID:
		m.ResetSessionID()
		return nil
	case experimentassignment.FieldVariantID:
		m.ResetVariantID()
		return nil
	case experimentassignment.FieldHasImpression:
		m.ResetHasImpression()
		return nil
	case experimentassignment.FieldHasInteraction:
		m.ResetHasInteraction()
		return nil
	case experimentassignment.FieldHasConversion:
		m.ResetHasConversion()
		return nil
	case experimentassignment.FieldMetadata:
		m.ResetMetadata()
		return nil
	case experimentassignment.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case experimentassignment.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ExperimentAssignment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExperimentAssignmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.experiment != nil {
		edges = append(edges, experimentassignment.EdgeExperiment)
	}
	if m.variant != nil {
		edges = append(edges, experimentassignment.EdgeVariant)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExperimentAssignmentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case experimentassignment.EdgeExperiment:
		if id := m.experiment; id != nil {
			return []ent.Value{*id}
		}
	case experimentassignment.EdgeVariant:
		if id := m.variant; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExperimentAssignmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExperimentAssignmentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExperimentAssignmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedexperiment {
		edges = append(edges, experimentassignment.EdgeExperiment)
	}
	if m.clearedvariant {
		edges = append(edges, experimentassignment.EdgeVariant)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExperimentAssignmentMutation) EdgeCleared(name string) bool {
	switch name {
	case experimentassignment.EdgeExperiment:
		return m.clearedexperiment
	case experimentassignment.EdgeVariant:
		return m.clearedvariant
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExperimentAssignmentMutation) ClearEdge(name string) error {
	switch name {
	case experimentassignment.EdgeExperiment:
		m.ClearExperiment()
		return nil
	case experimentassignment.EdgeVariant:
		m.ClearVariant()
		return nil
	}
	return fmt.Errorf("unknown ExperimentAssignment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExperimentAssignmentMutation) ResetEdge(name string) error {
	switch name {
	case experimentassignment.EdgeExperiment:
		m.ResetExperiment()
		return nil
	case experimentassignment.EdgeVariant:
		m.ResetVariant()
		return nil
	}
	return fmt.Errorf("unknown ExperimentAssignment edge %s", name)
}

// ExperimentResultMutation represents an operation that mutates the ExperimentResult nodes in the graph.
type ExperimentResultMutation struct {
	config
	op             Op
	typ            string
	id             *int
	user_id        *string
	session_id     *string
	result_type    *experimentresult.ResultType
	value          *float64
	addvalue       *float64
	context        *string
	metadata       *map[string]interface{}
	created_at     *time.Time
	clearedFields  map[string]struct{}
	variant        *int
	clearedvariant bool
	done           bool
	oldValue       func(context.Context) (*ExperimentResult, error)
	predicates     []predicate.ExperimentResult
}

var _ ent.Mutation = (*ExperimentResultMutation)(nil)

// experimentresultOption allows management of the mutation configuration using functional options.
type experimentresultOption func(*ExperimentResultMutation)

// newExperimentResultMutation creates new mutation for the ExperimentResult entity.
func newExperimentResultMutation(c config, op Op, opts ...experimentresultOption) *ExperimentResultMutation {
	m := &ExperimentResultMutation{
		config:        c,
		op:            op,
		typ:           TypeExperimentResult,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExperimentResultID sets the ID field of the mutation.
func withExperimentResultID(id int) experimentresultOption {
	return func(m *ExperimentResultMutation) {
		var (
			err   error
			once  sync.Once
			value *ExperimentResult
		)
		m.oldValue = func(ctx context.Context) (*ExperimentResult, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExperimentResult.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExperimentResult sets the old ExperimentResult of the mutation.
func withExperimentResult(node *ExperimentResult) experimentresultOption {
	return func(m *ExperimentResultMutation) {
		m.oldValue = func(context.Context) (*ExperimentResult, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExperimentResultMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExperimentResultMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExperimentResultMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExperimentResultMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExperimentResult.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetVariantID sets the "variant_id" field.
func (m *ExperimentResultMutation) SetVariantID(i int) {
	m.variant = &i
}

// VariantID returns the value of the "variant_id" field in the mutation.
func (m *ExperimentResultMutation) VariantID() (r int, exists bool) {
	v := m.variant
	if v == nil {
		return
	}
	return *v, true
}

// OldVariantID returns the old "variant_id" field's value of the ExperimentResult entity.
// If the ExperimentResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExperimentResultMutation) OldVariantID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVariantID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVariantID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVariantID: %w", err)
	}
	return oldValue.VariantID, nil
}

// ResetVariantID resets all changes to the "variant_id" field.
func (m *ExperimentResultMutation) ResetVariantID() {
	m.variant = nil
}

// SetUserID sets the "user_id" field.
func (m *ExperimentResultMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ExperimentResultMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ExperimentResult entity.
// If the ExperimentResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExperimentResultMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ClearUserID clears the value of the "user_id" field.
func (m *ExperimentResultMutation) ClearUserID() {
	m.user_id = nil
	m.clearedFields[experimentresult.FieldUserID] = struct{}{}
}

// UserIDCleared returns if the "user_id" field was cleared in this mutation.
func (m *ExperimentResultMutation) UserIDCleared() bool {
	_, ok := m.clearedFields[experimentresult.FieldUserID]
	return ok
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ExperimentResultMutation) ResetUserID() {
	m.user_id = nil
	delete(m.clearedFields, experimentresult.FieldUserID)
}

// SetSessionID sets the "session_id" field.
func (m *ExperimentResultMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ExperimentResultMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the ExperimentResult entity.
// If the ExperimentResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExperimentResultMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ClearSessionID clears the value of the "session_id" field.
func (m *ExperimentResultMutation) ClearSessionID() {
	m.session_id = nil
	m.clearedFields[experimentresult.FieldSessionID] = struct{}{}
}

// SessionIDCleared returns if the "session_id" field was cleared in this mutation.
func (m *ExperimentResultMutation) SessionIDCleared() bool {
	_, ok := m.clearedFields[experimentresult.FieldSessionID]
	return ok
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *ExperimentResultMutation) ResetSessionID() {
	m.session_id = nil
	delete(m.clearedFields, experimentresult.FieldSessionID)
}

// SetResultType sets the "result_type" field.
func (m *ExperimentResultMutation) SetResultType(et experimentresult.ResultType) {
	m.result_type = &et
}

// ResultType returns the value of the "result_type" field in the mutation.
func (m *ExperimentResultMutation) ResultType() (r experimentresult.ResultType, exists bool) {
	v := m.result_type
	if v == nil {
		return
	}
	return *v, true
}

// OldResultType returns the old "result_type" field's value of the ExperimentResult entity.
// If the ExperimentResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExperimentResultMutation) OldResultType(ctx context.Context) (v experimentresult.ResultType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResultType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResultType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResultType: %w", err)
	}
	return oldValue.ResultType, nil
}

// ResetResultType resets all changes to the "result_type" field.
func (m *ExperimentResultMutation) ResetResultType() {
	m.result_type = nil
}

// SetValue sets the "value" field.
func (m *ExperimentResultMutation) SetValue(f float64) {
	m.value = &f
	m.addvalue = nil
}

// Value returns the value of the "value" field in the mutation.
func (m *ExperimentResultMutation) Value() (r float64, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the ExperimentResult entity.
// If the ExperimentResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExperimentResultMutation) OldValue(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// AddValue adds f to the "value" field.
func (m *ExperimentResultMutation) AddValue(f float64) {
	if m.addvalue != nil {
		*m.addvalue += f
	} else {
		m.addvalue = &f
	}
}

// AddedValue returns the value that was added to the "value" field in this mutation.
func (m *ExperimentResultMutation) AddedValue() (r float64, exists bool) {
	v := m.addvalue
	if v == nil {
		return
	}
	return *v, true
}

// ClearValue clears the value of the "value" field.
func (m *ExperimentResultMutation) ClearValue() {
	m.value = nil
	m.addvalue = nil
	m.clearedFields[experimentresult.FieldValue] = struct{}{}
}

// ValueCleared returns if the "value" field was cleared in this mutation.
func (m *ExperimentResultMutation) ValueCleared() bool {
	_, ok := m.clearedFields[experimentresult.FieldValue]
	return ok
}

// ResetValue resets all changes to the "value" field.
func (m *ExperimentResultMutation) ResetValue() {
	m.value = nil
	m.addvalue = nil
	delete(m.clearedFields, experimentresult.FieldValue)
}

// SetContext sets the "context" field.
func (m *ExperimentResultMutation) SetContext(s string) {
	m.context = &s
}

// Context returns the value of the "context" field in the mutation.
func (m *ExperimentResultMutation) Context() (r string, exists bool) {
	v := m.context
	if v == nil {
		return
	}
	return *v, true
}

// OldContext returns the old "context" field's value of the ExperimentResult entity.
// If the ExperimentResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExperimentResultMutation) OldContext(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContext: %w", err)
	}
	return oldValue.Context, nil
}

// ClearContext clears the value of the "context" field.
func (m *ExperimentResultMutation) ClearContext() {
	m.context = nil
	m.clearedFields[experimentresult.FieldContext] = struct{}{}
}

// ContextCleared returns if the "context" field was cleared in this mutation.
func (m *ExperimentResultMutation) ContextCleared() bool {
	_, ok := m.clearedFields[experimentresult.FieldContext]
	return ok
}

// ResetContext resets all changes to the "context" field.
func (m *ExperimentResultMutation) ResetContext() {
	m.context = nil
	delete(m.clearedFields, experimentresult.FieldContext)
}

// SetMetadata sets the "metadata" field.
func (m *ExperimentResultMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *ExperimentResultMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the ExperimentResult entity.
// If the ExperimentResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExperimentResultMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *ExperimentResultMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[experimentresult.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *ExperimentResultMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[experimentresult.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *ExperimentResultMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, experimentresult.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *ExperimentResultMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExperimentResultMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ExperimentResult entity.
// If the ExperimentResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExperimentResultMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExperimentResultMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearVariant clears the "variant" edge to the ExperimentVariant entity.
func (m *ExperimentResultMutation) ClearVariant() {
	m.clearedvariant = true
	m.clearedFields[experimentresult.FieldVariantID] = struct{}{}
}

// VariantCleared reports if the "variant" edge to the ExperimentVariant entity was cleared.
func (m *ExperimentResultMutation) VariantCleared() bool {
	return m.clearedvariant
}

// VariantIDs returns the "variant" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// VariantID instead. It exists only for internal usage by the builders.
func (m *ExperimentResultMutation) VariantIDs() (ids []int) {
	if id := m.variant; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetVariant resets all changes to the "variant" edge.
func (m *ExperimentResultMutation) ResetVariant() {
	m.variant = nil
	m.clearedvariant = false
}

// Where appends a list predicates to the ExperimentResultMutation builder.
func (m *ExperimentResultMutation) Where(ps ...predicate.ExperimentResult) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExperimentResultMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExperimentResultMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExperimentResult, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExperimentResultMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExperimentResultMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExperimentResult).
func (m *ExperimentResultMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExperimentResultMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.variant != nil {
		fields = append(fields, experimentresult.FieldVariantID)
	}
	if m.user_id != nil {
		fields = append(fields, experimentresult.FieldUserID)
	}
	if m.session_id != nil {
		fields = append(fields, experimentresult.FieldSessionID)
	}
	if m.result_type != nil {
		fields = append(fields, experimentresult.FieldResultType)
	}
	if m.value != nil {
		fields = append(fields, experimentresult.FieldValue)
	}
	if m.context != nil {
		fields = append(fields, experimentresult.FieldContext)
	}
	if m.metadata != nil {
		fields = append(fields, experimentresult.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, experimentresult.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExperimentResultMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case experimentresult.FieldVariantID:
		return m.VariantID()
	case experimentresult.FieldUserID:
		return m.UserID()
	case experimentresult.FieldSessionID:
		return m.SessionID()
	case experimentresult.FieldResultType:
		return m.ResultType()
	case experimentresult.FieldValue:
		return m.Value()
	case experimentresult.FieldContext:
		return m.Context()
	case experimentresult.FieldMetadata:
		return m.Metadata()
	case experimentresult.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExperimentResultMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case experimentresult.FieldVariantID:
		return m.OldVariantID(ctx)
	case experimentresult.FieldUserID:
		return m.OldUserID(ctx)
	case experimentresult.FieldSessionID:
		return m.OldSessionID(ctx)
	case experimentresult.FieldResultType:
		return m.OldResultType(ctx)
	case experimentresult.FieldValue:
		return m.OldValue(ctx)
	case experimentresult.FieldContext:
		return m.OldContext(ctx)
	case experimentresult.FieldMetadata:
		return m.OldMetadata(ctx)
	case experimentresult.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExperimentResult field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExperimentResultMutation) SetField(name string, value ent.Value) error {
	switch name {
	case experimentresult.FieldVariantID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVariantID(v)
		return nil
	case experimentresult.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case experimentresult.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case experimentresult.FieldResultType:
		v, ok := value.(experimentresult.ResultType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResultType(v)
		return nil
	case experimentresult.FieldValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	case experimentresult.FieldContext:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContext(v)
		return nil
	case experimentresult.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case experimentresult.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExperimentResult field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExperimentResultMutation) AddedFields() []string {
	var fields []string
	if m.addvalue != nil {
		fields = append(fields, experimentresult.FieldValue)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExperimentResultMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case experimentresult.FieldValue:
		return m.AddedValue()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExperimentResultMutation) AddField(name string, value ent.Value) error {
	switch name {
	case experimentresult.FieldValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddValue(v)
		return nil
	}
	return fmt.Errorf("unknown ExperimentResult numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExperimentResultMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(experimentresult.FieldUserID) {
		fields = append(fields, experimentresult.FieldUserID)
	}
	if m.FieldCleared(experimentresult.FieldSessionID) {
		fields = append(fields, experimentresult.FieldSessionID)
	}
	if m.FieldCleared(experimentresult.FieldValue) {
		fields = append(fields, experimentresult.FieldValue)
	}
	if m.FieldCleared(experimentresult.FieldContext) {
		fields = append(fields, experimentresult.FieldContext)
	}
	if m.FieldCleared(experimentresult.FieldMetadata) {
		fields = append(fields, experimentresult.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExperimentResultMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExperimentResultMutation) ClearField(name string) error {
	switch name {
	case experimentresult.FieldUserID:
		m.ClearUserID()
		return nil
	case experimentresult.FieldSessionID:
		m.ClearSessionID()
		return nil
	case experimentresult.FieldValue:
		m.ClearValue()
		return nil
	case experimentresult.FieldContext:
		m.ClearContext()
		return nil
	case experimentresult.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown ExperimentResult nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExperimentResultMutation) ResetField(name string) error {
	switch name {
	case experimentresult.FieldVariantID:
		m.ResetVariantID()
		return nil
	case experimentresult.FieldUserID:
		m.ResetUserID()
		return nil
	case experimentresult.FieldSessionID:
		m.ResetSessionID()
		return nil
	case experimentresult.FieldResultType:
		m.ResetResultType()
		return nil
	case experimentresult.FieldValue:
		m.ResetValue()
		return nil
	case experimentresult.FieldContext:
		m.ResetContext()
		return nil
	case experimentresult.FieldMetadata:
		m.ResetMetadata()
		return nil
	case experimentresult.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ExperimentResult field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExperimentResultMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.variant != nil {
		edges = append(edges, experimentresult.EdgeVariant)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExperimentResultMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case experimentresult.EdgeVariant:
		if id := m.variant; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExperimentResultMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExperimentResultMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExperimentResultMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedvariant {
		edges = append(edges, experimentresult.EdgeVariant)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExperimentResultMutation) EdgeCleared(name string) bool {
	switch name {
	case experimentresult.EdgeVariant:
		return m.clearedvariant
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExperimentResultMutation) ClearEdge(name string) error {
	switch name {
	case experimentresult.EdgeVariant:
		m.ClearVariant()
		return nil
	}
	return fmt.Errorf("unknown ExperimentResult unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExperimentResultMutation) ResetEdge(name string) error {
	switch name {
	case experimentresult.EdgeVariant:
		m.ResetVariant()
		return nil
	}
	return fmt.Errorf("unknown ExperimentResult edge %s", name)
}

// ExperimentVariantMutation represents an operation that mutates the ExperimentVariant nodes in the graph.
type ExperimentVariantMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	name                *string
	description         *string
	is_control          *bool
	is_winner           *bool
	configuration       *map[string]interface{}
	confidence_level    *float64
	addconfidence_level *float64
	improvement_rate    *float64
	addimprovement_rate *float64
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	experiment          *int
	clearedexperiment   bool
	assignments         map[int]struct{}
	removedassignments  map[int]struct{}
	clearedassignments  bool
	results             map[int]struct{}
	removedresults      map[int]struct{}
	clearedresults      bool
	done                bool
	oldValue            func(context.Context) (*ExperimentVariant, error)
	predicates          []predicate.ExperimentVariant
}

var _ ent.Mutation = (*ExperimentVariantMutation)(nil)

// experimentvariantOption allows management of the mutation configuration using functional options.
type experimentvariantOption func(*ExperimentVariantMutation)

// newExperimentVariantMutation creates new mutation for the ExperimentVariant entity.
func newExperimentVariantMutation(c config, op Op, opts ...experimentvariantOption) *ExperimentVariantMutation {
	m := &ExperimentVariantMutation{
		config:        c,
		op:            op,
		typ:           TypeExperimentVariant,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExperimentVariantID sets the ID field of the mutation.
func withExperimentVariantID(id int) experimentvariantOption {
	return func(m *ExperimentVariantMutation) {
		var (
			err   error
			once  sync.Once
			value *ExperimentVariant
		)
		m.oldValue = func(ctx context.Context) (*ExperimentVariant, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExperimentVariant.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExperimentVariant sets the old ExperimentVariant of the mutation.
func withExperimentVariant(node *ExperimentVariant) experimentvariantOption {
	return func(m *ExperimentVariantMutation) {
		m.oldValue = func(context.Context) (*ExperimentVariant, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExperimentVariantMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExperimentVariantMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExperimentVariantMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExperimentVariantMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExperimentVariant.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetExperimentID sets the "experiment_id" field.
func (m *ExperimentVariantMutation) SetExperimentID(i int) {
	m.experiment = &i
}

// ExperimentID returns the value of the "experiment_id" field in the mutation.
func (m *ExperimentVariantMutation) ExperimentID() (r int, exists bool) {
	v := m.experiment
	if v == nil {
		return
	}
	return *v, true
}

// OldExperimentID returns the old "experiment_id" field's value of the ExperimentVariant entity.
// If the ExperimentVariant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExperimentVariantMutation) OldExperimentID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExperimentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExperimentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExperimentID: %w", err)
	}
	return oldValue.ExperimentID, nil
}

// ResetExperimentID resets all changes to the "experiment_id" field.
func (m *ExperimentVariantMutation) ResetExperimentID() {
	m.experiment = nil
}

// SetName sets the "name" field.
func (m *ExperimentVariantMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ExperimentVariantMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the ExperimentVariant entity.
// If the ExperimentVariant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExperimentVariantMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ExperimentVariantMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *ExperimentVariantMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ExperimentVariantMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the ExperimentVariant entity.
// If the ExperimentVariant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExperimentVariantMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ExperimentVariantMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[experimentvariant.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ExperimentVariantMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[experimentvariant.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ExperimentVariantMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, experimentvariant.FieldDescription)
}

// SetIsControl sets the "is_control" field.
func (m *ExperimentVariantMutation) SetIsControl(b bool) {
	m.is_control = &b
}

// IsControl returns the value of the "is_control" field in the mutation.
func (m *ExperimentVariantMutation) IsControl() (r bool, exists bool) {
	v := m.is_control
	if v == nil {
		return
	}
	return *v, true
}

// OldIsControl returns the old "is_control" field's value of the ExperimentVariant entity.
// If the ExperimentVariant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExperimentVariantMutation) OldIsControl(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsControl is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsControl requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsControl: %w", err)
	}
	return oldValue.IsControl, nil
}

// ResetIsControl resets all changes to the "is_control" field.
func (m *ExperimentVariantMutation) ResetIsControl() {
	m.is_control = nil
}

// SetIsWinner sets the "is_winner" field.
func (m *ExperimentVariantMutation) SetIsWinner(b bool) {
	m.is_winner = &b
}

// IsWinner returns the value of the "is_winner" field in the mutation.
func (m *ExperimentVariantMutation) IsWinner() (r bool, exists bool) {
	v := m.is_winner
	if v == nil {
		return
	}
	return *v, true
}

// OldIsWinner returns the old "is_winner" field's value of the ExperimentVariant entity.
// If the ExperimentVariant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExperimentVariantMutation) OldIsWinner(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsWinner is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsWinner requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsWinner: %w", err)
	}
	return oldValue.IsWinner, nil
}

// ResetIsWinner resets all changes to the "is_winner" field.
func (m *ExperimentVariantMutation) ResetIsWinner() {
	m.is_winner = nil
}

// SetConfiguration sets the "configuration" field.
func (m *ExperimentVariantMutation) SetConfiguration(value map[string]interface{}) {
	m.configuration = &value
}

// Configuration returns the value of the "configuration" field in the mutation.
func (m *ExperimentVariantMutation) Configuration() (r map[string]interface{}, exists bool) {
	v := m.configuration
	if v == nil {
		return
	}
	return *v, true
}

// OldConfiguration returns the old "configuration" field's value of the ExperimentVariant entity.
// If the ExperimentVariant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExperimentVariantMutation) OldConfiguration(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfiguration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfiguration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfiguration: %w", err)
	}
	return oldValue.Configuration, nil
}

// ClearConfiguration clears the value of the "configuration" field.
func (m *ExperimentVariantMutation) ClearConfiguration() {
	m.configuration = nil
	m.clearedFields[experimentvariant.FieldConfiguration] = struct{}{}
}

// ConfigurationCleared returns if the "configuration" field was cleared in this mutation.
func (m *ExperimentVariantMutation) ConfigurationCleared() bool {
	_, ok := m.clearedFields[experimentvariant.FieldConfiguration]
	return ok
}

// ResetConfiguration resets all changes to the "configuration" field.
func (m *ExperimentVariantMutation) ResetConfiguration() {
	m.configuration = nil
	delete(m.clearedFields, experimentvariant.FieldConfiguration)
}

// SetConfidenceLevel sets the "confidence_level" field.
func (m *ExperimentVariantMutation) SetConfidenceLevel(f float64) {
	m.confidence_level = &f
	m.addconfidence_level = nil
}

// ConfidenceLevel returns the value of the "confidence_level" field in the mutation.
func (m *ExperimentVariantMutation) ConfidenceLevel() (r float64, exists bool) {
	v := m.confidence_level
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidenceLevel returns the old "confidence_level" field's value of the ExperimentVariant entity.
// If the ExperimentVariant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExperimentVariantMutation) OldConfidenceLevel(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidenceLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidenceLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidenceLevel: %w", err)
	}
	return oldValue.ConfidenceLevel, nil
}

// AddConfidenceLevel adds f to the "confidence_level" field.
func (m *ExperimentVariantMutation) AddConfidenceLevel(f float64) {
	if m.addconfidence_level != nil {
		*m.addconfidence_level += f
	} else {
		m.addconfidence_level = &f
	}
}

// AddedConfidenceLevel returns the value that was added to the "confidence_level" field in this mutation.
func (m *ExperimentVariantMutation) AddedConfidenceLevel() (r float64, exists bool) {
	v := m.addconfidence_level
	if v == nil {
		return
	}
	return *v, true
}

// ClearConfidenceLevel clears the value of the "confidence_level" field.
func (m *ExperimentVariantMutation) ClearConfidenceLevel() {
	m.confidence_level = nil
	m.addconfidence_level = nil
	m.clearedFields[experimentvariant.FieldConfidenceLevel] = struct{}{}
}

// ConfidenceLevelCleared returns if the "confidence_level" field was cleared in this mutation.
func (m *ExperimentVariantMutation) ConfidenceLevelCleared() bool {
	_, ok := m.clearedFields[experimentvariant.FieldConfidenceLevel]
	return ok
}

// ResetConfidenceLevel resets all changes to the "confidence_level" field.
func (m *ExperimentVariantMutation) ResetConfidenceLevel() {
	m.confidence_level = nil
	m.addconfidence_level = nil
	delete(m.clearedFields, experimentvariant.FieldConfidenceLevel)
}

// SetImprovementRate sets the "improvement_rate" field.
func (m *ExperimentVariantMutation) SetImprovementRate(f float64) {
	m.improvement_rate = &f
	m.addimprovement_rate = nil
}

// ImprovementRate returns the value of the "improvement_rate" field in the mutation.
func (m *ExperimentVariantMutation) ImprovementRate() (r float64, exists bool) {
	v := m.improvement_rate
	if v == nil {
		return
	}
	return *v, true
}

// OldImprovementRate returns the old "improvement_rate" field's value of the ExperimentVariant entity.
// If the ExperimentVariant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExperimentVariantMutation) OldImprovementRate(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImprovementRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImprovementRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImprovementRate: %w", err)
	}
	return oldValue.ImprovementRate, nil
}

// AddImprovementRate adds f to the "improvement_rate" field.
func (m *ExperimentVariantMutation) AddImprovementRate(f float64) {
	if m.addimprovement_rate != nil {
		*m.addimprovement_rate += f
	} else {
		m.addimprovement_rate = &f
	}
}

// AddedImprovementRate returns the value that was added to the "improvement_rate" field in this mutation.
func (m *ExperimentVariantMutation) AddedImprovementRate() (r float64, exists bool) {
	v := m.addimprovement_rate
	if v == nil {
		return
	}
	return *v, true
}

// ClearImprovementRate clears the value of the "improvement_rate" field.
func (m *ExperimentVariantMutation) ClearImprovementRate() {
	m.improvement_rate = nil
	m.addimprovement_rate = nil
	m.clearedFields[experimentvariant.FieldImprovementRate] = struct{}{}
}

// ImprovementRateCleared returns if the "improvement_rate" field was cleared in this mutation.
func (m *ExperimentVariantMutation) ImprovementRateCleared() bool {
	_, ok := m.clearedFields[experimentvariant.FieldImprovementRate]
	return ok
}

// ResetImprovementRate resets all changes to the "improvement_rate" field.
func (m *ExperimentVariantMutation) ResetImprovementRate() {
	m.improvement_rate = nil
	m.addimprovement_rate = nil
	delete(m.clearedFields, experimentvariant.FieldImprovementRate)
}

// SetCreatedAt sets the "created_at" field.
func (m *ExperimentVariantMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExperimentVariantMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ExperimentVariant entity.
// If the ExperimentVariant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExperimentVariantMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExperimentVariantMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ExperimentVariantMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ExperimentVariantMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ExperimentVariant entity.
// If the ExperimentVariant object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExperimentVariantMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ExperimentVariantMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearExperiment clears the "experiment" edge to the Experiment entity.
func (m *ExperimentVariantMutation) ClearExperiment() {
	m.clearedexperiment = true
	m.clearedFields[experimentvariant.FieldExperimentID] = struct{}{}
}

// ExperimentCleared reports if the "experiment" edge to the Experiment entity was cleared.
func (m *ExperimentVariantMutation) ExperimentCleared() bool {
	return m.clearedexperiment
}

// ExperimentIDs returns the "experiment" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ExperimentID instead. It exists only for internal usage by the builders.
func (m *ExperimentVariantMutation) ExperimentIDs() (ids []int) {
	if id := m.experiment; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetExperiment resets all changes to the "experiment" edge.
func (m *ExperimentVariantMutation) ResetExperiment() {
	m.experiment = nil
	m.clearedexperiment = false
}

// AddAssignmentIDs adds the "assignments" edge to the ExperimentAssignment entity by ids.
func (m *ExperimentVariantMutation) AddAssignmentIDs(ids ...int) {
	if m.assignments == nil {
		m.assignments = make(map[int]struct{})
	}
	for i := range ids {
		m.assignments[ids[i]] = struct{}{}
	}
}

// ClearAssignments clears the "assignments" edge to the ExperimentAssignment entity.
func (m *ExperimentVariantMutation) ClearAssignments() {
	m.clearedassignments = true
}

// AssignmentsCleared reports if the "assignments" edge to the ExperimentAssignment entity was cleared.
func (m *ExperimentVariantMutation) AssignmentsCleared() bool {
	return m.clearedassignments
}

// RemoveAssignmentIDs removes the "assignments" edge to the ExperimentAssignment entity by IDs.
func (m *ExperimentVariantMutation) RemoveAssignmentIDs(ids ...int) {
	if m.removedassignments == nil {
		m.removedassignments = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.assignments, ids[i])
		m.removedassignments[ids[i]] = struct{}{}
	}
}

// RemovedAssignments returns the removed IDs of the "assignments" edge to the ExperimentAssignment entity.
func (m *ExperimentVariantMutation) RemovedAssignmentsIDs() (ids []int) {
	for id := range m.removedassignments {
		ids = append(ids, id)
	}
	return
}

// AssignmentsIDs returns the "assignments" edge IDs in the mutation.
func (m *ExperimentVariantMutation) AssignmentsIDs() (ids []int) {
	for id := range m.assignments {
		ids = append(ids, id)
	}
	return
}

// ResetAssignments resets all changes to the "assignments" edge.
func (m *ExperimentVariantMutation) ResetAssignments() {
	m.assignments = nil
	m.clearedassignments = false
	m.removedassignments = nil
}

// AddResultIDs adds the "results" edge to the ExperimentResult entity by ids.
func (m *ExperimentVariantMutation) AddResultIDs(ids ...int) {
	if m.results == nil {
		m.results = make(map[int]struct{})
	}
	for i := range ids {
		m.results[ids[i]] = struct{}{}
	}
}

// ClearResults clears the "results" edge to the ExperimentResult entity.
func (m *ExperimentVariantMutation) ClearResults() {
	m.clearedresults = true
}

// ResultsCleared reports if the "results" edge to the ExperimentResult entity was cleared.
func (m *ExperimentVariantMutation) ResultsCleared() bool {
	return m.clearedresults
}

// RemoveResultIDs removes the "results" edge to the ExperimentResult entity by IDs.
func (m *ExperimentVariantMutation) RemoveResultIDs(ids ...int) {
	if m.removedresults == nil {
		m.removedresults = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.results, ids[i])
		m.removedresults[ids[i]] = struct{}{}
	}
}

// RemovedResults returns the removed IDs of the "results" edge to the ExperimentResult entity.
func (m *ExperimentVariantMutation) RemovedResultsIDs() (ids []int) {
	for id := range m.removedresults {
		ids = append(ids, id)
	}
	return
}

// ResultsIDs returns the "results" edge IDs in the mutation.
func (m *ExperimentVariantMutation) ResultsIDs() (ids []int) {
	for id := range m.results {
		ids = append(ids, id)
	}
	return
}

// ResetResults resets all changes to the "results" edge.
func (m *ExperimentVariantMutation) ResetResults() {
	m.results = nil
	m.clearedresults = false
	m.removedresults = nil
}

// Where appends a list predicates to the ExperimentVariantMutation builder.
func (m *ExperimentVariantMutation) Where(ps ...predicate.ExperimentVariant) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExperimentVariantMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExperimentVariantMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExperimentVariant, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExperimentVariantMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExperimentVariantMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExperimentVariant).
func (m *ExperimentVariantMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExperimentVariantMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.experiment != nil {
		fields = append(fields, experimentvariant.FieldExperimentID)
	}
	if m.name != nil {
		fields = append(fields, experimentvariant.FieldName)
	}
	if m.description != nil {
		fields = append(fields, experimentvariant.FieldDescription)
	}
	if m.is_control != nil {
		fields = append(fields, experimentvariant.FieldIsControl)
	}
	if m.is_winner != nil {
		fields = append(fields, experimentvariant.FieldIsWinner)
	}
	if m.configuration != nil {
		fields = append(fields, experimentvariant.FieldConfiguration)
	}
	if m.confidence_level != nil {
		fields = append(fields, experimentvariant.FieldConfidenceLevel)
	}
	if m.improvement_rate != nil {
		fields = append(fields, experimentvariant.FieldImprovementRate)
	}
	if m.created_at != nil {
		fields = append(fields, experimentvariant.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, experimentvariant.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExperimentVariantMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case experimentvariant.FieldExperimentID:
		return m.ExperimentID()
	case experimentvariant.FieldName:
		return m.Name()
	case experimentvariant.FieldDescription:
		return m.Description()
	case experimentvariant.FieldIsControl:
		return m.IsControl()
	case experimentvariant.FieldIsWinner:
		return m.IsWinner()
	case experimentvariant.FieldConfiguration:
		return m.Configuration()
	case experimentvariant.FieldConfidenceLevel:
		return m.ConfidenceLevel()
	case experimentvariant.FieldImprovementRate:
		return m.ImprovementRate()
	case experimentvariant.FieldCreatedAt:
		return m.CreatedAt()
	case experimentvariant.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExperimentVariantMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case experimentvariant.FieldExperimentID:
		return m.OldExperimentID(ctx)
	case experimentvariant.FieldName:
		return m.OldName(ctx)
	case experimentvariant.FieldDescription:
		return m.OldDescription(ctx)
	case experimentvariant.FieldIsControl:
		return m.OldIsControl(ctx)
	case experimentvariant.FieldIsWinner:
		return m.OldIsWinner(ctx)
	case experimentvariant.FieldConfiguration:
		return m.OldConfiguration(ctx)
	case experimentvariant.FieldConfidenceLevel:
		return m.OldConfidenceLevel(ctx)
	case experimentvariant.FieldImprovementRate:
		return m.OldImprovementRate(ctx)
	case experimentvariant.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case experimentvariant.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExperimentVariant field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExperimentVariantMutation) SetField(name string, value ent.Value) error {
	switch name {
	case experimentvariant.FieldExperimentID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExperimentID(v)
		return nil
	case experimentvariant.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case experimentvariant.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case experimentvariant.FieldIsControl:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsControl(v)
		return nil
	case experimentvariant.FieldIsWinner:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsWinner(v)
		return nil
	case experimentvariant.FieldConfiguration:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfiguration(v)
		return nil
	case experimentvariant.FieldConfidenceLevel:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidenceLevel(v)
		return nil
	case experimentvariant.FieldImprovementRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImprovementRate(v)
		return nil
	case experimentvariant.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case experimentvariant.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExperimentVariant field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExperimentVariantMutation) AddedFields() []string {
	var fields []string
	if m.addconfidence_level != nil {
		fields = append(fields, experimentvariant.FieldConfidenceLevel)
	}
	if m.addimprovement_rate != nil {
		fields = append(fields, experimentvariant.FieldImprovementRate)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExperimentVariantMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case experimentvariant.FieldConfidenceLevel:
		return m.AddedConfidenceLevel()
	case experimentvariant.FieldImprovementRate:
		return m.AddedImprovementRate()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExperimentVariantMutation) AddField(name string, value ent.Value) error {
	switch name {
	case experimentvariant.FieldConfidenceLevel:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidenceLevel(v)
		return nil
	case experimentvariant.FieldImprovementRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddImprovementRate(v)
		return nil
	}
	return fmt.Errorf("unknown ExperimentVariant numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExperimentVariantMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(experimentvariant.FieldDescription) {
		fields = append(fields, experimentvariant.FieldDescription)
	}
	if m.FieldCleared(experimentvariant.FieldConfiguration) {
		fields = append(fields, experimentvariant.FieldConfiguration)
	}
	if m.FieldCleared(experimentvariant.FieldConfidenceLevel) {
		fields = append(fields, experimentvariant.FieldConfidenceLevel)
	}
	if m.FieldCleared(experimentvariant.FieldImprovementRate) {
		fields = append(fields, experimentvariant.FieldImprovementRate)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExperimentVariantMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExperimentVariantMutation) ClearField(name string) error {
	switch name {
	case experimentvariant.FieldDescription:
		m.ClearDescription()
		return nil
	case experimentvariant.FieldConfiguration:
		m.ClearConfiguration()
		return nil
	case experimentvariant.FieldConfidenceLevel:
		m.ClearConfidenceLevel()
		return nil
	case experimentvariant.FieldImprovementRate:
		m.ClearImprovementRate()
		return nil
	}
	return fmt.Errorf("unknown ExperimentVariant nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExperimentVariantMutation) ResetField(name string) error {
	switch name {
	case experimentvariant.FieldExperimentID:
		m.ResetExperimentID()
		return nil
	case experimentvariant.FieldName:
		m.ResetName()
		return nil
	case experimentvariant.FieldDescription:
		m.ResetDescription()
		return nil
	case experimentvariant.FieldIsControl:
		m.ResetIsControl()
		return nil
	case experimentvariant.FieldIsWinner:
		m.ResetIsWinner()
		return nil
	case experimentvariant.FieldConfiguration:
		m.ResetConfiguration()
		return nil
	case experimentvariant.FieldConfidenceLevel:
		m.ResetConfidenceLevel()
		return nil
	case experimentvariant.FieldImprovementRate:
		m.ResetImprovementRate()
		return nil
	case experimentvariant.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case experimentvariant.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ExperimentVariant field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExperimentVariantMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.experiment != nil {
		edges = append(edges, experimentvariant.EdgeExperiment)
	}
	if m.assignments != nil {
		edges = append(edges, experimentvariant.EdgeAssignments)
	}
	if m.results != nil {
		edges = append(edges, experimentvariant.EdgeResults)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExperimentVariantMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case experimentvariant.EdgeExperiment:
		if id := m.experiment; id != nil {
			return []ent.Value{*id}
		}
	case experimentvariant.EdgeAssignments:
		ids := make([]ent.Value, 0, len(m.assignments))
		for id := range m.assignments {
			ids = append(ids, id)
		}
		return ids
	case experimentvariant.EdgeResults:
		ids := make([]ent.Value, 0, len(m.results))
		for id := range m.results {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExperimentVariantMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedassignments != nil {
		edges = append(edges, experimentvariant.EdgeAssignments)
	}
	if m.removedresults != nil {
		edges = append(edges, experimentvariant.EdgeResults)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExperimentVariantMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case experimentvariant.EdgeAssignments:
		ids := make([]ent.Value, 0, len(m.removedassignments))
		for id := range m.removedassignments {
			ids = append(ids, id)
		}
		return ids
	case experimentvariant.EdgeResults:
		ids := make([]ent.Value, 0, len(m.removedresults))
		for id := range m.removedresults {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExperimentVariantMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedexperiment {
		edges = append(edges, experimentvariant.EdgeExperiment)
	}
	if m.clearedassignments {
		edges = append(edges, experimentvariant.EdgeAssignments)
	}
	if m.clearedresults {
		edges = append(edges, experimentvariant.EdgeResults)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExperimentVariantMutation) EdgeCleared(name string) bool {
	switch name {
	case experimentvariant.EdgeExperiment:
		return m.clearedexperiment
	case experimentvariant.EdgeAssignments:
		return m.clearedassignments
	case experimentvariant.EdgeResults:
		return m.clearedresults
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExperimentVariantMutation) ClearEdge(name string) error {
	switch name {
	case experimentvariant.EdgeExperiment:
		m.ClearExperiment()
		return nil
	}
	return fmt.Errorf("unknown ExperimentVariant unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExperimentVariantMutation) ResetEdge(name string) error {
	switch name {
	case experimentvariant.EdgeExperiment:
		m.ResetExperiment()
		return nil
	case experimentvariant.EdgeAssignments:
		m.ResetAssignments()
		return nil
	case experimentvariant.EdgeResults:
		m.ResetResults()
		return nil
	}
	return fmt.Errorf("unknown ExperimentVariant edge %s", name)
}
