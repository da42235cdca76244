// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/variantlab/abtest/ent/experiment"
	"github.com/variantlab/abtest/ent/experimentassignment"
	"github.com/variantlab/abtest/ent/experimentvariant"
	"github.com/variantlab/abtest/ent/predicate"
)

// ExperimentUpdate is the builder for updating Experiment entities.
type ExperimentUpdate struct {
	config
	hooks    []Hook
	mutation *ExperimentMutation
}

// Where appends a list predicates to the ExperimentUpdate builder.
func (_u *ExperimentUpdate) Where(ps ...predicate.Experiment) *ExperimentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ExperimentUpdate) SetName(v string) *ExperimentUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ExperimentUpdate) SetNillableName(v *string) *ExperimentUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ExperimentUpdate) SetDescription(v string) *ExperimentUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ExperimentUpdate) SetNillableDescription(v *string) *ExperimentUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ExperimentUpdate) ClearDescription() *ExperimentUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExperimentUpdate) SetStatus(v experiment.Status) *ExperimentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExperimentUpdate) SetNillableStatus(v *experiment.Status) *ExperimentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *ExperimentUpdate) SetType(v experiment.Type) *ExperimentUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *ExperimentUpdate) SetNillableType(v *experiment.Type) *ExperimentUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetTargetAudience sets the "target_audience" field.
func (_u *ExperimentUpdate) SetTargetAudience(v string) *ExperimentUpdate {
	_u.mutation.SetTargetAudience(v)
	return _u
}

// SetNillableTargetAudience sets the "target_audience" field if the given value is not nil.
func (_u *ExperimentUpdate) SetNillableTargetAudience(v *string) *ExperimentUpdate {
	if v != nil {
		_u.SetTargetAudience(*v)
	}
	return _u
}

// ClearTargetAudience clears the value of the "target_audience" field.
func (_u *ExperimentUpdate) ClearTargetAudience() *ExperimentUpdate {
	_u.mutation.ClearTargetAudience()
	return _u
}

// SetAudiencePercentage sets the "audience_percentage" field.
func (_u *ExperimentUpdate) SetAudiencePercentage(v float64) *ExperimentUpdate {
	_u.mutation.ResetAudiencePercentage()
	_u.mutation.SetAudiencePercentage(v)
	return _u
}

// SetNillableAudiencePercentage sets the "audience_percentage" field if the given value is not nil.
func (_u *ExperimentUpdate) SetNillableAudiencePercentage(v *float64) *ExperimentUpdate {
	if v != nil {
		_u.SetAudiencePercentage(*v)
	}
	return _u
}

// AddAudiencePercentage adds value to the "audience_percentage" field.
func (_u *ExperimentUpdate) AddAudiencePercentage(v float64) *ExperimentUpdate {
	_u.mutation.AddAudiencePercentage(v)
	return _u
}

// ClearAudiencePercentage clears the value of the "audience_percentage" field.
func (_u *ExperimentUpdate) ClearAudiencePercentage() *ExperimentUpdate {
	_u.mutation.ClearAudiencePercentage()
	return _u
}

// SetStartDate sets the "start_date" field.
func (_u *ExperimentUpdate) SetStartDate(v time.Time) *ExperimentUpdate {
	_u.mutation.SetStartDate(v)
	return _u
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_u *ExperimentUpdate) SetNillableStartDate(v *time.Time) *ExperimentUpdate {
	if v != nil {
		_u.SetStartDate(*v)
	}
	return _u
}

// ClearStartDate clears the value of the "start_date" field.
func (_u *ExperimentUpdate) ClearStartDate() *ExperimentUpdate {
	_u.mutation.ClearStartDate()
	return _u
}

// SetEndDate sets the "end_date" field.
func (_u *ExperimentUpdate) SetEndDate(v time.Time) *ExperimentUpdate {
	_u.mutation.SetEndDate(v)
	return _u
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (_u *ExperimentUpdate) SetNillableEndDate(v *time.Time) *ExperimentUpdate {
	if v != nil {
		_u.SetEndDate(*v)
	}
	return _u
}

// ClearEndDate clears the value of the "end_date" field.
func (_u *ExperimentUpdate) ClearEndDate() *ExperimentUpdate {
	_u.mutation.ClearEndDate()
	return _u
}

// SetHypothesis sets the "hypothesis" field.
func (_u *ExperimentUpdate) SetHypothesis(v string) *ExperimentUpdate {
	_u.mutation.SetHypothesis(v)
	return _u
}

// SetNillableHypothesis sets the "hypothesis" field if the given value is not nil.
func (_u *ExperimentUpdate) SetNillableHypothesis(v *string) *ExperimentUpdate {
	if v != nil {
		_u.SetHypothesis(*v)
	}
	return _u
}

// ClearHypothesis clears the value of the "hypothesis" field.
func (_u *ExperimentUpdate) ClearHypothesis() *ExperimentUpdate {
	_u.mutation.ClearHypothesis()
	return _u
}

// SetPrimaryMetric sets the "primary_metric" field.
func (_u *ExperimentUpdate) SetPrimaryMetric(v string) *ExperimentUpdate {
	_u.mutation.SetPrimaryMetric(v)
	return _u
}

// SetNillablePrimaryMetric sets the "primary_metric" field if the given value is not nil.
func (_u *ExperimentUpdate) SetNillablePrimaryMetric(v *string) *ExperimentUpdate {
	if v != nil {
		_u.SetPrimaryMetric(*v)
	}
	return _u
}

// ClearPrimaryMetric clears the value of the "primary_metric" field.
func (_u *ExperimentUpdate) ClearPrimaryMetric() *ExperimentUpdate {
	_u.mutation.ClearPrimaryMetric()
	return _u
}

// SetSecondaryMetrics sets the "secondary_metrics" field.
func (_u *ExperimentUpdate) SetSecondaryMetrics(v []string) *ExperimentUpdate {
	_u.mutation.SetSecondaryMetrics(v)
	return _u
}

// AppendSecondaryMetrics appends value to the "secondary_metrics" field.
func (_u *ExperimentUpdate) AppendSecondaryMetrics(v []string) *ExperimentUpdate {
	_u.mutation.AppendSecondaryMetrics(v)
	return _u
}

// ClearSecondaryMetrics clears the value of the "secondary_metrics" field.
func (_u *ExperimentUpdate) ClearSecondaryMetrics() *ExperimentUpdate {
	_u.mutation.ClearSecondaryMetrics()
	return _u
}

// SetSegmentation sets the "segmentation" field.
func (_u *ExperimentUpdate) SetSegmentation(v map[string]interface{}) *ExperimentUpdate {
	_u.mutation.SetSegmentation(v)
	return _u
}

// ClearSegmentation clears the value of the "segmentation" field.
func (_u *ExperimentUpdate) ClearSegmentation() *ExperimentUpdate {
	_u.mutation.ClearSegmentation()
	return _u
}

// SetMinDetectableEffect sets the "min_detectable_effect" field.
func (_u *ExperimentUpdate) SetMinDetectableEffect(v float64) *ExperimentUpdate {
	_u.mutation.ResetMinDetectableEffect()
	_u.mutation.SetMinDetectableEffect(v)
	return _u
}

// SetNillableMinDetectableEffect sets the "min_detectable_effect" field if the given value is not nil.
func (_u *ExperimentUpdate) SetNillableMinDetectableEffect(v *float64) *ExperimentUpdate {
	if v != nil {
		_u.SetMinDetectableEffect(*v)
	}
	return _u
}

// AddMinDetectableEffect adds value to the "min_detectable_effect" field.
func (_u *ExperimentUpdate) AddMinDetectableEffect(v float64) *ExperimentUpdate {
	_u.mutation.AddMinDetectableEffect(v)
	return _u
}

// ClearMinDetectableEffect clears the value of the "min_detectable_effect" field.
func (_u *ExperimentUpdate) ClearMinDetectableEffect() *ExperimentUpdate {
	_u.mutation.ClearMinDetectableEffect()
	return _u
}

// SetHasWinner sets the "has_winner" field.
func (_u *ExperimentUpdate) SetHasWinner(v bool) *ExperimentUpdate {
	_u.mutation.SetHasWinner(v)
	return _u
}

// SetNillableHasWinner sets the "has_winner" field if the given value is not nil.
func (_u *ExperimentUpdate) SetNillableHasWinner(v *bool) *ExperimentUpdate {
	if v != nil {
		_u.SetHasWinner(*v)
	}
	return _u
}

// SetWinningVariantID sets the "winning_variant_id" field.
func (_u *ExperimentUpdate) SetWinningVariantID(v int) *ExperimentUpdate {
	_u.mutation.ResetWinningVariantID()
	_u.mutation.SetWinningVariantID(v)
	return _u
}

// SetNillableWinningVariantID sets the "winning_variant_id" field if the given value is not nil.
func (_u *ExperimentUpdate) SetNillableWinningVariantID(v *int) *ExperimentUpdate {
	if v != nil {
		_u.SetWinningVariantID(*v)
	}
	return _u
}

// AddWinningVariantID adds value to the "winning_variant_id" field.
func (_u *ExperimentUpdate) AddWinningVariantID(v int) *ExperimentUpdate {
	_u.mutation.AddWinningVariantID(v)
	return _u
}

// ClearWinningVariantID clears the value of the "winning_variant_id" field.
func (_u *ExperimentUpdate) ClearWinningVariantID() *ExperimentUpdate {
	_u.mutation.ClearWinningVariantID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExperimentUpdate) SetUpdatedAt(v time.Time) *ExperimentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddVariantIDs adds the "variants" edge to the ExperimentVariant entity by IDs.
func (_u *ExperimentUpdate) AddVariantIDs(ids ...int) *ExperimentUpdate {
	_u.mutation.AddVariantIDs(ids...)
	return _u
}

// AddVariants adds the "variants" edges to the ExperimentVariant entity.
func (_u *ExperimentUpdate) AddVariants(v ...*ExperimentVariant) *ExperimentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVariantIDs(ids...)
}

// AddAssignmentIDs adds the "assignments" edge to the ExperimentAssignment entity by IDs.
func (_u *ExperimentUpdate) AddAssignmentIDs(ids ...int) *ExperimentUpdate {
	_u.mutation.AddAssignmentIDs(ids...)
	return _u
}

// AddAssignments adds the "assignments" edges to the ExperimentAssignment entity.
func (_u *ExperimentUpdate) AddAssignments(v ...*ExperimentAssignment) *ExperimentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAssignmentIDs(ids...)
}

// Mutation returns the ExperimentMutation object of the builder.
func (_u *ExperimentUpdate) Mutation() *ExperimentMutation {
	return _u.mutation
}

// ClearVariants clears all "variants" edges to the ExperimentVariant entity.
func (_u *ExperimentUpdate) ClearVariants() *ExperimentUpdate {
	_u.mutation.ClearVariants()
	return _u
}

// RemoveVariantIDs removes the "variants" edge to ExperimentVariant entities by IDs.
func (_u *ExperimentUpdate) RemoveVariantIDs(ids ...int) *ExperimentUpdate {
	_u.mutation.RemoveVariantIDs(ids...)
	return _u
}

// RemoveVariants removes "variants" edges to ExperimentVariant entities.
func (_u *ExperimentUpdate) RemoveVariants(v ...*ExperimentVariant) *ExperimentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVariantIDs(ids...)
}

// ClearAssignments clears all "assignments" edges to the ExperimentAssignment entity.
func (_u *ExperimentUpdate) ClearAssignments() *ExperimentUpdate {
	_u.mutation.ClearAssignments()
	return _u
}

// RemoveAssignmentIDs removes the "assignments" edge to ExperimentAssignment entities by IDs.
func (_u *ExperimentUpdate) RemoveAssignmentIDs(ids ...int) *ExperimentUpdate {
	_u.mutation.RemoveAssignmentIDs(ids...)
	return _u
}

// RemoveAssignments removes "assignments" edges to ExperimentAssignment entities.
func (_u *ExperimentUpdate) RemoveAssignments(v ...*ExperimentAssignment) *ExperimentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAssignmentIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExperimentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExperimentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExperimentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExperimentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExperimentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := experiment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExperimentUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := experiment.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Experiment.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := experiment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Experiment.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetType(); ok {
		if err := experiment.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Experiment.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TargetAudience(); ok {
		if err := experiment.TargetAudienceValidator(v); err != nil {
			return &ValidationError{Name: "target_audience", err: fmt.Errorf(`ent: validator failed for field "Experiment.target_audience": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AudiencePercentage(); ok {
		if err := experiment.AudiencePercentageValidator(v); err != nil {
			return &ValidationError{Name: "audience_percentage", err: fmt.Errorf(`ent: validator failed for field "Experiment.audience_percentage": %w`, err)}
		}
	}
	return nil
}

func (_u *ExperimentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(experiment.Table, experiment.Columns, sqlgraph.NewFieldSpec(experiment.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(experiment.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(experiment.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(experiment.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(experiment.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(experiment.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TargetAudience(); ok {
		_spec.SetField(experiment.FieldTargetAudience, field.TypeString, value)
	}
	if _u.mutation.TargetAudienceCleared() {
		_spec.ClearField(experiment.FieldTargetAudience, field.TypeString)
	}
	if value, ok := _u.mutation.AudiencePercentage(); ok {
		_spec.SetField(experiment.FieldAudiencePercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAudiencePercentage(); ok {
		_spec.AddField(experiment.FieldAudiencePercentage, field.TypeFloat64, value)
	}
	if _u.mutation.AudiencePercentageCleared() {
		_spec.ClearField(experiment.FieldAudiencePercentage, field.TypeFloat64)
	}
	if value, ok := _u.mutation.StartDate(); ok {
		_spec.SetField(experiment.FieldStartDate, field.TypeTime, value)
	}
	if _u.mutation.StartDateCleared() {
		_spec.ClearField(experiment.FieldStartDate, field.TypeTime)
	}
	if value, ok := _u.mutation.EndDate(); ok {
		_spec.SetField(experiment.FieldEndDate, field.TypeTime, value)
	}
	if _u.mutation.EndDateCleared() {
		_spec.ClearField(experiment.FieldEndDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Hypothesis(); ok {
		_spec.SetField(experiment.FieldHypothesis, field.TypeString, value)
	}
	if _u.mutation.HypothesisCleared() {
		_spec.ClearField(experiment.FieldHypothesis, field.TypeString)
	}
	if value, ok := _u.mutation.PrimaryMetric(); ok {
		_spec.SetField(experiment.FieldPrimaryMetric, field.TypeString, value)
	}
	if _u.mutation.PrimaryMetricCleared() {
		_spec.ClearField(experiment.FieldPrimaryMetric, field.TypeString)
	}
	if value, ok := _u.mutation.SecondaryMetrics(); ok {
		_spec.SetField(experiment.FieldSecondaryMetrics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSecondaryMetrics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, experiment.FieldSecondaryMetrics, value)
		})
	}
	if _u.mutation.SecondaryMetricsCleared() {
		_spec.ClearField(experiment.FieldSecondaryMetrics, field.TypeJSON)
	}
	if value, ok := _u.mutation.Segmentation(); ok {
		_spec.SetField(experiment.FieldSegmentation, field.TypeJSON, value)
	}
	if _u.mutation.SegmentationCleared() {
		_spec.ClearField(experiment.FieldSegmentation, field.TypeJSON)
	}
	if value, ok := _u.mutation.MinDetectableEffect(); ok {
		_spec.SetField(experiment.FieldMinDetectableEffect, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMinDetectableEffect(); ok {
		_spec.AddField(experiment.FieldMinDetectableEffect, field.TypeFloat64, value)
	}
	if _u.mutation.MinDetectableEffectCleared() {
		_spec.ClearField(experiment.FieldMinDetectableEffect, field.TypeFloat64)
	}
	if value, ok := _u.mutation.HasWinner(); ok {
		_spec.SetField(experiment.FieldHasWinner, field.TypeBool, value)
	}
	if value, ok := _u.mutation.WinningVariantID(); ok {
		_spec.SetField(experiment.FieldWinningVariantID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWinningVariantID(); ok {
		_spec.AddField(experiment.FieldWinningVariantID, field.TypeInt, value)
	}
	if _u.mutation.WinningVariantIDCleared() {
		_spec.ClearField(experiment.FieldWinningVariantID, field.TypeInt)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(experiment.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.VariantsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   experiment.VariantsTable,
			Columns: []string{experiment.VariantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(experimentvariant.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVariantsIDs(); len(nodes) > 0 && !_u.mutation.VariantsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   experiment.VariantsTable,
			Columns: []string{experiment.VariantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(experimentvariant.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VariantsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   experiment.VariantsTable,
			Columns: []string{experiment.VariantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(experimentvariant.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AssignmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   experiment.AssignmentsTable,
			Columns: []string{experiment.AssignmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(experimentassignment.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAssignmentsIDs(); len(nodes) > 0 && !_u.mutation.AssignmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   experiment.AssignmentsTable,
			Columns: []string{experiment.AssignmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(experimentassignment.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssignmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   experiment.AssignmentsTable,
			Columns: []string{experiment.AssignmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(experimentassignment.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{experiment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExperimentUpdateOne is the builder for updating a single Experiment entity.
type ExperimentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExperimentMutation
}

// SetName sets the "name" field.
func (_u *ExperimentUpdateOne) SetName(v string) *ExperimentUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ExperimentUpdateOne) SetNillableName(v *string) *ExperimentUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ExperimentUpdateOne) SetDescription(v string) *ExperimentUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ExperimentUpdateOne) SetNillableDescription(v *string) *ExperimentUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ExperimentUpdateOne) ClearDescription() *ExperimentUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExperimentUpdateOne) SetStatus(v experiment.Status) *ExperimentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExperimentUpdateOne) SetNillableStatus(v *experiment.Status) *ExperimentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *ExperimentUpdateOne) SetType(v experiment.Type) *ExperimentUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *ExperimentUpdateOne) SetNillableType(v *experiment.Type) *ExperimentUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetTargetAudience sets the "target_audience" field.
func (_u *ExperimentUpdateOne) SetTargetAudience(v string) *ExperimentUpdateOne {
	_u.mutation.SetTargetAudience(v)
	return _u
}

// SetNillableTargetAudience sets the "target_audience" field if the given value is not nil.
func (_u *ExperimentUpdateOne) SetNillableTargetAudience(v *string) *ExperimentUpdateOne {
	if v != nil {
		_u.SetTargetAudience(*v)
	}
	return _u
}

// ClearTargetAudience clears the value of the "target_audience" field.
func (_u *ExperimentUpdateOne) ClearTargetAudience() *ExperimentUpdateOne {
	_u.mutation.ClearTargetAudience()
	return _u
}

// SetAudiencePercentage sets the "audience_percentage" field.
func (_u *ExperimentUpdateOne) SetAudiencePercentage(v float64) *ExperimentUpdateOne {
	_u.mutation.ResetAudiencePercentage()
	_u.mutation.SetAudiencePercentage(v)
	return _u
}

// SetNillableAudiencePercentage sets the "audience_percentage" field if the given value is not nil.
func (_u *ExperimentUpdateOne) SetNillableAudiencePercentage(v *float64) *ExperimentUpdateOne {
	if v != nil {
		_u.SetAudiencePercentage(*v)
	}
	return _u
}

// AddAudiencePercentage adds value to the "audience_percentage" field.
func (_u *ExperimentUpdateOne) AddAudiencePercentage(v float64) *ExperimentUpdateOne {
	_u.mutation.AddAudiencePercentage(v)
	return _u
}

// ClearAudiencePercentage clears the value of the "audience_percentage" field.
func (_u *ExperimentUpdateOne) ClearAudiencePercentage() *ExperimentUpdateOne {
	_u.mutation.ClearAudiencePercentage()
	return _u
}

// SetStartDate sets the "start_date" field.
func (_u *ExperimentUpdateOne) SetStartDate(v time.Time) *ExperimentUpdateOne {
	_u.mutation.SetStartDate(v)
	return _u
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_u *ExperimentUpdateOne) SetNillableStartDate(v *time.Time) *ExperimentUpdateOne {
	if v != nil {
		_u.SetStartDate(*v)
	}
	return _u
}

// ClearStartDate clears the value of the "start_date" field.
func (_u *ExperimentUpdateOne) ClearStartDate() *ExperimentUpdateOne {
	_u.mutation.ClearStartDate()
	return _u
}

// SetEndDate sets the "end_date" field.
func (_u *ExperimentUpdateOne) SetEndDate(v time.Time) *ExperimentUpdateOne {
	_u.mutation.SetEndDate(v)
	return _u
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (_u *ExperimentUpdateOne) SetNillableEndDate(v *time.Time) *ExperimentUpdateOne {
	if v != nil {
		_u.SetEndDate(*v)
	}
	return _u
}

// ClearEndDate clears the value of the "end_date" field.
func (_u *ExperimentUpdateOne) ClearEndDate() *ExperimentUpdateOne {
	_u.mutation.ClearEndDate()
	return _u
}

// SetHypothesis sets the "hypothesis" field.
func (_u *ExperimentUpdateOne) SetHypothesis(v string) *ExperimentUpdateOne {
	_u.mutation.SetHypothesis(v)
	return _u
}

// SetNillableHypothesis sets the "hypothesis" field if the given value is not nil.
func (_u *ExperimentUpdateOne) SetNillableHypothesis(v *string) *ExperimentUpdateOne {
	if v != nil {
		_u.SetHypothesis(*v)
	}
	return _u
}

// ClearHypothesis clears the value of the "hypothesis" field.
func (_u *ExperimentUpdateOne) ClearHypothesis() *ExperimentUpdateOne {
	_u.mutation.ClearHypothesis()
	return _u
}

// SetPrimaryMetric sets the "primary_metric" field.
func (_u *ExperimentUpdateOne) SetPrimaryMetric(v string) *ExperimentUpdateOne {
	_u.mutation.SetPrimaryMetric(v)
	return _u
}

// SetNillablePrimaryMetric sets the "primary_metric" field if the given value is not nil.
func (_u *ExperimentUpdateOne) SetNillablePrimaryMetric(v *string) *ExperimentUpdateOne {
	if v != nil {
		_u.SetPrimaryMetric(*v)
	}
	return _u
}

// ClearPrimaryMetric clears the value of the "primary_metric" field.
func (_u *ExperimentUpdateOne) ClearPrimaryMetric() *ExperimentUpdateOne {
	_u.mutation.ClearPrimaryMetric()
	return _u
}

// SetSecondaryMetrics sets the "secondary_metrics" field.
func (_u *ExperimentUpdateOne) SetSecondaryMetrics(v []string) *ExperimentUpdateOne {
	_u.mutation.SetSecondaryMetrics(v)
	return _u
}

// AppendSecondaryMetrics appends value to the "secondary_metrics" field.
func (_u *ExperimentUpdateOne) AppendSecondaryMetrics(v []string) *ExperimentUpdateOne {
	_u.mutation.AppendSecondaryMetrics(v)
	return _u
}

// ClearSecondaryMetrics clears the value of the "secondary_metrics" field.
func (_u *ExperimentUpdateOne) ClearSecondaryMetrics() *ExperimentUpdateOne {
	_u.mutation.ClearSecondaryMetrics()
	return _u
}

// SetSegmentation sets the "segmentation" field.
func (_u *ExperimentUpdateOne) SetSegmentation(v map[string]interface{}) *ExperimentUpdateOne {
	_u.mutation.SetSegmentation(v)
	return _u
}

// ClearSegmentation clears the value of the "segmentation" field.
func (_u *ExperimentUpdateOne) ClearSegmentation() *ExperimentUpdateOne {
	_u.mutation.ClearSegmentation()
	return _u
}

// SetMinDetectableEffect sets the "min_detectable_effect" field.
func (_u *ExperimentUpdateOne) SetMinDetectableEffect(v float64) *ExperimentUpdateOne {
	_u.mutation.ResetMinDetectableEffect()
	_u.mutation.SetMinDetectableEffect(v)
	return _u
}

// SetNillableMinDetectableEffect sets the "min_detectable_effect" field if the given value is not nil.
func (_u *ExperimentUpdateOne) SetNillableMinDetectableEffect(v *float64) *ExperimentUpdateOne {
	if v != nil {
		_u.SetMinDetectableEffect(*v)
	}
	return _u
}

// AddMinDetectableEffect adds value to the "min_detectable_effect" field.
func (_u *ExperimentUpdateOne) AddMinDetectableEffect(v float64) *ExperimentUpdateOne {
	_u.mutation.AddMinDetectableEffect(v)
	return _u
}

// ClearMinDetectableEffect clears the value of the "min_detectable_effect" field.
func (_u *ExperimentUpdateOne) ClearMinDetectableEffect() *ExperimentUpdateOne {
	_u.mutation.ClearMinDetectableEffect()
	return _u
}

// SetHasWinner sets the "has_winner" field.
func (_u *ExperimentUpdateOne) SetHasWinner(v bool) *ExperimentUpdateOne {
	_u.mutation.SetHasWinner(v)
	return _u
}

// SetNillableHasWinner sets the "has_winner" field if the given value is not nil.
func (_u *ExperimentUpdateOne) SetNillableHasWinner(v *bool) *ExperimentUpdateOne {
	if v != nil {
		_u.SetHasWinner(*v)
	}
	return _u
}

// SetWinningVariantID sets the "winning_variant_id" field.
func (_u *ExperimentUpdateOne) SetWinningVariantID(v int) *ExperimentUpdateOne {
	_u.mutation.ResetWinningVariantID()
	_u.mutation.SetWinningVariantID(v)
	return _u
}

// SetNillableWinningVariantID sets the "winning_variant_id" field if the given value is not nil.
func (_u *ExperimentUpdateOne) SetNillableWinningVariantID(v *int) *ExperimentUpdateOne {
	if v != nil {
		_u.SetWinningVariantID(*v)
	}
	return _u
}

// AddWinningVariantID adds value to the "winning_variant_id" field.
func (_u *ExperimentUpdateOne) AddWinningVariantID(v int) *ExperimentUpdateOne {
	_u.mutation.AddWinningVariantID(v)
	return _u
}

// ClearWinningVariantID clears the value of the "winning_variant_id" field.
func (_u *ExperimentUpdateOne) ClearWinningVariantID() *ExperimentUpdateOne {
	_u.mutation.ClearWinningVariantID()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExperimentUpdateOne) SetUpdatedAt(v time.Time) *ExperimentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddVariantIDs adds the "variants" edge to the ExperimentVariant entity by IDs.
func (_u *ExperimentUpdateOne) AddVariantIDs(ids ...int) *ExperimentUpdateOne {
	_u.mutation.AddVariantIDs(ids...)
	return _u
}

// AddVariants adds the "variants" edges to the ExperimentVariant entity.
func (_u *ExperimentUpdateOne) AddVariants(v ...*ExperimentVariant) *ExperimentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVariantIDs(ids...)
}

// AddAssignmentIDs adds the "assignments" edge to the ExperimentAssignment entity by IDs.
func (_u *ExperimentUpdateOne) AddAssignmentIDs(ids ...int) *ExperimentUpdateOne {
	_u.mutation.AddAssignmentIDs(ids...)
	return _u
}

// AddAssignments adds the "assignments" edges to the ExperimentAssignment entity.
func (_u *ExperimentUpdateOne) AddAssignments(v ...*ExperimentAssignment) *ExperimentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAssignmentIDs(ids...)
}

// Mutation returns the ExperimentMutation object of the builder.
func (_u *ExperimentUpdateOne) Mutation() *ExperimentMutation {
	return _u.mutation
}

// ClearVariants clears all "variants" edges to the ExperimentVariant entity.
func (_u *ExperimentUpdateOne) ClearVariants() *ExperimentUpdateOne {
	_u.mutation.ClearVariants()
	return _u
}

// RemoveVariantIDs removes the "variants" edge to ExperimentVariant entities by IDs.
func (_u *ExperimentUpdateOne) RemoveVariantIDs(ids ...int) *ExperimentUpdateOne {
	_u.mutation.RemoveVariantIDs(ids...)
	return _u
}

// RemoveVariants removes "variants" edges to ExperimentVariant entities.
func (_u *ExperimentUpdateOne) RemoveVariants(v ...*ExperimentVariant) *ExperimentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVariantIDs(ids...)
}

// ClearAssignments clears all "assignments" edges to the ExperimentAssignment entity.
func (_u *ExperimentUpdateOne) ClearAssignments() *ExperimentUpdateOne {
	_u.mutation.ClearAssignments()
	return _u
}

// RemoveAssignmentIDs removes the "assignments" edge to ExperimentAssignment entities by IDs.
func (_u *ExperimentUpdateOne) RemoveAssignmentIDs(ids ...int) *ExperimentUpdateOne {
	_u.mutation.RemoveAssignmentIDs(ids...)
	return _u
}

// RemoveAssignments removes "assignments" edges to ExperimentAssignment entities.
func (_u *ExperimentUpdateOne) RemoveAssignments(v ...*ExperimentAssignment) *ExperimentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAssignmentIDs(ids...)
}

// Where appends a list predicates to the ExperimentUpdate builder.
func (_u *ExperimentUpdateOne) Where(ps ...predicate.Experiment) *ExperimentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExperimentUpdateOne) Select(field string, fields ...string) *ExperimentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Experiment entity.
func (_u *ExperimentUpdateOne) Save(ctx context.Context) (*Experiment, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExperimentUpdateOne) SaveX(ctx context.Context) *Experiment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExperimentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExperimentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExperimentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := experiment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExperimentUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := experiment.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Experiment.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := experiment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Experiment.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetType(); ok {
		if err := experiment.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Experiment.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TargetAudience(); ok {
		if err := experiment.TargetAudienceValidator(v); err != nil {
			return &ValidationError{Name: "target_audience", err: fmt.Errorf(`ent: validator failed for field "Experiment.target_audience": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AudiencePercentage(); ok {
		if err := experiment.AudiencePercentageValidator(v); err != nil {
			return &ValidationError{Name: "audience_percentage", err: fmt.Errorf(`ent: validator failed for field "Experiment.audience_percentage": %w`, err)}
		}
	}
	return nil
}

func (_u *ExperimentUpdateOne) sqlSave(ctx context.Context) (_node *Experiment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(experiment.Table, experiment.Columns, sqlgraph.NewFieldSpec(experiment.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Experiment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, experiment.FieldID)
		for _, f := range fields {
			if !experiment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != experiment.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(experiment.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(experiment.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(experiment.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(experiment.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(experiment.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TargetAudience(); ok {
		_spec.SetField(experiment.FieldTargetAudience, field.TypeString, value)
	}
	if _u.mutation.TargetAudienceCleared() {
		_spec.ClearField(experiment.FieldTargetAudience, field.TypeString)
	}
	if value, ok := _u.mutation.AudiencePercentage(); ok {
		_spec.SetField(experiment.FieldAudiencePercentage, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAudiencePercentage(); ok {
		_spec.AddField(experiment.FieldAudiencePercentage, field.TypeFloat64, value)
	}
	if _u.mutation.AudiencePercentageCleared() {
		_spec.ClearField(experiment.FieldAudiencePercentage, field.TypeFloat64)
	}
	if value, ok := _u.mutation.StartDate(); ok {
		_spec.SetField(experiment.FieldStartDate, field.TypeTime, value)
	}
	if _u.mutation.StartDateCleared() {
		_spec.ClearField(experiment.FieldStartDate, field.TypeTime)
	}
	if value, ok := _u.mutation.EndDate(); ok {
		_spec.SetField(experiment.FieldEndDate, field.TypeTime, value)
	}
	if _u.mutation.EndDateCleared() {
		_spec.ClearField(experiment.FieldEndDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Hypothesis(); ok {
		_spec.SetField(experiment.FieldHypothesis, field.TypeString, value)
	}
	if _u.mutation.HypothesisCleared() {
		_spec.ClearField(experiment.FieldHypothesis, field.TypeString)
	}
	if value, ok := _u.mutation.PrimaryMetric(); ok {
		_spec.SetField(experiment.FieldPrimaryMetric, field.TypeString, value)
	}
	if _u.mutation.PrimaryMetricCleared() {
		_spec.ClearField(experiment.FieldPrimaryMetric, field.TypeString)
	}
	if value, ok := _u.mutation.SecondaryMetrics(); ok {
		_spec.SetField(experiment.FieldSecondaryMetrics, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSecondaryMetrics(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, experiment.FieldSecondaryMetrics, value)
		})
	}
	if _u.mutation.SecondaryMetricsCleared() {
		_spec.ClearField(experiment.FieldSecondaryMetrics, field.TypeJSON)
	}
	if value, ok := _u.mutation.Segmentation(); ok {
		_spec.SetField(experiment.FieldSegmentation, field.TypeJSON, value)
	}
	if _u.mutation.SegmentationCleared() {
		_spec.ClearField(experiment.FieldSegmentation, field.TypeJSON)
	}
	if value, ok := _u.mutation.MinDetectableEffect(); ok {
		_spec.SetField(experiment.FieldMinDetectableEffect, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMinDetectableEffect(); ok {
		_spec.AddField(experiment.FieldMinDetectableEffect, field.TypeFloat64, value)
	}
	if _u.mutation.MinDetectableEffectCleared() {
		_spec.ClearField(experiment.FieldMinDetectableEffect, field.TypeFloat64)
	}
	if value, ok := _u.mutation.HasWinner(); ok {
		_spec.SetField(experiment.FieldHasWinner, field.TypeBool, value)
	}
	if value, ok := _u.mutation.WinningVariantID(); ok {
		_spec.SetField(experiment.FieldWinningVariantID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWinningVariantID(); ok {
		_spec.AddField(experiment.FieldWinningVariantID, field.TypeInt, value)
	}
	if _u.mutation.WinningVariantIDCleared() {
		_spec.ClearField(experiment.FieldWinningVariantID, field.TypeInt)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(experiment.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.VariantsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   experiment.VariantsTable,
			Columns: []string{experiment.VariantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(experimentvariant.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVariantsIDs(); len(nodes) > 0 && !_u.mutation.VariantsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   experiment.VariantsTable,
			Columns: []string{experiment.VariantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(experimentvariant.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VariantsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   experiment.VariantsTable,
			Columns: []string{experiment.VariantsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(experimentvariant.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AssignmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   experiment.AssignmentsTable,
			Columns: []string{experiment.AssignmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(experimentassignment.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAssignmentsIDs(); len(nodes) > 0 && !_u.mutation.AssignmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   experiment.AssignmentsTable,
			Columns: []string{experiment.AssignmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(experimentassignment.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AssignmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   experiment.AssignmentsTable,
			Columns: []string{experiment.AssignmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(experimentassignment.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Experiment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{experiment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
