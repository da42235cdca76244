// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/variantlab/abtest/ent/experiment"
	"github.com/variantlab/abtest/ent/experimentassignment"
	"github.com/variantlab/abtest/ent/experimentresult"
	"github.com/variantlab/abtest/ent/experimentvariant"
	"github.com/variantlab/abtest/ent/predicate"
)

// ExperimentVariantUpdate is the builder for updating ExperimentVariant entities.
type ExperimentVariantUpdate struct {
	config
	hooks    []Hook
	mutation *ExperimentVariantMutation
}

// Where appends a list predicates to the ExperimentVariantUpdate builder.
func (_u *ExperimentVariantUpdate) Where(ps ...predicate.ExperimentVariant) *ExperimentVariantUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetExperimentID sets the "experiment_id" field.
func (_u *ExperimentVariantUpdate) SetExperimentID(v int) *ExperimentVariantUpdate {
	_u.mutation.SetExperimentID(v)
	return _u
}

// SetNillableExperimentID sets the "experiment_id" field if the given value is not nil.
func (_u *ExperimentVariantUpdate) SetNillableExperimentID(v *int) *ExperimentVariantUpdate {
	if v != nil {
		_u.SetExperimentID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ExperimentVariantUpdate) SetName(v string) *ExperimentVariantUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ExperimentVariantUpdate) SetNillableName(v *string) *ExperimentVariantUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ExperimentVariantUpdate) SetDescription(v string) *ExperimentVariantUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ExperimentVariantUpdate) SetNillableDescription(v *string) *ExperimentVariantUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ExperimentVariantUpdate) ClearDescription() *ExperimentVariantUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetIsControl sets the "is_control" field.
func (_u *ExperimentVariantUpdate) SetIsControl(v bool) *ExperimentVariantUpdate {
	_u.mutation.SetIsControl(v)
	return _u
}

// SetNillableIsControl sets the "is_control" field if the given value is not nil.
func (_u *ExperimentVariantUpdate) SetNillableIsControl(v *bool) *ExperimentVariantUpdate {
	if v != nil {
		_u.SetIsControl(*v)
	}
	return _u
}

// SetIsWinner sets the "is_winner" field.
func (_u *ExperimentVariantUpdate) SetIsWinner(v bool) *ExperimentVariantUpdate {
	_u.mutation.SetIsWinner(v)
	return _u
}

// SetNillableIsWinner sets the "is_winner" field if the given value is not nil.
func (_u *ExperimentVariantUpdate) SetNillableIsWinner(v *bool) *ExperimentVariantUpdate {
	if v != nil {
		_u.SetIsWinner(*v)
	}
	return _u
}

// SetConfiguration sets the "configuration" field.
func (_u *ExperimentVariantUpdate) SetConfiguration(v map[string]interface{}) *ExperimentVariantUpdate {
	_u.mutation.SetConfiguration(v)
	return _u
}

// ClearConfiguration clears the value of the "configuration" field.
func (_u *ExperimentVariantUpdate) ClearConfiguration() *ExperimentVariantUpdate {
	_u.mutation.ClearConfiguration()
	return _u
}

// SetConfidenceLevel sets the "confidence_level" field.
func (_u *ExperimentVariantUpdate) SetConfidenceLevel(v float64) *ExperimentVariantUpdate {
	_u.mutation.ResetConfidenceLevel()
	_u.mutation.SetConfidenceLevel(v)
	return _u
}

// SetNillableConfidenceLevel sets the "confidence_level" field if the given value is not nil.
func (_u *ExperimentVariantUpdate) SetNillableConfidenceLevel(v *float64) *ExperimentVariantUpdate {
	if v != nil {
		_u.SetConfidenceLevel(*v)
	}
	return _u
}

// AddConfidenceLevel adds value to the "confidence_level" field.
func (_u *ExperimentVariantUpdate) AddConfidenceLevel(v float64) *ExperimentVariantUpdate {
	_u.mutation.AddConfidenceLevel(v)
	return _u
}

// ClearConfidenceLevel clears the value of the "confidence_level" field.
func (_u *ExperimentVariantUpdate) ClearConfidenceLevel() *ExperimentVariantUpdate {
	_u.mutation.ClearConfidenceLevel()
	return _u
}

// SetImprovementRate sets the "improvement_rate" field.
func (_u *ExperimentVariantUpdate) SetImprovementRate(v float64) *ExperimentVariantUpdate {
	_u.mutation.ResetImprovementRate()
	_u.mutation.SetImprovementRate(v)
	return _u
}

// SetNillableImprovementRate sets the "improvement_rate" field if the given value is not nil.
func (_u *ExperimentVariantUpdate) SetNillableImprovementRate(v *float64) *ExperimentVariantUpdate {
	if v != nil {
		_u.SetImprovementRate(*v)
	}
	return _u
}

// AddImprovementRate adds value to the "improvement_rate" field.
func (_u *ExperimentVariantUpdate) AddImprovementRate(v float64) *ExperimentVariantUpdate {
	_u.mutation.AddImprovementRate(v)
	return _u
}

// ClearImprovementRate clears the value of the "improvement_rate" field.
func (_u *ExperimentVariantUpdate) ClearImprovementRate() *ExperimentVariantUpdate {
	_u.mutation.ClearImprovementRate()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExperimentVariantUpdate) SetUpdatedAt(v time.Time) *ExperimentVariantUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetExperiment sets the "experiment" edge to the Experiment entity.
func (_u *ExperimentVariantUpdate) SetExperiment(v *Experiment) *ExperimentVariantUpdate {
	return _u.SetExperimentID(v.ID)
}

// AddAssignmentIDs adds the "assignments" edge to the ExperimentAssignment entity by IDs.
func (_u *ExperimentVariantUpdate) AddAssignmentIDs(ids ...int) *ExperimentVariantUpdate {
	_u.mutation.AddAssignmentIDs(ids...)
	return _u
}

// AddAssignments adds the "assignments" edges to the ExperimentAssignment entity.
func (_u *ExperimentVariantUpdate) AddAssignments(v ...*ExperimentAssignment) *ExperimentVariantUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAssignmentIDs(ids...)
}

// AddResultIDs adds the "results" edge to the ExperimentResult entity by IDs.
func (_u *ExperimentVariantUpdate) AddResultIDs(ids ...int) *ExperimentVariantUpdate {
	_u.mutation.AddResultIDs(ids...)
	return _u
}

// AddResults adds the "results" edges to the ExperimentResult entity.
func (_u *ExperimentVariantUpdate) AddResults(v ...*ExperimentResult) *ExperimentVariantUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddResultIDs(ids...)
}

// Mutation returns the ExperimentVariantMutation object of the builder.
func (_u *ExperimentVariantUpdate) Mutation() *ExperimentVariantMutation {
	return _u.mutation
}

// ClearExperiment clears the "experiment" edge to the Experiment entity.
func (_u *ExperimentVariantUpdate) ClearExperiment() *ExperimentVariantUpdate {
	_u.mutation.ClearExperiment()
	return _u
}

// ClearAssignments clears all "assignments" edges to the ExperimentAssignment entity.
func (_u *ExperimentVariantUpdate) ClearAssignments() *ExperimentVariantUpdate {
	_u.mutation.ClearAssignments()
	return _u
}

// RemoveAssignmentIDs removes the "assignments" edge to ExperimentAssignment entities by IDs.
func (_u *ExperimentVariantUpdate) RemoveAssignmentIDs(ids ...int) *ExperimentVariantUpdate {
	_u.mutation.RemoveAssignmentIDs(ids...)
	return _u
}

// RemoveAssignments removes "assignments" edges to ExperimentAssignment entities.
func (_u *ExperimentVariantUpdate) RemoveAssignments(v ...*ExperimentAssignment) *ExperimentVariantUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAssignmentIDs(ids...)
}

// ClearResults clears all "results" edges to the ExperimentResult entity.
func (_u *ExperimentVariantUpdate) ClearResults() *ExperimentVariantUpdate {
	_u.mutation.ClearResults()
	return _u
}

// RemoveResultIDs removes the "results" edge to ExperimentResult entities by IDs.
func (_u *ExperimentVariantUpdate) RemoveResultIDs(ids ...int) *ExperimentVariantUpdate {
	_u.mutation.RemoveResultIDs(ids...)
	return _u
}

// RemoveResults removes "results" edges to ExperimentResult entities.
func (_u *ExperimentVariantUpdate) RemoveResults(v ...*ExperimentResult) *ExperimentVariantUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveResultIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExperimentVariantUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExperimentVariantUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExperimentVariantUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExperimentVariantUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExperimentVariantUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := experimentvariant.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExperimentVariantUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := experimentvariant.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ExperimentVariant.name": %w`, err)}
		}
	}
	if _u.mutation.ExperimentCleared() && len(_u.mutation.ExperimentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExperimentVariant.experiment"`)
	}
	return nil
}

func (_u *ExperimentVariantUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(experimentvariant.Table, experimentvariant.Columns, sqlgraph.NewFieldSpec(experimentvariant.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(experimentvariant.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(experimentvariant.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(experimentvariant.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.IsControl(); ok {
		_spec.SetField(experimentvariant.FieldIsControl, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsWinner(); ok {
		_spec.SetField(experimentvariant.FieldIsWinner, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Configuration(); ok {
		_spec.SetField(experimentvariant.FieldConfiguration, field.TypeJSON, value)
	}
	if _u.mutation.ConfigurationCleared() {
		_spec.ClearField(experimentvariant.FieldConfiguration, field.TypeJSON)
	}
	if value, ok := _u.mutation.ConfidenceLevel(); ok {
		_spec.SetField(experimentvariant.FieldConfidenceLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceLevel(); ok {
		_spec.AddField(experimentvariant.FieldConfidenceLevel, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceLevelCleared() {
		_spec.ClearField(experimentvariant.FieldConfidenceLevel, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ImprovementRate(); ok {
		_spec.SetField(experimentvariant.FieldImprovementRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedImprovementRate(); ok {
		_spec.AddField(experimentvariant.FieldImprovementRate, field.TypeFloat64, value)
	}
	if _u.mutation.ImprovementRateCleared() {
		_spec.ClearField(experimentvariant.FieldImprovementRate, field.TypeFloat64)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(experimentvariant.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ExperimentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   experimentvariant.ExperimentTable,
			Columns: []string{experimentvariant.ExperimentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(experiment.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExperimentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   experimentvariant.ExperimentTable,
			Columns: []string{experimentvariant.ExperimentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(experiment.FieldID, field.TypeInt),
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
			Table:   experimentvariant.AssignmentsTable,
			Columns: []string{experimentvariant.AssignmentsColumn},
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
			Table:   experimentvariant.AssignmentsTable,
			Columns: []string{experimentvariant.AssignmentsColumn},
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
			Table:   experimentvariant.AssignmentsTable,
			Columns: []string{experimentvariant.AssignmentsColumn},
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
	if _u.mutation.ResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   experimentvariant.ResultsTable,
			Columns: []string{experimentvariant.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(experimentresult.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedResultsIDs(); len(nodes) > 0 && !_u.mutation.ResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   experimentvariant.ResultsTable,
			Columns: []string{experimentvariant.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(experimentresult.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResultsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   experimentvariant.ResultsTable,
			Columns: []string{experimentvariant.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(experimentresult.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{experimentvariant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExperimentVariantUpdateOne is the builder for updating a single ExperimentVariant entity.
type ExperimentVariantUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExperimentVariantMutation
}

// SetExperimentID sets the "experiment_id" field.
func (_u *ExperimentVariantUpdateOne) SetExperimentID(v int) *ExperimentVariantUpdateOne {
	_u.mutation.SetExperimentID(v)
	return _u
}

// SetNillableExperimentID sets the "experiment_id" field if the given value is not nil.
func (_u *ExperimentVariantUpdateOne) SetNillableExperimentID(v *int) *ExperimentVariantUpdateOne {
	if v != nil {
		_u.SetExperimentID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *ExperimentVariantUpdateOne) SetName(v string) *ExperimentVariantUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ExperimentVariantUpdateOne) SetNillableName(v *string) *ExperimentVariantUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ExperimentVariantUpdateOne) SetDescription(v string) *ExperimentVariantUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ExperimentVariantUpdateOne) SetNillableDescription(v *string) *ExperimentVariantUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ExperimentVariantUpdateOne) ClearDescription() *ExperimentVariantUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetIsControl sets the "is_control" field.
func (_u *ExperimentVariantUpdateOne) SetIsControl(v bool) *ExperimentVariantUpdateOne {
	_u.mutation.SetIsControl(v)
	return _u
}

// SetNillableIsControl sets the "is_control" field if the given value is not nil.
func (_u *ExperimentVariantUpdateOne) SetNillableIsControl(v *bool) *ExperimentVariantUpdateOne {
	if v != nil {
		_u.SetIsControl(*v)
	}
	return _u
}

// SetIsWinner sets the "is_winner" field.
func (_u *ExperimentVariantUpdateOne) SetIsWinner(v bool) *ExperimentVariantUpdateOne {
	_u.mutation.SetIsWinner(v)
	return _u
}

// SetNillableIsWinner sets the "is_winner" field if the given value is not nil.
func (_u *ExperimentVariantUpdateOne) SetNillableIsWinner(v *bool) *ExperimentVariantUpdateOne {
	if v != nil {
		_u.SetIsWinner(*v)
	}
	return _u
}

// SetConfiguration sets the "configuration" field.
func (_u *ExperimentVariantUpdateOne) SetConfiguration(v map[string]interface{}) *ExperimentVariantUpdateOne {
	_u.mutation.SetConfiguration(v)
	return _u
}

// ClearConfiguration clears the value of the "configuration" field.
func (_u *ExperimentVariantUpdateOne) ClearConfiguration() *ExperimentVariantUpdateOne {
	_u.mutation.ClearConfiguration()
	return _u
}

// SetConfidenceLevel sets the "confidence_level" field.
func (_u *ExperimentVariantUpdateOne) SetConfidenceLevel(v float64) *ExperimentVariantUpdateOne {
	_u.mutation.ResetConfidenceLevel()
	_u.mutation.SetConfidenceLevel(v)
	return _u
}

// SetNillableConfidenceLevel sets the "confidence_level" field if the given value is not nil.
func (_u *ExperimentVariantUpdateOne) SetNillableConfidenceLevel(v *float64) *ExperimentVariantUpdateOne {
	if v != nil {
		_u.SetConfidenceLevel(*v)
	}
	return _u
}

// AddConfidenceLevel adds value to the "confidence_level" field.
func (_u *ExperimentVariantUpdateOne) AddConfidenceLevel(v float64) *ExperimentVariantUpdateOne {
	_u.mutation.AddConfidenceLevel(v)
	return _u
}

// ClearConfidenceLevel clears the value of the "confidence_level" field.
func (_u *ExperimentVariantUpdateOne) ClearConfidenceLevel() *ExperimentVariantUpdateOne {
	_u.mutation.ClearConfidenceLevel()
	return _u
}

// SetImprovementRate sets the "improvement_rate" field.
func (_u *ExperimentVariantUpdateOne) SetImprovementRate(v float64) *ExperimentVariantUpdateOne {
	_u.mutation.ResetImprovementRate()
	_u.mutation.SetImprovementRate(v)
	return _u
}

// SetNillableImprovementRate sets the "improvement_rate" field if the given value is not nil.
func (_u *ExperimentVariantUpdateOne) SetNillableImprovementRate(v *float64) *ExperimentVariantUpdateOne {
	if v != nil {
		_u.SetImprovementRate(*v)
	}
	return _u
}

// AddImprovementRate adds value to the "improvement_rate" field.
func (_u *ExperimentVariantUpdateOne) AddImprovementRate(v float64) *ExperimentVariantUpdateOne {
	_u.mutation.AddImprovementRate(v)
	return _u
}

// ClearImprovementRate clears the value of the "improvement_rate" field.
func (_u *ExperimentVariantUpdateOne) ClearImprovementRate() *ExperimentVariantUpdateOne {
	_u.mutation.ClearImprovementRate()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExperimentVariantUpdateOne) SetUpdatedAt(v time.Time) *ExperimentVariantUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetExperiment sets the "experiment" edge to the Experiment entity.
func (_u *ExperimentVariantUpdateOne) SetExperiment(v *Experiment) *ExperimentVariantUpdateOne {
	return _u.SetExperimentID(v.ID)
}

// AddAssignmentIDs adds the "assignments" edge to the ExperimentAssignment entity by IDs.
func (_u *ExperimentVariantUpdateOne) AddAssignmentIDs(ids ...int) *ExperimentVariantUpdateOne {
	_u.mutation.AddAssignmentIDs(ids...)
	return _u
}

// AddAssignments adds the "assignments" edges to the ExperimentAssignment entity.
func (_u *ExperimentVariantUpdateOne) AddAssignments(v ...*ExperimentAssignment) *ExperimentVariantUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAssignmentIDs(ids...)
}

// AddResultIDs adds the "results" edge to the ExperimentResult entity by IDs.
func (_u *ExperimentVariantUpdateOne) AddResultIDs(ids ...int) *ExperimentVariantUpdateOne {
	_u.mutation.AddResultIDs(ids...)
	return _u
}

// AddResults adds the "results" edges to the ExperimentResult entity.
func (_u *ExperimentVariantUpdateOne) AddResults(v ...*ExperimentResult) *ExperimentVariantUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddResultIDs(ids...)
}

// Mutation returns the ExperimentVariantMutation object of the builder.
func (_u *ExperimentVariantUpdateOne) Mutation() *ExperimentVariantMutation {
	return _u.mutation
}

// ClearExperiment clears the "experiment" edge to the Experiment entity.
func (_u *ExperimentVariantUpdateOne) ClearExperiment() *ExperimentVariantUpdateOne {
	_u.mutation.ClearExperiment()
	return _u
}

// ClearAssignments clears all "assignments" edges to the ExperimentAssignment entity.
func (_u *ExperimentVariantUpdateOne) ClearAssignments() *ExperimentVariantUpdateOne {
	_u.mutation.ClearAssignments()
	return _u
}

// RemoveAssignmentIDs removes the "assignments" edge to ExperimentAssignment entities by IDs.
func (_u *ExperimentVariantUpdateOne) RemoveAssignmentIDs(ids ...int) *ExperimentVariantUpdateOne {
	_u.mutation.RemoveAssignmentIDs(ids...)
	return _u
}

// RemoveAssignments removes "assignments" edges to ExperimentAssignment entities.
func (_u *ExperimentVariantUpdateOne) RemoveAssignments(v ...*ExperimentAssignment) *ExperimentVariantUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAssignmentIDs(ids...)
}

// ClearResults clears all "results" edges to the ExperimentResult entity.
func (_u *ExperimentVariantUpdateOne) ClearResults() *ExperimentVariantUpdateOne {
	_u.mutation.ClearResults()
	return _u
}

// RemoveResultIDs removes the "results" edge to ExperimentResult entities by IDs.
func (_u *ExperimentVariantUpdateOne) RemoveResultIDs(ids ...int) *ExperimentVariantUpdateOne {
	_u.mutation.RemoveResultIDs(ids...)
	return _u
}

// RemoveResults removes "results" edges to ExperimentResult entities.
func (_u *ExperimentVariantUpdateOne) RemoveResults(v ...*ExperimentResult) *ExperimentVariantUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveResultIDs(ids...)
}

// Where appends a list predicates to the ExperimentVariantUpdate builder.
func (_u *ExperimentVariantUpdateOne) Where(ps ...predicate.ExperimentVariant) *ExperimentVariantUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExperimentVariantUpdateOne) Select(field string, fields ...string) *ExperimentVariantUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExperimentVariant entity.
func (_u *ExperimentVariantUpdateOne) Save(ctx context.Context) (*ExperimentVariant, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExperimentVariantUpdateOne) SaveX(ctx context.Context) *ExperimentVariant {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExperimentVariantUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExperimentVariantUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExperimentVariantUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := experimentvariant.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExperimentVariantUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := experimentvariant.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ExperimentVariant.name": %w`, err)}
		}
	}
	if _u.mutation.ExperimentCleared() && len(_u.mutation.ExperimentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExperimentVariant.experiment"`)
	}
	return nil
}

func (_u *ExperimentVariantUpdateOne) sqlSave(ctx context.Context) (_node *ExperimentVariant, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(experimentvariant.Table, experimentvariant.Columns, sqlgraph.NewFieldSpec(experimentvariant.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExperimentVariant.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, experimentvariant.FieldID)
		for _, f := range fields {
			if !experimentvariant.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != experimentvariant.FieldID {
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
		_spec.SetField(experimentvariant.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(experimentvariant.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(experimentvariant.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.IsControl(); ok {
		_spec.SetField(experimentvariant.FieldIsControl, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsWinner(); ok {
		_spec.SetField(experimentvariant.FieldIsWinner, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Configuration(); ok {
		_spec.SetField(experimentvariant.FieldConfiguration, field.TypeJSON, value)
	}
	if _u.mutation.ConfigurationCleared() {
		_spec.ClearField(experimentvariant.FieldConfiguration, field.TypeJSON)
	}
	if value, ok := _u.mutation.ConfidenceLevel(); ok {
		_spec.SetField(experimentvariant.FieldConfidenceLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceLevel(); ok {
		_spec.AddField(experimentvariant.FieldConfidenceLevel, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceLevelCleared() {
		_spec.ClearField(experimentvariant.FieldConfidenceLevel, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ImprovementRate(); ok {
		_spec.SetField(experimentvariant.FieldImprovementRate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedImprovementRate(); ok {
		_spec.AddField(experimentvariant.FieldImprovementRate, field.TypeFloat64, value)
	}
	if _u.mutation.ImprovementRateCleared() {
		_spec.ClearField(experimentvariant.FieldImprovementRate, field.TypeFloat64)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(experimentvariant.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ExperimentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   experimentvariant.ExperimentTable,
			Columns: []string{experimentvariant.ExperimentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(experiment.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExperimentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   experimentvariant.ExperimentTable,
			Columns: []string{experimentvariant.ExperimentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(experiment.FieldID, field.TypeInt),
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
			Table:   experimentvariant.AssignmentsTable,
			Columns: []string{experimentvariant.AssignmentsColumn},
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
			Table:   experimentvariant.AssignmentsTable,
			Columns: []string{experimentvariant.AssignmentsColumn},
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
			Table:   experimentvariant.AssignmentsTable,
			Columns: []string{experimentvariant.AssignmentsColumn},
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
	if _u.mutation.ResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   experimentvariant.ResultsTable,
			Columns: []string{experimentvariant.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(experimentresult.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedResultsIDs(); len(nodes) > 0 && !_u.mutation.ResultsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   experimentvariant.ResultsTable,
			Columns: []string{experimentvariant.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(experimentresult.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResultsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   experimentvariant.ResultsTable,
			Columns: []string{experimentvariant.ResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(experimentresult.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ExperimentVariant{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{experimentvariant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
