// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/variantlab/abtest/ent/experiment"
	"github.com/variantlab/abtest/ent/experimentassignment"
	"github.com/variantlab/abtest/ent/experimentvariant"
)

// ExperimentCreate is the builder for creating a Experiment entity.
type ExperimentCreate struct {
	config
	mutation *ExperimentMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *ExperimentCreate) SetName(v string) *ExperimentCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ExperimentCreate) SetDescription(v string) *ExperimentCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ExperimentCreate) SetNillableDescription(v *string) *ExperimentCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ExperimentCreate) SetStatus(v experiment.Status) *ExperimentCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ExperimentCreate) SetNillableStatus(v *experiment.Status) *ExperimentCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetType sets the "type" field.
func (_c *ExperimentCreate) SetType(v experiment.Type) *ExperimentCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetTargetAudience sets the "target_audience" field.
func (_c *ExperimentCreate) SetTargetAudience(v string) *ExperimentCreate {
	_c.mutation.SetTargetAudience(v)
	return _c
}

// SetNillableTargetAudience sets the "target_audience" field if the given value is not nil.
func (_c *ExperimentCreate) SetNillableTargetAudience(v *string) *ExperimentCreate {
	if v != nil {
		_c.SetTargetAudience(*v)
	}
	return _c
}

// SetAudiencePercentage sets the "audience_percentage" field.
func (_c *ExperimentCreate) SetAudiencePercentage(v float64) *ExperimentCreate {
	_c.mutation.SetAudiencePercentage(v)
	return _c
}

// SetNillableAudiencePercentage sets the "audience_percentage" field if the given value is not nil.
func (_c *ExperimentCreate) SetNillableAudiencePercentage(v *float64) *ExperimentCreate {
	if v != nil {
		_c.SetAudiencePercentage(*v)
	}
	return _c
}

// SetStartDate sets the "start_date" field.
func (_c *ExperimentCreate) SetStartDate(v time.Time) *ExperimentCreate {
	_c.mutation.SetStartDate(v)
	return _c
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_c *ExperimentCreate) SetNillableStartDate(v *time.Time) *ExperimentCreate {
	if v != nil {
		_c.SetStartDate(*v)
	}
	return _c
}

// SetEndDate sets the "end_date" field.
func (_c *ExperimentCreate) SetEndDate(v time.Time) *ExperimentCreate {
	_c.mutation.SetEndDate(v)
	return _c
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (_c *ExperimentCreate) SetNillableEndDate(v *time.Time) *ExperimentCreate {
	if v != nil {
		_c.SetEndDate(*v)
	}
	return _c
}

// SetHypothesis sets the "hypothesis" field.
func (_c *ExperimentCreate) SetHypothesis(v string) *ExperimentCreate {
	_c.mutation.SetHypothesis(v)
	return _c
}

// SetNillableHypothesis sets the "hypothesis" field if the given value is not nil.
func (_c *ExperimentCreate) SetNillableHypothesis(v *string) *ExperimentCreate {
	if v != nil {
		_c.SetHypothesis(*v)
	}
	return _c
}

// SetPrimaryMetric sets the "primary_metric" field.
func (_c *ExperimentCreate) SetPrimaryMetric(v string) *ExperimentCreate {
	_c.mutation.SetPrimaryMetric(v)
	return _c
}

// SetNillablePrimaryMetric sets the "primary_metric" field if the given value is not nil.
func (_c *ExperimentCreate) SetNillablePrimaryMetric(v *string) *ExperimentCreate {
	if v != nil {
		_c.SetPrimaryMetric(*v)
	}
	return _c
}

// SetSecondaryMetrics sets the "secondary_metrics" field.
func (_c *ExperimentCreate) SetSecondaryMetrics(v []string) *ExperimentCreate {
	_c.mutation.SetSecondaryMetrics(v)
	return _c
}

// SetSegmentation sets the "segmentation" field.
func (_c *ExperimentCreate) SetSegmentation(v map[string]interface{}) *ExperimentCreate {
	_c.mutation.SetSegmentation(v)
	return _c
}

// SetMinDetectableEffect sets the "min_detectable_effect" field.
func (_c *ExperimentCreate) SetMinDetectableEffect(v float64) *ExperimentCreate {
	_c.mutation.SetMinDetectableEffect(v)
	return _c
}

// SetNillableMinDetectableEffect sets the "min_detectable_effect" field if the given value is not nil.
func (_c *ExperimentCreate) SetNillableMinDetectableEffect(v *float64) *ExperimentCreate {
	if v != nil {
		_c.SetMinDetectableEffect(*v)
	}
	return _c
}

// SetHasWinner sets the "has_winner" field.
func (_c *ExperimentCreate) SetHasWinner(v bool) *ExperimentCreate {
	_c.mutation.SetHasWinner(v)
	return _c
}

// SetNillableHasWinner sets the "has_winner" field if the given value is not nil.
func (_c *ExperimentCreate) SetNillableHasWinner(v *bool) *ExperimentCreate {
	if v != nil {
		_c.SetHasWinner(*v)
	}
	return _c
}

// SetWinningVariantID sets the "winning_variant_id" field.
func (_c *ExperimentCreate) SetWinningVariantID(v int) *ExperimentCreate {
	_c.mutation.SetWinningVariantID(v)
	return _c
}

// SetNillableWinningVariantID sets the "winning_variant_id" field if the given value is not nil.
func (_c *ExperimentCreate) SetNillableWinningVariantID(v *int) *ExperimentCreate {
	if v != nil {
		_c.SetWinningVariantID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExperimentCreate) SetCreatedAt(v time.Time) *ExperimentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExperimentCreate) SetNillableCreatedAt(v *time.Time) *ExperimentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ExperimentCreate) SetUpdatedAt(v time.Time) *ExperimentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ExperimentCreate) SetNillableUpdatedAt(v *time.Time) *ExperimentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// AddVariantIDs adds the "variants" edge to the ExperimentVariant entity by IDs.
func (_c *ExperimentCreate) AddVariantIDs(ids ...int) *ExperimentCreate {
	_c.mutation.AddVariantIDs(ids...)
	return _c
}

// AddVariants adds the "variants" edges to the ExperimentVariant entity.
func (_c *ExperimentCreate) AddVariants(v ...*ExperimentVariant) *ExperimentCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddVariantIDs(ids...)
}

// AddAssignmentIDs adds the "assignments" edge to the ExperimentAssignment entity by IDs.
func (_c *ExperimentCreate) AddAssignmentIDs(ids ...int) *ExperimentCreate {
	_c.mutation.AddAssignmentIDs(ids...)
	return _c
}

// AddAssignments adds the "assignments" edges to the ExperimentAssignment entity.
func (_c *ExperimentCreate) AddAssignments(v ...*ExperimentAssignment) *ExperimentCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAssignmentIDs(ids...)
}

// Mutation returns the ExperimentMutation object of the builder.
func (_c *ExperimentCreate) Mutation() *ExperimentMutation {
	return _c.mutation
}

// Save creates the Experiment in the database.
func (_c *ExperimentCreate) Save(ctx context.Context) (*Experiment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExperimentCreate) SaveX(ctx context.Context) *Experiment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExperimentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExperimentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExperimentCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := experiment.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.HasWinner(); !ok {
		v := experiment.DefaultHasWinner
		_c.mutation.SetHasWinner(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := experiment.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := experiment.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExperimentCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Experiment.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := experiment.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Experiment.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Experiment.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := experiment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Experiment.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "Experiment.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := experiment.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Experiment.type": %w`, err)}
		}
	}
	if v, ok := _c.mutation.TargetAudience(); ok {
		if err := experiment.TargetAudienceValidator(v); err != nil {
			return &ValidationError{Name: "target_audience", err: fmt.Errorf(`ent: validator failed for field "Experiment.target_audience": %w`, err)}
		}
	}
	if v, ok := _c.mutation.AudiencePercentage(); ok {
		if err := experiment.AudiencePercentageValidator(v); err != nil {
			return &ValidationError{Name: "audience_percentage", err: fmt.Errorf(`ent: validator failed for field "Experiment.audience_percentage": %w`, err)}
		}
	}
	if _, ok := _c.mutation.HasWinner(); !ok {
		return &ValidationError{Name: "has_winner", err: errors.New(`ent: missing required field "Experiment.has_winner"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Experiment.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Experiment.updated_at"`)}
	}
	return nil
}

func (_c *ExperimentCreate) sqlSave(ctx context.Context) (*Experiment, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExperimentCreate) createSpec() (*Experiment, *sqlgraph.CreateSpec) {
	var (
		_node = &Experiment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(experiment.Table, sqlgraph.NewFieldSpec(experiment.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(experiment.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(experiment.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(experiment.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(experiment.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.TargetAudience(); ok {
		_spec.SetField(experiment.FieldTargetAudience, field.TypeString, value)
		_node.TargetAudience = value
	}
	if value, ok := _c.mutation.AudiencePercentage(); ok {
		_spec.SetField(experiment.FieldAudiencePercentage, field.TypeFloat64, value)
		_node.AudiencePercentage = &value
	}
	if value, ok := _c.mutation.StartDate(); ok {
		_spec.SetField(experiment.FieldStartDate, field.TypeTime, value)
		_node.StartDate = &value
	}
	if value, ok := _c.mutation.EndDate(); ok {
		_spec.SetField(experiment.FieldEndDate, field.TypeTime, value)
		_node.EndDate = &value
	}
	if value, ok := _c.mutation.Hypothesis(); ok {
		_spec.SetField(experiment.FieldHypothesis, field.TypeString, value)
		_node.Hypothesis = value
	}
	if value, ok := _c.mutation.PrimaryMetric(); ok {
		_spec.SetField(experiment.FieldPrimaryMetric, field.TypeString, value)
		_node.PrimaryMetric = value
	}
	if value, ok := _c.mutation.SecondaryMetrics(); ok {
		_spec.SetField(experiment.FieldSecondaryMetrics, field.TypeJSON, value)
		_node.SecondaryMetrics = value
	}
	if value, ok := _c.mutation.Segmentation(); ok {
		_spec.SetField(experiment.FieldSegmentation, field.TypeJSON, value)
		_node.Segmentation = value
	}
	if value, ok := _c.mutation.MinDetectableEffect(); ok {
		_spec.SetField(experiment.FieldMinDetectableEffect, field.TypeFloat64, value)
		_node.MinDetectableEffect = &value
	}
	if value, ok := _c.mutation.HasWinner(); ok {
		_spec.SetField(experiment.FieldHasWinner, field.TypeBool, value)
		_node.HasWinner = value
	}
	if value, ok := _c.mutation.WinningVariantID(); ok {
		_spec.SetField(experiment.FieldWinningVariantID, field.TypeInt, value)
		_node.WinningVariantID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(experiment.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(experiment.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.VariantsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AssignmentsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ExperimentCreateBulk is the builder for creating many Experiment entities in bulk.
type ExperimentCreateBulk struct {
	config
	err      error
	builders []*ExperimentCreate
}

// Save creates the Experiment entities in the database.
func (_c *ExperimentCreateBulk) Save(ctx context.Context) ([]*Experiment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Experiment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExperimentMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ExperimentCreateBulk) SaveX(ctx context.Context) []*Experiment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExperimentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExperimentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
