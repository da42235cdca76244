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
	"github.com/variantlab/abtest/ent/experimentresult"
	"github.com/variantlab/abtest/ent/experimentvariant"
)

// ExperimentVariantCreate is the builder for creating a ExperimentVariant entity.
type ExperimentVariantCreate struct {
	config
	mutation *ExperimentVariantMutation
	hooks    []Hook
}

// SetExperimentID sets the "experiment_id" field.
func (_c *ExperimentVariantCreate) SetExperimentID(v int) *ExperimentVariantCreate {
	_c.mutation.SetExperimentID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *ExperimentVariantCreate) SetName(v string) *ExperimentVariantCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ExperimentVariantCreate) SetDescription(v string) *ExperimentVariantCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ExperimentVariantCreate) SetNillableDescription(v *string) *ExperimentVariantCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetIsControl sets the "is_control" field.
func (_c *ExperimentVariantCreate) SetIsControl(v bool) *ExperimentVariantCreate {
	_c.mutation.SetIsControl(v)
	return _c
}

// SetNillableIsControl sets the "is_control" field if the given value is not nil.
func (_c *ExperimentVariantCreate) SetNillableIsControl(v *bool) *ExperimentVariantCreate {
	if v != nil {
		_c.SetIsControl(*v)
	}
	return _c
}

// SetIsWinner sets the "is_winner" field.
func (_c *ExperimentVariantCreate) SetIsWinner(v bool) *ExperimentVariantCreate {
	_c.mutation.SetIsWinner(v)
	return _c
}

// SetNillableIsWinner sets the "is_winner" field if the given value is not nil.
func (_c *ExperimentVariantCreate) SetNillableIsWinner(v *bool) *ExperimentVariantCreate {
	if v != nil {
		_c.SetIsWinner(*v)
	}
	return _c
}

// SetConfiguration sets the "configuration" field.
func (_c *ExperimentVariantCreate) SetConfiguration(v map[string]interface{}) *ExperimentVariantCreate {
	_c.mutation.SetConfiguration(v)
	return _c
}

// SetConfidenceLevel sets the "confidence_level" field.
func (_c *ExperimentVariantCreate) SetConfidenceLevel(v float64) *ExperimentVariantCreate {
	_c.mutation.SetConfidenceLevel(v)
	return _c
}

// SetNillableConfidenceLevel sets the "confidence_level" field if the given value is not nil.
func (_c *ExperimentVariantCreate) SetNillableConfidenceLevel(v *float64) *ExperimentVariantCreate {
	if v != nil {
		_c.SetConfidenceLevel(*v)
	}
	return _c
}

// SetImprovementRate sets the "improvement_rate" field.
func (_c *ExperimentVariantCreate) SetImprovementRate(v float64) *ExperimentVariantCreate {
	_c.mutation.SetImprovementRate(v)
	return _c
}

// SetNillableImprovementRate sets the "improvement_rate" field if the given value is not nil.
func (_c *ExperimentVariantCreate) SetNillableImprovementRate(v *float64) *ExperimentVariantCreate {
	if v != nil {
		_c.SetImprovementRate(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExperimentVariantCreate) SetCreatedAt(v time.Time) *ExperimentVariantCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExperimentVariantCreate) SetNillableCreatedAt(v *time.Time) *ExperimentVariantCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ExperimentVariantCreate) SetUpdatedAt(v time.Time) *ExperimentVariantCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ExperimentVariantCreate) SetNillableUpdatedAt(v *time.Time) *ExperimentVariantCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetExperiment sets the "experiment" edge to the Experiment entity.
func (_c *ExperimentVariantCreate) SetExperiment(v *Experiment) *ExperimentVariantCreate {
	return _c.SetExperimentID(v.ID)
}

// AddAssignmentIDs adds the "assignments" edge to the ExperimentAssignment entity by IDs.
func (_c *ExperimentVariantCreate) AddAssignmentIDs(ids ...int) *ExperimentVariantCreate {
	_c.mutation.AddAssignmentIDs(ids...)
	return _c
}

// AddAssignments adds the "assignments" edges to the ExperimentAssignment entity.
func (_c *ExperimentVariantCreate) AddAssignments(v ...*ExperimentAssignment) *ExperimentVariantCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAssignmentIDs(ids...)
}

// AddResultIDs adds the "results" edge to the ExperimentResult entity by IDs.
func (_c *ExperimentVariantCreate) AddResultIDs(ids ...int) *ExperimentVariantCreate {
	_c.mutation.AddResultIDs(ids...)
	return _c
}

// AddResults adds the "results" edges to the ExperimentResult entity.
func (_c *ExperimentVariantCreate) AddResults(v ...*ExperimentResult) *ExperimentVariantCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddResultIDs(ids...)
}

// Mutation returns the ExperimentVariantMutation object of the builder.
func (_c *ExperimentVariantCreate) Mutation() *ExperimentVariantMutation {
	return _c.mutation
}

// Save creates the ExperimentVariant in the database.
func (_c *ExperimentVariantCreate) Save(ctx context.Context) (*ExperimentVariant, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExperimentVariantCreate) SaveX(ctx context.Context) *ExperimentVariant {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExperimentVariantCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExperimentVariantCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExperimentVariantCreate) defaults() {
	if _, ok := _c.mutation.IsControl(); !ok {
		v := experimentvariant.DefaultIsControl
		_c.mutation.SetIsControl(v)
	}
	if _, ok := _c.mutation.IsWinner(); !ok {
		v := experimentvariant.DefaultIsWinner
		_c.mutation.SetIsWinner(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := experimentvariant.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := experimentvariant.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExperimentVariantCreate) check() error {
	if _, ok := _c.mutation.ExperimentID(); !ok {
		return &ValidationError{Name: "experiment_id", err: errors.New(`ent: missing required field "ExperimentVariant.experiment_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "ExperimentVariant.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := experimentvariant.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "ExperimentVariant.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsControl(); !ok {
		return &ValidationError{Name: "is_control", err: errors.New(`ent: missing required field "ExperimentVariant.is_control"`)}
	}
	if _, ok := _c.mutation.IsWinner(); !ok {
		return &ValidationError{Name: "is_winner", err: errors.New(`ent: missing required field "ExperimentVariant.is_winner"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExperimentVariant.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ExperimentVariant.updated_at"`)}
	}
	if len(_c.mutation.ExperimentIDs()) == 0 {
		return &ValidationError{Name: "experiment", err: errors.New(`ent: missing required edge "ExperimentVariant.experiment"`)}
	}
	return nil
}

func (_c *ExperimentVariantCreate) sqlSave(ctx context.Context) (*ExperimentVariant, error) {
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

func (_c *ExperimentVariantCreate) createSpec() (*ExperimentVariant, *sqlgraph.CreateSpec) {
	var (
		_node = &ExperimentVariant{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(experimentvariant.Table, sqlgraph.NewFieldSpec(experimentvariant.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(experimentvariant.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(experimentvariant.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.IsControl(); ok {
		_spec.SetField(experimentvariant.FieldIsControl, field.TypeBool, value)
		_node.IsControl = value
	}
	if value, ok := _c.mutation.IsWinner(); ok {
		_spec.SetField(experimentvariant.FieldIsWinner, field.TypeBool, value)
		_node.IsWinner = value
	}
	if value, ok := _c.mutation.Configuration(); ok {
		_spec.SetField(experimentvariant.FieldConfiguration, field.TypeJSON, value)
		_node.Configuration = value
	}
	if value, ok := _c.mutation.ConfidenceLevel(); ok {
		_spec.SetField(experimentvariant.FieldConfidenceLevel, field.TypeFloat64, value)
		_node.ConfidenceLevel = &value
	}
	if value, ok := _c.mutation.ImprovementRate(); ok {
		_spec.SetField(experimentvariant.FieldImprovementRate, field.TypeFloat64, value)
		_node.ImprovementRate = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(experimentvariant.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(experimentvariant.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ExperimentIDs(); len(nodes) > 0 {
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
		_node.ExperimentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AssignmentsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ResultsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ExperimentVariantCreateBulk is the builder for creating many ExperimentVariant entities in bulk.
type ExperimentVariantCreateBulk struct {
	config
	err      error
	builders []*ExperimentVariantCreate
}

// Save creates the ExperimentVariant entities in the database.
func (_c *ExperimentVariantCreateBulk) Save(ctx context.Context) ([]*ExperimentVariant, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExperimentVariant, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExperimentVariantMutation)
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
func (_c *ExperimentVariantCreateBulk) SaveX(ctx context.Context) []*ExperimentVariant {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExperimentVariantCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExperimentVariantCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
