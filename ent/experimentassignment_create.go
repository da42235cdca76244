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

// ExperimentAssignmentCreate is the builder for creating a ExperimentAssignment entity.
type ExperimentAssignmentCreate struct {
	config
	mutation *ExperimentAssignmentMutation
	hooks    []Hook
}

// SetExperimentID sets the "experiment_id" field.
func (_c *ExperimentAssignmentCreate) SetExperimentID(v int) *ExperimentAssignmentCreate {
	_c.mutation.SetExperimentID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *ExperimentAssignmentCreate) SetUserID(v string) *ExperimentAssignmentCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *ExperimentAssignmentCreate) SetNillableUserID(v *string) *ExperimentAssignmentCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *ExperimentAssignmentCreate) SetSessionID(v string) *ExperimentAssignmentCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *ExperimentAssignmentCreate) SetNillableSessionID(v *string) *ExperimentAssignmentCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// SetVariantID sets the "variant_id" field.
func (_c *ExperimentAssignmentCreate) SetVariantID(v int) *ExperimentAssignmentCreate {
	_c.mutation.SetVariantID(v)
	return _c
}

// SetHasImpression sets the "has_impression" field.
func (_c *ExperimentAssignmentCreate) SetHasImpression(v bool) *ExperimentAssignmentCreate {
	_c.mutation.SetHasImpression(v)
	return _c
}

// SetNillableHasImpression sets the "has_impression" field if the given value is not nil.
func (_c *ExperimentAssignmentCreate) SetNillableHasImpression(v *bool) *ExperimentAssignmentCreate {
	if v != nil {
		_c.SetHasImpression(*v)
	}
	return _c
}

// SetHasInteraction sets the "has_interaction" field.
func (_c *ExperimentAssignmentCreate) SetHasInteraction(v bool) *ExperimentAssignmentCreate {
	_c.mutation.SetHasInteraction(v)
	return _c
}

// SetNillableHasInteraction sets the "has_interaction" field if the given value is not nil.
func (_c *ExperimentAssignmentCreate) SetNillableHasInteraction(v *bool) *ExperimentAssignmentCreate {
	if v != nil {
		_c.SetHasInteraction(*v)
	}
	return _c
}

// SetHasConversion sets the "has_conversion" field.
func (_c *ExperimentAssignmentCreate) SetHasConversion(v bool) *ExperimentAssignmentCreate {
	_c.mutation.SetHasConversion(v)
	return _c
}

// SetNillableHasConversion sets the "has_conversion" field if the given value is not nil.
func (_c *ExperimentAssignmentCreate) SetNillableHasConversion(v *bool) *ExperimentAssignmentCreate {
	if v != nil {
		_c.SetHasConversion(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *ExperimentAssignmentCreate) SetMetadata(v map[string]interface{}) *ExperimentAssignmentCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExperimentAssignmentCreate) SetCreatedAt(v time.Time) *ExperimentAssignmentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExperimentAssignmentCreate) SetNillableCreatedAt(v *time.Time) *ExperimentAssignmentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ExperimentAssignmentCreate) SetUpdatedAt(v time.Time) *ExperimentAssignmentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ExperimentAssignmentCreate) SetNillableUpdatedAt(v *time.Time) *ExperimentAssignmentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetExperiment sets the "experiment" edge to the Experiment entity.
func (_c *ExperimentAssignmentCreate) SetExperiment(v *Experiment) *ExperimentAssignmentCreate {
	return _c.SetExperimentID(v.ID)
}

// SetVariant sets the "variant" edge to the ExperimentVariant entity.
func (_c *ExperimentAssignmentCreate) SetVariant(v *ExperimentVariant) *ExperimentAssignmentCreate {
	return _c.SetVariantID(v.ID)
}

// Mutation returns the ExperimentAssignmentMutation object of the builder.
func (_c *ExperimentAssignmentCreate) Mutation() *ExperimentAssignmentMutation {
	return _c.mutation
}

// Save creates the ExperimentAssignment in the database.
func (_c *ExperimentAssignmentCreate) Save(ctx context.Context) (*ExperimentAssignment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExperimentAssignmentCreate) SaveX(ctx context.Context) *ExperimentAssignment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExperimentAssignmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExperimentAssignmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExperimentAssignmentCreate) defaults() {
	if _, ok := _c.mutation.HasImpression(); !ok {
		v := experimentassignment.DefaultHasImpression
		_c.mutation.SetHasImpression(v)
	}
	if _, ok := _c.mutation.HasInteraction(); !ok {
		v := experimentassignment.DefaultHasInteraction
		_c.mutation.SetHasInteraction(v)
	}
	if _, ok := _c.mutation.HasConversion(); !ok {
		v := experimentassignment.DefaultHasConversion
		_c.mutation.SetHasConversion(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := experimentassignment.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := experimentassignment.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExperimentAssignmentCreate) check() error {
	if _, ok := _c.mutation.ExperimentID(); !ok {
		return &ValidationError{Name: "experiment_id", err: errors.New(`ent: missing required field "ExperimentAssignment.experiment_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := experimentassignment.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ExperimentAssignment.user_id": %w`, err)}
		}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := experimentassignment.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ExperimentAssignment.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.VariantID(); !ok {
		return &ValidationError{Name: "variant_id", err: errors.New(`ent: missing required field "ExperimentAssignment.variant_id"`)}
	}
	if _, ok := _c.mutation.HasImpression(); !ok {
		return &ValidationError{Name: "has_impression", err: errors.New(`ent: missing required field "ExperimentAssignment.has_impression"`)}
	}
	if _, ok := _c.mutation.HasInteraction(); !ok {
		return &ValidationError{Name: "has_interaction", err: errors.New(`ent: missing required field "ExperimentAssignment.has_interaction"`)}
	}
	if _, ok := _c.mutation.HasConversion(); !ok {
		return &ValidationError{Name: "has_conversion", err: errors.New(`ent: missing required field "ExperimentAssignment.has_conversion"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExperimentAssignment.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ExperimentAssignment.updated_at"`)}
	}
	if len(_c.mutation.ExperimentIDs()) == 0 {
		return &ValidationError{Name: "experiment", err: errors.New(`ent: missing required edge "ExperimentAssignment.experiment"`)}
	}
	if len(_c.mutation.VariantIDs()) == 0 {
		return &ValidationError{Name: "variant", err: errors.New(`ent: missing required edge "ExperimentAssignment.variant"`)}
	}
	return nil
}

func (_c *ExperimentAssignmentCreate) sqlSave(ctx context.Context) (*ExperimentAssignment, error) {
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

func (_c *ExperimentAssignmentCreate) createSpec() (*ExperimentAssignment, *sqlgraph.CreateSpec) {
	var (
		_node = &ExperimentAssignment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(experimentassignment.Table, sqlgraph.NewFieldSpec(experimentassignment.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(experimentassignment.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(experimentassignment.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.HasImpression(); ok {
		_spec.SetField(experimentassignment.FieldHasImpression, field.TypeBool, value)
		_node.HasImpression = value
	}
	if value, ok := _c.mutation.HasInteraction(); ok {
		_spec.SetField(experimentassignment.FieldHasInteraction, field.TypeBool, value)
		_node.HasInteraction = value
	}
	if value, ok := _c.mutation.HasConversion(); ok {
		_spec.SetField(experimentassignment.FieldHasConversion, field.TypeBool, value)
		_node.HasConversion = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(experimentassignment.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(experimentassignment.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(experimentassignment.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ExperimentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   experimentassignment.ExperimentTable,
			Columns: []string{experimentassignment.ExperimentColumn},
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
	if nodes := _c.mutation.VariantIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   experimentassignment.VariantTable,
			Columns: []string{experimentassignment.VariantColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(experimentvariant.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.VariantID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ExperimentAssignmentCreateBulk is the builder for creating many ExperimentAssignment entities in bulk.
type ExperimentAssignmentCreateBulk struct {
	config
	err      error
	builders []*ExperimentAssignmentCreate
}

// Save creates the ExperimentAssignment entities in the database.
func (_c *ExperimentAssignmentCreateBulk) Save(ctx context.Context) ([]*ExperimentAssignment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExperimentAssignment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExperimentAssignmentMutation)
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
func (_c *ExperimentAssignmentCreateBulk) SaveX(ctx context.Context) []*ExperimentAssignment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExperimentAssignmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExperimentAssignmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
