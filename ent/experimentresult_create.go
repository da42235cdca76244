// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/variantlab/abtest/ent/experimentresult"
	"github.com/variantlab/abtest/ent/experimentvariant"
)

// ExperimentResultCreate is the builder for creating a ExperimentResult entity.
type ExperimentResultCreate struct {
	config
	mutation *ExperimentResultMutation
	hooks    []Hook
}

// SetVariantID sets the "variant_id" field.
func (_c *ExperimentResultCreate) SetVariantID(v int) *ExperimentResultCreate {
	_c.mutation.SetVariantID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *ExperimentResultCreate) SetUserID(v string) *ExperimentResultCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *ExperimentResultCreate) SetNillableUserID(v *string) *ExperimentResultCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *ExperimentResultCreate) SetSessionID(v string) *ExperimentResultCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *ExperimentResultCreate) SetNillableSessionID(v *string) *ExperimentResultCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// SetResultType sets the "result_type" field.
func (_c *ExperimentResultCreate) SetResultType(v experimentresult.ResultType) *ExperimentResultCreate {
	_c.mutation.SetResultType(v)
	return _c
}

// SetValue sets the "value" field.
func (_c *ExperimentResultCreate) SetValue(v float64) *ExperimentResultCreate {
	_c.mutation.SetValue(v)
	return _c
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_c *ExperimentResultCreate) SetNillableValue(v *float64) *ExperimentResultCreate {
	if v != nil {
		_c.SetValue(*v)
	}
	return _c
}

// SetContext sets the "context" field.
func (_c *ExperimentResultCreate) SetContext(v string) *ExperimentResultCreate {
	_c.mutation.SetContext(v)
	return _c
}

// SetNillableContext sets the "context" field if the given value is not nil.
func (_c *ExperimentResultCreate) SetNillableContext(v *string) *ExperimentResultCreate {
	if v != nil {
		_c.SetContext(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *ExperimentResultCreate) SetMetadata(v map[string]interface{}) *ExperimentResultCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExperimentResultCreate) SetCreatedAt(v time.Time) *ExperimentResultCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExperimentResultCreate) SetNillableCreatedAt(v *time.Time) *ExperimentResultCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetVariant sets the "variant" edge to the ExperimentVariant entity.
func (_c *ExperimentResultCreate) SetVariant(v *ExperimentVariant) *ExperimentResultCreate {
	return _c.SetVariantID(v.ID)
}

// Mutation returns the ExperimentResultMutation object of the builder.
func (_c *ExperimentResultCreate) Mutation() *ExperimentResultMutation {
	return _c.mutation
}

// Save creates the ExperimentResult in the database.
func (_c *ExperimentResultCreate) Save(ctx context.Context) (*ExperimentResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExperimentResultCreate) SaveX(ctx context.Context) *ExperimentResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExperimentResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExperimentResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExperimentResultCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := experimentresult.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExperimentResultCreate) check() error {
	if _, ok := _c.mutation.VariantID(); !ok {
		return &ValidationError{Name: "variant_id", err: errors.New(`ent: missing required field "ExperimentResult.variant_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := experimentresult.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ExperimentResult.user_id": %w`, err)}
		}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := experimentresult.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ExperimentResult.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ResultType(); !ok {
		return &ValidationError{Name: "result_type", err: errors.New(`ent: missing required field "ExperimentResult.result_type"`)}
	}
	if v, ok := _c.mutation.ResultType(); ok {
		if err := experimentresult.ResultTypeValidator(v); err != nil {
			return &ValidationError{Name: "result_type", err: fmt.Errorf(`ent: validator failed for field "ExperimentResult.result_type": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Context(); ok {
		if err := experimentresult.ContextValidator(v); err != nil {
			return &ValidationError{Name: "context", err: fmt.Errorf(`ent: validator failed for field "ExperimentResult.context": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExperimentResult.created_at"`)}
	}
	if len(_c.mutation.VariantIDs()) == 0 {
		return &ValidationError{Name: "variant", err: errors.New(`ent: missing required edge "ExperimentResult.variant"`)}
	}
	return nil
}

func (_c *ExperimentResultCreate) sqlSave(ctx context.Context) (*ExperimentResult, error) {
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

func (_c *ExperimentResultCreate) createSpec() (*ExperimentResult, *sqlgraph.CreateSpec) {
	var (
		_node = &ExperimentResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(experimentresult.Table, sqlgraph.NewFieldSpec(experimentresult.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(experimentresult.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(experimentresult.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.ResultType(); ok {
		_spec.SetField(experimentresult.FieldResultType, field.TypeEnum, value)
		_node.ResultType = value
	}
	if value, ok := _c.mutation.Value(); ok {
		_spec.SetField(experimentresult.FieldValue, field.TypeFloat64, value)
		_node.Value = &value
	}
	if value, ok := _c.mutation.Context(); ok {
		_spec.SetField(experimentresult.FieldContext, field.TypeString, value)
		_node.Context = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(experimentresult.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(experimentresult.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.VariantIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   experimentresult.VariantTable,
			Columns: []string{experimentresult.VariantColumn},
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

// ExperimentResultCreateBulk is the builder for creating many ExperimentResult entities in bulk.
type ExperimentResultCreateBulk struct {
	config
	err      error
	builders []*ExperimentResultCreate
}

// Save creates the ExperimentResult entities in the database.
func (_c *ExperimentResultCreateBulk) Save(ctx context.Context) ([]*ExperimentResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExperimentResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExperimentResultMutation)
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
func (_c *ExperimentResultCreateBulk) SaveX(ctx context.Context) []*ExperimentResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExperimentResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExperimentResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
