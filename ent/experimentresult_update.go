// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/variantlab/abtest/ent/experimentresult"
	"github.com/variantlab/abtest/ent/experimentvariant"
	"github.com/variantlab/abtest/ent/predicate"
)

// ExperimentResultUpdate is the builder for updating ExperimentResult entities.
type ExperimentResultUpdate struct {
	config
	hooks    []Hook
	mutation *ExperimentResultMutation
}

// Where appends a list predicates to the ExperimentResultUpdate builder.
func (_u *ExperimentResultUpdate) Where(ps ...predicate.ExperimentResult) *ExperimentResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetVariantID sets the "variant_id" field.
func (_u *ExperimentResultUpdate) SetVariantID(v int) *ExperimentResultUpdate {
	_u.mutation.SetVariantID(v)
	return _u
}

// SetNillableVariantID sets the "variant_id" field if the given value is not nil.
func (_u *ExperimentResultUpdate) SetNillableVariantID(v *int) *ExperimentResultUpdate {
	if v != nil {
		_u.SetVariantID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ExperimentResultUpdate) SetUserID(v string) *ExperimentResultUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ExperimentResultUpdate) SetNillableUserID(v *string) *ExperimentResultUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *ExperimentResultUpdate) ClearUserID() *ExperimentResultUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ExperimentResultUpdate) SetSessionID(v string) *ExperimentResultUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ExperimentResultUpdate) SetNillableSessionID(v *string) *ExperimentResultUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *ExperimentResultUpdate) ClearSessionID() *ExperimentResultUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// SetResultType sets the "result_type" field.
func (_u *ExperimentResultUpdate) SetResultType(v experimentresult.ResultType) *ExperimentResultUpdate {
	_u.mutation.SetResultType(v)
	return _u
}

// SetNillableResultType sets the "result_type" field if the given value is not nil.
func (_u *ExperimentResultUpdate) SetNillableResultType(v *experimentresult.ResultType) *ExperimentResultUpdate {
	if v != nil {
		_u.SetResultType(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *ExperimentResultUpdate) SetValue(v float64) *ExperimentResultUpdate {
	_u.mutation.ResetValue()
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *ExperimentResultUpdate) SetNillableValue(v *float64) *ExperimentResultUpdate {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// AddValue adds value to the "value" field.
func (_u *ExperimentResultUpdate) AddValue(v float64) *ExperimentResultUpdate {
	_u.mutation.AddValue(v)
	return _u
}

// ClearValue clears the value of the "value" field.
func (_u *ExperimentResultUpdate) ClearValue() *ExperimentResultUpdate {
	_u.mutation.ClearValue()
	return _u
}

// SetContext sets the "context" field.
func (_u *ExperimentResultUpdate) SetContext(v string) *ExperimentResultUpdate {
	_u.mutation.SetContext(v)
	return _u
}

// SetNillableContext sets the "context" field if the given value is not nil.
func (_u *ExperimentResultUpdate) SetNillableContext(v *string) *ExperimentResultUpdate {
	if v != nil {
		_u.SetContext(*v)
	}
	return _u
}

// ClearContext clears the value of the "context" field.
func (_u *ExperimentResultUpdate) ClearContext() *ExperimentResultUpdate {
	_u.mutation.ClearContext()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ExperimentResultUpdate) SetMetadata(v map[string]interface{}) *ExperimentResultUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ExperimentResultUpdate) ClearMetadata() *ExperimentResultUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetVariant sets the "variant" edge to the ExperimentVariant entity.
func (_u *ExperimentResultUpdate) SetVariant(v *ExperimentVariant) *ExperimentResultUpdate {
	return _u.SetVariantID(v.ID)
}

// Mutation returns the ExperimentResultMutation object of the builder.
func (_u *ExperimentResultUpdate) Mutation() *ExperimentResultMutation {
	return _u.mutation
}

// ClearVariant clears the "variant" edge to the ExperimentVariant entity.
func (_u *ExperimentResultUpdate) ClearVariant() *ExperimentResultUpdate {
	_u.mutation.ClearVariant()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExperimentResultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExperimentResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExperimentResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExperimentResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExperimentResultUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := experimentresult.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ExperimentResult.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := experimentresult.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ExperimentResult.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ResultType(); ok {
		if err := experimentresult.ResultTypeValidator(v); err != nil {
			return &ValidationError{Name: "result_type", err: fmt.Errorf(`ent: validator failed for field "ExperimentResult.result_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Context(); ok {
		if err := experimentresult.ContextValidator(v); err != nil {
			return &ValidationError{Name: "context", err: fmt.Errorf(`ent: validator failed for field "ExperimentResult.context": %w`, err)}
		}
	}
	if _u.mutation.VariantCleared() && len(_u.mutation.VariantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExperimentResult.variant"`)
	}
	return nil
}

func (_u *ExperimentResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(experimentresult.Table, experimentresult.Columns, sqlgraph.NewFieldSpec(experimentresult.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(experimentresult.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(experimentresult.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(experimentresult.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(experimentresult.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.ResultType(); ok {
		_spec.SetField(experimentresult.FieldResultType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(experimentresult.FieldValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedValue(); ok {
		_spec.AddField(experimentresult.FieldValue, field.TypeFloat64, value)
	}
	if _u.mutation.ValueCleared() {
		_spec.ClearField(experimentresult.FieldValue, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(experimentresult.FieldContext, field.TypeString, value)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(experimentresult.FieldContext, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(experimentresult.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(experimentresult.FieldMetadata, field.TypeJSON)
	}
	if _u.mutation.VariantCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VariantIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{experimentresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExperimentResultUpdateOne is the builder for updating a single ExperimentResult entity.
type ExperimentResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExperimentResultMutation
}

// SetVariantID sets the "variant_id" field.
func (_u *ExperimentResultUpdateOne) SetVariantID(v int) *ExperimentResultUpdateOne {
	_u.mutation.SetVariantID(v)
	return _u
}

// SetNillableVariantID sets the "variant_id" field if the given value is not nil.
func (_u *ExperimentResultUpdateOne) SetNillableVariantID(v *int) *ExperimentResultUpdateOne {
	if v != nil {
		_u.SetVariantID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ExperimentResultUpdateOne) SetUserID(v string) *ExperimentResultUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ExperimentResultUpdateOne) SetNillableUserID(v *string) *ExperimentResultUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *ExperimentResultUpdateOne) ClearUserID() *ExperimentResultUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ExperimentResultUpdateOne) SetSessionID(v string) *ExperimentResultUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ExperimentResultUpdateOne) SetNillableSessionID(v *string) *ExperimentResultUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *ExperimentResultUpdateOne) ClearSessionID() *ExperimentResultUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// SetResultType sets the "result_type" field.
func (_u *ExperimentResultUpdateOne) SetResultType(v experimentresult.ResultType) *ExperimentResultUpdateOne {
	_u.mutation.SetResultType(v)
	return _u
}

// SetNillableResultType sets the "result_type" field if the given value is not nil.
func (_u *ExperimentResultUpdateOne) SetNillableResultType(v *experimentresult.ResultType) *ExperimentResultUpdateOne {
	if v != nil {
		_u.SetResultType(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *ExperimentResultUpdateOne) SetValue(v float64) *ExperimentResultUpdateOne {
	_u.mutation.ResetValue()
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *ExperimentResultUpdateOne) SetNillableValue(v *float64) *ExperimentResultUpdateOne {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// AddValue adds value to the "value" field.
func (_u *ExperimentResultUpdateOne) AddValue(v float64) *ExperimentResultUpdateOne {
	_u.mutation.AddValue(v)
	return _u
}

// ClearValue clears the value of the "value" field.
func (_u *ExperimentResultUpdateOne) ClearValue() *ExperimentResultUpdateOne {
	_u.mutation.ClearValue()
	return _u
}

// SetContext sets the "context" field.
func (_u *ExperimentResultUpdateOne) SetContext(v string) *ExperimentResultUpdateOne {
	_u.mutation.SetContext(v)
	return _u
}

// SetNillableContext sets the "context" field if the given value is not nil.
func (_u *ExperimentResultUpdateOne) SetNillableContext(v *string) *ExperimentResultUpdateOne {
	if v != nil {
		_u.SetContext(*v)
	}
	return _u
}

// ClearContext clears the value of the "context" field.
func (_u *ExperimentResultUpdateOne) ClearContext() *ExperimentResultUpdateOne {
	_u.mutation.ClearContext()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ExperimentResultUpdateOne) SetMetadata(v map[string]interface{}) *ExperimentResultUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ExperimentResultUpdateOne) ClearMetadata() *ExperimentResultUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetVariant sets the "variant" edge to the ExperimentVariant entity.
func (_u *ExperimentResultUpdateOne) SetVariant(v *ExperimentVariant) *ExperimentResultUpdateOne {
	return _u.SetVariantID(v.ID)
}

// Mutation returns the ExperimentResultMutation object of the builder.
func (_u *ExperimentResultUpdateOne) Mutation() *ExperimentResultMutation {
	return _u.mutation
}

// ClearVariant clears the "variant" edge to the ExperimentVariant entity.
func (_u *ExperimentResultUpdateOne) ClearVariant() *ExperimentResultUpdateOne {
	_u.mutation.ClearVariant()
	return _u
}

// Where appends a list predicates to the ExperimentResultUpdate builder.
func (_u *ExperimentResultUpdateOne) Where(ps ...predicate.ExperimentResult) *ExperimentResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExperimentResultUpdateOne) Select(field string, fields ...string) *ExperimentResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExperimentResult entity.
func (_u *ExperimentResultUpdateOne) Save(ctx context.Context) (*ExperimentResult, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExperimentResultUpdateOne) SaveX(ctx context.Context) *ExperimentResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExperimentResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExperimentResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExperimentResultUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := experimentresult.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ExperimentResult.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := experimentresult.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ExperimentResult.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ResultType(); ok {
		if err := experimentresult.ResultTypeValidator(v); err != nil {
			return &ValidationError{Name: "result_type", err: fmt.Errorf(`ent: validator failed for field "ExperimentResult.result_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Context(); ok {
		if err := experimentresult.ContextValidator(v); err != nil {
			return &ValidationError{Name: "context", err: fmt.Errorf(`ent: validator failed for field "ExperimentResult.context": %w`, err)}
		}
	}
	if _u.mutation.VariantCleared() && len(_u.mutation.VariantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExperimentResult.variant"`)
	}
	return nil
}

func (_u *ExperimentResultUpdateOne) sqlSave(ctx context.Context) (_node *ExperimentResult, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(experimentresult.Table, experimentresult.Columns, sqlgraph.NewFieldSpec(experimentresult.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExperimentResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, experimentresult.FieldID)
		for _, f := range fields {
			if !experimentresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != experimentresult.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(experimentresult.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(experimentresult.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(experimentresult.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(experimentresult.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.ResultType(); ok {
		_spec.SetField(experimentresult.FieldResultType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(experimentresult.FieldValue, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedValue(); ok {
		_spec.AddField(experimentresult.FieldValue, field.TypeFloat64, value)
	}
	if _u.mutation.ValueCleared() {
		_spec.ClearField(experimentresult.FieldValue, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(experimentresult.FieldContext, field.TypeString, value)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(experimentresult.FieldContext, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(experimentresult.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(experimentresult.FieldMetadata, field.TypeJSON)
	}
	if _u.mutation.VariantCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VariantIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ExperimentResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{experimentresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
