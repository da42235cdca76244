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
	"github.com/variantlab/abtest/ent/experimentvariant"
	"github.com/variantlab/abtest/ent/predicate"
)

// ExperimentAssignmentUpdate is the builder for updating ExperimentAssignment entities.
type ExperimentAssignmentUpdate struct {
	config
	hooks    []Hook
	mutation *ExperimentAssignmentMutation
}

// Where appends a list predicates to the ExperimentAssignmentUpdate builder.
func (_u *ExperimentAssignmentUpdate) Where(ps ...predicate.ExperimentAssignment) *ExperimentAssignmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetExperimentID sets the "experiment_id" field.
func (_u *ExperimentAssignmentUpdate) SetExperimentID(v int) *ExperimentAssignmentUpdate {
	_u.mutation.SetExperimentID(v)
	return _u
}

// SetNillableExperimentID sets the "experiment_id" field if the given value is not nil.
func (_u *ExperimentAssignmentUpdate) SetNillableExperimentID(v *int) *ExperimentAssignmentUpdate {
	if v != nil {
		_u.SetExperimentID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ExperimentAssignmentUpdate) SetUserID(v string) *ExperimentAssignmentUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ExperimentAssignmentUpdate) SetNillableUserID(v *string) *ExperimentAssignmentUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *ExperimentAssignmentUpdate) ClearUserID() *ExperimentAssignmentUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ExperimentAssignmentUpdate) SetSessionID(v string) *ExperimentAssignmentUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ExperimentAssignmentUpdate) SetNillableSessionID(v *string) *ExperimentAssignmentUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *ExperimentAssignmentUpdate) ClearSessionID() *ExperimentAssignmentUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// SetVariantID sets the "variant_id" field.
func (_u *ExperimentAssignmentUpdate) SetVariantID(v int) *ExperimentAssignmentUpdate {
	_u.mutation.SetVariantID(v)
	return _u
}

// SetNillableVariantID sets the "variant_id" field if the given value is not nil.
func (_u *ExperimentAssignmentUpdate) SetNillableVariantID(v *int) *ExperimentAssignmentUpdate {
	if v != nil {
		_u.SetVariantID(*v)
	}
	return _u
}

// SetHasImpression sets the "has_impression" field.
func (_u *ExperimentAssignmentUpdate) SetHasImpression(v bool) *ExperimentAssignmentUpdate {
	_u.mutation.SetHasImpression(v)
	return _u
}

// SetNillableHasImpression sets the "has_impression" field if the given value is not nil.
func (_u *ExperimentAssignmentUpdate) SetNillableHasImpression(v *bool) *ExperimentAssignmentUpdate {
	if v != nil {
		_u.SetHasImpression(*v)
	}
	return _u
}

// SetHasInteraction sets the "has_interaction" field.
func (_u *ExperimentAssignmentUpdate) SetHasInteraction(v bool) *ExperimentAssignmentUpdate {
	_u.mutation.SetHasInteraction(v)
	return _u
}

// SetNillableHasInteraction sets the "has_interaction" field if the given value is not nil.
func (_u *ExperimentAssignmentUpdate) SetNillableHasInteraction(v *bool) *ExperimentAssignmentUpdate {
	if v != nil {
		_u.SetHasInteraction(*v)
	}
	return _u
}

// SetHasConversion sets the "has_conversion" field.
func (_u *ExperimentAssignmentUpdate) SetHasConversion(v bool) *ExperimentAssignmentUpdate {
	_u.mutation.SetHasConversion(v)
	return _u
}

// SetNillableHasConversion sets the "has_conversion" field if the given value is not nil.
func (_u *ExperimentAssignmentUpdate) SetNillableHasConversion(v *bool) *ExperimentAssignmentUpdate {
	if v != nil {
		_u.SetHasConversion(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ExperimentAssignmentUpdate) SetMetadata(v map[string]interface{}) *ExperimentAssignmentUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ExperimentAssignmentUpdate) ClearMetadata() *ExperimentAssignmentUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExperimentAssignmentUpdate) SetUpdatedAt(v time.Time) *ExperimentAssignmentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetExperiment sets the "experiment" edge to the Experiment entity.
func (_u *ExperimentAssignmentUpdate) SetExperiment(v *Experiment) *ExperimentAssignmentUpdate {
	return _u.SetExperimentID(v.ID)
}

// SetVariant sets the "variant" edge to the ExperimentVariant entity.
func (_u *ExperimentAssignmentUpdate) SetVariant(v *ExperimentVariant) *ExperimentAssignmentUpdate {
	return _u.SetVariantID(v.ID)
}

// Mutation returns the ExperimentAssignmentMutation object of the builder.
func (_u *ExperimentAssignmentUpdate) Mutation() *ExperimentAssignmentMutation {
	return _u.mutation
}

// ClearExperiment clears the "experiment" edge to the Experiment entity.
func (_u *ExperimentAssignmentUpdate) ClearExperiment() *ExperimentAssignmentUpdate {
	_u.mutation.ClearExperiment()
	return _u
}

// ClearVariant clears the "variant" edge to the ExperimentVariant entity.
func (_u *ExperimentAssignmentUpdate) ClearVariant() *ExperimentAssignmentUpdate {
	_u.mutation.ClearVariant()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExperimentAssignmentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExperimentAssignmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExperimentAssignmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExperimentAssignmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExperimentAssignmentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := experimentassignment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExperimentAssignmentUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := experimentassignment.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ExperimentAssignment.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := experimentassignment.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ExperimentAssignment.session_id": %w`, err)}
		}
	}
	if _u.mutation.ExperimentCleared() && len(_u.mutation.ExperimentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExperimentAssignment.experiment"`)
	}
	if _u.mutation.VariantCleared() && len(_u.mutation.VariantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExperimentAssignment.variant"`)
	}
	return nil
}

func (_u *ExperimentAssignmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(experimentassignment.Table, experimentassignment.Columns, sqlgraph.NewFieldSpec(experimentassignment.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(experimentassignment.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(experimentassignment.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(experimentassignment.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(experimentassignment.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.HasImpression(); ok {
		_spec.SetField(experimentassignment.FieldHasImpression, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HasInteraction(); ok {
		_spec.SetField(experimentassignment.FieldHasInteraction, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HasConversion(); ok {
		_spec.SetField(experimentassignment.FieldHasConversion, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(experimentassignment.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(experimentassignment.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(experimentassignment.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ExperimentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExperimentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.VariantCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VariantIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{experimentassignment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExperimentAssignmentUpdateOne is the builder for updating a single ExperimentAssignment entity.
type ExperimentAssignmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExperimentAssignmentMutation
}

// SetExperimentID sets the "experiment_id" field.
func (_u *ExperimentAssignmentUpdateOne) SetExperimentID(v int) *ExperimentAssignmentUpdateOne {
	_u.mutation.SetExperimentID(v)
	return _u
}

// SetNillableExperimentID sets the "experiment_id" field if the given value is not nil.
func (_u *ExperimentAssignmentUpdateOne) SetNillableExperimentID(v *int) *ExperimentAssignmentUpdateOne {
	if v != nil {
		_u.SetExperimentID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ExperimentAssignmentUpdateOne) SetUserID(v string) *ExperimentAssignmentUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ExperimentAssignmentUpdateOne) SetNillableUserID(v *string) *ExperimentAssignmentUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *ExperimentAssignmentUpdateOne) ClearUserID() *ExperimentAssignmentUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ExperimentAssignmentUpdateOne) SetSessionID(v string) *ExperimentAssignmentUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ExperimentAssignmentUpdateOne) SetNillableSessionID(v *string) *ExperimentAssignmentUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *ExperimentAssignmentUpdateOne) ClearSessionID() *ExperimentAssignmentUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// SetVariantID sets the "variant_id" field.
func (_u *ExperimentAssignmentUpdateOne) SetVariantID(v int) *ExperimentAssignmentUpdateOne {
	_u.mutation.SetVariantID(v)
	return _u
}

// SetNillableVariantID sets the "variant_id" field if the given value is not nil.
func (_u *ExperimentAssignmentUpdateOne) SetNillableVariantID(v *int) *ExperimentAssignmentUpdateOne {
	if v != nil {
		_u.SetVariantID(*v)
	}
	return _u
}

// SetHasImpression sets the "has_impression" field.
func (_u *ExperimentAssignmentUpdateOne) SetHasImpression(v bool) *ExperimentAssignmentUpdateOne {
	_u.mutation.SetHasImpression(v)
	return _u
}

// SetNillableHasImpression sets the "has_impression" field if the given value is not nil.
func (_u *ExperimentAssignmentUpdateOne) SetNillableHasImpression(v *bool) *ExperimentAssignmentUpdateOne {
	if v != nil {
		_u.SetHasImpression(*v)
	}
	return _u
}

// SetHasInteraction sets the "has_interaction" field.
func (_u *ExperimentAssignmentUpdateOne) SetHasInteraction(v bool) *ExperimentAssignmentUpdateOne {
	_u.mutation.SetHasInteraction(v)
	return _u
}

// SetNillableHasInteraction sets the "has_interaction" field if the given value is not nil.
func (_u *ExperimentAssignmentUpdateOne) SetNillableHasInteraction(v *bool) *ExperimentAssignmentUpdateOne {
	if v != nil {
		_u.SetHasInteraction(*v)
	}
	return _u
}

// SetHasConversion sets the "has_conversion" field.
func (_u *ExperimentAssignmentUpdateOne) SetHasConversion(v bool) *ExperimentAssignmentUpdateOne {
	_u.mutation.SetHasConversion(v)
	return _u
}

// SetNillableHasConversion sets the "has_conversion" field if the given value is not nil.
func (_u *ExperimentAssignmentUpdateOne) SetNillableHasConversion(v *bool) *ExperimentAssignmentUpdateOne {
	if v != nil {
		_u.SetHasConversion(*v)
	}
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *ExperimentAssignmentUpdateOne) SetMetadata(v map[string]interface{}) *ExperimentAssignmentUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *ExperimentAssignmentUpdateOne) ClearMetadata() *ExperimentAssignmentUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExperimentAssignmentUpdateOne) SetUpdatedAt(v time.Time) *ExperimentAssignmentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetExperiment sets the "experiment" edge to the Experiment entity.
func (_u *ExperimentAssignmentUpdateOne) SetExperiment(v *Experiment) *ExperimentAssignmentUpdateOne {
	return _u.SetExperimentID(v.ID)
}

// SetVariant sets the "variant" edge to the ExperimentVariant entity.
func (_u *ExperimentAssignmentUpdateOne) SetVariant(v *ExperimentVariant) *ExperimentAssignmentUpdateOne {
	return _u.SetVariantID(v.ID)
}

// Mutation returns the ExperimentAssignmentMutation object of the builder.
func (_u *ExperimentAssignmentUpdateOne) Mutation() *ExperimentAssignmentMutation {
	return _u.mutation
}

// ClearExperiment clears the "experiment" edge to the Experiment entity.
func (_u *ExperimentAssignmentUpdateOne) ClearExperiment() *ExperimentAssignmentUpdateOne {
	_u.mutation.ClearExperiment()
	return _u
}

// ClearVariant clears the "variant" edge to the ExperimentVariant entity.
func (_u *ExperimentAssignmentUpdateOne) ClearVariant() *ExperimentAssignmentUpdateOne {
	_u.mutation.ClearVariant()
	return _u
}

// Where appends a list predicates to the ExperimentAssignmentUpdate builder.
func (_u *ExperimentAssignmentUpdateOne) Where(ps ...predicate.ExperimentAssignment) *ExperimentAssignmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExperimentAssignmentUpdateOne) Select(field string, fields ...string) *ExperimentAssignmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExperimentAssignment entity.
func (_u *ExperimentAssignmentUpdateOne) Save(ctx context.Context) (*ExperimentAssignment, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExperimentAssignmentUpdateOne) SaveX(ctx context.Context) *ExperimentAssignment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExperimentAssignmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExperimentAssignmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExperimentAssignmentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := experimentassignment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExperimentAssignmentUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := experimentassignment.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ExperimentAssignment.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := experimentassignment.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ExperimentAssignment.session_id": %w`, err)}
		}
	}
	if _u.mutation.ExperimentCleared() && len(_u.mutation.ExperimentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExperimentAssignment.experiment"`)
	}
	if _u.mutation.VariantCleared() && len(_u.mutation.VariantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExperimentAssignment.variant"`)
	}
	return nil
}

func (_u *ExperimentAssignmentUpdateOne) sqlSave(ctx context.Context) (_node *ExperimentAssignment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(experimentassignment.Table, experimentassignment.Columns, sqlgraph.NewFieldSpec(experimentassignment.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExperimentAssignment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, experimentassignment.FieldID)
		for _, f := range fields {
			if !experimentassignment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != experimentassignment.FieldID {
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
		_spec.SetField(experimentassignment.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(experimentassignment.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(experimentassignment.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(experimentassignment.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.HasImpression(); ok {
		_spec.SetField(experimentassignment.FieldHasImpression, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HasInteraction(); ok {
		_spec.SetField(experimentassignment.FieldHasInteraction, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HasConversion(); ok {
		_spec.SetField(experimentassignment.FieldHasConversion, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(experimentassignment.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(experimentassignment.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(experimentassignment.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ExperimentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExperimentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.VariantCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VariantIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ExperimentAssignment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{experimentassignment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
