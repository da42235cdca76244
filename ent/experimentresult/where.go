// Code generated by ent, DO NOT EDIT.

package experimentresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/variantlab/abtest/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldLTE(FieldID, id))
}

// VariantID applies equality check predicate on the "variant_id" field. It's identical to VariantIDEQ.
func VariantID(v int) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldEQ(FieldVariantID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldEQ(FieldUserID, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldEQ(FieldSessionID, v))
}

// Value applies equality check predicate on the "value" field. It's identical to ValueEQ.
func Value(v float64) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldEQ(FieldValue, v))
}

// Context applies equality check predicate on the "context" field. It's identical to ContextEQ.
func Context(v string) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldEQ(FieldContext, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldEQ(FieldCreatedAt, v))
}

// VariantIDEQ applies the EQ predicate on the "variant_id" field.
func VariantIDEQ(v int) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldEQ(FieldVariantID, v))
}

// VariantIDNEQ applies the NEQ predicate on the "variant_id" field.
func VariantIDNEQ(v int) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldNEQ(FieldVariantID, v))
}

// VariantIDIn applies the In predicate on the "variant_id" field.
func VariantIDIn(vs ...int) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldIn(FieldVariantID, vs...))
}

// VariantIDNotIn applies the NotIn predicate on the "variant_id" field.
func VariantIDNotIn(vs ...int) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldNotIn(FieldVariantID, vs...))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDIsNil applies the IsNil predicate on the "user_id" field.
func UserIDIsNil() predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldIsNull(FieldUserID))
}

// UserIDNotNil applies the NotNil predicate on the "user_id" field.
func UserIDNotNil() predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldNotNull(FieldUserID))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldContainsFold(FieldUserID, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDIsNil applies the IsNil predicate on the "session_id" field.
func SessionIDIsNil() predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldIsNull(FieldSessionID))
}

// SessionIDNotNil applies the NotNil predicate on the "session_id" field.
func SessionIDNotNil() predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldNotNull(FieldSessionID))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldContainsFold(FieldSessionID, v))
}

// ResultTypeEQ applies the EQ predicate on the "result_type" field.
func ResultTypeEQ(v ResultType) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldEQ(FieldResultType, v))
}

// ResultTypeNEQ applies the NEQ predicate on the "result_type" field.
func ResultTypeNEQ(v ResultType) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldNEQ(FieldResultType, v))
}

// ResultTypeIn applies the In predicate on the "result_type" field.
func ResultTypeIn(vs ...ResultType) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldIn(FieldResultType, vs...))
}

// ResultTypeNotIn applies the NotIn predicate on the "result_type" field.
func ResultTypeNotIn(vs ...ResultType) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldNotIn(FieldResultType, vs...))
}

// ValueEQ applies the EQ predicate on the "value" field.
func ValueEQ(v float64) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldEQ(FieldValue, v))
}

// ValueNEQ applies the NEQ predicate on the "value" field.
func ValueNEQ(v float64) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldNEQ(FieldValue, v))
}

// ValueIn applies the In predicate on the "value" field.
func ValueIn(vs ...float64) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldIn(FieldValue, vs...))
}

// ValueNotIn applies the NotIn predicate on the "value" field.
func ValueNotIn(vs ...float64) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldNotIn(FieldValue, vs...))
}

// ValueGT applies the GT predicate on the "value" field.
func ValueGT(v float64) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldGT(FieldValue, v))
}

// ValueGTE applies the GTE predicate on the "value" field.
func ValueGTE(v float64) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldGTE(FieldValue, v))
}

// ValueLT applies the LT predicate on the "value" field.
func ValueLT(v float64) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldLT(FieldValue, v))
}

// ValueLTE applies the LTE predicate on the "value" field.
func ValueLTE(v float64) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldLTE(FieldValue, v))
}

// ValueIsNil applies the IsNil predicate on the "value" field.
func ValueIsNil() predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldIsNull(FieldValue))
}

// ValueNotNil applies the NotNil predicate on the "value" field.
func ValueNotNil() predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldNotNull(FieldValue))
}

// ContextEQ applies the EQ predicate on the "context" field.
func ContextEQ(v string) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldEQ(FieldContext, v))
}

// ContextNEQ applies the NEQ predicate on the "context" field.
func ContextNEQ(v string) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldNEQ(FieldContext, v))
}

// ContextIn applies the In predicate on the "context" field.
func ContextIn(vs ...string) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldIn(FieldContext, vs...))
}

// ContextNotIn applies the NotIn predicate on the "context" field.
func ContextNotIn(vs ...string) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldNotIn(FieldContext, vs...))
}

// ContextGT applies the GT predicate on the "context" field.
func ContextGT(v string) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldGT(FieldContext, v))
}

// ContextGTE applies the GTE predicate on the "context" field.
func ContextGTE(v string) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldGTE(FieldContext, v))
}

// ContextLT applies the LT predicate on the "context" field.
func ContextLT(v string) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldLT(FieldContext, v))
}

// ContextLTE applies the LTE predicate on the "context" field.
func ContextLTE(v string) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldLTE(FieldContext, v))
}

// ContextContains applies the Contains predicate on the "context" field.
func ContextContains(v string) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldContains(FieldContext, v))
}

// ContextHasPrefix applies the HasPrefix predicate on the "context" field.
func ContextHasPrefix(v string) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldHasPrefix(FieldContext, v))
}

// ContextHasSuffix applies the HasSuffix predicate on the "context" field.
func ContextHasSuffix(v string) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldHasSuffix(FieldContext, v))
}

// ContextIsNil applies the IsNil predicate on the "context" field.
func ContextIsNil() predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldIsNull(FieldContext))
}

// ContextNotNil applies the NotNil predicate on the "context" field.
func ContextNotNil() predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldNotNull(FieldContext))
}

// ContextEqualFold applies the EqualFold predicate on the "context" field.
func ContextEqualFold(v string) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldEqualFold(FieldContext, v))
}

// ContextContainsFold applies the ContainsFold predicate on the "context" field.
func ContextContainsFold(v string) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldContainsFold(FieldContext, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldNotNull(FieldMetadata))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.FieldLTE(FieldCreatedAt, v))
}

// HasVariant applies the HasEdge predicate on the "variant" edge.
func HasVariant() predicate.ExperimentResult {
	return predicate.ExperimentResult(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, VariantTable, VariantColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasVariantWith applies the HasEdge predicate on the "variant" edge with a given conditions (other predicates).
func HasVariantWith(preds ...predicate.ExperimentVariant) predicate.ExperimentResult {
	return predicate.ExperimentResult(func(s *sql.Selector) {
		step := newVariantStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExperimentResult) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExperimentResult) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExperimentResult) predicate.ExperimentResult {
	return predicate.ExperimentResult(sql.NotPredicates(p))
}
