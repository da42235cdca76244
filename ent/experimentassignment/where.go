// Code generated by ent, DO NOT EDIT.

package experimentassignment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/variantlab/abtest/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldLTE(FieldID, id))
}

// ExperimentID applies equality check predicate on the "experiment_id" field. It's identical to ExperimentIDEQ.
func ExperimentID(v int) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldEQ(FieldExperimentID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldEQ(FieldUserID, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldEQ(FieldSessionID, v))
}

// VariantID applies equality check predicate on the "variant_id" field. It's identical to VariantIDEQ.
func VariantID(v int) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldEQ(FieldVariantID, v))
}

// HasImpression applies equality check predicate on the "has_impression" field. It's identical to HasImpressionEQ.
func HasImpression(v bool) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldEQ(FieldHasImpression, v))
}

// HasInteraction applies equality check predicate on the "has_interaction" field. It's identical to HasInteractionEQ.
func HasInteraction(v bool) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldEQ(FieldHasInteraction, v))
}

// HasConversion applies equality check predicate on the "has_conversion" field. It's identical to HasConversionEQ.
func HasConversion(v bool) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldEQ(FieldHasConversion, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldEQ(FieldUpdatedAt, v))
}

// ExperimentIDEQ applies the EQ predicate on the "experiment_id" field.
func ExperimentIDEQ(v int) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldEQ(FieldExperimentID, v))
}

// ExperimentIDNEQ applies the NEQ predicate on the "experiment_id" field.
func ExperimentIDNEQ(v int) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldNEQ(FieldExperimentID, v))
}

// ExperimentIDIn applies the In predicate on the "experiment_id" field.
func ExperimentIDIn(vs ...int) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldIn(FieldExperimentID, vs...))
}

// ExperimentIDNotIn applies the NotIn predicate on the "experiment_id" field.
func ExperimentIDNotIn(vs ...int) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldNotIn(FieldExperimentID, vs...))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDIsNil applies the IsNil predicate on the "user_id" field.
func UserIDIsNil() predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldIsNull(FieldUserID))
}

// UserIDNotNil applies the NotNil predicate on the "user_id" field.
func UserIDNotNil() predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldNotNull(FieldUserID))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldContainsFold(FieldUserID, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDIsNil applies the IsNil predicate on the "session_id" field.
func SessionIDIsNil() predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldIsNull(FieldSessionID))
}

// SessionIDNotNil applies the NotNil predicate on the "session_id" field.
func SessionIDNotNil() predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldNotNull(FieldSessionID))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldContainsFold(FieldSessionID, v))
}

// VariantIDEQ applies the EQ predicate on the "variant_id" field.
func VariantIDEQ(v int) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldEQ(FieldVariantID, v))
}

// VariantIDNEQ applies the NEQ predicate on the "variant_id" field.
func VariantIDNEQ(v int) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldNEQ(FieldVariantID, v))
}

// VariantIDIn applies the In predicate on the "variant_id" field.
func VariantIDIn(vs ...int) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldIn(FieldVariantID, vs...))
}

// VariantIDNotIn applies the NotIn predicate on the "variant_id" field.
func VariantIDNotIn(vs ...int) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldNotIn(FieldVariantID, vs...))
}

// HasImpressionEQ applies the EQ predicate on the "has_impression" field.
func HasImpressionEQ(v bool) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldEQ(FieldHasImpression, v))
}

// HasImpressionNEQ applies the NEQ predicate on the "has_impression" field.
func HasImpressionNEQ(v bool) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldNEQ(FieldHasImpression, v))
}

// HasInteractionEQ applies the EQ predicate on the "has_interaction" field.
func HasInteractionEQ(v bool) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldEQ(FieldHasInteraction, v))
}

// HasInteractionNEQ applies the NEQ predicate on the "has_interaction" field.
func HasInteractionNEQ(v bool) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldNEQ(FieldHasInteraction, v))
}

// HasConversionEQ applies the EQ predicate on the "has_conversion" field.
func HasConversionEQ(v bool) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldEQ(FieldHasConversion, v))
}

// HasConversionNEQ applies the NEQ predicate on the "has_conversion" field.
func HasConversionNEQ(v bool) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldNEQ(FieldHasConversion, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldNotNull(FieldMetadata))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasExperiment applies the HasEdge predicate on the "experiment" edge.
func HasExperiment() predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ExperimentTable, ExperimentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasExperimentWith applies the HasEdge predicate on the "experiment" edge with a given conditions (other predicates).
func HasExperimentWith(preds ...predicate.Experiment) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(func(s *sql.Selector) {
		step := newExperimentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasVariant applies the HasEdge predicate on the "variant" edge.
func HasVariant() predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, VariantTable, VariantColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasVariantWith applies the HasEdge predicate on the "variant" edge with a given conditions (other predicates).
func HasVariantWith(preds ...predicate.ExperimentVariant) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(func(s *sql.Selector) {
		step := newVariantStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExperimentAssignment) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExperimentAssignment) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExperimentAssignment) predicate.ExperimentAssignment {
	return predicate.ExperimentAssignment(sql.NotPredicates(p))
}
