// Code generated by ent, DO NOT EDIT.

package experimentvariant

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/variantlab/abtest/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldLTE(FieldID, id))
}

// ExperimentID applies equality check predicate on the "experiment_id" field. It's identical to ExperimentIDEQ.
func ExperimentID(v int) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldEQ(FieldExperimentID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldEQ(FieldName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldEQ(FieldDescription, v))
}

// IsControl applies equality check predicate on the "is_control" field. It's identical to IsControlEQ.
func IsControl(v bool) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldEQ(FieldIsControl, v))
}

// IsWinner applies equality check predicate on the "is_winner" field. It's identical to IsWinnerEQ.
func IsWinner(v bool) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldEQ(FieldIsWinner, v))
}

// ConfidenceLevel applies equality check predicate on the "confidence_level" field. It's identical to ConfidenceLevelEQ.
func ConfidenceLevel(v float64) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldEQ(FieldConfidenceLevel, v))
}

// ImprovementRate applies equality check predicate on the "improvement_rate" field. It's identical to ImprovementRateEQ.
func ImprovementRate(v float64) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldEQ(FieldImprovementRate, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldEQ(FieldUpdatedAt, v))
}

// ExperimentIDEQ applies the EQ predicate on the "experiment_id" field.
func ExperimentIDEQ(v int) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldEQ(FieldExperimentID, v))
}

// ExperimentIDNEQ applies the NEQ predicate on the "experiment_id" field.
func ExperimentIDNEQ(v int) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldNEQ(FieldExperimentID, v))
}

// ExperimentIDIn applies the In predicate on the "experiment_id" field.
func ExperimentIDIn(vs ...int) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldIn(FieldExperimentID, vs...))
}

// ExperimentIDNotIn applies the NotIn predicate on the "experiment_id" field.
func ExperimentIDNotIn(vs ...int) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldNotIn(FieldExperimentID, vs...))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldContainsFold(FieldName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldContainsFold(FieldDescription, v))
}

// IsControlEQ applies the EQ predicate on the "is_control" field.
func IsControlEQ(v bool) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldEQ(FieldIsControl, v))
}

// IsControlNEQ applies the NEQ predicate on the "is_control" field.
func IsControlNEQ(v bool) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldNEQ(FieldIsControl, v))
}

// IsWinnerEQ applies the EQ predicate on the "is_winner" field.
func IsWinnerEQ(v bool) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldEQ(FieldIsWinner, v))
}

// IsWinnerNEQ applies the NEQ predicate on the "is_winner" field.
func IsWinnerNEQ(v bool) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldNEQ(FieldIsWinner, v))
}

// ConfigurationIsNil applies the IsNil predicate on the "configuration" field.
func ConfigurationIsNil() predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldIsNull(FieldConfiguration))
}

// ConfigurationNotNil applies the NotNil predicate on the "configuration" field.
func ConfigurationNotNil() predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldNotNull(FieldConfiguration))
}

// ConfidenceLevelEQ applies the EQ predicate on the "confidence_level" field.
func ConfidenceLevelEQ(v float64) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldEQ(FieldConfidenceLevel, v))
}

// ConfidenceLevelNEQ applies the NEQ predicate on the "confidence_level" field.
func ConfidenceLevelNEQ(v float64) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldNEQ(FieldConfidenceLevel, v))
}

// ConfidenceLevelIn applies the In predicate on the "confidence_level" field.
func ConfidenceLevelIn(vs ...float64) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldIn(FieldConfidenceLevel, vs...))
}

// ConfidenceLevelNotIn applies the NotIn predicate on the "confidence_level" field.
func ConfidenceLevelNotIn(vs ...float64) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldNotIn(FieldConfidenceLevel, vs...))
}

// ConfidenceLevelGT applies the GT predicate on the "confidence_level" field.
func ConfidenceLevelGT(v float64) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldGT(FieldConfidenceLevel, v))
}

// ConfidenceLevelGTE applies the GTE predicate on the "confidence_level" field.
func ConfidenceLevelGTE(v float64) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldGTE(FieldConfidenceLevel, v))
}

// ConfidenceLevelLT applies the LT predicate on the "confidence_level" field.
func ConfidenceLevelLT(v float64) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldLT(FieldConfidenceLevel, v))
}

// ConfidenceLevelLTE applies the LTE predicate on the "confidence_level" field.
func ConfidenceLevelLTE(v float64) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldLTE(FieldConfidenceLevel, v))
}

// ConfidenceLevelIsNil applies the IsNil predicate on the "confidence_level" field.
func ConfidenceLevelIsNil() predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldIsNull(FieldConfidenceLevel))
}

// ConfidenceLevelNotNil applies the NotNil predicate on the "confidence_level" field.
func ConfidenceLevelNotNil() predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldNotNull(FieldConfidenceLevel))
}

// ImprovementRateEQ applies the EQ predicate on the "improvement_rate" field.
func ImprovementRateEQ(v float64) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldEQ(FieldImprovementRate, v))
}

// ImprovementRateNEQ applies the NEQ predicate on the "improvement_rate" field.
func ImprovementRateNEQ(v float64) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldNEQ(FieldImprovementRate, v))
}

// ImprovementRateIn applies the In predicate on the "improvement_rate" field.
func ImprovementRateIn(vs ...float64) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldIn(FieldImprovementRate, vs...))
}

// ImprovementRateNotIn applies the NotIn predicate on the "improvement_rate" field.
func ImprovementRateNotIn(vs ...float64) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldNotIn(FieldImprovementRate, vs...))
}

// ImprovementRateGT applies the GT predicate on the "improvement_rate" field.
func ImprovementRateGT(v float64) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldGT(FieldImprovementRate, v))
}

// ImprovementRateGTE applies the GTE predicate on the "improvement_rate" field.
func ImprovementRateGTE(v float64) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldGTE(FieldImprovementRate, v))
}

// ImprovementRateLT applies the LT predicate on the "improvement_rate" field.
func ImprovementRateLT(v float64) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldLT(FieldImprovementRate, v))
}

// ImprovementRateLTE applies the LTE predicate on the "improvement_rate" field.
func ImprovementRateLTE(v float64) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldLTE(FieldImprovementRate, v))
}

// ImprovementRateIsNil applies the IsNil predicate on the "improvement_rate" field.
func ImprovementRateIsNil() predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldIsNull(FieldImprovementRate))
}

// ImprovementRateNotNil applies the NotNil predicate on the "improvement_rate" field.
func ImprovementRateNotNil() predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldNotNull(FieldImprovementRate))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasExperiment applies the HasEdge predicate on the "experiment" edge.
func HasExperiment() predicate.ExperimentVariant {
	return predicate.ExperimentVariant(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ExperimentTable, ExperimentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasExperimentWith applies the HasEdge predicate on the "experiment" edge with a given conditions (other predicates).
func HasExperimentWith(preds ...predicate.Experiment) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(func(s *sql.Selector) {
		step := newExperimentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAssignments applies the HasEdge predicate on the "assignments" edge.
func HasAssignments() predicate.ExperimentVariant {
	return predicate.ExperimentVariant(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AssignmentsTable, AssignmentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAssignmentsWith applies the HasEdge predicate on the "assignments" edge with a given conditions (other predicates).
func HasAssignmentsWith(preds ...predicate.ExperimentAssignment) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(func(s *sql.Selector) {
		step := newAssignmentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasResults applies the HasEdge predicate on the "results" edge.
func HasResults() predicate.ExperimentVariant {
	return predicate.ExperimentVariant(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ResultsTable, ResultsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasResultsWith applies the HasEdge predicate on the "results" edge with a given conditions (other predicates).
func HasResultsWith(preds ...predicate.ExperimentResult) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(func(s *sql.Selector) {
		step := newResultsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExperimentVariant) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExperimentVariant) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExperimentVariant) predicate.ExperimentVariant {
	return predicate.ExperimentVariant(sql.NotPredicates(p))
}
