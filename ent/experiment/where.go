// Code generated by ent, DO NOT EDIT.

package experiment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/variantlab/abtest/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Experiment {
	return predicate.Experiment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Experiment {
	return predicate.Experiment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Experiment {
	return predicate.Experiment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Experiment {
	return predicate.Experiment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Experiment {
	return predicate.Experiment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Experiment {
	return predicate.Experiment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Experiment {
	return predicate.Experiment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Experiment {
	return predicate.Experiment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Experiment {
	return predicate.Experiment(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Experiment {
	return predicate.Experiment(sql.FieldEQ(FieldName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Experiment {
	return predicate.Experiment(sql.FieldEQ(FieldDescription, v))
}

// TargetAudience applies equality check predicate on the "target_audience" field. It's identical to TargetAudienceEQ.
func TargetAudience(v string) predicate.Experiment {
	return predicate.Experiment(sql.FieldEQ(FieldTargetAudience, v))
}

// AudiencePercentage applies equality check predicate on the "audience_percentage" field. It's identical to AudiencePercentageEQ.
func AudiencePercentage(v float64) predicate.Experiment {
	return predicate.Experiment(sql.FieldEQ(FieldAudiencePercentage, v))
}

// StartDate applies equality check predicate on the "start_date" field. It's identical to StartDateEQ.
func StartDate(v time.Time) predicate.Experiment {
	return predicate.Experiment(sql.FieldEQ(FieldStartDate, v))
}

// EndDate applies equality check predicate on the "end_date" field. It's identical to EndDateEQ.
func EndDate(v time.Time) predicate.Experiment {
	return predicate.Experiment(sql.FieldEQ(FieldEndDate, v))
}

// Hypothesis applies equality check predicate on the "hypothesis" field. It's identical to HypothesisEQ.
func Hypothesis(v string) predicate.Experiment {
	return predicate.Experiment(sql.FieldEQ(FieldHypothesis, v))
}

// PrimaryMetric applies equality check predicate on the "primary_metric" field. It's identical to PrimaryMetricEQ.
func PrimaryMetric(v string) predicate.Experiment {
	return predicate.Experiment(sql.FieldEQ(FieldPrimaryMetric, v))
}

// MinDetectableEffect applies equality check predicate on the "min_detectable_effect" field. It's identical to MinDetectableEffectEQ.
func MinDetectableEffect(v float64) predicate.Experiment {
	return predicate.Experiment(sql.FieldEQ(FieldMinDetectableEffect, v))
}

// HasWinner applies equality check predicate on the "has_winner" field. It's identical to HasWinnerEQ.
func HasWinner(v bool) predicate.Experiment {
	return predicate.Experiment(sql.FieldEQ(FieldHasWinner, v))
}

// WinningVariantID applies equality check predicate on the "winning_variant_id" field. It's identical to WinningVariantIDEQ.
func WinningVariantID(v int) predicate.Experiment {
	return predicate.Experiment(sql.FieldEQ(FieldWinningVariantID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Experiment {
	return predicate.Experiment(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Experiment {
	return predicate.Experiment(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Experiment {
	return predicate.Experiment(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Experiment {
	return predicate.Experiment(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Experiment {
	return predicate.Experiment(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Experiment {
	return predicate.Experiment(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Experiment {
	return predicate.Experiment(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Experiment {
	return predicate.Experiment(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Experiment {
	return predicate.Experiment(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Experiment {
	return predicate.Experiment(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Experiment {
	return predicate.Experiment(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Experiment {
	return predicate.Experiment(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Experiment {
	return predicate.Experiment(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Experiment {
	return predicate.Experiment(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Experiment {
	return predicate.Experiment(sql.FieldContainsFold(FieldName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Experiment {
	return predicate.Experiment(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Experiment {
	return predicate.Experiment(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Experiment {
	return predicate.Experiment(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Experiment {
	return predicate.Experiment(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Experiment {
	return predicate.Experiment(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Experiment {
	return predicate.Experiment(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Experiment {
	return predicate.Experiment(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Experiment {
	return predicate.Experiment(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Experiment {
	return predicate.Experiment(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Experiment {
	return predicate.Experiment(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Experiment {
	return predicate.Experiment(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Experiment {
	return predicate.Experiment(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Experiment {
	return predicate.Experiment(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Experiment {
	return predicate.Experiment(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Experiment {
	return predicate.Experiment(sql.FieldContainsFold(FieldDescription, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Experiment {
	return predicate.Experiment(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Experiment {
	return predicate.Experiment(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Experiment {
	return predicate.Experiment(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Experiment {
	return predicate.Experiment(sql.FieldNotIn(FieldStatus, vs...))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v Type) predicate.Experiment {
	return predicate.Experiment(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v Type) predicate.Experiment {
	return predicate.Experiment(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...Type) predicate.Experiment {
	return predicate.Experiment(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...Type) predicate.Experiment {
	return predicate.Experiment(sql.FieldNotIn(FieldType, vs...))
}

// TargetAudienceEQ applies the EQ predicate on the "target_audience" field.
func TargetAudienceEQ(v string) predicate.Experiment {
	return predicate.Experiment(sql.FieldEQ(FieldTargetAudience, v))
}

// TargetAudienceNEQ applies the NEQ predicate on the "target_audience" field.
func TargetAudienceNEQ(v string) predicate.Experiment {
	return predicate.Experiment(sql.FieldNEQ(FieldTargetAudience, v))
}

// TargetAudienceIn applies the In predicate on the "target_audience" field.
func TargetAudienceIn(vs ...string) predicate.Experiment {
	return predicate.Experiment(sql.FieldIn(FieldTargetAudience, vs...))
}

// TargetAudienceNotIn applies the NotIn predicate on the "target_audience" field.
func TargetAudienceNotIn(vs ...string) predicate.Experiment {
	return predicate.Experiment(sql.FieldNotIn(FieldTargetAudience, vs...))
}

// TargetAudienceGT applies the GT predicate on the "target_audience" field.
func TargetAudienceGT(v string) predicate.Experiment {
	return predicate.Experiment(sql.FieldGT(FieldTargetAudience, v))
}

// TargetAudienceGTE applies the GTE predicate on the "target_audience" field.
func TargetAudienceGTE(v string) predicate.Experiment {
	return predicate.Experiment(sql.FieldGTE(FieldTargetAudience, v))
}

// TargetAudienceLT applies the LT predicate on the "target_audience" field.
func TargetAudienceLT(v string) predicate.Experiment {
	return predicate.Experiment(sql.FieldLT(FieldTargetAudience, v))
}

// TargetAudienceLTE applies the LTE predicate on the "target_audience" field.
func TargetAudienceLTE(v string) predicate.Experiment {
	return predicate.Experiment(sql.FieldLTE(FieldTargetAudience, v))
}

// TargetAudienceContains applies the Contains predicate on the "target_audience" field.
func TargetAudienceContains(v string) predicate.Experiment {
	return predicate.Experiment(sql.FieldContains(FieldTargetAudience, v))
}

// TargetAudienceHasPrefix applies the HasPrefix predicate on the "target_audience" field.
func TargetAudienceHasPrefix(v string) predicate.Experiment {
	return predicate.Experiment(sql.FieldHasPrefix(FieldTargetAudience, v))
}

// TargetAudienceHasSuffix applies the HasSuffix predicate on the "target_audience" field.
func TargetAudienceHasSuffix(v string) predicate.Experiment {
	return predicate.Experiment(sql.FieldHasSuffix(FieldTargetAudience, v))
}

// TargetAudienceIsNil applies the IsNil predicate on the "target_audience" field.
func TargetAudienceIsNil() predicate.Experiment {
	return predicate.Experiment(sql.FieldIsNull(FieldTargetAudience))
}

// TargetAudienceNotNil applies the NotNil predicate on the "target_audience" field.
func TargetAudienceNotNil() predicate.Experiment {
	return predicate.Experiment(sql.FieldNotNull(FieldTargetAudience))
}

// TargetAudienceEqualFold applies the EqualFold predicate on the "target_audience" field.
func TargetAudienceEqualFold(v string) predicate.Experiment {
	return predicate.Experiment(sql.FieldEqualFold(FieldTargetAudience, v))
}

// TargetAudienceContainsFold applies the ContainsFold predicate on the "target_audience" field.
func TargetAudienceContainsFold(v string) predicate.Experiment {
	return predicate.Experiment(sql.FieldContainsFold(FieldTargetAudience, v))
}

// AudiencePercentageEQ applies the EQ predicate on the "audience_percentage" field.
func AudiencePercentageEQ(v float64) predicate.Experiment {
	return predicate.Experiment(sql.FieldEQ(FieldAudiencePercentage, v))
}

// AudiencePercentageNEQ applies the NEQ predicate on the "audience_percentage" field.
func AudiencePercentageNEQ(v float64) predicate.Experiment {
	return predicate.Experiment(sql.FieldNEQ(FieldAudiencePercentage, v))
}

// AudiencePercentageIn applies the In predicate on the "audience_percentage" field.
func AudiencePercentageIn(vs ...float64) predicate.Experiment {
	return predicate.Experiment(sql.FieldIn(FieldAudiencePercentage, vs...))
}

// AudiencePercentageNotIn applies the NotIn predicate on the "audience_percentage" field.
func AudiencePercentageNotIn(vs ...float64) predicate.Experiment {
	return predicate.Experiment(sql.FieldNotIn(FieldAudiencePercentage, vs...))
}

// AudiencePercentageGT applies the GT predicate on the "audience_percentage" field.
func AudiencePercentageGT(v float64) predicate.Experiment {
	return predicate.Experiment(sql.FieldGT(FieldAudiencePercentage, v))
}

// AudiencePercentageGTE applies the GTE predicate on the "audience_percentage" field.
func AudiencePercentageGTE(v float64) predicate.Experiment {
	return predicate.Experiment(sql.FieldGTE(FieldAudiencePercentage, v))
}

// AudiencePercentageLT applies the LT predicate on the "audience_percentage" field.
func AudiencePercentageLT(v float64) predicate.Experiment {
	return predicate.Experiment(sql.FieldLT(FieldAudiencePercentage, v))
}

// AudiencePercentageLTE applies the LTE predicate on the "audience_percentage" field.
func AudiencePercentageLTE(v float64) predicate.Experiment {
	return predicate.Experiment(sql.FieldLTE(FieldAudiencePercentage, v))
}

// AudiencePercentageIsNil applies the IsNil predicate on the "audience_percentage" field.
func AudiencePercentageIsNil() predicate.Experiment {
	return predicate.Experiment(sql.FieldIsNull(FieldAudiencePercentage))
}

// AudiencePercentageNotNil applies the NotNil predicate on the "audience_percentage" field.
func AudiencePercentageNotNil() predicate.Experiment {
	return predicate.Experiment(sql.FieldNotNull(FieldAudiencePercentage))
}

// StartDateEQ applies the EQ predicate on the "start_date" field.
func StartDateEQ(v time.Time) predicate.Experiment {
	return predicate.Experiment(sql.FieldEQ(FieldStartDate, v))
}

// StartDateNEQ applies the NEQ predicate on the "start_date" field.
func StartDateNEQ(v time.Time) predicate.Experiment {
	return predicate.Experiment(sql.FieldNEQ(FieldStartDate, v))
}

// StartDateIn applies the In predicate on the "start_date" field.
func StartDateIn(vs ...time.Time) predicate.Experiment {
	return predicate.Experiment(sql.FieldIn(FieldStartDate, vs...))
}

// StartDateNotIn applies the NotIn predicate on the "start_date" field.
func StartDateNotIn(vs ...time.Time) predicate.Experiment {
	return predicate.Experiment(sql.FieldNotIn(FieldStartDate, vs...))
}

// StartDateGT applies the GT predicate on the "start_date" field.
func StartDateGT(v time.Time) predicate.Experiment {
	return predicate.Experiment(sql.FieldGT(FieldStartDate, v))
}

// StartDateGTE applies the GTE predicate on the "start_date" field.
func StartDateGTE(v time.Time) predicate.Experiment {
	return predicate.Experiment(sql.FieldGTE(FieldStartDate, v))
}

// StartDateLT applies the LT predicate on the "start_date" field.
func StartDateLT(v time.Time) predicate.Experiment {
	return predicate.Experiment(sql.FieldLT(FieldStartDate, v))
}

// StartDateLTE applies the LTE predicate on the "start_date" field.
func StartDateLTE(v time.Time) predicate.Experiment {
	return predicate.Experiment(sql.FieldLTE(FieldStartDate, v))
}

// StartDateIsNil applies the IsNil predicate on the "start_date" field.
func StartDateIsNil() predicate.Experiment {
	return predicate.Experiment(sql.FieldIsNull(FieldStartDate))
}

// StartDateNotNil applies the NotNil predicate on the "start_date" field.
func StartDateNotNil() predicate.Experiment {
	return predicate.Experiment(sql.FieldNotNull(FieldStartDate))
}

// EndDateEQ applies the EQ predicate on the "end_date" field.
func EndDateEQ(v time.Time) predicate.Experiment {
	return predicate.Experiment(sql.FieldEQ(FieldEndDate, v))
}

// EndDateNEQ applies the NEQ predicate on the "end_date" field.
func EndDateNEQ(v time.Time) predicate.Experiment {
	return predicate.Experiment(sql.FieldNEQ(FieldEndDate, v))
}

// EndDateIn applies the In predicate on the "end_date" field.
func EndDateIn(vs ...time.Time) predicate.Experiment {
	return predicate.Experiment(sql.FieldIn(FieldEndDate, vs...))
}

// EndDateNotIn applies the NotIn predicate on the "end_date" field.
func EndDateNotIn(vs ...time.Time) predicate.Experiment {
	return predicate.Experiment(sql.FieldNotIn(FieldEndDate, vs...))
}

// EndDateGT applies the GT predicate on the "end_date" field.
func EndDateGT(v time.Time) predicate.Experiment {
	return predicate.Experiment(sql.FieldGT(FieldEndDate, v))
}

// EndDateGTE applies the GTE predicate on the "end_date" field.
func EndDateGTE(v time.Time) predicate.Experiment {
	return predicate.Experiment(sql.FieldGTE(FieldEndDate, v))
}

// EndDateLT applies the LT predicate on the "end_date" field.
func EndDateLT(v time.Time) predicate.Experiment {
	return predicate.Experiment(sql.FieldLT(FieldEndDate, v))
}

// EndDateLTE applies the LTE predicate on the "end_date" field.
func EndDateLTE(v time.Time) predicate.Experiment {
	return predicate.Experiment(sql.FieldLTE(FieldEndDate, v))
}

// EndDateIsNil applies the IsNil predicate on the "end_date" field.
func EndDateIsNil() predicate.Experiment {
	return predicate.Experiment(sql.FieldIsNull(FieldEndDate))
}

// EndDateNotNil applies the NotNil predicate on the "end_date" field.
func EndDateNotNil() predicate.Experiment {
	return predicate.Experiment(sql.FieldNotNull(FieldEndDate))
}

// HypothesisEQ applies the EQ predicate on the "hypothesis" field.
func HypothesisEQ(v string) predicate.Experiment {
	return predicate.Experiment(sql.FieldEQ(FieldHypothesis, v))
}

// HypothesisNEQ applies the NEQ predicate on the "hypothesis" field.
func HypothesisNEQ(v string) predicate.Experiment {
	return predicate.Experiment(sql.FieldNEQ(FieldHypothesis, v))
}

// HypothesisIn applies the In predicate on the "hypothesis" field.
func HypothesisIn(vs ...string) predicate.Experiment {
	return predicate.Experiment(sql.FieldIn(FieldHypothesis, vs...))
}

// HypothesisNotIn applies the NotIn predicate on the "hypothesis" field.
func HypothesisNotIn(vs ...string) predicate.Experiment {
	return predicate.Experiment(sql.FieldNotIn(FieldHypothesis, vs...))
}

// HypothesisGT applies the GT predicate on the "hypothesis" field.
func HypothesisGT(v string) predicate.Experiment {
	return predicate.Experiment(sql.FieldGT(FieldHypothesis, v))
}

// HypothesisGTE applies the GTE predicate on the "hypothesis" field.
func HypothesisGTE(v string) predicate.Experiment {
	return predicate.Experiment(sql.FieldGTE(FieldHypothesis, v))
}

// HypothesisLT applies the LT predicate on the "hypothesis" field.
func HypothesisLT(v string) predicate.Experiment {
	return predicate.Experiment(sql.FieldLT(FieldHypothesis, v))
}

// HypothesisLTE applies the LTE predicate on the "hypothesis" field.
func HypothesisLTE(v string) predicate.Experiment {
	return predicate.Experiment(sql.FieldLTE(FieldHypothesis, v))
}

// HypothesisContains applies the Contains predicate on the "hypothesis" field.
func HypothesisContains(v string) predicate.Experiment {
	return predicate.Experiment(sql.FieldContains(FieldHypothesis, v))
}

// HypothesisHasPrefix applies the HasPrefix predicate on the "hypothesis" field.
func HypothesisHasPrefix(v string) predicate.Experiment {
	return predicate.Experiment(sql.FieldHasPrefix(FieldHypothesis, v))
}

// HypothesisHasSuffix applies the HasSuffix predicate on the "hypothesis" field.
func HypothesisHasSuffix(v string) predicate.Experiment {
	return predicate.Experiment(sql.FieldHasSuffix(FieldHypothesis, v))
}

// HypothesisIsNil applies the IsNil predicate on the "hypothesis" field.
func HypothesisIsNil() predicate.Experiment {
	return predicate.Experiment(sql.FieldIsNull(FieldHypothesis))
}

// HypothesisNotNil applies the NotNil predicate on the "hypothesis" field.
func HypothesisNotNil() predicate.Experiment {
	return predicate.Experiment(sql.FieldNotNull(FieldHypothesis))
}

// HypothesisEqualFold applies the EqualFold predicate on the "hypothesis" field.
func HypothesisEqualFold(v string) predicate.Experiment {
	return predicate.Experiment(sql.FieldEqualFold(FieldHypothesis, v))
}

// HypothesisContainsFold applies the ContainsFold predicate on the "hypothesis" field.
func HypothesisContainsFold(v string) predicate.Experiment {
	return predicate.Experiment(sql.FieldContainsFold(FieldHypothesis, v))
}

// PrimaryMetricEQ applies the EQ predicate on the "primary_metric" field.
func PrimaryMetricEQ(v string) predicate.Experiment {
	return predicate.Experiment(sql.FieldEQ(FieldPrimaryMetric, v))
}

// PrimaryMetricNEQ applies the NEQ predicate on the "primary_metric" field.
func PrimaryMetricNEQ(v string) predicate.Experiment {
	return predicate.Experiment(sql.FieldNEQ(FieldPrimaryMetric, v))
}

// PrimaryMetricIn applies the In predicate on the "primary_metric" field.
func PrimaryMetricIn(vs ...string) predicate.Experiment {
	return predicate.Experiment(sql.FieldIn(FieldPrimaryMetric, vs...))
}

// PrimaryMetricNotIn applies the NotIn predicate on the "primary_metric" field.
func PrimaryMetricNotIn(vs ...string) predicate.Experiment {
	return predicate.Experiment(sql.FieldNotIn(FieldPrimaryMetric, vs...))
}

// PrimaryMetricGT applies the GT predicate on the "primary_metric" field.
func PrimaryMetricGT(v string) predicate.Experiment {
	return predicate.Experiment(sql.FieldGT(FieldPrimaryMetric, v))
}

// PrimaryMetricGTE applies the GTE predicate on the "primary_metric" field.
func PrimaryMetricGTE(v string) predicate.Experiment {
	return predicate.Experiment(sql.FieldGTE(FieldPrimaryMetric, v))
}

// PrimaryMetricLT applies the LT predicate on the "primary_metric" field.
func PrimaryMetricLT(v string) predicate.Experiment {
	return predicate.Experiment(sql.FieldLT(FieldPrimaryMetric, v))
}

// PrimaryMetricLTE applies the LTE predicate on the "primary_metric" field.
func PrimaryMetricLTE(v string) predicate.Experiment {
	return predicate.Experiment(sql.FieldLTE(FieldPrimaryMetric, v))
}

// PrimaryMetricContains applies the Contains predicate on the "primary_metric" field.
func PrimaryMetricContains(v string) predicate.Experiment {
	return predicate.Experiment(sql.FieldContains(FieldPrimaryMetric, v))
}

// PrimaryMetricHasPrefix applies the HasPrefix predicate on the "primary_metric" field.
func PrimaryMetricHasPrefix(v string) predicate.Experiment {
	return predicate.Experiment(sql.FieldHasPrefix(FieldPrimaryMetric, v))
}

// PrimaryMetricHasSuffix applies the HasSuffix predicate on the "primary_metric" field.
func PrimaryMetricHasSuffix(v string) predicate.Experiment {
	return predicate.Experiment(sql.FieldHasSuffix(FieldPrimaryMetric, v))
}

// PrimaryMetricIsNil applies the IsNil predicate on the "primary_metric" field.
func PrimaryMetricIsNil() predicate.Experiment {
	return predicate.Experiment(sql.FieldIsNull(FieldPrimaryMetric))
}

// PrimaryMetricNotNil applies the NotNil predicate on the "primary_metric" field.
func PrimaryMetricNotNil() predicate.Experiment {
	return predicate.Experiment(sql.FieldNotNull(FieldPrimaryMetric))
}

// PrimaryMetricEqualFold applies the EqualFold predicate on the "primary_metric" field.
func PrimaryMetricEqualFold(v string) predicate.Experiment {
	return predicate.Experiment(sql.FieldEqualFold(FieldPrimaryMetric, v))
}

// PrimaryMetricContainsFold applies the ContainsFold predicate on the "primary_metric" field.
func PrimaryMetricContainsFold(v string) predicate.Experiment {
	return predicate.Experiment(sql.FieldContainsFold(FieldPrimaryMetric, v))
}

// SecondaryMetricsIsNil applies the IsNil predicate on the "secondary_metrics" field.
func SecondaryMetricsIsNil() predicate.Experiment {
	return predicate.Experiment(sql.FieldIsNull(FieldSecondaryMetrics))
}

// SecondaryMetricsNotNil applies the NotNil predicate on the "secondary_metrics" field.
func SecondaryMetricsNotNil() predicate.Experiment {
	return predicate.Experiment(sql.FieldNotNull(FieldSecondaryMetrics))
}

// SegmentationIsNil applies the IsNil predicate on the "segmentation" field.
func SegmentationIsNil() predicate.Experiment {
	return predicate.Experiment(sql.FieldIsNull(FieldSegmentation))
}

// SegmentationNotNil applies the NotNil predicate on the "segmentation" field.
func SegmentationNotNil() predicate.Experiment {
	return predicate.Experiment(sql.FieldNotNull(FieldSegmentation))
}

// MinDetectableEffectEQ applies the EQ predicate on the "min_detectable_effect" field.
func MinDetectableEffectEQ(v float64) predicate.Experiment {
	return predicate.Experiment(sql.FieldEQ(FieldMinDetectableEffect, v))
}

// MinDetectableEffectNEQ applies the NEQ predicate on the "min_detectable_effect" field.
func MinDetectableEffectNEQ(v float64) predicate.Experiment {
	return predicate.Experiment(sql.FieldNEQ(FieldMinDetectableEffect, v))
}

// MinDetectableEffectIn applies the In predicate on the "min_detectable_effect" field.
func MinDetectableEffectIn(vs ...float64) predicate.Experiment {
	return predicate.Experiment(sql.FieldIn(FieldMinDetectableEffect, vs...))
}

// MinDetectableEffectNotIn applies the NotIn predicate on the "min_detectable_effect" field.
func MinDetectableEffectNotIn(vs ...float64) predicate.Experiment {
	return predicate.Experiment(sql.FieldNotIn(FieldMinDetectableEffect, vs...))
}

// MinDetectableEffectGT applies the GT predicate on the "min_detectable_effect" field.
func MinDetectableEffectGT(v float64) predicate.Experiment {
	return predicate.Experiment(sql.FieldGT(FieldMinDetectableEffect, v))
}

// MinDetectableEffectGTE applies the GTE predicate on the "min_detectable_effect" field.
func MinDetectableEffectGTE(v float64) predicate.Experiment {
	return predicate.Experiment(sql.FieldGTE(FieldMinDetectableEffect, v))
}

// MinDetectableEffectLT applies the LT predicate on the "min_detectable_effect" field.
func MinDetectableEffectLT(v float64) predicate.Experiment {
	return predicate.Experiment(sql.FieldLT(FieldMinDetectableEffect, v))
}

// MinDetectableEffectLTE applies the LTE predicate on the "min_detectable_effect" field.
func MinDetectableEffectLTE(v float64) predicate.Experiment {
	return predicate.Experiment(sql.FieldLTE(FieldMinDetectableEffect, v))
}

// MinDetectableEffectIsNil applies the IsNil predicate on the "min_detectable_effect" field.
func MinDetectableEffectIsNil() predicate.Experiment {
	return predicate.Experiment(sql.FieldIsNull(FieldMinDetectableEffect))
}

// MinDetectableEffectNotNil applies the NotNil predicate on the "min_detectable_effect" field.
func MinDetectableEffectNotNil() predicate.Experiment {
	return predicate.Experiment(sql.FieldNotNull(FieldMinDetectableEffect))
}

// HasWinnerEQ applies the EQ predicate on the "has_winner" field.
func HasWinnerEQ(v bool) predicate.Experiment {
	return predicate.Experiment(sql.FieldEQ(FieldHasWinner, v))
}

// HasWinnerNEQ applies the NEQ predicate on the "has_winner" field.
func HasWinnerNEQ(v bool) predicate.Experiment {
	return predicate.Experiment(sql.FieldNEQ(FieldHasWinner, v))
}

// WinningVariantIDEQ applies the EQ predicate on the "winning_variant_id" field.
func WinningVariantIDEQ(v int) predicate.Experiment {
	return predicate.Experiment(sql.FieldEQ(FieldWinningVariantID, v))
}

// WinningVariantIDNEQ applies the NEQ predicate on the "winning_variant_id" field.
func WinningVariantIDNEQ(v int) predicate.Experiment {
	return predicate.Experiment(sql.FieldNEQ(FieldWinningVariantID, v))
}

// WinningVariantIDIn applies the In predicate on the "winning_variant_id" field.
func WinningVariantIDIn(vs ...int) predicate.Experiment {
	return predicate.Experiment(sql.FieldIn(FieldWinningVariantID, vs...))
}

// WinningVariantIDNotIn applies the NotIn predicate on the "winning_variant_id" field.
func WinningVariantIDNotIn(vs ...int) predicate.Experiment {
	return predicate.Experiment(sql.FieldNotIn(FieldWinningVariantID, vs...))
}

// WinningVariantIDGT applies the GT predicate on the "winning_variant_id" field.
func WinningVariantIDGT(v int) predicate.Experiment {
	return predicate.Experiment(sql.FieldGT(FieldWinningVariantID, v))
}

// WinningVariantIDGTE applies the GTE predicate on the "winning_variant_id" field.
func WinningVariantIDGTE(v int) predicate.Experiment {
	return predicate.Experiment(sql.FieldGTE(FieldWinningVariantID, v))
}

// WinningVariantIDLT applies the LT predicate on the "winning_variant_id" field.
func WinningVariantIDLT(v int) predicate.Experiment {
	return predicate.Experiment(sql.FieldLT(FieldWinningVariantID, v))
}

// WinningVariantIDLTE applies the LTE predicate on the "winning_variant_id" field.
func WinningVariantIDLTE(v int) predicate.Experiment {
	return predicate.Experiment(sql.FieldLTE(FieldWinningVariantID, v))
}

// WinningVariantIDIsNil applies the IsNil predicate on the "winning_variant_id" field.
func WinningVariantIDIsNil() predicate.Experiment {
	return predicate.Experiment(sql.FieldIsNull(FieldWinningVariantID))
}

// WinningVariantIDNotNil applies the NotNil predicate on the "winning_variant_id" field.
func WinningVariantIDNotNil() predicate.Experiment {
	return predicate.Experiment(sql.FieldNotNull(FieldWinningVariantID))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Experiment {
	return predicate.Experiment(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Experiment {
	return predicate.Experiment(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Experiment {
	return predicate.Experiment(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Experiment {
	return predicate.Experiment(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Experiment {
	return predicate.Experiment(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Experiment {
	return predicate.Experiment(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Experiment {
	return predicate.Experiment(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Experiment {
	return predicate.Experiment(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Experiment {
	return predicate.Experiment(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Experiment {
	return predicate.Experiment(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Experiment {
	return predicate.Experiment(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Experiment {
	return predicate.Experiment(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Experiment {
	return predicate.Experiment(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Experiment {
	return predicate.Experiment(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Experiment {
	return predicate.Experiment(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Experiment {
	return predicate.Experiment(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasVariants applies the HasEdge predicate on the "variants" edge.
func HasVariants() predicate.Experiment {
	return predicate.Experiment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, VariantsTable, VariantsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasVariantsWith applies the HasEdge predicate on the "variants" edge with a given conditions (other predicates).
func HasVariantsWith(preds ...predicate.ExperimentVariant) predicate.Experiment {
	return predicate.Experiment(func(s *sql.Selector) {
		step := newVariantsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAssignments applies the HasEdge predicate on the "assignments" edge.
func HasAssignments() predicate.Experiment {
	return predicate.Experiment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AssignmentsTable, AssignmentsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAssignmentsWith applies the HasEdge predicate on the "assignments" edge with a given conditions (other predicates).
func HasAssignmentsWith(preds ...predicate.ExperimentAssignment) predicate.Experiment {
	return predicate.Experiment(func(s *sql.Selector) {
		step := newAssignmentsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Experiment) predicate.Experiment {
	return predicate.Experiment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Experiment) predicate.Experiment {
	return predicate.Experiment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Experiment) predicate.Experiment {
	return predicate.Experiment(sql.NotPredicates(p))
}
