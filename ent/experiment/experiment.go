// Code generated by ent, DO NOT EDIT.

package experiment

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the experiment type in the database.
	Label = "experiment"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldType holds the string denoting the type field in the database.
	FieldType = "type"
	// FieldTargetAudience holds the string denoting the target_audience field in the database.
	FieldTargetAudience = "target_audience"
	// FieldAudiencePercentage holds the string denoting the audience_percentage field in the database.
	FieldAudiencePercentage = "audience_percentage"
	// FieldStartDate holds the string denoting the start_date field in the database.
	FieldStartDate = "start_date"
	// FieldEndDate holds the string denoting the end_date field in the database.
	FieldEndDate = "end_date"
	// FieldHypothesis holds the string denoting the hypothesis field in the database.
	FieldHypothesis = "hypothesis"
	// FieldPrimaryMetric holds the string denoting the primary_metric field in the database.
	FieldPrimaryMetric = "primary_metric"
	// FieldSecondaryMetrics holds the string denoting the secondary_metrics field in the database.
	FieldSecondaryMetrics = "secondary_metrics"
	// FieldSegmentation holds the string denoting the segmentation field in the database.
	FieldSegmentation = "segmentation"
	// FieldMinDetectableEffect holds the string denoting the min_detectable_effect field in the database.
	FieldMinDetectableEffect = "min_detectable_effect"
	// FieldHasWinner holds the string denoting the has_winner field in the database.
	FieldHasWinner = "has_winner"
	// FieldWinningVariantID holds the string denoting the winning_variant_id field in the database.
	FieldWinningVariantID = "winning_variant_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeVariants holds the string denoting the variants edge name in mutations.
	EdgeVariants = "variants"
	// EdgeAssignments holds the string denoting the assignments edge name in mutations.
	EdgeAssignments = "assignments"
	// Table holds the table name of the experiment in the database.
	Table = "experiments"
	// VariantsTable is the table that holds the variants relation/edge.
	VariantsTable = "experiment_variants"
	// VariantsInverseTable is the table name for the ExperimentVariant entity.
	// It exists in this package in order to avoid circular dependency with the "experimentvariant" package.
	VariantsInverseTable = "experiment_variants"
	// VariantsColumn is the table column denoting the variants relation/edge.
	VariantsColumn = "experiment_id"
	// AssignmentsTable is the table that holds the assignments relation/edge.
	AssignmentsTable = "experiment_assignments"
	// AssignmentsInverseTable is the table name for the ExperimentAssignment entity.
	// It exists in this package in order to avoid circular dependency with the "experimentassignment" package.
	AssignmentsInverseTable = "experiment_assignments"
	// AssignmentsColumn is the table column denoting the assignments relation/edge.
	AssignmentsColumn = "experiment_id"
)

// Columns holds all SQL columns for experiment fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldDescription,
	FieldStatus,
	FieldType,
	FieldTargetAudience,
	FieldAudiencePercentage,
	FieldStartDate,
	FieldEndDate,
	FieldHypothesis,
	FieldPrimaryMetric,
	FieldSecondaryMetrics,
	FieldSegmentation,
	FieldMinDetectableEffect,
	FieldHasWinner,
	FieldWinningVariantID,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// TargetAudienceValidator is a validator for the "target_audience" field. It is called by the builders before save.
	TargetAudienceValidator func(string) error
	// AudiencePercentageValidator is a validator for the "audience_percentage" field. It is called by the builders before save.
	AudiencePercentageValidator func(float64) error
	// DefaultHasWinner holds the default value on creation for the "has_winner" field.
	DefaultHasWinner bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusDraft is the default value of the Status enum.
const DefaultStatus = StatusDraft

// Status values.
const (
	StatusDraft     Status = "draft"
	StatusRunning   Status = "running"
	StatusPaused    Status = "paused"
	StatusCompleted Status = "completed"
	StatusArchived  Status = "archived"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusDraft, StatusRunning, StatusPaused, StatusCompleted, StatusArchived:
		return nil
	default:
		return fmt.Errorf("experiment: invalid enum value for status field: %q", s)
	}
}

// Type defines the type for the "type" enum field.
type Type string

// Type values.
const (
	TypeSearchAlgorithm Type = "search_algorithm"
	TypeUIComponent     Type = "ui_component"
	TypePersonalization Type = "personalization"
	TypeRecommendation  Type = "recommendation"
	TypePricing         Type = "pricing"
	TypeContent         Type = "content"
	TypeFeatureFlag     Type = "feature_flag"
)

func (_type Type) String() string {
	return string(_type)
}

// TypeValidator is a validator for the "type" field enum values. It is called by the builders before save.
func TypeValidator(_type Type) error {
	switch _type {
	case TypeSearchAlgorithm, TypeUIComponent, TypePersonalization, TypeRecommendation, TypePricing, TypeContent, TypeFeatureFlag:
		return nil
	default:
		return fmt.Errorf("experiment: invalid enum value for type field: %q", _type)
	}
}

// OrderOption defines the ordering options for the Experiment queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByType orders the results by the type field.
func ByType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldType, opts...).ToFunc()
}

// ByTargetAudience orders the results by the target_audience field.
func ByTargetAudience(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTargetAudience, opts...).ToFunc()
}

// ByAudiencePercentage orders the results by the audience_percentage field.
func ByAudiencePercentage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAudiencePercentage, opts...).ToFunc()
}

// ByStartDate orders the results by the start_date field.
func ByStartDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartDate, opts...).ToFunc()
}

// ByEndDate orders the results by the end_date field.
func ByEndDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndDate, opts...).ToFunc()
}

// ByHypothesis orders the results by the hypothesis field.
func ByHypothesis(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHypothesis, opts...).ToFunc()
}

// ByPrimaryMetric orders the results by the primary_metric field.
func ByPrimaryMetric(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrimaryMetric, opts...).ToFunc()
}

// ByMinDetectableEffect orders the results by the min_detectable_effect field.
func ByMinDetectableEffect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMinDetectableEffect, opts...).ToFunc()
}

// ByHasWinner orders the results by the has_winner field.
func ByHasWinner(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHasWinner, opts...).ToFunc()
}

// ByWinningVariantID orders the results by the winning_variant_id field.
func ByWinningVariantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWinningVariantID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByVariantsCount orders the results by variants count.
func ByVariantsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newVariantsStep(), opts...)
	}
}

// ByVariants orders the results by variants terms.
func ByVariants(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newVariantsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAssignmentsCount orders the results by assignments count.
func ByAssignmentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAssignmentsStep(), opts...)
	}
}

// ByAssignments orders the results by assignments terms.
func ByAssignments(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAssignmentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newVariantsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(VariantsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, VariantsTable, VariantsColumn),
	)
}
func newAssignmentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AssignmentsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AssignmentsTable, AssignmentsColumn),
	)
}
