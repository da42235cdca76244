// Code generated by ent, DO NOT EDIT.

package experimentassignment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the experimentassignment type in the database.
	Label = "experiment_assignment"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldExperimentID holds the string denoting the experiment_id field in the database.
	FieldExperimentID = "experiment_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldVariantID holds the string denoting the variant_id field in the database.
	FieldVariantID = "variant_id"
	// FieldHasImpression holds the string denoting the has_impression field in the database.
	FieldHasImpression = "has_impression"
	// FieldHasInteraction holds the string denoting the has_interaction field in the database.
	FieldHasInteraction = "has_interaction"
	// FieldHasConversion holds the string denoting the has_conversion field in the database.
	FieldHasConversion = "has_conversion"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeExperiment holds the string denoting the experiment edge name in mutations.
	EdgeExperiment = "experiment"
	// EdgeVariant holds the string denoting the variant edge name in mutations.
	EdgeVariant = "variant"
	// Table holds the table name of the experimentassignment in the database.
	Table = "experiment_assignments"
	// ExperimentTable is the table that holds the experiment relation/edge.
	ExperimentTable = "experiment_assignments"
	// ExperimentInverseTable is the table name for the Experiment entity.
	// It exists in this package in order to avoid circular dependency with the "experiment" package.
	ExperimentInverseTable = "experiments"
	// ExperimentColumn is the table column denoting the experiment relation/edge.
	ExperimentColumn = "experiment_id"
	// VariantTable is the table that holds the variant relation/edge.
	VariantTable = "experiment_assignments"
	// VariantInverseTable is the table name for the ExperimentVariant entity.
	// It exists in this package in order to avoid circular dependency with the "experimentvariant" package.
	VariantInverseTable = "experiment_variants"
	// VariantColumn is the table column denoting the variant relation/edge.
	VariantColumn = "variant_id"
)

// Columns holds all SQL columns for experimentassignment fields.
var Columns = []string{
	FieldID,
	FieldExperimentID,
	FieldUserID,
	FieldSessionID,
	FieldVariantID,
	FieldHasImpression,
	FieldHasInteraction,
	FieldHasConversion,
	FieldMetadata,
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
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// DefaultHasImpression holds the default value on creation for the "has_impression" field.
	DefaultHasImpression bool
	// DefaultHasInteraction holds the default value on creation for the "has_interaction" field.
	DefaultHasInteraction bool
	// DefaultHasConversion holds the default value on creation for the "has_conversion" field.
	DefaultHasConversion bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the ExperimentAssignment queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByExperimentID orders the results by the experiment_id field.
func ByExperimentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExperimentID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByVariantID orders the results by the variant_id field.
func ByVariantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVariantID, opts...).ToFunc()
}

// ByHasImpression orders the results by the has_impression field.
func ByHasImpression(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHasImpression, opts...).ToFunc()
}

// ByHasInteraction orders the results by the has_interaction field.
func ByHasInteraction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHasInteraction, opts...).ToFunc()
}

// ByHasConversion orders the results by the has_conversion field.
func ByHasConversion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHasConversion, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByExperimentField orders the results by experiment field.
func ByExperimentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newExperimentStep(), sql.OrderByField(field, opts...))
	}
}

// ByVariantField orders the results by variant field.
func ByVariantField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newVariantStep(), sql.OrderByField(field, opts...))
	}
}
func newExperimentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ExperimentInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ExperimentTable, ExperimentColumn),
	)
}
func newVariantStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(VariantInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, VariantTable, VariantColumn),
	)
}
