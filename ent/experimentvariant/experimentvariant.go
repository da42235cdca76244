// Code generated by ent, DO NOT EDIT.

package experimentvariant

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the experimentvariant type in the database.
	Label = "experiment_variant"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldExperimentID holds the string denoting the experiment_id field in the database.
	FieldExperimentID = "experiment_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldIsControl holds the string denoting the is_control field in the database.
	FieldIsControl = "is_control"
	// FieldIsWinner holds the string denoting the is_winner field in the database.
	FieldIsWinner = "is_winner"
	// FieldConfiguration holds the string denoting the configuration field in the database.
	FieldConfiguration = "configuration"
	// FieldConfidenceLevel holds the string denoting the confidence_level field in the database.
	FieldConfidenceLevel = "confidence_level"
	// FieldImprovementRate holds the string denoting the improvement_rate field in the database.
	FieldImprovementRate = "improvement_rate"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeExperiment holds the string denoting the experiment edge name in mutations.
	EdgeExperiment = "experiment"
	// EdgeAssignments holds the string denoting the assignments edge name in mutations.
	EdgeAssignments = "assignments"
	// EdgeResults holds the string denoting the results edge name in mutations.
	EdgeResults = "results"
	// Table holds the table name of the experimentvariant in the database.
	Table = "experiment_variants"
	// ExperimentTable is the table that holds the experiment relation/edge.
	ExperimentTable = "experiment_variants"
	// ExperimentInverseTable is the table name for the Experiment entity.
	// It exists in this package in order to avoid circular dependency with the "experiment" package.
	ExperimentInverseTable = "experiments"
	// ExperimentColumn is the table column denoting the experiment relation/edge.
	ExperimentColumn = "experiment_id"
	// AssignmentsTable is the table that holds the assignments relation/edge.
	AssignmentsTable = "experiment_assignments"
	// AssignmentsInverseTable is the table name for the ExperimentAssignment entity.
	// It exists in this package in order to avoid circular dependency with the "experimentassignment" package.
	AssignmentsInverseTable = "experiment_assignments"
	// AssignmentsColumn is the table column denoting the assignments relation/edge.
	AssignmentsColumn = "variant_id"
	// ResultsTable is the table that holds the results relation/edge.
	ResultsTable = "experiment_results"
	// ResultsInverseTable is the table name for the ExperimentResult entity.
	// It exists in this package in order to avoid circular dependency with the "experimentresult" package.
	ResultsInverseTable = "experiment_results"
	// ResultsColumn is the table column denoting the results relation/edge.
	ResultsColumn = "variant_id"
)

// Columns holds all SQL columns for experimentvariant fields.
var Columns = []string{
	FieldID,
	FieldExperimentID,
	FieldName,
	FieldDescription,
	FieldIsControl,
	FieldIsWinner,
	FieldConfiguration,
	FieldConfidenceLevel,
	FieldImprovementRate,
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
	// DefaultIsControl holds the default value on creation for the "is_control" field.
	DefaultIsControl bool
	// DefaultIsWinner holds the default value on creation for the "is_winner" field.
	DefaultIsWinner bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the ExperimentVariant queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByExperimentID orders the results by the experiment_id field.
func ByExperimentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExperimentID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByIsControl orders the results by the is_control field.
func ByIsControl(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsControl, opts...).ToFunc()
}

// ByIsWinner orders the results by the is_winner field.
func ByIsWinner(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsWinner, opts...).ToFunc()
}

// ByConfidenceLevel orders the results by the confidence_level field.
func ByConfidenceLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConfidenceLevel, opts...).ToFunc()
}

// ByImprovementRate orders the results by the improvement_rate field.
func ByImprovementRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImprovementRate, opts...).ToFunc()
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

// ByResultsCount orders the results by results count.
func ByResultsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newResultsStep(), opts...)
	}
}

// ByResults orders the results by results terms.
func ByResults(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newResultsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newExperimentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ExperimentInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ExperimentTable, ExperimentColumn),
	)
}
func newAssignmentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AssignmentsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AssignmentsTable, AssignmentsColumn),
	)
}
func newResultsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ResultsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ResultsTable, ResultsColumn),
	)
}
