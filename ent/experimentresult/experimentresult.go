// Code generated by ent, DO NOT EDIT.

package experimentresult

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the experimentresult type in the database.
	Label = "experiment_result"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldVariantID holds the string denoting the variant_id field in the database.
	FieldVariantID = "variant_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldResultType holds the string denoting the result_type field in the database.
	FieldResultType = "result_type"
	// FieldValue holds the string denoting the value field in the database.
	FieldValue = "value"
	// FieldContext holds the string denoting the context field in the database.
	FieldContext = "context"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeVariant holds the string denoting the variant edge name in mutations.
	EdgeVariant = "variant"
	// Table holds the table name of the experimentresult in the database.
	Table = "experiment_results"
	// VariantTable is the table that holds the variant relation/edge.
	VariantTable = "experiment_results"
	// VariantInverseTable is the table name for the ExperimentVariant entity.
	// It exists in this package in order to avoid circular dependency with the "experimentvariant" package.
	VariantInverseTable = "experiment_variants"
	// VariantColumn is the table column denoting the variant relation/edge.
	VariantColumn = "variant_id"
)

// Columns holds all SQL columns for experimentresult fields.
var Columns = []string{
	FieldID,
	FieldVariantID,
	FieldUserID,
	FieldSessionID,
	FieldResultType,
	FieldValue,
	FieldContext,
	FieldMetadata,
	FieldCreatedAt,
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
	// ContextValidator is a validator for the "context" field. It is called by the builders before save.
	ContextValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// ResultType defines the type for the "result_type" enum field.
type ResultType string

// ResultType values.
const (
	ResultTypeImpression ResultType = "impression"
	ResultTypeClick      ResultType = "click"
	ResultTypeConversion ResultType = "conversion"
	ResultTypeRevenue    ResultType = "revenue"
	ResultTypeEngagement ResultType = "engagement"
	ResultTypeCustom     ResultType = "custom"
)

func (rt ResultType) String() string {
	return string(rt)
}

// ResultTypeValidator is a validator for the "result_type" field enum values. It is called by the builders before save.
func ResultTypeValidator(rt ResultType) error {
	switch rt {
	case ResultTypeImpression, ResultTypeClick, ResultTypeConversion, ResultTypeRevenue, ResultTypeEngagement, ResultTypeCustom:
		return nil
	default:
		return fmt.Errorf("experimentresult: invalid enum value for result_type field: %q", rt)
	}
}

// OrderOption defines the ordering options for the ExperimentResult queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByVariantID orders the results by the variant_id field.
func ByVariantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVariantID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByResultType orders the results by the result_type field.
func ByResultType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResultType, opts...).ToFunc()
}

// ByValue orders the results by the value field.
func ByValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValue, opts...).ToFunc()
}

// ByContext orders the results by the context field.
func ByContext(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContext, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByVariantField orders the results by variant field.
func ByVariantField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newVariantStep(), sql.OrderByField(field, opts...))
	}
}
func newVariantStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(VariantInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, VariantTable, VariantColumn),
	)
}
