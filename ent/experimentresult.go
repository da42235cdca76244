// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/variantlab/abtest/ent/experimentresult"
	"github.com/variantlab/abtest/ent/experimentvariant"
)

// ExperimentResult is the model entity for the ExperimentResult schema.
type ExperimentResult struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Variant the event was recorded against
	VariantID int `json:"variant_id,omitempty"`
	// Visitor user identity, if known
	UserID string `json:"user_id,omitempty"`
	// Visitor session identity, if known
	SessionID string `json:"session_id,omitempty"`
	// Kind of tracked event
	ResultType experimentresult.ResultType `json:"result_type,omitempty"`
	// Numeric value, meaningful for revenue and custom events
	Value *float64 `json:"value,omitempty"`
	// Where the event happened (e.g., search_results, product_page)
	Context string `json:"context,omitempty"`
	// Opaque event metadata
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// Event timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ExperimentResultQuery when eager-loading is set.
	Edges        ExperimentResultEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ExperimentResultEdges holds the relations/edges for other nodes in the graph.
type ExperimentResultEdges struct {
	// Variant the event belongs to
	Variant *ExperimentVariant `json:"variant,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// VariantOrErr returns the Variant value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExperimentResultEdges) VariantOrErr() (*ExperimentVariant, error) {
	if e.Variant != nil {
		return e.Variant, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: experimentvariant.Label}
	}
	return nil, &NotLoadedError{edge: "variant"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExperimentResult) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case experimentresult.FieldMetadata:
			values[i] = new([]byte)
		case experimentresult.FieldValue:
			values[i] = new(sql.NullFloat64)
		case experimentresult.FieldID, experimentresult.FieldVariantID:
			values[i] = new(sql.NullInt64)
		case experimentresult.FieldUserID, experimentresult.FieldSessionID, experimentresult.FieldResultType, experimentresult.FieldContext:
			values[i] = new(sql.NullString)
		case experimentresult.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExperimentResult fields.
func (_m *ExperimentResult) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case experimentresult.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case experimentresult.FieldVariantID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field variant_id", values[i])
			} else if value.Valid {
				_m.VariantID = int(value.Int64)
			}
		case experimentresult.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case experimentresult.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case experimentresult.FieldResultType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field result_type", values[i])
			} else if value.Valid {
				_m.ResultType = experimentresult.ResultType(value.String)
			}
		case experimentresult.FieldValue:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field value", values[i])
			} else if value.Valid {
				_m.Value = new(float64)
				*_m.Value = value.Float64
			}
		case experimentresult.FieldContext:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field context", values[i])
			} else if value.Valid {
				_m.Context = value.String
			}
		case experimentresult.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case experimentresult.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// GetValue returns the ent.Value that was dynamically selected and assigned to the ExperimentResult.
// This includes values selected through modifiers, order, etc.
func (_m *ExperimentResult) GetValue(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryVariant queries the "variant" edge of the ExperimentResult entity.
func (_m *ExperimentResult) QueryVariant() *ExperimentVariantQuery {
	return NewExperimentResultClient(_m.config).QueryVariant(_m)
}

// Update returns a builder for updating this ExperimentResult.
// Note that you need to call ExperimentResult.Unwrap() before calling this method if this ExperimentResult
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExperimentResult) Update() *ExperimentResultUpdateOne {
	return NewExperimentResultClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExperimentResult entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExperimentResult) Unwrap() *ExperimentResult {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExperimentResult is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExperimentResult) String() string {
	var builder strings.Builder
	builder.WriteString("ExperimentResult(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("variant_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.VariantID))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("result_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResultType))
	builder.WriteString(", ")
	if v := _m.Value; v != nil {
		builder.WriteString("value=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("context=")
	builder.WriteString(_m.Context)
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ExperimentResults is a parsable slice of ExperimentResult.
type ExperimentResults []*ExperimentResult
