// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/variantlab/abtest/ent/experiment"
	"github.com/variantlab/abtest/ent/experimentassignment"
	"github.com/variantlab/abtest/ent/experimentvariant"
)

// ExperimentAssignment is the model entity for the ExperimentAssignment schema.
type ExperimentAssignment struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Experiment this assignment belongs to
	ExperimentID int `json:"experiment_id,omitempty"`
	// Authenticated visitor identity (null for anonymous sessions)
	UserID string `json:"user_id,omitempty"`
	// Anonymous session identity (null when user_id is set)
	SessionID string `json:"session_id,omitempty"`
	// Variant the visitor was bucketed into
	VariantID int `json:"variant_id,omitempty"`
	// Set once when the visitor first sees the variant
	HasImpression bool `json:"has_impression,omitempty"`
	// Set once on the visitor's first interaction
	HasInteraction bool `json:"has_interaction,omitempty"`
	// Set once on the visitor's first conversion
	HasConversion bool `json:"has_conversion,omitempty"`
	// Opaque assignment metadata
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	// Assignment timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ExperimentAssignmentQuery when eager-loading is set.
	Edges        ExperimentAssignmentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ExperimentAssignmentEdges holds the relations/edges for other nodes in the graph.
type ExperimentAssignmentEdges struct {
	// Experiment this assignment belongs to
	Experiment *Experiment `json:"experiment,omitempty"`
	// Assigned variant
	Variant *ExperimentVariant `json:"variant,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ExperimentOrErr returns the Experiment value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExperimentAssignmentEdges) ExperimentOrErr() (*Experiment, error) {
	if e.Experiment != nil {
		return e.Experiment, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: experiment.Label}
	}
	return nil, &NotLoadedError{edge: "experiment"}
}

// VariantOrErr returns the Variant value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExperimentAssignmentEdges) VariantOrErr() (*ExperimentVariant, error) {
	if e.Variant != nil {
		return e.Variant, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: experimentvariant.Label}
	}
	return nil, &NotLoadedError{edge: "variant"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExperimentAssignment) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case experimentassignment.FieldMetadata:
			values[i] = new([]byte)
		case experimentassignment.FieldHasImpression, experimentassignment.FieldHasInteraction, experimentassignment.FieldHasConversion:
			values[i] = new(sql.NullBool)
		case experimentassignment.FieldID, experimentassignment.FieldExperimentID, experimentassignment.FieldVariantID:
			values[i] = new(sql.NullInt64)
		case experimentassignment.FieldUserID, experimentassignment.FieldSessionID:
			values[i] = new(sql.NullString)
		case experimentassignment.FieldCreatedAt, experimentassignment.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExperimentAssignment fields.
func (_m *ExperimentAssignment) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case experimentassignment.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case experimentassignment.FieldExperimentID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field experiment_id", values[i])
			} else if value.Valid {
				_m.ExperimentID = int(value.Int64)
			}
		case experimentassignment.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case experimentassignment.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case experimentassignment.FieldVariantID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field variant_id", values[i])
			} else if value.Valid {
				_m.VariantID = int(value.Int64)
			}
		case experimentassignment.FieldHasImpression:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field has_impression", values[i])
			} else if value.Valid {
				_m.HasImpression = value.Bool
			}
		case experimentassignment.FieldHasInteraction:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field has_interaction", values[i])
			} else if value.Valid {
				_m.HasInteraction = value.Bool
			}
		case experimentassignment.FieldHasConversion:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field has_conversion", values[i])
			} else if value.Valid {
				_m.HasConversion = value.Bool
			}
		case experimentassignment.FieldMetadata:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metadata); err != nil {
					return fmt.Errorf("unmarshal field metadata: %w", err)
				}
			}
		case experimentassignment.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case experimentassignment.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ExperimentAssignment.
// This includes values selected through modifiers, order, etc.
func (_m *ExperimentAssignment) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryExperiment queries the "experiment" edge of the ExperimentAssignment entity.
func (_m *ExperimentAssignment) QueryExperiment() *ExperimentQuery {
	return NewExperimentAssignmentClient(_m.config).QueryExperiment(_m)
}

// QueryVariant queries the "variant" edge of the ExperimentAssignment entity.
func (_m *ExperimentAssignment) QueryVariant() *ExperimentVariantQuery {
	return NewExperimentAssignmentClient(_m.config).QueryVariant(_m)
}

// Update returns a builder for updating this ExperimentAssignment.
// Note that you need to call ExperimentAssignment.Unwrap() before calling this method if this ExperimentAssignment
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExperimentAssignment) Update() *ExperimentAssignmentUpdateOne {
	return NewExperimentAssignmentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExperimentAssignment entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExperimentAssignment) Unwrap() *ExperimentAssignment {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExperimentAssignment is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExperimentAssignment) String() string {
	var builder strings.Builder
	builder.WriteString("ExperimentAssignment(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("experiment_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExperimentID))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("variant_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.VariantID))
	builder.WriteString(", ")
	builder.WriteString("has_impression=")
	builder.WriteString(fmt.Sprintf("%v", _m.HasImpression))
	builder.WriteString(", ")
	builder.WriteString("has_interaction=")
	builder.WriteString(fmt.Sprintf("%v", _m.HasInteraction))
	builder.WriteString(", ")
	builder.WriteString("has_conversion=")
	builder.WriteString(fmt.Sprintf("%v", _m.HasConversion))
	builder.WriteString(", ")
	builder.WriteString("metadata=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metadata))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ExperimentAssignments is a parsable slice of ExperimentAssignment.
type ExperimentAssignments []*ExperimentAssignment
