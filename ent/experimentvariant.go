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
	"github.com/variantlab/abtest/ent/experimentvariant"
)

// ExperimentVariant is the model entity for the ExperimentVariant schema.
type ExperimentVariant struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Experiment this variant belongs to
	ExperimentID int `json:"experiment_id,omitempty"`
	// Variant name (e.g., control, blue_button)
	Name string `json:"name,omitempty"`
	// Variant description
	Description string `json:"description,omitempty"`
	// Whether this is the control arm
	IsControl bool `json:"is_control,omitempty"`
	// Whether this variant was declared the winner
	IsWinner bool `json:"is_winner,omitempty"`
	// Opaque configuration payload interpreted by the consuming feature
	Configuration map[string]interface{} `json:"configuration,omitempty"`
	// Latest computed confidence level vs control (percent)
	ConfidenceLevel *float64 `json:"confidence_level,omitempty"`
	// Latest computed relative conversion-rate improvement vs control
	ImprovementRate *float64 `json:"improvement_rate,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ExperimentVariantQuery when eager-loading is set.
	Edges        ExperimentVariantEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ExperimentVariantEdges holds the relations/edges for other nodes in the graph.
type ExperimentVariantEdges struct {
	// Owning experiment
	Experiment *Experiment `json:"experiment,omitempty"`
	// Assignments routed to this variant
	Assignments []*ExperimentAssignment `json:"assignments,omitempty"`
	// Tracked events recorded against this variant
	Results []*ExperimentResult `json:"results,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// ExperimentOrErr returns the Experiment value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExperimentVariantEdges) ExperimentOrErr() (*Experiment, error) {
	if e.Experiment != nil {
		return e.Experiment, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: experiment.Label}
	}
	return nil, &NotLoadedError{edge: "experiment"}
}

// AssignmentsOrErr returns the Assignments value or an error if the edge
// was not loaded in eager-loading.
func (e ExperimentVariantEdges) AssignmentsOrErr() ([]*ExperimentAssignment, error) {
	if e.loadedTypes[1] {
		return e.Assignments, nil
	}
	return nil, &NotLoadedError{edge: "assignments"}
}

// ResultsOrErr returns the Results value or an error if the edge
// was not loaded in eager-loading.
func (e ExperimentVariantEdges) ResultsOrErr() ([]*ExperimentResult, error) {
	if e.loadedTypes[2] {
		return e.Results, nil
	}
	return nil, &NotLoadedError{edge: "results"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExperimentVariant) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case experimentvariant.FieldConfiguration:
			values[i] = new([]byte)
		case experimentvariant.FieldIsControl, experimentvariant.FieldIsWinner:
			values[i] = new(sql.NullBool)
		case experimentvariant.FieldConfidenceLevel, experimentvariant.FieldImprovementRate:
			values[i] = new(sql.NullFloat64)
		case experimentvariant.FieldID, experimentvariant.FieldExperimentID:
			values[i] = new(sql.NullInt64)
		case experimentvariant.FieldName, experimentvariant.FieldDescription:
			values[i] = new(sql.NullString)
		case experimentvariant.FieldCreatedAt, experimentvariant.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExperimentVariant fields.
func (_m *ExperimentVariant) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case experimentvariant.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case experimentvariant.FieldExperimentID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field experiment_id", values[i])
			} else if value.Valid {
				_m.ExperimentID = int(value.Int64)
			}
		case experimentvariant.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case experimentvariant.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case experimentvariant.FieldIsControl:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_control", values[i])
			} else if value.Valid {
				_m.IsControl = value.Bool
			}
		case experimentvariant.FieldIsWinner:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_winner", values[i])
			} else if value.Valid {
				_m.IsWinner = value.Bool
			}
		case experimentvariant.FieldConfiguration:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field configuration", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Configuration); err != nil {
					return fmt.Errorf("unmarshal field configuration: %w", err)
				}
			}
		case experimentvariant.FieldConfidenceLevel:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence_level", values[i])
			} else if value.Valid {
				_m.ConfidenceLevel = new(float64)
				*_m.ConfidenceLevel = value.Float64
			}
		case experimentvariant.FieldImprovementRate:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field improvement_rate", values[i])
			} else if value.Valid {
				_m.ImprovementRate = new(float64)
				*_m.ImprovementRate = value.Float64
			}
		case experimentvariant.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case experimentvariant.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ExperimentVariant.
// This includes values selected through modifiers, order, etc.
func (_m *ExperimentVariant) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryExperiment queries the "experiment" edge of the ExperimentVariant entity.
func (_m *ExperimentVariant) QueryExperiment() *ExperimentQuery {
	return NewExperimentVariantClient(_m.config).QueryExperiment(_m)
}

// QueryAssignments queries the "assignments" edge of the ExperimentVariant entity.
func (_m *ExperimentVariant) QueryAssignments() *ExperimentAssignmentQuery {
	return NewExperimentVariantClient(_m.config).QueryAssignments(_m)
}

// QueryResults queries the "results" edge of the ExperimentVariant entity.
func (_m *ExperimentVariant) QueryResults() *ExperimentResultQuery {
	return NewExperimentVariantClient(_m.config).QueryResults(_m)
}

// Update returns a builder for updating this ExperimentVariant.
// Note that you need to call ExperimentVariant.Unwrap() before calling this method if this ExperimentVariant
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExperimentVariant) Update() *ExperimentVariantUpdateOne {
	return NewExperimentVariantClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExperimentVariant entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExperimentVariant) Unwrap() *ExperimentVariant {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExperimentVariant is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExperimentVariant) String() string {
	var builder strings.Builder
	builder.WriteString("ExperimentVariant(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("experiment_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExperimentID))
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("is_control=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsControl))
	builder.WriteString(", ")
	builder.WriteString("is_winner=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsWinner))
	builder.WriteString(", ")
	builder.WriteString("configuration=")
	builder.WriteString(fmt.Sprintf("%v", _m.Configuration))
	builder.WriteString(", ")
	if v := _m.ConfidenceLevel; v != nil {
		builder.WriteString("confidence_level=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.ImprovementRate; v != nil {
		builder.WriteString("improvement_rate=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ExperimentVariants is a parsable slice of ExperimentVariant.
type ExperimentVariants []*ExperimentVariant
