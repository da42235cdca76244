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
)

// Experiment is the model entity for the Experiment schema.
type Experiment struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Experiment name
	Name string `json:"name,omitempty"`
	// Experiment description
	Description string `json:"description,omitempty"`
	// Lifecycle status
	Status experiment.Status `json:"status,omitempty"`
	// Which product surface the experiment targets
	Type experiment.Type `json:"type,omitempty"`
	// Free-text audience segment descriptor
	TargetAudience string `json:"target_audience,omitempty"`
	// Share of matched traffic included in the experiment; null means 100%
	AudiencePercentage *float64 `json:"audience_percentage,omitempty"`
	// When the experiment started running
	StartDate *time.Time `json:"start_date,omitempty"`
	// When the experiment completed
	EndDate *time.Time `json:"end_date,omitempty"`
	// What the experiment is expected to show
	Hypothesis string `json:"hypothesis,omitempty"`
	// Primary metric to measure (e.g., conversion_rate, revenue)
	PrimaryMetric string `json:"primary_metric,omitempty"`
	// Ordered list of secondary metric names
	SecondaryMetrics []string `json:"secondary_metrics,omitempty"`
	// Segmentation rules, interpreted by the consuming feature
	Segmentation map[string]interface{} `json:"segmentation,omitempty"`
	// Declared minimum detectable effect (relative lift) for power analysis
	MinDetectableEffect *float64 `json:"min_detectable_effect,omitempty"`
	// Whether a winning variant has been declared
	HasWinner bool `json:"has_winner,omitempty"`
	// ID of the winning variant, valid only when has_winner is true
	WinningVariantID *int `json:"winning_variant_id,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ExperimentQuery when eager-loading is set.
	Edges        ExperimentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ExperimentEdges holds the relations/edges for other nodes in the graph.
type ExperimentEdges struct {
	// Variants owned by this experiment
	Variants []*ExperimentVariant `json:"variants,omitempty"`
	// Visitor assignments to this experiment
	Assignments []*ExperimentAssignment `json:"assignments,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// VariantsOrErr returns the Variants value or an error if the edge
// was not loaded in eager-loading.
func (e ExperimentEdges) VariantsOrErr() ([]*ExperimentVariant, error) {
	if e.loadedTypes[0] {
		return e.Variants, nil
	}
	return nil, &NotLoadedError{edge: "variants"}
}

// AssignmentsOrErr returns the Assignments value or an error if the edge
// was not loaded in eager-loading.
func (e ExperimentEdges) AssignmentsOrErr() ([]*ExperimentAssignment, error) {
	if e.loadedTypes[1] {
		return e.Assignments, nil
	}
	return nil, &NotLoadedError{edge: "assignments"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Experiment) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case experiment.FieldSecondaryMetrics, experiment.FieldSegmentation:
			values[i] = new([]byte)
		case experiment.FieldHasWinner:
			values[i] = new(sql.NullBool)
		case experiment.FieldAudiencePercentage, experiment.FieldMinDetectableEffect:
			values[i] = new(sql.NullFloat64)
		case experiment.FieldID, experiment.FieldWinningVariantID:
			values[i] = new(sql.NullInt64)
		case experiment.FieldName, experiment.FieldDescription, experiment.FieldStatus, experiment.FieldType, experiment.FieldTargetAudience, experiment.FieldHypothesis, experiment.FieldPrimaryMetric:
			values[i] = new(sql.NullString)
		case experiment.FieldStartDate, experiment.FieldEndDate, experiment.FieldCreatedAt, experiment.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Experiment fields.
func (_m *Experiment) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case experiment.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case experiment.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case experiment.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case experiment.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = experiment.Status(value.String)
			}
		case experiment.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				_m.Type = experiment.Type(value.String)
			}
		case experiment.FieldTargetAudience:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target_audience", values[i])
			} else if value.Valid {
				_m.TargetAudience = value.String
			}
		case experiment.FieldAudiencePercentage:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field audience_percentage", values[i])
			} else if value.Valid {
				_m.AudiencePercentage = new(float64)
				*_m.AudiencePercentage = value.Float64
			}
		case experiment.FieldStartDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field start_date", values[i])
			} else if value.Valid {
				_m.StartDate = new(time.Time)
				*_m.StartDate = value.Time
			}
		case experiment.FieldEndDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field end_date", values[i])
			} else if value.Valid {
				_m.EndDate = new(time.Time)
				*_m.EndDate = value.Time
			}
		case experiment.FieldHypothesis:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field hypothesis", values[i])
			} else if value.Valid {
				_m.Hypothesis = value.String
			}
		case experiment.FieldPrimaryMetric:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field primary_metric", values[i])
			} else if value.Valid {
				_m.PrimaryMetric = value.String
			}
		case experiment.FieldSecondaryMetrics:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field secondary_metrics", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SecondaryMetrics); err != nil {
					return fmt.Errorf("unmarshal field secondary_metrics: %w", err)
				}
			}
		case experiment.FieldSegmentation:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field segmentation", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Segmentation); err != nil {
					return fmt.Errorf("unmarshal field segmentation: %w", err)
				}
			}
		case experiment.FieldMinDetectableEffect:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field min_detectable_effect", values[i])
			} else if value.Valid {
				_m.MinDetectableEffect = new(float64)
				*_m.MinDetectableEffect = value.Float64
			}
		case experiment.FieldHasWinner:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field has_winner", values[i])
			} else if value.Valid {
				_m.HasWinner = value.Bool
			}
		case experiment.FieldWinningVariantID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field winning_variant_id", values[i])
			} else if value.Valid {
				_m.WinningVariantID = new(int)
				*_m.WinningVariantID = int(value.Int64)
			}
		case experiment.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case experiment.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Experiment.
// This includes values selected through modifiers, order, etc.
func (_m *Experiment) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryVariants queries the "variants" edge of the Experiment entity.
func (_m *Experiment) QueryVariants() *ExperimentVariantQuery {
	return NewExperimentClient(_m.config).QueryVariants(_m)
}

// QueryAssignments queries the "assignments" edge of the Experiment entity.
func (_m *Experiment) QueryAssignments() *ExperimentAssignmentQuery {
	return NewExperimentClient(_m.config).QueryAssignments(_m)
}

// Update returns a builder for updating this Experiment.
// Note that you need to call Experiment.Unwrap() before calling this method if this Experiment
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Experiment) Update() *ExperimentUpdateOne {
	return NewExperimentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Experiment entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Experiment) Unwrap() *Experiment {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Experiment is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Experiment) String() string {
	var builder strings.Builder
	builder.WriteString("Experiment(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("type=")
	builder.WriteString(fmt.Sprintf("%v", _m.Type))
	builder.WriteString(", ")
	builder.WriteString("target_audience=")
	builder.WriteString(_m.TargetAudience)
	builder.WriteString(", ")
	if v := _m.AudiencePercentage; v != nil {
		builder.WriteString("audience_percentage=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.StartDate; v != nil {
		builder.WriteString("start_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.EndDate; v != nil {
		builder.WriteString("end_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("hypothesis=")
	builder.WriteString(_m.Hypothesis)
	builder.WriteString(", ")
	builder.WriteString("primary_metric=")
	builder.WriteString(_m.PrimaryMetric)
	builder.WriteString(", ")
	builder.WriteString("secondary_metrics=")
	builder.WriteString(fmt.Sprintf("%v", _m.SecondaryMetrics))
	builder.WriteString(", ")
	builder.WriteString("segmentation=")
	builder.WriteString(fmt.Sprintf("%v", _m.Segmentation))
	builder.WriteString(", ")
	if v := _m.MinDetectableEffect; v != nil {
		builder.WriteString("min_detectable_effect=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("has_winner=")
	builder.WriteString(fmt.Sprintf("%v", _m.HasWinner))
	builder.WriteString(", ")
	if v := _m.WinningVariantID; v != nil {
		builder.WriteString("winning_variant_id=")
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

// Experiments is a parsable slice of Experiment.
type Experiments []*Experiment
