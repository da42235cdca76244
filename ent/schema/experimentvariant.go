package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExperimentVariant holds the schema definition for the ExperimentVariant entity.
type ExperimentVariant struct {
	ent.Schema
}

// Fields of the ExperimentVariant.
func (ExperimentVariant) Fields() []ent.Field {
	return []ent.Field{
		field.Int("experiment_id").
			Comment("Experiment this variant belongs to"),

		field.String("name").
			NotEmpty().
			MaxLen(255).
			Comment("Variant name (e.g., control, blue_button)"),

		field.Text("description").
			Optional().
			Comment("Variant description"),

		field.Bool("is_control").
			Default(false).
			Comment("Whether this is the control arm"),

		field.Bool("is_winner").
			Default(false).
			Comment("Whether this variant was declared the winner"),

		field.JSON("configuration", map[string]interface{}{}).
			Optional().
			Comment("Opaque configuration payload interpreted by the consuming feature"),

		field.Float("confidence_level").
			Optional().
			Nillable().
			Comment("Latest computed confidence level vs control (percent)"),

		field.Float("improvement_rate").
			Optional().
			Nillable().
			Comment("Latest computed relative conversion-rate improvement vs control"),

		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),

		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last update timestamp"),
	}
}

// Edges of the ExperimentVariant.
func (ExperimentVariant) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("experiment", Experiment.Type).
			Ref("variants").
			Field("experiment_id").
			Unique().
			Required().
			Comment("Owning experiment"),

		edge.To("assignments", ExperimentAssignment.Type).
			Comment("Assignments routed to this variant"),

		edge.To("results", ExperimentResult.Type).
			Comment("Tracked events recorded against this variant"),
	}
}

// Indexes of the ExperimentVariant.
func (ExperimentVariant) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("experiment_id", "is_control").
			StorageKey("idx_variant_experiment_control"),
	}
}
