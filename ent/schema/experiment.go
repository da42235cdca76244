package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Experiment holds the schema definition for the Experiment entity.
type Experiment struct {
	ent.Schema
}

// Fields of the Experiment.
func (Experiment) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			MaxLen(255).
			Comment("Experiment name"),

		field.Text("description").
			Optional().
			Comment("Experiment description"),

		field.Enum("status").
			Values("draft", "running", "paused", "completed", "archived").
			Default("draft").
			Comment("Lifecycle status"),

		field.Enum("type").
			Values("search_algorithm", "ui_component", "personalization", "recommendation", "pricing", "content", "feature_flag").
			Comment("Which product surface the experiment targets"),

		field.String("target_audience").
			Optional().
			MaxLen(255).
			Comment("Free-text audience segment descriptor"),

		field.Float("audience_percentage").
			Optional().
			Nillable().
			Min(0).
			Max(100).
			Comment("Share of matched traffic included in the experiment; null means 100%"),

		field.Time("start_date").
			Optional().
			Nillable().
			Comment("When the experiment started running"),

		field.Time("end_date").
			Optional().
			Nillable().
			Comment("When the experiment completed"),

		field.Text("hypothesis").
			Optional().
			Comment("What the experiment is expected to show"),

		field.String("primary_metric").
			Optional().
			Comment("Primary metric to measure (e.g., conversion_rate, revenue)"),

		field.JSON("secondary_metrics", []string{}).
			Optional().
			Comment("Ordered list of secondary metric names"),

		field.JSON("segmentation", map[string]interface{}{}).
			Optional().
			Comment("Segmentation rules, interpreted by the consuming feature"),

		field.Float("min_detectable_effect").
			Optional().
			Nillable().
			Comment("Declared minimum detectable effect (relative lift) for power analysis"),

		field.Bool("has_winner").
			Default(false).
			Comment("Whether a winning variant has been declared"),

		field.Int("winning_variant_id").
			Optional().
			Nillable().
			Comment("ID of the winning variant, valid only when has_winner is true"),

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

// Edges of the Experiment.
func (Experiment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("variants", ExperimentVariant.Type).
			Comment("Variants owned by this experiment"),

		edge.To("assignments", ExperimentAssignment.Type).
			Comment("Visitor assignments to this experiment"),
	}
}

// Indexes of the Experiment.
func (Experiment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("status", "type").
			StorageKey("idx_experiment_status_type"),
		index.Fields("start_date"),
	}
}
