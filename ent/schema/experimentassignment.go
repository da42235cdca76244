package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExperimentAssignment holds the schema definition for the ExperimentAssignment entity.
// One row binds one visitor (user or session) to one variant within one experiment.
type ExperimentAssignment struct {
	ent.Schema
}

// Fields of the ExperimentAssignment.
func (ExperimentAssignment) Fields() []ent.Field {
	return []ent.Field{
		field.Int("experiment_id").
			Comment("Experiment this assignment belongs to"),

		field.String("user_id").
			Optional().
			MaxLen(255).
			Comment("Authenticated visitor identity (null for anonymous sessions)"),

		field.String("session_id").
			Optional().
			MaxLen(255).
			Comment("Anonymous session identity (null when user_id is set)"),

		field.Int("variant_id").
			Comment("Variant the visitor was bucketed into"),

		field.Bool("has_impression").
			Default(false).
			Comment("Set once when the visitor first sees the variant"),

		field.Bool("has_interaction").
			Default(false).
			Comment("Set once on the visitor's first interaction"),

		field.Bool("has_conversion").
			Default(false).
			Comment("Set once on the visitor's first conversion"),

		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Comment("Opaque assignment metadata"),

		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Assignment timestamp"),

		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last update timestamp"),
	}
}

// Edges of the ExperimentAssignment.
func (ExperimentAssignment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("experiment", Experiment.Type).
			Ref("assignments").
			Field("experiment_id").
			Unique().
			Required().
			Comment("Experiment this assignment belongs to"),

		edge.From("variant", ExperimentVariant.Type).
			Ref("assignments").
			Field("variant_id").
			Unique().
			Required().
			Comment("Assigned variant"),
	}
}

// Indexes of the ExperimentAssignment.
func (ExperimentAssignment) Indexes() []ent.Index {
	return []ent.Index{
		// One assignment per visitor per experiment. NULL identities do not
		// collide, so user-keyed and session-keyed rows coexist.
		index.Fields("user_id", "experiment_id").
			Unique().
			StorageKey("idx_assignment_user_experiment"),
		index.Fields("session_id", "experiment_id").
			Unique().
			StorageKey("idx_assignment_session_experiment"),
		index.Fields("experiment_id", "variant_id"),
	}
}
