package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExperimentResult holds the schema definition for the ExperimentResult entity.
// Append-only event log aggregated by the analysis engine; never mutated.
type ExperimentResult struct {
	ent.Schema
}

// Fields of the ExperimentResult.
func (ExperimentResult) Fields() []ent.Field {
	return []ent.Field{
		field.Int("variant_id").
			Comment("Variant the event was recorded against"),

		field.String("user_id").
			Optional().
			MaxLen(255).
			Comment("Visitor user identity, if known"),

		field.String("session_id").
			Optional().
			MaxLen(255).
			Comment("Visitor session identity, if known"),

		field.Enum("result_type").
			Values("impression", "click", "conversion", "revenue", "engagement", "custom").
			Comment("Kind of tracked event"),

		field.Float("value").
			Optional().
			Nillable().
			Comment("Numeric value, meaningful for revenue and custom events"),

		field.String("context").
			Optional().
			MaxLen(255).
			Comment("Where the event happened (e.g., search_results, product_page)"),

		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Comment("Opaque event metadata"),

		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Event timestamp"),
	}
}

// Edges of the ExperimentResult.
func (ExperimentResult) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("variant", ExperimentVariant.Type).
			Ref("results").
			Field("variant_id").
			Unique().
			Required().
			Comment("Variant the event belongs to"),
	}
}

// Indexes of the ExperimentResult.
func (ExperimentResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("variant_id", "result_type").
			StorageKey("idx_result_variant_type"),
		index.Fields("variant_id", "result_type", "created_at").
			StorageKey("idx_result_variant_type_time"),
	}
}
