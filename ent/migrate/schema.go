// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ExperimentsColumns holds the columns for the "experiments" table.
	ExperimentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"draft", "running", "paused", "completed", "archived"}, Default: "draft"},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"search_algorithm", "ui_component", "personalization", "recommendation", "pricing", "content", "feature_flag"}},
		{Name: "target_audience", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "audience_percentage", Type: field.TypeFloat64, Nullable: true},
		{Name: "start_date", Type: field.TypeTime, Nullable: true},
		{Name: "end_date", Type: field.TypeTime, Nullable: true},
		{Name: "hypothesis", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "primary_metric", Type: field.TypeString, Nullable: true},
		{Name: "secondary_metrics", Type: field.TypeJSON, Nullable: true},
		{Name: "segmentation", Type: field.TypeJSON, Nullable: true},
		{Name: "min_detectable_effect", Type: field.TypeFloat64, Nullable: true},
		{Name: "has_winner", Type: field.TypeBool, Default: false},
		{Name: "winning_variant_id", Type: field.TypeInt, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ExperimentsTable holds the schema information for the "experiments" table.
	ExperimentsTable = &schema.Table{
		Name:       "experiments",
		Columns:    ExperimentsColumns,
		PrimaryKey: []*schema.Column{ExperimentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "experiment_status",
				Unique:  false,
				Columns: []*schema.Column{ExperimentsColumns[3]},
			},
			{
				Name:    "idx_experiment_status_type",
				Unique:  false,
				Columns: []*schema.Column{ExperimentsColumns[3], ExperimentsColumns[4]},
			},
			{
				Name:    "experiment_start_date",
				Unique:  false,
				Columns: []*schema.Column{ExperimentsColumns[7]},
			},
		},
	}
	// ExperimentAssignmentsColumns holds the columns for the "experiment_assignments" table.
	ExperimentAssignmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "session_id", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "has_impression", Type: field.TypeBool, Default: false},
		{Name: "has_interaction", Type: field.TypeBool, Default: false},
		{Name: "has_conversion", Type: field.TypeBool, Default: false},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "experiment_id", Type: field.TypeInt},
		{Name: "variant_id", Type: field.TypeInt},
	}
	// ExperimentAssignmentsTable holds the schema information for the "experiment_assignments" table.
	ExperimentAssignmentsTable = &schema.Table{
		Name:       "experiment_assignments",
		Columns:    ExperimentAssignmentsColumns,
		PrimaryKey: []*schema.Column{ExperimentAssignmentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "experiment_assignments_experiments_assignments",
				Columns:    []*schema.Column{ExperimentAssignmentsColumns[9]},
				RefColumns: []*schema.Column{ExperimentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "experiment_assignments_experiment_variants_assignments",
				Columns:    []*schema.Column{ExperimentAssignmentsColumns[10]},
				RefColumns: []*schema.Column{ExperimentVariantsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "idx_assignment_user_experiment",
				Unique:  true,
				Columns: []*schema.Column{ExperimentAssignmentsColumns[1], ExperimentAssignmentsColumns[9]},
			},
			{
				Name:    "idx_assignment_session_experiment",
				Unique:  true,
				Columns: []*schema.Column{ExperimentAssignmentsColumns[2], ExperimentAssignmentsColumns[9]},
			},
			{
				Name:    "experimentassignment_experiment_id_variant_id",
				Unique:  false,
				Columns: []*schema.Column{ExperimentAssignmentsColumns[9], ExperimentAssignmentsColumns[10]},
			},
		},
	}
	// ExperimentResultsColumns holds the columns for the "experiment_results" table.
	ExperimentResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "session_id", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "result_type", Type: field.TypeEnum, Enums: []string{"impression", "click", "conversion", "revenue", "engagement", "custom"}},
		{Name: "value", Type: field.TypeFloat64, Nullable: true},
		{Name: "context", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "variant_id", Type: field.TypeInt},
	}
	// ExperimentResultsTable holds the schema information for the "experiment_results" table.
	ExperimentResultsTable = &schema.Table{
		Name:       "experiment_results",
		Columns:    ExperimentResultsColumns,
		PrimaryKey: []*schema.Column{ExperimentResultsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "experiment_results_experiment_variants_results",
				Columns:    []*schema.Column{ExperimentResultsColumns[8]},
				RefColumns: []*schema.Column{ExperimentVariantsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "idx_result_variant_type",
				Unique:  false,
				Columns: []*schema.Column{ExperimentResultsColumns[8], ExperimentResultsColumns[3]},
			},
			{
				Name:    "idx_result_variant_type_time",
				Unique:  false,
				Columns: []*schema.Column{ExperimentResultsColumns[8], ExperimentResultsColumns[3], ExperimentResultsColumns[7]},
			},
		},
	}
	// ExperimentVariantsColumns holds the columns for the "experiment_variants" table.
	ExperimentVariantsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "is_control", Type: field.TypeBool, Default: false},
		{Name: "is_winner", Type: field.TypeBool, Default: false},
		{Name: "configuration", Type: field.TypeJSON, Nullable: true},
		{Name: "confidence_level", Type: field.TypeFloat64, Nullable: true},
		{Name: "improvement_rate", Type: field.TypeFloat64, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "experiment_id", Type: field.TypeInt},
	}
	// ExperimentVariantsTable holds the schema information for the "experiment_variants" table.
	ExperimentVariantsTable = &schema.Table{
		Name:       "experiment_variants",
		Columns:    ExperimentVariantsColumns,
		PrimaryKey: []*schema.Column{ExperimentVariantsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "experiment_variants_experiments_variants",
				Columns:    []*schema.Column{ExperimentVariantsColumns[10]},
				RefColumns: []*schema.Column{ExperimentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "idx_variant_experiment_control",
				Unique:  false,
				Columns: []*schema.Column{ExperimentVariantsColumns[10], ExperimentVariantsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ExperimentsTable,
		ExperimentAssignmentsTable,
		ExperimentResultsTable,
		ExperimentVariantsTable,
	}
)

func init() {
	ExperimentAssignmentsTable.ForeignKeys[0].RefTable = ExperimentsTable
	ExperimentAssignmentsTable.ForeignKeys[1].RefTable = ExperimentVariantsTable
	ExperimentResultsTable.ForeignKeys[0].RefTable = ExperimentVariantsTable
	ExperimentVariantsTable.ForeignKeys[0].RefTable = ExperimentsTable
}
