// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/variantlab/abtest/ent/experiment"
	"github.com/variantlab/abtest/ent/experimentassignment"
	"github.com/variantlab/abtest/ent/experimentresult"
	"github.com/variantlab/abtest/ent/experimentvariant"
	"github.com/variantlab/abtest/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	experimentFields := schema.Experiment{}.Fields()
	_ = experimentFields
	// experimentDescName is the schema descriptor for name field.
	experimentDescName := experimentFields[0].Descriptor()
	// experiment.NameValidator is a validator for the "name" field. It is called by the builders before save.
	experiment.NameValidator = func() func(string) error {
		validators := experimentDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// experimentDescTargetAudience is the schema descriptor for target_audience field.
	experimentDescTargetAudience := experimentFields[4].Descriptor()
	// experiment.TargetAudienceValidator is a validator for the "target_audience" field. It is called by the builders before save.
	experiment.TargetAudienceValidator = experimentDescTargetAudience.Validators[0].(func(string) error)
	// experimentDescAudiencePercentage is the schema descriptor for audience_percentage field.
	experimentDescAudiencePercentage := experimentFields[5].Descriptor()
	// experiment.AudiencePercentageValidator is a validator for the "audience_percentage" field. It is called by the builders before save.
	experiment.AudiencePercentageValidator = func() func(float64) error {
		validators := experimentDescAudiencePercentage.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(audience_percentage float64) error {
			for _, fn := range fns {
				if err := fn(audience_percentage); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// experimentDescHasWinner is the schema descriptor for has_winner field.
	experimentDescHasWinner := experimentFields[13].Descriptor()
	// experiment.DefaultHasWinner holds the default value on creation for the has_winner field.
	experiment.DefaultHasWinner = experimentDescHasWinner.Default.(bool)
	// experimentDescCreatedAt is the schema descriptor for created_at field.
	experimentDescCreatedAt := experimentFields[15].Descriptor()
	// experiment.DefaultCreatedAt holds the default value on creation for the created_at field.
	experiment.DefaultCreatedAt = experimentDescCreatedAt.Default.(func() time.Time)
	// experimentDescUpdatedAt is the schema descriptor for updated_at field.
	experimentDescUpdatedAt := experimentFields[16].Descriptor()
	// experiment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	experiment.DefaultUpdatedAt = experimentDescUpdatedAt.Default.(func() time.Time)
	// experiment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	experiment.UpdateDefaultUpdatedAt = experimentDescUpdatedAt.UpdateDefault.(func() time.Time)
	experimentassignmentFields := schema.ExperimentAssignment{}.Fields()
	_ = experimentassignmentFields
	// experimentassignmentDescUserID is the schema descriptor for user_id field.
	experimentassignmentDescUserID := experimentassignmentFields[1].Descriptor()
	// experimentassignment.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	experimentassignment.UserIDValidator = experimentassignmentDescUserID.Validators[0].(func(string) error)
	// experimentassignmentDescSessionID is the schema descriptor for session_id field.
	experimentassignmentDescSessionID := experimentassignmentFields[2].Descriptor()
	// experimentassignment.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	experimentassignment.SessionIDValidator = experimentassignmentDescSessionID.Validators[0].(func(string) error)
	// experimentassignmentDescHasImpression is the schema descriptor for has_impression field.
	experimentassignmentDescHasImpression := experimentassignmentFields[4].Descriptor()
	// experimentassignment.DefaultHasImpression holds the default value on creation for the has_impression field.
	experimentassignment.DefaultHasImpression = experimentassignmentDescHasImpression.Default.(bool)
	// experimentassignmentDescHasInteraction is the schema descriptor for has_interaction field.
	experimentassignmentDescHasInteraction := experimentassignmentFields[5].Descriptor()
	// experimentassignment.DefaultHasInteraction holds the default value on creation for the has_interaction field.
	experimentassignment.DefaultHasInteraction = experimentassignmentDescHasInteraction.Default.(bool)
	// experimentassignmentDescHasConversion is the schema descriptor for has_conversion field.
	experimentassignmentDescHasConversion := experimentassignmentFields[6].Descriptor()
	// experimentassignment.DefaultHasConversion holds the default value on creation for the has_conversion field.
	experimentassignment.DefaultHasConversion = experimentassignmentDescHasConversion.Default.(bool)
	// experimentassignmentDescCreatedAt is the schema descriptor for created_at field.
	experimentassignmentDescCreatedAt := experimentassignmentFields[8].Descriptor()
	// experimentassignment.DefaultCreatedAt holds the default value on creation for the created_at field.
	experimentassignment.DefaultCreatedAt = experimentassignmentDescCreatedAt.Default.(func() time.Time)
	// experimentassignmentDescUpdatedAt is the schema descriptor for updated_at field.
	experimentassignmentDescUpdatedAt := experimentassignmentFields[9].Descriptor()
	// experimentassignment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	experimentassignment.DefaultUpdatedAt = experimentassignmentDescUpdatedAt.Default.(func() time.Time)
	// experimentassignment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	experimentassignment.UpdateDefaultUpdatedAt = experimentassignmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	experimentresultFields := schema.ExperimentResult{}.Fields()
	_ = experimentresultFields
	// experimentresultDescUserID is the schema descriptor for user_id field.
	experimentresultDescUserID := experimentresultFields[1].Descriptor()
	// experimentresult.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	experimentresult.UserIDValidator = experimentresultDescUserID.Validators[0].(func(string) error)
	// experimentresultDescSessionID is the schema descriptor for session_id field.
	experimentresultDescSessionID := experimentresultFields[2].Descriptor()
	// experimentresult.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	experimentresult.SessionIDValidator = experimentresultDescSessionID.Validators[0].(func(string) error)
	// experimentresultDescContext is the schema descriptor for context field.
	experimentresultDescContext := experimentresultFields[5].Descriptor()
	// experimentresult.ContextValidator is a validator for the "context" field. It is called by the builders before save.
	experimentresult.ContextValidator = experimentresultDescContext.Validators[0].(func(string) error)
	// experimentresultDescCreatedAt is the schema descriptor for created_at field.
	experimentresultDescCreatedAt := experimentresultFields[7].Descriptor()
	// experimentresult.DefaultCreatedAt holds the default value on creation for the created_at field.
	experimentresult.DefaultCreatedAt = experimentresultDescCreatedAt.Default.(func() time.Time)
	experimentvariantFields := schema.ExperimentVariant{}.Fields()
	_ = experimentvariantFields
	// experimentvariantDescName is the schema descriptor for name field.
	experimentvariantDescName := experimentvariantFields[1].Descriptor()
	// experimentvariant.NameValidator is a validator for the "name" field. It is called by the builders before save.
	experimentvariant.NameValidator = func() func(string) error {
		validators := experimentvariantDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// experimentvariantDescIsControl is the schema descriptor for is_control field.
	experimentvariantDescIsControl := experimentvariantFields[3].Descriptor()
	// experimentvariant.DefaultIsControl holds the default value on creation for the is_control field.
	experimentvariant.DefaultIsControl = experimentvariantDescIsControl.Default.(bool)
	// experimentvariantDescIsWinner is the schema descriptor for is_winner field.
	experimentvariantDescIsWinner := experimentvariantFields[4].Descriptor()
	// experimentvariant.DefaultIsWinner holds the default value on creation for the is_winner field.
	experimentvariant.DefaultIsWinner = experimentvariantDescIsWinner.Default.(bool)
	// experimentvariantDescCreatedAt is the schema descriptor for created_at field.
	experimentvariantDescCreatedAt := experimentvariantFields[8].Descriptor()
	// experimentvariant.DefaultCreatedAt holds the default value on creation for the created_at field.
	experimentvariant.DefaultCreatedAt = experimentvariantDescCreatedAt.Default.(func() time.Time)
	// experimentvariantDescUpdatedAt is the schema descriptor for updated_at field.
	experimentvariantDescUpdatedAt := experimentvariantFields[9].Descriptor()
	// experimentvariant.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	experimentvariant.DefaultUpdatedAt = experimentvariantDescUpdatedAt.Default.(func() time.Time)
	// experimentvariant.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	experimentvariant.UpdateDefaultUpdatedAt = experimentvariantDescUpdatedAt.UpdateDefault.(func() time.Time)
}
