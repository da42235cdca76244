package models

import "time"

// VariantRequest represents a variant definition inside an experiment payload
type VariantRequest struct {
	Name          string                 `json:"name" validate:"required"`
	Description   string                 `json:"description,omitempty"`
	IsControl     bool                   `json:"is_control"`
	Configuration map[string]interface{} `json:"configuration,omitempty"`
}

// CreateExperimentRequest represents a request to create an experiment
type CreateExperimentRequest struct {
	Name                string                 `json:"name" validate:"required"`
	Description         string                 `json:"description,omitempty"`
	Type                string                 `json:"type" validate:"required,oneof=search_algorithm ui_component personalization recommendation pricing content feature_flag"`
	TargetAudience      string                 `json:"target_audience,omitempty"`
	AudiencePercentage  *float64               `json:"audience_percentage,omitempty" validate:"omitempty,gte=0,lte=100"`
	StartDate           *time.Time             `json:"start_date,omitempty"`
	EndDate             *time.Time             `json:"end_date,omitempty"`
	Hypothesis          string                 `json:"hypothesis,omitempty"`
	PrimaryMetric       string                 `json:"primary_metric,omitempty"`
	SecondaryMetrics    []string               `json:"secondary_metrics,omitempty"`
	Segmentation        map[string]interface{} `json:"segmentation,omitempty"`
	MinDetectableEffect *float64               `json:"min_detectable_effect,omitempty" validate:"omitempty,gt=0"`
	Variants            []VariantRequest       `json:"variants" validate:"required,min=1,dive"`
}

// UpdateExperimentRequest represents a partial update to an experiment.
// Nil fields are left unchanged. Status is never updated here; lifecycle
// transitions have their own endpoints.
type UpdateExperimentRequest struct {
	Name                *string                `json:"name,omitempty"`
	Description         *string                `json:"description,omitempty"`
	TargetAudience      *string                `json:"target_audience,omitempty"`
	AudiencePercentage  *float64               `json:"audience_percentage,omitempty" validate:"omitempty,gte=0,lte=100"`
	StartDate           *time.Time             `json:"start_date,omitempty"`
	EndDate             *time.Time             `json:"end_date,omitempty"`
	Hypothesis          *string                `json:"hypothesis,omitempty"`
	PrimaryMetric       *string                `json:"primary_metric,omitempty"`
	SecondaryMetrics    []string               `json:"secondary_metrics,omitempty"`
	Segmentation        map[string]interface{} `json:"segmentation,omitempty"`
	MinDetectableEffect *float64               `json:"min_detectable_effect,omitempty" validate:"omitempty,gt=0"`
	Variants            []VariantRequest       `json:"variants,omitempty" validate:"omitempty,min=1,dive"`
}

// UpdateVariantRequest represents a partial update to a single variant
type UpdateVariantRequest struct {
	Name          *string                `json:"name,omitempty"`
	Description   *string                `json:"description,omitempty"`
	Configuration map[string]interface{} `json:"configuration,omitempty"`
}

// DeclareWinnerRequest represents a request to declare a winning variant
type DeclareWinnerRequest struct {
	VariantID int `json:"variant_id" validate:"required"`
}
