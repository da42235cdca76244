package models

// AssignmentRequest represents a request to assign a user to an experiment
type AssignmentRequest struct {
	ExperimentID int    `json:"experiment_id" validate:"required"`
	UserID       string `json:"user_id,omitempty"`
	SessionID    string `json:"session_id,omitempty"`
}

// VariantConfigurationRequest represents a batch variant configuration lookup
type VariantConfigurationRequest struct {
	Type      string `json:"type" validate:"required"`
	UserID    string `json:"user_id,omitempty"`
	SessionID string `json:"session_id,omitempty"`
}

// TrackInteractionRequest represents an interaction tracking payload
type TrackInteractionRequest struct {
	Context  string                 `json:"context,omitempty"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// TrackConversionRequest represents a conversion tracking payload.
// Value is an optional monetary amount recorded as a revenue event.
type TrackConversionRequest struct {
	Value    *float64               `json:"value,omitempty"`
	Context  string                 `json:"context,omitempty"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// TrackCustomEventRequest represents a custom event tracking payload
type TrackCustomEventRequest struct {
	EventType string                 `json:"event_type" validate:"required"`
	Value     *float64               `json:"value,omitempty"`
	Context   string                 `json:"context,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}
