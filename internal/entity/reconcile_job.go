package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ReconcileJob represents one processing attempt of a bill file.
type ReconcileJob struct {
	ID            uuid.UUID       `json:"id"`
	FileID        uuid.UUID       `json:"file_id"`
	Status        string          `json:"status"`
	Provider      *string         `json:"provider,omitempty"`
	ModelName     *string         `json:"model_name,omitempty"`
	PageCount     int             `json:"page_count"`
	ExtractedJSON json.RawMessage `json:"extracted_json,omitempty"`
	AnnotatedJSON json.RawMessage `json:"annotated_json,omitempty"`
	Corrections   json.RawMessage `json:"corrections,omitempty"`
	Passed        *bool           `json:"passed,omitempty"`
	Matched       int             `json:"matched"`
	Mismatched    int             `json:"mismatched"`
	Inapplicable  int             `json:"inapplicable"`
	ErrorMessage  *string         `json:"error_message,omitempty"`
	StartedAt     time.Time       `json:"started_at"`
	FinishedAt    *time.Time      `json:"finished_at,omitempty"`
}

// JobOutcome is what a finished reconciliation stores on its job.
type JobOutcome struct {
	Status       string
	Passed       bool
	Annotated    json.RawMessage
	Corrections  json.RawMessage
	Matched      int
	Mismatched   int
	Inapplicable int
}
