package model

import "time"

// RunStatus represents the current state of a generation run.
type RunStatus string

const (
	RunStatusRunning  RunStatus = "running"
	RunStatusComplete RunStatus = "complete"
	RunStatusFailed   RunStatus = "failed"
)

// Run records one generation pass for audit history. Only metadata is kept;
// narrative text is never persisted.
type Run struct {
	ID        string      `json:"id"`
	CaseID    string      `json:"case_id"`
	AlertType string      `json:"alert_type"`
	Status    RunStatus   `json:"status"`
	Summary   *RunSummary `json:"summary,omitempty"`
	Error     string      `json:"error,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// RunSummary holds the outcome metrics of a completed run.
type RunSummary struct {
	Origin          string     `json:"origin"`
	Sections        int        `json:"sections"`
	Sentences       int        `json:"sentences"`
	ChecklistPassed int        `json:"checklist_passed"`
	ChecklistTotal  int        `json:"checklist_total"`
	TokenUsage      TokenUsage `json:"token_usage"`
	DurationMS      int64      `json:"duration_ms"`
}
