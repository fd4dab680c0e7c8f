package model

import "strings"

// Confidence is the three-tier certainty grade attached to sentences and
// sections. Low is admitted by the type but not produced by the default
// classification rules.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// ParseConfidence normalizes a producer-supplied confidence string.
// Unknown or empty values fall back to medium.
func ParseConfidence(s string) Confidence {
	switch Confidence(strings.ToLower(strings.TrimSpace(s))) {
	case ConfidenceHigh:
		return ConfidenceHigh
	case ConfidenceLow:
		return ConfidenceLow
	default:
		return ConfidenceMedium
	}
}

// NarrativeSection is one titled section of a produced narrative. DataSources
// are the producer's own human-readable citations, independent of the
// citations the attribution resolver computes per sentence.
type NarrativeSection struct {
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	DataSources []string   `json:"data_sources,omitempty"`
	Confidence  Confidence `json:"confidence"`
}

// TokenUsage tallies producer token consumption for run accounting.
type TokenUsage struct {
	InputTokens  int64 `json:"input_tokens"`
	OutputTokens int64 `json:"output_tokens"`
}

// Add accumulates usage from another pass.
func (u *TokenUsage) Add(other TokenUsage) {
	u.InputTokens += other.InputTokens
	u.OutputTokens += other.OutputTokens
}

// ProducerOutput is the structural contract every narrative producer meets,
// whether the text came from a generative call or the deterministic template.
// The audit and compliance core never learns which origin produced it.
type ProducerOutput struct {
	Narrative string             `json:"narrative"`
	Sections  []NarrativeSection `json:"sections"`
	Reasoning []string           `json:"reasoning,omitempty"`
	Usage     TokenUsage         `json:"-"`
}

// GenerationResult is the full outcome of one generation pass.
// ConfidenceScores carries each section's own confidence, not a recomputation
// from the audit trail.
type GenerationResult struct {
	Narrative           string                `json:"narrative"`
	Sections            []NarrativeSection    `json:"sections"`
	AuditTrail          []AuditEntry          `json:"audit_trail"`
	ConfidenceScores    map[string]Confidence `json:"confidence_scores"`
	Reasoning           []string              `json:"reasoning,omitempty"`
	ComplianceChecklist Checklist             `json:"compliance_checklist"`
}
