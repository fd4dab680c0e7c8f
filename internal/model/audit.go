package model

// AuditEntry maps one narrative sentence back to the case-data fields that
// justify it. Entries are created once per sentence during a generation pass
// and never mutated afterwards; display layers may only filter them.
type AuditEntry struct {
	Sentence    string     `json:"sentence"`
	Section     string     `json:"section"`
	DataSources []string   `json:"data_sources"`
	Confidence  Confidence `json:"confidence"`
}
