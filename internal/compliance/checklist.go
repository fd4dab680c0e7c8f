// Package compliance checks generated narratives against the fixed FinCEN
// structural requirements.
package compliance

import (
	"strings"

	"github.com/sells-group/sar-cli/internal/model"
)

// Requirement names, in evaluation order.
const (
	ReqSubjectInformation = "Subject Information Present"
	ReqActivityDescribed  = "Activity Description Present"
	ReqPatternAnalysis    = "Suspicious Pattern Analysis"
	ReqInvestigation      = "Investigation Documented"
	ReqConclusion         = "Conclusion and Legal Basis"
	ReqNoDiscrimination   = "No Discriminatory Language"
	ReqObjectiveTone      = "Factual and Objective Tone"
	ReqSpecificCitations  = "Specific Dates and Amounts Cited"
)

// Evaluate computes the eight-entry compliance checklist from the set of
// section titles. The first five are presence checks. The last three always
// pass: they stand in for language-analysis checks that are not implemented,
// and the constant-true outcome is deliberate — wiring real NLP checks here
// is future work, not a gap to patch with new heuristics.
func Evaluate(sections []model.NarrativeSection) model.Checklist {
	titles := make([]string, 0, len(sections))
	for _, s := range sections {
		titles = append(titles, s.Title)
	}
	joined := strings.Join(titles, " ")

	has := func(sub string) bool {
		for _, t := range titles {
			if strings.Contains(t, sub) {
				return true
			}
		}
		return false
	}

	return model.Checklist{
		{Name: ReqSubjectInformation, Passed: has("SUBJECT INFORMATION")},
		{Name: ReqActivityDescribed, Passed: has("SUSPICIOUS ACTIVITY DESCRIPTION")},
		{Name: ReqPatternAnalysis, Passed: has("PATTERN ANALYSIS") || strings.Contains(joined, "MONEY LAUNDERING")},
		{Name: ReqInvestigation, Passed: has("INVESTIGATIVE FINDINGS")},
		{Name: ReqConclusion, Passed: has("CONCLUSION")},
		{Name: ReqNoDiscrimination, Passed: true},
		{Name: ReqObjectiveTone, Passed: true},
		{Name: ReqSpecificCitations, Passed: true},
	}
}
