package audit

import (
	"strings"

	"github.com/sells-group/sar-cli/internal/model"
)

// analyticalMarkers flag interpretive language. Analytical sentences grade
// medium regardless of how many facts they cite.
var analyticalMarkers = []string{
	"suggests",
	"indicates",
	"appears",
	"consistent with",
	"raises concerns",
}

// factualMarkers flag sentences that read as statements of record. These
// only grade high when the resolver actually locates multiple fields.
var factualMarkers = []string{
	"account number",
	"date",
	"amount",
	"transaction",
	"received",
	"transferred",
}

// ClassifySentence grades a sentence high, medium or low. First match wins:
// analytical language before factual language before the medium default.
// A factual-sounding sentence backed only by the sentinel citation must not
// be over-trusted, so it grades medium. Low is reserved for future rules.
func ClassifySentence(sentence string, rec *model.CaseRecord) model.Confidence {
	lower := strings.ToLower(sentence)

	if containsAny(lower, analyticalMarkers...) {
		return model.ConfidenceMedium
	}

	if containsAny(lower, factualMarkers...) {
		sources := ResolveSources(sentence, rec)
		if len(sources) > 1 && !IsSentinel(sources) {
			return model.ConfidenceHigh
		}
		return model.ConfidenceMedium
	}

	return model.ConfidenceMedium
}

// containsAny checks if s contains any of the given substrings.
func containsAny(s string, substrs ...string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
