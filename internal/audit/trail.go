package audit

import (
	"go.uber.org/zap"

	"github.com/sells-group/sar-cli/internal/model"
)

// BuildTrail walks every section in producer order, segments its content and
// emits one AuditEntry per sentence with computed citations and confidence.
// Section order is preserved so the trail stays navigable alongside the
// displayed narrative. Inputs are never mutated.
func BuildTrail(sections []model.NarrativeSection, rec *model.CaseRecord) []model.AuditEntry {
	var trail []model.AuditEntry

	for _, section := range sections {
		for _, sentence := range SplitSentences(section.Content) {
			trail = append(trail, model.AuditEntry{
				Sentence:    sentence,
				Section:     section.Title,
				DataSources: ResolveSources(sentence, rec),
				Confidence:  ClassifySentence(sentence, rec),
			})
		}
	}

	zap.L().Debug("audit: trail built",
		zap.Int("sections", len(sections)),
		zap.Int("sentences", len(trail)),
	)

	return trail
}
