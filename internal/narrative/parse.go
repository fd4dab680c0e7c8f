package narrative

import (
	"encoding/json"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/sar-cli/internal/model"
)

// producerPayload mirrors the JSON schema requested from the model.
type producerPayload struct {
	Narrative string `json:"narrative"`
	Sections  []struct {
		Title       string   `json:"title"`
		Content     string   `json:"content"`
		DataSources []string `json:"data_sources"`
		Confidence  string   `json:"confidence"`
	} `json:"sections"`
	Reasoning []string `json:"reasoning"`
}

// ParseOutput extracts the producer payload from raw model response text and
// validates the section contract. Sections keep their given order; unknown
// confidence values normalize to medium. A missing top-level narrative is
// recomposed from the sections.
func ParseOutput(text string) (*model.ProducerOutput, error) {
	cleaned := cleanJSON(text)

	var payload producerPayload
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return nil, eris.Wrap(err, "narrative: parse producer payload")
	}
	if len(payload.Sections) == 0 {
		return nil, eris.New("narrative: producer returned no sections")
	}

	sections := make([]model.NarrativeSection, 0, len(payload.Sections))
	for _, s := range payload.Sections {
		if strings.TrimSpace(s.Title) == "" {
			return nil, eris.New("narrative: producer returned a section without a title")
		}
		sections = append(sections, model.NarrativeSection{
			Title:       s.Title,
			Content:     s.Content,
			DataSources: s.DataSources,
			Confidence:  model.ParseConfidence(s.Confidence),
		})
	}

	out := &model.ProducerOutput{
		Narrative: payload.Narrative,
		Sections:  sections,
		Reasoning: payload.Reasoning,
	}
	if out.Narrative == "" {
		out.Narrative = ComposeNarrative(sections)
	}
	return out, nil
}

// ComposeNarrative joins sections into the full narrative text.
func ComposeNarrative(sections []model.NarrativeSection) string {
	parts := make([]string, 0, len(sections))
	for _, s := range sections {
		parts = append(parts, s.Title+"\n\n"+s.Content)
	}
	return strings.Join(parts, "\n\n")
}

// cleanJSON strips markdown fences, extracts the JSON object, and repairs
// truncation.
func cleanJSON(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		text = text[start : end+1]
	}

	return repairTruncatedJSON(strings.TrimSpace(text))
}

// repairTruncatedJSON closes any unclosed brackets or braces in truncated
// JSON output.
func repairTruncatedJSON(text string) string {
	if len(text) == 0 {
		return text
	}

	var stack []byte
	inString := false
	escape := false

	for i := 0; i < len(text); i++ {
		c := text[i]

		if escape {
			escape = false
			continue
		}
		if c == '\\' && inString {
			escape = true
			continue
		}
		if c == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch c {
		case '{', '[':
			stack = append(stack, c)
		case '}', ']':
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}

	var b strings.Builder
	b.WriteString(text)
	if inString {
		b.WriteByte('"')
	}
	for i := len(stack) - 1; i >= 0; i-- {
		switch stack[i] {
		case '{':
			b.WriteByte('}')
		case '[':
			b.WriteByte(']')
		}
	}
	return b.String()
}
