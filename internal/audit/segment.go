// Package audit decomposes narrative sections into sentences and maps each
// sentence back to the case-data fields that justify it.
package audit

import "strings"

// SplitSentences splits section content into ordered sentence strings.
// A sentence ends at '.', '!' or '?' followed by whitespace; the terminal
// punctuation stays attached. Content without terminal punctuation yields a
// single sentence; empty or whitespace-only content yields nothing.
// Downstream matching relies on substring containment against the original
// text, so order and punctuation are preserved.
func SplitSentences(content string) []string {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil
	}

	var sentences []string
	start := 0
	for i := 0; i < len(trimmed)-1; i++ {
		c := trimmed[i]
		if (c == '.' || c == '!' || c == '?') && isSpace(trimmed[i+1]) {
			if seg := strings.TrimSpace(trimmed[start : i+1]); seg != "" {
				sentences = append(sentences, seg)
			}
			start = i + 1
		}
	}
	if seg := strings.TrimSpace(trimmed[start:]); seg != "" {
		sentences = append(sentences, seg)
	}
	return sentences
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
