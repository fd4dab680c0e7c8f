package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/sar-cli/internal/model"
)

func TestClassifySentence(t *testing.T) {
	rec := testRecord()

	tests := []struct {
		name     string
		sentence string
		want     model.Confidence
	}{
		{
			name:     "analytical marker grades medium",
			sentence: "This suggests deliberate coordination.",
			want:     model.ConfidenceMedium,
		},
		{
			name:     "analytical beats factual evidence",
			sentence: "The use of account number 5021-8834-9912 by Rajesh Kumar indicates structuring.",
			want:     model.ConfidenceMedium,
		},
		{
			name:     "factual with multiple citations grades high",
			sentence: "The account received 47 transactions totaling ₹50,00,000.",
			want:     model.ConfidenceHigh,
		},
		{
			name:     "factual with single citation grades medium",
			sentence: "The account number on file is 5021-8834-9912.",
			want:     model.ConfidenceMedium,
		},
		{
			name:     "factual backed only by sentinel grades medium",
			sentence: "The amount could not be independently verified.",
			want:     model.ConfidenceMedium,
		},
		{
			name:     "no markers grades medium",
			sentence: "The subject operates a small retail business.",
			want:     model.ConfidenceMedium,
		},
		{
			name:     "marker matching is case-insensitive",
			sentence: "THIS APPEARS INCONSISTENT WITH THE STATED PROFILE.",
			want:     model.ConfidenceMedium,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifySentence(tt.sentence, rec))
		})
	}
}

func TestClassifySentence_NeverLow(t *testing.T) {
	rec := testRecord()

	// Low exists in the type but no current rule produces it.
	sentences := []string{
		"",
		"Unrelated remark.",
		"The transaction was received and transferred on the same date.",
	}
	for _, s := range sentences {
		assert.NotEqual(t, model.ConfidenceLow, ClassifySentence(s, rec))
	}
}
