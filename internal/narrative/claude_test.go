package narrative

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/sar-cli/internal/config"
	"github.com/sells-group/sar-cli/internal/model"
	"github.com/sells-group/sar-cli/pkg/anthropic"
)

// fakeClient scripts CreateMessage responses for producer tests.
type fakeClient struct {
	responses []*anthropic.MessageResponse
	errs      []error
	calls     int
	lastReq   anthropic.MessageRequest
}

func (f *fakeClient) CreateMessage(_ context.Context, req anthropic.MessageRequest) (*anthropic.MessageResponse, error) {
	f.lastReq = req
	i := f.calls
	f.calls++
	if i < len(f.errs) && f.errs[i] != nil {
		return nil, f.errs[i]
	}
	if i < len(f.responses) {
		return f.responses[i], nil
	}
	return f.responses[len(f.responses)-1], nil
}

func textResponse(text string) *anthropic.MessageResponse {
	return &anthropic.MessageResponse{
		Content: []anthropic.ContentBlock{{Type: "text", Text: text}},
		Usage:   anthropic.TokenUsage{InputTokens: 120, OutputTokens: 340},
	}
}

const validPayload = `{"sections":[{"title":"SUBJECT INFORMATION","content":"The subject is Rajesh Kumar.","confidence":"high"}]}`

func producerConfig() config.AnthropicConfig {
	return config.AnthropicConfig{
		Model:             "claude-sonnet-4-5-20250929",
		MaxTokens:         4000,
		Temperature:       0.3,
		RequestsPerMinute: 600,
		MaxRetries:        3,
	}
}

func TestClaudeProducer_Produce(t *testing.T) {
	client := &fakeClient{responses: []*anthropic.MessageResponse{textResponse(validPayload)}}
	p := NewClaudeProducer(client, producerConfig())

	out, err := p.Produce(context.Background(), templateRecord())
	require.NoError(t, err)

	require.Len(t, out.Sections, 1)
	assert.Equal(t, "SUBJECT INFORMATION", out.Sections[0].Title)
	assert.Equal(t, model.ConfidenceHigh, out.Sections[0].Confidence)
	assert.Equal(t, int64(120), out.Usage.InputTokens)
	assert.Equal(t, int64(340), out.Usage.OutputTokens)

	assert.Equal(t, "claude-sonnet-4-5-20250929", client.lastReq.Model)
	require.Len(t, client.lastReq.Messages, 1)
	assert.Contains(t, client.lastReq.Messages[0].Content, "Rajesh Kumar")
}

func TestClaudeProducer_RetriesThenSucceeds(t *testing.T) {
	client := &fakeClient{
		errs:      []error{assert.AnError, assert.AnError, nil},
		responses: []*anthropic.MessageResponse{nil, nil, textResponse(validPayload)},
	}
	p := NewClaudeProducer(client, producerConfig())

	out, err := p.Produce(context.Background(), templateRecord())
	require.NoError(t, err)
	assert.Equal(t, 3, client.calls)
	require.Len(t, out.Sections, 1)
}

func TestClaudeProducer_ExhaustsRetries(t *testing.T) {
	client := &fakeClient{
		errs:      []error{assert.AnError, assert.AnError, assert.AnError},
		responses: []*anthropic.MessageResponse{nil, nil, nil},
	}
	p := NewClaudeProducer(client, producerConfig())

	_, err := p.Produce(context.Background(), templateRecord())
	require.Error(t, err)
	assert.Equal(t, 3, client.calls)
	assert.Contains(t, err.Error(), "all retries exhausted")
}

func TestClaudeProducer_UnparseableResponse(t *testing.T) {
	client := &fakeClient{responses: []*anthropic.MessageResponse{textResponse("I cannot produce that report.")}}
	p := NewClaudeProducer(client, producerConfig())

	_, err := p.Produce(context.Background(), templateRecord())
	assert.Error(t, err)
}

func TestClaudeProducer_Origin(t *testing.T) {
	p := NewClaudeProducer(&fakeClient{}, producerConfig())
	assert.Equal(t, OriginClaude, p.Origin())
}

func TestBuildPrompt_FindingsSorted(t *testing.T) {
	prompt := BuildPrompt(templateRecord())

	assert.Contains(t, prompt, "INVESTIGATIVE FINDINGS:")
	assert.Contains(t, prompt, "sender verification")
	// Findings keys render in sorted order.
	assert.Less(t,
		strings.Index(prompt, "customer contact"),
		strings.Index(prompt, "documentation review"),
	)
}
