package narrative

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/sells-group/sar-cli/internal/config"
	"github.com/sells-group/sar-cli/internal/model"
	"github.com/sells-group/sar-cli/pkg/anthropic"
)

// ClaudeProducer generates narratives through the Anthropic API. Calls are
// rate limited and retried with exponential backoff before the failure is
// surfaced to the caller (which typically falls back to the template).
type ClaudeProducer struct {
	client  anthropic.Client
	cfg     config.AnthropicConfig
	limiter *rate.Limiter
}

// NewClaudeProducer creates a ClaudeProducer from a client and config.
func NewClaudeProducer(client anthropic.Client, cfg config.AnthropicConfig) *ClaudeProducer {
	rpm := cfg.RequestsPerMinute
	if rpm <= 0 {
		rpm = 10
	}
	return &ClaudeProducer{
		client:  client,
		cfg:     cfg,
		limiter: rate.NewLimiter(rate.Limit(float64(rpm)/60.0), 1),
	}
}

func (p *ClaudeProducer) Origin() Origin { return OriginClaude }

// Produce builds the generation prompt, calls the model and parses the
// structured narrative out of the response text.
func (p *ClaudeProducer) Produce(ctx context.Context, rec *model.CaseRecord) (*model.ProducerOutput, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, eris.Wrap(err, "narrative: rate limiter wait")
	}

	req := anthropic.MessageRequest{
		Model:       p.cfg.Model,
		MaxTokens:   p.cfg.MaxTokens,
		System:      systemText,
		Temperature: &p.cfg.Temperature,
		Messages: []anthropic.Message{
			{Role: "user", Content: BuildPrompt(rec)},
		},
	}

	resp, err := p.createWithRetry(ctx, req)
	if err != nil {
		return nil, eris.Wrap(err, "narrative: claude produce")
	}

	resp.Usage.LogCost(p.cfg.Model, "narrative")

	out, err := ParseOutput(resp.Text())
	if err != nil {
		return nil, err
	}
	out.Usage = model.TokenUsage{
		InputTokens:  resp.Usage.InputTokens,
		OutputTokens: resp.Usage.OutputTokens,
	}
	return out, nil
}

func (p *ClaudeProducer) createWithRetry(ctx context.Context, req anthropic.MessageRequest) (*anthropic.MessageResponse, error) {
	attempts := p.cfg.MaxRetries
	if attempts <= 0 {
		attempts = 3
	}

	var lastErr error
	backoff := 500 * time.Millisecond
	for attempt := 0; attempt < attempts; attempt++ {
		resp, err := p.client.CreateMessage(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if attempt < attempts-1 {
			zap.L().Warn("narrative: claude call failed, retrying",
				zap.Int("attempt", attempt+1),
				zap.Error(err),
			)
			timer := time.NewTimer(backoff)
			select {
			case <-ctx.Done():
				timer.Stop()
				return nil, eris.Wrap(ctx.Err(), "narrative: retry canceled")
			case <-timer.C:
			}
			backoff *= 2
		}
	}
	return nil, eris.Wrap(lastErr, "all retries exhausted")
}
