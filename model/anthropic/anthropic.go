// Package anthropic provides an advisor backed by the Anthropic Claude API.
package anthropic

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/hupe1980/haggle/model"
)

// Options configures the Anthropic advisor (model id, temperature, max tokens,
// API key). Extend via functional options to preserve stability.
type Options struct {
	Model       anthropic.Model
	Temperature float64
	MaxTokens   int64
	APIKey      string
}

// Advisor wraps the Anthropic Messages API behind the generic model.Advisor
// interface.
type Advisor struct {
	client *anthropic.Client
	opts   Options
}

// NewAdvisor creates a new Anthropic advisor using the official client.
func NewAdvisor(optFns ...func(o *Options)) *Advisor {
	opts := Options{
		Model:       anthropic.ModelClaude3_5Sonnet20241022,
		Temperature: 0.2,
		MaxTokens:   512,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	var clientOpts []option.RequestOption
	if opts.APIKey != "" {
		clientOpts = append(clientOpts, option.WithAPIKey(opts.APIKey))
	}

	client := anthropic.NewClient(clientOpts...)

	return &Advisor{
		client: &client,
		opts:   opts,
	}
}

// NewAdvisorFromClient creates a new Anthropic advisor from an existing client.
func NewAdvisorFromClient(client *anthropic.Client, optFns ...func(o *Options)) *Advisor {
	opts := Options{
		Model:       anthropic.ModelClaude3_5Sonnet20241022,
		Temperature: 0.2,
		MaxTokens:   512,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Advisor{
		client: client,
		opts:   opts,
	}
}

// Advise implements model.Advisor by asking the Messages API for a structured
// decision over the transcript.
func (a *Advisor) Advise(ctx context.Context, req model.Request) (*model.Advice, error) {
	params := anthropic.MessageNewParams{
		Model:       a.opts.Model,
		MaxTokens:   a.opts.MaxTokens,
		Temperature: anthropic.Float(a.opts.Temperature),
		System: []anthropic.TextBlockParam{
			{Text: "You are a disciplined price negotiator. Always reply with a single JSON decision object."},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(model.BuildPrompt(req))),
		},
	}

	resp, err := a.client.Messages.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("anthropic api error: %w", err)
	}

	var text strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			text.WriteString(block.AsText().Text)
		}
	}

	return model.ParseAdvice(text.String())
}

// Info implements model.Advisor.
func (a *Advisor) Info() model.Info {
	return model.Info{Name: string(a.opts.Model), Provider: "anthropic"}
}
