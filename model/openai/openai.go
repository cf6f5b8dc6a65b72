// Package openai provides an advisor backed by the OpenAI Chat Completions
// API. It adapts haggle's normalized advisor request into the SDK's message
// format and parses the structured decision back.
package openai

import (
	"context"
	"fmt"

	"github.com/hupe1980/haggle/model"
	"github.com/openai/openai-go"
)

// Options configure the OpenAI advisor. Fields mirror a subset of Chat
// Completion parameters intentionally kept minimal; extend via functional
// options without breaking callers.
type Options struct {
	Model               string
	Temperature         float64
	MaxCompletionTokens int64
}

// Advisor wraps the OpenAI Chat Completions API behind the generic
// model.Advisor interface.
type Advisor struct {
	client *openai.Client
	opts   Options
}

// NewAdvisor creates a new OpenAI advisor using the official client.
func NewAdvisor(optFns ...func(o *Options)) *Advisor {
	client := openai.NewClient()
	return NewAdvisorFromClient(&client, optFns...)
}

// NewAdvisorFromClient creates a new OpenAI advisor from an existing client.
func NewAdvisorFromClient(client *openai.Client, optFns ...func(o *Options)) *Advisor {
	opts := Options{
		Model:               openai.ChatModelGPT4oMini,
		Temperature:         0.2,
		MaxCompletionTokens: 512,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Advisor{client: client, opts: opts}
}

// Advise implements model.Advisor by asking for a structured decision over the
// transcript.
func (a *Advisor) Advise(ctx context.Context, req model.Request) (*model.Advice, error) {
	params := openai.ChatCompletionNewParams{
		Model:               a.opts.Model,
		Temperature:         openai.Float(a.opts.Temperature),
		MaxCompletionTokens: openai.Int(a.opts.MaxCompletionTokens),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage("You are a disciplined price negotiator. Always reply with a single JSON decision object."),
			openai.UserMessage(model.BuildPrompt(req)),
		},
	}

	resp, err := a.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("openai api error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no choices returned")
	}

	return model.ParseAdvice(resp.Choices[0].Message.Content)
}

// Info implements model.Advisor.
func (a *Advisor) Info() model.Info {
	return model.Info{Name: a.opts.Model, Provider: "openai"}
}
