package models

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"

	"github.com/liftoff-labs/liftoff/pkg/config"
	"github.com/liftoff-labs/liftoff/pkg/intent"
	"github.com/liftoff-labs/liftoff/pkg/scaffold"
)

const directSystemPrompt = "You are a code scaffolding engine that outputs JSON only."

// DirectBackend is the direct-API strategy: one chat-completion call against
// the provider, no internal fallback and no retries.
type DirectBackend struct {
	client      *openai.Client
	model       string
	maxTokens   int
	temperature float32
}

// NewDirectBackend constructs the direct backend from an API key.
func NewDirectBackend(cfg config.Config) (*DirectBackend, error) {
	if cfg.APIKey == "" {
		return nil, &BackendInitError{
			Model:  cfg.OpenAIModel,
			Cause:  errors.New("API key is empty"),
			Remedy: "set " + config.EnvAPIKey,
		}
	}
	return &DirectBackend{
		client:      openai.NewClient(cfg.APIKey),
		model:       cfg.OpenAIModel,
		maxTokens:   cfg.MaxNewTokens,
		temperature: float32(cfg.Temperature),
	}, nil
}

func (b *DirectBackend) GenerateProject(ctx context.Context, prompt string, _ intent.Metadata) (scaffold.FileTree, error) {
	resp, err := b.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       b.model,
		Temperature: b.temperature,
		MaxTokens:   b.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: directSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return nil, &GenerationError{Provider: "openai", Cause: err}
	}
	if len(resp.Choices) == 0 {
		return nil, &GenerationError{Provider: "openai", Cause: errors.New("no response from OpenAI")}
	}

	return Normalize("openai", resp.Choices[0].Message.Content)
}

var _ Backend = (*DirectBackend)(nil)
