package models

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	ollama "github.com/ollama/ollama/api"

	"github.com/liftoff-labs/liftoff/pkg/config"
)

// localRunner is the in-process inference strategy of the managed backend.
// Construction is the one place it may fail; generation runs with no network
// credential.
type localRunner interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type ollamaRunner struct {
	client    *ollama.Client
	model     string
	maxTokens int
}

// newOllamaRunner initializes the local runtime: the configured host must be
// reachable and the model must already be present. Either failing is the
// managed backend's cue to fall back.
func newOllamaRunner(ctx context.Context, cfg config.Config) (*ollamaRunner, error) {
	u, err := url.Parse(cfg.OllamaHost)
	if err != nil {
		return nil, fmt.Errorf("invalid ollama host %q: %w", cfg.OllamaHost, err)
	}

	client := ollama.NewClient(u, &http.Client{Timeout: 120 * time.Second})

	if err := client.Heartbeat(ctx); err != nil {
		return nil, fmt.Errorf("local runtime unreachable at %s: %w", cfg.OllamaHost, err)
	}
	if _, err := client.Show(ctx, &ollama.ShowRequest{Model: cfg.ModelID}); err != nil {
		return nil, fmt.Errorf("model %q not available locally: %w", cfg.ModelID, err)
	}

	return &ollamaRunner{
		client:    client,
		model:     cfg.ModelID,
		maxTokens: cfg.MaxNewTokens,
	}, nil
}

// Generate runs one deterministic local completion. Ollama returns the
// continuation only, so no prompt-echo stripping is needed here.
func (r *ollamaRunner) Generate(ctx context.Context, prompt string) (string, error) {
	stream := false
	req := &ollama.GenerateRequest{
		Model:  r.model,
		Prompt: prompt,
		Stream: &stream,
		Options: map[string]any{
			"temperature": 0.0,
			"num_predict": r.maxTokens,
		},
	}

	var text strings.Builder
	err := r.client.Generate(ctx, req, func(gr ollama.GenerateResponse) error {
		text.WriteString(gr.Response)
		return nil
	})
	if err != nil {
		return "", err
	}

	return text.String(), nil
}
