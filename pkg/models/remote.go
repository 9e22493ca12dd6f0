package models

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/liftoff-labs/liftoff/pkg/config"
)

const (
	hostedInferenceURL = "https://api-inference.huggingface.co/models"
	hostedRouterURL    = "https://router.huggingface.co/v1"
)

// remoteRunner is the hosted-inference strategy of the managed backend. Both
// calls target the same model; ChatCompletion exists because some hosted
// endpoints only speak the chat API.
type remoteRunner interface {
	TextGeneration(ctx context.Context, prompt string) (string, error)
	ChatCompletion(ctx context.Context, prompt string) (string, error)
}

type hostedClient struct {
	httpClient  *http.Client
	chat        *openai.Client
	baseURL     string
	token       string
	model       string
	maxTokens   int
	temperature float64
}

func newHostedClient(cfg config.Config) *hostedClient {
	chatCfg := openai.DefaultConfig(cfg.HFToken)
	chatCfg.BaseURL = hostedRouterURL

	return &hostedClient{
		httpClient:  &http.Client{Timeout: 120 * time.Second},
		chat:        openai.NewClientWithConfig(chatCfg),
		baseURL:     hostedInferenceURL,
		token:       cfg.HFToken,
		model:       cfg.ModelID,
		maxTokens:   cfg.MaxNewTokens,
		temperature: cfg.Temperature,
	}
}

// TextGeneration calls the hosted text-generation endpoint for the model.
func (h *hostedClient) TextGeneration(ctx context.Context, prompt string) (string, error) {
	endpoint := fmt.Sprintf("%s/%s", h.baseURL, h.model)

	body := map[string]any{
		"inputs": prompt,
		"parameters": map[string]any{
			"max_new_tokens":   h.maxTokens,
			"temperature":      h.temperature,
			"return_full_text": false,
		},
	}
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(body); err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, buf)
	if err != nil {
		return "", fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+h.token)

	resp, err := h.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("text generation failed: %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	return decodeGeneratedText(data)
}

// decodeGeneratedText accepts the two response shapes the hosted API uses:
// a list of generations or a single generation object.
func decodeGeneratedText(data []byte) (string, error) {
	var list []struct {
		GeneratedText string `json:"generated_text"`
	}
	if err := json.Unmarshal(data, &list); err == nil && len(list) > 0 {
		return list[0].GeneratedText, nil
	}

	var single struct {
		GeneratedText string `json:"generated_text"`
	}
	if err := json.Unmarshal(data, &single); err == nil && single.GeneratedText != "" {
		return single.GeneratedText, nil
	}

	return "", errors.New("unrecognized text-generation response shape")
}

// ChatCompletion sends the same prompt as a user message through the hosted
// OpenAI-compatible router.
func (h *hostedClient) ChatCompletion(ctx context.Context, prompt string) (string, error) {
	resp, err := h.chat.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       h.model,
		Temperature: float32(h.temperature),
		MaxTokens:   h.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no response from hosted chat completion")
	}
	return resp.Choices[0].Message.Content, nil
}
