package models

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"

	"github.com/liftoff-labs/liftoff/pkg/config"
	"github.com/liftoff-labs/liftoff/pkg/intent"
)

func newDirectBackendAgainst(t *testing.T, serverURL string) *DirectBackend {
	t.Helper()
	clientCfg := openai.DefaultConfig("sk-test")
	clientCfg.BaseURL = serverURL + "/v1"
	return &DirectBackend{
		client:      openai.NewClientWithConfig(clientCfg),
		model:       "gpt-4o-mini",
		maxTokens:   256,
		temperature: 0.2,
	}
}

func chatResponse(content string) map[string]any {
	return map[string]any{
		"id":     "chatcmpl-test",
		"object": "chat.completion",
		"model":  "gpt-4o-mini",
		"choices": []map[string]any{{
			"index":         0,
			"finish_reason": "stop",
			"message":       map[string]any{"role": "assistant", "content": content},
		}},
	}
}

func TestDirectBackendSingleCallProducesTree(t *testing.T) {
	var gotReq openai.ChatCompletionRequest
	calls := 0

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(chatResponse(`{"main.py": "print('todo app')\n"}`))
	}))
	defer srv.Close()

	b := newDirectBackendAgainst(t, srv.URL)
	tree, err := b.GenerateProject(context.Background(), "meta prompt", intent.Metadata{})
	if err != nil {
		t.Fatalf("GenerateProject returned error: %v", err)
	}

	if calls != 1 {
		t.Fatalf("made %d calls, want exactly 1", calls)
	}
	if tree["main.py"] != "print('todo app')\n" {
		t.Fatalf("tree = %v", tree)
	}
	if len(gotReq.Messages) != 2 || gotReq.Messages[0].Role != openai.ChatMessageRoleSystem {
		t.Fatalf("request must lead with the JSON-only system message: %+v", gotReq.Messages)
	}
	if gotReq.Messages[0].Content != directSystemPrompt {
		t.Fatalf("system message = %q", gotReq.Messages[0].Content)
	}
	if gotReq.MaxTokens != 256 {
		t.Fatalf("max tokens = %d, want bounded budget", gotReq.MaxTokens)
	}
}

func TestDirectBackendPropagatesProviderErrorWithoutRetry(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, `{"error": {"message": "rate limited"}}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	b := newDirectBackendAgainst(t, srv.URL)
	_, err := b.GenerateProject(context.Background(), "meta prompt", intent.Metadata{})

	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected GenerationError, got %T: %v", err, err)
	}
	if calls != 1 {
		t.Fatalf("made %d calls, direct backend must not retry", calls)
	}
}

func TestDirectBackendNonJSONContentIsParseError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(chatResponse("Sure! Here is your project:"))
	}))
	defer srv.Close()

	b := newDirectBackendAgainst(t, srv.URL)
	_, err := b.GenerateProject(context.Background(), "meta prompt", intent.Metadata{})

	var parseErr *OutputParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected OutputParseError, got %T: %v", err, err)
	}
}

func TestNewDirectBackendRequiresKey(t *testing.T) {
	_, err := NewDirectBackend(config.Config{OpenAIModel: "gpt-4o-mini"})

	var initErr *BackendInitError
	if !errors.As(err, &initErr) {
		t.Fatalf("expected BackendInitError, got %T: %v", err, err)
	}
}
