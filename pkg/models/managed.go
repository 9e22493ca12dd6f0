package models

import (
	"context"
	"fmt"

	"github.com/liftoff-labs/liftoff/pkg/config"
	"github.com/liftoff-labs/liftoff/pkg/intent"
	"github.com/liftoff-labs/liftoff/pkg/scaffold"
)

// backendState is decided once, at construction, and never changes: there is
// no re-attempt of the local runtime after falling back to remote, and no
// per-call fallback when a generation fails.
type backendState int

const (
	stateUnavailable backendState = iota
	stateLocalReady
	stateRemoteReady
)

func (s backendState) String() string {
	switch s {
	case stateLocalReady:
		return "local-ready"
	case stateRemoteReady:
		return "remote-ready"
	default:
		return "unavailable"
	}
}

// ManagedBackend composes local inference with hosted inference as a
// construction-time fallback chain, behind the single Backend contract.
type ManagedBackend struct {
	modelID string
	state   backendState
	local   localRunner
	remote  remoteRunner
}

// NewManagedBackend tries the local runtime first; if that fails and a token
// is configured, it falls back to the hosted client for the same model.
// With neither available, construction fails.
func NewManagedBackend(ctx context.Context, cfg config.Config) (*ManagedBackend, error) {
	return newManagedBackend(ctx, cfg,
		func(ctx context.Context, cfg config.Config) (localRunner, error) {
			return newOllamaRunner(ctx, cfg)
		},
		func(cfg config.Config) remoteRunner {
			return newHostedClient(cfg)
		},
	)
}

func newManagedBackend(
	ctx context.Context,
	cfg config.Config,
	newLocal func(context.Context, config.Config) (localRunner, error),
	newRemote func(config.Config) remoteRunner,
) (*ManagedBackend, error) {
	b := &ManagedBackend{modelID: cfg.ModelID}

	local, localErr := newLocal(ctx, cfg)
	if localErr == nil {
		b.state = stateLocalReady
		b.local = local
		return b, nil
	}

	if cfg.HFToken != "" {
		b.state = stateRemoteReady
		b.remote = newRemote(cfg)
		return b, nil
	}

	return nil, &BackendInitError{
		Model:  cfg.ModelID,
		Cause:  localErr,
		Remedy: "install a local Ollama runtime and pull the model, or set " + config.EnvHFToken + " for hosted inference",
	}
}

func (b *ManagedBackend) GenerateProject(ctx context.Context, prompt string, _ intent.Metadata) (scaffold.FileTree, error) {
	switch b.state {
	case stateLocalReady:
		raw, err := b.local.Generate(ctx, prompt)
		if err != nil {
			return nil, &GenerationError{Provider: "local", Cause: err}
		}
		return Normalize("local", raw)

	case stateRemoteReady:
		raw, err := b.remote.TextGeneration(ctx, prompt)
		if err != nil {
			// Some hosted endpoints only speak the chat API: one retry, then fail.
			chatRaw, chatErr := b.remote.ChatCompletion(ctx, prompt)
			if chatErr != nil {
				return nil, &GenerationError{
					Provider: "hosted",
					Cause:    fmt.Errorf("text generation: %v; chat completion: %w", err, chatErr),
				}
			}
			raw = chatRaw
		}
		return Normalize("hosted", raw)

	default:
		return nil, &GenerationError{
			Provider: "managed",
			Cause:    fmt.Errorf("backend for model %q is unavailable", b.modelID),
		}
	}
}

var _ Backend = (*ManagedBackend)(nil)
