// Package config resolves all LiftOff settings once, at startup. Nothing else
// in the module reads the environment: credentials and tuning knobs flow down
// as an explicit Config value.
package config

import (
	"fmt"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Environment variables recognized by Load. EnvAPIKey and EnvHFToken are the
// two credential sources the backend selector decides on.
const (
	EnvAPIKey      = "OPENAI_API_KEY"
	EnvHFToken     = "HUGGINGFACE_TOKEN"
	EnvOllamaHost  = "OLLAMA_HOST"
	EnvModelID     = "LIFTOFF_MODEL_ID"
	EnvOpenAIModel = "LIFTOFF_OPENAI_MODEL"
	EnvOutputDir   = "LIFTOFF_OUTPUT_DIR"
)

// Config holds every setting for one LiftOff instance. It is immutable after
// Load returns.
type Config struct {
	// Credentials. Either may be empty; the backend selector fails if both are.
	APIKey  string `koanf:"api_key"`
	HFToken string `koanf:"hf_token"`

	// ModelID is used by both the local runtime and the hosted inference API.
	ModelID string `koanf:"model_id"`
	// OpenAIModel is the chat model used by the direct API backend.
	OpenAIModel string `koanf:"openai_model"`

	OllamaHost string `koanf:"ollama_host"`
	OutputDir  string `koanf:"output_dir"`

	MaxNewTokens int     `koanf:"max_new_tokens"`
	Temperature  float64 `koanf:"temperature"`
}

func defaults() map[string]any {
	return map[string]any{
		"model_id":       "microsoft/Phi-3-mini-4k-instruct",
		"openai_model":   "gpt-4o-mini",
		"ollama_host":    "http://localhost:11434",
		"output_dir":     "liftoff_output",
		"max_new_tokens": 1024,
		"temperature":    0.2,
	}
}

// envKeys maps recognized environment variables to config keys. Anything else
// in the environment is ignored.
var envKeys = map[string]string{
	EnvAPIKey:      "api_key",
	EnvHFToken:     "hf_token",
	EnvOllamaHost:  "ollama_host",
	EnvModelID:     "model_id",
	EnvOpenAIModel: "openai_model",
	EnvOutputDir:   "output_dir",
}

// Option overrides a loaded value. Explicit arguments take precedence over the
// environment; empty values leave the loaded value in place.
type Option func(*Config)

func WithAPIKey(key string) Option {
	return func(c *Config) {
		if key != "" {
			c.APIKey = key
		}
	}
}

func WithHFToken(token string) Option {
	return func(c *Config) {
		if token != "" {
			c.HFToken = token
		}
	}
}

func WithModelID(id string) Option {
	return func(c *Config) {
		if id != "" {
			c.ModelID = id
		}
	}
}

func WithOpenAIModel(model string) Option {
	return func(c *Config) {
		if model != "" {
			c.OpenAIModel = model
		}
	}
}

func WithOutputDir(dir string) Option {
	return func(c *Config) {
		if dir != "" {
			c.OutputDir = dir
		}
	}
}

// Load resolves configuration in three layers: built-in defaults, then the
// recognized environment variables, then explicit options.
func Load(opts ...Option) (Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return Config{}, fmt.Errorf("load defaults: %w", err)
	}

	envProvider := env.Provider("", ".", func(name string) string {
		return envKeys[name]
	})
	if err := k.Load(envProvider, nil); err != nil {
		return Config{}, fmt.Errorf("load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	cfg.applyDefaults()
	return cfg, nil
}

// applyDefaults backstops values an option may have cleared or the
// environment set to something unusable.
func (c *Config) applyDefaults() {
	d := defaults()
	if c.ModelID == "" {
		c.ModelID = d["model_id"].(string)
	}
	if c.OpenAIModel == "" {
		c.OpenAIModel = d["openai_model"].(string)
	}
	if c.OllamaHost == "" {
		c.OllamaHost = d["ollama_host"].(string)
	}
	if c.OutputDir == "" {
		c.OutputDir = d["output_dir"].(string)
	}
	if c.MaxNewTokens <= 0 {
		c.MaxNewTokens = d["max_new_tokens"].(int)
	}
	if c.Temperature <= 0 {
		c.Temperature = d["temperature"].(float64)
	}
}
