package models

import (
	"fmt"
)

// ConfigurationError means no usable credential was found. It is fatal and
// carries its own remediation text.
type ConfigurationError struct{}

func (e *ConfigurationError) Error() string {
	return "no generation backend available: set OPENAI_API_KEY for the direct API, " +
		"or HUGGINGFACE_TOKEN for managed inference"
}

// BackendInitError means a selected backend could not be constructed.
type BackendInitError struct {
	Model  string
	Cause  error
	Remedy string
}

func (e *BackendInitError) Error() string {
	msg := fmt.Sprintf("backend initialization failed for model %q: %v", e.Model, e.Cause)
	if e.Remedy != "" {
		msg += ". " + e.Remedy
	}
	return msg
}

func (e *BackendInitError) Unwrap() error { return e.Cause }

// GenerationError means the chosen backend's provider call failed after any
// backend-specific retry. The original provider error is preserved.
type GenerationError struct {
	Provider string
	Cause    error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s generation failed: %v", e.Provider, e.Cause)
}

func (e *GenerationError) Unwrap() error { return e.Cause }

// rawExcerptLimit bounds how much raw model output an error may carry.
const rawExcerptLimit = 400

// OutputParseError is the GenerationError raised when provider output is not a
// JSON object. Excerpt holds at most rawExcerptLimit characters of the raw
// output, never the whole payload.
type OutputParseError struct {
	GenerationError
	Excerpt string
}

func (e *OutputParseError) Error() string {
	msg := fmt.Sprintf("%s returned invalid output: %v", e.Provider, e.Cause)
	if e.Excerpt != "" {
		msg += fmt.Sprintf("\nraw output (truncated):\n%s", e.Excerpt)
	}
	return msg
}

// Unwrap exposes the embedded GenerationError so errors.As treats every parse
// failure as a generation failure too.
func (e *OutputParseError) Unwrap() error { return &e.GenerationError }

func newOutputParseError(provider string, cause error, raw string) *OutputParseError {
	return &OutputParseError{
		GenerationError: GenerationError{Provider: provider, Cause: cause},
		Excerpt:         excerpt(raw),
	}
}

func excerpt(raw string) string {
	if len(raw) <= rawExcerptLimit {
		return raw
	}
	return raw[:rawExcerptLimit] + "..."
}
