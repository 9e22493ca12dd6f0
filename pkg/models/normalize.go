package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/liftoff-labs/liftoff/pkg/scaffold"
)

// Normalize converts raw provider output into the FileTree contract. The rules
// are the same for every backend: a string→string mapping is accepted after
// coercion, anything else must be a string holding a JSON object. Failures are
// typed as OutputParseError and never yield a partial tree.
func Normalize(provider string, raw any) (scaffold.FileTree, error) {
	switch v := raw.(type) {
	case nil:
		return nil, newOutputParseError(provider, errors.New("model returned no output"), "")
	case scaffold.FileTree:
		return coerceMapAny(provider, toAnyMap(v))
	case map[string]string:
		return coerceMapAny(provider, toAnyMap(v))
	case map[string]any:
		return coerceMapAny(provider, v)
	case string:
		return parseTree(provider, v)
	case []byte:
		return parseTree(provider, string(v))
	default:
		return nil, newOutputParseError(provider,
			fmt.Errorf("unsupported output type %T; expected a JSON object string or a path→content mapping", raw), "")
	}
}

func toAnyMap[V any](in map[string]V) map[string]any {
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// parseTree decodes a JSON document and insists on a top-level object.
func parseTree(provider, raw string) (scaffold.FileTree, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, newOutputParseError(provider, errors.New("model returned empty output"), "")
	}

	var decoded any
	if err := json.Unmarshal([]byte(trimmed), &decoded); err != nil {
		return nil, newOutputParseError(provider, fmt.Errorf("model did not return valid JSON: %w", err), raw)
	}

	obj, ok := decoded.(map[string]any)
	if !ok {
		return nil, newOutputParseError(provider,
			fmt.Errorf("expected a JSON object mapping file paths to contents, got %T", decoded), raw)
	}

	return coerceMapAny(provider, obj)
}

// coerceMapAny stringifies every value so the FileTree contract always holds.
func coerceMapAny(provider string, in map[string]any) (scaffold.FileTree, error) {
	tree := make(scaffold.FileTree, len(in))
	for key, value := range in {
		text, err := coerceValue(value)
		if err != nil {
			return nil, newOutputParseError(provider, fmt.Errorf("value for %q: %w", key, err), "")
		}
		tree[key] = text
	}
	return tree, nil
}

func coerceValue(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case nil:
		return "", nil
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("not representable as text: %w", err)
		}
		return string(encoded), nil
	}
}
