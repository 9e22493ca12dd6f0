// Package prompt builds the provider-ready meta-prompt for one generation
// request. The result is built once and passed to exactly one backend call.
package prompt

import (
	"fmt"
	"strings"

	"github.com/liftoff-labs/liftoff/pkg/intent"
)

// BuildMetaPrompt renders the project description and parsed metadata into a
// single instruction string asking for a JSON file-tree object.
func BuildMetaPrompt(promptText string, meta intent.Metadata) string {
	var b strings.Builder
	b.Grow(len(promptText) + 512)

	b.WriteString("You are a project scaffolding engine.\n")
	b.WriteString("Respond with a single JSON object and nothing else: ")
	b.WriteString("each key is a relative file path, each value is the complete text content of that file.\n")
	b.WriteString("Do not wrap the JSON in markdown fences. Do not add commentary.\n\n")

	if meta.Name != "" {
		fmt.Fprintf(&b, "Project name: %s\n", meta.Name)
	}
	if meta.Kind != "" {
		fmt.Fprintf(&b, "Project kind: %s\n", meta.Kind)
	}
	if meta.Language != "" {
		fmt.Fprintf(&b, "Language: %s\n", meta.Language)
	}
	if meta.Framework != "" {
		fmt.Fprintf(&b, "Framework: %s\n", meta.Framework)
	}
	if len(meta.Features) > 0 {
		fmt.Fprintf(&b, "Requested features: %s\n", strings.Join(meta.Features, ", "))
	}

	b.WriteString("\nProject description:\n")
	b.WriteString(promptText)
	b.WriteString("\n")

	return b.String()
}
