// Package intent turns a free-form project description into a small amount of
// structured metadata. Parsing is heuristic and total: any well-formed string
// produces a Metadata value, and downstream components treat it as opaque.
package intent

import (
	"strings"
)

// Metadata is the structured reading of a user prompt. It is passed by value
// through the generation pipeline and never mutated after Parse returns.
type Metadata struct {
	Name      string
	Kind      string
	Language  string
	Framework string
	Features  []string
	Raw       string
}

var kindKeywords = []struct {
	kind  string
	words []string
}{
	{"cli", []string{"cli", "command line", "command-line", "terminal tool"}},
	{"api", []string{"api", "rest", "service", "server", "backend"}},
	{"web", []string{"web", "website", "webapp", "frontend", "dashboard"}},
	{"library", []string{"library", "package", "sdk"}},
}

var languageKeywords = []string{
	"python", "go", "golang", "javascript", "typescript", "rust", "java", "ruby",
}

var frameworkKeywords = []string{
	"flask", "django", "fastapi", "react", "vue", "svelte", "gin", "echo", "express", "rails",
}

var featureKeywords = []string{
	"auth", "database", "docker", "tests", "logging", "todo", "search", "cache",
}

// Parse extracts metadata from a project description. It never fails.
func Parse(promptText string) Metadata {
	lower := strings.ToLower(promptText)

	meta := Metadata{
		Kind: "app",
		Raw:  promptText,
	}

	for _, k := range kindKeywords {
		for _, w := range k.words {
			if strings.Contains(lower, w) {
				meta.Kind = k.kind
				break
			}
		}
		if meta.Kind != "app" {
			break
		}
	}

	for _, lang := range languageKeywords {
		if containsWord(lower, lang) {
			if lang == "golang" {
				lang = "go"
			}
			meta.Language = lang
			break
		}
	}

	for _, fw := range frameworkKeywords {
		if containsWord(lower, fw) {
			meta.Framework = fw
			break
		}
	}

	for _, feat := range featureKeywords {
		if strings.Contains(lower, feat) {
			meta.Features = append(meta.Features, feat)
		}
	}

	meta.Name = slug(lower)
	return meta
}

// containsWord matches on word boundaries so "go" does not fire inside "django".
func containsWord(haystack, word string) bool {
	fields := strings.FieldsFunc(haystack, func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9' || r == '+' || r == '#')
	})
	for _, f := range fields {
		if f == word {
			return true
		}
	}
	return false
}

// slug derives a short project name from the first few useful words.
func slug(lower string) string {
	stop := map[string]bool{
		"a": true, "an": true, "the": true, "for": true, "with": true,
		"build": true, "create": true, "make": true, "me": true, "using": true,
		"in": true, "simple": true, "new": true,
	}

	var parts []string
	for _, f := range strings.Fields(lower) {
		f = strings.Trim(f, ".,!?\"'")
		if f == "" || stop[f] {
			continue
		}
		parts = append(parts, f)
		if len(parts) == 3 {
			break
		}
	}
	if len(parts) == 0 {
		return "project"
	}
	return strings.Join(parts, "-")
}
