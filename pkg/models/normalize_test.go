package models

import (
	"errors"
	"strings"
	"testing"
)

func TestNormalizeJSONObjectRoundTrip(t *testing.T) {
	raw := `{"main.py": "print('hi')\n", "README.md": "# demo — naïve café ☕"}`

	tree, err := Normalize("test", raw)
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}
	if len(tree) != 2 {
		t.Fatalf("tree has %d entries, want 2", len(tree))
	}
	if tree["main.py"] != "print('hi')\n" {
		t.Fatalf("main.py = %q", tree["main.py"])
	}
	if tree["README.md"] != "# demo — naïve café ☕" {
		t.Fatalf("README.md lost content: %q", tree["README.md"])
	}
}

func TestNormalizeAcceptsStringMap(t *testing.T) {
	tree, err := Normalize("test", map[string]string{"a.txt": "alpha"})
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}
	if tree["a.txt"] != "alpha" {
		t.Fatalf("a.txt = %q", tree["a.txt"])
	}
}

func TestNormalizeCoercesAnyMapValues(t *testing.T) {
	tree, err := Normalize("test", map[string]any{
		"plain.txt":   "text",
		"number.txt":  3,
		"nested.json": map[string]any{"k": "v"},
		"empty.txt":   nil,
	})
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}
	if tree["plain.txt"] != "text" {
		t.Fatalf("plain.txt = %q", tree["plain.txt"])
	}
	if tree["number.txt"] != "3" {
		t.Fatalf("number.txt = %q", tree["number.txt"])
	}
	if tree["nested.json"] != `{"k":"v"}` {
		t.Fatalf("nested.json = %q", tree["nested.json"])
	}
	if tree["empty.txt"] != "" {
		t.Fatalf("empty.txt = %q", tree["empty.txt"])
	}
}

func TestNormalizeRejectsMalformedJSON(t *testing.T) {
	tree, err := Normalize("test", "here is your project: {broken")
	if tree != nil {
		t.Fatalf("expected nil tree on parse failure, got %v", tree)
	}

	var parseErr *OutputParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected OutputParseError, got %T: %v", err, err)
	}

	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("OutputParseError must unwrap to GenerationError")
	}
}

func TestNormalizeRejectsNonObjectJSON(t *testing.T) {
	for _, raw := range []string{`[1, 2, 3]`, `"just a string"`, `42`} {
		var parseErr *OutputParseError
		if _, err := Normalize("test", raw); !errors.As(err, &parseErr) {
			t.Fatalf("raw %q: expected OutputParseError, got %v", raw, err)
		}
	}
}

func TestNormalizeErrorExcerptIsBounded(t *testing.T) {
	raw := "not json " + strings.Repeat("x", 2000)

	_, err := Normalize("test", raw)
	var parseErr *OutputParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected OutputParseError, got %v", err)
	}

	if len(parseErr.Excerpt) > rawExcerptLimit+len("...") {
		t.Fatalf("excerpt too long: %d chars", len(parseErr.Excerpt))
	}
	if strings.Count(err.Error(), "x") >= 2000 {
		t.Fatalf("error message carries the full raw output")
	}
}

func TestNormalizeRejectsUnsupportedTypes(t *testing.T) {
	var parseErr *OutputParseError
	if _, err := Normalize("test", 12.5); !errors.As(err, &parseErr) {
		t.Fatalf("expected OutputParseError for float input, got %v", err)
	}
	if _, err := Normalize("test", nil); !errors.As(err, &parseErr) {
		t.Fatalf("expected OutputParseError for nil input, got %v", err)
	}
}
