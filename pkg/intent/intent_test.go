package intent

import "testing"

func TestParseDetectsKindLanguageFramework(t *testing.T) {
	meta := Parse("Build a REST API in Python with Flask and auth")

	if meta.Kind != "api" {
		t.Fatalf("kind = %q, want api", meta.Kind)
	}
	if meta.Language != "python" {
		t.Fatalf("language = %q, want python", meta.Language)
	}
	if meta.Framework != "flask" {
		t.Fatalf("framework = %q, want flask", meta.Framework)
	}
	if len(meta.Features) == 0 || meta.Features[0] != "auth" {
		t.Fatalf("features = %v, want [auth]", meta.Features)
	}
}

func TestParseDjangoDoesNotImplyGo(t *testing.T) {
	meta := Parse("a django site")
	if meta.Language == "go" {
		t.Fatalf("django matched as go")
	}
}

func TestParseDefaultsAndRawPreserved(t *testing.T) {
	raw := "something entirely undescriptive"
	meta := Parse(raw)

	if meta.Kind != "app" {
		t.Fatalf("kind = %q, want app", meta.Kind)
	}
	if meta.Raw != raw {
		t.Fatalf("raw prompt not preserved: %q", meta.Raw)
	}
	if meta.Name == "" {
		t.Fatalf("name should never be empty")
	}
}

func TestParseEmptyPrompt(t *testing.T) {
	meta := Parse("")
	if meta.Name != "project" {
		t.Fatalf("name = %q, want project", meta.Name)
	}
}

func TestParseNameSkipsStopWords(t *testing.T) {
	meta := Parse("Build me a simple todo app")
	if meta.Name != "todo-app" {
		t.Fatalf("name = %q, want todo-app", meta.Name)
	}
}
