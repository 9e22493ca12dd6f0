// Package models provides the generation backends: strategies for turning a
// meta-prompt into a file tree via a language model, selected by credential
// priority and normalized into one output contract.
package models

import (
	"context"

	"github.com/liftoff-labs/liftoff/pkg/intent"
	"github.com/liftoff-labs/liftoff/pkg/scaffold"
)

// Backend is a strategy for obtaining a generated project from a model.
// Callers hold this interface only and never branch on the concrete type.
type Backend interface {
	GenerateProject(ctx context.Context, prompt string, meta intent.Metadata) (scaffold.FileTree, error)
}
