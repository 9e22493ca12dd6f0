// Package liftoff turns a natural-language project description into generated
// source files. It sequences intent parsing, backend selection, meta-prompt
// construction, generation, advisory validation, and materialization.
package liftoff

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/liftoff-labs/liftoff/pkg/config"
	"github.com/liftoff-labs/liftoff/pkg/intent"
	"github.com/liftoff-labs/liftoff/pkg/models"
	"github.com/liftoff-labs/liftoff/pkg/prompt"
	"github.com/liftoff-labs/liftoff/pkg/scaffold"
)

// SelectBackendFunc picks the generation backend for one request.
type SelectBackendFunc func(ctx context.Context, cfg config.Config) (models.Backend, error)

// Options configure a new LiftOff instance.
type Options struct {
	Config config.Config
	Logger *zap.Logger
	// SelectBackend defaults to models.Select.
	SelectBackend SelectBackendFunc
}

// LiftOff is the orchestration engine. Configuration is resolved once at
// construction; each Create call builds its own backend.
type LiftOff struct {
	cfg           config.Config
	logger        *zap.Logger
	selectBackend SelectBackendFunc
}

// New creates a LiftOff engine with the provided options.
func New(opts Options) (*LiftOff, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	selectBackend := opts.SelectBackend
	if selectBackend == nil {
		selectBackend = models.Select
	}

	cfg := opts.Config
	if cfg.OutputDir == "" {
		cfg.OutputDir = "liftoff_output"
	}

	return &LiftOff{
		cfg:           cfg,
		logger:        logger,
		selectBackend: selectBackend,
	}, nil
}

// Create runs the full pipeline for one project description and writes the
// result under outputDir, or the configured default when outputDir is empty.
// Any failure before the write step aborts with nothing on disk.
func (l *LiftOff) Create(ctx context.Context, promptText, outputDir string) error {
	l.logger.Info("parsing intent")
	meta := intent.Parse(promptText)

	l.logger.Info("selecting backend")
	backend, err := l.selectBackend(ctx, l.cfg)
	if err != nil {
		return err
	}
	l.logger.Info("backend ready", zap.String("backend", fmt.Sprintf("%T", backend)))

	l.logger.Info("building meta-prompt",
		zap.String("name", meta.Name),
		zap.String("kind", meta.Kind))
	metaPrompt := prompt.BuildMetaPrompt(promptText, meta)

	l.logger.Info("generating project")
	tree, err := backend.GenerateProject(ctx, metaPrompt, meta)
	if err != nil {
		return err
	}

	// Validation is advisory: issues are logged and generation proceeds.
	for _, issue := range scaffold.Validate(tree) {
		l.logger.Warn("scaffold issue", zap.String("issue", issue))
	}

	root := outputDir
	if root == "" {
		root = l.cfg.OutputDir
	}

	l.logger.Info("writing project files",
		zap.String("dir", root),
		zap.Int("files", len(tree)))
	if err := scaffold.Write(tree, root); err != nil {
		return err
	}

	l.logger.Info("project created")
	return nil
}
