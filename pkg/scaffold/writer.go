package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Write materializes a file tree under dir, creating parent directories as
// needed. Every path is checked before anything is written, so a rejected
// path leaves the target directory untouched.
func Write(tree FileTree, dir string) error {
	if dir == "" {
		return fmt.Errorf("output directory is empty")
	}

	targets := make(map[string]string, len(tree))
	for _, path := range tree.Paths() {
		target, err := resolve(dir, path)
		if err != nil {
			return err
		}
		targets[path] = target
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory %s: %w", dir, err)
	}

	for _, path := range tree.Paths() {
		target := targets[path]
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("create directory for %s: %w", path, err)
		}
		if err := os.WriteFile(target, []byte(tree[path]), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}

	return nil
}

// resolve joins path under dir and rejects anything that would land outside it.
func resolve(dir, path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", fmt.Errorf("refusing to write empty file path")
	}
	if strings.HasPrefix(path, "/") || escapesRoot(path) {
		return "", fmt.Errorf("refusing to write %q: path leaves the output directory", path)
	}

	target := filepath.Join(dir, filepath.FromSlash(path))
	rel, err := filepath.Rel(dir, target)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("refusing to write %q: path leaves the output directory", path)
	}
	return target, nil
}
