package scaffold

import (
	"fmt"
	"sort"
	"strings"
)

// FileTree maps a relative file path to its full text content. It is the sole
// contract between project generation and materialization: keys are unique,
// slash-separated relative paths, values are text.
type FileTree map[string]string

// Paths returns the tree's paths in a stable order.
func (t FileTree) Paths() []string {
	paths := make([]string, 0, len(t))
	for p := range t {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Validate inspects a generated tree and reports concerns as plain strings.
// Issues are advisory: callers log them and proceed.
func Validate(tree FileTree) []string {
	var issues []string

	if len(tree) == 0 {
		return []string{"file tree is empty"}
	}

	hasReadme := false
	for _, path := range tree.Paths() {
		content := tree[path]
		switch {
		case strings.TrimSpace(path) == "":
			issues = append(issues, "tree contains an empty file path")
		case strings.HasPrefix(path, "/"):
			issues = append(issues, fmt.Sprintf("path %q is absolute; expected a relative path", path))
		case strings.Contains(path, "\\"):
			issues = append(issues, fmt.Sprintf("path %q uses backslash separators", path))
		case escapesRoot(path):
			issues = append(issues, fmt.Sprintf("path %q escapes the output directory", path))
		}
		if strings.TrimSpace(content) == "" {
			issues = append(issues, fmt.Sprintf("file %q has no content", path))
		}
		if strings.EqualFold(strings.TrimSuffix(baseName(path), ".md"), "readme") {
			hasReadme = true
		}
	}

	if !hasReadme {
		issues = append(issues, "no README was generated")
	}

	return issues
}

func baseName(path string) string {
	if i := strings.LastIndex(path, "/"); i >= 0 {
		return path[i+1:]
	}
	return path
}

// escapesRoot reports whether a slash-separated relative path climbs out of
// its root via ".." segments.
func escapesRoot(path string) bool {
	depth := 0
	for _, seg := range strings.Split(path, "/") {
		switch seg {
		case "", ".":
		case "..":
			depth--
			if depth < 0 {
				return true
			}
		default:
			depth++
		}
	}
	return false
}
