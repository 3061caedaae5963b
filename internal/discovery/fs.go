package discovery

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// TaskFiles returns root-relative paths of every YAML file the task
// checks inspect: playbooks plus each role's task files. Missing
// directories contribute nothing; an empty result is not an error,
// since the advisory checks treat it as a clean pass.
func TaskFiles(root, playbooksDir, rolesDir string) ([]string, error) {
	globs := []string{
		filepath.Join(root, playbooksDir, "*.yml"),
		filepath.Join(root, rolesDir, "*", "tasks", "*.yml"),
	}

	matches := make(map[string]struct{})
	for _, pattern := range globs {
		found, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", pattern, err)
		}
		for _, m := range found {
			matches[m] = struct{}{}
		}
	}

	paths := make([]string, 0, len(matches))
	for p := range matches {
		paths = append(paths, mustRelOrClean(root, p))
	}
	sort.Strings(paths)

	return paths, nil
}

func mustRelOrClean(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return filepath.Clean(path)
	}
	rel = filepath.Clean(rel)
	if rel == "." || strings.HasPrefix(rel, "..") {
		return filepath.Clean(path)
	}
	return rel
}
