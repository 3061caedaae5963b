package filter

import (
	"fmt"
	"regexp"
	"strings"
)

// Pattern represents a compiled filter condition supporting substring and regex matching.
type Pattern struct {
	raw   string
	regex *regexp.Regexp
	lower string
}

// Compile transforms raw pattern strings into Pattern values. Patterns
// wrapped in slashes compile as regular expressions; anything else is a
// case-insensitive substring match.
func Compile(patterns []string) ([]Pattern, error) {
	result := make([]Pattern, 0, len(patterns))
	for _, raw := range patterns {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		if strings.HasPrefix(raw, "/") && strings.HasSuffix(raw, "/") && len(raw) >= 2 {
			expr := raw[1 : len(raw)-1]
			re, err := regexp.Compile(expr)
			if err != nil {
				return nil, fmt.Errorf("compile regexp %q: %w", raw, err)
			}
			result = append(result, Pattern{raw: raw, regex: re})
			continue
		}
		result = append(result, Pattern{raw: raw, lower: strings.ToLower(raw)})
	}
	return result, nil
}

// Match reports whether the pattern matches the supplied string.
func (p Pattern) Match(s string) bool {
	if s == "" {
		return false
	}
	if p.regex != nil {
		return p.regex.MatchString(s)
	}
	return strings.Contains(strings.ToLower(s), p.lower)
}

// String returns the pattern as originally written.
func (p Pattern) String() string {
	return p.raw
}

// Files returns the paths matching at least one pattern. An empty
// pattern list keeps every path.
func Files(paths []string, patterns []Pattern) []string {
	if len(patterns) == 0 {
		return paths
	}
	result := make([]string, 0, len(paths))
	for _, path := range paths {
		for _, pattern := range patterns {
			if pattern.Match(path) {
				result = append(result, path)
				break
			}
		}
	}
	return result
}
