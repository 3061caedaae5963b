package rules

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/bgricker/playcheck/internal/filter"
	"github.com/bgricker/playcheck/internal/report"
)

// macosIndicatorPatterns flag operations that only make sense on macOS.
// They run against the raw file text, not the parsed structure: the
// check is intentionally coarse and tolerates false positives.
var macosIndicatorPatterns = []string{
	`homebrew`,
	`brew\s+`,
	`launchd`,
	`xcode-select`,
	`softwareupdate`,
	`\.app["']?\s*$`,
	`\.dmg["']?\s*$`,
	`\.pkg["']?\s*$`,
	`/Applications/`,
	`com\.apple\.`,
	`defaults\s+write`,
	`darwin`,
}

// darwinGuardPatterns match the conditionals that gate a file to macOS.
var darwinGuardPatterns = []string{
	`ansible_system.*==.*["']Darwin["']`,
	`ansible_os_family.*==.*["']Darwin["']`,
	`ansible_distribution.*==.*["']MacOSX["']`,
}

var (
	macosIndicators = compileInsensitive(macosIndicatorPatterns)
	darwinGuards    = compileInsensitive(darwinGuardPatterns)
)

func compileInsensitive(patterns []string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, pattern := range patterns {
		compiled = append(compiled, regexp.MustCompile(`(?i)`+pattern))
	}
	return compiled
}

// DarwinCheck scans files for macOS-specific patterns lacking a Darwin
// guard. Extra indicators from configuration extend the built-in table.
type DarwinCheck struct {
	extra []filter.Pattern
}

// NewDarwinCheck builds a check with optional extra indicator patterns.
func NewDarwinCheck(extra []filter.Pattern) *DarwinCheck {
	return &DarwinCheck{extra: extra}
}

// CheckFile scans one file's raw text. At most one finding per file,
// listing up to three matched indicators. Preflight files are exempt
// since they are expected to be macOS-specific.
func (c *DarwinCheck) CheckFile(root, relPath string) []report.Finding {
	content, err := os.ReadFile(filepath.Join(root, relPath))
	if err != nil {
		return []report.Finding{{File: relPath, Message: fmt.Sprintf("failed to read: %v", err)}}
	}
	text := string(content)

	for _, guard := range darwinGuards {
		if guard.MatchString(text) {
			return nil
		}
	}

	var matched []string
	for i, indicator := range macosIndicators {
		if indicator.MatchString(text) {
			matched = append(matched, macosIndicatorPatterns[i])
		}
	}
	for _, pattern := range c.extra {
		if pattern.Match(text) {
			matched = append(matched, pattern.String())
		}
	}

	if len(matched) == 0 || isPreflight(relPath) {
		return nil
	}

	if len(matched) > 3 {
		matched = matched[:3]
	}
	return []report.Finding{{
		File:    relPath,
		Message: fmt.Sprintf("contains macOS-specific patterns but no Darwin guard: %s", strings.Join(matched, ", ")),
	}}
}
