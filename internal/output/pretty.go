package output

import (
	"fmt"
	"io"

	"github.com/bgricker/playcheck/internal/report"
)

// PrettyRenderer renders check results in a human-friendly format.
type PrettyRenderer struct {
	out io.Writer
}

// NewPretty creates a PrettyRenderer writing to the provided writer.
func NewPretty(out io.Writer) *PrettyRenderer {
	return &PrettyRenderer{out: out}
}

// Presentation carries the fixed strings a check uses in pretty mode.
type Presentation struct {
	Title      string
	OK         string
	FoundTitle string
	Notes      []string
}

// RenderCheck prints one check's outcome: the title, then either the OK
// line or the list of findings followed by any note lines.
func (p *PrettyRenderer) RenderCheck(pres Presentation, findings []report.Finding) error {
	if _, err := fmt.Fprintf(p.out, "%s\n\n", pres.Title); err != nil {
		return err
	}

	if len(findings) == 0 {
		_, err := fmt.Fprintln(p.out, pres.OK)
		return err
	}

	if _, err := fmt.Fprintf(p.out, "%s\n\n", pres.FoundTitle); err != nil {
		return err
	}
	for _, f := range findings {
		if _, err := fmt.Fprintf(p.out, "  - %s\n", FormatFinding(f)); err != nil {
			return err
		}
	}
	if len(pres.Notes) > 0 {
		if _, err := fmt.Fprintln(p.out); err != nil {
			return err
		}
		for _, note := range pres.Notes {
			if _, err := fmt.Fprintln(p.out, note); err != nil {
				return err
			}
		}
	}
	return nil
}

// FormatFinding collapses a finding into a single display line.
func FormatFinding(f report.Finding) string {
	switch {
	case f.File == "":
		return f.Message
	case f.Task == "":
		return fmt.Sprintf("%s: %s", f.File, f.Message)
	default:
		return fmt.Sprintf("%s: Task '%s' %s", f.File, f.Task, f.Message)
	}
}
