package output

import (
	"encoding/json"
	"io"

	"github.com/bgricker/playcheck/internal/report"
)

// JSONRenderer emits structured check data.
type JSONRenderer struct {
	out io.Writer
}

// NewJSON creates a JSON renderer writing to out.
func NewJSON(out io.Writer) *JSONRenderer {
	return &JSONRenderer{out: out}
}

// CheckReport captures the JSON output schema for one check.
type CheckReport struct {
	Check    string           `json:"check"`
	Findings []report.Finding `json:"findings,omitempty"`
	Summary  report.Summary   `json:"summary"`
}

// Report captures the JSON output schema for an aggregate run.
type Report struct {
	Checks  []CheckReport  `json:"checks"`
	Summary report.Summary `json:"summary"`
}

// RenderCheck encodes a single check report as JSON.
func (j *JSONRenderer) RenderCheck(rep CheckReport) error {
	enc := json.NewEncoder(j.out)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

// Render encodes an aggregate report as JSON.
func (j *JSONRenderer) Render(rep Report) error {
	enc := json.NewEncoder(j.out)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}
