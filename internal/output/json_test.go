package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/bgricker/playcheck/internal/report"
)

func TestJSONRenderCheck(t *testing.T) {
	rep := CheckReport{
		Check: "idempotency",
		Findings: []report.Finding{
			{File: "playbooks/site.yml", Task: "Pull model", Message: "uses 'shell' without changed_when, creates, or removes"},
		},
		Summary: report.Summary{TotalFiles: 3, TotalFindings: 1},
	}

	buf := &bytes.Buffer{}
	renderer := NewJSON(buf)
	if err := renderer.RenderCheck(rep); err != nil {
		t.Fatalf("render json: %v", err)
	}

	var decoded CheckReport
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if decoded.Check != rep.Check {
		t.Fatalf("check mismatch: %s vs %s", decoded.Check, rep.Check)
	}
	if len(decoded.Findings) != 1 || decoded.Findings[0].Task != "Pull model" {
		t.Fatalf("findings mismatch: %+v", decoded.Findings)
	}
	if decoded.Summary.TotalFiles != 3 {
		t.Fatalf("summary mismatch: %+v", decoded.Summary)
	}
}

func TestJSONRenderAggregate(t *testing.T) {
	rep := Report{
		Checks: []CheckReport{
			{Check: "darwin", Summary: report.Summary{TotalFiles: 2}},
			{Check: "models", Findings: []report.Finding{{Message: "duplicate model name: 'llama3:8b'"}}, Summary: report.Summary{TotalFindings: 1, ExitCode: 1}},
		},
		Summary: report.Summary{TotalFiles: 2, TotalFindings: 1, ExitCode: 1},
	}

	buf := &bytes.Buffer{}
	if err := NewJSON(buf).Render(rep); err != nil {
		t.Fatalf("render json: %v", err)
	}

	var decoded Report
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if len(decoded.Checks) != 2 {
		t.Fatalf("expected 2 checks, got %d", len(decoded.Checks))
	}
	if decoded.Summary.ExitCode != 1 {
		t.Fatalf("expected exit code serialized, got %+v", decoded.Summary)
	}
	if decoded.Checks[0].Findings != nil {
		t.Fatalf("empty findings should be omitted: %+v", decoded.Checks[0])
	}
}
