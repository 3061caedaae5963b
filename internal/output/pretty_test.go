package output

import (
	"bytes"
	"testing"

	"github.com/bgricker/playcheck/internal/report"
)

func TestRenderCheckClean(t *testing.T) {
	buf := &bytes.Buffer{}
	renderer := NewPretty(buf)

	pres := Presentation{
		Title: "Checking things...",
		OK:    "✅ All clear",
	}
	if err := renderer.RenderCheck(pres, nil); err != nil {
		t.Fatalf("render: %v", err)
	}

	want := "Checking things...\n\n✅ All clear\n"
	if buf.String() != want {
		t.Fatalf("unexpected output:\n%q\nwant:\n%q", buf.String(), want)
	}
}

func TestRenderCheckFindings(t *testing.T) {
	buf := &bytes.Buffer{}
	renderer := NewPretty(buf)

	pres := Presentation{
		Title:      "Checking things...",
		OK:         "✅ All clear",
		FoundTitle: "⚠️  Issues found:",
		Notes:      []string{"Note: review each case."},
	}
	findings := []report.Finding{
		{File: "playbooks/site.yml", Task: "Pull model", Message: "uses 'shell' without changed_when, creates, or removes"},
		{File: "roles/ollama", Message: "missing tasks/main.yml"},
		{Message: "no roles found in roles"},
	}

	if err := renderer.RenderCheck(pres, findings); err != nil {
		t.Fatalf("render: %v", err)
	}

	want := "Checking things...\n\n" +
		"⚠️  Issues found:\n\n" +
		"  - playbooks/site.yml: Task 'Pull model' uses 'shell' without changed_when, creates, or removes\n" +
		"  - roles/ollama: missing tasks/main.yml\n" +
		"  - no roles found in roles\n" +
		"\nNote: review each case.\n"
	if buf.String() != want {
		t.Fatalf("unexpected output:\n%q\nwant:\n%q", buf.String(), want)
	}
}

func TestFormatFinding(t *testing.T) {
	cases := []struct {
		finding report.Finding
		want    string
	}{
		{report.Finding{Message: "roles directory not found: roles"}, "roles directory not found: roles"},
		{report.Finding{File: "a.yml", Message: "failed to parse: oops"}, "a.yml: failed to parse: oops"},
		{report.Finding{File: "a.yml", Task: "Install", Message: "uses 'command'"}, "a.yml: Task 'Install' uses 'command'"},
	}
	for i, c := range cases {
		if got := FormatFinding(c.finding); got != c.want {
			t.Fatalf("case %d: want %q, got %q", i, c.want, got)
		}
	}
}
