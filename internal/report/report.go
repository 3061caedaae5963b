package report

// Finding captures one diagnostic produced by a check. Findings are
// emitted in file order, then section order, then task index order, and
// are never mutated afterwards.
type Finding struct {
	File    string `json:"file,omitempty"`
	Task    string `json:"task,omitempty"`
	Message string `json:"message"`
}

// Summary aggregates the outcome of a single check run.
type Summary struct {
	TotalFiles    int `json:"total_files"`
	TotalFindings int `json:"total_findings"`
	ExitCode      int `json:"exit_code"`
}
