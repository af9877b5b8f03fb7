package domain

// RunEntry is one recorded validation run.
type RunEntry struct {
	Timestamp  string `json:"timestamp"`
	CommitHash string `json:"commit_hash,omitempty"`
	Passed     bool   `json:"passed"`
	Errors     int    `json:"errors"`
	Warnings   int    `json:"warnings"`
}

// NewRunEntry summarizes a report for the run history.
func NewRunEntry(r *Report, timestamp, commit string) RunEntry {
	return RunEntry{
		Timestamp:  timestamp,
		CommitHash: commit,
		Passed:     r.Passed,
		Errors:     r.ErrorCount(),
		Warnings:   r.WarningCount(),
	}
}
