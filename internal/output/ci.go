package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/masmgr/svnlog-go/internal/svnlog"
)

// CICommitWriter writes commit reports as NDJSON (one JSON object per line) for CI pipelines.
type CICommitWriter struct{}

// CISummary is the first line of CI output, containing aggregate statistics.
type CISummary struct {
	Type           string `json:"type"`
	Source         string `json:"source"`
	TotalCommits   int    `json:"totalCommits"`
	WithBugID      int    `json:"withBugID"`
	WithReviewer   int    `json:"withReviewer"`
	NewestRevision string `json:"newestRevision,omitempty"`
	OldestRevision string `json:"oldestRevision,omitempty"`
}

// CICommitEntry represents a single commit in CI output.
type CICommitEntry struct {
	Type string `json:"type"`
	svnlog.CommitRecord
}

// Write outputs the commit report as NDJSON.
func (w *CICommitWriter) Write(report *CommitReport, options OutputOptions) error {
	records := limitTop(report.Records, options.Top)

	out, file, err := openOutputWriter(options)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	summary := CISummary{
		Type:         "summary",
		Source:       report.Source,
		TotalCommits: len(report.Records),
	}
	for _, r := range report.Records {
		if r.BugID != nil {
			summary.WithBugID++
		}
		if r.Reviewer != nil {
			summary.WithReviewer++
		}
	}
	if n := len(report.Records); n > 0 {
		summary.NewestRevision = report.Records[0].Revision
		summary.OldestRevision = report.Records[n-1].Revision
	}

	if err := writeNDJSONLine(out, summary); err != nil {
		return err
	}
	for _, r := range records {
		if err := writeNDJSONLine(out, CICommitEntry{Type: "commit", CommitRecord: r}); err != nil {
			return err
		}
	}
	return nil
}

func writeNDJSONLine(w io.Writer, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal NDJSON: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}
