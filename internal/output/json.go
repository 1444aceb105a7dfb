package output

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/masmgr/svnlog-go/internal/svnlog"
)

// JSONCommitWriter writes commit reports as JSON.
type JSONCommitWriter struct{}

// JSONCommitReport is the JSON output structure for a commit report.
type JSONCommitReport struct {
	Source       string                `json:"source"`
	Query        string                `json:"query,omitempty"`
	GeneratedAt  string                `json:"generatedAt"`
	TotalCommits int                   `json:"totalCommits"`
	Commits      []svnlog.CommitRecord `json:"commits"`
}

// Write outputs the commit report as JSON.
func (w *JSONCommitWriter) Write(report *CommitReport, options OutputOptions) error {
	records := limitTop(report.Records, options.Top)
	if records == nil {
		records = []svnlog.CommitRecord{}
	}

	out, file, err := openOutputWriter(options)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(JSONCommitReport{
		Source:       report.Source,
		Query:        report.Query,
		GeneratedAt:  report.GeneratedAt.Format(time.RFC3339),
		TotalCommits: len(report.Records),
		Commits:      records,
	}); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
