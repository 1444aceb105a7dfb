package output

import (
	"io"
	"time"

	"github.com/masmgr/svnlog-go/internal/svnlog"
)

// Compile-time interface conformance checks.
var (
	_ CommitReportWriter = (*ConsoleCommitWriter)(nil)
	_ CommitReportWriter = (*JSONCommitWriter)(nil)
	_ CommitReportWriter = (*CSVCommitWriter)(nil)
	_ CommitReportWriter = (*MarkdownCommitWriter)(nil)
	_ CommitReportWriter = (*CICommitWriter)(nil)
)

// OutputFormat represents the output format type.
type OutputFormat string

const (
	FormatConsole  OutputFormat = "console"
	FormatJSON     OutputFormat = "json"
	FormatCSV      OutputFormat = "csv"
	FormatMarkdown OutputFormat = "markdown"
	FormatCI       OutputFormat = "ci"
)

// OutputOptions controls output behavior.
type OutputOptions struct {
	Format     OutputFormat
	Top        int
	OutputPath string
	// Writer, when set, takes precedence over OutputPath and stdout.
	Writer io.Writer
}

// CommitReport holds the records returned by one query.
type CommitReport struct {
	Source      string // repository path or server URL
	Query       string // human readable description of the lookup
	GeneratedAt time.Time
	Records     []svnlog.CommitRecord
}

// CommitReportWriter writes commit reports.
type CommitReportWriter interface {
	Write(report *CommitReport, options OutputOptions) error
}

// NewCommitReportWriter creates a commit report writer for the specified format.
func NewCommitReportWriter(format OutputFormat) CommitReportWriter {
	switch format {
	case FormatJSON:
		return &JSONCommitWriter{}
	case FormatCSV:
		return &CSVCommitWriter{}
	case FormatMarkdown:
		return &MarkdownCommitWriter{}
	case FormatCI:
		return &CICommitWriter{}
	default:
		return &ConsoleCommitWriter{}
	}
}
