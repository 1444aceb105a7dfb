package output

import (
	"fmt"
)

// MarkdownCommitWriter writes commit reports as Markdown.
type MarkdownCommitWriter struct{}

// Write outputs the commit report as a Markdown table.
func (w *MarkdownCommitWriter) Write(report *CommitReport, options OutputOptions) error {
	records := limitTop(report.Records, options.Top)

	out, file, err := openOutputWriter(options)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	fmt.Fprintln(out, "# Commit Log")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "**Source:** %s\n\n", report.Source)
	if report.Query != "" {
		fmt.Fprintf(out, "**Query:** %s\n\n", escapeMarkdown(report.Query))
	}
	fmt.Fprintf(out, "**Total Commits:** %d\n\n", len(report.Records))

	fmt.Fprintln(out, "| Revision | Time | Author | Reviewer | Bug | Title |")
	fmt.Fprintln(out, "|----------|------|--------|----------|-----|-------|")
	for _, r := range records {
		fmt.Fprintf(out, "| `%s` | %s | %s | %s | %s | %s |\n",
			r.Revision,
			formatRecordTime(r.Time),
			escapeMarkdown(r.Author),
			escapeMarkdown(formatOptional(r.Reviewer)),
			formatBugID(r.BugID),
			escapeMarkdown(r.Title),
		)
	}

	return nil
}
