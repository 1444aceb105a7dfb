package output

import (
	"fmt"
	"text/tabwriter"

	"github.com/fatih/color"
)

// ConsoleCommitWriter writes commit reports to the console.
type ConsoleCommitWriter struct{}

// Write outputs the commit report as a colored table.
func (w *ConsoleCommitWriter) Write(report *CommitReport, options OutputOptions) error {
	records := limitTop(report.Records, options.Top)

	out, file, err := openOutputWriter(options)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	fmt.Fprintln(out, color.GreenString("Commit Log"))
	fmt.Fprintf(out, "Source: %s\n", report.Source)
	if report.Query != "" {
		fmt.Fprintf(out, "Query: %s\n", report.Query)
	}
	fmt.Fprintf(out, "Total commits: %d\n\n", len(report.Records))

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Revision\tTime\tAuthor\tReviewer\tBug\tTitle")
	for _, r := range records {
		bug := formatBugID(r.BugID)
		if bug != "" {
			bug = color.YellowString(bug)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			color.CyanString(r.Revision),
			formatRecordTime(r.Time),
			r.Author,
			formatOptional(r.Reviewer),
			bug,
			truncateMessage(r.Title, 72),
		)
	}
	return tw.Flush()
}
