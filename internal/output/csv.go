package output

import (
	"encoding/csv"
)

// CSVCommitWriter writes commit reports as CSV.
type CSVCommitWriter struct{}

// Write outputs the commit report as CSV.
func (w *CSVCommitWriter) Write(report *CommitReport, options OutputOptions) error {
	records := limitTop(report.Records, options.Top)

	out, file, err := openOutputWriter(options)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	writer := csv.NewWriter(out)

	headers := []string{"Revision", "Author", "Time", "Title", "Summary", "Message", "BugID", "Reviewer", "RevertedRevision"}
	if err := writer.Write(headers); err != nil {
		return err
	}

	for _, r := range records {
		row := []string{
			r.Revision,
			r.Author,
			r.Time,
			r.Title,
			r.Summary,
			r.Message,
			formatBugID(r.BugID),
			formatOptional(r.Reviewer),
			formatOptional(r.RevertedRevision),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
