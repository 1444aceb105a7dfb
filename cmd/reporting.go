package cmd

import (
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/masmgr/svnlog-go/internal/output"
)

// outputWriterOverride routes reports to the app writer when it has been
// replaced, which keeps tests off the real stdout.
func outputWriterOverride(c *cli.Context) io.Writer {
	if c.String("output") != "" || c.App == nil || c.App.Writer == nil || c.App.Writer == os.Stdout {
		return nil
	}
	return c.App.Writer
}

func writeCommitReport(ctx *CommandContext, c *cli.Context, report *output.CommitReport) error {
	opts := ctx.OutputOptions(c)
	writer := output.NewCommitReportWriter(opts.Format)
	return writer.Write(report, opts)
}
