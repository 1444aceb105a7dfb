package cmd

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/masmgr/svnlog-go/internal/output"
	"github.com/masmgr/svnlog-go/internal/svnlog"
)

// RangeCmd returns the range command.
func RangeCmd() *cli.Command {
	flags := append(sourceFlags(), outputFlags()...)
	flags = append(flags,
		&cli.StringFlag{
			Name:  "path",
			Usage: "Only commits touching this path (directory prefix or glob)",
		},
		&cli.StringFlag{
			Name:     "start",
			Usage:    "First svn revision of the range",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "end",
			Usage:    "Last svn revision of the range",
			Required: true,
		},
	)

	return &cli.Command{
		Name:    "range",
		Aliases: []string{"r"},
		Usage:   "Show the commits between two svn revisions",
		Flags:   flags,
		Action:  rangeAction,
	}
}

func rangeAction(c *cli.Context) error {
	return executeWithContext(c, func(ctx *CommandContext, c *cli.Context) error {
		path, start, end := c.String("path"), c.String("start"), c.String("end")

		var records []svnlog.CommitRecord
		err := ctx.Client.CommitDataForRevisionRange(c.Context, path, start, end, func(r []svnlog.CommitRecord) {
			records = r
		})
		if err != nil {
			return err
		}

		query := fmt.Sprintf("r%s:r%s", start, end)
		if path != "" {
			query += " " + path
		}

		return writeCommitReport(ctx, c, &output.CommitReport{
			Source:      ctx.Source,
			Query:       query,
			GeneratedAt: time.Now(),
			Records:     records,
		})
	})
}
