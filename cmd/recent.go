package cmd

import (
	"time"

	"github.com/urfave/cli/v2"

	"github.com/masmgr/svnlog-go/internal/output"
	"github.com/masmgr/svnlog-go/internal/svnlog"
)

// RecentCmd returns the recent command.
func RecentCmd() *cli.Command {
	flags := append(sourceFlags(), outputFlags()...)
	flags = append(flags,
		&cli.StringFlag{
			Name:  "path",
			Usage: "Path to query (accepted, not applied to the log endpoint)",
		},
		&cli.IntFlag{
			Name:  "limit",
			Usage: "Number of commits (accepted, not applied to the log endpoint)",
		},
	)

	return &cli.Command{
		Name:   "recent",
		Usage:  "Show the most recent commits from the log endpoint",
		Flags:  flags,
		Action: recentAction,
	}
}

func recentAction(c *cli.Context) error {
	return executeWithContext(c, func(ctx *CommandContext, c *cli.Context) error {
		if c.IsSet("path") || c.IsSet("limit") {
			warnf("--path and --limit do not narrow %s", ctx.Config.Trac.LogEndpoint)
		}

		var records []svnlog.CommitRecord
		err := ctx.Client.RecentCommitData(c.Context, c.String("path"), c.Int("limit"), func(r []svnlog.CommitRecord) {
			records = r
		})
		if err != nil {
			return err
		}

		return writeCommitReport(ctx, c, &output.CommitReport{
			Source:      ctx.Source,
			Query:       "recent",
			GeneratedAt: time.Now(),
			Records:     records,
		})
	})
}
