package cmd

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/masmgr/svnlog-go/internal/git"
	"github.com/masmgr/svnlog-go/internal/svnlog"
)

// ExportCmd returns the export command.
func ExportCmd() *cli.Command {
	flags := sourceFlags()
	flags = append(flags,
		&cli.StringFlag{
			Name:  "path",
			Usage: "Only commits touching this path (directory prefix or glob)",
		},
		&cli.IntFlag{
			Name:  "limit",
			Usage: "Maximum number of log entries (default: from config)",
		},
		&cli.StringFlag{
			Name:  "start",
			Usage: "First svn revision",
		},
		&cli.StringFlag{
			Name:  "end",
			Usage: "Last svn revision",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output file path (default: stdout)",
		},
	)

	return &cli.Command{
		Name:   "export",
		Usage:  "Write a local repository's history as an svn log XML document",
		Flags:  flags,
		Action: exportAction,
	}
}

func exportAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	opts, err := readOptions(cfg)
	if err != nil {
		return err
	}
	opts.Path = c.String("path")
	opts.StartRevision = c.String("start")
	opts.EndRevision = c.String("end")
	if c.IsSet("limit") {
		opts.Limit = c.Int("limit")
	}

	reader, err := git.NewHistoryReader(opts)
	if err != nil {
		return fmt.Errorf("failed to open repository: %w", err)
	}
	entries, err := reader.ReadLog(c.Context)
	if err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}

	out := c.App.Writer
	if path := c.String("output"); path != "" {
		file, err := os.Create(path)
		if err != nil {
			return err
		}
		defer file.Close()
		out = file
	}

	return svnlog.WriteDocument(out, entries)
}
