package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/masmgr/svnlog-go/internal/trac"
)

// URLCmd returns the url command.
func URLCmd() *cli.Command {
	return &cli.Command{
		Name:      "url",
		Usage:     "Print the revision viewer URL for each revision",
		ArgsUsage: "<revision> [revision...]",
		Action:    urlAction,
	}
}

func urlAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("at least one revision is required")
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	client := trac.New(trac.Options{RevisionURL: cfg.Trac.RevisionURL})
	for _, rev := range c.Args().Slice() {
		fmt.Fprintln(c.App.Writer, client.ChangesetURL(rev))
	}
	return nil
}
