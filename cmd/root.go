package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/masmgr/svnlog-go/config"
	"github.com/masmgr/svnlog-go/internal/git"
	"github.com/masmgr/svnlog-go/internal/output"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "svnlog",
		Usage:   "Commit log queries for the gardening dashboard",
		Version: "1.0.0",
		Commands: []*cli.Command{
			RecentCmd(),
			RangeCmd(),
			URLCmd(),
			ExportCmd(),
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
			},
		},
	}
}

// Flags selecting where the log comes from.
func sourceFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "repo",
			Aliases: []string{"r"},
			Usage:   "Path to a Git mirror of the svn repository",
		},
		&cli.StringFlag{
			Name:    "branch",
			Aliases: []string{"b"},
			Usage:   "Branch to read",
		},
		&cli.StringFlag{
			Name:  "backend",
			Usage: "History backend for local repositories (go-git, git)",
		},
		&cli.StringFlag{
			Name:    "server",
			Aliases: []string{"s"},
			Usage:   "Dashboard server base URL; overrides --repo",
		},
		&cli.StringSliceFlag{
			Name:  "include",
			Usage: "Glob patterns to include (can be specified multiple times)",
		},
		&cli.StringSliceFlag{
			Name:  "exclude",
			Usage: "Glob patterns to exclude (can be specified multiple times)",
		},
	}
}

// Flags controlling report output.
func outputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format (console, json, csv, markdown, ci)",
		},
		&cli.IntFlag{
			Name:    "top",
			Aliases: []string{"n"},
			Usage:   "Number of records to show (0 for all)",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output file path (default: stdout)",
		},
	}
}

// getOutputFormat parses the output format flag.
func getOutputFormat(s string) output.OutputFormat {
	switch s {
	case "json":
		return output.FormatJSON
	case "csv":
		return output.FormatCSV
	case "markdown", "md":
		return output.FormatMarkdown
	case "ci", "ndjson":
		return output.FormatCI
	default:
		return output.FormatConsole
	}
}

// parseBackend maps a backend name to a git.Backend.
func parseBackend(s string) (git.Backend, error) {
	switch s {
	case "", "go-git":
		return git.BackendGoGit, nil
	case "git":
		return git.BackendGitCLI, nil
	default:
		return "", fmt.Errorf("invalid backend: %s (expected go-git or git)", s)
	}
}

// loadConfig loads configuration from file or defaults and applies flag overrides.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if c.IsSet("repo") {
		cfg.Source.RepoPath = c.String("repo")
	}
	if c.IsSet("branch") {
		cfg.Source.Branch = c.String("branch")
	}
	if c.IsSet("backend") {
		cfg.Source.Backend = c.String("backend")
	}
	if c.IsSet("server") {
		cfg.Server.BaseURL = c.String("server")
	}
	if includes := c.StringSlice("include"); len(includes) > 0 {
		cfg.Filters.Include = includes
	}
	if excludes := c.StringSlice("exclude"); len(excludes) > 0 {
		cfg.Filters.Exclude = excludes
	}
	if c.IsSet("format") {
		cfg.Output.Format = c.String("format")
	}
	if c.IsSet("top") {
		cfg.Output.Top = c.Int("top")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// warnf prints a warning to stderr.
func warnf(format string, args ...interface{}) {
	color.New(color.FgYellow).Fprintf(os.Stderr, "warning: "+format+"\n", args...)
}

// Run executes the CLI application.
func Run() {
	if err := App().Run(os.Args); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
