package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/masmgr/svnlog-go/config"
	"github.com/masmgr/svnlog-go/internal/cache"
	"github.com/masmgr/svnlog-go/internal/fetch"
	"github.com/masmgr/svnlog-go/internal/git"
	"github.com/masmgr/svnlog-go/internal/output"
	"github.com/masmgr/svnlog-go/internal/source"
	"github.com/masmgr/svnlog-go/internal/trac"
)

// CommandContext holds common state for command execution.
// It wires the configured fetcher, range cache and client together.
type CommandContext struct {
	Config  *config.Config
	Source  string
	Fetcher trac.Fetcher
	Client  *trac.Client
}

// NewCommandContext creates a context from CLI flags.
func NewCommandContext(c *cli.Context) (*CommandContext, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}

	fetcher, sourceName, err := newFetcher(cfg)
	if err != nil {
		return nil, err
	}

	rangeCache := cache.NewAsync(cfg.Cache.MaxEntries, source.RangeLoader(fetcher, cfg.Trac.LogEndpoint))

	return &CommandContext{
		Config:  cfg,
		Source:  sourceName,
		Fetcher: fetcher,
		Client: trac.New(trac.Options{
			RevisionURL: cfg.Trac.RevisionURL,
			LogEndpoint: cfg.Trac.LogEndpoint,
			Fetcher:     fetcher,
			Cache:       rangeCache,
		}),
	}, nil
}

// newFetcher picks the dashboard server when one is configured and the local
// repository otherwise.
func newFetcher(cfg *config.Config) (trac.Fetcher, string, error) {
	if cfg.Server.BaseURL != "" {
		f := fetch.NewHTTPFetcher(fetch.Options{
			BaseURL: cfg.Server.BaseURL,
			Timeout: cfg.Server.Timeout(),
		})
		return f, cfg.Server.BaseURL, nil
	}

	opts, err := readOptions(cfg)
	if err != nil {
		return nil, "", err
	}
	return source.NewGitFetcher(opts), cfg.Source.RepoPath, nil
}

func readOptions(cfg *config.Config) (git.ReadOptions, error) {
	backend, err := parseBackend(cfg.Source.Backend)
	if err != nil {
		return git.ReadOptions{}, err
	}
	return git.ReadOptions{
		RepoPath: cfg.Source.RepoPath,
		Branch:   cfg.Source.Branch,
		Include:  cfg.Filters.Include,
		Exclude:  cfg.Filters.Exclude,
		Limit:    cfg.Source.Limit,
		Backend:  backend,
	}, nil
}

// OutputOptions creates OutputOptions from the merged configuration and flags.
func (ctx *CommandContext) OutputOptions(c *cli.Context) output.OutputOptions {
	return output.OutputOptions{
		Format:     getOutputFormat(ctx.Config.Output.Format),
		Top:        ctx.Config.Output.Top,
		OutputPath: c.String("output"),
		Writer:     outputWriterOverride(c),
	}
}

// executeWithContext builds the command context and runs fn with it.
func executeWithContext(c *cli.Context, fn func(ctx *CommandContext, c *cli.Context) error) error {
	ctx, err := NewCommandContext(c)
	if err != nil {
		return fmt.Errorf("failed to set up: %w", err)
	}
	return fn(ctx, c)
}
