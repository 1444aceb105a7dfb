package source

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/masmgr/svnlog-go/internal/cache"
	"github.com/masmgr/svnlog-go/internal/git"
	"github.com/masmgr/svnlog-go/internal/svnlog"
	"github.com/masmgr/svnlog-go/internal/trac"
)

// Opener builds a reader for one log request.
type Opener func(opts git.ReadOptions) (git.RepositoryReader, error)

func openHistory(opts git.ReadOptions) (git.RepositoryReader, error) {
	return git.NewHistoryReader(opts)
}

// GitFetcher answers log endpoint requests from a local repository, rendering
// the same XML document a dashboard server would return. The endpoint's query
// may narrow the request with path, limit, start and end.
type GitFetcher struct {
	base git.ReadOptions
	open Opener
}

// NewGitFetcher creates a fetcher reading with base options.
func NewGitFetcher(base git.ReadOptions) *GitFetcher {
	return &GitFetcher{base: base, open: openHistory}
}

// NewGitFetcherWithOpener is NewGitFetcher with a custom reader factory.
func NewGitFetcherWithOpener(base git.ReadOptions, open Opener) *GitFetcher {
	return &GitFetcher{base: base, open: open}
}

// Get renders the log document for endpoint.
func (f *GitFetcher) Get(ctx context.Context, endpoint string) ([]byte, error) {
	opts, err := f.optionsFor(endpoint)
	if err != nil {
		return nil, err
	}

	reader, err := f.open(opts)
	if err != nil {
		return nil, fmt.Errorf("open repository: %w", err)
	}

	entries, err := reader.ReadLog(ctx)
	if err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	var buf bytes.Buffer
	if err := svnlog.WriteDocument(&buf, entries); err != nil {
		return nil, fmt.Errorf("write log document: %w", err)
	}
	return buf.Bytes(), nil
}

func (f *GitFetcher) optionsFor(endpoint string) (git.ReadOptions, error) {
	opts := f.base

	u, err := url.Parse(endpoint)
	if err != nil {
		return opts, fmt.Errorf("parse endpoint %q: %w", endpoint, err)
	}
	q := u.Query()

	if path := q.Get("path"); path != "" {
		opts.Path = path
	}
	start, end := q.Get("start"), q.Get("end")
	if start != "" {
		opts.StartRevision = start
	}
	if end != "" {
		opts.EndRevision = end
	}
	// A revision range is read in full unless the request caps it itself.
	if start != "" || end != "" {
		opts.Limit = 0
	}
	if limit := q.Get("limit"); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n < 0 {
			return opts, fmt.Errorf("invalid limit %q", limit)
		}
		opts.Limit = n
	}
	return opts, nil
}

// RangeLoader returns a cache loader that resolves range keys by requesting
// endpoint with path, start and end query parameters and parsing the reply.
func RangeLoader(fetcher trac.Fetcher, endpoint string) cache.Loader[[]svnlog.CommitRecord] {
	return func(ctx context.Context, key string) ([]svnlog.CommitRecord, error) {
		path, start, end, err := trac.SplitRangeKey(key)
		if err != nil {
			return nil, err
		}

		query := trac.Params{}.
			Add("path", path).
			Add("start", start).
			Add("end", end)

		body, err := fetcher.Get(ctx, endpoint+"?"+query.Encode())
		if err != nil {
			return nil, err
		}
		return svnlog.ParseCommitDataBytes(body)
	}
}

// Compile-time interface conformance check.
var _ trac.Fetcher = (*GitFetcher)(nil)
