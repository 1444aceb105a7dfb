package trac

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/masmgr/svnlog-go/internal/svnlog"
)

// DefaultLogEndpoint is the path the recent log is served from.
const DefaultLogEndpoint = "/svnlog"

var (
	// ErrNoFetcher is returned when RecentCommitData is called on a client
	// built without a Fetcher.
	ErrNoFetcher = errors.New("trac: no fetcher configured")
	// ErrNoCache is returned when CommitDataForRevisionRange is called on a
	// client built without a Cache.
	ErrNoCache = errors.New("trac: no cache configured")
)

// Options configures a Client.
type Options struct {
	RevisionURL string
	LogEndpoint string
	Fetcher     Fetcher
	Cache       Cache
}

// Client answers the dashboard's commit queries.
type Client struct {
	revisionURL string
	logEndpoint string
	fetcher     Fetcher
	cache       Cache
}

// New creates a Client. An empty LogEndpoint falls back to DefaultLogEndpoint.
func New(opts Options) *Client {
	endpoint := opts.LogEndpoint
	if endpoint == "" {
		endpoint = DefaultLogEndpoint
	}
	return &Client{
		revisionURL: opts.RevisionURL,
		logEndpoint: endpoint,
		fetcher:     opts.Fetcher,
		cache:       opts.Cache,
	}
}

// ChangesetURL returns the viewer URL for a single revision.
func (c *Client) ChangesetURL(revision string) string {
	params := Params{}.
		Add("view", "rev").
		Add("revision", revision)
	return c.revisionURL + "?" + params.Encode()
}

// RecentCommitData fetches the recent log and passes the parsed records to
// callback. path and limit are accepted for API compatibility; the endpoint is
// fixed and they do not narrow the request.
func (c *Client) RecentCommitData(ctx context.Context, path string, limit int, callback func([]svnlog.CommitRecord)) error {
	if c.fetcher == nil {
		return ErrNoFetcher
	}

	body, err := c.fetcher.Get(ctx, c.logEndpoint)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", c.logEndpoint, err)
	}

	records, err := svnlog.ParseCommitDataBytes(body)
	if err != nil {
		return fmt.Errorf("parse %s: %w", c.logEndpoint, err)
	}

	callback(records)
	return nil
}

// CommitDataForRevisionRange looks the range up in the cache, which is
// responsible for loading and parsing on a miss and for invoking callback.
func (c *Client) CommitDataForRevisionRange(ctx context.Context, path, startRevision, endRevision string, callback func([]svnlog.CommitRecord)) error {
	if c.cache == nil {
		return ErrNoCache
	}
	return c.cache.Get(ctx, RangeKey(path, startRevision, endRevision), callback)
}

// RangeKey joins the range lookup parameters into a cache key.
func RangeKey(path, startRevision, endRevision string) string {
	return strings.Join([]string{path, startRevision, endRevision}, "\n")
}

// SplitRangeKey reverses RangeKey. Paths containing newlines cannot be
// recovered unambiguously; the last two fields are always the revisions.
func SplitRangeKey(key string) (path, startRevision, endRevision string, err error) {
	parts := strings.Split(key, "\n")
	if len(parts) < 3 {
		return "", "", "", fmt.Errorf("trac: malformed range key %q", key)
	}
	n := len(parts)
	return strings.Join(parts[:n-2], "\n"), parts[n-2], parts[n-1], nil
}
