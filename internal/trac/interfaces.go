package trac

import (
	"context"

	"github.com/masmgr/svnlog-go/internal/svnlog"
)

// Fetcher retrieves the raw body served at a log endpoint.
type Fetcher interface {
	Get(ctx context.Context, endpoint string) ([]byte, error)
}

// Cache resolves a range key to commit records, loading them on a miss, and
// hands the records to callback.
type Cache interface {
	Get(ctx context.Context, key string, callback func([]svnlog.CommitRecord)) error
}
