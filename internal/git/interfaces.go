package git

import (
	"context"

	"github.com/masmgr/svnlog-go/internal/svnlog"
)

// RepositoryReader defines the interface for reading a repository's commit log.
// This abstraction allows for easier testing and potential alternative implementations.
type RepositoryReader interface {
	// ReadLog returns log entries newest first.
	ReadLog(ctx context.Context) ([]svnlog.LogEntry, error)
}

// Compile-time interface conformance check.
var _ RepositoryReader = (*HistoryReader)(nil)
