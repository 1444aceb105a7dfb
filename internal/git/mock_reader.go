package git

import (
	"context"

	"github.com/masmgr/svnlog-go/internal/svnlog"
)

// MockHistoryReader is a test double for HistoryReader.
// It allows tests to provide predefined log entries without needing a real Git repository.
type MockHistoryReader struct {
	Entries []svnlog.LogEntry
	Error   error
	Calls   int
}

// NewMockHistoryReader creates a new MockHistoryReader with the given data.
func NewMockHistoryReader(entries []svnlog.LogEntry, err error) *MockHistoryReader {
	return &MockHistoryReader{
		Entries: entries,
		Error:   err,
	}
}

// ReadLog returns the predefined entries or error.
func (m *MockHistoryReader) ReadLog(_ context.Context) ([]svnlog.LogEntry, error) {
	m.Calls++
	return m.Entries, m.Error
}

// Compile-time interface conformance check.
var _ RepositoryReader = (*MockHistoryReader)(nil)
