package trac

import (
	"context"

	"github.com/masmgr/svnlog-go/internal/svnlog"
)

// MockFetcher is a test double for Fetcher.
// It records requested endpoints and serves a fixed body or error.
type MockFetcher struct {
	Body      []byte
	Error     error
	Endpoints []string
}

// Get records endpoint and returns the predefined body or error.
func (m *MockFetcher) Get(_ context.Context, endpoint string) ([]byte, error) {
	m.Endpoints = append(m.Endpoints, endpoint)
	return m.Body, m.Error
}

// MockCache is a test double for Cache.
// It records keys and, unless Error is set, calls back with Records.
type MockCache struct {
	Records []svnlog.CommitRecord
	Error   error
	Keys    []string
}

// Get records key and answers from the predefined records.
func (m *MockCache) Get(_ context.Context, key string, callback func([]svnlog.CommitRecord)) error {
	m.Keys = append(m.Keys, key)
	if m.Error != nil {
		return m.Error
	}
	callback(m.Records)
	return nil
}

// Compile-time interface conformance checks.
var (
	_ Fetcher = (*MockFetcher)(nil)
	_ Cache   = (*MockCache)(nil)
)
