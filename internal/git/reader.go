package git

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"

	"github.com/masmgr/svnlog-go/internal/svnlog"
)

// HistoryReader reads the commit log of a Git repository as svn log entries.
type HistoryReader struct {
	repo      *git.Repository
	opts      ReadOptions
	revisions revisionRange
}

// NewHistoryReader creates a new history reader for the given repository.
func NewHistoryReader(opts ReadOptions) (*HistoryReader, error) {
	for _, pattern := range append(append([]string{}, opts.Include...), opts.Exclude...) {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid glob pattern %q", pattern)
		}
	}
	if hasGlobMeta(opts.Path) && !doublestar.ValidatePattern(scopePattern(opts.Path)) {
		return nil, fmt.Errorf("invalid path pattern %q", opts.Path)
	}

	revisions, err := parseRevisionRange(opts.StartRevision, opts.EndRevision)
	if err != nil {
		return nil, err
	}

	r := &HistoryReader{opts: opts, revisions: revisions}
	if opts.Backend == BackendGitCLI {
		return r, nil
	}

	repo, err := git.PlainOpen(opts.RepoPath)
	if err != nil {
		return nil, err
	}
	r.repo = repo
	return r, nil
}

// ReadLog reads log entries from the repository, newest first.
func (r *HistoryReader) ReadLog(ctx context.Context) ([]svnlog.LogEntry, error) {
	if r.opts.Backend == BackendGitCLI {
		return r.readLogGitCLI(ctx)
	}

	from, err := r.resolveStart()
	if err != nil {
		return nil, err
	}

	cIter, err := r.repo.Log(&git.LogOptions{From: from})
	if err != nil {
		return nil, err
	}
	defer cIter.Close()

	entries := make([]svnlog.LogEntry, 0)

	err = cIter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		paths, err := r.commitPaths(ctx, c)
		if err != nil {
			return fmt.Errorf("diff %s: %w", c.Hash, err)
		}

		entry, ok, err := r.newEntry(c.Hash.String(), authorName(c.Author.Name, c.Author.Email), c.Committer.When, c.Message, paths)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		entries = append(entries, entry)
		if r.opts.Limit > 0 && len(entries) >= r.opts.Limit {
			return storer.ErrStop
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *HistoryReader) resolveStart() (plumbing.Hash, error) {
	rev := strings.TrimSpace(r.opts.Branch)
	if rev == "" || strings.EqualFold(rev, "HEAD") {
		ref, err := r.repo.Head()
		if err != nil {
			return plumbing.ZeroHash, err
		}
		return ref.Hash(), nil
	}

	hash, err := r.repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("resolve %q: %w", rev, err)
	}
	return *hash, nil
}

// commitPaths lists the files a commit changed relative to its first parent.
// Root commits are compared against the empty tree.
func (r *HistoryReader) commitPaths(ctx context.Context, c *object.Commit) ([]svnlog.PathChange, error) {
	tree, err := c.Tree()
	if err != nil {
		return nil, err
	}

	var parentTree *object.Tree
	if c.NumParents() > 0 {
		parent, err := c.Parent(0)
		if err != nil {
			return nil, err
		}
		parentTree, err = parent.Tree()
		if err != nil {
			return nil, err
		}
	}

	changes, err := object.DiffTreeContext(ctx, parentTree, tree)
	if err != nil {
		return nil, err
	}

	paths := make([]svnlog.PathChange, 0, len(changes))
	for _, change := range changes {
		switch {
		case change.From.Name == "":
			paths = append(paths, svnlog.PathChange{Path: change.To.Name, Action: svnlog.PathAdded})
		case change.To.Name == "":
			paths = append(paths, svnlog.PathChange{Path: change.From.Name, Action: svnlog.PathDeleted})
		default:
			paths = append(paths, svnlog.PathChange{Path: change.To.Name, Action: svnlog.PathModified})
		}
	}
	return paths, nil
}

// newEntry applies revision and path filters and builds the log entry.
// ok is false when the commit is filtered out.
func (r *HistoryReader) newEntry(sha, author string, when time.Time, message string, paths []svnlog.PathChange) (svnlog.LogEntry, bool, error) {
	revision, found := SvnRevision(message)
	if !found {
		revision = sha
	}
	if !r.revisions.contains(revision) {
		return svnlog.LogEntry{}, false, nil
	}

	kept := make([]svnlog.PathChange, 0, len(paths))
	for _, p := range paths {
		matches, err := r.matchesFilters(p.Path)
		if err != nil {
			return svnlog.LogEntry{}, false, err
		}
		if !matches {
			continue
		}
		kept = append(kept, svnlog.PathChange{Path: "/" + p.Path, Action: p.Action})
	}
	if r.opts.hasPathFilters() && len(kept) == 0 {
		return svnlog.LogEntry{}, false, nil
	}

	return svnlog.LogEntry{
		Revision: revision,
		Author:   author,
		Date:     when,
		Paths:    kept,
		Message:  StripGitSvnID(message),
	}, true, nil
}

// matchesFilters checks if a path matches the scope and include/exclude filters.
func (r *HistoryReader) matchesFilters(path string) (bool, error) {
	// Normalize path separators
	path = strings.ReplaceAll(path, "\\", "/")

	if r.opts.Path != "" && !matchesScope(r.opts.Path, path) {
		return false, nil
	}

	// Check exclude patterns first
	for _, pattern := range r.opts.Exclude {
		matched, err := doublestar.Match(pattern, path)
		if err != nil {
			return false, err
		}
		if matched {
			return false, nil
		}
	}

	// If no include patterns, accept all
	if len(r.opts.Include) == 0 {
		return true, nil
	}

	for _, pattern := range r.opts.Include {
		matched, err := doublestar.Match(pattern, path)
		if err != nil {
			return false, err
		}
		if matched {
			return true, nil
		}
	}

	return false, nil
}

// matchesScope reports whether path lies under scope. A scope with glob
// metacharacters is matched as a doublestar pattern; otherwise it is a
// directory or file prefix.
func matchesScope(scope, path string) bool {
	pattern := scopePattern(scope)
	if pattern == "" {
		return true
	}
	if hasGlobMeta(pattern) {
		matched, _ := doublestar.Match(pattern, path)
		return matched
	}
	return path == pattern || strings.HasPrefix(path, pattern+"/")
}

func scopePattern(scope string) string {
	return strings.Trim(strings.ReplaceAll(scope, "\\", "/"), "/")
}

func hasGlobMeta(s string) bool {
	return strings.ContainsAny(s, "*?[{")
}

func authorName(name, email string) string {
	if email != "" {
		return email
	}
	return name
}
