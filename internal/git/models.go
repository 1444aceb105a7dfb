package git

// Backend selects how history is read.
type Backend string

const (
	// BackendGoGit reads history in-process with go-git.
	BackendGoGit Backend = "go-git"
	// BackendGitCLI shells out to the git binary.
	BackendGitCLI Backend = "git"
)

// ReadOptions configures the history reader.
type ReadOptions struct {
	RepoPath string
	Branch   string
	// Path scopes the log to entries touching it. It may be a directory
	// prefix or a doublestar glob.
	Path    string
	Include []string // Glob patterns to include
	Exclude []string // Glob patterns to exclude
	// Limit caps the number of entries returned. Zero means no cap.
	Limit int
	// StartRevision and EndRevision bound svn revisions, inclusive, in either
	// order. Entries without an svn revision are dropped when either is set.
	StartRevision string
	EndRevision   string
	Backend       Backend
}

// hasPathFilters reports whether entries must touch a matching path.
func (o ReadOptions) hasPathFilters() bool {
	return o.Path != "" || len(o.Include) > 0 || len(o.Exclude) > 0
}
