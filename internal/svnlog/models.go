package svnlog

import "time"

// CommitRecord is the simplified view of one log entry handed to dashboard callers.
//
// Summary always holds the same value as Title. The message body lives in Message.
// Consumers already depend on that layout, so it is kept as is.
type CommitRecord struct {
	Revision         string  `json:"revision"`
	Author           string  `json:"author"`
	Time             string  `json:"time"`
	Title            string  `json:"title"`
	Summary          string  `json:"summary"`
	Message          string  `json:"message"`
	BugID            *int    `json:"bugID"`
	Reviewer         *string `json:"reviewer"`
	RevertedRevision *string `json:"revertedRevision"`
}

// ParsedMessage holds the pieces of a commit message.
// Summary here is the trimmed message body, not the title.
type ParsedMessage struct {
	Title    string
	Summary  string
	BugID    *int
	Reviewer *string
}

// PathAction is the single-letter svn change action.
type PathAction string

const (
	PathAdded    PathAction = "A"
	PathModified PathAction = "M"
	PathDeleted  PathAction = "D"
	PathReplaced PathAction = "R"
)

// PathChange is a changed path listed under a log entry.
type PathChange struct {
	Path   string
	Action PathAction
}

// LogEntry is the writer-side representation of one <logentry>.
type LogEntry struct {
	Revision string
	Author   string
	Date     time.Time
	Paths    []PathChange
	Message  string
}
