package git

import (
	"regexp"
	"strconv"
	"strings"
)

// gitSvnIDPattern matches the footer git-svn appends to mirrored commits, e.g.
// "git-svn-id: svn://svn.chromium.org/blink/trunk@139455 bbb929c8-8fbe-4397-9dbb-9b2b20218538".
var gitSvnIDPattern = regexp.MustCompile(`(?m)^git-svn-id: \S+@(\d+)(?:[ \t].*)?$`)

// SvnRevision returns the svn revision recorded in a git-svn footer.
func SvnRevision(message string) (string, bool) {
	m := gitSvnIDPattern.FindStringSubmatch(message)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// StripGitSvnID removes git-svn footers and trailing whitespace from message.
func StripGitSvnID(message string) string {
	return strings.TrimRightFunc(gitSvnIDPattern.ReplaceAllString(message, ""), isSpace)
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// revisionRange is an inclusive numeric window over svn revisions.
type revisionRange struct {
	active bool
	low    int
	high   int
}

func parseRevisionRange(start, end string) (revisionRange, error) {
	if start == "" && end == "" {
		return revisionRange{}, nil
	}
	low, high := 0, int(^uint(0)>>1)
	if start != "" {
		n, err := strconv.Atoi(start)
		if err != nil {
			return revisionRange{}, &RevisionError{Revision: start, Err: err}
		}
		low = n
	}
	if end != "" {
		n, err := strconv.Atoi(end)
		if err != nil {
			return revisionRange{}, &RevisionError{Revision: end, Err: err}
		}
		high = n
	}
	if start != "" && end != "" && low > high {
		low, high = high, low
	}
	return revisionRange{active: true, low: low, high: high}, nil
}

func (r revisionRange) contains(revision string) bool {
	if !r.active {
		return true
	}
	n, err := strconv.Atoi(revision)
	if err != nil {
		return false
	}
	return n >= r.low && n <= r.high
}

// RevisionError reports a revision bound that is not an svn revision number.
type RevisionError struct {
	Revision string
	Err      error
}

func (e *RevisionError) Error() string {
	return "invalid svn revision " + strconv.Quote(e.Revision) + ": " + e.Err.Error()
}

func (e *RevisionError) Unwrap() error { return e.Err }
