package svnlog

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reviewerPattern = regexp.MustCompile(`R=([^.]+)`)
	bugIDPattern    = regexp.MustCompile(`BUG=(\d+)`)
)

func findSubmatch(s string, re *regexp.Regexp) (string, bool) {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// ExtractReviewer returns the text after the first "R=" up to the next dot.
// The capture may span lines.
func ExtractReviewer(body string) *string {
	reviewer, ok := findSubmatch(body, reviewerPattern)
	if !ok {
		return nil
	}
	return &reviewer
}

// ExtractBugID returns the number following the first "BUG=", or nil.
func ExtractBugID(body string) *int {
	digits, ok := findSubmatch(body, bugIDPattern)
	if !ok {
		return nil
	}
	id, err := strconv.Atoi(digits)
	if err != nil {
		// out of range for int
		return nil
	}
	return &id
}

// ParseCommitMessage splits a commit message into its title and body and pulls
// the bug and reviewer markers out of the body.
func ParseCommitMessage(message string) ParsedMessage {
	lines := strings.Split(message, "\n")
	title := lines[0]
	body := strings.TrimSpace(strings.Join(lines[1:], "\n"))

	return ParsedMessage{
		Title:    title,
		Summary:  body,
		BugID:    ExtractBugID(body),
		Reviewer: ExtractReviewer(body),
	}
}
