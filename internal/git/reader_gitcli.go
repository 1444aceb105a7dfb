package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/go-git/go-git/v5/plumbing/filemode"

	"github.com/masmgr/svnlog-go/internal/svnlog"
)

type gitRawEntry struct {
	srcMode filemode.FileMode
	dstMode filemode.FileMode
	status  string // e.g. "M", "A", "D"
	path    string
}

func (r *HistoryReader) readLogGitCLI(ctx context.Context) ([]svnlog.LogEntry, error) {
	// Each commit starts with 0x1e (record separator); header fields are
	// NUL-separated and the full message is closed by 0x1f, after which the
	// --raw -z entries follow.
	const format = "%x1e%H%x00%cI%x00%an%x00%ae%x00%B%x1f"

	args := []string{
		"-C", r.opts.RepoPath,
		"log",
		"--no-color",
		"--no-renames",
		"--no-abbrev",
		"--diff-merges=first-parent",
		"--pretty=format:" + format,
		"--raw", "-z",
	}

	if r.opts.Limit > 0 && !r.opts.hasPathFilters() && !r.revisions.active {
		args = append(args, "--max-count="+strconv.Itoa(r.opts.Limit))
	}

	rev := strings.TrimSpace(r.opts.Branch)
	if rev != "" && !strings.EqualFold(rev, "HEAD") {
		args = append(args, rev)
	}

	out, err := exec.CommandContext(ctx, "git", args...).CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("git log failed: %w: %s", err, strings.TrimSpace(string(out)))
	}

	return r.parseGitLog(out)
}

func (r *HistoryReader) parseGitLog(out []byte) ([]svnlog.LogEntry, error) {
	records := bytes.Split(out, []byte{0x1e})
	entries := make([]svnlog.LogEntry, 0)

	for _, rec := range records {
		if len(rec) == 0 {
			continue
		}

		header, body := splitHeaderBody(rec)
		if len(header) == 0 {
			continue
		}

		fields := bytes.SplitN(header, []byte{0x00}, 5)
		if len(fields) < 5 {
			return nil, fmt.Errorf("unexpected git log header format")
		}

		sha := string(fields[0])
		when, err := time.Parse(time.RFC3339, string(fields[1]))
		if err != nil {
			return nil, fmt.Errorf("parse committer date: %w", err)
		}
		author := authorName(string(fields[2]), string(fields[3]))
		message := string(fields[4])

		rawEntries, err := parseGitRawEntries(body)
		if err != nil {
			return nil, err
		}

		paths := make([]svnlog.PathChange, 0, len(rawEntries))
		for _, e := range rawEntries {
			if !e.srcMode.IsFile() && !e.dstMode.IsFile() {
				continue
			}
			if e.path == "" {
				continue
			}
			paths = append(paths, svnlog.PathChange{Path: e.path, Action: actionFromGitStatus(e.status)})
		}

		entry, ok, err := r.newEntry(sha, author, when, message, paths)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		entries = append(entries, entry)
		if r.opts.Limit > 0 && len(entries) >= r.opts.Limit {
			break
		}
	}

	return entries, nil
}

func splitHeaderBody(rec []byte) (header []byte, body []byte) {
	// The message is terminated by 0x1f, then diff output.
	if idx := bytes.IndexByte(rec, 0x1f); idx != -1 {
		return rec[:idx], rec[idx+1:]
	}
	return rec, nil
}

func parseGitRawEntries(body []byte) ([]gitRawEntry, error) {
	i := 0
	for i < len(body) && (body[i] == '\n' || body[i] == '\r' || body[i] == 0) {
		i++
	}

	entries := make([]gitRawEntry, 0, 16)

	for i < len(body) && body[i] == ':' {
		meta, ok := readUntilNUL(body, &i)
		if !ok {
			return nil, fmt.Errorf("unexpected git --raw format (missing NUL)")
		}

		fields := strings.Fields(string(meta))
		if len(fields) < 5 {
			return nil, fmt.Errorf("unexpected git --raw meta: %q", string(meta))
		}

		srcMode, err := parseGitFileMode(strings.TrimPrefix(fields[0], ":"))
		if err != nil {
			return nil, err
		}
		dstMode, err := parseGitFileMode(fields[1])
		if err != nil {
			return nil, err
		}

		status := fields[len(fields)-1]

		path, ok := readStringUntilNUL(body, &i)
		if !ok {
			return nil, fmt.Errorf("unexpected git --raw format (missing path)")
		}
		if len(status) > 0 && (status[0] == 'R' || status[0] == 'C') {
			// Copies still carry two paths even with --no-renames.
			if path, ok = readStringUntilNUL(body, &i); !ok {
				return nil, fmt.Errorf("unexpected git --raw format (missing copy path)")
			}
		}

		entries = append(entries, gitRawEntry{
			srcMode: srcMode,
			dstMode: dstMode,
			status:  status,
			path:    path,
		})
	}

	return entries, nil
}

func parseGitFileMode(s string) (filemode.FileMode, error) {
	if s == "" {
		return filemode.Empty, nil
	}
	// Modes are printed as octal (e.g. 100644, 120000, 160000, 000000).
	v, err := strconv.ParseUint(s, 8, 32)
	if err != nil {
		return filemode.Empty, fmt.Errorf("parse file mode %q: %w", s, err)
	}
	return filemode.FileMode(v), nil
}

func actionFromGitStatus(status string) svnlog.PathAction {
	if status == "" {
		return svnlog.PathModified
	}
	switch status[0] {
	case 'A', 'C':
		return svnlog.PathAdded
	case 'D':
		return svnlog.PathDeleted
	case 'R', 'T':
		return svnlog.PathReplaced
	default:
		return svnlog.PathModified
	}
}

func readUntilNUL(b []byte, i *int) ([]byte, bool) {
	if *i >= len(b) {
		return nil, false
	}
	j := bytes.IndexByte(b[*i:], 0)
	if j == -1 {
		return nil, false
	}
	start := *i
	end := *i + j
	*i = end + 1
	return b[start:end], true
}

func readStringUntilNUL(b []byte, i *int) (string, bool) {
	raw, ok := readUntilNUL(b, i)
	if !ok {
		return "", false
	}
	return string(raw), true
}
