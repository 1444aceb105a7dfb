package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// newSvnMirror creates a git repository whose commits carry git-svn-id
// footers for svn revisions 500 to 502.
func newSvnMirror(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	repo, err := gogit.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("PlainInit: %v", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Worktree: %v", err)
	}

	when := time.Date(2013, 3, 1, 9, 0, 0, 0, time.UTC)
	commits := []struct {
		file string
		msg  string
	}{
		{"Source/core/page/Page.cpp", "Initial page"},
		{"Source/core/page/Frame.cpp", "Fix frame leak\n\nR=carol.jones\nBUG=4242"},
		{"LayoutTests/fast/b.html", "Rebaseline"},
	}
	for i, c := range commits {
		full := filepath.Join(dir, c.file)
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("MkdirAll: %v", err)
		}
		if err := os.WriteFile(full, []byte(c.msg), 0o644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
		if _, err := wt.Add(c.file); err != nil {
			t.Fatalf("Add: %v", err)
		}
		when = when.Add(time.Hour)
		sig := &object.Signature{Name: "Dev", Email: "dev@chromium.org", When: when}
		msg := fmt.Sprintf("%s\n\ngit-svn-id: svn://svn.chromium.org/blink/trunk@%d bbb929c8-8fbe-4397-9dbb-9b2b20218538\n", c.msg, 500+i)
		if _, err := wt.Commit(msg, &gogit.CommitOptions{Author: sig, Committer: sig}); err != nil {
			t.Fatalf("Commit: %v", err)
		}
	}
	return dir
}

// runApp runs the CLI with args and returns what it wrote to the app writer.
// An empty config file keeps the user's .svnlog.json out of the run.
func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return runAppWithConfig(t, "{}", args...)
}

// runAppWithConfig is runApp with the given JSON as the config file.
func runAppWithConfig(t *testing.T, cfgJSON string, args ...string) (string, error) {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "svnlog.json")
	if err := os.WriteFile(cfgPath, []byte(cfgJSON), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	var buf bytes.Buffer
	app := App()
	app.Writer = &buf
	app.ErrWriter = &buf
	err := app.Run(append([]string{"svnlog", "--config", cfgPath}, args...))
	return buf.String(), err
}
