package cmd

import (
	"testing"

	"github.com/masmgr/svnlog-go/internal/git"
	"github.com/masmgr/svnlog-go/internal/output"
)

func TestGetOutputFormat(t *testing.T) {
	tests := []struct {
		in   string
		want output.OutputFormat
	}{
		{"", output.FormatConsole},
		{"console", output.FormatConsole},
		{"json", output.FormatJSON},
		{"csv", output.FormatCSV},
		{"markdown", output.FormatMarkdown},
		{"md", output.FormatMarkdown},
		{"ci", output.FormatCI},
		{"ndjson", output.FormatCI},
		{"bogus", output.FormatConsole},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := getOutputFormat(tt.in); got != tt.want {
				t.Errorf("getOutputFormat(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseBackend(t *testing.T) {
	tests := []struct {
		in      string
		want    git.Backend
		wantErr bool
	}{
		{"", git.BackendGoGit, false},
		{"go-git", git.BackendGoGit, false},
		{"git", git.BackendGitCLI, false},
		{"hg", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseBackend(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseBackend(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseBackend(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCommandsHaveSourceFlags(t *testing.T) {
	app := App()
	for _, name := range []string{"recent", "range", "export"} {
		cmd := app.Command(name)
		if cmd == nil {
			t.Fatalf("command %q not registered", name)
		}
		found := false
		for _, f := range cmd.Flags {
			for _, n := range f.Names() {
				if n == "repo" {
					found = true
				}
			}
		}
		if !found {
			t.Errorf("command %q is missing --repo", name)
		}
	}
}
