package git

import "testing"

func TestSvnRevision(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
		wantOK  bool
	}{
		{name: "footer", message: "Fix\n\ngit-svn-id: svn://svn.chromium.org/blink/trunk@139455 " + testSvnUUID + "\n", want: "139455", wantOK: true},
		{name: "no uuid", message: "x\ngit-svn-id: http://svn/repo/trunk@7", want: "7", wantOK: true},
		{name: "not at line start", message: "see git-svn-id: svn://a@1 b", wantOK: false},
		{name: "no footer", message: "plain commit", wantOK: false},
		{name: "empty", message: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SvnRevision(tt.message)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("SvnRevision(%q) = %q, %v; want %q, %v", tt.message, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestStripGitSvnID(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{name: "footer", message: "Title\n\nBody\n\ngit-svn-id: svn://a/trunk@1 uuid\n", want: "Title\n\nBody"},
		{name: "no footer", message: "Title\n", want: "Title"},
		{name: "keeps leading text", message: "  Title", want: "  Title"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripGitSvnID(tt.message); got != tt.want {
				t.Errorf("StripGitSvnID(%q) = %q, want %q", tt.message, got, tt.want)
			}
		})
	}
}

func TestRevisionRange(t *testing.T) {
	r, err := parseRevisionRange("20", "10")
	if err != nil {
		t.Fatalf("parseRevisionRange: %v", err)
	}
	for _, tt := range []struct {
		rev  string
		want bool
	}{
		{"10", true}, {"15", true}, {"20", true}, {"9", false}, {"21", false}, {"abc", false},
	} {
		if got := r.contains(tt.rev); got != tt.want {
			t.Errorf("contains(%q) = %v, want %v", tt.rev, got, tt.want)
		}
	}

	open, err := parseRevisionRange("", "")
	if err != nil {
		t.Fatalf("parseRevisionRange: %v", err)
	}
	if !open.contains("abc") {
		t.Error("inactive range should accept every revision")
	}
}

func TestMatchesScope(t *testing.T) {
	tests := []struct {
		scope string
		path  string
		want  bool
	}{
		{"Source", "Source/core/a.cc", true},
		{"/Source/", "Source/core/a.cc", true},
		{"Source/core/a.cc", "Source/core/a.cc", true},
		{"Source/co", "Source/core/a.cc", false},
		{"**/*.cc", "Source/core/a.cc", true},
		{"Source/*.cc", "Source/core/a.cc", false},
		{"/", "anything", true},
	}
	for _, tt := range tests {
		if got := matchesScope(tt.scope, tt.path); got != tt.want {
			t.Errorf("matchesScope(%q, %q) = %v, want %v", tt.scope, tt.path, got, tt.want)
		}
	}
}
