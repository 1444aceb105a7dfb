package svnlog

import (
	"errors"
	"strings"
	"testing"
)

const sampleLog = `<?xml version="1.0" encoding="UTF-8"?>
<log>
<logentry revision="139455">
<author>bob@chromium.org</author>
<date>2013-02-26T18:46:00.123456Z</date>
<msg>Fix crash

R=bob.smith
BUG=999</msg>
</logentry>
<logentry revision="139454">
<author>alice@chromium.org</author>
<date>2013-02-26T18:30:12.000000Z</date>
<paths>
<path action="M" kind="file">/trunk/Source/core/dom/Node.cpp</path>
</paths>
<msg>Roll deps</msg>
</logentry>
<logentry revision="139453">
<author>carol@chromium.org</author>
<date>2013-02-26T18:01:59.000000Z</date>
<msg>Add &lt;template&gt; support

Review URL: https://codereview.chromium.org/12345
BUG=123,456</msg>
</logentry>
</log>
`

func TestParseCommitData(t *testing.T) {
	records, err := ParseCommitData(strings.NewReader(sampleLog))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}

	wantRevisions := []string{"139455", "139454", "139453"}
	for i, want := range wantRevisions {
		if records[i].Revision != want {
			t.Errorf("records[%d].Revision = %q, want %q", i, records[i].Revision, want)
		}
	}

	first := records[0]
	if first.Author != "bob@chromium.org" {
		t.Errorf("Author = %q", first.Author)
	}
	if first.Time != "2013-02-26T18:46:00.123456Z" {
		t.Errorf("Time = %q", first.Time)
	}
	if first.Title != "Fix crash" || first.Summary != "Fix crash" {
		t.Errorf("Title/Summary = %q/%q, want both %q", first.Title, first.Summary, "Fix crash")
	}
	if first.Message != "R=bob.smith\nBUG=999" {
		t.Errorf("Message = %q", first.Message)
	}
	if first.Reviewer == nil || *first.Reviewer != "bob" {
		t.Errorf("Reviewer = %v, want bob", first.Reviewer)
	}
	if first.BugID == nil || *first.BugID != 999 {
		t.Errorf("BugID = %v, want 999", first.BugID)
	}
	if first.RevertedRevision != nil {
		t.Errorf("RevertedRevision = %v, want nil", first.RevertedRevision)
	}

	second := records[1]
	if second.Message != "" || second.BugID != nil || second.Reviewer != nil {
		t.Errorf("single-line message parsed as %+v", second)
	}

	third := records[2]
	if third.Title != "Add <template> support" {
		t.Errorf("Title = %q", third.Title)
	}
	if third.BugID == nil || *third.BugID != 123 {
		t.Errorf("BugID = %v, want 123", third.BugID)
	}
	if third.Reviewer != nil {
		t.Errorf("Reviewer = %q, want nil", *third.Reviewer)
	}
}

func TestParseCommitData_EmptyLog(t *testing.T) {
	records, err := ParseCommitDataBytes([]byte(`<?xml version="1.0"?><log></log>`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if records == nil || len(records) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", records)
	}
}

func TestParseCommitData_MissingElement(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		element string
	}{
		{
			name:    "missing author",
			doc:     `<log><logentry revision="1"><date>d</date><msg>m</msg></logentry></log>`,
			element: "<author>",
		},
		{
			name:    "missing date",
			doc:     `<log><logentry revision="2"><author>a</author><msg>m</msg></logentry></log>`,
			element: "<date>",
		},
		{
			name:    "missing msg",
			doc:     `<log><logentry revision="3"><author>a</author><date>d</date></logentry></log>`,
			element: "<msg>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := ParseCommitDataBytes([]byte(tt.doc))
			if !errors.Is(err, ErrMissingElement) {
				t.Fatalf("expected ErrMissingElement, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.element) {
				t.Errorf("error %q does not name %s", err, tt.element)
			}
			if records != nil {
				t.Errorf("expected no partial result, got %d records", len(records))
			}
		})
	}
}

func TestParseCommitData_OneBadEntryFailsAll(t *testing.T) {
	doc := `<log>
<logentry revision="2"><author>a</author><date>d</date><msg>ok</msg></logentry>
<logentry revision="1"><author>a</author><date>d</date></logentry>
</log>`
	records, err := ParseCommitDataBytes([]byte(doc))
	if !errors.Is(err, ErrMissingElement) {
		t.Fatalf("expected ErrMissingElement, got %v", err)
	}
	if records != nil {
		t.Errorf("expected nil records, got %d", len(records))
	}
}

func TestParseCommitData_Malformed(t *testing.T) {
	_, err := ParseCommitDataBytes([]byte(`<log><logentry revision="1"></log>`))
	if !errors.Is(err, ErrMalformedDocument) {
		t.Fatalf("expected ErrMalformedDocument, got %v", err)
	}
}

func TestParseCommitData_FirstMatchingDescendant(t *testing.T) {
	doc := `<log><logentry revision="7">
<author>first</author><author>second</author>
<date>d1</date>
<msg>Title <b>bold</b> text
body</msg>
<msg>ignored</msg>
</logentry></log>`
	records, err := ParseCommitDataBytes([]byte(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	got := records[0]
	if got.Author != "first" {
		t.Errorf("Author = %q, want first", got.Author)
	}
	if got.Title != "Title bold text" {
		t.Errorf("Title = %q, want text content across child elements", got.Title)
	}
	if got.Message != "body" {
		t.Errorf("Message = %q, want body", got.Message)
	}
}

func TestParseCommitData_MissingRevisionAttribute(t *testing.T) {
	records, err := ParseCommitDataBytes([]byte(`<log><logentry><author>a</author><date>d</date><msg>m</msg></logentry></log>`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if records[0].Revision != "" {
		t.Errorf("Revision = %q, want empty", records[0].Revision)
	}
}
