package svnlog

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestFormatDate(t *testing.T) {
	loc := time.FixedZone("PST", -8*3600)
	got := FormatDate(time.Date(2013, 2, 26, 10, 46, 0, 123456000, loc))
	if got != "2013-02-26T18:46:00.123456Z" {
		t.Errorf("FormatDate = %q", got)
	}
}

func TestWriteDocument_ParsesBack(t *testing.T) {
	when := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	entries := []LogEntry{
		{
			Revision: "20",
			Author:   "alice@example.com",
			Date:     when,
			Paths:    []PathChange{{Path: "/trunk/a.cc", Action: PathModified}},
			Message:  "Fix <crash> & leak\n\nR=bob.smith\nBUG=999",
		},
		{
			Revision: "19",
			Author:   "bob@example.com",
			Date:     when.Add(-time.Hour),
			Message:  "Roll deps",
		},
	}

	var buf bytes.Buffer
	if err := WriteDocument(&buf, entries); err != nil {
		t.Fatalf("WriteDocument: %v", err)
	}
	if !strings.Contains(buf.String(), `<path action="M" kind="file">/trunk/a.cc</path>`) {
		t.Errorf("document missing path element:\n%s", buf.String())
	}

	records, err := ParseCommitData(&buf)
	if err != nil {
		t.Fatalf("ParseCommitData: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Revision != "20" || records[1].Revision != "19" {
		t.Errorf("revisions = %q, %q", records[0].Revision, records[1].Revision)
	}
	if records[0].Title != "Fix <crash> & leak" {
		t.Errorf("Title = %q", records[0].Title)
	}
	if records[0].Time != "2024-05-01T12:00:00.000000Z" {
		t.Errorf("Time = %q", records[0].Time)
	}
	if records[0].BugID == nil || *records[0].BugID != 999 {
		t.Errorf("BugID = %v", records[0].BugID)
	}
}

func TestWriteDocument_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteDocument(&buf, nil); err != nil {
		t.Fatalf("WriteDocument: %v", err)
	}
	records, err := ParseCommitData(&buf)
	if err != nil {
		t.Fatalf("ParseCommitData: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected no records, got %d", len(records))
	}
}
