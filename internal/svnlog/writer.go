package svnlog

import (
	"io"
	"time"

	"github.com/beevik/etree"
)

// DateLayout is the timestamp layout svn uses inside <date>.
const DateLayout = "2006-01-02T15:04:05.000000Z"

// FormatDate renders t in svn's UTC microsecond layout.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// BuildDocument assembles an `svn log --xml` document for the given entries.
func BuildDocument(entries []LogEntry) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("log")

	for _, e := range entries {
		le := root.CreateElement("logentry")
		le.CreateAttr("revision", e.Revision)
		le.CreateElement("author").SetText(e.Author)
		le.CreateElement("date").SetText(FormatDate(e.Date))

		if len(e.Paths) > 0 {
			paths := le.CreateElement("paths")
			for _, pc := range e.Paths {
				p := paths.CreateElement("path")
				p.CreateAttr("action", string(pc.Action))
				p.CreateAttr("kind", "file")
				p.SetText(pc.Path)
			}
		}

		le.CreateElement("msg").SetText(e.Message)
	}

	doc.Indent(2)
	return doc
}

// WriteDocument writes the log document for entries to w.
func WriteDocument(w io.Writer, entries []LogEntry) error {
	_, err := BuildDocument(entries).WriteTo(w)
	return err
}
