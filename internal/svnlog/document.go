package svnlog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
)

var (
	// ErrMalformedDocument is returned when the log body is not well-formed XML.
	ErrMalformedDocument = errors.New("malformed commit log document")
	// ErrMissingElement is returned when a log entry lacks a required child.
	ErrMissingElement = errors.New("log entry is missing a required element")
)

// ParseCommitData reads an `svn log --xml` document and returns one record per
// <logentry>, in document order. A single entry without an author, date or msg
// fails the whole parse.
func ParseCommitData(r io.Reader) ([]CommitRecord, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	entries := doc.FindElements("//logentry")
	records := make([]CommitRecord, 0, len(entries))
	for _, entry := range entries {
		record, err := parseLogEntry(entry)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

// ParseCommitDataBytes is ParseCommitData over an in-memory body.
func ParseCommitDataBytes(data []byte) ([]CommitRecord, error) {
	return ParseCommitData(bytes.NewReader(data))
}

func parseLogEntry(entry *etree.Element) (CommitRecord, error) {
	revision := entry.SelectAttrValue("revision", "")

	author, err := firstText(entry, "author", revision)
	if err != nil {
		return CommitRecord{}, err
	}
	date, err := firstText(entry, "date", revision)
	if err != nil {
		return CommitRecord{}, err
	}
	msg, err := firstText(entry, "msg", revision)
	if err != nil {
		return CommitRecord{}, err
	}

	message := ParseCommitMessage(msg)

	return CommitRecord{
		Revision:         revision,
		Author:           author,
		Time:             date,
		Title:            message.Title,
		Summary:          message.Title,
		Message:          message.Summary,
		BugID:            message.BugID,
		Reviewer:         message.Reviewer,
		RevertedRevision: nil,
	}, nil
}

// firstText returns the text content of the first descendant named tag.
func firstText(entry *etree.Element, tag, revision string) (string, error) {
	el := entry.FindElement(".//" + tag)
	if el == nil {
		return "", fmt.Errorf("%w: <%s> in revision %q", ErrMissingElement, tag, revision)
	}
	return textContent(el), nil
}

// textContent concatenates every character-data descendant of el, the way the
// DOM textContent property does.
func textContent(el *etree.Element) string {
	var sb strings.Builder
	var walk func(*etree.Element)
	walk = func(e *etree.Element) {
		for _, tok := range e.Child {
			switch t := tok.(type) {
			case *etree.CharData:
				sb.WriteString(t.Data)
			case *etree.Element:
				walk(t)
			}
		}
	}
	walk(el)
	return sb.String()
}
