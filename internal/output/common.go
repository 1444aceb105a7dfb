package output

import (
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

const reportDateTimeLayout = "2006-01-02T15:04:05"

func limitTop[T any](items []T, top int) []T {
	if top <= 0 || top >= len(items) {
		return items
	}
	return items[:top]
}

func openOutputWriter(options OutputOptions) (io.Writer, *os.File, error) {
	if options.Writer != nil {
		return options.Writer, nil, nil
	}
	if options.OutputPath == "" {
		return os.Stdout, nil, nil
	}
	file, err := os.Create(options.OutputPath)
	if err != nil {
		return nil, nil, err
	}
	return file, file, nil
}

func truncateMessage(msg string, maxLen int) string {
	runes := []rune(msg)
	if len(runes) <= maxLen {
		return msg
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

func escapeMarkdown(s string) string {
	replacer := strings.NewReplacer(
		"|", "\\|",
		"*", "\\*",
		"_", "\\_",
		"`", "\\`",
		"\n", " ",
	)
	return replacer.Replace(s)
}

// formatBugID renders an optional bug id, empty when absent.
func formatBugID(id *int) string {
	if id == nil {
		return ""
	}
	return strconv.Itoa(*id)
}

func formatOptional(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// formatRecordTime shortens svn timestamps for tables. Unparseable values are
// shown as they came.
func formatRecordTime(raw string) string {
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return raw
	}
	return t.UTC().Format(reportDateTimeLayout)
}
