package trac

import (
	"net/url"
	"strings"
)

// Param is a single query parameter.
type Param struct {
	Name  string
	Value string
}

// Params is an ordered list of query parameters. Unlike url.Values it keeps
// insertion order when encoded.
type Params []Param

// Add appends a parameter.
func (p Params) Add(name, value string) Params {
	return append(p, Param{Name: name, Value: value})
}

// Encode serializes the parameters as name=value pairs joined by '&', escaping
// names and values the way a browser form serializer does (spaces become '+',
// the marks !'()* stay literal).
func (p Params) Encode() string {
	var sb strings.Builder
	for i, param := range p {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(escapeComponent(param.Name))
		sb.WriteByte('=')
		sb.WriteString(escapeComponent(param.Value))
	}
	return sb.String()
}

// encodeURIComponent leaves these marks alone; url.QueryEscape does not.
var componentUnescaper = strings.NewReplacer(
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

func escapeComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}
