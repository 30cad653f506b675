// Package htmlsanitize removes markup from user-supplied text before it is
// shown back to visitors.
package htmlsanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strict drops every tag, and the content of script/style elements.
// bluemonday policies are safe for concurrent use once built.
var strict = bluemonday.StrictPolicy()

// StripTags returns s as plain text: tags removed, entities decoded.
// The result is meant for html/template, which escapes it again on output.
func StripTags(s string) string {
	if s == "" {
		return ""
	}
	return html.UnescapeString(strict.Sanitize(s))
}

// PlainText strips tags and collapses runs of whitespace to single spaces.
func PlainText(s string) string {
	return strings.Join(strings.Fields(StripTags(s)), " ")
}
