// Package sanitize turns rich-text note fragments into clean plain text.
package sanitize

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"
)

// Clean strips markup from a rich-text fragment and collapses whitespace.
// Tags are removed structurally via tokenization, so nested and self-closing
// tags leave no stray text; entities are decoded in the same pass. Runs of
// whitespace (including newlines) collapse to single spaces and the result is
// trimmed. Empty input yields an empty string.
func Clean(fragment string) string {
	if fragment == "" {
		return ""
	}

	var b strings.Builder
	tok := html.NewTokenizer(strings.NewReader(fragment))
	for {
		tt := tok.Next()
		if tt == html.ErrorToken {
			break
		}
		if tt == html.TextToken {
			b.WriteString(tok.Token().Data)
			b.WriteByte(' ')
		}
	}

	// Entity decoding can surface combining sequences; normalize before
	// collapsing so equal-looking text compares equal downstream.
	text := norm.NFC.String(b.String())
	return strings.Join(strings.Fields(text), " ")
}
