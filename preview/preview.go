// Package preview reduces markdown to short plain-text snippets for post cards.
//
// The reduction is lexical: nested or malformed markdown can leave stray
// punctuation behind. Full articles go through package markdown instead.
package preview

import (
	"regexp"
	"strings"
)

// Ellipsis is appended to truncated previews.
const Ellipsis = "..."

type rule struct {
	re   *regexp.Regexp
	repl string
}

// Applied in order. Links must run after images so "![a](b)" is not left as "!a".
var rules = []rule{
	{regexp.MustCompile(`!\[.*?\]\(.*?\)`), ""},
	{regexp.MustCompile(`\[(.*?)\]\(.*?\)`), "${1}"},
	{regexp.MustCompile(`\*\*|__`), ""},
	{regexp.MustCompile(`\*|_`), ""},
	{regexp.MustCompile("`{1,3}"), ""},
	{regexp.MustCompile(`#{1,6}\s`), ""},
	{regexp.MustCompile(`>\s`), ""},
}

// Strip removes images, link targets, emphasis, code, heading and blockquote
// markers, folds newlines into spaces and trims the result.
func Strip(markdown string) string {
	s := markdown
	for _, r := range rules {
		s = r.re.ReplaceAllString(s, r.repl)
	}
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.TrimSpace(s)
}

// Truncate returns s unchanged when it has at most n characters, otherwise
// its first n characters followed by Ellipsis. Characters are runes.
func Truncate(s string, n int) string {
	if n < 0 {
		n = 0
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + Ellipsis
}

// ToPreview strips markdown and truncates the plain text to maxLen characters.
func ToPreview(markdown string, maxLen int) string {
	return Truncate(Strip(markdown), maxLen)
}
