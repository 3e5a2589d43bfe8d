// Package markdown renders full post bodies to sanitized HTML.
package markdown

import (
	"bytes"
	"html/template"
	"math"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/net/html"
)

// WordsPerMinute is the reading speed used by ReadingTime.
const WordsPerMinute = 200

// Renderer converts markdown to HTML and strips anything unsafe from the
// output. It is safe for concurrent use.
type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// New returns a Renderer with GitHub-flavoured markdown enabled.
func New() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		// raw HTML is passed through and cleaned by the policy below
		goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
	)

	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").Matching(regexp.MustCompile(`^language-[\w+-]+$`)).OnElements("code")
	policy.RequireNoFollowOnLinks(true)
	policy.AddTargetBlankToFullyQualifiedLinks(true)

	return &Renderer{md: md, policy: policy}
}

// Render converts source to sanitized HTML.
func (r *Renderer) Render(source string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return template.HTML(r.policy.SanitizeBytes(buf.Bytes())), nil
}

// FirstImage returns the src of the first <img> in fragment, or "".
func FirstImage(fragment string) string {
	z := html.NewTokenizer(strings.NewReader(fragment))
	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF or a malformed tail
			return ""
		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			if tok.Data != "img" {
				continue
			}
			for _, a := range tok.Attr {
				if a.Key == "src" && strings.TrimSpace(a.Val) != "" {
					return a.Val
				}
			}
		}
	}
}

// ReadingTime estimates minutes needed to read text, never less than one.
func ReadingTime(text string) int {
	words := len(strings.Fields(text))
	return max(1, int(math.Ceil(float64(words)/WordsPerMinute)))
}
