package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	r := New()

	out, err := r.Render("# Title\n\nSome **bold** text and a [link](https://example.com).")
	require.NoError(t, err)

	s := string(out)
	assert.Contains(t, s, "Title</h1>")
	assert.Contains(t, s, "<strong>bold</strong>")
	assert.Contains(t, s, `href="https://example.com"`)
	assert.Contains(t, s, "nofollow")
	assert.Contains(t, s, `target="_blank"`)
}

func TestRenderGFM(t *testing.T) {
	r := New()

	out, err := r.Render("| a | b |\n|---|---|\n| 1 | 2 |\n\n```go\nfmt.Println(1)\n```")
	require.NoError(t, err)

	s := string(out)
	assert.Contains(t, s, "<table>")
	assert.Contains(t, s, `<code class="language-go">`)
}

func TestRenderSanitizes(t *testing.T) {
	r := New()

	out, err := r.Render("hello <script>alert(1)</script> <a href=\"javascript:alert(1)\">x</a> <img src=\"/a.png\" onerror=\"boom()\">")
	require.NoError(t, err)

	s := string(out)
	assert.NotContains(t, s, "<script")
	assert.NotContains(t, s, "javascript:")
	assert.NotContains(t, s, "onerror")
	assert.Contains(t, s, `src="/a.png"`)
}

func TestFirstImage(t *testing.T) {
	assert.Equal(t, "", FirstImage(""))
	assert.Equal(t, "", FirstImage("<p>no pictures</p>"))
	assert.Equal(t, "https://x/a.png", FirstImage(`<p>hi <img alt="a" src="https://x/a.png"> <img src="b.png"></p>`))
	assert.Equal(t, "b.png", FirstImage(`<img src=""><img src="b.png"/>`))
}

func TestFirstImageFromRenderedMarkdown(t *testing.T) {
	out, err := New().Render("intro\n\n![cover](https://cdn.example.com/cover.jpg)")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/cover.jpg", FirstImage(string(out)))
}

func TestReadingTime(t *testing.T) {
	assert.Equal(t, 1, ReadingTime(""))
	assert.Equal(t, 1, ReadingTime("a few words"))
	assert.Equal(t, 1, ReadingTime(strings.Repeat("w ", 200)))
	assert.Equal(t, 2, ReadingTime(strings.Repeat("w ", 201)))
	assert.Equal(t, 5, ReadingTime(strings.Repeat("w ", 1000)))
}
