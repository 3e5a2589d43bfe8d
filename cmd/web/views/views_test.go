package views

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-web/cmd/web/dto"
	"blog-web/cmd/web/theme"
	"blog-web/pagination"
)

func render(t *testing.T, path, name string, body any) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r, err := NewRenderer(DefaultChrome("Blogs"))
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, path, nil)
	r.Render(c, http.StatusOK, name, "Test", body, "", "")
	return rec
}

func card(slug, title string) dto.PostCardDTO {
	return dto.PostCardDTO{
		Slug: slug, Href: "/posts/" + slug, Title: title, Type: "Travel",
		Author: "Ann", AuthorInitial: "A", Thumbnail: dto.PlaceholderImage,
		AuthorAvatar: dto.PlaceholderImage, Preview: "preview of " + title,
		Date: "January 2, 2024", ShortDate: "1/2/2024",
	}
}

func TestLoadDefinesEveryPage(t *testing.T) {
	tmpl, err := Load()
	require.NoError(t, err)
	for _, name := range []string{Feed, Post, PostMiss, NewPost, About, NotFound, "header", "footer", "navbar"} {
		assert.NotNil(t, tmpl.Lookup(name), name)
	}
}

func TestRenderFeed(t *testing.T) {
	featured := card("first", "First Post")
	feed := dto.FeedDTO{
		State:    dto.StateReady,
		Featured: &featured,
		Posts:    []dto.PostCardDTO{card("second", "Second Post")},
		Sidebar:  []dto.PostCardDTO{featured, card("second", "Second Post")},
		Nav:      pagination.Build("/", url.Values{}, 1, 3),
	}

	rec := render(t, "/", Feed, feed)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.Contains(t, body, "First Post")
	assert.Contains(t, body, `href="/posts/second"`)
	assert.Contains(t, body, "Read Full Story")
	assert.Contains(t, body, `aria-current="page"`)
	assert.Contains(t, body, `href="/?page=2"`)
	assert.NotContains(t, body, "No posts found")
}

func TestRenderFeedEmpty(t *testing.T) {
	rec := render(t, "/", Feed, dto.FeedDTO{State: dto.StateEmpty})
	assert.Contains(t, rec.Body.String(), "No posts found")
}

func TestRenderPost(t *testing.T) {
	d := dto.PostDetailDTO{
		State:          dto.StateReady,
		Post:           card("first", "First Post"),
		ContentHTML:    template.HTML("<p><strong>bold</strong></p>"),
		ReadingMinutes: 3,
		Latest:         []dto.PostCardDTO{card("second", "Second Post")},
	}
	body := render(t, "/posts/first", Post, d).Body.String()
	assert.Contains(t, body, "<p><strong>bold</strong></p>")
	assert.Contains(t, body, "3 min read")
	assert.Contains(t, body, "Second Post")
}

func TestRenderPostMissing(t *testing.T) {
	body := render(t, "/posts/x", PostMiss, nil).Body.String()
	assert.Contains(t, body, "Post Not Found")
	assert.Contains(t, body, `href="/"`)
}

func TestRenderNewPost(t *testing.T) {
	page := dto.NewPostDTO{
		State:   dto.SubmitFailure,
		Form:    dto.NewPostFormDTO{Title: "Kept <title>", Type: "Travel"},
		Types:   []string{"Travel", "Tutorial"},
		Missing: map[string]bool{"content": true},
	}
	body := render(t, "/posts/new", NewPost, page).Body.String()
	assert.Contains(t, body, "Kept &lt;title&gt;")
	assert.Contains(t, body, `<option value="Travel" selected>`)
	assert.Contains(t, body, "Please fill in the required fields.")
	assert.Contains(t, body, `nav-link is-active`)
}

func TestRenderNewPostSuccessRedirects(t *testing.T) {
	created := card("fresh", "Fresh")
	page := dto.NewPostDTO{State: dto.SubmitSuccess, Created: &created, Redirect: "/", RedirectAfter: 2}
	body := render(t, "/posts/new", NewPost, page).Body.String()
	assert.Contains(t, body, `<meta http-equiv="refresh" content="2;url=/">`)
	assert.NotContains(t, body, "<form method=\"post\" action=\"/posts/new\"")
}

func TestRenderChromePages(t *testing.T) {
	assert.Contains(t, render(t, "/about", About, nil).Body.String(), "Write Freely")
	assert.Contains(t, render(t, "/nope", NotFound, nil).Body.String(), "Oops! Page Not Found")
}

func TestRenderUsesTheme(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r, err := NewRenderer(DefaultChrome(""))
	require.NoError(t, err)

	engine := gin.New()
	engine.Use(theme.Middleware("theme", theme.Dark))
	engine.GET("/about", func(c *gin.Context) {
		r.Render(c, http.StatusOK, About, "About", nil, "", "")
	})
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/about", nil))

	body := rec.Body.String()
	assert.Contains(t, body, `<html lang="en" class="dark">`)
	assert.Contains(t, body, "<title>About | Blogs</title>")
}

func TestRenderUnknownTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r, err := NewRenderer(DefaultChrome("Blogs"))
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	r.Render(c, http.StatusOK, "missing", "", nil, "", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Len(t, c.Errors, 1)
}

func TestStaticServesAssets(t *testing.T) {
	f, err := Static().Open("site.css")
	require.NoError(t, err)
	defer f.Close()
}
