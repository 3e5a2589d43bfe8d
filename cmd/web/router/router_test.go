package router

import (
	"html"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-web/cmd/web/clients/blogclient"
	"blog-web/cmd/web/clients/blogclient/blogclienttest"
	"blog-web/config"
)

func newServer(t *testing.T, posts []blogclient.Post) (*gin.Engine, *blogclienttest.API) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	api := blogclienttest.NewAPI(posts)
	t.Cleanup(api.Close)

	cfg := config.Default()
	cfg.API.BaseURL = api.URL()
	r, err := New(cfg, blogclient.New(api.URL(), 2*time.Second))
	require.NoError(t, err)
	return r, api
}

func do(r http.Handler, method, target string, body url.Values) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(body.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestFeedFirstPage(t *testing.T) {
	posts := blogclienttest.FakePosts(7, 12)
	r, api := newServer(t, posts)

	rec := do(r, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, html.EscapeString(posts[0].Title))
	assert.Contains(t, body, `href="/posts/post-5"`)
	assert.NotContains(t, body, `href="/posts/post-6"`)
	assert.Contains(t, body, `href="/?page=2"`)
	assert.Equal(t, int64(1), api.ListCalls.Load())
}

func TestFeedSecondPage(t *testing.T) {
	r, _ := newServer(t, blogclienttest.FakePosts(7, 12))

	body := do(r, http.MethodGet, "/?page=2", nil).Body.String()
	assert.Contains(t, body, `href="/posts/post-6"`)
	assert.Contains(t, body, `href="/posts/post-10"`)
	assert.NotContains(t, body, "Read Full Story")
	assert.Contains(t, body, `href="/?page=1"`)
	assert.Contains(t, body, `href="/?page=3"`)
}

func TestFeedListFailureRendersEmpty(t *testing.T) {
	r, api := newServer(t, blogclienttest.FakePosts(7, 12))
	api.FailList.Store(true)

	rec := do(r, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No posts found")
	assert.NotContains(t, rec.Body.String(), `href="/posts/post-`)
}

func TestFeedMalformedPage(t *testing.T) {
	r, _ := newServer(t, blogclienttest.FakePosts(7, 3))
	body := do(r, http.MethodGet, "/?page=abc", nil).Body.String()
	assert.Contains(t, body, "Read Full Story")
}

func TestPostDetail(t *testing.T) {
	posts := blogclienttest.FakePosts(3, 8)
	r, api := newServer(t, posts)

	rec := do(r, http.MethodGet, "/posts/post-3", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "<h1>"+html.EscapeString(posts[2].Title)+"</h1>")
	assert.Contains(t, body, "min read")
	assert.Contains(t, body, `href="/posts/post-1"`)
	assert.Equal(t, int64(1), api.GetCalls.Load())
	assert.Equal(t, int64(1), api.ListCalls.Load())
}

func TestPostDetailNotFound(t *testing.T) {
	r, _ := newServer(t, blogclienttest.FakePosts(3, 2))

	rec := do(r, http.MethodGet, "/posts/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Post Not Found")
}

func TestPostDetailAPIFailure(t *testing.T) {
	r, api := newServer(t, blogclienttest.FakePosts(3, 2))
	api.FailGet.Store(true)

	rec := do(r, http.MethodGet, "/posts/post-1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Post Not Found")
}

func TestNewPostForm(t *testing.T) {
	r, _ := newServer(t, nil)

	rec := do(r, http.MethodGet, "/posts/new", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "**Hello world!!!**")
	assert.Contains(t, body, `<option value="Book Review">`)
}

func TestCreatePostMissingTypeSkipsAPI(t *testing.T) {
	r, api := newServer(t, nil)

	rec := do(r, http.MethodPost, "/posts/new", url.Values{
		"title":   {"Hello"},
		"content": {"Body"},
		"type":    {""},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, int64(0), api.CreateCalls.Load())
	assert.Contains(t, rec.Body.String(), `value="Hello"`)
	assert.Contains(t, rec.Body.String(), "Please fill in the required fields.")
}

func TestCreatePostSuccess(t *testing.T) {
	r, api := newServer(t, nil)

	rec := do(r, http.MethodPost, "/posts/new", url.Values{
		"title":   {"  Hello World  "},
		"content": {"# Hi"},
		"type":    {"Travel"},
		"author":  {"Ann"},
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `<meta http-equiv="refresh" content="2;url=/">`)
	assert.Equal(t, int64(1), api.CreateCalls.Load())

	sent := api.LastCreate()
	assert.Equal(t, "Hello World", sent.Title)
	assert.Equal(t, "Travel", sent.Type)
	assert.Equal(t, "Ann", sent.Author)
}

func TestCreatePostAPIRejects(t *testing.T) {
	r, api := newServer(t, nil)
	api.CreateStatus.Store(http.StatusOK)

	rec := do(r, http.MethodPost, "/posts/new", url.Values{
		"title":   {"Hello"},
		"content": {"Body"},
		"type":    {"Travel"},
	})

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "Could not publish your post.")
	assert.Contains(t, rec.Body.String(), `value="Hello"`)
}

func TestThemeToggleRoundTrip(t *testing.T) {
	r, _ := newServer(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/theme", nil)
	req.Header.Set("Referer", "http://example.com/about")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/about", rec.Header().Get("Location"))
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "dark", cookies[0].Value)

	req = httptest.NewRequest(http.MethodGet, "/about", nil)
	req.AddCookie(cookies[0])
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Contains(t, rec.Body.String(), `class="dark"`)
}

func TestUnknownRoute(t *testing.T) {
	r, _ := newServer(t, nil)
	rec := do(r, http.MethodGet, "/does/not/exist", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Oops! Page Not Found")
}

func TestAbout(t *testing.T) {
	r, _ := newServer(t, nil)
	rec := do(r, http.MethodGet, "/about", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Our Mission")
}

func TestHealth(t *testing.T) {
	r, api := newServer(t, nil)

	rec := do(r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","blog_api":"up"}`, rec.Body.String())

	api.FailList.Store(true)
	rec = do(r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"degraded"`)
}

func TestStaticAndMetrics(t *testing.T) {
	r, _ := newServer(t, nil)

	rec := do(r, http.MethodGet, "/static/site.css", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	do(r, http.MethodGet, "/health", nil)
	rec = do(r, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "http_requests_total")
	assert.Contains(t, rec.Body.String(), "blog_api_requests_total")
}

func TestRequestIDHeader(t *testing.T) {
	r, _ := newServer(t, nil)
	rec := do(r, http.MethodGet, "/about", nil)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestWithCORS(t *testing.T) {
	r, _ := newServer(t, nil)
	h := WithCORS(r, []string{"https://reader.example"})

	req := httptest.NewRequest(http.MethodGet, "/about", nil)
	req.Header.Set("Origin", "https://reader.example")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "https://reader.example", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/about", nil)
	req.Header.Set("Origin", "https://other.example")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
