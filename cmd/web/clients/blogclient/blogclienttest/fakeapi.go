// Package blogclienttest 는 테스트용 인메모리 블로그 API 를 제공한다.
package blogclienttest

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/gin-gonic/gin"

	"blog-web/cmd/web/clients/blogclient"
)

// PostTypes 는 작성 폼 카테고리 중 일부다.
var PostTypes = []string{"Lifestyle", "Tutorial", "Travel", "Technology", "Book Review"}

// FakePosts 는 최신순으로 정렬된 결정적인 글 n 개를 만든다.
func FakePosts(seed uint64, n int) []blogclient.Post {
	f := gofakeit.New(seed)
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	posts := make([]blogclient.Post, 0, n)
	for i := 0; i < n; i++ {
		title := strings.TrimSuffix(f.Sentence(4), ".")
		posts = append(posts, blogclient.Post{
			ID:           f.UUID(),
			Slug:         fmt.Sprintf("post-%d", i+1),
			Title:        title,
			Content:      "## " + title + "\n\n" + f.Paragraph(2, 3, 12, "\n\n"),
			Thumbnail:    f.URL() + "/thumb.jpg",
			Author:       f.Name(),
			AuthorAvatar: f.URL() + "/avatar.png",
			Type:         f.RandomString(PostTypes),
			CreatedAt:    base.Add(-time.Duration(i) * time.Hour).Format(time.RFC3339),
		})
	}
	return posts
}

// API 는 /api 아래에 붙는 가짜 블로그 API 다.
type API struct {
	Server *httptest.Server

	mu    sync.Mutex
	posts []blogclient.Post

	// FailList 이면 GET /posts 가 500 을 응답한다.
	FailList atomic.Bool
	// FailGet 이면 GET /posts/:slug 가 500 을 응답한다.
	FailGet atomic.Bool
	// CreateStatus 가 0 이 아니면 POST /posts 응답 코드를 덮어쓴다.
	CreateStatus atomic.Int64
	// Delay 는 모든 응답 전에 기다리는 시간이다.
	Delay atomic.Int64

	ListCalls   atomic.Int64
	GetCalls    atomic.Int64
	CreateCalls atomic.Int64

	lastCreate blogclient.CreatePostRequest
}

// NewAPI 는 posts 를 제공하는 가짜 API 를 띄운다. 끝나면 Close 를 호출한다.
func NewAPI(posts []blogclient.Post) *API {
	gin.SetMode(gin.TestMode)
	a := &API{posts: append([]blogclient.Post(nil), posts...)}

	r := gin.New()
	g := r.Group("/api")
	g.Use(a.delay)
	g.GET("/posts", a.list)
	g.GET("/posts/:slug", a.get)
	g.POST("/posts", a.create)

	a.Server = httptest.NewServer(r)
	return a
}

// URL 은 클라이언트에 설정할 base URL 이다.
func (a *API) URL() string { return a.Server.URL + "/api" }

func (a *API) Close() { a.Server.Close() }

// LastCreate 는 마지막 POST /posts 요청 바디를 반환한다.
func (a *API) LastCreate() blogclient.CreatePostRequest {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastCreate
}

func (a *API) delay(c *gin.Context) {
	if d := time.Duration(a.Delay.Load()); d > 0 {
		select {
		case <-time.After(d):
		case <-c.Request.Context().Done():
			c.AbortWithStatus(http.StatusGatewayTimeout)
			return
		}
	}
	c.Next()
}

func (a *API) list(c *gin.Context) {
	a.ListCalls.Add(1)
	if a.FailList.Load() {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "boom"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	total := len(a.posts)
	totalPages := (total + limit - 1) / limit
	if totalPages == 0 {
		totalPages = 1
	}
	start := min((page-1)*limit, total)
	end := min(start+limit, total)

	c.JSON(http.StatusOK, blogclient.ListPostsResponse{
		Posts: append([]blogclient.Post{}, a.posts[start:end]...),
		Meta: blogclient.Meta{
			Page:       page,
			Limit:      limit,
			TotalPages: totalPages,
			TotalPosts: total,
		},
	})
}

func (a *API) get(c *gin.Context) {
	a.GetCalls.Add(1)
	if a.FailGet.Load() {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "boom"})
		return
	}

	key := c.Param("slug")
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, p := range a.posts {
		if p.Slug == key || p.ID == key {
			c.JSON(http.StatusOK, p)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "Post not found"})
}

func (a *API) create(c *gin.Context) {
	a.CreateCalls.Add(1)

	var in blogclient.CreatePostRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	a.mu.Lock()
	a.lastCreate = in
	a.mu.Unlock()

	if st := int(a.CreateStatus.Load()); st != 0 {
		c.JSON(st, gin.H{"error": "rejected"})
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	p := blogclient.Post{
		ID:           fmt.Sprintf("id-%d", len(a.posts)+1),
		Slug:         strings.ReplaceAll(strings.ToLower(in.Title), " ", "-"),
		Title:        in.Title,
		Content:      in.Content,
		Thumbnail:    in.Thumbnail,
		Author:       in.Author,
		AuthorAvatar: in.AuthorAvatar,
		Type:         in.Type,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}
	a.posts = append([]blogclient.Post{p}, a.posts...)
	c.JSON(http.StatusCreated, p)
}
