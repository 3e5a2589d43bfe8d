package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-web/cmd/web/dto"
	"blog-web/cmd/web/services"
	"blog-web/cmd/web/views"
	"blog-web/pagination"
)

// FeedHandler 는 홈 피드(?page=N)를 렌더링한다. API 실패는 서비스에서 빈 피드로 바뀌므로 항상 200 이다.
func FeedHandler(svc *services.PostService, r *views.Renderer) gin.HandlerFunc {
	return func(c *gin.Context) {
		page := pagination.ParsePage(c.Query(pagination.PageParam))
		feed := svc.Feed(c.Request.Context(), page, c.Request.URL.Path, c.Request.URL.Query())
		r.Render(c, http.StatusOK, views.Feed, "", feed, "feed", feed.State.String())
	}
}

// PostHandler 는 글 상세를 렌더링한다. 어떤 이유로든 글을 못 가져오면 "Post Not Found" 화면(404)을 보여준다.
func PostHandler(svc *services.PostService, r *views.Renderer) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")
		detail, err := svc.Detail(c.Request.Context(), slug)
		if err != nil {
			// 브라우저가 이미 떠났으면 응답을 쓸 필요가 없다.
			if c.Request.Context().Err() != nil {
				c.Abort()
				return
			}
			_ = c.Error(err)
			r.Render(c, http.StatusNotFound, views.PostMiss, "Post Not Found", detail, "post", dto.StateError.String())
			return
		}
		r.Render(c, http.StatusOK, views.Post, detail.Post.Title, detail, "post", detail.State.String())
	}
}

func AboutHandler(r *views.Renderer) gin.HandlerFunc {
	return func(c *gin.Context) {
		r.Render(c, http.StatusOK, views.About, "About", nil, "", "")
	}
}

// NotFoundHandler 는 라우트가 없는 모든 경로에 쓰인다.
func NotFoundHandler(r *views.Renderer) gin.HandlerFunc {
	return func(c *gin.Context) {
		r.Render(c, http.StatusNotFound, views.NotFound, "Page Not Found", nil, "", "")
	}
}
