package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"blog-web/cmd/web/dto"
	"blog-web/cmd/web/services"
	"blog-web/cmd/web/views"
)

// NewPostFormHandler 는 비어 있는 작성 폼을 보여준다.
func NewPostFormHandler(r *views.Renderer) gin.HandlerFunc {
	return func(c *gin.Context) {
		page := dto.NewPostDTO{
			State: dto.SubmitIdle,
			Form:  dto.NewPostFormDTO{Content: services.DefaultContent},
			Types: services.PostTypes,
		}
		r.Render(c, http.StatusOK, views.NewPost, "Write Post", page, "new_post", page.State.String())
	}
}

// CreatePostHandler 는 작성 폼 제출을 처리한다.
//
// - 폼 파싱 실패: 작성 화면을 다시 보여주며 400
// - 필수값 누락: API 를 호출하지 않고 입력값을 유지한 채 422
// - API 실패: 입력값을 유지한 채 502
// - 성공(201): 성공 화면을 보여주고 redirectAfter 뒤 홈으로 이동
func CreatePostHandler(svc *services.PostService, r *views.Renderer, redirectAfter time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form dto.NewPostFormDTO
		if err := c.ShouldBind(&form); err != nil {
			// 폼을 읽지 못해도 작성 화면에 머물게 한다.
			_ = c.Error(err)
			page := dto.NewPostDTO{
				State: dto.SubmitFailure,
				Form:  form,
				Types: services.PostTypes,
				Error: "invalid form",
			}
			r.Render(c, http.StatusBadRequest, views.NewPost, "Write Post", page, "new_post", page.State.String())
			return
		}

		page := dto.NewPostDTO{
			State: dto.SubmitSubmitting,
			Form:  form,
			Types: services.PostTypes,
		}

		created, err := svc.Create(c.Request.Context(), form)
		if err != nil {
			page.State = dto.SubmitFailure
			status := http.StatusBadGateway

			var verr *services.ValidationError
			if errors.As(err, &verr) {
				status = http.StatusUnprocessableEntity
				page.Missing = make(map[string]bool, len(verr.Missing))
				for _, f := range verr.Missing {
					page.Missing[f] = true
				}
			}
			page.Error = err.Error()
			_ = c.Error(err)
			r.Render(c, status, views.NewPost, "Write Post", page, "new_post", page.State.String())
			return
		}

		page.State = dto.SubmitSuccess
		page.Created = &created
		page.Redirect = "/"
		page.RedirectAfter = refreshSeconds(redirectAfter)
		r.Render(c, http.StatusCreated, views.NewPost, "Post published", page, "new_post", page.State.String())
	}
}

// refreshSeconds 는 meta refresh 에 쓸 초 단위 값이다. 1초 미만은 올림한다.
func refreshSeconds(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int((d + time.Second - 1) / time.Second)
}
