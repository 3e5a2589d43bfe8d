package handlers

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"blog-web/cmd/web/theme"
)

// ToggleThemeHandler 는 라이트/다크 테마를 바꾸고 요청을 보낸 페이지로 돌려보낸다.
func ToggleThemeHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		store := theme.FromContext(c)
		store.Set(store.Get().Toggle())
		c.Redirect(http.StatusSeeOther, backTarget(c.Request))
	}
}

// backTarget 은 같은 호스트의 Referer 경로만 허용한다. 그 외에는 "/".
// 경로는 인코딩된 형태 그대로 쓴다. 디코딩하면 "%5C" 가 "\" 로 바뀌어
// 브라우저가 "/\host" 를 "//host" 로 해석한다.
func backTarget(req *http.Request) string {
	ref, err := url.Parse(req.Referer())
	if err != nil {
		return "/"
	}
	if ref.Host != "" && ref.Host != req.Host {
		return "/"
	}
	target := ref.EscapedPath()
	if !strings.HasPrefix(target, "/") || strings.ContainsRune(target, '\\') {
		return "/"
	}
	if len(target) > 1 && (target[1] == '/' || target[1] == '\\') {
		return "/"
	}
	if ref.RawQuery != "" {
		return target + "?" + ref.RawQuery
	}
	return target
}
