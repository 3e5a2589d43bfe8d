package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"blog-web/cmd/internal/logger"
	"blog-web/cmd/web/metrics"
	"blog-web/cmd/web/theme"
	"blog-web/cmd/web/trace"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// 템플릿 이름
const (
	Feed     = "feed"
	Post     = "post"
	PostMiss = "post_missing"
	NewPost  = "new_post"
	About    = "about"
	NotFound = "not_found"
)

// Page 는 모든 템플릿이 받는 데이터다.
type Page struct {
	Title      string
	Theme      theme.Theme
	ActivePath string
	Chrome     Chrome
	RequestID  string
	// Body 는 화면별 DTO 다.
	Body any
}

// Dark 는 템플릿 헬퍼다.
func (p Page) Dark() bool { return p.Theme == theme.Dark }

var funcs = template.FuncMap{
	"delay": func(i int) string { return fmt.Sprintf("%dms", i*100) },
	"active": func(current, href string) bool {
		if href == "/" {
			return current == "/"
		}
		return strings.HasPrefix(current, href)
	},
}

// Load 는 임베드된 템플릿을 파싱한다.
func Load() (*template.Template, error) {
	t, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return t, nil
}

// Static 은 /static 에셋을 제공한다.
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

// Renderer 는 요청 컨텍스트로 Page 를 만들고 gin 으로 응답을 쓴다.
type Renderer struct {
	Chrome    Chrome
	templates *template.Template
}

// NewRenderer 는 템플릿을 한 번만 파싱한다.
func NewRenderer(chrome Chrome) (*Renderer, error) {
	t, err := Load()
	if err != nil {
		return nil, err
	}
	return &Renderer{Chrome: chrome, templates: t}, nil
}

// Render 는 템플릿을 버퍼에 실행한 뒤 status 로 응답한다.
// 실행에 실패하면 반쯤 그린 페이지 대신 500 을 쓴다.
// view/state 는 view_states_total 메트릭 라벨이며 비어 있어도 된다.
func (r *Renderer) Render(c *gin.Context, status int, name, title string, body any, view, state string) {
	page := Page{
		Title:      title,
		Theme:      theme.FromContext(c).Get(),
		ActivePath: c.Request.URL.Path,
		Chrome:     r.Chrome,
		RequestID:  trace.RequestIDFromContext(c.Request.Context()),
		Body:       body,
	}
	if view != "" {
		metrics.ViewStatesTotal.WithLabelValues(view, state).Inc()
	}

	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, page); err != nil {
		logger.ErrorWithFields("render page failed", logger.Fields{
			"template":   name,
			"request_id": page.RequestID,
			"error":      err.Error(),
		})
		_ = c.Error(err)
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}

	logger.DebugWithFields("render page", logger.Fields{
		"template":   name,
		"status":     status,
		"request_id": page.RequestID,
	})
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}
