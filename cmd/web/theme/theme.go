package theme

import (
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

// Theme 은 페이지를 그리는 색상 테마다.
type Theme int

const (
	Light Theme = iota
	Dark
)

func (t Theme) String() string {
	if t == Dark {
		return "dark"
	}
	return "light"
}

// Toggle 은 반대 테마를 반환한다.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// Parse 는 "light"/"dark"(대소문자 무관)를 Theme 으로 바꾼다. 그 외에는 Light, ok=false.
func Parse(s string) (Theme, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dark":
		return Dark, true
	case "light":
		return Light, true
	default:
		return Light, false
	}
}

// Store 는 요청 하나의 테마를 담는다. Middleware 가 한 번 만들고
// Get/Set 으로만 읽고 바꾼다. Set 은 테마 쿠키에도 저장한다.
type Store struct {
	mu      sync.RWMutex
	current Theme
	cookie  string
	w       http.ResponseWriter
}

const contextKey = "theme.store"

// oneYear 는 쿠키 수명(초)이다.
const oneYear = 365 * 24 * 60 * 60

func (s *Store) Get() Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *Store) Set(t Theme) {
	s.mu.Lock()
	s.current = t
	s.mu.Unlock()

	if s.w != nil {
		http.SetCookie(s.w, &http.Cookie{
			Name:     s.cookie,
			Value:    t.String(),
			Path:     "/",
			MaxAge:   oneYear,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
}

// Middleware 는 쿠키로 요청의 Store 를 초기화한다. 쿠키가 없거나 잘못되면 def 를 쓴다.
func Middleware(cookieName string, def Theme) gin.HandlerFunc {
	return func(c *gin.Context) {
		current := def
		if v, err := c.Cookie(cookieName); err == nil {
			if t, ok := Parse(v); ok {
				current = t
			}
		}
		c.Set(contextKey, &Store{current: current, cookie: cookieName, w: c.Writer})
		c.Next()
	}
}

// FromContext 는 요청의 Store 를 반환한다. Middleware 가 없으면
// 렌더링이 깨지지 않도록 분리된 Light Store 를 반환한다.
func FromContext(c *gin.Context) *Store {
	if v, ok := c.Get(contextKey); ok {
		if s, ok := v.(*Store); ok {
			return s
		}
	}
	return &Store{current: Light}
}
