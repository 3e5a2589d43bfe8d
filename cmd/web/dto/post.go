package dto

import (
	"html/template"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"blog-web/cmd/web/clients/blogclient"
	"blog-web/pagination"
	"blog-web/preview"
)

// PlaceholderImage 는 썸네일이나 아바타가 없을 때 보여주는 이미지다.
const PlaceholderImage = "/static/placeholder.svg"

const (
	longDateLayout  = "January 2, 2006"
	shortDateLayout = "1/2/2006"
)

// PostCardDTO 는 목록/헤더에 표시하기 위해 가공한 글이다.
// Preview 는 미리보기 길이를 지정했을 때만 채워진다.
type PostCardDTO struct {
	ID            string
	Slug          string
	Href          string
	Title         string
	Type          string
	Author        string
	AuthorInitial string
	AuthorAvatar  string
	Thumbnail     string
	Preview       string
	CreatedAt     string
	Date          string
	ShortDate     string
}

// NewPostCardDTO 는 API 글을 카드로 변환한다. previewLen <= 0 이면 미리보기를 만들지 않는다.
func NewPostCardDTO(p blogclient.Post, previewLen int) PostCardDTO {
	d := PostCardDTO{
		ID:            p.ID,
		Slug:          p.Slug,
		Href:          PostHref(p),
		Title:         p.Title,
		Type:          p.Type,
		Author:        p.Author,
		AuthorInitial: initial(p.Author),
		AuthorAvatar:  orPlaceholder(p.AuthorAvatar),
		Thumbnail:     orPlaceholder(p.Thumbnail),
		CreatedAt:     p.CreatedAt,
		Date:          p.CreatedAt,
		ShortDate:     p.CreatedAt,
	}
	if t, err := time.Parse(time.RFC3339, p.CreatedAt); err == nil {
		d.Date = t.Format(longDateLayout)
		d.ShortDate = t.Format(shortDateLayout)
	}
	if previewLen > 0 {
		d.Preview = preview.ToPreview(p.Content, previewLen)
	}
	return d
}

// PostHref 는 slug 로 상세 페이지 링크를 만든다. slug 가 없으면 id 를 쓴다.
func PostHref(p blogclient.Post) string {
	key := p.Slug
	if key == "" {
		key = p.ID
	}
	return "/posts/" + url.PathEscape(key)
}

func initial(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "?"
	}
	r, _ := utf8.DecodeRuneInString(name)
	return strings.ToUpper(string(r))
}

func orPlaceholder(u string) string {
	if strings.TrimSpace(u) == "" {
		return PlaceholderImage
	}
	return u
}

// MetaDTO 는 API 페이지네이션 메타데이터다.
type MetaDTO struct {
	Page       int
	Limit      int
	TotalPages int
	TotalPosts int
}

// DefaultMeta 는 피드를 불러오지 못했을 때 대신 쓰는 메타데이터다.
func DefaultMeta(limit int) MetaDTO {
	return MetaDTO{Page: 1, Limit: limit, TotalPages: 1, TotalPosts: 0}
}

// FeedDTO 는 홈 화면이 렌더링하는 모든 값이다.
type FeedDTO struct {
	State       ViewState
	CurrentPage int
	Featured    *PostCardDTO
	Posts       []PostCardDTO
	Sidebar     []PostCardDTO
	Meta        MetaDTO
	Nav         pagination.Nav
}

// PostDetailDTO 는 글 상세 화면이다.
type PostDetailDTO struct {
	State          ViewState
	Post           PostCardDTO
	ContentHTML    template.HTML
	ReadingMinutes int
	Latest         []PostCardDTO
}

// NewPostFormDTO 는 제출 사이에 유지되는 작성 폼 입력값이다.
type NewPostFormDTO struct {
	Title        string `form:"title"`
	Content      string `form:"content"`
	Thumbnail    string `form:"thumbnail"`
	Author       string `form:"author"`
	AuthorAvatar string `form:"authorAvatar"`
	Type         string `form:"type"`
}

// NewPostDTO 는 글 작성 화면이다.
type NewPostDTO struct {
	State    SubmitState
	Form     NewPostFormDTO
	Types    []string
	Missing  map[string]bool
	Error    string
	Created  *PostCardDTO
	Redirect string
	// RedirectAfter 는 <meta http-equiv="refresh"> 에 들어가는 초 단위 값이다.
	RedirectAfter int
}
