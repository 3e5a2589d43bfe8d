package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/sync/errgroup"

	"blog-web/cmd/internal/logger"
	"blog-web/cmd/web/clients/blogclient"
	"blog-web/cmd/web/dto"
	"blog-web/cmd/web/trace"
	"blog-web/markdown"
	"blog-web/pagination"
)

// PostsAPI 는 화면에서 필요한 블로그 API 호출만 모은 인터페이스다.
type PostsAPI interface {
	ListPosts(ctx context.Context, page, limit int) (blogclient.ListPostsResponse, error)
	ListLatest(ctx context.Context) (blogclient.ListPostsResponse, error)
	GetPost(ctx context.Context, slugOrID string) (blogclient.Post, error)
	CreatePost(ctx context.Context, in blogclient.CreatePostRequest) (blogclient.Post, error)
}

// DefaultPageSize 는 설정이 없을 때의 피드 페이지 크기다.
const DefaultPageSize = 5

// FeedOptions 는 홈 피드 구성 값이다.
type FeedOptions struct {
	PageSize        int
	FeaturedPreview int
	ListPreview     int
	SidebarPosts    int
}

// DetailOptions 는 글 상세 화면 구성 값이다.
type DetailOptions struct {
	LatestPosts int
}

// PostService는 화면 단위 유스케이스와 DTO 매핑을 캡슐화한다.
//
// - api: 원격 블로그 API 호출(목록/단건/생성)을 담당한다.
// - 화면별 실패 처리 규칙(빈 피드, 404 화면, 폼 유지)은 여기서 결정한다.
type PostService struct {
	api      PostsAPI
	renderer *markdown.Renderer
	feed     FeedOptions
	detail   DetailOptions
}

func NewPostService(api PostsAPI, renderer *markdown.Renderer, feed FeedOptions, detail DetailOptions) *PostService {
	if renderer == nil {
		renderer = markdown.New()
	}
	if feed.PageSize <= 0 {
		feed.PageSize = DefaultPageSize
	}
	return &PostService{api: api, renderer: renderer, feed: feed, detail: detail}
}

// Feed 는 피드 한 페이지를 불러온다. 실패하지 않는다: API 에러는 로그로 남기고
// 기본 메타데이터의 빈 페이지로 대체한다.
func (s *PostService) Feed(ctx context.Context, page int, basePath string, query url.Values) dto.FeedDTO {
	out := dto.FeedDTO{CurrentPage: page, State: dto.StateLoading}

	resp, err := s.api.ListPosts(ctx, page, s.feed.PageSize)
	if err != nil {
		logger.ErrorWithFields("failed to fetch posts", logger.Fields{
			"page":       page,
			"limit":      s.feed.PageSize,
			"request_id": trace.RequestIDFromContext(ctx),
			"error":      err.Error(),
		})
		resp = blogclient.ListPostsResponse{}
		out.Meta = dto.DefaultMeta(DefaultPageSize)
	} else {
		out.Meta = dto.MetaDTO(resp.Meta)
	}

	if len(resp.Posts) == 0 {
		out.State = dto.StateEmpty
		return out
	}

	list := resp.Posts
	// 첫 페이지의 첫 글은 featured 카드로 빼고 목록에서는 생략한다.
	if page == 1 {
		f := dto.NewPostCardDTO(list[0], s.feed.FeaturedPreview)
		out.Featured = &f
		list = list[1:]
	}
	for _, p := range list {
		out.Posts = append(out.Posts, dto.NewPostCardDTO(p, s.feed.ListPreview))
	}
	for _, p := range resp.Posts[:min(s.feed.SidebarPosts, len(resp.Posts))] {
		out.Sidebar = append(out.Sidebar, dto.NewPostCardDTO(p, 0))
	}

	out.Nav = pagination.Build(basePath, query, out.Meta.Page, out.Meta.TotalPages)
	out.State = dto.StateReady
	return out
}

// Latest 는 피드 첫 페이지의 최신 글을 반환한다.
func (s *PostService) Latest(ctx context.Context) ([]blogclient.Post, error) {
	resp, err := s.api.ListPosts(ctx, 1, s.feed.PageSize)
	if err != nil {
		return nil, err
	}
	return resp.Posts, nil
}

// Detail 은 글과 최신 글 목록을 동시에 가져와 합친다.
// 두 호출은 ctx 를 공유하므로 요청이 취소되면 둘 다 중단된다.
// 글 조회가 실패하면 최신 글 호출도 취소되고, 최신 글 호출 실패는 사이드바만 비운다.
func (s *PostService) Detail(ctx context.Context, slug string) (dto.PostDetailDTO, error) {
	var (
		post   blogclient.Post
		latest []blogclient.Post
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.api.GetPost(gctx, slug)
		if err != nil {
			return fmt.Errorf("get post %q: %w", slug, err)
		}
		post = p
		return nil
	})
	g.Go(func() error {
		resp, err := s.api.ListLatest(gctx)
		if err != nil {
			if gctx.Err() == nil {
				logger.WarnWithFields("failed to fetch latest posts", logger.Fields{
					"slug":       slug,
					"request_id": trace.RequestIDFromContext(ctx),
					"error":      err.Error(),
				})
			}
			return nil
		}
		latest = resp.Posts
		return nil
	})
	if err := g.Wait(); err != nil {
		return dto.PostDetailDTO{State: dto.StateError}, err
	}
	if err := ctx.Err(); err != nil {
		return dto.PostDetailDTO{State: dto.StateError}, err
	}

	html, err := s.renderer.Render(post.Content)
	if err != nil {
		return dto.PostDetailDTO{State: dto.StateError}, fmt.Errorf("render post %q: %w", slug, err)
	}

	card := dto.NewPostCardDTO(post, 0)
	if strings.TrimSpace(post.Thumbnail) == "" {
		if img := markdown.FirstImage(string(html)); img != "" {
			card.Thumbnail = img
		}
	}

	out := dto.PostDetailDTO{
		State:          dto.StateReady,
		Post:           card,
		ContentHTML:    html,
		ReadingMinutes: markdown.ReadingTime(post.Content),
	}
	for _, p := range latest[:min(s.detail.LatestPosts, len(latest))] {
		out.Latest = append(out.Latest, dto.NewPostCardDTO(p, 0))
	}
	return out, nil
}

// IsNotFound 는 err 가 글이 없다는 뜻인지 확인한다.
func IsNotFound(err error) bool {
	return errors.Is(err, blogclient.ErrNotFound)
}
