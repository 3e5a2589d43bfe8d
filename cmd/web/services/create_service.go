package services

import (
	"context"
	"fmt"
	"strings"

	"blog-web/cmd/internal/logger"
	"blog-web/cmd/web/clients/blogclient"
	"blog-web/cmd/web/dto"
	"blog-web/cmd/web/trace"
)

// PostTypes 는 작성 폼에서 고를 수 있는 카테고리다.
var PostTypes = []string{
	"Lifestyle",
	"Inspirational",
	"Tutorial",
	"Educational",
	"Travel",
	"Technology",
	"Food & Cooking",
	"Personal Finance",
	"Health & Fitness",
	"Book Review",
}

// DefaultContent 는 새 폼의 본문 기본값이다.
const DefaultContent = "**Hello world!!!**"

// ValidationError 는 비어 있는 필수 항목 목록이다.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}

// Validate 는 API 호출 전에 필수 항목(title, content, type)을 확인한다.
func Validate(in dto.NewPostFormDTO) error {
	var missing []string
	if strings.TrimSpace(in.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(in.Content) == "" {
		missing = append(missing, "content")
	}
	if strings.TrimSpace(in.Type) == "" {
		missing = append(missing, "type")
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}

// Create 는 폼을 검증하고 통과한 경우에만 API 로 보낸다.
// 검증 실패 시 네트워크 호출 없이 *ValidationError 를 반환한다.
func (s *PostService) Create(ctx context.Context, in dto.NewPostFormDTO) (dto.PostCardDTO, error) {
	if err := Validate(in); err != nil {
		return dto.PostCardDTO{}, err
	}

	p, err := s.api.CreatePost(ctx, blogclient.CreatePostRequest{
		Title:        strings.TrimSpace(in.Title),
		Content:      in.Content,
		Thumbnail:    strings.TrimSpace(in.Thumbnail),
		Author:       strings.TrimSpace(in.Author),
		AuthorAvatar: strings.TrimSpace(in.AuthorAvatar),
		Type:         strings.TrimSpace(in.Type),
	})
	if err != nil {
		logger.ErrorWithFields("failed to create post", logger.Fields{
			"title":      in.Title,
			"request_id": trace.RequestIDFromContext(ctx),
			"error":      err.Error(),
		})
		return dto.PostCardDTO{}, fmt.Errorf("create post: %w", err)
	}
	return dto.NewPostCardDTO(p, 0), nil
}
