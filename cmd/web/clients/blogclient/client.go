package blogclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"

	"blog-web/cmd/web/httpclient"
)

// Client 는 원격 블로그 REST API 를 호출하는 얇은 클라이언트다.
//
// - 화면 로직은 전혀 알지 않고 JSON 을 그대로 타입으로 옮긴다.
// - 실패 시 화면별 대체 동작(빈 목록, 404 화면 등)은 services 가 결정한다.
//
// baseURL 예: https://blog-task-backend-rho.vercel.app/api
type Client struct {
	base *httpclient.BaseClient
}

var ErrNotFound = errors.New("resource not found")

// StatusError 는 API 가 기대하지 않은 상태 코드를 돌려준 경우다.
type StatusError struct {
	Op     string
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("blog-api %s: status=%d body=%s", e.Op, e.Status, e.Body)
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{base: httpclient.NewBaseClient(baseURL, timeout)}
}

// NewWithClient 는 테스트 등에서 준비한 http.Client 를 사용한다.
func NewWithClient(httpClient *http.Client, baseURL string) *Client {
	return &Client{base: httpclient.NewBaseClientWithClient(httpClient, baseURL)}
}

// BaseURL 은 설정된 API 주소를 반환한다.
func (c *Client) BaseURL() string {
	return c.base.BaseURL
}

// -------------------- Types --------------------

// Post 는 API 가 내려주는 글 한 건이다. 생명주기는 API 가 관리한다.
type Post struct {
	ID           string `json:"_id"`
	Slug         string `json:"slug"`
	Title        string `json:"title"`
	Content      string `json:"content"`
	Thumbnail    string `json:"thumbnail"`
	Author       string `json:"author"`
	AuthorAvatar string `json:"authorAvatar"`
	Type         string `json:"type"`
	CreatedAt    string `json:"createdAt"`
}

type Meta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
	TotalPosts int `json:"totalPosts"`
}

type ListPostsResponse struct {
	Posts []Post `json:"posts"`
	Meta  Meta   `json:"meta"`
}

type CreatePostRequest struct {
	Title        string `json:"title"`
	Content      string `json:"content"`
	Thumbnail    string `json:"thumbnail"`
	Author       string `json:"author"`
	AuthorAvatar string `json:"authorAvatar"`
	Type         string `json:"type"`
}

// -------------------- Posts --------------------

// ListPosts 는 GET /posts?page=P&limit=L 을 호출한다.
func (c *Client) ListPosts(ctx context.Context, page, limit int) (ListPostsResponse, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	return c.listPosts(ctx, "ListPosts", q)
}

// ListLatest 는 쿼리 없이 GET /posts 를 호출한다. 페이지 크기는 API 기본값을 따른다.
func (c *Client) ListLatest(ctx context.Context) (ListPostsResponse, error) {
	return c.listPosts(ctx, "ListLatest", nil)
}

func (c *Client) listPosts(ctx context.Context, op string, q url.Values) (ListPostsResponse, error) {
	req, err := c.base.NewRequest(ctx, http.MethodGet, "/posts", q, nil)
	if err != nil {
		return ListPostsResponse{}, err
	}

	resp, err := c.base.Do(req)
	if err != nil {
		return ListPostsResponse{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ListPostsResponse{}, statusError(op, resp)
	}

	var out ListPostsResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return ListPostsResponse{}, fmt.Errorf("blog-api %s: decode: %w", op, err)
	}
	return out, nil
}

// GetPost 는 slug 또는 id 로 단일 글을 조회한다.
// 존재하지 않으면 ErrNotFound 를 반환한다.
func (c *Client) GetPost(ctx context.Context, slugOrID string) (Post, error) {
	// path.Join 이 "/", ".." 를 경로로 해석하므로 그런 slug 는 존재하지 않는 글로 본다.
	if slugOrID == "" || slugOrID == "." || slugOrID == ".." || strings.Contains(slugOrID, "/") {
		return Post{}, ErrNotFound
	}
	relPath := path.Join("/posts", slugOrID)
	req, err := c.base.NewRequest(ctx, http.MethodGet, relPath, nil, nil)
	if err != nil {
		return Post{}, err
	}

	resp, err := c.base.Do(req)
	if err != nil {
		return Post{}, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var out Post
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			return Post{}, fmt.Errorf("blog-api GetPost: decode: %w", err)
		}
		return out, nil
	case http.StatusNotFound:
		return Post{}, ErrNotFound
	default:
		return Post{}, statusError("GetPost", resp)
	}
}

// CreatePost 는 POST /posts 를 호출한다. 201 Created 만 성공으로 본다.
func (c *Client) CreatePost(ctx context.Context, in CreatePostRequest) (Post, error) {
	buf, err := json.Marshal(in)
	if err != nil {
		return Post{}, err
	}

	req, err := c.base.NewRequest(ctx, http.MethodPost, "/posts", nil, bytes.NewReader(buf))
	if err != nil {
		return Post{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.base.Do(req)
	if err != nil {
		return Post{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return Post{}, statusError("CreatePost", resp)
	}

	// 성공 여부는 상태 코드로만 판단한다. 본문이 비었거나 형식이 달라도 글은 이미 생성됐다.
	var out Post
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Post{}, nil
	}
	return out, nil
}

// Ping 은 가장 가벼운 목록 요청으로 API 가 응답하는지 확인한다.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.ListPosts(ctx, 1, 1)
	return err
}

func statusError(op string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
	return &StatusError{Op: op, Status: resp.StatusCode, Body: string(body)}
}
