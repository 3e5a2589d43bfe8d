package httpclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"

	"blog-web/cmd/internal/logger"
	"blog-web/cmd/web/metrics"
	"blog-web/cmd/web/trace"
)

// DefaultTimeout 는 Config.Timeout 이 0 일 때 사용하는 요청 타임아웃이다.
const DefaultTimeout = 10 * time.Second

// Config 는 블로그 API 용 HTTP 클라이언트 공통 설정이다.
type Config struct {
	Timeout time.Duration
	// Header 는 모든 요청에 기본으로 붙는 헤더다. 요청에 이미 있으면 덮어쓰지 않는다.
	Header http.Header
	// Transport 가 nil 이면 http.DefaultTransport 를 쓴다.
	Transport http.RoundTripper
}

// JSONHeader 는 블로그 API 가 기대하는 고정 헤더다.
func JSONHeader() http.Header {
	h := http.Header{}
	h.Set("Content-Type", "application/json")
	h.Set("Accept", "application/json")
	return h
}

// loggingRoundTripper 는 아웃바운드 호출마다 기본 헤더, X-Request-Id/X-Span-Id 트레이싱,
// 구조화 로그, 메트릭을 처리한다.
type loggingRoundTripper struct {
	inner  http.RoundTripper
	header http.Header
}

func (l *loggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	// RoundTripper 는 원본 요청을 수정하면 안 되므로 복제해서 사용한다.
	req = req.Clone(req.Context())
	for k, vs := range l.header {
		if req.Header.Get(k) == "" {
			for _, v := range vs {
				req.Header.Add(k, v)
			}
		}
	}

	requestID, spanID := trace.NextSpanID(req.Context())
	req.Header.Set("X-Request-Id", requestID)
	req.Header.Set("X-Span-Id", spanID)

	query := ""
	if req.URL != nil {
		query = req.URL.RawQuery
	}
	var bodySnippet string
	if req.Body != nil {
		if bodyBytes, err := io.ReadAll(req.Body); err == nil {
			const maxBodyLog = 1024
			if len(bodyBytes) > maxBodyLog {
				bodySnippet = string(bodyBytes[:maxBodyLog])
			} else {
				bodySnippet = string(bodyBytes)
			}
			req.Body = io.NopCloser(bytes.NewReader(bodyBytes))
		}
	}

	resp, err := l.inner.RoundTrip(req)
	duration := time.Since(start)
	metrics.APIRequestDuration.WithLabelValues(req.Method).Observe(duration.Seconds())

	fields := logger.Fields{
		"method":     req.Method,
		"url":        req.URL.String(),
		"query":      query,
		"duration":   duration.String(),
		"request_id": requestID,
		"span_id":    spanID,
	}
	if bodySnippet != "" {
		fields["body"] = bodySnippet
	}
	if err != nil {
		metrics.APIRequestsTotal.WithLabelValues(req.Method, "error").Inc()
		fields["error"] = err.Error()
		logger.ErrorWithFields("httpclient request failed", fields)
		return nil, err
	}

	metrics.APIRequestsTotal.WithLabelValues(req.Method, strconv.Itoa(resp.StatusCode)).Inc()
	fields["status"] = resp.StatusCode
	logger.DebugWithFields("httpclient request success", fields)
	return resp, nil
}

// BaseClient 는 http.Client 와 baseURL 을 묶어 URL/요청 생성을 돕는다.
type BaseClient struct {
	HTTPClient *http.Client
	BaseURL    string
}

// NewBaseClient 는 JSON 기본 헤더와 로깅이 포함된 클라이언트로 BaseClient 를 만든다.
func NewBaseClient(baseURL string, timeout time.Duration) *BaseClient {
	return &BaseClient{
		HTTPClient: New(Config{Timeout: timeout, Header: JSONHeader()}),
		BaseURL:    baseURL,
	}
}

// NewBaseClientWithClient 는 이미 만든 http.Client 를 사용한다. nil 이면 기본값.
func NewBaseClientWithClient(httpClient *http.Client, baseURL string) *BaseClient {
	if httpClient == nil {
		httpClient = New(Config{Header: JSONHeader()})
	}
	return &BaseClient{
		HTTPClient: httpClient,
		BaseURL:    baseURL,
	}
}

// NewRequest 는 baseURL 에 relPath 를 붙이고 query 를 인코딩해 요청을 만든다.
// relPath 에 '?' 가 있으면 path.Join 이 쿼리를 깨뜨리므로 에러를 반환한다.
func (c *BaseClient) NewRequest(ctx context.Context, method, relPath string, query url.Values, body io.Reader) (*http.Request, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if strings.Contains(relPath, "?") {
		return nil, fmt.Errorf("httpclient: relPath must not contain query string (use query parameter instead): %s", relPath)
	}
	base, err := url.Parse(c.BaseURL)
	if err != nil {
		return nil, err
	}
	if relPath != "" {
		base.Path = path.Join(base.Path, relPath)
	}
	if query != nil {
		base.RawQuery = query.Encode()
	}
	return http.NewRequestWithContext(ctx, method, base.String(), body)
}

// Do 는 내부 HTTP 클라이언트로 요청을 실행한다.
func (c *BaseClient) Do(req *http.Request) (*http.Response, error) {
	return c.HTTPClient.Do(req)
}

// New 는 주어진 설정으로 http.Client 를 만든다.
func New(cfg Config) *http.Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	transport := cfg.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: &loggingRoundTripper{inner: transport, header: cfg.Header.Clone()},
	}
}
