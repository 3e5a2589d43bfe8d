package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

// DefaultAPIBaseURL 는 환경변수/설정 파일 모두 비어 있을 때 사용하는 원격 블로그 API 주소다.
const DefaultAPIBaseURL = "https://blog-task-backend-rho.vercel.app/api"

// API 주소를 덮어쓰는 환경변수. 프런트엔드 빌드 시절 이름도 함께 허용한다.
var apiURLEnvKeys = []string{"BLOG_API_URL", "NEXT_PUBLIC_API_URL"}

type AppConfig struct {
	Logging LoggingConfig `yaml:"logging"`
	Server  ServerConfig  `yaml:"server"`
	API     APIConfig     `yaml:"api"`
	Site    SiteConfig    `yaml:"site"`
	Feed    FeedConfig    `yaml:"feed"`
	Post    PostConfig    `yaml:"post"`
	Theme   ThemeConfig   `yaml:"theme"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type ServerConfig struct {
	Addr        string   `yaml:"addr"`
	CORSOrigins []string `yaml:"cors_origins"`
}

// APIConfig 는 원격 블로그 API 호출 설정이다.
type APIConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

type SiteConfig struct {
	Title string `yaml:"title"`
}

// FeedConfig controls the home feed layout.
type FeedConfig struct {
	PageSize        int `yaml:"page_size"`
	FeaturedPreview int `yaml:"featured_preview"`
	ListPreview     int `yaml:"list_preview"`
	SidebarPosts    int `yaml:"sidebar_posts"`
}

type PostConfig struct {
	LatestPosts   int           `yaml:"latest_posts"`
	RedirectDelay time.Duration `yaml:"redirect_delay"`
}

type ThemeConfig struct {
	CookieName string `yaml:"cookie_name"`
	Default    string `yaml:"default"`
}

var config *AppConfig

// Default 는 config.yaml 이 없을 때 사용하는 기본 설정이다.
func Default() AppConfig {
	return AppConfig{
		Logging: LoggingConfig{Level: "info"},
		Server:  ServerConfig{Addr: ":8080"},
		API: APIConfig{
			BaseURL: DefaultAPIBaseURL,
			Timeout: 10 * time.Second,
		},
		Site: SiteConfig{Title: "Blogs"},
		Feed: FeedConfig{
			PageSize:        5,
			FeaturedPreview: 200,
			ListPreview:     120,
			SidebarPosts:    5,
		},
		Post: PostConfig{
			LatestPosts:   4,
			RedirectDelay: 2 * time.Second,
		},
		Theme: ThemeConfig{CookieName: "theme", Default: "light"},
	}
}

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	c, err := Load(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}
	config = &c
}

// Load 는 path 의 YAML 을 기본값 위에 덮어써서 읽는다.
// 파일이 없으면 기본값에 환경변수만 반영해 반환한다.
func Load(path string) (AppConfig, error) {
	c := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &c); err != nil {
			return AppConfig{}, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return AppConfig{}, err
	}

	applyEnv(&c)
	fillZero(&c)
	return c, nil
}

func applyEnv(c *AppConfig) {
	for _, key := range apiURLEnvKeys {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			c.API.BaseURL = v
			break
		}
	}
	if v := strings.TrimSpace(os.Getenv("WEB_ADDR")); v != "" {
		c.Server.Addr = v
	}
	if v := strings.TrimSpace(os.Getenv("LOG_LEVEL")); v != "" {
		c.Logging.Level = v
	}
}

// YAML 에 0 이나 빈 값이 들어와도 화면이 깨지지 않도록 기본값으로 되돌린다.
func fillZero(c *AppConfig) {
	d := Default()
	if c.API.BaseURL == "" {
		c.API.BaseURL = d.API.BaseURL
	}
	if c.API.Timeout <= 0 {
		c.API.Timeout = d.API.Timeout
	}
	if c.Server.Addr == "" {
		c.Server.Addr = d.Server.Addr
	}
	if c.Site.Title == "" {
		c.Site.Title = d.Site.Title
	}
	if c.Feed.PageSize <= 0 {
		c.Feed.PageSize = d.Feed.PageSize
	}
	if c.Feed.FeaturedPreview <= 0 {
		c.Feed.FeaturedPreview = d.Feed.FeaturedPreview
	}
	if c.Feed.ListPreview <= 0 {
		c.Feed.ListPreview = d.Feed.ListPreview
	}
	if c.Feed.SidebarPosts <= 0 {
		c.Feed.SidebarPosts = d.Feed.SidebarPosts
	}
	if c.Post.LatestPosts <= 0 {
		c.Post.LatestPosts = d.Post.LatestPosts
	}
	if c.Post.RedirectDelay <= 0 {
		c.Post.RedirectDelay = d.Post.RedirectDelay
	}
	if c.Theme.CookieName == "" {
		c.Theme.CookieName = d.Theme.CookieName
	}
	if c.Theme.Default == "" {
		c.Theme.Default = d.Theme.Default
	}
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
