package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"blog-web/cmd/web/clients/blogclient"
	"blog-web/cmd/web/handlers"
	"blog-web/cmd/web/middleware"
	"blog-web/cmd/web/services"
	"blog-web/cmd/web/theme"
	"blog-web/cmd/web/views"
	"blog-web/config"
	"blog-web/markdown"
)

// ServiceName 은 웹 서버 로그/메트릭 라벨이다.
const ServiceName = "blog-web"

// New 는 블로그 클라이언트, 서비스, 뷰, 라우트를 하나의 엔진으로 묶는다.
func New(cfg config.AppConfig, client *blogclient.Client) (*gin.Engine, error) {
	renderer, err := views.NewRenderer(views.DefaultChrome(cfg.Site.Title))
	if err != nil {
		return nil, err
	}

	postsSvc := services.NewPostService(
		client,
		markdown.New(),
		services.FeedOptions{
			PageSize:        cfg.Feed.PageSize,
			FeaturedPreview: cfg.Feed.FeaturedPreview,
			ListPreview:     cfg.Feed.ListPreview,
			SidebarPosts:    cfg.Feed.SidebarPosts,
		},
		services.DetailOptions{LatestPosts: cfg.Post.LatestPosts},
	)

	defaultTheme, _ := theme.Parse(cfg.Theme.Default)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestTrace())
	r.Use(middleware.Prometheus(ServiceName))
	r.Use(theme.Middleware(cfg.Theme.CookieName, defaultTheme))

	r.StaticFS("/static", views.Static())
	r.GET("/health", handlers.HealthHandler(client))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/rss.xml", handlers.RSSHandler(postsSvc, cfg.Site.Title))

	r.GET("/", handlers.FeedHandler(postsSvc, renderer))
	r.GET("/about", handlers.AboutHandler(renderer))
	r.POST("/theme", handlers.ToggleThemeHandler())

	posts := r.Group("/posts")
	{
		posts.GET("/new", handlers.NewPostFormHandler(renderer))
		posts.POST("/new", handlers.CreatePostHandler(postsSvc, renderer, cfg.Post.RedirectDelay))
		posts.GET("/:slug", handlers.PostHandler(postsSvc, renderer))
	}

	r.NoRoute(handlers.NotFoundHandler(renderer))
	return r, nil
}

// WithCORS 는 다른 origin 에서 피드/헬스 엔드포인트를 읽을 수 있게 한다.
// origin 목록이 비어 있으면 모두 허용한다.
func WithCORS(h http.Handler, origins []string) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodHead},
	}).Handler(h)
}
