package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"blog-web/cmd/internal/logger"
	"blog-web/cmd/web/clients/blogclient"
	"blog-web/cmd/web/router"
	"blog-web/config"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			config.InitApp()
			cfg := config.GetConfig()
			if addr != "" {
				cfg.Server.Addr = addr
			}
			logger.Init(cfg.Logging.Level)
			return serve(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")
	return cmd
}

func serve(ctx context.Context, cfg config.AppConfig) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gin.SetMode(gin.ReleaseMode)
	client := blogclient.New(cfg.API.BaseURL, cfg.API.Timeout)
	engine, err := router.New(cfg, client)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router.WithCORS(engine, cfg.Server.CORSOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.InfoWithFields("web server listening", logger.Fields{
			"addr":     cfg.Server.Addr,
			"blog_api": client.BaseURL(),
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			logger.ErrorWithFields("web server stopped", logger.Fields{"error": err.Error()})
			return err
		}
		return nil
	case <-ctx.Done():
	}

	// 처리 중인 요청이 끝날 때까지 기다렸다가 종료한다.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.ErrorWithFields("graceful shutdown failed", logger.Fields{"error": err.Error()})
		return err
	}
	logger.InfoWithFields("web server stopped", nil)
	return nil
}
