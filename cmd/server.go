package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"
	"github.com/spf13/cobra"
	"github.com/tsingjyujing/moodscope/config"
	"github.com/tsingjyujing/moodscope/controller"
	"github.com/tsingjyujing/moodscope/utils"
)

// newEchoServer sets up the routes: /health, /metrics and the /api/v1 group.
func newEchoServer(c *controller.Controller, serverConfig config.Server) *echo.Echo {
	echoServer := echo.New()
	echoServer.Use(echoprometheus.NewMiddleware("moodscope_http"))
	echoServer.GET("/metrics", echoprometheus.NewHandler())
	echoServer.GET("/health", func(echoCtx *echo.Context) error {
		return echoCtx.JSON(http.StatusOK, utils.StatusResponse{Status: "ok"})
	})
	echoServer.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
	}))

	apiGroup := echoServer.Group("/api/v1")
	apiGroup.Use(middleware.RequestLogger())

	// Apply Bearer Token authentication if tokens are configured
	if len(serverConfig.Tokens) > 0 {
		logger.Infof("Bearer token authentication enabled with %d token(s)", len(serverConfig.Tokens))
		apiGroup.Use(utils.CreateBearerTokenMiddleware(serverConfig.Tokens))
	} else {
		logger.Warn("Bearer token authentication disabled - no tokens configured")
	}
	c.RegisterRoutes(apiGroup)
	return echoServer
}

func NewServerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "server",
		Short: "Start the mood analysis HTTP server",
		Run: func(cmd *cobra.Command, args []string) {
			envelope := readConfig()
			a, err := buildAnalyzer(envelope)
			if err != nil {
				logger.WithError(err).Fatal("Failed to build analyzer")
			}
			echoServer := newEchoServer(controller.NewController(a), envelope.Server)
			httpServer := &http.Server{
				Addr:              envelope.Server.Address,
				Handler:           echoServer,
				ReadHeaderTimeout: 10 * time.Second,
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			go func() {
				logger.Infof("Starting server on %s", httpServer.Addr)
				if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.WithError(err).Error("Server start error")
					stop()
				}
			}()

			// Wait for interrupt signal to gracefully shutdown the server with a timeout
			<-ctx.Done()
			stop()
			logger.Info("Shutting down server gracefully, press Ctrl+C again to force")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := httpServer.Shutdown(shutdownCtx); err != nil {
				logger.WithError(err).Error("Server forced to shutdown")
			}
			logger.Info("Server stopped gracefully")
		},
	}
}
