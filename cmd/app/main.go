package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"tweet-feed-backend/internal/common/config"
	"tweet-feed-backend/internal/common/logger"
	"tweet-feed-backend/internal/common/middleware"
	tweetHandler "tweet-feed-backend/internal/features/tweet/delivery/http"
	tweetRepo "tweet-feed-backend/internal/features/tweet/repository/redis"
	tweetService "tweet-feed-backend/internal/features/tweet/service"
	userHandler "tweet-feed-backend/internal/features/user/delivery/http"
	userRepo "tweet-feed-backend/internal/features/user/repository/redis"
	userService "tweet-feed-backend/internal/features/user/service"
	"tweet-feed-backend/internal/platform/redis"
)

func main() {
	cfg := config.Load()

	logger.Init("tweet-feed-backend", cfg.Debug)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	client, err := redis.Open(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to the store")
	}
	defer client.Close()

	logger.Info().Msg("Store connection established")

	userRepository := userRepo.NewUserRepository(client.Client)
	tweetRepository := tweetRepo.NewTweetRepository(client.Client)

	userSvc := userService.NewUserService(userRepository)
	tweetSvc := tweetService.NewTweetService(tweetRepository, userRepository)

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.Origin}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Accept"}
	if cfg.Server.Origin == "*" {
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowOrigins = nil
	}
	router.Use(cors.New(corsConfig))

	root := &router.RouterGroup
	userHandler.NewUserHandler(userSvc).RegisterRoutes(root)
	tweetHandler.NewTweetHandler(tweetSvc).RegisterRoutes(root)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC(),
			"service":   "tweet-feed-backend",
		})
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Int("port", cfg.Server.Port).Msg("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Server exited")
}
