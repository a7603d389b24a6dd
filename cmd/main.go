package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/yb-lee/sns-feed-backend/internal/config"
	"github.com/yb-lee/sns-feed-backend/internal/db"
	"github.com/yb-lee/sns-feed-backend/internal/handlers"
	"github.com/yb-lee/sns-feed-backend/internal/logger"
	"github.com/yb-lee/sns-feed-backend/internal/middleware"
	"github.com/yb-lee/sns-feed-backend/internal/repos"
	"github.com/yb-lee/sns-feed-backend/internal/server"
	"github.com/yb-lee/sns-feed-backend/internal/services"
	"github.com/yb-lee/sns-feed-backend/internal/store"
)

func main() {
	// Env file first so LOG_MODE can come from .env too.
	_ = godotenv.Load(".env")

	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Config
	log.Info("Loading configuration...")
	cfg, err := config.Load("config.yaml", log)
	if err != nil {
		log.Fatal("Failed to load configuration", "error", err)
	}

	// Entity store
	log.Info("Setting up entity store...", "backend", cfg.Storage.Backend)
	var entityStore store.Store
	switch cfg.Storage.Backend {
	case "memory":
		entityStore = store.NewMemoryStore(log)
	default:
		gormService, err := db.NewGormService(cfg.Storage, log)
		if err != nil {
			log.Fatal("Failed to init database", "error", err)
		}
		if err := gormService.AutoMigrateAll(); err != nil {
			log.Fatal("Database migration failed", "error", err)
		}
		thePG := gormService.DB()

		postRepo := repos.NewPostRepo(thePG, log)
		commentRepo := repos.NewCommentRepo(thePG, log)
		likeRepo := repos.NewLikeRepo(thePG, log)
		entityStore = store.NewGormStore(thePG, log, postRepo, commentRepo, likeRepo)
	}

	// Services
	log.Info("Setting up services...")
	postService := services.NewPostService(entityStore, log)
	commentService := services.NewCommentService(entityStore, log)
	likeService := services.NewLikeService(entityStore, log)

	// Handlers
	log.Info("Setting up handlers...")
	postHandler := handlers.NewPostHandler(postService)
	commentHandler := handlers.NewCommentHandler(commentService)
	likeHandler := handlers.NewLikeHandler(likeService)

	// Optional redis-backed rate limiter
	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled && cfg.Redis.Addr != "" {
		rateLimiter, err = middleware.NewRateLimiter(cfg.Redis, cfg.RateLimit, log)
		if err != nil {
			log.Fatal("Failed to init rate limiter", "error", err)
		}
		log.Info("Rate limiter enabled", "limit", cfg.RateLimit.Limit, "window_seconds", cfg.RateLimit.WindowSeconds)
	}

	// Router
	log.Info("Setting up router...")
	router := server.NewRouter(server.RouterConfig{
		Log:            log,
		CORSOrigins:    cfg.CORS.AllowOrigins,
		RateLimiter:    rateLimiter,
		PostHandler:    postHandler,
		CommentHandler: commentHandler,
		LikeHandler:    likeHandler,
	})

	addr := net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("Server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal("Server failed", "error", err)
	}
}
