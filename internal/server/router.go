package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yb-lee/sns-feed-backend/internal/handlers"
	"github.com/yb-lee/sns-feed-backend/internal/logger"
	"github.com/yb-lee/sns-feed-backend/internal/middleware"
)

type RouterConfig struct {
	Log            *logger.Logger
	CORSOrigins    []string
	RateLimiter    *middleware.RateLimiter
	PostHandler    *handlers.PostHandler
	CommentHandler *handlers.CommentHandler
	LikeHandler    *handlers.LikeHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(cfg.Log))

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "X-Requested-With", "X-Request-ID"},
		AllowCredentials: true,
	}))

	if cfg.RateLimiter != nil {
		router.Use(cfg.RateLimiter.Middleware())
	}

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	posts := api.Group("/posts")
	{
		posts.GET("", cfg.PostHandler.ListPosts)
		posts.POST("", cfg.PostHandler.CreatePost)
		posts.GET("/:id", cfg.PostHandler.GetPost)
		posts.PATCH("/:id", cfg.PostHandler.UpdatePost)
		posts.DELETE("/:id", cfg.PostHandler.DeletePost)

		posts.GET("/:id/comments", cfg.CommentHandler.ListComments)
		posts.POST("/:id/comments", cfg.CommentHandler.CreateComment)
		posts.GET("/:id/comments/:commentId", cfg.CommentHandler.GetComment)
		posts.PATCH("/:id/comments/:commentId", cfg.CommentHandler.UpdateComment)
		posts.DELETE("/:id/comments/:commentId", cfg.CommentHandler.DeleteComment)

		posts.POST("/:id/likes", cfg.LikeHandler.LikePost)
		posts.DELETE("/:id/likes", cfg.LikeHandler.UnlikePost)
	}

	return router
}
