package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blogarchive-backend/internal/shared/middleware"
	"blogarchive-backend/internal/shared/response"
	"blogarchive-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	env := c.Config.App.Environment
	router.Use(
		middleware.Recovery(),
		middleware.Logger(),
		middleware.Errors(env),
		middleware.CORS("*"),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		v1.POST("/auth/login", c.AuthHandler.Login)

		setupPublicRoutes(v1, c)
		setupAdminRoutes(v1, c)
	}

	return router
}

func setupPublicRoutes(v1 *gin.RouterGroup, c *container.Container) {
	v1.GET("/articles", c.ArticleHandler.List)
	v1.GET("/articles/:slug", c.ArticleHandler.GetBySlug)
	v1.POST("/articles/:id/views", c.ArticleHandler.IncrementViews)

	v1.GET("/categories", c.CategoryHandler.List)
	v1.GET("/categories/:id", c.CategoryHandler.Get)

	v1.POST("/contact", c.ContactHandler.CreateMessage)
	v1.POST("/subscribers", c.ContactHandler.Subscribe)

	v1.GET("/spotlight/:type/:id", c.SpotlightHandler.Get)
	v1.POST("/spotlight/:type/batch", c.SpotlightHandler.GetMany)
}

func setupAdminRoutes(v1 *gin.RouterGroup, c *container.Container) {
	admin := v1.Group("/admin")
	admin.Use(middleware.Auth(c.JWTManager), middleware.Admin())
	{
		admin.GET("/articles", c.ArticleHandler.List)
		admin.GET("/articles/:id", c.ArticleHandler.Get)
		admin.POST("/articles", c.ArticleHandler.Create)
		admin.PUT("/articles/:id", c.ArticleHandler.Update)
		admin.DELETE("/articles/:id", c.ArticleHandler.Delete)

		admin.POST("/categories", c.CategoryHandler.Create)
		admin.PUT("/categories/:id", c.CategoryHandler.Update)
		admin.DELETE("/categories/:id", c.CategoryHandler.Delete)

		admin.GET("/images", c.ImageHandler.List)
		admin.GET("/images/:id", c.ImageHandler.Get)
		admin.POST("/images", c.ImageHandler.Create)
		admin.DELETE("/images/:id", c.ImageHandler.Delete)

		admin.GET("/contact-messages", c.ContactHandler.ListMessages)
		admin.PATCH("/contact-messages/:id/read", c.ContactHandler.MarkRead)
		admin.DELETE("/contact-messages/:id", c.ContactHandler.DeleteMessage)

		admin.GET("/subscribers", c.ContactHandler.ListSubscribers)
		admin.DELETE("/subscribers/:id", c.ContactHandler.Unsubscribe)

		admin.POST("/spotlight/revalidate/:type", c.SpotlightHandler.Revalidate)
	}

	archive := v1.Group("/archive")
	adminArchive := admin.Group("/archive")

	c.MovieHandler.Register(archive, adminArchive, "movies")
	c.BookHandler.Register(archive, adminArchive, "books")
	c.GameHandler.Register(archive, adminArchive, "games")
	c.AnimeHandler.Register(archive, adminArchive, "animes")
	c.MusicHandler.Register(archive, adminArchive, "musics")
	c.TvSeriesHandler.Register(archive, adminArchive, "tv-series")
	c.QuoteHandler.Register(archive, adminArchive, "quotes")
	c.TtrpgHandler.Register(archive, adminArchive, "ttrpgs")
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			response.Error(ctx, http.StatusServiceUnavailable, "database unavailable")
			return
		}
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			response.Error(ctx, http.StatusServiceUnavailable, "cache unavailable")
			return
		}
		response.Success(ctx, http.StatusOK, gin.H{
			"status":  "ok",
			"version": c.Config.App.Version,
		})
	}
}
