package server

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shadrack-family/family-site-backend/internal/adapter/handler"
	"github.com/shadrack-family/family-site-backend/internal/infrastructure/middleware"
)

type Router struct {
	engine         *gin.Engine
	galleryHandler *handler.GalleryHandler
	memberHandler  *handler.MemberHandler
	eventHandler   *handler.EventHandler
	contactHandler *handler.ContactHandler
	authMiddleware *middleware.AuthMiddleware
	rateLimiter    *middleware.RateLimiter
	logger         *zap.Logger
	publicDir      string
}

type RouterConfig struct {
	GalleryHandler *handler.GalleryHandler
	MemberHandler  *handler.MemberHandler
	EventHandler   *handler.EventHandler
	ContactHandler *handler.ContactHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    *middleware.RateLimiter
	Logger         *zap.Logger
	Environment    string
	PublicDir      string
}

func NewRouter(cfg RouterConfig) *Router {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	r := &Router{
		engine:         engine,
		galleryHandler: cfg.GalleryHandler,
		memberHandler:  cfg.MemberHandler,
		eventHandler:   cfg.EventHandler,
		contactHandler: cfg.ContactHandler,
		authMiddleware: cfg.AuthMiddleware,
		rateLimiter:    cfg.RateLimiter,
		logger:         cfg.Logger,
		publicDir:      cfg.PublicDir,
	}

	r.setupMiddleware()
	r.setupRoutes()

	return r
}

func (r *Router) setupMiddleware() {
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	if r.rateLimiter != nil {
		r.engine.Use(r.rateLimiter.Limit())
	}

	if r.publicDir != "" {
		r.engine.Use(static.Serve("/", static.LocalFile(r.publicDir, false)))
	}
}

func (r *Router) setupRoutes() {
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.engine.Group("/api")
	{
		gallery := api.Group("/gallery")
		{
			gallery.GET("/photos", r.galleryHandler.ListPhotos)
			gallery.GET("/albums", r.galleryHandler.ListAlbums)

			gallery.POST("/upload", r.authMiddleware.RequireAuth(), r.galleryHandler.Upload)
			gallery.PATCH("/photos/:id", r.authMiddleware.RequireAuth(), r.galleryHandler.UpdatePhoto)
			gallery.DELETE("/photos/:id", r.authMiddleware.RequireAuth(), r.galleryHandler.DeletePhoto)
			gallery.POST("/albums", r.authMiddleware.RequireAuth(), r.galleryHandler.CreateAlbum)
			gallery.DELETE("/albums/:id", r.authMiddleware.RequireAuth(), r.galleryHandler.DeleteAlbum)
		}

		members := api.Group("/members")
		{
			members.GET("", r.memberHandler.List)
			members.GET("/:id", r.memberHandler.Get)

			members.POST("", r.authMiddleware.RequireAuth(), r.memberHandler.Create)
			members.PUT("/:id", r.authMiddleware.RequireAuth(), r.memberHandler.Update)
			members.DELETE("/:id", r.authMiddleware.RequireAuth(), r.memberHandler.Delete)
		}

		events := api.Group("/events")
		{
			events.GET("", r.eventHandler.List)
			events.GET("/:id", r.eventHandler.Get)

			events.POST("", r.authMiddleware.RequireAuth(), r.eventHandler.Create)
			events.PUT("/:id", r.authMiddleware.RequireAuth(), r.eventHandler.Update)
			events.DELETE("/:id", r.authMiddleware.RequireAuth(), r.eventHandler.Delete)
		}

		contact := api.Group("/contact")
		{
			contact.POST("", r.contactHandler.Submit)

			contact.GET("", r.authMiddleware.RequireAuth(), r.contactHandler.List)
			contact.DELETE("/:id", r.authMiddleware.RequireAuth(), r.contactHandler.Delete)
		}
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
