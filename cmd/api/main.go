package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/shadrack-family/family-site-backend/internal/adapter/handler"
	pgRepo "github.com/shadrack-family/family-site-backend/internal/adapter/repository/postgres"
	adapterStorage "github.com/shadrack-family/family-site-backend/internal/adapter/storage"
	"github.com/shadrack-family/family-site-backend/internal/infrastructure/auth"
	"github.com/shadrack-family/family-site-backend/internal/infrastructure/cache"
	"github.com/shadrack-family/family-site-backend/internal/infrastructure/config"
	"github.com/shadrack-family/family-site-backend/internal/infrastructure/database"
	"github.com/shadrack-family/family-site-backend/internal/infrastructure/middleware"
	"github.com/shadrack-family/family-site-backend/internal/infrastructure/observability"
	"github.com/shadrack-family/family-site-backend/internal/infrastructure/server"
	"github.com/shadrack-family/family-site-backend/internal/infrastructure/storage"
	"github.com/shadrack-family/family-site-backend/internal/usecase/contact"
	"github.com/shadrack-family/family-site-backend/internal/usecase/event"
	"github.com/shadrack-family/family-site-backend/internal/usecase/gallery"
	"github.com/shadrack-family/family-site-backend/internal/usecase/member"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	pool, err := database.NewPostgresPool(ctx, cfg.Database)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	if err := database.RunMigrations(ctx, pool, "migrations"); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	// Repositories
	photoRepo := pgRepo.NewPhotoRepo(pool)
	albumRepo := pgRepo.NewAlbumRepo(pool)
	memberRepo := pgRepo.NewMemberRepo(pool)
	eventRepo := pgRepo.NewEventRepo(pool)
	messageRepo := pgRepo.NewMessageRepo(pool)

	// Infrastructure services
	jwtSvc := auth.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.AccessTokenTTL)

	files, err := newFileStorage(cfg)
	if err != nil {
		logger.Fatal("failed to create file storage", zap.Error(err))
	}
	thumbnailer := storage.NewThumbnailer(files)

	acceptor := gallery.NewAcceptor(files, gallery.AcceptorConfig{
		MaxFiles:     cfg.Upload.MaxFiles,
		MaxFileSize:  cfg.Upload.MaxFileSize,
		AllowedTypes: cfg.Upload.AllowedTypes,
		WriteTimeout: cfg.Upload.WriteTimeout,
	})

	// Use cases
	gallerySvc := gallery.NewService(photoRepo, albumRepo, files, thumbnailer, acceptor)
	memberSvc := member.NewService(memberRepo)
	eventSvc := event.NewService(eventRepo)
	contactSvc := contact.NewService(messageRepo)

	// Handlers
	galleryHandler := handler.NewGalleryHandler(gallerySvc)
	memberHandler := handler.NewMemberHandler(memberSvc)
	eventHandler := handler.NewEventHandler(eventSvc)
	contactHandler := handler.NewContactHandler(contactSvc)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtSvc)

	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			logger.Fatal("failed to connect to redis", zap.Error(err))
		}
		defer redisClient.Close()
		rateLimiter = middleware.NewRateLimiter(redisClient, cfg.RateLimit)
	}

	// Router
	router := server.NewRouter(server.RouterConfig{
		GalleryHandler: galleryHandler,
		MemberHandler:  memberHandler,
		EventHandler:   eventHandler,
		ContactHandler: contactHandler,
		AuthMiddleware: authMiddleware,
		RateLimiter:    rateLimiter,
		Logger:         logger,
		Environment:    cfg.Server.Environment,
		PublicDir:      cfg.Storage.PublicDir,
	})

	// Server
	srv := server.NewServer(server.ServerConfig{
		Port:            cfg.Server.Port,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Handler:         router.Engine(),
		Logger:          logger,
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}

	logger.Info("server stopped")
}

func newFileStorage(cfg *config.Config) (adapterStorage.FileStorage, error) {
	if cfg.Storage.Driver == "s3" {
		return storage.NewS3Storage(cfg.S3)
	}
	return storage.NewLocalStorage(cfg.Storage.UploadDir, cfg.Storage.PublicPath)
}
