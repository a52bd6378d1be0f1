package main

import (
	"log"
	"net/http"

	"clubsite/docs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"clubsite/internal/auth"
	"clubsite/internal/cache"
	"clubsite/internal/config"
	"clubsite/internal/db"
	"clubsite/internal/handler"
	"clubsite/internal/mailer"
	"clubsite/internal/repository"
	"clubsite/internal/router"
	"clubsite/internal/service"
	"clubsite/internal/storage"
)

// @title Club Site API
// @version 1.0
// @description Backend for the entrepreneurship club site: public contact form and listings, admin CRUD for submissions, events, and team members.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the admin session token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	submissionRepo := repository.NewSubmissionRepository(gormDB)
	eventRepo := repository.NewEventRepository(gormDB)
	memberRepo := repository.NewMemberRepository(gormDB)

	// Initialize the admin session manager
	sessions := auth.NewSessionManager(cfg.AdminPassword, cfg.AdminPasswordHash)

	// Pick the blob store for team photos
	var blobs storage.BlobStore
	if cfg.UseObjectStorage() {
		blobs = storage.NewSupabaseStore(cfg.StorageURL, cfg.StorageServiceKey, cfg.StorageBucket)
		log.Printf("storing team photos in bucket %q at %s", cfg.StorageBucket, cfg.StorageURL)
	} else {
		diskStore, err := storage.NewDiskStore(cfg.UploadsDir)
		if err != nil {
			log.Fatalf("uploads dir init: %v", err)
		}
		blobs = diskStore
		log.Printf("storing team photos under %s", cfg.UploadsDir)
	}

	// Contact notifications are optional
	var notifier mailer.Notifier
	if cfg.MailEnabled() {
		notifier = mailer.NewSMTPNotifier(
			cfg.SMTPHost, cfg.SMTPPort,
			cfg.SMTPUsername, cfg.SMTPPassword,
			cfg.SMTPFrom, cfg.ContactNotifyTo,
		)
	}

	// Initialize services
	submissionService := service.NewSubmissionService(submissionRepo, notifier)
	eventService := service.NewEventService(eventRepo, cacheClient)
	memberService := service.NewMemberService(memberRepo, blobs, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(sessions)
	contactHandler := handler.NewContactHandler(submissionService)
	eventHandler := handler.NewEventHandler(eventService)
	teamHandler := handler.NewTeamHandler(memberService)

	// Register routes
	router.Register(
		e,
		cfg,
		sessions,
		authHandler,
		contactHandler,
		eventHandler,
		teamHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
