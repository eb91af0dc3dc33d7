package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"studenthub/internal/config"
	"studenthub/internal/database"
	"studenthub/internal/domain/ai"
	"studenthub/internal/domain/comment"
	"studenthub/internal/domain/course"
	"studenthub/internal/domain/file"
	"studenthub/internal/domain/notification"
	"studenthub/internal/domain/star"
	"studenthub/internal/domain/support"
	"studenthub/internal/domain/user"
	"studenthub/internal/middleware"
	"studenthub/internal/pkg/jwt"
	"studenthub/internal/pkg/logger"
	"studenthub/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logCfg := logger.DefaultConfig()
	logCfg.Level = cfg.Log.Level
	logCfg.Format = cfg.Log.Format
	logCfg.Output = cfg.Log.Output
	logCfg.FilePath = cfg.Log.FilePath
	if err := logger.Init(logCfg); err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	if err := db.AutoMigrate(
		&user.User{},
		&course.Course{},
		&file.FileRecord{},
		&star.Star{},
		&comment.Comment{},
		&comment.Report{},
		&support.SupportRequest{},
		&notification.Notification{},
	); err != nil {
		logger.Error("migration failed", "error", err)
		os.Exit(1)
	}

	var store storage.ObjectStorage
	switch cfg.Storage.Provider {
	case "minio":
		store, err = storage.NewMinioStorage(storage.MinioConfig{
			Endpoint:  cfg.Storage.Endpoint,
			AccessKey: cfg.Storage.AccessKey,
			SecretKey: cfg.Storage.SecretKey,
			Bucket:    cfg.Storage.Bucket,
			UseSSL:    cfg.Storage.UseSSL,
			PublicURL: cfg.Storage.PublicURL,
		})
	default:
		store, err = storage.NewLocalStorage(storage.LocalConfig{
			Dir:     cfg.Storage.LocalDir,
			BaseURL: cfg.Storage.LocalBaseURL,
		})
	}
	if err != nil {
		logger.Error("storage init failed", "provider", cfg.Storage.Provider, "error", err)
		os.Exit(1)
	}

	jwtService := jwt.New(cfg.JWTSecret, cfg.JWTAccessTTL)

	userRepo := user.NewRepository(db)
	courseRepo := course.NewRepository(db)
	fileRepo := file.NewRepository(db)
	starRepo := star.NewRepository(db)
	commentRepo := comment.NewRepository(db)
	supportRepo := support.NewRepository(db)
	notifRepo := notification.NewRepository(db)

	hub := notification.NewHub()

	userService := user.NewService(userRepo)
	courseService := course.NewService(courseRepo)
	fileService := file.NewService(fileRepo, store, userRepo, courseRepo)
	starService := star.NewService(starRepo, fileRepo)
	notifService := notification.NewService(notifRepo, userRepo, hub)
	commentService := comment.NewService(commentRepo, courseRepo, userRepo, notifService)
	supportService := support.NewService(supportRepo, userRepo, notifService)
	aiService := ai.NewService(ai.Config{
		APIURL:  cfg.AI.APIURL,
		APIKey:  cfg.AI.APIKey,
		Model:   cfg.AI.Model,
		Timeout: cfg.AI.Timeout,
	})

	userHandler := user.NewHandler(userService)
	courseHandler := course.NewHandler(courseService)
	fileHandler := file.NewHandler(fileService)
	starHandler := star.NewHandler(starService)
	commentHandler := comment.NewHandler(commentService)
	supportHandler := support.NewHandler(supportService)
	notifHandler := notification.NewHandler(notifService, jwtService)
	aiHandler := ai.NewHandler(aiService)

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		middleware.Recovery(),
		middleware.RequestLogger(),
		middleware.CORS(),
		middleware.Metrics(),
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	if cfg.Storage.Provider == "local" {
		r.Static("/uploads", cfg.Storage.LocalDir)
	}

	notifHandler.RegisterStream(r)

	adminOnly := middleware.RequireAdmin(userRepo)

	v1 := r.Group("/api/v1")
	v1.Use(middleware.Identity(jwtService))
	{
		userHandler.RegisterRoutes(v1)
		courseHandler.RegisterRoutes(v1, adminOnly)
		file.RegisterRoutes(v1, fileHandler)
		starHandler.RegisterRoutes(v1)
		commentHandler.RegisterRoutes(v1)
		supportHandler.RegisterRoutes(v1)
		notifHandler.RegisterRoutes(v1)
		aiHandler.RegisterRoutes(v1)

		admin := v1.Group("/admin")
		admin.Use(adminOnly)
		{
			commentHandler.RegisterAdminRoutes(admin)
			supportHandler.RegisterAdminRoutes(admin)
			notifHandler.RegisterAdminRoutes(admin)
		}
	}

	logger.Info("server starting", "port", cfg.Port, "env", cfg.AppEnv)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
