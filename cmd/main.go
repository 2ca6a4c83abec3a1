package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"golang.org/x/time/rate"

	"github.com/vbrandao/photogram/internal/config"
	"github.com/vbrandao/photogram/internal/database"
	"github.com/vbrandao/photogram/internal/handlers"
	appjwt "github.com/vbrandao/photogram/internal/jwt"
	"github.com/vbrandao/photogram/internal/logger"
	"github.com/vbrandao/photogram/internal/middlewares"
	"github.com/vbrandao/photogram/internal/repositories"
	"github.com/vbrandao/photogram/internal/services"
	"github.com/vbrandao/photogram/internal/storage"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title photogram API
// @version 1.0.0
// @description Photo sharing service: users, photos, likes, comments and search
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// run initializes the logger, storage layers, routes, and HTTP server,
// and handles graceful shutdown.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL and apply migrations
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d", cfg.PGHost, cfg.PGPort)
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.DSN())
	if err != nil {
		logger.Log.Errorw("PostgreSQL connection error", "error", err)
		return err
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	if err := database.RunMigrations(cfg.DSN()); err != nil {
		logger.Log.Errorw("migration error", "error", err)
		return err
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Errorw("Redis connection error", "error", err)
		return err
	}
	defer rdb.Close()

	// Kafka activity writer; optional
	var kafkaWriter services.KafkaWriter
	if cfg.KafkaAddr != "" {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaAddr),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
		}
		defer w.Close()
		kafkaWriter = w
	} else {
		logger.Log.Info("Kafka not configured, activity events disabled")
	}

	// S3 image storage
	fileStorage, err := storage.New(ctx, storage.Options{
		Endpoint:  cfg.S3Endpoint,
		Region:    cfg.S3Region,
		Bucket:    cfg.S3Bucket,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
	})
	if err != nil {
		logger.Log.Errorw("S3 storage init error", "error", err)
		return err
	}

	// Initialize JWT service
	tokens := appjwt.New(
		appjwt.WithSecretKey(cfg.JWTSecretKey),
		appjwt.WithExpiration(cfg.JWTExpiration),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	photoReadRepo := repositories.NewPhotoReadRepository(db)
	photoWriteRepo := repositories.NewPhotoWriteRepository(db)
	feedCache := repositories.NewFeedCacheRepository(rdb, cfg.FeedCacheTTL)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens)
	userService := services.NewUserService(userReadRepo, userWriteRepo)
	photoService := services.NewPhotoService(photoReadRepo, photoWriteRepo, feedCache, kafkaWriter)

	// Rate limiter for the credential endpoints
	authLimiter := middlewares.NewRateLimiter(rate.Limit(1), 10)
	defer authLimiter.Stop()

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("API working"))
	})

	// Public routes
	r.Group(func(r chi.Router) {
		r.Use(authLimiter.Middleware())
		r.Post("/users", handlers.NewRegisterHandler(authService))
		r.Post("/users/login", handlers.NewLoginHandler(authService))
	})
	r.Get("/users/{id}", handlers.NewGetUserHandler(userService))
	r.Get("/photos", handlers.NewListPhotosHandler(photoService))
	r.Get("/photos/user/{id}", handlers.NewListUserPhotosHandler(photoService))
	r.Get("/photos/search", handlers.NewSearchPhotosHandler(photoService))
	r.Get("/photos/{id}", handlers.NewGetPhotoHandler(photoService))

	// Protected routes
	authMiddleware := middlewares.AuthMiddleware(tokens, userReadRepo)
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/users/profile", handlers.NewGetProfileHandler())
		r.Put("/users", handlers.NewUpdateUserHandler(userService))
		r.Post("/photos", handlers.NewCreatePhotoHandler(photoService))
		r.Post("/photos/uploads", handlers.NewUploadHandler(fileStorage))
		r.Put("/photos/like/{id}", handlers.NewLikePhotoHandler(photoService))
		r.Put("/photos/comment/{id}", handlers.NewCommentPhotoHandler(photoService))
		r.Put("/photos/{id}", handlers.NewUpdatePhotoHandler(photoService))
		r.Delete("/photos/{id}", handlers.NewDeletePhotoHandler(photoService))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
