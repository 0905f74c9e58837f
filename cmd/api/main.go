package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/gzip"
	_ "github.com/joho/godotenv/autoload"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/terraenergy/prospect-quote-api/docs" // Swagger docs
	"github.com/terraenergy/prospect-quote-api/internal/cloud"
	"github.com/terraenergy/prospect-quote-api/internal/config"
	"github.com/terraenergy/prospect-quote-api/internal/database"
	"github.com/terraenergy/prospect-quote-api/internal/handlers"
	"github.com/terraenergy/prospect-quote-api/internal/jobs"
	"github.com/terraenergy/prospect-quote-api/internal/middleware"
	"github.com/terraenergy/prospect-quote-api/internal/repository"
	"github.com/terraenergy/prospect-quote-api/internal/services"
	"github.com/terraenergy/prospect-quote-api/internal/storage"
	"github.com/terraenergy/prospect-quote-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// @title Prospect Quote API
// @version 1.0
// @description Generates and stores solar sales quote PDFs for Terra Energy prospects

// @contact.name Terra Energy
// @contact.url https://terraenergy.mx

// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Setup(cfg.Environment)

	// Sentry (GlitchTip) only when a DSN is configured
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			TracesSampleRate: 0.2,
			Environment:      cfg.Environment,
		}); err != nil {
			logger.Error("Sentry initialization failed", "error", err)
		} else {
			logger.Info("Sentry initialized")
		}
	}

	if cfg.Environment == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStartup()

	awsCfg, err := cloud.LoadAWSConfig(startupCtx, cloud.Options{
		Region:          cfg.AWSRegion,
		EndpointURL:     cfg.AWSEndpointURL,
		AccessKeyID:     cfg.AWSAccessKeyID,
		SecretAccessKey: cfg.AWSSecretAccessKey,
	})
	if err != nil {
		logger.Error("Failed to load AWS configuration", "error", err)
		os.Exit(1)
	}
	secrets := cloud.NewSecretsProvider(cloud.NewSecretsManagerClient(awsCfg))

	dsn, err := database.ResolveDSN(startupCtx, cfg.DatabaseURL, cfg.DBSecretName, secrets, database.Overrides{
		Host:   cfg.DBHost,
		DBName: cfg.DBName,
		Port:   cfg.DBPort,
	}, cfg.DBSSLMode)
	if err != nil {
		logger.Error("Failed to resolve database credentials", "error", err)
		os.Exit(1)
	}

	db, err := database.Connect(dsn, database.Options{
		Environment:  cfg.Environment,
		MaxOpenConns: cfg.DBMaxOpenConns,
	})
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	logger.Info("Connected to database")

	if err := database.Migrate(db); err != nil {
		logger.Error("Failed to migrate database", "error", err)
		os.Exit(1)
	}

	store, err := newDocumentStore(startupCtx, cfg, awsCfg, secrets)
	if err != nil {
		logger.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}

	renderer, err := services.NewQuoteRenderer(cfg.AssetsPath)
	if err != nil {
		logger.Error("Failed to load quote artwork", "error", err)
		os.Exit(1)
	}

	repos := repository.NewRepositories(db)

	worker := jobs.NewWorker(cfg.WorkerCount)
	logger.Info("Started background worker", "goroutines", cfg.WorkerCount)

	svcs := services.NewServices(repos, worker, store, renderer)
	h := handlers.NewHandlers(svcs)
	router := setupRouter(h, cfg)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Server starting", "port", cfg.Port, "environment", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	// drains pending registry writes
	worker.Shutdown()
	logger.Info("Background worker stopped")

	if err := database.Close(db); err != nil {
		logger.Error("Failed to close database", "error", err)
	}

	if cfg.SentryDSN != "" {
		sentry.Flush(5 * time.Second)
	}

	logger.Info("Server exited gracefully")
}

func newDocumentStore(ctx context.Context, cfg *config.Config, awsCfg aws.Config, secrets *cloud.SecretsProvider) (storage.DocumentStore, error) {
	if cfg.StorageDriver == config.StorageLocal {
		store, err := storage.NewLocalStorage(cfg.StoragePath)
		if err != nil {
			return nil, err
		}
		logger.Info("Initialized local storage", "path", cfg.StoragePath)
		return store, nil
	}

	bucket, err := cloud.ResolveBucket(ctx, secrets, cfg.S3BucketName, cfg.S3SecretName)
	if err != nil {
		return nil, err
	}
	logger.Info("Initialized S3 storage", "bucket", bucket, "region", awsCfg.Region)
	return storage.NewS3Storage(cloud.NewS3Client(awsCfg, cfg.AWSEndpointURL != ""), bucket, awsCfg.Region), nil
}

func setupRouter(h *handlers.Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()

	if cfg.SentryDSN != "" {
		router.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", h.Health.Index)

		protected := v1.Group("")
		protected.Use(middleware.Auth(cfg.JWTSecret))
		{
			quotes := protected.Group("/prospect-quotes")
			{
				limiter := middleware.NewClientLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
				quotes.POST("/pdf", middleware.RateLimit(limiter), h.Quote.CreatePDF)

				quotes.GET("/documents", middleware.RequireRole(middleware.RoleAdmin, middleware.RoleSeller), h.QuoteDocument.Index)
				quotes.GET("/documents/export", middleware.RequireAdmin(), h.QuoteDocument.Export)
			}

			protected.GET("/jobs/status", middleware.RequireAdmin(), h.Job.Status)
		}
	}

	return router
}
