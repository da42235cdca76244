package main

// @title VariantLab API
// @version 1.0
// @description A/B testing engine: experiment lifecycle, visitor assignment, and statistical analysis.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/variantlab/abtest/config"
	_ "github.com/variantlab/abtest/docs" // Swagger docs (generated)
	"github.com/variantlab/abtest/pkg/analysis"
	"github.com/variantlab/abtest/pkg/api/handlers"
	custommw "github.com/variantlab/abtest/pkg/api/middleware"
	"github.com/variantlab/abtest/pkg/assignment"
	"github.com/variantlab/abtest/pkg/cache"
	"github.com/variantlab/abtest/pkg/database"
	"github.com/variantlab/abtest/pkg/experiments"
	"github.com/variantlab/abtest/pkg/export"
	"github.com/variantlab/abtest/pkg/jobs"
	"github.com/variantlab/abtest/pkg/metrics"
	custommiddleware "github.com/variantlab/abtest/pkg/middleware"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Printf("🔧 Configuration loaded (environment: %s)", cfg.APIEnvironment)

	// Initialize Sentry for error tracking
	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.SentryEnvironment,
			TracesSampleRate: 1.0, // Capture 100% of transactions in development, adjust in production
			AttachStacktrace: true,
		})
		if err != nil {
			log.Printf("⚠️  Failed to initialize Sentry: %v", err)
		} else {
			log.Printf("✅ Sentry initialized (environment: %s)", cfg.SentryEnvironment)
			defer sentry.Flush(2 * time.Second)
		}
	} else {
		log.Printf("ℹ️  Sentry disabled (no DSN configured)")
	}

	// Initialize database with SSL and optional read replicas
	sslCfg := &database.SSLConfig{
		Mode:         cfg.DBSSLMode,
		CertPath:     cfg.DBSSLCertPath,
		KeyPath:      cfg.DBSSLKeyPath,
		RootCertPath: cfg.DBSSLRootCertPath,
	}
	replicaCfg := database.DefaultReplicaConfig()
	replicaCfg.ReadReplicaURLs = cfg.DBReadReplicaURLs
	db, err := database.NewClientWithReplicas(cfg.DatabaseURL, database.DefaultPoolConfig(), sslCfg, replicaCfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Initialize Redis cache
	redisClient, err := cache.NewClient(cfg.RedisURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Initialize Prometheus metrics
	prometheusMetrics := metrics.New()
	log.Printf("✅ Prometheus metrics initialized")

	// Initialize services
	experimentService := experiments.NewService(db.Ent, redisClient)
	assignmentService := assignment.NewService(db.Ent, redisClient, prometheusMetrics)
	analysisService := analysis.NewService(db.Ent, prometheusMetrics)
	exportService := export.NewService(experimentService, analysisService)

	// Initialize handlers
	experimentHandler := handlers.NewExperimentHandler(experimentService, exportService, prometheusMetrics)
	assignmentHandler := handlers.NewAssignmentHandler(assignmentService)
	analysisHandler := handlers.NewAnalysisHandler(analysisService)

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	// Initialize rate limiters. Tracking endpoints get a much higher budget
	// since every storefront page view hits them.
	globalRateLimiter := custommiddleware.NewRateLimiter(cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	trackingRateLimiter := custommiddleware.NewRateLimiter(cfg.TrackingRequestsPerMinute, cfg.TrackingBurst)

	// Global middleware
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Printf("[%s] %s - Status: %d", c.Request().Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	// Sentry error tracking middleware (if configured)
	if cfg.SentryDSN != "" {
		e.Use(sentryecho.New(sentryecho.Options{
			Repanic: true, // Repanic after capturing to let the Recover middleware handle it
		}))
	}

	// Prometheus metrics middleware
	e.Use(prometheusMetrics.Middleware())

	// CORS with restricted origins
	e.Use(middleware.CORSWithConfig(custommiddleware.CORSConfig()))

	e.Use(middleware.Gzip())
	e.Use(middleware.Secure())
	e.Use(custommiddleware.SecurityHeaders(custommiddleware.SecurityHeadersConfig{}))

	// Banner route (public)
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"name":        "VariantLab API",
			"version":     "0.1.0",
			"status":      "running",
			"environment": cfg.APIEnvironment,
			"timestamp":   time.Now().Unix(),
		})
	})

	// Health check endpoint (public)
	e.GET("/health", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status":   "unhealthy",
				"database": "down",
			})
		}

		if _, err := redisClient.Redis.Ping(ctx).Result(); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status": "unhealthy",
				"cache":  "down",
			})
		}

		return c.JSON(http.StatusOK, map[string]any{
			"status":   "healthy",
			"database": "up",
			"cache":    "up",
		})
	})

	// Prometheus metrics endpoint (public)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Swagger documentation
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// API v1 routes
	v1 := e.Group("/api/v1")

	// Management surface (JWT protected)
	managed := v1.Group("/experiments")
	managed.Use(globalRateLimiter.RateLimitMiddleware())
	managed.Use(custommw.JWTMiddleware(cfg.JWTSecret))
	{
		managed.POST("", experimentHandler.Create)
		managed.GET("", experimentHandler.List)
		managed.GET("/:id", experimentHandler.GetByID)
		managed.PATCH("/:id", experimentHandler.Update)
		managed.DELETE("/:id", experimentHandler.Delete)
		managed.PATCH("/:id/variants/:variantId", experimentHandler.UpdateVariant)

		managed.POST("/:id/start", experimentHandler.Start)
		managed.POST("/:id/pause", experimentHandler.Pause)
		managed.POST("/:id/complete", experimentHandler.Complete)
		managed.POST("/:id/archive", experimentHandler.Archive)
		managed.POST("/:id/winner", experimentHandler.DeclareWinner)

		managed.GET("/:id/results", experimentHandler.Results)
		managed.GET("/:id/export", experimentHandler.Export)

		managed.GET("/:id/significance", analysisHandler.Significance)
		managed.GET("/:id/completion-estimate", analysisHandler.CompletionEstimate)
		managed.GET("/:id/metrics-over-time", analysisHandler.MetricsOverTime)
	}

	// Public event surface (no auth; called from the storefront edge)
	public := v1.Group("")
	public.Use(trackingRateLimiter.RateLimitMiddleware())
	{
		public.POST("/assignments", assignmentHandler.Assign)
		public.GET("/assignments", assignmentHandler.List)
		public.GET("/variant-config", assignmentHandler.VariantConfiguration)

		public.POST("/assignments/:id/impression", assignmentHandler.TrackImpression)
		public.POST("/assignments/:id/interaction", assignmentHandler.TrackInteraction)
		public.POST("/assignments/:id/conversion", assignmentHandler.TrackConversion)
		public.POST("/assignments/:id/events", assignmentHandler.TrackCustomEvent)
	}

	// Scheduled jobs: hourly significance refresh, 5-minute cache warm,
	// daily data health checks. Job reads go to a replica when one is
	// configured.
	cronManager := jobs.NewCronManager(db.GetReadClient(), redisClient, analysisService, assignmentService, nil)
	if err := cronManager.SetupJobs(); err != nil {
		log.Fatalf("❌ Failed to set up cron jobs: %v", err)
	}
	cronManager.Start()

	// Start server
	address := fmt.Sprintf("%s:%s", cfg.APIHost, cfg.APIPort)
	log.Printf("🚀 VariantLab API starting on %s", address)
	log.Printf("🛡️  Rate limiting: %d req/min management, %d req/min tracking", cfg.RateLimitRequestsPerMinute, cfg.TrackingRequestsPerMinute)
	log.Printf("⏰ Cron jobs: hourly significance refresh, 5-minute cache warm, daily health checks")

	// Graceful shutdown
	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	// Stop cron jobs
	cronManager.Stop()

	// Gracefully shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server gracefully stopped")
}
