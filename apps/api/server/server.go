package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/sails-app/sails-api/apps/api/handlers"
	"github.com/sails-app/sails-api/libs/go/cache"
	"github.com/sails-app/sails-api/libs/go/client/auth"
	awsclient "github.com/sails-app/sails-api/libs/go/client/aws"
	"github.com/sails-app/sails-api/libs/go/db"
	"github.com/sails-app/sails-api/libs/go/helpers"
	"github.com/sails-app/sails-api/libs/go/interfaces"
	"github.com/sails-app/sails-api/libs/go/logger"
	"github.com/sails-app/sails-api/libs/go/middleware"
	"github.com/sails-app/sails-api/libs/go/nexus"
	"github.com/sails-app/sails-api/libs/go/services"
)

// Dependencies are the collaborators the routes are built from
type Dependencies struct {
	NexusService interfaces.NexusService
	TaxService   interfaces.TaxService
	Users        auth.UserStore
	Auth         *auth.AuthClient
	DB           handlers.Pinger
	RateLimiter  *middleware.RateLimiter
}

var (
	deps        Dependencies
	dbPool      *pgxpool.Pool
	redisClient *redis.Client
	stopSweeper context.CancelFunc
	serverPort  = "8000"
)

// InitializeHandlers loads configuration and builds every dependency.
// Any failure is fatal.
func InitializeHandlers() {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = helpers.StageLocal
		log.Printf("Warning: STAGE environment variable not set, defaulting to '%s'", stage)
	}
	if !helpers.IsValidStage(stage) {
		log.Fatalf("Invalid STAGE environment variable: '%s'. Must be one of: %s, %s, %s",
			stage, helpers.StageProd, helpers.StageDev, helpers.StageLocal)
	}

	logger.InitLogger(stage)
	logger.Info("Initializing handlers for stage", zap.String("stage", stage))

	ctx := context.Background()

	secretsClient, err := awsclient.NewSecretsManagerClient(ctx)
	if err != nil {
		logger.Fatal("Failed to initialize AWS Secrets Manager client", zap.Error(err))
	}

	cfg, err := LoadConfig(ctx, secretsClient, stage)
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}
	serverPort = cfg.Port

	// The threshold table is required; a broken table must stop startup.
	registry, err := nexus.LoadDefaultRegistry()
	if err != nil {
		logger.Fatal("Failed to load nexus threshold registry", zap.Error(err))
	}

	dbPool, err = helpers.NewPool(ctx, cfg.DatabaseURL, helpers.DefaultPoolSettings())
	if err != nil {
		logger.Fatal("Unable to connect to database", zap.Error(err))
	}
	queries := db.New(dbPool)

	var nexusOpts []services.NexusServiceOption
	if cfg.RedisURL != "" {
		redisClient, err = cache.NewRedisClient(cfg.RedisURL)
		if err != nil {
			logger.Fatal("Failed to configure redis", zap.Error(err))
		}
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Warn("Redis not reachable at startup, reports will be computed on demand", zap.Error(err))
		}
		nexusOpts = append(nexusOpts, services.WithReportCache(cache.NewReportCache(redisClient, cfg.CacheTTL)))
		logger.Info("Nexus report cache enabled", zap.Duration("ttl", cfg.CacheTTL))
	}

	authClient, err := auth.NewAuthClient(cfg.Auth)
	if err != nil {
		logger.Fatal("Failed to initialize session auth", zap.Error(err))
	}

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit)
	var sweepCtx context.Context
	sweepCtx, stopSweeper = context.WithCancel(context.Background())
	go rateLimiter.Run(sweepCtx, 5*time.Minute)

	deps = Dependencies{
		NexusService: services.NewNexusService(queries, helpers.NewPoolTxRunner(dbPool), registry, nexusOpts...),
		TaxService:   services.NewTaxService(registry),
		Users:        queries,
		Auth:         authClient,
		DB:           dbPool,
		RateLimiter:  rateLimiter,
	}
}

// InitializeRoutes registers the routes built by InitializeHandlers
func InitializeRoutes(router *gin.Engine) {
	RegisterRoutes(router, deps)
}

// Port is the listen port resolved from configuration
func Port() string {
	return serverPort
}

// Shutdown releases the connections opened by InitializeHandlers
func Shutdown() {
	if stopSweeper != nil {
		stopSweeper()
	}
	if deps.Auth != nil {
		deps.Auth.Close()
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			logger.Warn("Failed to close redis client", zap.Error(err))
		}
	}
	if dbPool != nil {
		dbPool.Close()
	}
}

// RegisterRoutes mounts the public and authenticated routes on router
func RegisterRoutes(router *gin.Engine, d Dependencies) {
	router.Use(middleware.CorrelationID())
	router.Use(middleware.RequestLogging("/health", "/healthz"))
	router.Use(configureCORS())

	healthHandler := handlers.NewHealthHandler(d.DB)
	router.GET("/health", healthHandler.Health)
	router.GET("/healthz", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, handlers.ErrorResponse{
			Error:         "Route not found",
			CorrelationID: middleware.GetCorrelationID(c),
		})
	})

	nexusHandler := handlers.NewNexusHandler(d.NexusService)
	taxHandler := handlers.NewTaxHandler(d.TaxService)

	v1 := router.Group("/api/v1")
	protected := v1.Group("/")
	protected.Use(d.Auth.EnsureValidSession(d.Users))
	if d.RateLimiter != nil {
		protected.Use(d.RateLimiter.Middleware())
	}
	{
		nexusRoutes := protected.Group("/nexus")
		{
			nexusRoutes.GET("/exposure", nexusHandler.GetExposure)
			nexusRoutes.GET("/thresholds", nexusHandler.ListThresholds)
			nexusRoutes.GET("/registrations", nexusHandler.GetRegistrations)
			nexusRoutes.PUT("/registrations", nexusHandler.UpdateRegistrations)
		}

		tax := protected.Group("/tax")
		{
			tax.GET("/rates/:state_code", taxHandler.GetStateRate)
			tax.POST("/calculate", taxHandler.CalculateTax)
		}
	}
}

// configureCORS returns a configured CORS middleware
func configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	corsConfig.AllowOrigins = splitEnvList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"})
	corsConfig.AllowMethods = splitEnvList("CORS_ALLOWED_METHODS", []string{"GET", "POST", "PUT", "OPTIONS"})
	corsConfig.AllowHeaders = splitEnvList("CORS_ALLOWED_HEADERS", []string{
		"Origin", "Content-Type", "Accept", "Authorization", "X-Correlation-ID",
	})
	corsConfig.ExposeHeaders = splitEnvList("CORS_EXPOSED_HEADERS", []string{
		"X-RateLimit-Limit",
		"X-RateLimit-Remaining",
		"Retry-After",
		"X-Correlation-ID",
	})
	corsConfig.AllowCredentials = os.Getenv("CORS_ALLOW_CREDENTIALS") == "true"

	return cors.New(corsConfig)
}
