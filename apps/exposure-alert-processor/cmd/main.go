package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/sails-app/sails-api/apps/exposure-alert-processor/internal/processor"
	awsclient "github.com/sails-app/sails-api/libs/go/client/aws"
	"github.com/sails-app/sails-api/libs/go/db"
	"github.com/sails-app/sails-api/libs/go/helpers"
	"github.com/sails-app/sails-api/libs/go/logger"
	"github.com/sails-app/sails-api/libs/go/nexus"
	"github.com/sails-app/sails-api/libs/go/services"
)

const (
	defaultFromEmail  = "alerts@sails.app"
	defaultFromName   = "Sails"
	defaultRunTimeout = 10 * time.Minute
)

func main() {
	runOnce := flag.Bool("local", false, "run a single alert pass and exit instead of starting the Lambda runtime")
	flag.Parse()

	err := godotenv.Load("../../.env")
	if err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v. Proceeding with environment variables/secrets.", err)
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
	logger.Info("Cold start: initializing exposure alert processor", zap.String("stage", stage))
	defer func() {
		_ = logger.Sync()
	}()

	ctx := context.Background()

	secretsClient, err := awsclient.NewSecretsManagerClient(ctx)
	if err != nil {
		logger.Fatal("Failed to initialize AWS Secrets Manager client", zap.Error(err))
	}

	dsn, err := helpers.ResolveDatabaseURL(ctx, secretsClient, stage)
	if err != nil {
		logger.Fatal("Failed to resolve database URL", zap.Error(err))
	}

	// The pool outlives this function so warm invocations reuse it.
	pool, err := helpers.NewPool(ctx, dsn, helpers.LambdaPoolSettings())
	if err != nil {
		logger.Fatal("Unable to connect to database", zap.Error(err))
	}
	queries := db.New(pool)

	registry, err := nexus.LoadDefaultRegistry()
	if err != nil {
		logger.Fatal("Failed to load nexus threshold registry", zap.Error(err))
	}

	resendAPIKey, err := secretsClient.GetSecretString(ctx, "RESEND_API_KEY_ARN", "RESEND_API_KEY")
	if err != nil {
		logger.Fatal("Failed to get Resend API key", zap.Error(err))
	}
	fromEmail := envOrDefault("EMAIL_FROM_ADDRESS", defaultFromEmail)
	fromName := envOrDefault("EMAIL_FROM_NAME", defaultFromName)
	emailService := services.NewResendEmailService(resendAPIKey, fromEmail, fromName, logger.Log)
	logger.Info("Email service initialized",
		zap.String("from_email", fromEmail),
		zap.String("from_name", fromName))

	runTimeout := defaultRunTimeout
	if raw := os.Getenv("ALERT_RUN_TIMEOUT"); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			runTimeout = parsed
		} else {
			logger.Warn("Ignoring invalid ALERT_RUN_TIMEOUT", zap.String("value", raw), zap.Error(err))
		}
	}

	txRunner := helpers.NewPoolTxRunner(pool)
	nexusService := services.NewNexusService(queries, txRunner, registry)
	alertService := services.NewAlertService(queries, txRunner, nexusService, emailService)
	app := processor.NewExposureAlertProcessor(alertService, runTimeout, logger.Log)

	if *runOnce {
		if _, err := app.Run(ctx); err != nil {
			pool.Close()
			logger.Fatal("Exposure alert run failed", zap.Error(err))
		}
		pool.Close()
		return
	}

	lambda.Start(app.HandleScheduledEvent)
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
