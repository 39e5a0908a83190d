package aws

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"go.uber.org/zap"

	"github.com/sails-app/sails-api/libs/go/logger"
)

// SecretsAPI is the Secrets Manager operation the client uses
type SecretsAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// SecretsManagerClient wraps the AWS Secrets Manager client.
type SecretsManagerClient struct {
	svc SecretsAPI
}

// NewSecretsManagerClient creates and initializes a new Secrets Manager client.
// It uses the default AWS configuration chain (environment variables, shared config, IAM role).
func NewSecretsManagerClient(ctx context.Context) (*SecretsManagerClient, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}

	return NewSecretsManagerClientWithAPI(secretsmanager.NewFromConfig(cfg)), nil
}

// NewSecretsManagerClientWithAPI wraps an existing Secrets Manager API
func NewSecretsManagerClientWithAPI(svc SecretsAPI) *SecretsManagerClient {
	return &SecretsManagerClient{svc: svc}
}

// GetSecretString fetches the secret whose ARN is held in secretArnEnvVar.
// When the ARN is unset or the fetch fails it falls back to the value of
// fallbackEnvVar. Secrets stored as a single-key JSON object are unwrapped.
func (c *SecretsManagerClient) GetSecretString(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string) (string, error) {
	raw, err := c.rawSecret(ctx, secretArnEnvVar, fallbackEnvVar)
	if err != nil {
		return "", err
	}
	return unwrapSecret(raw), nil
}

func (c *SecretsManagerClient) rawSecret(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string) (string, error) {
	secretArn := os.Getenv(secretArnEnvVar)

	if secretArn != "" {
		result, err := c.svc.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
			SecretId: aws.String(secretArn),
		})
		if err == nil && result.SecretString != nil && *result.SecretString != "" {
			logger.Log.Info("Fetched secret from Secrets Manager", zap.String("arnEnvVar", secretArnEnvVar))
			return *result.SecretString, nil
		}

		logger.Log.Warn("Failed to retrieve secret from Secrets Manager, falling back to env var",
			zap.String("secretArnEnvVar", secretArnEnvVar),
			zap.String("fallbackEnvVar", fallbackEnvVar),
			zap.Error(err),
		)
	} else {
		logger.Log.Debug("Secret ARN environment variable not set, falling back to direct env var",
			zap.String("arnEnvVar", secretArnEnvVar),
			zap.String("fallbackEnvVar", fallbackEnvVar),
		)
	}

	if fallbackEnvVar != "" {
		if secretValue := os.Getenv(fallbackEnvVar); secretValue != "" {
			logger.Log.Info("Using secret value from direct environment variable", zap.String("envVar", fallbackEnvVar))
			return secretValue, nil
		}
	}

	return "", fmt.Errorf("secret not found using ARN env var '%s' or direct env var '%s'", secretArnEnvVar, fallbackEnvVar)
}

// GetSecretJSON fetches a secret like GetSecretString and unmarshals it into out.
func (c *SecretsManagerClient) GetSecretJSON(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string, out interface{}) error {
	raw, err := c.rawSecret(ctx, secretArnEnvVar, fallbackEnvVar)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf("failed to unmarshal secret JSON from '%s': %w", secretArnEnvVar, err)
	}
	return nil
}

// unwrapSecret returns the only value of a single-key JSON object, or raw unchanged
func unwrapSecret(raw string) string {
	var secretJSON map[string]string
	if err := json.Unmarshal([]byte(raw), &secretJSON); err != nil || len(secretJSON) != 1 {
		return raw
	}
	for _, value := range secretJSON {
		return value
	}
	return raw
}
