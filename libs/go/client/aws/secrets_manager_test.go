package aws_test

import (
	"context"
	"errors"
	"testing"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/sails-app/sails-api/libs/go/client/aws"
	"github.com/sails-app/sails-api/libs/go/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.InitLogger("test")
}

type fakeSecrets struct {
	values map[string]string
	err    error
	calls  int
}

func (f *fakeSecrets) GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	value, ok := f.values[awssdk.ToString(params.SecretId)]
	if !ok {
		return nil, errors.New("ResourceNotFoundException")
	}
	return &secretsmanager.GetSecretValueOutput{SecretString: awssdk.String(value)}, nil
}

func TestGetSecretString(t *testing.T) {
	const arn = "arn:aws:secretsmanager:us-east-1:123456789012:secret:db"

	tests := []struct {
		name      string
		arnEnv    string
		fallback  string
		secrets   *fakeSecrets
		want      string
		wantErr   bool
		wantCalls int
	}{
		{
			name:      "plain text secret",
			arnEnv:    arn,
			secrets:   &fakeSecrets{values: map[string]string{arn: "postgres://prod"}},
			want:      "postgres://prod",
			wantCalls: 1,
		},
		{
			name:      "single key json is unwrapped",
			arnEnv:    arn,
			secrets:   &fakeSecrets{values: map[string]string{arn: `{"DATABASE_URL":"postgres://json"}`}},
			want:      "postgres://json",
			wantCalls: 1,
		},
		{
			name:      "multi key json is returned raw",
			arnEnv:    arn,
			secrets:   &fakeSecrets{values: map[string]string{arn: `{"a":"1","b":"2"}`}},
			want:      `{"a":"1","b":"2"}`,
			wantCalls: 1,
		},
		{
			name:      "fetch failure falls back to env",
			arnEnv:    arn,
			fallback:  "postgres://fallback",
			secrets:   &fakeSecrets{err: errors.New("AccessDenied")},
			want:      "postgres://fallback",
			wantCalls: 1,
		},
		{
			name:     "no arn uses env",
			fallback: "postgres://local",
			secrets:  &fakeSecrets{},
			want:     "postgres://local",
		},
		{
			name:    "nothing configured",
			secrets: &fakeSecrets{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_SECRET_ARN", tt.arnEnv)
			t.Setenv("TEST_SECRET", tt.fallback)

			client := aws.NewSecretsManagerClientWithAPI(tt.secrets)
			got, err := client.GetSecretString(context.Background(), "TEST_SECRET_ARN", "TEST_SECRET")

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "TEST_SECRET_ARN")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantCalls, tt.secrets.calls)
		})
	}
}

func TestGetSecretJSON(t *testing.T) {
	const arn = "arn:aws:secretsmanager:us-east-1:123456789012:secret:rds"
	t.Setenv("RDS_SECRET_ARN", arn)

	var creds struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	client := aws.NewSecretsManagerClientWithAPI(&fakeSecrets{values: map[string]string{
		arn: `{"username":"sails_app","password":"s3cret"}`,
	}})
	require.NoError(t, client.GetSecretJSON(context.Background(), "RDS_SECRET_ARN", "", &creds))
	assert.Equal(t, "sails_app", creds.Username)
	assert.Equal(t, "s3cret", creds.Password)

	broken := aws.NewSecretsManagerClientWithAPI(&fakeSecrets{values: map[string]string{arn: "not json"}})
	err := broken.GetSecretJSON(context.Background(), "RDS_SECRET_ARN", "", &creds)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmarshal")

	missing := aws.NewSecretsManagerClientWithAPI(&fakeSecrets{err: errors.New("AccessDenied")})
	assert.Error(t, missing.GetSecretJSON(context.Background(), "RDS_SECRET_ARN", "", &creds))
}
