package auth_test

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"errors"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/sails-app/sails-api/libs/go/client/auth"
	"github.com/sails-app/sails-api/libs/go/constants"
	"github.com/sails-app/sails-api/libs/go/db"
	"github.com/sails-app/sails-api/libs/go/logger"
	"github.com/sails-app/sails-api/libs/go/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	logger.InitLogger("test")
	gin.SetMode(gin.TestMode)
}

var testSecret = []byte("sails-test-secret")

const (
	testIssuer   = "https://auth.sails.test"
	testAudience = "sails-api"
)

func hmacClient(t *testing.T) *auth.AuthClient {
	t.Helper()
	client, err := auth.NewAuthClient(auth.AuthConfig{
		Issuer:     testIssuer,
		Audience:   testAudience,
		HMACSecret: testSecret,
	})
	require.NoError(t, err)
	return client
}

func sessionClaims(userID string, expiresIn time.Duration) auth.SessionClaims {
	now := time.Now()
	return auth.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    testIssuer,
			Audience:  jwt.ClaimStrings{testAudience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiresIn)),
		},
		Email: "seller@example.com",
	}
}

func signHMAC(t *testing.T, claims jwt.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	require.NoError(t, err)
	return token
}

func TestNewAuthClientRequiresKeySource(t *testing.T) {
	_, err := auth.NewAuthClient(auth.AuthConfig{Issuer: testIssuer})
	assert.ErrorIs(t, err, auth.ErrNoKeySource)
}

func TestValidateTokenHMAC(t *testing.T) {
	client := hmacClient(t)
	userID := uuid.New()

	withUserIDClaim := sessionClaims("", time.Hour)
	withUserIDClaim.UserID = userID.String()

	wrongIssuer := sessionClaims(userID.String(), time.Hour)
	wrongIssuer.Issuer = "https://elsewhere.test"

	wrongAudience := sessionClaims(userID.String(), time.Hour)
	wrongAudience.Audience = jwt.ClaimStrings{"other"}

	noExpiry := sessionClaims(userID.String(), time.Hour)
	noExpiry.ExpiresAt = nil

	otherSecret, err := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims(userID.String(), time.Hour)).
		SignedString([]byte("not-the-secret"))
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, sessionClaims(userID.String(), time.Hour)).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantID  uuid.UUID
		wantErr bool
	}{
		{name: "valid subject", token: signHMAC(t, sessionClaims(userID.String(), time.Hour)), wantID: userID},
		{name: "bearer prefix accepted", token: "Bearer " + signHMAC(t, sessionClaims(userID.String(), time.Hour)), wantID: userID},
		{name: "userId claim preferred", token: signHMAC(t, withUserIDClaim), wantID: userID},
		{name: "expired", token: signHMAC(t, sessionClaims(userID.String(), -time.Hour)), wantErr: true},
		{name: "missing expiry", token: signHMAC(t, noExpiry), wantErr: true},
		{name: "wrong issuer", token: signHMAC(t, wrongIssuer), wantErr: true},
		{name: "wrong audience", token: signHMAC(t, wrongAudience), wantErr: true},
		{name: "subject not a uuid", token: signHMAC(t, sessionClaims("user-42", time.Hour)), wantErr: true},
		{name: "wrong secret", token: otherSecret, wantErr: true},
		{name: "alg none", token: unsigned, wantErr: true},
		{name: "garbage", token: "not.a.jwt", wantErr: true},
		{name: "empty", token: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, gotID, err := client.ValidateToken(tt.token)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, auth.ErrInvalidToken)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, gotID)
			assert.Equal(t, "seller@example.com", claims.Email)
		})
	}
}

func TestValidateTokenJWKS(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"keys": []map[string]string{{
				"kty": "RSA",
				"kid": "sails-test",
				"alg": "RS256",
				"use": "sig",
				"n":   base64.RawURLEncoding.EncodeToString(key.N.Bytes()),
				"e":   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(key.E)).Bytes()),
			}},
		})
	}))
	defer server.Close()

	client, err := auth.NewAuthClient(auth.AuthConfig{
		JWKSURL:    server.URL,
		Issuer:     testIssuer,
		Audience:   testAudience,
		HMACSecret: testSecret,
	})
	require.NoError(t, err)
	defer client.Close()

	userID := uuid.New()
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, sessionClaims(userID.String(), time.Hour))
	token.Header["kid"] = "sails-test"
	signed, err := token.SignedString(key)
	require.NoError(t, err)

	_, gotID, err := client.ValidateToken(signed)
	require.NoError(t, err)
	assert.Equal(t, userID, gotID)

	// an HMAC token is rejected once JWKS is configured
	_, _, err = client.ValidateToken(signHMAC(t, sessionClaims(userID.String(), time.Hour)))
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestEnsureValidSession(t *testing.T) {
	userID := uuid.New()
	validToken := signHMAC(t, sessionClaims(userID.String(), time.Hour))

	tests := []struct {
		name       string
		header     string
		setupMock  func(q *mocks.MockQuerier)
		wantStatus int
	}{
		{
			name:   "authenticated user",
			header: "Bearer " + validToken,
			setupMock: func(q *mocks.MockQuerier) {
				q.EXPECT().GetUserByID(gomock.Any(), userID).
					Return(db.User{ID: userID, Email: "seller@example.com"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing header",
			header:     "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "non bearer scheme",
			header:     "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid token",
			header:     "Bearer nope",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "unknown user",
			header: "Bearer " + validToken,
			setupMock: func(q *mocks.MockQuerier) {
				q.EXPECT().GetUserByID(gomock.Any(), userID).Return(db.User{}, pgx.ErrNoRows)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "user lookup failure",
			header: "Bearer " + validToken,
			setupMock: func(q *mocks.MockQuerier) {
				q.EXPECT().GetUserByID(gomock.Any(), userID).Return(db.User{}, errors.New("connection reset"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			querier := mocks.NewMockQuerier(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(querier)
			}

			router := gin.New()
			router.Use(hmacClient(t).EnsureValidSession(querier))
			router.GET("/me", func(c *gin.Context) {
				id, ok := auth.GetUserID(c)
				require.True(t, ok)
				c.JSON(http.StatusOK, gin.H{"user_id": id.String(), "email": c.GetString(constants.EmailContextKey)})
			})

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.JSONEq(t, `{"user_id":"`+userID.String()+`","email":"seller@example.com"}`, w.Body.String())
			} else {
				assert.Contains(t, w.Body.String(), `"error"`)
				assert.NotContains(t, w.Body.String(), "connection reset")
			}
		})
	}
}

func TestGetUserIDWithoutSession(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, ok := auth.GetUserID(c)
	assert.False(t, ok)
}
