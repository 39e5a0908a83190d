package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/sails-app/sails-api/libs/go/constants"
	"github.com/sails-app/sails-api/libs/go/logger"
)

var (
	// ErrInvalidToken is returned when the provided token is invalid
	ErrInvalidToken = errors.New("invalid token")
	// ErrNoKeySource is returned when neither a JWKS endpoint nor a secret is configured
	ErrNoKeySource = errors.New("no session key source configured")
)

const tokenLeeway = 30 * time.Second

var (
	hmacMethods       = []string{"HS256", "HS384", "HS512"}
	asymmetricMethods = []string{"RS256", "RS384", "RS512", "PS256", "PS384", "PS512", "ES256", "ES384", "ES512", "EdDSA"}
)

// SessionClaims are the claims carried by a Sails session token
type SessionClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId,omitempty"`
	Email  string `json:"email,omitempty"`
}

// AuthConfig selects how session tokens are verified. A JWKS URL takes
// precedence over the HMAC secret.
type AuthConfig struct {
	JWKSURL    string
	Issuer     string
	Audience   string
	HMACSecret []byte
}

type AuthClient struct {
	cfg    AuthConfig
	jwks   *keyfunc.JWKS
	parser *jwt.Parser
	keys   jwt.Keyfunc
}

func NewAuthClient(cfg AuthConfig) (*AuthClient, error) {
	client := &AuthClient{cfg: cfg}

	options := []jwt.ParserOption{
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(tokenLeeway),
	}
	if cfg.Issuer != "" {
		options = append(options, jwt.WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		options = append(options, jwt.WithAudience(cfg.Audience))
	}

	switch {
	case cfg.JWKSURL != "":
		if err := client.initializeJWKS(); err != nil {
			return nil, err
		}
		client.keys = client.jwks.Keyfunc
		options = append(options, jwt.WithValidMethods(asymmetricMethods))
	case len(cfg.HMACSecret) > 0:
		secret := cfg.HMACSecret
		client.keys = func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
			}
			return secret, nil
		}
		options = append(options, jwt.WithValidMethods(hmacMethods))
	default:
		return nil, ErrNoKeySource
	}

	client.parser = jwt.NewParser(options...)
	return client, nil
}

// Close stops the background JWKS refresh, if any.
func (ac *AuthClient) Close() {
	if ac.jwks != nil {
		ac.jwks.EndBackground()
	}
}

// ValidateToken verifies a session token and returns its claims together
// with the caller's user id, taken from userId or else sub.
func (ac *AuthClient) ValidateToken(tokenString string) (*SessionClaims, uuid.UUID, error) {
	tokenString = strings.TrimSpace(strings.TrimPrefix(tokenString, "Bearer "))
	if tokenString == "" {
		return nil, uuid.Nil, fmt.Errorf("%w: empty token", ErrInvalidToken)
	}

	claims := &SessionClaims{}
	token, err := ac.parser.ParseWithClaims(tokenString, claims, ac.keys)
	if err != nil {
		return nil, uuid.Nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, uuid.Nil, ErrInvalidToken
	}

	rawID := claims.UserID
	if rawID == "" {
		rawID = claims.Subject
	}
	userID, err := uuid.Parse(rawID)
	if err != nil {
		return nil, uuid.Nil, fmt.Errorf("%w: subject is not a user id", ErrInvalidToken)
	}

	return claims, userID, nil
}

// EnsureValidSession authenticates the bearer token and loads the user.
// On success the user id and email are stored on the gin context.
func (ac *AuthClient) EnsureValidSession(store UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		correlationID := c.GetHeader(constants.CorrelationIDHeader)

		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			logger.Log.Debug("No bearer token provided", zap.String("path", c.Request.URL.Path))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No authentication provided"})
			return
		}

		claims, userID, err := ac.ValidateToken(authHeader)
		if err != nil {
			logger.Log.Info("Session token validation failed",
				zap.Error(err),
				zap.String("path", c.Request.URL.Path),
				zap.String("correlation_id", correlationID),
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session"})
			return
		}

		user, err := store.GetUserByID(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				logger.Log.Info("Session refers to unknown user",
					zap.String("user_id", userID.String()),
					zap.String("correlation_id", correlationID),
				)
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session"})
				return
			}
			logger.Log.Error("Failed to load session user",
				zap.Error(err),
				zap.String("user_id", userID.String()),
				zap.String("correlation_id", correlationID),
			)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		email := user.Email
		if email == "" {
			email = claims.Email
		}

		c.Set(constants.UserIDContextKey, user.ID)
		c.Set(constants.EmailContextKey, email)
		c.Next()
	}
}

// GetUserID returns the authenticated user id set by EnsureValidSession.
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(constants.UserIDContextKey)
	if !exists {
		return uuid.Nil, false
	}
	userID, ok := value.(uuid.UUID)
	return userID, ok && userID != uuid.Nil
}

func (ac *AuthClient) initializeJWKS() error {
	jwks, err := keyfunc.Get(ac.cfg.JWKSURL, keyfunc.Options{
		RefreshInterval:  time.Hour,
		RefreshRateLimit: time.Minute,
		RefreshTimeout:   time.Second * 10,
		RefreshErrorHandler: func(err error) {
			logger.Log.Error("JWKS refresh error", zap.Error(err))
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create JWKS: %w", err)
	}

	ac.jwks = jwks

	logger.Log.Info("Session JWKS initialized successfully",
		zap.String("jwks_url", ac.cfg.JWKSURL),
		zap.String("issuer", ac.cfg.Issuer),
	)

	return nil
}
