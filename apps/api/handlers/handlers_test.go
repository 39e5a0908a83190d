package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sails-app/sails-api/libs/go/constants"
	"github.com/sails-app/sails-api/libs/go/logger"
	"github.com/sails-app/sails-api/libs/go/middleware"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.InitLogger("test")
	gin.SetMode(gin.TestMode)
}

const testCorrelationID = "corr-test-1"

// newTestRouter returns a router with correlation ids and, when userID is not
// nil, an authenticated caller.
func newTestRouter(userID uuid.UUID) *gin.Engine {
	router := gin.New()
	router.Use(middleware.CorrelationID())
	if userID != uuid.Nil {
		router.Use(func(c *gin.Context) {
			c.Set(constants.UserIDContextKey, userID)
			c.Next()
		})
	}
	return router
}

func perform(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			_ = json.NewEncoder(&buf).Encode(b)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(constants.CorrelationIDHeader, testCorrelationID)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
