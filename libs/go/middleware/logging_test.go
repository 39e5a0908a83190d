package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sails-app/sails-api/libs/go/constants"
	"github.com/sails-app/sails-api/libs/go/logger"
	"github.com/sails-app/sails-api/libs/go/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	previous := logger.Log
	logger.Log = zap.New(core)
	t.Cleanup(func() { logger.Log = previous })
	return logs
}

func TestRequestLogging(t *testing.T) {
	tests := []struct {
		name   string
		status int
		level  zapcore.Level
	}{
		{name: "success logs info", status: http.StatusOK, level: zapcore.InfoLevel},
		{name: "client error logs warn", status: http.StatusNotFound, level: zapcore.WarnLevel},
		{name: "server error logs error", status: http.StatusInternalServerError, level: zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := observeLogs(t)

			router := gin.New()
			router.Use(middleware.CorrelationID(), middleware.RequestLogging("/health"))
			router.GET("/api/v1/nexus/exposure", func(c *gin.Context) {
				c.Status(tt.status)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/nexus/exposure", nil)
			req.Header.Set(constants.CorrelationIDHeader, "corr-1")
			router.ServeHTTP(httptest.NewRecorder(), req)

			entries := logs.FilterMessage("Request completed").All()
			require.Len(t, entries, 1)
			assert.Equal(t, tt.level, entries[0].Level)

			fields := entries[0].ContextMap()
			assert.Equal(t, "corr-1", fields["correlation_id"])
			assert.Equal(t, "/api/v1/nexus/exposure", fields["route"])
			assert.Equal(t, int64(tt.status), fields["status"])
		})
	}
}

func TestRequestLoggingSkipsPaths(t *testing.T) {
	logs := observeLogs(t)

	router := gin.New()
	router.Use(middleware.RequestLogging("/health"))
	router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Zero(t, logs.FilterMessage("Request completed").Len())
}
