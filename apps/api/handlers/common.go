package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/sails-app/sails-api/libs/go/client/auth"
	"github.com/sails-app/sails-api/libs/go/middleware"
	"github.com/sails-app/sails-api/libs/go/types/api/responses"
)

// Use types from the centralized packages
type (
	ErrorResponse = responses.ErrorResponse
	ListResponse  = responses.ListResponse
)

// sendError logs err with the request's correlation id and answers with
// message. Internal error details never reach the client.
func sendError(c *gin.Context, statusCode int, message string, err error) {
	correlationID := middleware.GetCorrelationID(c)

	log := middleware.LoggerFromContext(c.Request.Context()).With(
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.Int("status", statusCode),
	)
	if statusCode >= http.StatusInternalServerError {
		log.Error(message, zap.Error(err))
	} else {
		log.Info(message, zap.Error(err))
	}

	c.JSON(statusCode, ErrorResponse{
		Error:         message,
		CorrelationID: correlationID,
	})
}

// handleDBError maps pgx.ErrNoRows to 404 and everything else to 500
func handleDBError(c *gin.Context, err error, notFoundMsg string) {
	if err == nil {
		return
	}

	switch {
	case errors.Is(err, pgx.ErrNoRows):
		sendError(c, http.StatusNotFound, notFoundMsg, err)
	default:
		sendError(c, http.StatusInternalServerError, "Internal server error", err)
	}
}

func sendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

func sendList(c *gin.Context, items interface{}) {
	c.JSON(http.StatusOK, ListResponse{
		Object: "list",
		Data:   items,
	})
}

// requireUserID returns the authenticated caller or answers 401
func requireUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		sendError(c, http.StatusUnauthorized, "Authentication required", nil)
		return uuid.Nil, false
	}
	return userID, true
}
