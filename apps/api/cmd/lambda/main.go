//go:build lambda
// +build lambda

package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/davecgh/go-spew/spew"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sails-app/sails-api/apps/api/server"
	"github.com/sails-app/sails-api/libs/go/logger"
)

var ginLambda *ginadapter.GinLambda

func init() {
	server.InitializeHandlers()

	r := gin.New()
	r.Use(gin.Recovery())
	server.InitializeRoutes(r)

	ginLambda = ginadapter.New(r)
}

func Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if ce := logger.Log.Check(zap.DebugLevel, "Received Lambda request"); ce != nil {
		// headers carry the session token
		dump := req
		dump.Headers = nil
		dump.MultiValueHeaders = nil
		ce.Write(
			zap.String("path", req.Path),
			zap.String("request", spew.Sdump(dump)),
		)
	}

	return ginLambda.ProxyWithContext(ctx, req)
}

func main() {
	defer func() { _ = logger.Sync() }()
	lambda.Start(Handler)
}
