//go:build lambda

package main

import (
	"context"

	"nbtech_pricing/internal/adapter/http/routes"
	"nbtech_pricing/internal/infrastructure/config"
	"nbtech_pricing/pkg/logger"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"go.uber.org/zap"
)

var ginLambda *ginadapter.GinLambda

func init() {
	cfg, err := config.Load()
	if err != nil {
		panic("invalid configuration: " + err.Error())
	}
	logger.InitLoggerWithConfig(cfg.AppEnv, cfg.LogLevel)

	r, err := routes.NewRouter(context.Background(), cfg)
	if err != nil {
		logger.Fatal("failed to build router", zap.Error(err))
	}
	ginLambda = ginadapter.New(r)
}

func Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	logger.Debug("lambda request received",
		zap.String("method", req.HTTPMethod),
		zap.String("path", req.Path),
	)
	return ginLambda.ProxyWithContext(ctx, req)
}

func main() {
	defer func() { _ = logger.Sync() }()
	lambda.Start(Handler)
}
