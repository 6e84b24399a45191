package main

import (
	"context"
	"log"

	"alphadash/api"
	"alphadash/internal/config"
	"alphadash/internal/logger"
	"alphadash/internal/service"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
)

type lambdaHandler struct {
	adapter *ginadapter.GinLambda
}

func (m lambdaHandler) Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return m.adapter.ProxyWithContext(ctx, req)
}

func main() {
	l := logger.New()
	ctx := logger.AddToContext(context.Background(), l)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	ds, err := service.NewDatasetLoader(cfg.DataDir).Load(ctx)
	if err != nil {
		log.Fatal(err)
	}

	apiHandler := api.ApiHandler{
		Dataset:   ds,
		LambdaMax: cfg.LambdaMax,
	}
	handler := lambdaHandler{
		adapter: ginadapter.New(apiHandler.InitializeRouterEngine()),
	}
	lambda.Start(handler.Handler)
}
