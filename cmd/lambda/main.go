package main

import (
	"context"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/rs/zerolog/log"
	"news-video-lambda/config"
	"news-video-lambda/infrastructure/bootstrap"
)

var ginLambda *ginadapter.GinLambda

func handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return ginLambda.ProxyWithContext(ctx, req)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	app, err := bootstrap.New(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to wire application")
	}

	// lambda.Start never returns; the worker pool lives as long as the process.
	ginLambda = ginadapter.New(app.Router)
	lambda.Start(handler)
}
