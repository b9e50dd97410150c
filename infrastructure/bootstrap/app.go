package bootstrap

import (
	"fmt"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/panjf2000/ants/v2"
	"net/http"
	"news-video-lambda/application/ports/outbound"
	"news-video-lambda/application/services"
	"news-video-lambda/config"
	"news-video-lambda/domain"
	"news-video-lambda/infrastructure/adapters"
	"news-video-lambda/infrastructure/gin_interface/controllers"
	"news-video-lambda/middleware"
	"time"
)

// App is the fully wired HTTP surface shared by the server and the Lambda
// entry points.
type App struct {
	Router     *gin.Engine
	Logger     outbound.LoggerPort
	workerPool *ants.Pool
}

func (a *App) Close() {
	a.workerPool.Release()
}

func New(cfg *config.Config) (*App, error) {
	zeroLogger := adapters.NewZerologWrapper(cfg.Server.LogLevel)

	sess, err := session.NewSessionWithOptions(session.Options{
		Config:            aws.Config{Region: aws.String(cfg.S3.Region)},
		SharedConfigState: session.SharedConfigEnable,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create aws session: %w", err)
	}

	panicHandler := func(p interface{}) {
		zeroLogger.Error(fmt.Errorf("%v", p), "Panic in worker pool")
	}

	workerPool, err := ants.NewPool(cfg.Pipeline.PoolSize, ants.WithPanicHandler(panicHandler))
	if err != nil {
		return nil, fmt.Errorf("failed to create worker pool: %w", err)
	}

	s3Client := s3.New(sess)
	dynamoClient := dynamodb.New(sess)

	httpClient := &http.Client{Timeout: 5 * time.Minute}
	contentFetcher := adapters.NewContentFetcher(zeroLogger, httpClient)

	textGenerator := adapters.NewTextGenerator(cfg.Perplexity, httpClient, zeroLogger)
	audioGenerator := adapters.NewAudioGenerator(contentFetcher, cfg.ElevenLabs, zeroLogger)
	videoGenerator := adapters.NewHeyGenVideoGenerator(contentFetcher, cfg.HeyGen, zeroLogger)
	audioStore := adapters.NewS3AudioStore(zeroLogger, s3Client, cfg.S3)
	newsStore := adapters.NewDynamoNewsStore(zeroLogger, dynamoClient, cfg.Dynamo)

	narrationSynthesizer := services.NewNarrationSynthesizer(zeroLogger, audioGenerator, audioStore, "")
	videoCommissioner := services.NewVideoCommissioner(zeroLogger, videoGenerator)
	completionPoller := services.NewCompletionPoller(zeroLogger, videoGenerator, services.PollerOptions{
		InitialInterval: cfg.Poller.InitialInterval,
		MaxInterval:     cfg.Poller.MaxInterval,
		MaxAttempts:     cfg.Poller.MaxAttempts,
		Timeout:         cfg.Poller.Timeout,
	})
	recordSaver := services.NewNewsRecordSaver(zeroLogger, newsStore)

	pipeline := services.NewNewsVideoPipeline(
		zeroLogger,
		textGenerator,
		narrationSynthesizer,
		videoCommissioner,
		completionPoller,
		recordSaver,
		domain.NewRandomTemplatePicker(nil),
		services.PipelineOptions{NarrateScript: cfg.Pipeline.NarrationMode == config.NarrationModeScript},
	)

	newsController := controllers.NewNewsController(zeroLogger, workerPool, pipeline)

	router := gin.New()
	router.Use(gin.Recovery())

	err = router.SetTrustedProxies(nil)
	if err != nil {
		workerPool.Release()
		return nil, fmt.Errorf("failed to set trusted proxies: %w", err)
	}

	if cfg.Server.JwksUrl != "" {
		authHandler, err := middleware.NewAuthHandler(cfg.Server.JwksUrl, zeroLogger)
		if err != nil {
			workerPool.Release()
			return nil, fmt.Errorf("failed to create auth handler: %w", err)
		}
		router.Use(authHandler.AuthMiddleware())
	} else {
		zeroLogger.Warn("JWKS_URL is not set, requests are not authenticated")
	}

	newsController.RegisterRoutes(router)

	return &App{
		Router:     router,
		Logger:     zeroLogger,
		workerPool: workerPool,
	}, nil
}
