package controllers

import (
	"encoding/json"
	"errors"
	"github.com/gin-gonic/gin"
	"net/http"
	"news-video-lambda/application/ports/inbound"
	"news-video-lambda/application/ports/outbound"
	"news-video-lambda/channel_utils"
	"news-video-lambda/domain"
	"news-video-lambda/infrastructure/gin_interface/dto"
)

type NewsController interface {
	CreateNews(c *gin.Context)
	Health(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type newsController struct {
	logger     outbound.LoggerPort
	workerPool outbound.TaskDispatcher
	pipeline   inbound.NewsVideoPipelinePort
}

func NewNewsController(
	logger outbound.LoggerPort,
	workerPool outbound.TaskDispatcher,
	pipeline inbound.NewsVideoPipelinePort,
) NewsController {
	return &newsController{
		logger:     logger,
		workerPool: workerPool,
		pipeline:   pipeline,
	}
}

func (n *newsController) CreateNews(c *gin.Context) {
	request, validationErr := n.bindRequest(c)
	if validationErr != nil {
		n.logger.WarnWithFields("Rejected news request", map[string]interface{}{
			"field": validationErr.Field,
			"error": validationErr.Message,
		})
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponse{Error: validationErr.Message})
		return
	}

	ctx := c.Request.Context()
	results, err := channel_utils.RunAsync(n.workerPool, func() (*domain.NewsRecord, error) {
		return n.pipeline.CreateNews(ctx, request)
	})
	if err != nil {
		n.logger.Error(err, "Failed to submit news pipeline")
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}

	select {
	case res := <-results:
		if res.Err != nil {
			n.logFailure(res.Err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{Error: res.Err.Error()})
			return
		}
		c.JSON(http.StatusOK, dto.CreateNewsResponse{
			Message:    "News object created successfully",
			NewsObject: res.Value,
		})
	case <-ctx.Done():
		n.logger.Warn("Client went away before the news pipeline finished")
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{Error: ctx.Err().Error()})
	}
}

// bindRequest checks key presence before decoding, so an empty string still
// counts as present.
func (n *newsController) bindRequest(c *gin.Context) (domain.NewsRequest, *domain.ValidationError) {
	body, err := c.GetRawData()
	if err != nil {
		return domain.NewsRequest{}, &domain.ValidationError{Message: "Failed to read request body"}
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil || fields == nil {
		return domain.NewsRequest{}, &domain.ValidationError{Message: "Request body must be a JSON object"}
	}

	for _, key := range dto.RequiredNewsKeys {
		if _, ok := fields[key]; !ok {
			return domain.NewsRequest{}, domain.NewMissingKeyError(key)
		}
	}

	var createNewsRequest dto.CreateNewsRequest
	if err := json.Unmarshal(body, &createNewsRequest); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return domain.NewsRequest{}, &domain.ValidationError{
				Field:   typeErr.Field,
				Message: "Invalid value for key: " + typeErr.Field,
			}
		}
		return domain.NewsRequest{}, &domain.ValidationError{Message: err.Error()}
	}

	request, err := createNewsRequest.ToDomain()
	if err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			return domain.NewsRequest{}, validationErr
		}
		return domain.NewsRequest{}, &domain.ValidationError{Message: err.Error()}
	}

	return request, nil
}

func (n *newsController) logFailure(err error) {
	var jobFailed *domain.JobFailedError
	switch {
	case errors.As(err, &jobFailed):
		n.logger.ErrorWithFields(err, "Video generation failed", map[string]interface{}{"video_id": jobFailed.JobID})
	case errors.Is(err, domain.ErrPollTimeout):
		n.logger.Error(err, "Video generation timed out")
	default:
		n.logger.Error(err, "News pipeline failed")
	}
}

func (n *newsController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (n *newsController) RegisterRoutes(g *gin.Engine) {
	g.GET("/health", n.Health)
	g.POST("/news", n.CreateNews)
}
