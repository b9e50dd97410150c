package services

import (
	"context"
	"fmt"
	"news-video-lambda/application/ports/inbound"
	"news-video-lambda/application/ports/outbound"
	"news-video-lambda/domain"
)

type videoCommissioner struct {
	logger         outbound.LoggerPort
	videoGenerator outbound.VideoGeneratorPort
}

func NewVideoCommissioner(logger outbound.LoggerPort, videoGenerator outbound.VideoGeneratorPort) inbound.VideoCommissionerPort {
	return &videoCommissioner{
		logger:         logger,
		videoGenerator: videoGenerator,
	}
}

func (v *videoCommissioner) Commission(ctx context.Context, params inbound.CommissionVideoParams) (string, error) {
	logger := v.logger.With(map[string]interface{}{
		"news_id":     params.NewsID,
		"template_id": params.Template.TemplateID,
	})

	jobID, err := v.videoGenerator.Create(ctx, outbound.CreateVideoRequest{
		Template: params.Template,
		Title:    domain.SanitizeTitle(params.Title),
		AudioURL: params.AudioURL,
		ImageURL: params.ImageURL,
	})
	if err != nil {
		logger.Error(err, "Failed to commission video")
		return "", fmt.Errorf("failed to commission video: %w", err)
	}

	logger.InfoWithFields("Video creation initiated with template", map[string]interface{}{
		"video_id": jobID,
	})

	return jobID, nil
}
