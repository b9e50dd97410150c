package services

import (
	"context"
	"fmt"
	"github.com/google/uuid"
	"news-video-lambda/application/ports/inbound"
	"news-video-lambda/application/ports/outbound"
	"news-video-lambda/domain"
)

type PipelineOptions struct {
	// NarrateScript narrates a generated script instead of the summary text.
	NarrateScript bool
}

type newsVideoPipeline struct {
	logger               outbound.LoggerPort
	textGenerator        outbound.TextGeneratorPort
	narrationSynthesizer inbound.NarrationSynthesizerPort
	videoCommissioner    inbound.VideoCommissionerPort
	completionPoller     inbound.CompletionPollerPort
	recordSaver          inbound.NewsRecordSaverPort
	templatePicker       domain.TemplatePicker
	options              PipelineOptions
}

func NewNewsVideoPipeline(
	logger outbound.LoggerPort,
	textGenerator outbound.TextGeneratorPort,
	narrationSynthesizer inbound.NarrationSynthesizerPort,
	videoCommissioner inbound.VideoCommissionerPort,
	completionPoller inbound.CompletionPollerPort,
	recordSaver inbound.NewsRecordSaverPort,
	templatePicker domain.TemplatePicker,
	options PipelineOptions) inbound.NewsVideoPipelinePort {
	return &newsVideoPipeline{
		logger:               logger,
		textGenerator:        textGenerator,
		narrationSynthesizer: narrationSynthesizer,
		videoCommissioner:    videoCommissioner,
		completionPoller:     completionPoller,
		recordSaver:          recordSaver,
		templatePicker:       templatePicker,
		options:              options,
	}
}

// CreateNews runs every stage in order and stops at the first error. Nothing
// is persisted unless the video completed; uploads and video jobs of an
// aborted run are left in place.
func (s *newsVideoPipeline) CreateNews(ctx context.Context, request domain.NewsRequest) (*domain.NewsRecord, error) {
	newsID := uuid.NewString()
	logger := s.logger.With(map[string]interface{}{"news_id": newsID})

	template := s.templatePicker.Pick()
	logger.InfoWithFields("Starting news video pipeline", map[string]interface{}{
		"template_id": template.TemplateID,
		"voice_id":    template.VoiceID,
	})

	title, err := s.textGenerator.GenerateTitle(ctx, request.SummaryText)
	if err != nil {
		logger.Error(err, "error generating title")
		return nil, fmt.Errorf("failed to generate title: %w", err)
	}
	if title == "" {
		logger.Warn("Generated title is empty, using the requested title")
		title = request.Title
	}

	narration := request.SummaryText
	if s.options.NarrateScript {
		narration, err = s.textGenerator.GenerateScript(ctx, request.SummaryText)
		if err != nil {
			logger.Error(err, "error generating script")
			return nil, fmt.Errorf("failed to generate script: %w", err)
		}
	}

	audio, err := s.narrationSynthesizer.Synthesize(ctx, inbound.SynthesizeNarrationParams{
		NewsID:  newsID,
		Title:   title,
		Text:    narration,
		VoiceID: template.VoiceID,
	})
	if err != nil {
		return nil, err
	}

	jobID, err := s.videoCommissioner.Commission(ctx, inbound.CommissionVideoParams{
		NewsID:   newsID,
		Template: template,
		Title:    title,
		AudioURL: audio.URL,
		ImageURL: request.ImageURL,
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Waiting for video to be processed")
	videoURL, err := s.completionPoller.WaitForVideo(ctx, jobID)
	if err != nil {
		return nil, err
	}

	record, err := s.recordSaver.Save(ctx, domain.NewNewsRecord(request, title, videoURL))
	if err != nil {
		logger.Error(err, "error saving news record")
		return nil, err
	}

	logger.InfoWithFields("News video pipeline complete", map[string]interface{}{
		"id":        record.ID,
		"video_url": record.VideoURL,
	})

	return record, nil
}
