package services

import (
	"context"
	"fmt"
	"github.com/google/uuid"
	"io"
	"news-video-lambda/application/ports/inbound"
	"news-video-lambda/application/ports/outbound"
	"news-video-lambda/domain"
	"os"
	"path/filepath"
)

type narrationSynthesizer struct {
	logger         outbound.LoggerPort
	audioGenerator outbound.AudioGeneratorPort
	audioStore     outbound.AudioStorePort
	tempDir        string
}

// NewNarrationSynthesizer buffers synthesized audio in tempDir before upload.
// An empty tempDir means os.TempDir().
func NewNarrationSynthesizer(logger outbound.LoggerPort, audioGenerator outbound.AudioGeneratorPort,
	audioStore outbound.AudioStorePort, tempDir string) inbound.NarrationSynthesizerPort {
	if tempDir == "" {
		tempDir = os.TempDir()
	}
	return &narrationSynthesizer{
		logger:         logger,
		audioGenerator: audioGenerator,
		audioStore:     audioStore,
		tempDir:        tempDir,
	}
}

func (s *narrationSynthesizer) Synthesize(ctx context.Context, params inbound.SynthesizeNarrationParams) (*domain.AudioArtifact, error) {
	logger := s.logger.With(map[string]interface{}{"news_id": params.NewsID})

	audio, err := s.audioGenerator.Generate(ctx, outbound.GenerateAudioRequest{
		Text:    params.Text,
		VoiceID: params.VoiceID,
	})
	if err != nil {
		logger.Error(err, "Failed to generate audio")
		return nil, fmt.Errorf("failed to synthesize audio: %w", err)
	}
	defer func(audio io.ReadCloser) {
		err := audio.Close()
		if err != nil {
			logger.Error(err, "Failed to close the audio stream")
		}
	}(audio)

	fileName, err := s.writeMediaToFile(audio)
	if fileName != "" {
		defer func(name string) {
			err := os.Remove(name)
			if err != nil && !os.IsNotExist(err) {
				logger.Error(err, "Failed to remove audio file")
			}
		}(fileName)
	}
	if err != nil {
		logger.Error(err, "Failed to write audio to file")
		return nil, fmt.Errorf("failed to synthesize audio: %w", err)
	}

	objectKey := domain.AudioObjectKey(params.Title)
	url, err := s.audioStore.Upload(ctx, outbound.UploadAudioRequest{
		FileName:  fileName,
		ObjectKey: objectKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload to S3: %w", err)
	}

	logger.InfoWithFields("Narration uploaded", map[string]interface{}{
		"object_key": objectKey,
		"url":        url,
	})

	return &domain.AudioArtifact{
		ObjectKey: objectKey,
		URL:       url,
	}, nil
}

// writeMediaToFile returns the file name even on a failed copy so the caller
// can clean it up.
func (s *narrationSynthesizer) writeMediaToFile(reader io.Reader) (string, error) {
	fileName := filepath.Join(s.tempDir, uuid.NewString()+".mp3")
	file, err := os.OpenFile(fileName, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return "", err
	}

	_, err = io.Copy(file, reader)
	closeErr := file.Close()
	if err != nil {
		return fileName, err
	}
	if closeErr != nil {
		return fileName, closeErr
	}

	return fileName, nil
}
