package services

import (
	"context"
	"fmt"
	"news-video-lambda/application/ports/inbound"
	"news-video-lambda/application/ports/outbound"
	"news-video-lambda/domain"
)

type newsRecordSaver struct {
	logger    outbound.LoggerPort
	newsStore outbound.NewsStorePort
}

func NewNewsRecordSaver(logger outbound.LoggerPort, newsStore outbound.NewsStorePort) inbound.NewsRecordSaverPort {
	return &newsRecordSaver{
		logger:    logger,
		newsStore: newsStore,
	}
}

// Save returns the record as sent, completed with the store-assigned id. The
// store is not read back.
func (s *newsRecordSaver) Save(ctx context.Context, record domain.NewsRecord) (*domain.NewsRecord, error) {
	id, err := s.newsStore.Add(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("failed to add news to store: %w", err)
	}
	record.ID = id

	s.logger.InfoWithFields("News record stored", map[string]interface{}{
		"id":        id,
		"video_url": record.VideoURL,
	})

	return &record, nil
}
