package inbound

import (
	"context"
	"news-video-lambda/domain"
)

type NewsRecordSaverPort interface {
	Save(ctx context.Context, record domain.NewsRecord) (*domain.NewsRecord, error)
}
