package inbound

import (
	"context"
	"news-video-lambda/domain"
)

type NewsVideoPipelinePort interface {
	CreateNews(ctx context.Context, request domain.NewsRequest) (*domain.NewsRecord, error)
}
