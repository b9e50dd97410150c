package outbound

import (
	"context"
	"news-video-lambda/domain"
)

type CreateVideoRequest struct {
	Template domain.Template
	Title    string
	AudioURL string
	ImageURL string
}

type VideoGeneratorPort interface {
	Create(ctx context.Context, req CreateVideoRequest) (string, error)
	Status(ctx context.Context, jobID string) (*domain.VideoJob, error)
}
