package inbound

import (
	"context"
	"news-video-lambda/domain"
)

type CommissionVideoParams struct {
	NewsID   string
	Template domain.Template
	Title    string
	AudioURL string
	ImageURL string
}

type VideoCommissionerPort interface {
	Commission(ctx context.Context, params CommissionVideoParams) (string, error)
}
