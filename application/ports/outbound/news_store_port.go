package outbound

import (
	"context"
	"news-video-lambda/domain"
)

type NewsStorePort interface {
	// Add appends the record and returns the identifier the store assigned to it.
	Add(ctx context.Context, record domain.NewsRecord) (string, error)
}
