package inbound

import (
	"context"
	"news-video-lambda/domain"
)

type SynthesizeNarrationParams struct {
	NewsID  string
	Title   string
	Text    string
	VoiceID string
}

type NarrationSynthesizerPort interface {
	Synthesize(ctx context.Context, params SynthesizeNarrationParams) (*domain.AudioArtifact, error)
}
