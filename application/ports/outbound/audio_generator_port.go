package outbound

import (
	"context"
	"io"
)

type GenerateAudioRequest struct {
	Text    string
	VoiceID string
}

// AudioGeneratorPort streams synthesized speech. Callers must close the reader.
type AudioGeneratorPort interface {
	Generate(ctx context.Context, req GenerateAudioRequest) (io.ReadCloser, error)
}
