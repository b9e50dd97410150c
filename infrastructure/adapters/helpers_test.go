package adapters

import (
	"io"
	"news-video-lambda/application/ports/outbound"
)

func newTestLogger() outbound.LoggerPort {
	return NewZerologWrapperWithWriter(io.Discard, "debug")
}
