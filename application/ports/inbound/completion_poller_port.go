package inbound

import "context"

type CompletionPollerPort interface {
	// WaitForVideo blocks until the job reaches a terminal state and returns
	// the URL of the produced video.
	WaitForVideo(ctx context.Context, jobID string) (string, error)
}
