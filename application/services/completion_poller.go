package services

import (
	"context"
	"errors"
	"fmt"
	"github.com/cenkalti/backoff/v4"
	"news-video-lambda/application/ports/inbound"
	"news-video-lambda/application/ports/outbound"
	"news-video-lambda/domain"
	"time"
)

var errStillProcessing = errors.New("video is still processing")

type PollerOptions struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxAttempts     int
	Timeout         time.Duration
}

type completionPoller struct {
	logger         outbound.LoggerPort
	videoGenerator outbound.VideoGeneratorPort
	options        PollerOptions
}

func NewCompletionPoller(logger outbound.LoggerPort, videoGenerator outbound.VideoGeneratorPort, options PollerOptions) inbound.CompletionPollerPort {
	return &completionPoller{
		logger:         logger,
		videoGenerator: videoGenerator,
		options:        options,
	}
}

// WaitForVideo polls with exponential backoff until the job is terminal, the
// attempts run out, the timeout elapses or ctx is cancelled. Status lookups
// that fail are not retried.
func (p *completionPoller) WaitForVideo(ctx context.Context, jobID string) (string, error) {
	logger := p.logger.With(map[string]interface{}{"video_id": jobID})

	pollCtx, cancel := context.WithTimeout(ctx, p.options.Timeout)
	defer cancel()

	attempts := 0
	operation := func() (string, error) {
		attempts++
		job, err := p.videoGenerator.Status(pollCtx, jobID)
		if err != nil {
			return "", backoff.Permanent(fmt.Errorf("failed to check video status: %w", err))
		}

		switch job.Status {
		case domain.VideoStatusCompleted:
			return job.VideoURL, nil
		case domain.VideoStatusFailed:
			return "", backoff.Permanent(&domain.JobFailedError{JobID: jobID, Detail: job.ErrorDetail})
		case domain.VideoStatusProcessing:
		default:
			logger.DebugWithFields("Video status treated as processing", map[string]interface{}{
				"status": job.Status,
			})
		}
		return "", errStillProcessing
	}

	notify := func(err error, next time.Duration) {
		logger.InfoWithFields("Video is still processing", map[string]interface{}{
			"attempt":    attempts,
			"next_check": next.String(),
		})
	}

	videoURL, err := backoff.RetryNotifyWithData(operation, p.newBackOff(pollCtx), notify)
	if err == nil {
		logger.InfoWithFields("Video completed", map[string]interface{}{
			"video_url": videoURL,
			"attempts":  attempts,
		})
		return videoURL, nil
	}

	var jobFailed *domain.JobFailedError
	switch {
	case errors.As(err, &jobFailed):
		logger.WarnWithFields("Video generation failed", map[string]interface{}{"detail": jobFailed.Detail})
		return "", err
	case errors.Is(err, errStillProcessing):
		logger.WarnWithFields("Gave up waiting for video", map[string]interface{}{"attempts": attempts})
		return "", fmt.Errorf("%w: still processing after %d attempts", domain.ErrPollTimeout, attempts)
	case ctx.Err() == nil && errors.Is(err, context.DeadlineExceeded):
		logger.WarnWithFields("Gave up waiting for video", map[string]interface{}{"timeout": p.options.Timeout.String()})
		return "", fmt.Errorf("%w: no terminal status within %s", domain.ErrPollTimeout, p.options.Timeout)
	}

	return "", err
}

func (p *completionPoller) newBackOff(ctx context.Context) backoff.BackOff {
	exponential := backoff.NewExponentialBackOff()
	exponential.InitialInterval = p.options.InitialInterval
	exponential.MaxInterval = p.options.MaxInterval
	exponential.Multiplier = 2
	exponential.RandomizationFactor = 0.2
	// The overall bound comes from the context deadline.
	exponential.MaxElapsedTime = 0
	exponential.Reset()

	// WithMaxRetries treats zero as unlimited.
	if p.options.MaxAttempts <= 1 {
		return backoff.WithContext(&backoff.StopBackOff{}, ctx)
	}

	return backoff.WithContext(backoff.WithMaxRetries(exponential, uint64(p.options.MaxAttempts-1)), ctx)
}
