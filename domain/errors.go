package domain

import (
	"errors"
	"fmt"
)

var (
	ErrVideoNotCreated = errors.New("failed to create video: no video ID returned")
	ErrPollTimeout     = errors.New("timed out waiting for video generation")
)

// ValidationError is returned for malformed client input. The pipeline is
// never entered when one occurs.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewMissingKeyError(key string) *ValidationError {
	return &ValidationError{
		Field:   key,
		Message: fmt.Sprintf("Missing required key: %s", key),
	}
}

// JobFailedError carries the failure detail reported by the video service.
type JobFailedError struct {
	JobID  string
	Detail string
}

func (e *JobFailedError) Error() string {
	return fmt.Sprintf("Video generation failed. %s", e.Detail)
}
