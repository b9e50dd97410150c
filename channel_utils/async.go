package channel_utils

import (
	"news-video-lambda/application/ports/outbound"
)

type Result[T any] struct {
	Value T
	Err   error
}

// RunAsync runs fn on the worker pool and delivers its outcome on the returned
// channel. The channel holds one value, so the task never blocks when the
// receiver has gone away.
func RunAsync[T any](workerPool outbound.TaskDispatcher, fn func() (T, error)) (<-chan Result[T], error) {
	result := make(chan Result[T], 1)

	err := workerPool.Submit(func() {
		defer close(result)
		value, err := fn()
		result <- Result[T]{Value: value, Err: err}
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
