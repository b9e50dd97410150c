package channel_utils

import (
	"errors"
	"github.com/panjf2000/ants/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func TestRunAsync_DeliversValue(t *testing.T) {
	pool, err := ants.NewPool(2)
	require.NoError(t, err)
	defer pool.Release()

	results, err := RunAsync(pool, func() (string, error) {
		return "done", nil
	})
	require.NoError(t, err)

	select {
	case res := <-results:
		require.NoError(t, res.Err)
		assert.Equal(t, "done", res.Value)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for result")
	}
}

func TestRunAsync_DeliversError(t *testing.T) {
	pool, err := ants.NewPool(1)
	require.NoError(t, err)
	defer pool.Release()

	results, err := RunAsync(pool, func() (int, error) {
		return 0, errors.New("boom")
	})
	require.NoError(t, err)

	res := <-results
	assert.EqualError(t, res.Err, "boom")
}

func TestRunAsync_AbandonedReceiverDoesNotBlockWorker(t *testing.T) {
	pool, err := ants.NewPool(1)
	require.NoError(t, err)
	defer pool.Release()

	_, err = RunAsync(pool, func() (int, error) { return 1, nil })
	require.NoError(t, err)

	results, err := RunAsync(pool, func() (int, error) { return 2, nil })
	require.NoError(t, err)

	select {
	case res := <-results:
		assert.Equal(t, 2, res.Value)
	case <-time.After(time.Second):
		t.Fatal("worker stayed blocked on the first task")
	}
}

func TestRunAsync_SubmitError(t *testing.T) {
	pool, err := ants.NewPool(1)
	require.NoError(t, err)
	pool.Release()

	_, err = RunAsync(pool, func() (int, error) { return 0, nil })

	assert.ErrorIs(t, err, ants.ErrPoolClosed)
}
