package sched

import (
	"context"
	"errors"
	"testing"

	rkerrors "github.com/gozephyr/renderkit/errors"
	"github.com/stretchr/testify/require"
)

func TestChunksVisitsEveryIndex(t *testing.T) {
	var visited []int
	err := Chunks(context.Background(), 25, DefaultChunkSize, func(i int) error {
		visited = append(visited, i)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, visited, 25)
	for i, v := range visited {
		require.Equal(t, i, v)
	}
}

func TestChunksZeroItems(t *testing.T) {
	called := false
	err := Chunks(context.Background(), 0, 10, func(int) error {
		called = true
		return nil
	})
	require.NoError(t, err)
	require.False(t, called)
}

func TestChunksRejectsInvalidChunkSize(t *testing.T) {
	err := Chunks(context.Background(), 10, 0, func(int) error { return nil })
	require.Error(t, err)
	require.True(t, rkerrors.IsValidation(err))
}

func TestChunksStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	var visited int
	err := Chunks(context.Background(), 100, 10, func(i int) error {
		if i == 42 {
			return boom
		}
		visited++
		return nil
	})
	require.ErrorIs(t, err, boom)
	require.Equal(t, 42, visited)
}

func TestChunksHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var visited int
	err := Chunks(ctx, 100, 10, func(i int) error {
		visited++
		if i == 9 {
			// Cancel mid-run; the next chunk boundary must observe it
			cancel()
		}
		return nil
	})
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 10, visited)
}
