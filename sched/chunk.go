package sched

import (
	"context"
	"runtime"

	"github.com/gozephyr/renderkit/errors"
)

// DefaultChunkSize is the number of items processed between yields
const DefaultChunkSize = 10

// Chunks calls fn(i) for i in [0, n), processing chunkSize items at a
// time and yielding the processor between chunks so a large bulk loop
// never starves the caller's loop. The context is checked at every chunk
// boundary; a non-nil error from fn stops the iteration.
func Chunks(ctx context.Context, n, chunkSize int, fn func(i int) error) error {
	if chunkSize <= 0 {
		return errors.Wrap("Chunks", nil, errors.ErrInvalidChunkSize)
	}

	for start := 0; start < n; start += chunkSize {
		if err := ctx.Err(); err != nil {
			return err
		}

		end := start + chunkSize
		if end > n {
			end = n
		}
		for i := start; i < end; i++ {
			if err := fn(i); err != nil {
				return err
			}
		}

		if end < n {
			runtime.Gosched()
		}
	}

	return nil
}
