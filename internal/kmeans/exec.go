package kmeans

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/lloyd/resource"
)

// ChunkSize is the number of points evaluated by one task.
// Chunk boundaries depend only on the dataset size, never on the worker count.
const ChunkSize = 256

// Exec controls how a step is executed.
type Exec struct {
	// Workers is the maximum number of concurrent chunk tasks.
	// Values <= 1 run every chunk on the calling goroutine.
	Workers int

	// Resources optionally bounds workers and scratch memory across runs.
	Resources *resource.Controller
}

func numChunks(n int) int {
	return (n + ChunkSize - 1) / ChunkSize
}

func chunkBounds(c, n int) (int, int) {
	lo := c * ChunkSize
	return lo, min(lo+ChunkSize, n)
}

// workerLimit returns the number of chunk tasks that may run at once.
// A shared controller never grants more slots than its MaxWorkers.
func workerLimit(ex Exec, chunks int) int {
	limit := min(ex.Workers, chunks)
	if m := ex.Resources.MaxWorkers(); m > 0 && int64(limit) > m {
		limit = int(m)
	}
	return max(limit, 1)
}

// forEachChunk calls fn once per chunk of [0, n). Tasks must only write to
// state owned by their chunk.
func forEachChunk(ctx context.Context, n int, ex Exec, fn func(c, lo, hi int) error) error {
	chunks := numChunks(n)
	limit := workerLimit(ex, chunks)

	if limit <= 1 {
		for c := range chunks {
			lo, hi := chunkBounds(c, n)
			if err := fn(c, lo, hi); err != nil {
				return err
			}
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for c := range chunks {
		g.Go(func() error {
			if err := ex.Resources.AcquireWorker(gctx); err != nil {
				return err
			}
			defer ex.Resources.ReleaseWorker()

			lo, hi := chunkBounds(c, n)
			return fn(c, lo, hi)
		})
	}

	return g.Wait()
}
