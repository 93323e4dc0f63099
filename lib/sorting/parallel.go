package sorting

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/samber/lo"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/benz9527/xalgo/lib/heap"
	"github.com/benz9527/xalgo/lib/infra"
	"github.com/benz9527/xalgo/xlog"
)

const (
	defaultParallelChunkSize = 4096
)

type parallelSortConfig struct {
	poolSize  int
	chunkSize int
	logger    xlog.XLogger
}

type ParallelSortOption func(*parallelSortConfig) error

func WithParallelSortPoolSize(size int) ParallelSortOption {
	return func(cfg *parallelSortConfig) error {
		if size <= 0 {
			return infra.NewErrorStack(fmt.Sprintf("[sorting] invalid pool size %d", size))
		}
		cfg.poolSize = size
		return nil
	}
}

// WithParallelSortChunkSize sets the number of elements sorted by a
// single task. The input not longer than a chunk is sorted inline.
func WithParallelSortChunkSize(size int) ParallelSortOption {
	return func(cfg *parallelSortConfig) error {
		if size <= 0 {
			return infra.NewErrorStack(fmt.Sprintf("[sorting] invalid chunk size %d", size))
		}
		cfg.chunkSize = size
		return nil
	}
}

func WithParallelSortLogger(logger xlog.XLogger) ParallelSortOption {
	return func(cfg *parallelSortConfig) error {
		cfg.logger = logger
		return nil
	}
}

// ParallelMergeSort merge sorts the chunks of the input concurrently
// on an ants pool, then k-way merges them. It is stable and returns a
// new slice, the input is untouched.
func ParallelMergeSort[T any](
	ctx context.Context,
	arr []T,
	cmp infra.Comparator[T],
	opts ...ParallelSortOption,
) ([]T, error) {
	cfg := &parallelSortConfig{
		poolSize:  runtime.NumCPU(),
		chunkSize: defaultParallelChunkSize,
	}
	for _, o := range opts {
		if o == nil {
			continue
		}
		if err := o(cfg); err != nil {
			return nil, err
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, infra.WrapErrorStackWithMessage(err, "[sorting] parallel merge sort cancelled")
	}
	if len(arr) <= cfg.chunkSize {
		return MergeSort(arr, cmp), nil
	}

	pool, err := ants.NewPool(cfg.poolSize, ants.WithLogger(xlog.NewAntsXLogger(cfg.logger)))
	if err != nil {
		return nil, infra.WrapErrorStackWithMessage(err, "[sorting] unable to create the ants pool")
	}
	defer pool.Release()

	chunks := lo.Chunk(arr, cfg.chunkSize)
	sorted := make([][]T, len(chunks))
	var (
		wg   sync.WaitGroup
		lock sync.Mutex
		merr error
	)
	appendErr := func(err error) {
		lock.Lock()
		defer lock.Unlock()
		merr = multierr.Append(merr, err)
	}
	for i, chunk := range chunks {
		if ctx.Err() != nil {
			break
		}
		wg.Add(1)
		err = pool.Submit(func() {
			defer func() {
				if r := recover(); r != nil {
					err := infra.NewErrorStack(fmt.Sprintf("[sorting] chunk %d sort panic: %v", i, r))
					if cfg.logger != nil {
						cfg.logger.ErrorStack(err, "parallel merge sort failed", zap.Int("chunk", i))
					}
					appendErr(err)
				}
				wg.Done()
			}()
			if ctx.Err() != nil {
				return
			}
			sorted[i] = MergeSort(chunk, cmp)
		})
		if err != nil {
			wg.Done()
			appendErr(infra.WrapErrorStackWithMessage(err, fmt.Sprintf("[sorting] chunk %d submit failed", i)))
			break
		}
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		merr = multierr.Append(merr, infra.WrapErrorStackWithMessage(err, "[sorting] parallel merge sort cancelled"))
	}
	if merr != nil {
		return nil, merr
	}
	if cfg.logger != nil {
		cfg.logger.Debug("parallel merge sort chunks sorted",
			zap.Int("chunks", len(chunks)),
			zap.Int("poolSize", cfg.poolSize),
		)
	}
	return kWayMerge(sorted, len(arr), cmp), nil
}

type mergeCursor struct {
	chunk int
	idx   int
}

// kWayMerge pops the least head of the sorted chunks from a min heap,
// the lower chunk wins the ties.
func kWayMerge[T any](chunks [][]T, total int, cmp infra.Comparator[T]) []T {
	h := heap.NewHeapFunc[mergeCursor](func(a, b mergeCursor) infra.CompareResult {
		if res := cmp(chunks[a.chunk][a.idx], chunks[b.chunk][b.idx]); res != infra.Equal {
			return res
		}
		return infra.OrderedComparator[int](a.chunk, b.chunk)
	}, heap.WithHeapCapacity(len(chunks)))
	for i, chunk := range chunks {
		if len(chunk) > 0 {
			h.Insert(mergeCursor{chunk: i})
		}
	}

	res := make([]T, 0, total)
	for c, ok := h.Extract(); ok; c, ok = h.Extract() {
		res = append(res, chunks[c.chunk][c.idx])
		if c.idx+1 < len(chunks[c.chunk]) {
			h.Insert(mergeCursor{chunk: c.chunk, idx: c.idx + 1})
		}
	}
	return res
}
