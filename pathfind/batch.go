package pathfind

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/maprobot/gridmap"
)

// FindAll runs one search per query concurrently over the shared grid g,
// with at most workers searches in flight (0 means runtime.NumCPU()).
// Results are returned in query order. The first failing query cancels the
// rest and its error, tagged with the query index, is returned.
// opts apply to every search; the batch context overrides WithContext.
// Hooks passed in opts are invoked from several goroutines at once.
func FindAll(ctx context.Context, g *gridmap.Grid, queries []Query, workers int, opts ...Option) ([]Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	if workers < 0 {
		return nil, fmt.Errorf("%w: workers cannot be negative (%d)", ErrOptionViolation, workers)
	}
	if workers == 0 {
		workers = runtime.NumCPU()
	}
	if ctx == nil {
		ctx = context.Background()
	}

	results := make([]Result, len(queries))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	// copy so appending the batch context never aliases the caller's slice
	base := make([]Option, len(opts), len(opts)+1)
	copy(base, opts)
	base = append(base, WithContext(egCtx))

	for i, q := range queries {
		i, q := i, q
		eg.Go(func() error {
			res, err := Find(g, q.Start, q.Goal, base...)
			if err != nil {
				return fmt.Errorf("pathfind: query %d %v -> %v: %w", i, q.Start, q.Goal, err)
			}
			results[i] = *res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
