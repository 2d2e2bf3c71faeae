// Package batch implements infer_batch from spec.md §6: running the core
// dateinfer pipeline across many independent columns in parallel, with no
// shared mutable state between workers and no early abort on one column's
// failure.
package batch

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/coledrain/go-dateinfer"
)

// Result is one column's outcome: either a resolved Result or an error, never
// both. Columns are independent, so one column's failure never prevents the
// others from completing (spec.md §5: "each worker owns its inputs
// exclusively and returns an independent InferResult").
type Result struct {
	Result dateinfer.Result
	Err    error
}

// InferBatch runs dateinfer.Infer over every column in columns concurrently,
// bounded by GOMAXPROCS workers, and returns one Result per column name. The
// returned map always has exactly one entry per key in columns; a column
// that failed to infer carries its error in Result.Err rather than being
// omitted.
func InferBatch(columns map[string][]string, cfg dateinfer.Config) map[string]Result {
	out := make(map[string]Result, len(columns))
	var mu sync.Mutex

	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(runtime.GOMAXPROCS(0))

	for name, dates := range columns {
		name, dates := name, dates
		g.Go(func() error {
			res, err := dateinfer.Infer(dates, cfg)
			mu.Lock()
			out[name] = Result{Result: res, Err: err}
			mu.Unlock()
			return nil
		})
	}
	// Workers never return a non-nil error (each failure is captured per
	// column above), so the aggregate Wait error is always nil; Wait is
	// called only to block until every worker has finished, and its
	// result is discarded.
	_ = g.Wait()

	return out
}
