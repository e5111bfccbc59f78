package solver

import (
	"runtime"
	"sync"
)

// executor splits lattice row ranges among a fixed number of workers.
// Every row is independent, so the split needs no coordination beyond the
// range partition.
type executor struct {
	workers int
}

func newExecutor(workers int) *executor {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &executor{workers: workers}
}

// run invokes fn for each row j in [0, rows).
func (e *executor) run(rows int, fn func(j int)) {
	if rows <= 0 {
		return
	}
	workers := e.workers
	if workers > rows {
		workers = rows
	}
	chunk := (rows + workers - 1) / workers
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if end > rows {
			end = rows
		}
		if start >= rows {
			break
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for j := start; j < end; j++ {
				fn(j)
			}
		}(start, end)
	}
	wg.Wait()
}
