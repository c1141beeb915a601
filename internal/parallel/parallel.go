// Package parallel splits row loops of the tensor kernels across goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls how a loop is split.
type Config struct {
	Enabled  bool // Run chunks on separate goroutines.
	Workers  int  // Upper bound on concurrent chunks.
	MinChunk int  // Loops shorter than this run inline.
}

// DefaultConfig returns a Config sized to the CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:  n > 1,
		Workers:  n,
		MinChunk: 256,
	}
}

// Sequential returns a Config that always runs inline.
func Sequential() Config {
	return Config{Workers: 1, MinChunk: 1}
}

// Range calls body(lo, hi) over disjoint half-open chunks covering [0, n)
// and returns once every chunk is done. body must only write state owned by
// its own indices.
func Range(n int, cfg Config, body func(lo, hi int)) {
	if n <= 0 {
		return
	}
	if !cfg.Enabled || cfg.Workers < 2 || n < 2*cfg.MinChunk {
		body(0, n)
		return
	}

	chunk := max((n+cfg.Workers-1)/cfg.Workers, cfg.MinChunk)

	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			body(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}

// For calls f(i) for every i in [0, n).
func For(n int, cfg Config, f func(i int)) {
	Range(n, cfg, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			f(i)
		}
	})
}
