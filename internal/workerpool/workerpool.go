// Copyright 2026 The go-sumlab Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool runs independent verification cases on a fixed set of
// goroutines.
//
// The kernels themselves are single-threaded; the pool only spreads separate
// (kernel, length) cases across cores. Every case reads the same shared
// buffer, which is safe because no kernel writes to its input.
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//	pool.Each(len(cases), func(i int) { check(cases[i]) })
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a set of persistent worker goroutines.
type Pool struct {
	numWorkers int
	workC      chan job
	closeOnce  sync.Once
	closed     atomic.Bool
}

type job struct {
	fn   func()
	done *sync.WaitGroup
}

// New starts numWorkers goroutines. numWorkers <= 0 means GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan job, numWorkers),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for j := range p.workC {
		j.fn()
		j.done.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close stops the workers after pending work finishes. Safe to call twice.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// Each calls fn(i) for every i in [0, n) and blocks until all calls return.
// Workers claim indices one at a time, so uneven case sizes (a 1025-element
// sweep next to an empty one) still balance. A closed pool runs fn inline.
func (p *Pool) Each(n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	workers := min(p.numWorkers, n)
	if workers == 1 || p.closed.Load() {
		for i := range n {
			fn(i)
		}
		return
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.workC <- job{
			fn: func() {
				for {
					i := int(next.Add(1)) - 1
					if i >= n {
						return
					}
					fn(i)
				}
			},
			done: &wg,
		}
	}
	wg.Wait()
}
