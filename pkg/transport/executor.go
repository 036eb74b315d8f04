package transport

import (
	"errors"
	"sync"
)

// DefaultExecutorWorkers is the pool size used when the configuration
// pipeline has to supply an executor itself.
const DefaultExecutorWorkers = 8

// ErrExecutorClosed is returned by Submit after Shutdown.
var ErrExecutorClosed = errors.New("executor is shut down")

// Executor runs submitted tasks off the caller's goroutine. Implementations
// are safe for concurrent use.
type Executor interface {
	// Submit schedules a task. It may block while the executor is at
	// capacity and fails once the executor is shut down.
	Submit(task func()) error

	// Shutdown stops accepting tasks and waits for in-flight tasks to
	// finish. Idempotent.
	Shutdown()
}

// PoolExecutor is a bounded worker-pool Executor.
type PoolExecutor struct {
	tasks chan func()
	wg    sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

// NewPoolExecutor starts a PoolExecutor with the given number of workers.
// Non-positive values fall back to DefaultExecutorWorkers.
func NewPoolExecutor(workers int) *PoolExecutor {
	if workers <= 0 {
		workers = DefaultExecutorWorkers
	}

	e := &PoolExecutor{
		tasks: make(chan func()),
	}
	e.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer e.wg.Done()
			for task := range e.tasks {
				task()
			}
		}()
	}
	return e
}

// Submit schedules a task on the pool. Blocks until a worker is free.
func (e *PoolExecutor) Submit(task func()) error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return ErrExecutorClosed
	}
	// Holding the lock during send keeps Shutdown from closing the channel
	// under an in-flight Submit.
	defer e.mu.Unlock()
	e.tasks <- task
	return nil
}

// Shutdown stops the workers after draining in-flight tasks.
func (e *PoolExecutor) Shutdown() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true
	close(e.tasks)
	e.mu.Unlock()

	e.wg.Wait()
}
