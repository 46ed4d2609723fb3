// Package shutdownqueue collects cleanup tasks registered anywhere in the
// process and drains them in LIFO order at the end of main.
//
// Shutdown runs each task once, recovers panics, stops early when its
// context ends, and aggregates task errors with errors.Join. It is safe to
// call more than once; later calls are no-ops.
package shutdownqueue

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Task is a shutdown function. It should honor ctx and return an error if it
// cannot finish in time.
type Task func(ctx context.Context) error

var (
	mu      sync.Mutex
	tasks   []Task
	drained bool
)

// Add registers a task to run on Shutdown. Nil tasks and registrations after
// shutdown has started are ignored.
func Add(t Task) {
	if t == nil {
		return
	}

	mu.Lock()
	defer mu.Unlock()

	if drained {
		return
	}

	tasks = append(tasks, t)
}

// Shutdown runs all registered tasks, newest first.
func Shutdown(ctx context.Context) error {
	mu.Lock()
	pending := tasks
	tasks = nil
	drained = true
	mu.Unlock()

	var errs []error

	for i := len(pending) - 1; i >= 0; i-- {
		if ctx.Err() != nil {
			errs = append(errs, fmt.Errorf("shutdown canceled: %w", ctx.Err()))
			break
		}

		errs = append(errs, runTask(ctx, pending[i]))
	}

	return errors.Join(errs...)
}

func runTask(ctx context.Context, t Task) (err error) {
	defer func() {
		r := recover()
		if r != nil {
			err = fmt.Errorf("panic in shutdown task: %v", r)
		}
	}()

	return t(ctx)
}
