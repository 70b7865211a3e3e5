// Package threadpool implements a fixed-size worker pool with futures.
//
// A pool owns N workers created at construction. Work is submitted with
// Submit, SubmitWith or Exec, each of which returns a Future resolved by the
// worker that runs the task. Shutdown stops the pool exactly once and joins
// every worker.
//
// # Architecture Overview
//
//	┌─────────────────────────────────────────────────────────────────────┐
//	│                           ThreadPool                                │
//	│                                                                     │
//	│  ┌──────────────┐      ┌──────────────┐      ┌──────────────┐       │
//	│  │   Worker 0   │      │   Worker 1   │      │  Worker N-1  │       │
//	│  └──────────────┘      └──────────────┘      └──────────────┘       │
//	│         ▲                     ▲                     ▲               │
//	│         │       pop()         │        pop()        │               │
//	│         └─────────────────────┼─────────────────────┘               │
//	│                               │                                     │
//	│  ┌────────────────────────────┴────────────────────────────┐        │
//	│  │          Task Queue (mutex + cond, active flag)         │        │
//	│  │  [task1] [task2] [task3] ...                            │        │
//	│  └─────────────────────────────────────────────────────────┘        │
//	│                               ▲                                     │
//	│                               │ push()                              │
//	│                        Submit(p, fn)                                │
//	└─────────────────────────────────────────────────────────────────────┘
//
// # Core Components
//
// Task Queue:
//   - FIFO of pending tasks plus the pool's active flag
//   - One sync.Mutex and one sync.Cond guard both; nothing else is shared
//   - push signals one waiter, deactivate broadcasts to all of them
//   - The lock is never held while a task runs
//
// Worker:
//   - One goroutine per worker, started by New, never restarted
//   - Loops on pop(); runs one task at a time
//   - Exits for good the first time pop() reports the pool inactive
//
// Future:
//   - Created with its task at submission
//   - Resolved exactly once: the value, an ExecutionError or an AbandonedError
//   - Done() is closed on resolution; Get(ctx) and Wait() read the result
//
// # Worker Lifecycle
//
//	┌───────────┐   pop() → task    ┌───────────┐
//	│  Running  │ ────────────────► │ Executing │
//	│  (idle)   │ ◄──────────────── │           │
//	└─────┬─────┘   task returns    └───────────┘
//	      │
//	      │ pop() → inactive
//	      ▼
//	┌────────────┐
//	│ Terminated │
//	└────────────┘
//
// # Errors
//
// All errors come from pkg/errors:
//
//	┌──────────────────────┬───────────────────────────────────────────────┐
//	│ Error                │ When                                          │
//	├──────────────────────┼───────────────────────────────────────────────┤
//	│ ConstructionError    │ New called with a worker count <= 0           │
//	│ RejectedError        │ Submit after Shutdown; fn is never called     │
//	│ AlreadyShutdownError │ second Shutdown                               │
//	│ ExecutionError       │ on the Future: fn failed, panicked or exited  │
//	│ AbandonedError       │ on the Future: still queued at Shutdown       │
//	└──────────────────────┴───────────────────────────────────────────────┘
//
// # Panic Recovery
//
// A panic inside a task is recovered by the task itself and delivered to its
// Future as an ExecutionError with Panic set. A task that never returns
// normally (runtime.Goexit, e.g. t.FailNow inside a task) resolves its Future
// with an ExecutionError wrapping ErrTaskExited:
//
//	returned := false
//	defer func() {
//	    if returned {
//	        return
//	    }
//	    if rec := recover(); rec != nil {
//	        err = srvErrors.NewPanicExecutionError(t.id, rec)
//	    } else {
//	        err = srvErrors.NewExecutionError(t.id, srvErrors.ErrTaskExited)
//	    }
//	    t.future.resolve(Result[T]{Err: err})
//	}()
//
// The worker logs the panic and keeps pulling tasks. Goexit ends the worker
// goroutine, so the worker resumes its loop on a new goroutine that closes
// the same done channel; the pool keeps its worker count.
//
// # Shutdown
//
// Shutdown():
//
//  1. Flips the active flag under the queue lock (fails with AlreadyShutdownError if already off)
//  2. Broadcasts so that every idle worker wakes up and exits
//  3. Waits for each worker, in creation order, to finish its current task
//  4. Resolves the futures of the tasks left in the queue with AbandonedError
//
// Running tasks are never interrupted. Close() is the deferred form: it shuts
// the pool down if it is still active and does nothing otherwise.
//
// # Usage Example
//
//	pool, err := threadpool.New(4)
//	if err != nil {
//	    return err
//	}
//	defer pool.Close()
//
//	future, err := threadpool.Submit(pool, func() (int, error) {
//	    return 42, nil
//	})
//	if err != nil {
//	    return err // pool already shut down
//	}
//
//	v, err := future.Get(ctx)
package threadpool
