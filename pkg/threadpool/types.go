package threadpool

import (
	"context"

	"github.com/google/uuid"

	srvErrors "github.com/maxtek/threadpool/pkg/errors"
)

type Work[T any] func() (T, error)

type Result[T any] struct {
	Data T
	Err  error
}

// Task is a type-erased unit of work. The result type lives only in the
// Future paired with it at submission.
type Task interface {
	ID() string
	// Execute runs the bound call and resolves the paired Future. The returned
	// error is the one delivered to the Future, if any. The Future is resolved
	// even when the call ends its goroutine with runtime.Goexit, in which case
	// Execute does not return.
	Execute() error
	// Abandon resolves the paired Future with an AbandonedError.
	Abandon()
}

// Future is the read side of a submitted task. It is resolved exactly once.
type Future[T any] struct {
	id     string
	done   chan struct{}
	result Result[T]
}

func newFuture[T any](id string) *Future[T] {
	return &Future[T]{
		id:   id,
		done: make(chan struct{}),
	}
}

func (f *Future[T]) ID() string {
	return f.id
}

// Done is closed once the result is available.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Get blocks until the result is available or ctx is done. Giving up on ctx
// does not cancel the task.
func (f *Future[T]) Get(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.result.Data, f.result.Err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Wait blocks until the result is available.
func (f *Future[T]) Wait() Result[T] {
	<-f.done
	return f.result
}

// Result returns the result without blocking. ok is false while the task is
// still pending.
func (f *Future[T]) Result() (r Result[T], ok bool) {
	select {
	case <-f.done:
		return f.result, true
	default:
		return r, false
	}
}

func (f *Future[T]) resolve(r Result[T]) {
	f.result = r
	close(f.done)
}

type task[T any] struct {
	id     string
	fn     Work[T]
	future *Future[T]
}

func newTask[T any](fn Work[T]) *task[T] {
	id := uuid.NewString()
	return &task[T]{
		id:     id,
		fn:     fn,
		future: newFuture[T](id),
	}
}

func (t *task[T]) ID() string {
	return t.id
}

func (t *task[T]) Execute() (err error) {
	returned := false
	defer func() {
		if returned {
			return
		}
		// recover is nil when fn left through runtime.Goexit.
		if rec := recover(); rec != nil {
			err = srvErrors.NewPanicExecutionError(t.id, rec)
		} else {
			err = srvErrors.NewExecutionError(t.id, srvErrors.ErrTaskExited)
		}
		t.future.resolve(Result[T]{Err: err})
	}()

	v, fnErr := t.fn()
	returned = true

	if fnErr != nil {
		err = srvErrors.NewExecutionError(t.id, fnErr)
	}
	t.future.resolve(Result[T]{Data: v, Err: err})
	return err
}

func (t *task[T]) Abandon() {
	t.future.resolve(Result[T]{Err: srvErrors.NewAbandonedError(t.id)})
}
