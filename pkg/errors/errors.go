package errors

import (
	"errors"
	"fmt"
)

// ConstructionError is returned when a pool cannot be created.
type ConstructionError struct {
	Workers int
}

func NewConstructionError(workers int) *ConstructionError {
	return &ConstructionError{Workers: workers}
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("failed to construct threadpool: worker count must be positive, got %d", e.Workers)
}

func IsConstructionError(err error) bool {
	var e *ConstructionError
	return errors.As(err, &e)
}

// RejectedError is returned when work is submitted to an inactive pool.
type RejectedError struct{}

func NewRejectedError() *RejectedError {
	return &RejectedError{}
}

func (e *RejectedError) Error() string {
	return "failed to submit to inactive threadpool"
}

func IsRejectedError(err error) bool {
	var e *RejectedError
	return errors.As(err, &e)
}

// AlreadyShutdownError is returned by a redundant shutdown.
type AlreadyShutdownError struct{}

func NewAlreadyShutdownError() *AlreadyShutdownError {
	return &AlreadyShutdownError{}
}

func (e *AlreadyShutdownError) Error() string {
	return "threadpool already shut down"
}

func IsAlreadyShutdownError(err error) bool {
	var e *AlreadyShutdownError
	return errors.As(err, &e)
}

// ErrTaskExited is wrapped by the ExecutionError of a task that ended its
// goroutine without returning, e.g. through runtime.Goexit.
var ErrTaskExited = errors.New("task exited without returning")

// ExecutionError carries the failure of a single task, either the error it
// returned or the value it panicked with.
type ExecutionError struct {
	TaskID string
	Panic  any
	err    error
}

func NewExecutionError(taskID string, err error) *ExecutionError {
	return &ExecutionError{TaskID: taskID, err: err}
}

func NewPanicExecutionError(taskID string, rec any) *ExecutionError {
	err, ok := rec.(error)
	if !ok {
		err = fmt.Errorf("%v", rec)
	}
	return &ExecutionError{TaskID: taskID, Panic: rec, err: err}
}

func (e *ExecutionError) Error() string {
	if e.Panic != nil {
		return fmt.Sprintf("task %s panicked: %v", e.TaskID, e.err)
	}
	return fmt.Sprintf("task %s failed: %v", e.TaskID, e.err)
}

func (e *ExecutionError) Unwrap() error {
	return e.err
}

func IsExecutionError(err error) bool {
	var e *ExecutionError
	return errors.As(err, &e)
}

// AbandonedError resolves the handle of a task that was still queued when
// the pool was shut down.
type AbandonedError struct {
	TaskID string
}

func NewAbandonedError(taskID string) *AbandonedError {
	return &AbandonedError{TaskID: taskID}
}

func (e *AbandonedError) Error() string {
	return fmt.Sprintf("task %s abandoned: threadpool shut down before it started", e.TaskID)
}

func IsAbandonedError(err error) bool {
	var e *AbandonedError
	return errors.As(err, &e)
}
