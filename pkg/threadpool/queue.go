package threadpool

import (
	"sync"

	srvErrors "github.com/maxtek/threadpool/pkg/errors"
)

type queue[T any] []T

func (q *queue[T]) Len() int { return len(*q) }

func (q *queue[T]) Pop() T {
	old := *q
	x := old[0]
	var zero T
	old[0] = zero
	*q = old[1:]
	return x
}

func (q *queue[T]) Push(t T) {
	*q = append(*q, t)
}

// taskQueue guards the pending tasks and the active flag with a single lock.
// cond is signalled when the queue becomes non-empty or the pool inactive.
type taskQueue struct {
	mu     sync.Mutex
	cond   *sync.Cond
	tasks  queue[Task]
	active bool
	busy   int
}

func newTaskQueue() *taskQueue {
	q := &taskQueue{active: true}
	q.cond = sync.NewCond(&q.mu)
	return q
}

func (q *taskQueue) push(t Task) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if !q.active {
		return srvErrors.NewRejectedError()
	}
	q.tasks.Push(t)
	q.cond.Signal()
	return nil
}

// pop blocks until a task is available or the queue is deactivated. finished
// reports that the caller completed its previous task. ok is false once the
// queue is inactive, even if tasks remain queued.
func (q *taskQueue) pop(finished bool) (t Task, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if finished {
		q.busy--
	}
	for q.active && q.tasks.Len() == 0 {
		q.cond.Wait()
	}
	if !q.active {
		return nil, false
	}
	q.busy++
	return q.tasks.Pop(), true
}

// deactivate flips the active flag and wakes every waiter. It returns false
// if the queue was already inactive.
func (q *taskQueue) deactivate() bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if !q.active {
		return false
	}
	q.active = false
	q.cond.Broadcast()
	return true
}

// drain removes the tasks left behind by deactivate.
func (q *taskQueue) drain() []Task {
	q.mu.Lock()
	defer q.mu.Unlock()

	tasks := []Task(q.tasks)
	q.tasks = nil
	return tasks
}

func (q *taskQueue) isActive() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.active
}

func (q *taskQueue) stats() (queued, busy int, active bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.tasks.Len(), q.busy, q.active
}
