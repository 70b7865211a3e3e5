package threadpool

import (
	"errors"
	"runtime"
	"time"

	"go.uber.org/zap"

	srvErrors "github.com/maxtek/threadpool/pkg/errors"
)

type worker struct {
	id           int
	queue        *taskQueue
	done         chan struct{}
	log          *zap.SugaredLogger
	metrics      *Metrics
	lockOSThread bool

	// taskStart is only touched by the goroutine currently serving the slot.
	taskStart time.Time
}

func newWorker(id int, q *taskQueue, log *zap.SugaredLogger, m *Metrics, lockOSThread bool) *worker {
	return &worker{
		id:           id,
		queue:        q,
		done:         make(chan struct{}),
		log:          log,
		metrics:      m,
		lockOSThread: lockOSThread,
	}
}

func (w *worker) run() {
	w.log.Debugw("worker started", "worker", w.id)
	w.loop(false)
}

// loop pulls tasks until the queue reports the pool inactive, then closes
// done. A task that calls runtime.Goexit takes the goroutine down with it;
// loop then continues on a fresh goroutine so the slot stays served and done
// is closed exactly once.
func (w *worker) loop(finished bool) {
	executing := false
	defer func() {
		if executing {
			w.metrics.finished(time.Since(w.taskStart), srvErrors.ErrTaskExited)
			w.log.Warnw("task exited its worker goroutine, restarting worker", "worker", w.id)
			go w.loop(true)
			return
		}
		close(w.done)
	}()

	if w.lockOSThread {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
	}

	for {
		t, ok := w.queue.pop(finished)
		if !ok {
			w.log.Debugw("worker terminated", "worker", w.id)
			return
		}
		executing = true
		w.execute(t)
		executing = false
		finished = true
	}
}

func (w *worker) execute(t Task) {
	w.metrics.started()
	w.taskStart = time.Now()

	err := t.Execute()

	w.metrics.finished(time.Since(w.taskStart), err)

	if err == nil {
		return
	}
	var execErr *srvErrors.ExecutionError
	if errors.As(err, &execErr) && execErr.Panic != nil {
		w.log.Warnw("task panicked", "worker", w.id, "task", t.ID(), "panic", execErr.Panic)
		return
	}
	w.log.Debugw("task failed", "worker", w.id, "task", t.ID(), "error", err)
}
