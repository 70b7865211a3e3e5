package threadpool

import (
	"go.uber.org/zap"

	srvErrors "github.com/maxtek/threadpool/pkg/errors"
)

type Stats struct {
	Name    string
	Workers int
	Busy    int
	Queued  int
	Active  bool
}

type ThreadPool struct {
	name    string
	queue   *taskQueue
	workers []*worker
	log     *zap.SugaredLogger
	metrics *Metrics
}

// New starts a pool of nbWorkers workers. It returns a ConstructionError,
// and starts nothing, if nbWorkers is not positive.
func New(nbWorkers int, opts ...Option) (*ThreadPool, error) {
	if nbWorkers <= 0 {
		return nil, srvErrors.NewConstructionError(nbWorkers)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	p := &ThreadPool{
		name:    o.name,
		queue:   newTaskQueue(),
		workers: make([]*worker, 0, nbWorkers),
		log:     o.logger.Sugar().Named("threadpool").With("pool", o.name),
		metrics: o.metrics,
	}
	for i := range nbWorkers {
		w := newWorker(i, p.queue, p.log, p.metrics, o.lockOSThread)
		p.workers = append(p.workers, w)
		go w.run()
	}

	p.log.Debugw("threadpool started", "workers", nbWorkers)
	return p, nil
}

// Submit queues fn and returns the Future it will resolve. It never blocks
// on the queue; it returns a RejectedError once the pool is shut down, in
// which case fn is never called.
func Submit[T any](p *ThreadPool, fn Work[T]) (*Future[T], error) {
	t := newTask(fn)
	if err := p.enqueue(t); err != nil {
		return nil, err
	}
	return t.future, nil
}

// SubmitWith binds arg to fn at submission time and queues the call.
func SubmitWith[A, T any](p *ThreadPool, fn func(A) (T, error), arg A) (*Future[T], error) {
	return Submit(p, func() (T, error) {
		return fn(arg)
	})
}

// Exec queues a function without a result. The Future only reports
// completion or a panic.
func Exec(p *ThreadPool, fn func()) (*Future[struct{}], error) {
	return Submit(p, func() (struct{}, error) {
		fn()
		return struct{}{}, nil
	})
}

func (p *ThreadPool) enqueue(t Task) error {
	p.metrics.queuing()
	if err := p.queue.push(t); err != nil {
		p.metrics.rejected()
		p.log.Debugw("task rejected", "task", t.ID())
		return err
	}
	p.metrics.submitted()
	return nil
}

// Shutdown deactivates the pool, wakes every idle worker and waits for all
// of them to finish their current task. Tasks still queued are never run:
// their futures resolve with an AbandonedError. A second call returns an
// AlreadyShutdownError.
//
// Shutdown blocks as long as a running task does not return, and must not be
// called from a task of the same pool.
func (p *ThreadPool) Shutdown() error {
	if !p.queue.deactivate() {
		return srvErrors.NewAlreadyShutdownError()
	}

	p.log.Infow("shutting down threadpool", "workers", len(p.workers))
	for _, w := range p.workers {
		<-w.done
	}

	abandoned := p.queue.drain()
	for _, t := range abandoned {
		t.Abandon()
	}
	p.metrics.abandoned(len(abandoned))

	p.log.Infow("threadpool shut down", "abandoned", len(abandoned))
	return nil
}

// Close shuts the pool down if it is still active and does nothing otherwise.
func (p *ThreadPool) Close() error {
	if err := p.Shutdown(); err != nil && !srvErrors.IsAlreadyShutdownError(err) {
		return err
	}
	return nil
}

func (p *ThreadPool) Active() bool {
	return p.queue.isActive()
}

func (p *ThreadPool) Name() string {
	return p.name
}

func (p *ThreadPool) Workers() int {
	return len(p.workers)
}

func (p *ThreadPool) Stats() Stats {
	queued, busy, active := p.queue.stats()
	return Stats{
		Name:    p.name,
		Workers: len(p.workers),
		Busy:    busy,
		Queued:  queued,
		Active:  active,
	}
}
