package threadpool

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the prometheus collectors updated by a pool. A nil *Metrics
// is valid and records nothing.
type Metrics struct {
	TasksSubmitted prometheus.Counter
	TasksCompleted prometheus.Counter
	TasksFailed    prometheus.Counter
	TasksRejected  prometheus.Counter
	TasksAbandoned prometheus.Counter
	TasksQueued    prometheus.Gauge
	BusyWorkers    prometheus.Gauge
	TaskDuration   prometheus.Histogram
}

// NewMetrics creates the pool collectors and registers them with registerer.
func NewMetrics(registerer prometheus.Registerer, namespace string) *Metrics {
	factory := promauto.With(registerer)
	return &Metrics{
		TasksSubmitted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "threadpool",
			Name:      "tasks_submitted_total",
			Help:      "Total number of tasks accepted by the pool",
		}),
		TasksCompleted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "threadpool",
			Name:      "tasks_completed_total",
			Help:      "Total number of tasks that returned without error",
		}),
		TasksFailed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "threadpool",
			Name:      "tasks_failed_total",
			Help:      "Total number of tasks that returned an error or panicked",
		}),
		TasksRejected: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "threadpool",
			Name:      "tasks_rejected_total",
			Help:      "Total number of submissions refused by an inactive pool",
		}),
		TasksAbandoned: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "threadpool",
			Name:      "tasks_abandoned_total",
			Help:      "Total number of queued tasks dropped at shutdown",
		}),
		TasksQueued: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "threadpool",
			Name:      "tasks_queued",
			Help:      "Number of tasks waiting for a worker",
		}),
		BusyWorkers: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "threadpool",
			Name:      "busy_workers",
			Help:      "Number of workers executing a task",
		}),
		TaskDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "threadpool",
			Name:      "task_duration_seconds",
			Help:      "Task execution time in seconds",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

// queuing counts a task as queued before it is pushed, so that a worker or
// Shutdown taking it off the queue never drives the gauge below zero.
func (m *Metrics) queuing() {
	if m == nil {
		return
	}
	m.TasksQueued.Inc()
}

func (m *Metrics) submitted() {
	if m == nil {
		return
	}
	m.TasksSubmitted.Inc()
}

func (m *Metrics) rejected() {
	if m == nil {
		return
	}
	m.TasksQueued.Dec()
	m.TasksRejected.Inc()
}

func (m *Metrics) started() {
	if m == nil {
		return
	}
	m.TasksQueued.Dec()
	m.BusyWorkers.Inc()
}

func (m *Metrics) finished(d time.Duration, err error) {
	if m == nil {
		return
	}
	m.BusyWorkers.Dec()
	m.TaskDuration.Observe(d.Seconds())
	if err != nil {
		m.TasksFailed.Inc()
		return
	}
	m.TasksCompleted.Inc()
}

func (m *Metrics) abandoned(n int) {
	if m == nil {
		return
	}
	m.TasksQueued.Sub(float64(n))
	m.TasksAbandoned.Add(float64(n))
}
