package threadpool_test

import (
	"errors"
	"runtime"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/maxtek/threadpool/pkg/threadpool"
)

var _ = Describe("Metrics", func() {
	var (
		m   *threadpool.Metrics
		reg *prometheus.Registry
	)

	BeforeEach(func() {
		reg = prometheus.NewRegistry()
		m = threadpool.NewMetrics(reg, "test")
	})

	It("should count task outcomes", func() {
		p, err := threadpool.New(2, threadpool.WithMetrics(m))
		Expect(err).NotTo(HaveOccurred())

		ok, err := threadpool.Submit(p, func() (int, error) { return 1, nil })
		Expect(err).NotTo(HaveOccurred())
		failed, err := threadpool.Submit(p, func() (int, error) { return 0, errors.New("boom") })
		Expect(err).NotTo(HaveOccurred())
		panicked, err := threadpool.Exec(p, func() { panic("boom") })
		Expect(err).NotTo(HaveOccurred())

		ok.Wait()
		failed.Wait()
		panicked.Wait()
		Expect(p.Shutdown()).To(Succeed())

		_, err = threadpool.Exec(p, func() {})
		Expect(err).To(HaveOccurred())

		Expect(testutil.ToFloat64(m.TasksSubmitted)).To(Equal(3.0))
		Expect(testutil.ToFloat64(m.TasksCompleted)).To(Equal(1.0))
		Expect(testutil.ToFloat64(m.TasksFailed)).To(Equal(2.0))
		Expect(testutil.ToFloat64(m.TasksRejected)).To(Equal(1.0))
		Expect(testutil.ToFloat64(m.TasksQueued)).To(BeZero())
		Expect(testutil.ToFloat64(m.BusyWorkers)).To(BeZero())
		Expect(testutil.CollectAndCount(m.TaskDuration)).To(Equal(1))
	})

	It("should count abandoned tasks", func() {
		p, err := threadpool.New(1, threadpool.WithMetrics(m))
		Expect(err).NotTo(HaveOccurred())

		started := make(chan struct{})
		unblock := make(chan struct{})
		_, err = threadpool.Exec(p, func() {
			close(started)
			<-unblock
		})
		Expect(err).NotTo(HaveOccurred())
		Eventually(started, time.Second).Should(BeClosed())

		for range 4 {
			_, err := threadpool.Exec(p, func() {})
			Expect(err).NotTo(HaveOccurred())
		}
		Expect(testutil.ToFloat64(m.TasksQueued)).To(Equal(4.0))

		done := make(chan struct{})
		go func() {
			defer GinkgoRecover()
			Expect(p.Shutdown()).To(Succeed())
			close(done)
		}()
		Eventually(p.Active, time.Second).Should(BeFalse())
		close(unblock)
		Eventually(done, time.Second).Should(BeClosed())

		Expect(testutil.ToFloat64(m.TasksAbandoned)).To(Equal(4.0))
		Expect(testutil.ToFloat64(m.TasksQueued)).To(BeZero())
	})

	// Given many submitters racing fast workers and a shutdown
	// When the queued gauge is sampled throughout
	// Then it never drops below zero and settles at zero
	It("should never report a negative queue depth", func() {
		p, err := threadpool.New(4, threadpool.WithMetrics(m))
		Expect(err).NotTo(HaveOccurred())

		stop := make(chan struct{})
		lowest := make(chan float64, 1)
		go func() {
			low := 0.0
			for {
				select {
				case <-stop:
					lowest <- low
					return
				default:
					low = min(low, testutil.ToFloat64(m.TasksQueued))
				}
			}
		}()

		var wg sync.WaitGroup
		for range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for range 250 {
					if _, err := threadpool.Exec(p, func() {}); err != nil {
						return
					}
				}
			}()
		}
		time.Sleep(5 * time.Millisecond)
		Expect(p.Shutdown()).To(Succeed())
		wg.Wait()
		close(stop)

		Expect(<-lowest).To(BeNumerically(">=", 0))
		Expect(testutil.ToFloat64(m.TasksQueued)).To(BeZero())
		Expect(testutil.ToFloat64(m.TasksSubmitted)).To(Equal(
			testutil.ToFloat64(m.TasksCompleted) + testutil.ToFloat64(m.TasksAbandoned)))
	})

	It("should count a task that exits its goroutine as failed", func() {
		p, err := threadpool.New(1, threadpool.WithMetrics(m))
		Expect(err).NotTo(HaveOccurred())

		f, err := threadpool.Exec(p, func() { runtime.Goexit() })
		Expect(err).NotTo(HaveOccurred())
		f.Wait()
		Expect(p.Shutdown()).To(Succeed())

		Expect(testutil.ToFloat64(m.TasksFailed)).To(Equal(1.0))
		Expect(testutil.ToFloat64(m.BusyWorkers)).To(BeZero())
		Expect(testutil.CollectAndCount(m.TaskDuration)).To(Equal(1))
	})

	It("should register every collector", func() {
		families, err := reg.Gather()
		Expect(err).NotTo(HaveOccurred())

		names := make([]string, 0, len(families))
		for _, f := range families {
			names = append(names, f.GetName())
		}
		Expect(names).To(ContainElements(
			"test_threadpool_tasks_submitted_total",
			"test_threadpool_tasks_queued",
			"test_threadpool_busy_workers",
		))
	})
})
