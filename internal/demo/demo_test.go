package demo_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/maxtek/threadpool/internal/config"
	"github.com/maxtek/threadpool/internal/demo"
	"github.com/maxtek/threadpool/pkg/threadpool"
)

var _ = Describe("Run", func() {
	var pool *threadpool.ThreadPool

	AfterEach(func() {
		if pool != nil {
			Expect(pool.Close()).To(Succeed())
		}
		pool = nil
	})

	// Given a pool with one worker per producer and consumer
	// When the demo runs with a buffer smaller than the item count
	// Then every produced item is consumed exactly once
	It("should consume every produced item exactly once", func() {
		var err error
		pool, err = threadpool.New(5)
		Expect(err).NotTo(HaveOccurred())

		cfg := *config.NewDemoWithOptionsAndDefaults(
			config.WithProducers(3),
			config.WithConsumers(2),
			config.WithItems(200),
			config.WithBufferSize(4),
			config.WithMaxRetryInterval(5*time.Millisecond),
		)

		report, err := demo.Run(context.Background(), pool, cfg)
		Expect(err).NotTo(HaveOccurred())

		total := 3 * 200
		Expect(report.Produced).To(Equal(total))
		Expect(report.Consumed).To(Equal(total))
		Expect(report.ProducedSum).To(Equal(total * (total - 1) / 2))
		Expect(report.ConsumedSum).To(Equal(report.ProducedSum))
		Expect(pool.Active()).To(BeTrue())
	})

	It("should handle zero items", func() {
		var err error
		pool, err = threadpool.New(2)
		Expect(err).NotTo(HaveOccurred())

		cfg := *config.NewDemoWithOptionsAndDefaults(
			config.WithProducers(1),
			config.WithConsumers(1),
			config.WithItems(0),
		)

		report, err := demo.Run(context.Background(), pool, cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(report.Consumed).To(BeZero())
	})

	It("should fail fast when the pool is too small", func() {
		var err error
		pool, err = threadpool.New(2)
		Expect(err).NotTo(HaveOccurred())

		cfg := *config.NewDemoWithOptionsAndDefaults(
			config.WithProducers(2),
			config.WithConsumers(2),
		)

		_, err = demo.Run(context.Background(), pool, cfg)
		Expect(err).To(MatchError(demo.ErrPoolTooSmall))
		Expect(err).To(MatchError(ContainSubstring("needs 4 workers")))
	})

	It("should fail on a shut down pool", func() {
		var err error
		pool, err = threadpool.New(4)
		Expect(err).NotTo(HaveOccurred())
		Expect(pool.Shutdown()).To(Succeed())

		_, err = demo.Run(context.Background(), pool, *config.NewDemoWithOptionsAndDefaults())
		Expect(err).To(MatchError(ContainSubstring("failed to submit producer")))
	})
})
