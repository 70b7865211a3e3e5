package demo

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"

	"github.com/maxtek/threadpool/internal/config"
	"github.com/maxtek/threadpool/pkg/threadpool"
)

// ErrPoolTooSmall is returned by Run when the pool cannot host every
// producer and consumer at once.
var ErrPoolTooSmall = errors.New("pool too small for demo")

type Report struct {
	Produced    int           `json:"produced" yaml:"produced"`
	Consumed    int           `json:"consumed" yaml:"consumed"`
	ProducedSum int           `json:"producedSum" yaml:"producedSum"`
	ConsumedSum int           `json:"consumedSum" yaml:"consumedSum"`
	Elapsed     time.Duration `json:"elapsed" yaml:"elapsed"`
}

type consumed struct {
	count int
	sum   int
}

// Run pushes Producers*Items distinct integers through a shared buffer using
// producer and consumer tasks submitted to pool. Every task occupies a worker
// for the whole run, so the pool needs at least Producers+Consumers workers.
func Run(ctx context.Context, pool *threadpool.ThreadPool, cfg config.Demo) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if need := cfg.Producers + cfg.Consumers; pool.Workers() < need {
		return nil, fmt.Errorf("%w: demo needs %d workers, pool has %d", ErrPoolTooSmall, need, pool.Workers())
	}

	if cfg.DemoTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.DemoTimeout)
		defer cancel()
	}

	log := zap.S().Named("demo")
	start := time.Now()

	buf := NewBuffer[int](cfg.BufferSize)
	var remaining atomic.Int64
	remaining.Store(int64(cfg.Producers * cfg.Items))

	producers := make([]*threadpool.Future[int], 0, cfg.Producers)
	for id := range cfg.Producers {
		f, err := threadpool.SubmitWith(pool, func(id int) (int, error) {
			return produce(ctx, buf, id, cfg.Items, cfg.MaxRetryInterval)
		}, id)
		if err != nil {
			return nil, fmt.Errorf("failed to submit producer %d: %w", id, err)
		}
		producers = append(producers, f)
	}

	consumers := make([]*threadpool.Future[consumed], 0, cfg.Consumers)
	for id := range cfg.Consumers {
		f, err := threadpool.SubmitWith(pool, func(id int) (consumed, error) {
			return consume(ctx, buf, &remaining, cfg.MaxRetryInterval)
		}, id)
		if err != nil {
			return nil, fmt.Errorf("failed to submit consumer %d: %w", id, err)
		}
		consumers = append(consumers, f)
	}

	report := &Report{}
	for id, f := range producers {
		sum, err := f.Get(context.Background())
		if err != nil {
			return nil, fmt.Errorf("producer %d failed: %w", id, err)
		}
		report.Produced += cfg.Items
		report.ProducedSum += sum
	}
	for id, f := range consumers {
		c, err := f.Get(context.Background())
		if err != nil {
			return nil, fmt.Errorf("consumer %d failed: %w", id, err)
		}
		log.Debugw("consumer finished", "consumer", id, "items", c.count)
		report.Consumed += c.count
		report.ConsumedSum += c.sum
	}
	report.Elapsed = time.Since(start)

	log.Infow("demo finished",
		"produced", report.Produced,
		"consumed", report.Consumed,
		"elapsed", report.Elapsed)

	return report, nil
}

func produce(ctx context.Context, buf *Buffer[int], id, items int, maxInterval time.Duration) (int, error) {
	sum := 0
	for i := range items {
		v := id*items + i
		_, err := backoff.Retry(ctx, func() (struct{}, error) {
			return struct{}{}, buf.TryPut(v)
		}, backoff.WithBackOff(newBackOff(maxInterval)))
		if err != nil {
			return sum, err
		}
		sum += v
	}
	return sum, nil
}

// consume claims items from remaining before taking them so that consumers
// stop once every produced item has been claimed.
func consume(ctx context.Context, buf *Buffer[int], remaining *atomic.Int64, maxInterval time.Duration) (consumed, error) {
	var c consumed
	for remaining.Add(-1) >= 0 {
		v, err := backoff.Retry(ctx, buf.TryTake, backoff.WithBackOff(newBackOff(maxInterval)))
		if err != nil {
			return c, err
		}
		c.count++
		c.sum += v
	}
	return c, nil
}

func newBackOff(maxInterval time.Duration) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = time.Millisecond
	if maxInterval > 0 {
		b.MaxInterval = maxInterval
	}
	return b
}
