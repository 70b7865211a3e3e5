package unittest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"slices"
	"sync/atomic"
	"time"

	"github.com/fatih/color"
	"go.uber.org/zap"

	srvErrors "github.com/maxtek/threadpool/pkg/errors"
	"github.com/maxtek/threadpool/pkg/threadpool"
)

const testTimeout = 5 * time.Second

type UnknownTestError struct {
	Name string
}

func (e *UnknownTestError) Error() string {
	return fmt.Sprintf("unknown test %q", e.Name)
}

var tests = map[string]func() error{
	"CONSTRUCTOR": testConstructor,
	"SUBMIT":      testSubmit,
	"EXCEPTION":   testException,
	"SHUTDOWN":    testShutdown,
	"ABANDON":     testAbandon,
}

// Names returns the registered test names in sorted order.
func Names() []string {
	names := make([]string, 0, len(tests))
	for name := range tests {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Run runs the named test.
func Run(name string) error {
	test, ok := tests[name]
	if !ok {
		return &UnknownTestError{Name: name}
	}
	return test()
}

// RunAll runs names, or every test when names is empty, and writes one
// PASS/FAIL line per test to w. It reports whether all of them passed.
func RunAll(w io.Writer, names ...string) bool {
	if len(names) == 0 {
		names = Names()
	}

	pass := color.New(color.FgGreen, color.Bold).SprintFunc()
	fail := color.New(color.FgRed, color.Bold).SprintFunc()

	ok := true
	for _, name := range names {
		start := time.Now()
		err := Run(name)
		elapsed := time.Since(start).Round(time.Microsecond)
		if err != nil {
			ok = false
			fmt.Fprintf(w, "%s %s (%s): %v\n", fail("FAIL"), name, elapsed, err)
			zap.S().Named("unittest").Debugw("test failed", "test", name, "error", err)
			continue
		}
		fmt.Fprintf(w, "%s %s (%s)\n", pass("PASS"), name, elapsed)
	}
	return ok
}

// assert reports the caller's location when cond is false.
func assert(cond bool, description string) error {
	if cond {
		return nil
	}
	_, file, line, _ := runtime.Caller(1)
	return fmt.Errorf("%s:%d: failed to assert %q", filepath.Base(file), line, description)
}

func testConstructor() error {
	pool, err := threadpool.New(0)
	if err := assert(srvErrors.IsConstructionError(err), "New(0) fails with ConstructionError"); err != nil {
		return err
	}
	if err := assert(pool == nil, "New(0) returns no pool"); err != nil {
		return err
	}

	pool, err = threadpool.New(4)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := assert(pool.Active(), "new pool is active"); err != nil {
		return err
	}
	return assert(pool.Workers() == 4, "new pool has 4 workers")
}

func testSubmit() error {
	pool, err := threadpool.New(4)
	if err != nil {
		return err
	}
	defer pool.Close()

	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	f, err := threadpool.Submit(pool, func() (int, error) { return 42, nil })
	if err != nil {
		return err
	}
	v, err := f.Get(ctx)
	if err != nil {
		return err
	}
	if err := assert(v == 42, "future resolves to 42"); err != nil {
		return err
	}

	futures := make([]*threadpool.Future[int], 0, 100)
	for i := range 100 {
		f, err := threadpool.SubmitWith(pool, func(i int) (int, error) { return i, nil }, i)
		if err != nil {
			return err
		}
		futures = append(futures, f)
	}
	sum := 0
	for _, f := range futures {
		v, err := f.Get(ctx)
		if err != nil {
			return err
		}
		sum += v
	}
	return assert(sum == 4950, "sum of 0..99 is 4950")
}

func testException() error {
	pool, err := threadpool.New(1)
	if err != nil {
		return err
	}
	defer pool.Close()

	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	f, err := threadpool.Submit(pool, func() (int, error) { panic("boom") })
	if err != nil {
		return err
	}
	_, err = f.Get(ctx)
	if err := assert(srvErrors.IsExecutionError(err), "panic surfaces as ExecutionError"); err != nil {
		return err
	}

	next, err := threadpool.Submit(pool, func() (int, error) { return 7, nil })
	if err != nil {
		return err
	}
	v, err := next.Get(ctx)
	if err != nil {
		return err
	}
	return assert(v == 7, "pool still runs tasks after a panic")
}

func testShutdown() error {
	pool, err := threadpool.New(4)
	if err != nil {
		return err
	}
	if err := assert(pool.Active(), "new pool is active"); err != nil {
		return err
	}
	if err := pool.Shutdown(); err != nil {
		return err
	}
	if err := assert(!pool.Active(), "pool is inactive after shutdown"); err != nil {
		return err
	}
	if err := assert(srvErrors.IsAlreadyShutdownError(pool.Shutdown()), "second shutdown fails"); err != nil {
		return err
	}

	var called atomic.Bool
	_, err = threadpool.Exec(pool, func() { called.Store(true) })
	if err := assert(srvErrors.IsRejectedError(err), "submit after shutdown is rejected"); err != nil {
		return err
	}
	return assert(!called.Load(), "rejected function never runs")
}

func testAbandon() error {
	pool, err := threadpool.New(1)
	if err != nil {
		return err
	}

	started := make(chan struct{})
	unblock := make(chan struct{})
	if _, err := threadpool.Exec(pool, func() {
		close(started)
		<-unblock
	}); err != nil {
		return err
	}
	<-started

	queued, err := threadpool.Exec(pool, func() {})
	if err != nil {
		return err
	}

	done := make(chan error, 1)
	go func() { done <- pool.Shutdown() }()
	for pool.Active() {
		runtime.Gosched()
	}
	close(unblock)
	if err := <-done; err != nil {
		return err
	}

	r := queued.Wait()
	var abandoned *srvErrors.AbandonedError
	return assert(errors.As(r.Err, &abandoned), "queued task is abandoned at shutdown")
}
