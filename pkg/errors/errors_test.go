package errors_test

import (
	stdErrors "errors"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	srvErrors "github.com/maxtek/threadpool/pkg/errors"
)

var _ = Describe("Errors", func() {
	Context("predicates", func() {
		It("should match wrapped errors", func() {
			err := fmt.Errorf("submit: %w", srvErrors.NewRejectedError())

			Expect(srvErrors.IsRejectedError(err)).To(BeTrue())
			Expect(srvErrors.IsAlreadyShutdownError(err)).To(BeFalse())
			Expect(srvErrors.IsConstructionError(err)).To(BeFalse())
		})

		It("should not match nil", func() {
			Expect(srvErrors.IsExecutionError(nil)).To(BeFalse())
			Expect(srvErrors.IsAbandonedError(nil)).To(BeFalse())
		})
	})

	Context("ConstructionError", func() {
		It("should report the requested worker count", func() {
			err := srvErrors.NewConstructionError(0)
			Expect(err.Error()).To(ContainSubstring("got 0"))
			Expect(srvErrors.IsConstructionError(err)).To(BeTrue())
		})
	})

	Context("ExecutionError", func() {
		// Given a task that returned an error
		// When it is wrapped into an ExecutionError
		// Then the original error stays reachable through Unwrap
		It("should unwrap the returned error", func() {
			cause := stdErrors.New("boom")
			err := srvErrors.NewExecutionError("t1", cause)

			Expect(err).To(MatchError(cause))
			Expect(err.Error()).To(ContainSubstring("boom"))
			Expect(err.Panic).To(BeNil())
		})

		// Given a task that panicked with a non-error value
		// When it is wrapped into an ExecutionError
		// Then the message carries the panic value
		It("should describe a panic value", func() {
			err := srvErrors.NewPanicExecutionError("t2", "boom")

			Expect(err.Error()).To(ContainSubstring("panicked"))
			Expect(err.Error()).To(ContainSubstring("boom"))
			Expect(err.Panic).To(Equal("boom"))
		})

		It("should keep an error panic value unwrappable", func() {
			cause := stdErrors.New("kaput")
			err := srvErrors.NewPanicExecutionError("t3", cause)

			Expect(stdErrors.Is(err, cause)).To(BeTrue())
		})
	})

	Context("AbandonedError", func() {
		It("should name the task", func() {
			err := srvErrors.NewAbandonedError("t4")
			Expect(err.Error()).To(ContainSubstring("t4"))
			Expect(srvErrors.IsAbandonedError(err)).To(BeTrue())
		})
	})
})
