package unittest_test

import (
	"bytes"

	"github.com/fatih/color"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/maxtek/threadpool/internal/unittest"
)

var _ = Describe("Runner", func() {
	BeforeEach(func() {
		noColor := color.NoColor
		color.NoColor = true
		DeferCleanup(func() { color.NoColor = noColor })
	})

	It("should list the tests in order", func() {
		Expect(unittest.Names()).To(Equal([]string{"ABANDON", "CONSTRUCTOR", "EXCEPTION", "SHUTDOWN", "SUBMIT"}))
	})

	DescribeTable("should pass every named test",
		func(name string) {
			Expect(unittest.Run(name)).To(Succeed())
		},
		Entry("constructor", "CONSTRUCTOR"),
		Entry("submit", "SUBMIT"),
		Entry("exception", "EXCEPTION"),
		Entry("shutdown", "SHUTDOWN"),
		Entry("abandon", "ABANDON"),
	)

	It("should fail an unknown test", func() {
		err := unittest.Run("NOPE")
		var unknown *unittest.UnknownTestError
		Expect(err).To(BeAssignableToTypeOf(unknown))
		Expect(err).To(MatchError(ContainSubstring("NOPE")))
	})

	It("should report every test when no name is given", func() {
		var out bytes.Buffer

		Expect(unittest.RunAll(&out)).To(BeTrue())
		for _, name := range unittest.Names() {
			Expect(out.String()).To(ContainSubstring("PASS " + name))
		}
	})

	It("should report failures", func() {
		var out bytes.Buffer

		Expect(unittest.RunAll(&out, "SUBMIT", "NOPE")).To(BeFalse())
		Expect(out.String()).To(ContainSubstring("PASS SUBMIT"))
		Expect(out.String()).To(ContainSubstring("FAIL NOPE"))
	})
})
