package logging_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/maxtek/threadpool/internal/logging"
)

var _ = Describe("Logging", func() {
	It("should build a console logger at the requested level", func() {
		l, err := logging.New("console", "warn")
		Expect(err).NotTo(HaveOccurred())
		Expect(l.Core().Enabled(zapcore.WarnLevel)).To(BeTrue())
		Expect(l.Core().Enabled(zapcore.InfoLevel)).To(BeFalse())
	})

	It("should build a json logger", func() {
		l, err := logging.New("json", "debug")
		Expect(err).NotTo(HaveOccurred())
		Expect(l.Core().Enabled(zapcore.DebugLevel)).To(BeTrue())
	})

	It("should reject an unknown level", func() {
		_, err := logging.New("console", "loud")
		Expect(err).To(MatchError(ContainSubstring("log level")))
	})

	It("should reject an unknown format", func() {
		_, err := logging.New("xml", "info")
		Expect(err).To(MatchError(ContainSubstring("log format")))
	})

	It("should install and restore the global logger", func() {
		before := zap.L()

		restore, err := logging.Setup("json", "error")
		Expect(err).NotTo(HaveOccurred())
		Expect(zap.L()).NotTo(BeIdenticalTo(before))
		Expect(zap.L().Core().Enabled(zapcore.WarnLevel)).To(BeFalse())

		restore()
		Expect(zap.L()).To(BeIdenticalTo(before))
	})
})
