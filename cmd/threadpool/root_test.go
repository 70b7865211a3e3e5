package main

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/cobra"
)

var _ = Describe("Root command", func() {
	var out *bytes.Buffer

	BeforeEach(func() {
		out = &bytes.Buffer{}
		noColor := color.NoColor
		color.NoColor = true
		DeferCleanup(func() { color.NoColor = noColor })
	})

	run := func(args ...string) (*cobra.Command, error) {
		cmd := NewRootCommand()
		cmd.SetOut(out)
		cmd.SetErr(out)
		cmd.SetArgs(args)
		return cmd, cmd.Execute()
	}

	It("should run the named self tests", func() {
		_, err := run("unit", "CONSTRUCTOR", "SUBMIT")
		Expect(err).NotTo(HaveOccurred())
		Expect(out.String()).To(ContainSubstring("CONSTRUCTOR"))
		Expect(out.String()).To(ContainSubstring("SUBMIT"))
		Expect(out.String()).NotTo(ContainSubstring("FAIL"))
	})

	It("should fail on an unknown self test", func() {
		_, err := run("unit", "NOPE")
		Expect(err).To(HaveOccurred())
	})

	It("should run the demo", func() {
		_, err := run("demo", "--log-level", "error", "--items", "20", "--buffer-size", "3")
		Expect(err).NotTo(HaveOccurred())
		Expect(out.String()).To(ContainSubstring("produced 40 items"))
		Expect(out.String()).To(ContainSubstring("consumed 40 items"))
	})

	It("should print the demo report as yaml", func() {
		_, err := run("demo", "--log-level", "error", "--items", "5", "-o", "yaml")
		Expect(err).NotTo(HaveOccurred())
		Expect(out.String()).To(ContainSubstring("produced: 10"))
		Expect(out.String()).To(ContainSubstring("consumed: 10"))
	})

	It("should reject an unknown report format", func() {
		_, err := run("demo", "--log-level", "error", "-o", "xml")
		Expect(err).To(MatchError(ContainSubstring("invalid output")))
	})

	It("should refuse a demo larger than the pool", func() {
		_, err := run("demo", "--log-level", "error", "--workers", "2", "--producers", "2", "--consumers", "2")
		Expect(err).To(MatchError(ContainSubstring("demo needs 4 workers")))
	})

	It("should validate the demo settings before serving", func() {
		_, err := run("serve", "--log-level", "error", "--producers", "0")
		Expect(err).To(MatchError(ContainSubstring("failed to validate demo configuration")))
	})

	It("should describe the serve endpoints", func() {
		_, err := run("serve", "--help")
		Expect(err).NotTo(HaveOccurred())
		Expect(out.String()).To(ContainSubstring("POST /api/v1/pool/demo"))
	})

	It("should reject an invalid configuration", func() {
		_, err := run("unit", "--workers", "0")
		Expect(err).To(MatchError(ContainSubstring("invalid number of workers")))
	})

	Context("environment and config file", func() {
		It("should read flags from the environment", func() {
			GinkgoT().Setenv("THREADPOOL_WORKERS", "0")

			_, err := run("unit", "CONSTRUCTOR")
			Expect(err).To(MatchError(ContainSubstring("invalid number of workers 0")))
		})

		It("should read flags from a config file", func() {
			path := filepath.Join(GinkgoT().TempDir(), "threadpool.yaml")
			Expect(os.WriteFile(path, []byte("workers: -3\nlog-level: error\n"), 0o600)).To(Succeed())

			_, err := run("unit", "--config", path, "CONSTRUCTOR")
			Expect(err).To(MatchError(ContainSubstring("invalid number of workers -3")))
		})

		It("should let the command line win over the config file", func() {
			path := filepath.Join(GinkgoT().TempDir(), "threadpool.yaml")
			Expect(os.WriteFile(path, []byte("workers: -3\n"), 0o600)).To(Succeed())

			_, err := run("unit", "--config", path, "--workers", "2", "--log-level", "error", "CONSTRUCTOR")
			Expect(err).NotTo(HaveOccurred())
		})

		It("should fail on a missing config file", func() {
			_, err := run("unit", "--config", "/does/not/exist.yaml")
			Expect(err).To(MatchError(ContainSubstring("failed to read config file")))
		})
	})
})
