package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/ilptopo/param"
)

var _ = Describe("ilptopo", func() {
	var (
		dir    string
		binary string
		stdout *bytes.Buffer
		stderr *bytes.Buffer
	)

	execute := func(args ...string) error {
		c := NewRootCommand()
		c.SetArgs(args)
		c.SetOut(stdout)
		c.SetErr(stderr)

		return c.Execute()
	}

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
		binary = filepath.Join(dir, "hello")
		Expect(os.WriteFile(binary, []byte("not an elf"), 0o755)).To(Succeed())

		stdout = new(bytes.Buffer)
		stderr = new(bytes.Buffer)
	})

	It("should run a dry run by default", func() {
		err := execute("--binary", binary)

		Expect(err).NotTo(HaveOccurred())
		Expect(stdout.String()).To(ContainSubstring("MinorCPU"))
		Expect(stdout.String()).To(HaveSuffix(
			"Exited @ 0 because dry run, no engine attached\n"))
	})

	It("should require the binary flag", func() {
		err := execute("--cpu-type", "o3")

		Expect(err).To(MatchError(ContainSubstring(`"binary"`)))
		Expect(stdout.String()).To(BeEmpty())
	})

	It("should report a missing binary", func() {
		err := execute("--binary", filepath.Join(dir, "missing"))

		var e *param.MissingBinaryError
		Expect(errors.As(err, &e)).To(BeTrue())
		Expect(stdout.String()).To(BeEmpty())
	})

	It("should reject an unknown cpu type", func() {
		err := execute("--binary", binary, "--cpu-type", "atomic")

		var e *param.InvalidParameterError
		Expect(errors.As(err, &e)).To(BeTrue())
		Expect(e.Name).To(Equal("cpu-type"))
	})

	It("should print the topology with check", func() {
		err := execute("check", "--binary", binary,
			"--cpu-type", "o3", "--smt-threads", "2", "--issue-width", "4")

		Expect(err).NotTo(HaveOccurred())
		out := stdout.String()
		Expect(out).To(HavePrefix("topology System ("))
		Expect(out).To(ContainSubstring("DerivO3CPU"))
		Expect(out).To(ContainSubstring("pid=101"))
		Expect(out).NotTo(ContainSubstring("Exited @"))
	})

	It("should apply the config file", func() {
		cfg := filepath.Join(dir, "override.yaml")
		Expect(os.WriteFile(cfg,
			[]byte("caches:\n  l2:\n    assoc: 16\n"), 0o644)).To(Succeed())

		err := execute("check", "--binary", binary, "--config", cfg)

		Expect(err).NotTo(HaveOccurred())
		Expect(stdout.String()).To(ContainSubstring("assoc=16"))
	})

	It("should reject a bad config file", func() {
		cfg := filepath.Join(dir, "override.yaml")
		Expect(os.WriteFile(cfg,
			[]byte("caches:\n  l3:\n    assoc: 16\n"), 0o644)).To(Succeed())

		err := execute("check", "--binary", binary, "--config", cfg)

		Expect(err).To(MatchError(ContainSubstring("failed to parse config")))
	})

	It("should print construction events when verbose", func() {
		err := execute("check", "--binary", binary, "--bp", "none", "-v")

		Expect(err).NotTo(HaveOccurred())
		Expect(stderr.String()).To(ContainSubstring("[WireConnected]"))
		Expect(stderr.String()).To(ContainSubstring("[StageDone]"))
	})

	It("should reject monitor options without monitoring", func() {
		Expect(execute("--binary", binary, "--open-browser")).
			To(MatchError("--open-browser requires --monitor"))
		Expect(execute("--binary", binary, "--monitor-port", "8080")).
			To(MatchError("--monitor-port requires --monitor"))
	})

	It("should run an external engine", func() {
		engine := filepath.Join(dir, "engine.sh")
		Expect(os.WriteFile(engine, []byte(`#!/bin/sh
cat > /dev/null
echo "Exited @ 5000 because exiting with last active thread context"
`), 0o755)).To(Succeed())

		err := execute("--binary", binary, "--engine", engine)

		Expect(err).NotTo(HaveOccurred())
		Expect(stdout.String()).To(HaveSuffix(
			"Exited @ 5000 because exiting with last active thread context\n"))
	})

	It("should record and inspect the topology", func() {
		record := filepath.Join(dir, "run")

		Expect(execute("--binary", binary, "--record", record)).To(Succeed())

		stdout.Reset()
		err := execute("inspect", record+".sqlite3")

		Expect(err).NotTo(HaveOccurred())
		out := stdout.String()
		Expect(out).To(ContainSubstring("components (8 rows)"))
		Expect(out).To(ContainSubstring("wires (8 rows)"))
		Expect(out).To(ContainSubstring("caches (3 rows)"))
		Expect(out).To(ContainSubstring("processes (1 rows)"))
		Expect(out).To(ContainSubstring("Name=System.CPU[0].ICache "))
	})

	It("should inspect the named tables only", func() {
		record := filepath.Join(dir, "run")
		Expect(execute("--binary", binary, "--record", record)).To(Succeed())

		stdout.Reset()
		err := execute("inspect", record+".sqlite3", "wires")

		Expect(err).NotTo(HaveOccurred())
		Expect(stdout.String()).To(HavePrefix("wires (8 rows)\n"))
		Expect(stdout.String()).NotTo(ContainSubstring("components"))

		Expect(execute("inspect", record+".sqlite3", "events")).
			To(MatchError(`unknown table "events"`))
	})
})
