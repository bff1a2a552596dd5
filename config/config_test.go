package config_test

import (
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/ilptopo/bpred"
	"github.com/sarchlab/ilptopo/config"
	"github.com/sarchlab/ilptopo/mem"
	"github.com/sarchlab/ilptopo/param"
	"github.com/sarchlab/ilptopo/sim"
	"github.com/sarchlab/ilptopo/topology"
)

const fullFile = `
system:
  name: Board
  clock: 3GHz
engine:
  predictors: [tournament, local, none]
caches:
  l1i: {size: 64kB, assoc: 4}
  l1d: {size: 64kB, mshrs: 8}
  l2:
    size: 1MB
    tagLatency: 20
    dataLatency: 20
    responseLatency: 20
    targetsPerMSHR: 12
buses:
  l2: {width: 64}
  system: {frontendLatency: 5, forwardLatency: 0}
memory:
  accessLatency: 30ns
`

var _ = Describe("Config", func() {
	var binary string

	BeforeEach(func() {
		binary = filepath.Join(GinkgoT().TempDir(), "bin")
		Expect(os.WriteFile(binary, []byte("x"), 0o644)).To(Succeed())
	})

	build := func(f *config.File, raw param.Raw) *topology.Topology {
		b, err := f.Apply(topology.MakeBuilder())
		Expect(err).NotTo(HaveOccurred())

		t, err := b.Build(raw)
		Expect(err).NotTo(HaveOccurred())

		return t
	}

	It("should apply every section", func() {
		f, err := config.Parse(strings.NewReader(fullFile))
		Expect(err).NotTo(HaveOccurred())

		raw := param.DefaultRaw(binary)
		raw.BranchPredictor = "none"
		t := build(f, raw)

		Expect(t.Name()).To(Equal("Board"))
		Expect(t.Component("Board.CPU[0]")).NotTo(BeNil())
		Expect(t.System().Clock).To(Equal(3 * sim.GHz))
		Expect(t.CPU().Predictor.Kind).To(Equal(bpred.None))
		Expect(t.L1I().Size).To(Equal(uint64(64 * mem.KB)))
		Expect(t.L1I().Associativity).To(Equal(4))
		Expect(t.L1I().MSHRs).To(Equal(4))
		Expect(t.L1D().MSHRs).To(Equal(8))
		Expect(t.L1D().Associativity).To(Equal(2))
		Expect(t.L2().Size).To(Equal(uint64(1 * mem.MB)))
		Expect(t.L2().TagLatency).To(Equal(20))
		Expect(t.L2().TargetsPerMSHR).To(Equal(12))
		Expect(t.L2().MSHRs).To(Equal(16))
		Expect(t.L1Bus().Width).To(Equal(64))
		Expect(t.L1Bus().FrontendLatency).To(Equal(1))
		Expect(t.MemBus().Width).To(Equal(16))
		Expect(t.MemBus().FrontendLatency).To(Equal(5))
		Expect(t.MemBus().ForwardLatency).To(Equal(0))
		Expect(t.Memory().AccessLatency).To(BeNumerically("~", 30*sim.NS, 1e-18))
	})

	It("should keep defaults for an empty file", func() {
		f, err := config.Parse(strings.NewReader(""))
		Expect(err).NotTo(HaveOccurred())

		t := build(f, param.DefaultRaw(binary))

		Expect(t.Name()).To(Equal("System"))
		Expect(t.System().Clock).To(Equal(2 * sim.GHz))
		Expect(t.L2().Size).To(Equal(uint64(512 * mem.KB)))
	})

	It("should load from a file", func() {
		path := filepath.Join(GinkgoT().TempDir(), "ilptopo.yaml")
		Expect(os.WriteFile(path, []byte(fullFile), 0o644)).To(Succeed())

		f, err := config.Load(path)

		Expect(err).NotTo(HaveOccurred())
		Expect(f.System.Clock).To(Equal("3GHz"))
		Expect(f.Engine.Predictors).To(Equal([]string{"tournament", "local", "none"}))
	})

	It("should report a missing file", func() {
		_, err := config.Load("/no/such/file.yaml")

		Expect(err).To(MatchError(ContainSubstring("failed to read config file")))
	})

	DescribeTable("invalid files",
		func(content, message string) {
			_, err := config.Parse(strings.NewReader(content))

			Expect(err).To(MatchError(ContainSubstring(message)))
		},
		Entry("unknown key", "system: {clock: 2GHz, voltage: 1}",
			"failed to parse config"),
		Entry("unknown section", "gpu: {}", "failed to parse config"),
		Entry("lower-case name", "system: {name: board}", "system.name"),
		Entry("dotted name", "system: {name: Rack.Board}",
			"must be a single element"),
		Entry("bad clock", "system: {clock: fast}", "system.clock"),
		Entry("bad predictor", "engine: {predictors: [perceptron]}",
			"engine.predictors"),
		Entry("zero associativity", "caches: {l2: {assoc: 0}}",
			"caches.l2.assoc must be positive"),
		Entry("negative latency", "caches: {l1d: {tagLatency: -1}}",
			"caches.l1d.tagLatency must be positive"),
		Entry("bad cache size", "caches: {l1i: {size: huge}}", "caches.l1i.size"),
		Entry("zero bus width", "buses: {l2: {width: 0}}",
			"buses.l2.width must be positive"),
		Entry("negative bus latency", "buses: {system: {responseLatency: -2}}",
			"buses.system.responseLatency must not be negative"),
		Entry("bad memory latency", "memory: {accessLatency: soon}",
			"memory.accessLatency"),
	)
})
