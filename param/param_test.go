package param_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/ilptopo/bpred"
	"github.com/sarchlab/ilptopo/cpu"
	"github.com/sarchlab/ilptopo/mem"
	"github.com/sarchlab/ilptopo/param"
)

var _ = Describe("Validate", func() {
	var binary string

	BeforeEach(func() {
		binary = filepath.Join(GinkgoT().TempDir(), "hello")
		Expect(os.WriteFile(binary, []byte("\x7fELF"), 0o755)).To(Succeed())
	})

	It("should accept the defaults", func() {
		p, err := param.Validate(param.DefaultRaw(binary))

		Expect(err).NotTo(HaveOccurred())
		Expect(p).To(Equal(param.Params{
			Binary:           binary,
			Variant:          cpu.InOrder,
			Predictor:        bpred.Tournament,
			MemSize:          512 * mem.MB,
			Width:            1,
			Threads:          1,
			RequestedWidth:   1,
			RequestedThreads: 1,
		}))
		Expect(p.WidthClamped()).To(BeFalse())
		Expect(p.ThreadsClamped()).To(BeFalse())
	})

	It("should report a missing binary", func() {
		raw := param.DefaultRaw("/nonexistent")

		_, err := param.Validate(raw)

		var missing *param.MissingBinaryError
		Expect(errors.As(err, &missing)).To(BeTrue())
		Expect(missing.Path).To(Equal("/nonexistent"))
		Expect(errors.Is(err, fs.ErrNotExist)).To(BeTrue())
	})

	It("should report a missing binary before other problems", func() {
		raw := param.DefaultRaw("/nonexistent")
		raw.CPUType = "bogus"

		_, err := param.Validate(raw)

		Expect(err).To(BeAssignableToTypeOf(&param.MissingBinaryError{}))
	})

	It("should reject a directory as the binary", func() {
		_, err := param.Validate(param.DefaultRaw(GinkgoT().TempDir()))

		Expect(err).To(BeAssignableToTypeOf(&param.MissingBinaryError{}))
		Expect(err.Error()).To(ContainSubstring("is a directory"))
	})

	DescribeTable("clamping",
		func(width, threads, expectedWidth, expectedThreads int) {
			raw := param.DefaultRaw(binary)
			raw.CPUType = "o3"
			raw.IssueWidth = width
			raw.SMTThreads = threads

			p, err := param.Validate(raw)

			Expect(err).NotTo(HaveOccurred())
			Expect(p.Width).To(Equal(expectedWidth))
			Expect(p.Threads).To(Equal(expectedThreads))
			Expect(p.RequestedWidth).To(Equal(width))
			Expect(p.RequestedThreads).To(Equal(threads))
			Expect(p.WidthClamped()).To(Equal(width < 1))
			Expect(p.ThreadsClamped()).To(Equal(threads < 1))
		},
		Entry("zero width", 0, 1, 1, 1),
		Entry("negative width", -3, 2, 1, 2),
		Entry("zero threads", 4, 0, 4, 1),
		Entry("negative threads", 4, -1, 4, 1),
		Entry("no clamping", 8, 4, 8, 4),
	)

	DescribeTable("invalid choices",
		func(mutate func(*param.Raw), name string) {
			raw := param.DefaultRaw(binary)
			mutate(&raw)

			_, err := param.Validate(raw)

			var invalid *param.InvalidParameterError
			Expect(errors.As(err, &invalid)).To(BeTrue())
			Expect(invalid.Name).To(Equal(name))
		},
		Entry("cpu type", func(r *param.Raw) { r.CPUType = "atomic" }, "cpu-type"),
		Entry("cpu type in capitals", func(r *param.Raw) { r.CPUType = "O3" }, "cpu-type"),
		Entry("predictor in capitals", func(r *param.Raw) { r.BranchPredictor = "Tournament" }, "bp"),
		Entry("predictor", func(r *param.Raw) { r.BranchPredictor = "bimode" }, "bp"),
		Entry("memory size", func(r *param.Raw) { r.MemSize = "lots" }, "mem-size"),
		Entry("zero memory", func(r *param.Raw) { r.MemSize = "0MB" }, "mem-size"),
	)

	It("should parse the choices", func() {
		raw := param.DefaultRaw(binary)
		raw.CPUType = "o3"
		raw.BranchPredictor = "none"
		raw.MemSize = "1GiB"

		p, err := param.Validate(raw)

		Expect(err).NotTo(HaveOccurred())
		Expect(p.Variant).To(Equal(cpu.OutOfOrder))
		Expect(p.Predictor).To(Equal(bpred.None))
		Expect(p.MemSize).To(Equal(uint64(mem.GB)))
	})
})
