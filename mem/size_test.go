package mem

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ByteSize", func() {
	DescribeTable("should parse sizes",
		func(s string, expected uint64) {
			size, err := ParseByteSize(s)
			Expect(err).NotTo(HaveOccurred())
			Expect(size).To(Equal(expected))
		},
		Entry("megabytes", "512MB", uint64(512*MB)),
		Entry("lower-case kilobytes", "32kB", uint64(32*KB)),
		Entry("binary gigabytes", "1GiB", uint64(GB)),
		Entry("short unit", "4G", uint64(4*GB)),
		Entry("bytes", "4096B", uint64(4096)),
		Entry("bare number", "4096", uint64(4096)),
		Entry("fraction", "0.5MB", uint64(512*KB)),
		Entry("spaces", " 2 MB ", uint64(2*MB)),
	)

	DescribeTable("should reject bad sizes",
		func(s string) {
			_, err := ParseByteSize(s)
			Expect(err).To(HaveOccurred())
		},
		Entry("empty", ""),
		Entry("zero", "0MB"),
		Entry("negative", "-1MB"),
		Entry("word", "lots"),
		Entry("fractional bytes", "1.5B"),
	)

	It("should format sizes", func() {
		Expect(FormatByteSize(512 * MB)).To(Equal("512MB"))
		Expect(FormatByteSize(32 * KB)).To(Equal("32kB"))
		Expect(FormatByteSize(2 * GB)).To(Equal("2GB"))
		Expect(FormatByteSize(100)).To(Equal("100B"))
		Expect(FormatByteSize(0)).To(Equal("0B"))
	})
})

var _ = Describe("AddrRange", func() {
	It("should contain addresses in [start, end)", func() {
		r := AddrRange{Start: 0x1000, Size: 0x1000}

		Expect(r.End()).To(Equal(uint64(0x2000)))
		Expect(r.Contains(0x1000)).To(BeTrue())
		Expect(r.Contains(0x1fff)).To(BeTrue())
		Expect(r.Contains(0x2000)).To(BeFalse())
		Expect(r.Contains(0xfff)).To(BeFalse())
		Expect(r.String()).To(Equal("[0x1000:0x2000)"))
	})
})

var _ = Describe("Memory Builder", func() {
	It("should build a memory with defaults", func() {
		m := MakeBuilder().Build("System.Mem")

		Expect(m.Name()).To(Equal("System.Mem"))
		Expect(m.Kind()).To(Equal("SimpleMemory"))
		Expect(m.Config().Size).To(Equal(uint64(512 * MB)))
		Expect(float64(m.Config().AccessLatency)).
			To(BeNumerically("~", 50e-9, 1e-15))
		Expect(m.Config().Range).
			To(Equal(AddrRange{Start: 0, Size: 512 * MB}))
	})

	It("should expose one cpu-side port", func() {
		m := MakeBuilder().WithSize(1 * GB).Build("System.Mem")

		Expect(m.Ports()).To(HaveLen(1))
		Expect(m.Port().Name()).To(Equal("System.Mem.Port"))
		Expect(m.GetPortByName("Port")).To(BeIdenticalTo(m.Port()))
		Expect(m.Config().Range.Size).To(Equal(uint64(GB)))
	})
})
