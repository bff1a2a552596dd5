package sim

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("IDGenerator", func() {
	It("should generate sequential ids from the start value", func() {
		g := NewSequentialIDGenerator(100)

		Expect(g.Generate()).To(Equal("100"))
		Expect(g.Generate()).To(Equal("101"))
		Expect(g.Generate()).To(Equal("102"))
	})

	It("should generate unique ids", func() {
		g := NewUniqueIDGenerator()

		Expect(g.Generate()).NotTo(Equal(g.Generate()))
	})
})
