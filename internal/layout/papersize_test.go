package layout_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sjohanns/pdftools/internal/layout"
)

var _ = Describe("Paper sizes", func() {
	DescribeTable("SizeByName",
		func(name string, found bool, width, height float64) {
			p, ok := layout.SizeByName(name)
			Expect(ok).To(Equal(found))
			if found {
				Expect(p.Width).To(Equal(width))
				Expect(p.Height).To(Equal(height))
			}
		},
		Entry("A3", "A3", true, 842.0, 1190.0),
		Entry("A4", "A4", true, 595.0, 842.0),
		Entry("A8", "A8", true, 148.0, 210.0),
		Entry("unknown format", "Letter", false, 0.0, 0.0),
	)

	DescribeTable("DetectSize",
		func(width, height float64, expected string) {
			p, ok := layout.DetectSize(width, height)
			if expected == "" {
				Expect(ok).To(BeFalse())
				return
			}
			Expect(ok).To(BeTrue())
			Expect(p.Name).To(Equal(expected))
		},
		Entry("exact A5", 420.0, 595.0, "A5"),
		Entry("A5 landscape", 595.0, 420.0, "A5"),
		Entry("A6 within tolerance", 297.6, 419.5, "A6"),
		Entry("US Letter", 612.0, 792.0, ""),
		Entry("square page", 400.0, 400.0, ""),
	)

	It("computes the A4 diagonal", func() {
		a4, _ := layout.SizeByName("A4")
		Expect(a4.Diagonal()).To(BeNumerically("~", 1031.0, 0.1))
	})
})
