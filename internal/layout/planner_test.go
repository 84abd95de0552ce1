package layout_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sjohanns/pdftools/internal/layout"
	"github.com/sjohanns/pdftools/pkg/logger"
	"github.com/sjohanns/pdftools/pkg/models"
)

func plannerTestLogger() *logger.Logger {
	log := logger.New(
		logger.WithOutput(GinkgoWriter),
		logger.WithPrefix("[layout-test] "),
		logger.WithFlags(0),
	)
	log.SetVerbose(true)
	return log
}

func samePages(n int, width, height float64) []models.PageDimensions {
	pages := make([]models.PageDimensions, n)
	for i := range pages {
		pages[i] = models.PageDimensions{Width: width, Height: height}
	}
	return pages
}

type offset struct {
	x, y float64
}

func offsets(placements []layout.Placement) []offset {
	out := make([]offset, len(placements))
	for i, p := range placements {
		out[i] = offset{p.X, p.Y}
	}
	return out
}

var _ = Describe("Grid layout planner", func() {
	var log *logger.Logger

	BeforeEach(func() {
		log = plannerTestLogger()
	})

	DescribeTable("ratio classification",
		func(width, height float64, paper string, rows, cols int, orientation layout.Orientation, outPaper string) {
			plan, err := layout.NewPlan(layout.Params{
				Pages: samePages(1, width, height),
				Paper: paper,
			}, log)
			Expect(err).NotTo(HaveOccurred())
			Expect(plan.Grid.Rows).To(Equal(rows))
			Expect(plan.Grid.Cols).To(Equal(cols))
			Expect(plan.Grid.Orientation).To(Equal(orientation))
			Expect(plan.Grid.Paper.Name).To(Equal(outPaper))
		},
		Entry("A5 -> A4", 420.0, 595.0, "A4", 1, 2, layout.Landscape, "A4"),
		Entry("A4 -> A3", 595.0, 842.0, "A3", 1, 2, layout.Landscape, "A3"),
		Entry("A6 -> A4", 298.0, 420.0, "A4", 2, 2, layout.Portrait, "A4"),
		Entry("A5 -> A3", 420.0, 595.0, "A3", 2, 2, layout.Portrait, "A3"),
		Entry("A7 -> A4", 210.0, 298.0, "A4", 2, 4, layout.Landscape, "A4"),
		Entry("A6 -> A3", 298.0, 420.0, "A3", 2, 4, layout.Landscape, "A3"),
		Entry("A7 -> A3", 210.0, 298.0, "A3", 4, 4, layout.Portrait, "A3"),
		Entry("A8 -> A4", 148.0, 210.0, "A4", 4, 4, layout.Portrait, "A4"),
		Entry("A8 -> A3", 148.0, 210.0, "A3", 4, 8, layout.Landscape, "A3"),
		Entry("unrounded A5 media box", 419.53, 595.28, "A4", 1, 2, layout.Landscape, "A4"),
		Entry("default paper is A4", 420.0, 595.0, "", 1, 2, layout.Landscape, "A4"),
	)

	It("escalates an A4-sized input from A4 to A3", func() {
		plan, err := layout.NewPlan(layout.Params{
			Pages: samePages(2, 595, 842),
			Paper: "A4",
		}, log)
		Expect(err).NotTo(HaveOccurred())
		Expect(plan.Grid.Paper.Name).To(Equal("A3"))
		Expect(plan.Grid.Rows).To(Equal(1))
		Expect(plan.Grid.Cols).To(Equal(2))
		Expect(plan.Grid.Orientation).To(Equal(layout.Landscape))
		Expect(offsets(plan.Placements)).To(Equal([]offset{{0, 0}, {595, 0}}))
	})

	It("rejects an A3-sized input targeting A3", func() {
		_, err := layout.NewPlan(layout.Params{
			Pages: samePages(1, 842, 1190),
			Paper: "A3",
		}, log)
		Expect(err).To(MatchError(layout.ErrUnsupportedRatio))
	})

	It("rejects ratios outside the table", func() {
		_, err := layout.NewPlan(layout.Params{
			Pages: samePages(1, 300, 300),
		}, log)
		Expect(err).To(MatchError(layout.ErrUnsupportedRatio))
	})

	It("rejects output formats other than A4 and A3", func() {
		_, err := layout.NewPlan(layout.Params{
			Pages: samePages(1, 420, 595),
			Paper: "A5",
		}, log)
		Expect(err).To(HaveOccurred())
	})

	It("rejects inputs with differing page sizes", func() {
		pages := []models.PageDimensions{
			{Width: 420, Height: 595},
			{Width: 298, Height: 420},
		}
		_, err := layout.NewPlan(layout.Params{Pages: pages}, log)
		Expect(err).To(MatchError(layout.ErrDimensionMismatch))
	})

	It("tolerates sub-point media box jitter across pages", func() {
		pages := []models.PageDimensions{
			{Width: 420.2, Height: 594.9},
			{Width: 419.8, Height: 595.3},
		}
		_, err := layout.NewPlan(layout.Params{Pages: pages}, log)
		Expect(err).NotTo(HaveOccurred())
	})

	It("rejects empty inputs", func() {
		_, err := layout.NewPlan(layout.Params{}, log)
		Expect(err).To(MatchError(layout.ErrNoPages))
	})

	Context("placement generation", func() {
		It("places two A5 pages side by side on a landscape A4 sheet", func() {
			plan, err := layout.NewPlan(layout.Params{
				Pages: samePages(2, 420, 595),
			}, log)
			Expect(err).NotTo(HaveOccurred())
			Expect(plan.Grid.CanvasWidth()).To(Equal(842.0))
			Expect(plan.Grid.CanvasHeight()).To(Equal(595.0))
			Expect(plan.Sheets).To(Equal(1))
			Expect(offsets(plan.Placements)).To(Equal([]offset{{0, 0}, {420, 0}}))
		})

		It("fills row-major from the top-left cell", func() {
			plan, err := layout.NewPlan(layout.Params{
				Pages: samePages(4, 298, 420),
			}, log)
			Expect(err).NotTo(HaveOccurred())
			// First page lands top left: x 0, y one row height above the bottom row.
			Expect(offsets(plan.Placements)).To(Equal([]offset{
				{0, 420}, {298, 420},
				{0, 0}, {298, 0},
			}))
		})

		It("keeps every 16-up placement inside the canvas", func() {
			plan, err := layout.NewPlan(layout.Params{
				Pages: samePages(16, 148, 210),
				Paper: "A4",
			}, log)
			Expect(err).NotTo(HaveOccurred())

			width := plan.Grid.CanvasWidth()
			height := plan.Grid.CanvasHeight()
			seen := map[offset]bool{}
			for _, p := range plan.Placements {
				Expect(p.X).To(Equal(float64(int(p.X))), "offsets must be whole points")
				Expect(p.Y).To(Equal(float64(int(p.Y))))
				Expect(p.X + plan.PageWidth).To(BeNumerically("<=", width))
				Expect(p.Y + plan.PageHeight).To(BeNumerically("<=", height))
				cell := offset{p.X, p.Y}
				Expect(seen[cell]).To(BeFalse(), "cells must not overlap")
				seen[cell] = true
			}
			Expect(seen).To(HaveLen(16))
		})

		It("keeps every 32-up placement inside the canvas", func() {
			plan, err := layout.NewPlan(layout.Params{
				Pages: samePages(32, 148, 210),
				Paper: "A3",
			}, log)
			Expect(err).NotTo(HaveOccurred())
			Expect(plan.Grid.Cells()).To(Equal(32))
			for _, p := range plan.Placements {
				Expect(p.X + plan.PageWidth).To(BeNumerically("<=", plan.Grid.CanvasWidth()))
				Expect(p.Y + plan.PageHeight).To(BeNumerically("<=", plan.Grid.CanvasHeight()))
			}
		})

		It("starts a new sheet when the grid is full", func() {
			plan, err := layout.NewPlan(layout.Params{
				Pages: samePages(10, 298, 420),
			}, log)
			Expect(err).NotTo(HaveOccurred())
			Expect(plan.Sheets).To(Equal(3))
			Expect(plan.Placements).To(HaveLen(10))
			Expect(plan.Placements[0].Sheet).To(Equal(0))
			Expect(plan.Placements[4].Sheet).To(Equal(1))
			Expect(plan.Placements[9].Sheet).To(Equal(2))
			// Page 9 is the second cell on the last sheet.
			Expect(plan.Placements[9].X).To(Equal(298.0))
			Expect(plan.Placements[9].Y).To(Equal(420.0))
		})

		It("fails when the sheet limit is exceeded", func() {
			_, err := layout.NewPlan(layout.Params{
				Pages:     samePages(10, 298, 420),
				MaxSheets: 2,
			}, log)
			Expect(err).To(MatchError(layout.ErrCapacityExceeded))
		})
	})

	Context("rotate flag", func() {
		It("transposes the grid and flips orientation", func() {
			plan, err := layout.NewPlan(layout.Params{
				Pages:  samePages(2, 595, 420),
				Rotate: true,
			}, log)
			Expect(err).NotTo(HaveOccurred())
			Expect(plan.Grid.Rows).To(Equal(2))
			Expect(plan.Grid.Cols).To(Equal(1))
			Expect(plan.Grid.Orientation).To(Equal(layout.Portrait))
			Expect(plan.Grid.CanvasWidth()).To(Equal(595.0))
			Expect(plan.Grid.CanvasHeight()).To(Equal(842.0))
			Expect(offsets(plan.Placements)).To(Equal([]offset{{0, 420}, {0, 0}}))
		})
	})

	Context("fill mode", func() {
		It("replicates a single page into every cell", func() {
			plan, err := layout.NewPlan(layout.Params{
				Pages: samePages(1, 298, 420),
				Fill:  true,
			}, log)
			Expect(err).NotTo(HaveOccurred())
			Expect(plan.Filled).To(BeTrue())
			Expect(plan.Sheets).To(Equal(1))
			Expect(plan.Placements).To(HaveLen(4))
			for _, p := range plan.Placements {
				Expect(p.Page).To(Equal(0))
				Expect(p.Sheet).To(Equal(0))
			}
			Expect(offsets(plan.Placements)).To(ConsistOf(
				offset{0, 0}, offset{298, 0}, offset{0, 420}, offset{298, 420},
			))
		})

		It("falls back to normal placement for multi-page inputs", func() {
			plan, err := layout.NewPlan(layout.Params{
				Pages: samePages(3, 298, 420),
				Fill:  true,
			}, log)
			Expect(err).NotTo(HaveOccurred())
			Expect(plan.Filled).To(BeFalse())
			Expect(plan.Placements).To(HaveLen(3))
			Expect(plan.Placements[2].Page).To(Equal(2))
		})
	})

	It("reports the detected input format", func() {
		plan, err := layout.NewPlan(layout.Params{
			Pages: samePages(1, 419.53, 595.28),
		}, log)
		Expect(err).NotTo(HaveOccurred())
		Expect(plan.InputFormat).To(Equal("A5"))
		Expect(plan.PageWidth).To(Equal(420.0))
		Expect(plan.PageHeight).To(Equal(595.0))
	})
})
