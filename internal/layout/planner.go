package layout

import (
	"errors"
	"fmt"
	"math"

	"github.com/sjohanns/pdftools/pkg/logger"
	"github.com/sjohanns/pdftools/pkg/models"
)

var (
	ErrNoPages           = errors.New("document has no pages")
	ErrDimensionMismatch = errors.New("pages differ in size")
	ErrUnsupportedRatio  = errors.New("unsupported page size ratio")
	ErrCapacityExceeded  = errors.New("page count exceeds grid capacity")
)

type Orientation int

const (
	Portrait Orientation = iota
	Landscape
)

func (o Orientation) String() string {
	if o == Landscape {
		return "landscape"
	}
	return "portrait"
}

// GridSpec describes how source pages are arranged on one output sheet.
type GridSpec struct {
	Rows        int
	Cols        int
	Orientation Orientation
	Paper       PageSize
}

func (g GridSpec) Cells() int {
	return g.Rows * g.Cols
}

// CanvasWidth returns the output sheet width: the paper's short side in
// portrait orientation, the long side in landscape.
func (g GridSpec) CanvasWidth() float64 {
	if g.Orientation == Landscape {
		return g.Paper.Height
	}
	return g.Paper.Width
}

func (g GridSpec) CanvasHeight() float64 {
	if g.Orientation == Landscape {
		return g.Paper.Width
	}
	return g.Paper.Height
}

func (g GridSpec) transposed() GridSpec {
	t := GridSpec{Rows: g.Cols, Cols: g.Rows, Paper: g.Paper}
	if g.Orientation == Portrait {
		t.Orientation = Landscape
	} else {
		t.Orientation = Portrait
	}
	return t
}

// Placement positions one source page on an output sheet. Offsets are in
// points from the sheet's lower-left corner (PDF user space); the stamping
// sink in internal/document interprets them the same way.
type Placement struct {
	Page  int // zero-based source page
	Sheet int // zero-based output sheet
	X     float64
	Y     float64
}

// Params are the planner inputs.
type Params struct {
	Pages     []models.PageDimensions
	Paper     string // requested output format, "" defaults to A4
	Rotate    bool   // transpose the grid and flip sheet orientation
	Fill      bool   // replicate a single-page input across all cells
	MaxSheets int    // 0 means unlimited
}

// Plan is a complete sheet layout for one input document.
type Plan struct {
	Grid       GridSpec
	Placements []Placement
	Sheets     int
	Filled     bool

	// Rounded input page dimensions the offsets were computed from.
	PageWidth  float64
	PageHeight float64

	// Detected input format name, "" if the dimensions match no A-series
	// format. Informational only.
	InputFormat string
}

// NewPlan classifies the input pages against the output paper size and
// produces grid placements for every page.
func NewPlan(params Params, log *logger.Logger) (*Plan, error) {
	numPages := len(params.Pages)
	if numPages == 0 {
		return nil, ErrNoPages
	}

	pageWidth := math.Round(params.Pages[0].Width)
	pageHeight := math.Round(params.Pages[0].Height)
	for i, p := range params.Pages {
		w := math.Round(p.Width)
		h := math.Round(p.Height)
		if w != pageWidth || h != pageHeight {
			return nil, fmt.Errorf("%w: page %d is %.0fx%.0f, first page is %.0fx%.0f",
				ErrDimensionMismatch, i+1, w, h, pageWidth, pageHeight)
		}
	}

	paper, err := outputSize(params.Paper)
	if err != nil {
		return nil, err
	}

	diag := math.Hypot(pageWidth, pageHeight)
	log.Debug("page size %.0fx%.0f, diagonal %.1f", pageWidth, pageHeight, diag)

	if round1(diag/paper.Diagonal()) == 1.0 {
		if paper.Name != "A4" {
			return nil, fmt.Errorf("%w: input is already %s sized", ErrUnsupportedRatio, paper.Name)
		}
		// An A4-sized input cannot be reduced onto A4; double the capacity.
		log.Info("Input is A4 sized, increasing output paper to A3")
		paper, _ = SizeByName("A3")
	}

	grid, err := classify(diag, paper)
	if err != nil {
		return nil, err
	}
	if params.Rotate {
		grid = grid.transposed()
	}

	cells := grid.Cells()
	sheets := (numPages + cells - 1) / cells

	fill := params.Fill
	if fill && numPages > 1 {
		log.Warn("fill only applies to single-page documents, processing normally")
		fill = false
	}
	if fill {
		sheets = 1
	}

	if params.MaxSheets > 0 && sheets > params.MaxSheets {
		return nil, fmt.Errorf("%w: %d pages need %d sheets of %d cells, limit is %d",
			ErrCapacityExceeded, numPages, sheets, cells, params.MaxSheets)
	}

	plan := &Plan{
		Grid:       grid,
		Sheets:     sheets,
		Filled:     fill,
		PageWidth:  pageWidth,
		PageHeight: pageHeight,
	}
	if in, ok := DetectSize(pageWidth, pageHeight); ok {
		plan.InputFormat = in.Name
	}

	if fill {
		for k := 0; k < cells; k++ {
			x, y := cellOffset(grid, k, pageWidth, pageHeight)
			plan.Placements = append(plan.Placements, Placement{Page: 0, Sheet: 0, X: x, Y: y})
		}
	} else {
		for p := 0; p < numPages; p++ {
			x, y := cellOffset(grid, p%cells, pageWidth, pageHeight)
			plan.Placements = append(plan.Placements, Placement{Page: p, Sheet: p / cells, X: x, Y: y})
		}
	}

	if plan.InputFormat != "" {
		log.Info("%s -> %s, %dx%d %s grid, %d sheet(s)",
			plan.InputFormat, paper.Name, grid.Rows, grid.Cols, grid.Orientation, sheets)
	} else {
		log.Info("%.0fx%.0f -> %s, %dx%d %s grid, %d sheet(s)",
			pageWidth, pageHeight, paper.Name, grid.Rows, grid.Cols, grid.Orientation, sheets)
	}

	return plan, nil
}

// cellOffset maps cell index k (row-major, first cell top left) to offsets
// from the sheet's lower-left corner. Page width and height are already
// whole points, so the products stay integral and the last column never
// drifts past the canvas from accumulated rounding.
func cellOffset(grid GridSpec, k int, pageWidth, pageHeight float64) (x, y float64) {
	col := k % grid.Cols
	row := k / grid.Cols
	x = float64(col) * pageWidth
	y = float64(grid.Rows-1-row) * pageHeight
	return x, y
}

// classify maps the diagonal ratio of input page to output paper onto a
// fixed set of grid shapes. Coarse ratios use one decimal, fine ratios two.
func classify(diag float64, paper PageSize) (GridSpec, error) {
	ratio := diag / paper.Diagonal()
	switch {
	case round1(ratio) == 0.7:
		return GridSpec{Rows: 1, Cols: 2, Orientation: Landscape, Paper: paper}, nil
	case round1(ratio) == 0.5:
		return GridSpec{Rows: 2, Cols: 2, Orientation: Portrait, Paper: paper}, nil
	case round2(ratio) == 0.35:
		return GridSpec{Rows: 2, Cols: 4, Orientation: Landscape, Paper: paper}, nil
	case round2(ratio) == 0.25:
		return GridSpec{Rows: 4, Cols: 4, Orientation: Portrait, Paper: paper}, nil
	case round2(ratio) == 0.18:
		return GridSpec{Rows: 4, Cols: 8, Orientation: Landscape, Paper: paper}, nil
	}
	return GridSpec{}, fmt.Errorf("%w: diagonal ratio %.2f against %s", ErrUnsupportedRatio, ratio, paper.Name)
}

func outputSize(name string) (PageSize, error) {
	if name == "" {
		name = "A4"
	}
	if name != "A3" && name != "A4" {
		return PageSize{}, fmt.Errorf("%w: output paper must be A4 or A3, got %q", ErrUnsupportedRatio, name)
	}
	p, _ := SizeByName(name)
	return p, nil
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
