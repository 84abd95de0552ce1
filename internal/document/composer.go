package document

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/sjohanns/pdftools/internal/layout"
	"github.com/sjohanns/pdftools/pkg/logger"
)

// stampDesc positions a stamp at the sheet's lower-left corner at original
// size; the per-placement offset is applied through Dx/Dy. This matches the
// planner's coordinate convention (offsets from the lower-left corner).
const stampDesc = "pos:bl, scale:1 abs, rot:0"

// ComposeSheets writes the planned layout to outPath: a blank canvas with
// one page per sheet, onto which each source page is stamped at its
// placement offset. On failure the partial output is removed.
func ComposeSheets(inPath, outPath string, plan *layout.Plan, log *logger.Logger) error {
	width := plan.Grid.CanvasWidth()
	height := plan.Grid.CanvasHeight()

	if err := CreateBlankFile(outPath, plan.Sheets, width, height); err != nil {
		return fmt.Errorf("creating %d-sheet canvas: %w", plan.Sheets, err)
	}

	for i, pl := range plan.Placements {
		src := fmt.Sprintf("%s:%d", inPath, pl.Page+1)
		wm, err := pdfcpu.ParsePDFWatermarkDetails(src, stampDesc, true, types.POINTS)
		if err != nil {
			removePartial(outPath)
			return fmt.Errorf("placement %d: %w", i+1, err)
		}
		wm.Dx = pl.X
		wm.Dy = pl.Y

		sheet := []string{strconv.Itoa(pl.Sheet + 1)}
		if err := api.AddWatermarksFile(outPath, "", sheet, wm, nil); err != nil {
			removePartial(outPath)
			return fmt.Errorf("placing page %d on sheet %d: %w", pl.Page+1, pl.Sheet+1, err)
		}

		log.Debug("page %d -> sheet %d at (%.0f, %.0f)", pl.Page+1, pl.Sheet+1, pl.X, pl.Y)
	}

	if _, err := os.Stat(outPath); err != nil {
		return fmt.Errorf("output %s was not written: %w", outPath, err)
	}
	return nil
}
