package layout

import "math"

// PageSize is a named ISO 216 paper format. Dimensions are portrait
// width and height in PostScript points, rounded to whole points.
type PageSize struct {
	Name   string
	Width  float64
	Height float64
}

// Diagonal returns the length of the page diagonal in points.
func (p PageSize) Diagonal() float64 {
	return math.Hypot(p.Width, p.Height)
}

// DimensionTolerance is the slack in points allowed when matching page
// dimensions against a named format.
const DimensionTolerance = 1.0

// A-series formats known to the planner. The table is read-only; callers
// get copies through SizeByName and DetectSize.
var paperSizes = []PageSize{
	{Name: "A3", Width: 842, Height: 1190},
	{Name: "A4", Width: 595, Height: 842},
	{Name: "A5", Width: 420, Height: 595},
	{Name: "A6", Width: 298, Height: 420},
	{Name: "A7", Width: 210, Height: 298},
	{Name: "A8", Width: 148, Height: 210},
}

// SizeByName returns the named format, if known.
func SizeByName(name string) (PageSize, bool) {
	for _, p := range paperSizes {
		if p.Name == name {
			return p, true
		}
	}
	return PageSize{}, false
}

// DetectSize returns the format matching the given dimensions in either
// orientation, within DimensionTolerance.
func DetectSize(width, height float64) (PageSize, bool) {
	for _, p := range paperSizes {
		portrait := math.Abs(width-p.Width) <= DimensionTolerance &&
			math.Abs(height-p.Height) <= DimensionTolerance
		rotated := math.Abs(width-p.Height) <= DimensionTolerance &&
			math.Abs(height-p.Width) <= DimensionTolerance
		if portrait || rotated {
			return p, true
		}
	}
	return PageSize{}, false
}
