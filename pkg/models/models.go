package models

// PageDimensions holds a page's width and height in PostScript points.
type PageDimensions struct {
	Width  float64
	Height float64
}

// PDFFile describes a PDF discovered on disk.
type PDFFile struct {
	AbsolutePath string
	RelativePath string
}
