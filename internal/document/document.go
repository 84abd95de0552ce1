// Package document wraps pdfcpu with the file-level operations the tools
// need: inspection, sheet composition, merging, splitting and rotation.
package document

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/sjohanns/pdftools/pkg/models"
)

var (
	ErrFileNotFound = errors.New("file not found")
	ErrInvalidPDF   = errors.New("not a valid PDF")
)

// Info describes an input document.
type Info struct {
	Path      string
	PageCount int
	Pages     []models.PageDimensions
}

// Inspect validates the file and reads its page count and per-page
// dimensions in points.
func Inspect(path string) (Info, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return Info{}, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return Info{}, err
	}

	if err := api.ValidateFile(path, nil); err != nil {
		return Info{}, fmt.Errorf("%w: %s: %v", ErrInvalidPDF, path, err)
	}

	dims, err := api.PageDimsFile(path)
	if err != nil {
		return Info{}, fmt.Errorf("%w: %s: %v", ErrInvalidPDF, path, err)
	}

	info := Info{Path: path, PageCount: len(dims)}
	for _, d := range dims {
		info.Pages = append(info.Pages, models.PageDimensions{Width: d.Width, Height: d.Height})
	}
	return info, nil
}

// Merge appends the given files, in order, into a single output file.
func Merge(paths []string, outPath string) error {
	if len(paths) == 0 {
		return errors.New("no input files provided")
	}
	if err := api.MergeCreateFile(paths, outPath, false, nil); err != nil {
		removePartial(outPath)
		return fmt.Errorf("merging %d files: %w", len(paths), err)
	}
	return nil
}

// SplitAll writes every page of the input to its own file named
// <base>_page_<n>.pdf in outDir and returns the created paths.
func SplitAll(path, outDir string) ([]string, error) {
	info, err := Inspect(path)
	if err != nil {
		return nil, err
	}

	base := baseName(path)
	var created []string
	for page := 1; page <= info.PageCount; page++ {
		out := filepath.Join(outDir, fmt.Sprintf("%s_page_%d.pdf", base, page))
		if err := api.TrimFile(path, out, []string{strconv.Itoa(page)}, nil); err != nil {
			removePartial(out)
			return created, fmt.Errorf("extracting page %d: %w", page, err)
		}
		created = append(created, out)
	}
	return created, nil
}

// SplitAt splits the input into two files at the given page: pages 1..n
// and pages n+1..end, named <base>_page_1.pdf and <base>_page_2.pdf.
func SplitAt(path, outDir string, n int) ([]string, error) {
	if n < 1 {
		return nil, fmt.Errorf("split page must be 1 or greater, got %d", n)
	}

	info, err := Inspect(path)
	if err != nil {
		return nil, err
	}
	if info.PageCount == 1 {
		return nil, fmt.Errorf("cannot split a 1-page PDF at page %d", n)
	}
	if n >= info.PageCount {
		return nil, fmt.Errorf("cannot split at page %d, PDF has only %d pages", n, info.PageCount)
	}

	base := baseName(path)
	parts := []struct {
		name  string
		pages string
	}{
		{fmt.Sprintf("%s_page_1.pdf", base), fmt.Sprintf("1-%d", n)},
		{fmt.Sprintf("%s_page_2.pdf", base), fmt.Sprintf("%d-%d", n+1, info.PageCount)},
	}

	var created []string
	for _, part := range parts {
		out := filepath.Join(outDir, part.name)
		if err := api.TrimFile(path, out, []string{part.pages}, nil); err != nil {
			removePartial(out)
			return created, fmt.Errorf("extracting pages %s: %w", part.pages, err)
		}
		created = append(created, out)
	}
	return created, nil
}

// Rotate rotates all pages clockwise by the given angle.
func Rotate(path, outPath string, angle int) error {
	if angle != 90 && angle != 180 && angle != 270 {
		return fmt.Errorf("rotation must be 90, 180 or 270 degrees, got %d", angle)
	}
	if _, err := Inspect(path); err != nil {
		return err
	}
	if err := api.RotateFile(path, outPath, angle, nil, nil); err != nil {
		removePartial(outPath)
		return fmt.Errorf("rotating by %d degrees: %w", angle, err)
	}
	return nil
}

// Optimize rewrites the document through pdfcpu's optimizer, pruning
// redundant objects and recompressing streams.
func Optimize(path, outPath string) error {
	if _, err := Inspect(path); err != nil {
		return err
	}
	if err := api.OptimizeFile(path, outPath, nil); err != nil {
		removePartial(outPath)
		return fmt.Errorf("optimizing: %w", err)
	}
	return nil
}

func baseName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

func removePartial(path string) {
	if _, err := os.Stat(path); err == nil {
		os.Remove(path)
	}
}
