// Package gs locates and drives the Ghostscript binary for PDF
// compression. Ghostscript is an external dependency and must be on PATH.
package gs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/sjohanns/pdftools/pkg/logger"
)

var ErrNotFound = errors.New("no ghostscript executable found on PATH (gs/gswin32/gswin64)")

// Quality levels map to Ghostscript's -dPDFSETTINGS presets.
const (
	QualityDefault = iota
	QualityPrepress
	QualityPrinter
	QualityEbook
	QualityScreen
)

var presets = map[int]string{
	QualityDefault:  "/default",
	QualityPrepress: "/prepress",
	QualityPrinter:  "/printer",
	QualityEbook:    "/ebook",
	QualityScreen:   "/screen",
}

var binaryNames = []string{"gs", "gswin32", "gswin64"}

// LookPath returns the Ghostscript executable path.
func LookPath() (string, error) {
	for _, name := range binaryNames {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}
	return "", ErrNotFound
}

// Args builds the Ghostscript argument list for compressing inPath to
// outPath at the given quality level.
func Args(quality int, inPath, outPath string) ([]string, error) {
	preset, ok := presets[quality]
	if !ok {
		return nil, fmt.Errorf("compression level must be between 0 and 4, got %d", quality)
	}
	return []string{
		"-sDEVICE=pdfwrite",
		"-dCompatibilityLevel=1.4",
		"-dPDFSETTINGS=" + preset,
		"-dNOPAUSE",
		"-dQUIET",
		"-dBATCH",
		"-sOutputFile=" + outPath,
		inPath,
	}, nil
}

// Compress runs Ghostscript over inPath, writing the result to outPath.
func Compress(ctx context.Context, inPath, outPath string, quality int, log *logger.Logger) error {
	bin, err := LookPath()
	if err != nil {
		return err
	}

	args, err := Args(quality, inPath, outPath)
	if err != nil {
		return err
	}

	log.Debug("running %s %v", bin, args)
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("ghostscript failed: %w", err)
	}

	if _, err := os.Stat(outPath); err != nil {
		return fmt.Errorf("ghostscript produced no output file %s", outPath)
	}
	return nil
}

// FormatSize renders a byte count the way the compression report prints it.
func FormatSize(bytes int64) string {
	switch {
	case bytes < 1024:
		return fmt.Sprintf("%dB", bytes)
	case bytes < 1024*1024:
		return fmt.Sprintf("%.1fKB", float64(bytes)/1024)
	default:
		return fmt.Sprintf("%.1fMB", float64(bytes)/(1024*1024))
	}
}
