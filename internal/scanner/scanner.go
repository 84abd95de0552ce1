package scanner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sjohanns/pdftools/pkg/logger"
	"github.com/sjohanns/pdftools/pkg/models"
)

// DirectoryScanner finds PDF files under a directory tree.
type DirectoryScanner struct {
	log *logger.Logger
}

func New(log *logger.Logger) *DirectoryScanner {
	return &DirectoryScanner{log: log}
}

// FindPDFs walks dir and returns every .pdf file, in walk order.
func (s *DirectoryScanner) FindPDFs(ctx context.Context, dir string) ([]models.PDFFile, error) {
	var pdfs []models.PDFFile

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil {
			return fmt.Errorf("accessing %s: %w", path, err)
		}

		if info.IsDir() {
			s.log.Debug("scanning directory: %s", path)
			return nil
		}

		if strings.ToLower(filepath.Ext(path)) != ".pdf" {
			return nil
		}

		relPath, err := filepath.Rel(dir, path)
		if err != nil {
			relPath = path
		}

		pdfs = append(pdfs, models.PDFFile{
			AbsolutePath: path,
			RelativePath: relPath,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(pdfs) == 0 {
		return nil, fmt.Errorf("no PDF files found in %s or its subdirectories", dir)
	}

	return pdfs, nil
}
