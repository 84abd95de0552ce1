// Command pdfmerge appends PDF files into a single document, either from
// an explicit file list or from every PDF found under a directory.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/sjohanns/pdftools/internal/document"
	"github.com/sjohanns/pdftools/internal/scanner"
	"github.com/sjohanns/pdftools/internal/viewer"
	"github.com/sjohanns/pdftools/pkg/logger"
	"github.com/sjohanns/pdftools/pkg/version"
)

func main() {
	var out, dir string
	var open, verbose bool

	flag.StringVar(&out, "o", "merge_file.pdf", "output PDF file")
	flag.StringVar(&out, "out", "merge_file.pdf", "output PDF file")
	flag.StringVar(&dir, "dir", "", "merge every PDF found under this directory")
	flag.BoolVar(&open, "open", false, "open the result in a viewer")
	flag.BoolVar(&verbose, "verbose", false, "enable verbose logging")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	log := logger.New(logger.WithPrefix("[pdfmerge] "))
	log.SetVerbose(verbose)

	inputs := flag.Args()
	if dir != "" {
		files, err := scanner.New(log).FindPDFs(context.Background(), dir)
		if err != nil {
			log.Fatal("%v", err)
		}
		for _, f := range files {
			inputs = append(inputs, f.AbsolutePath)
		}
	}

	if len(inputs) == 0 {
		fmt.Fprintln(os.Stderr, "usage: pdfmerge [flags] file1.pdf file2.pdf ...")
		flag.PrintDefaults()
		os.Exit(1)
	}

	log.Info("Merging %d PDF files...", len(inputs))

	totalPages := 0
	for i, path := range inputs {
		info, err := document.Inspect(path)
		if err != nil {
			log.Fatal("%v", err)
		}
		totalPages += info.PageCount
		log.Info("  [%d/%d] Adding: %s (%d pages)", i+1, len(inputs), path, info.PageCount)
	}

	if err := document.Merge(inputs, out); err != nil {
		log.Fatal("%v", err)
	}

	log.Info("Total pages merged: %d", totalPages)
	log.Info("%s successfully created", out)

	if open {
		if err := viewer.New("").Open(out); err != nil {
			log.Warn("could not open viewer: %v", err)
		}
	}
}
