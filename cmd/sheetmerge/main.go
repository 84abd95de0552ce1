// Command sheetmerge lays the pages of a small-format PDF out on fewer
// larger sheets, e.g. four A6 pages per A4 sheet or eight A6 pages per A3
// sheet. All pages of the input must share the same size.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sjohanns/pdftools/internal/config"
	"github.com/sjohanns/pdftools/internal/document"
	"github.com/sjohanns/pdftools/internal/layout"
	"github.com/sjohanns/pdftools/internal/viewer"
	"github.com/sjohanns/pdftools/pkg/logger"
	"github.com/sjohanns/pdftools/pkg/version"
)

func main() {
	var out, size, configPath string
	var fill, rotate, open, verbose bool
	var sheets int

	flag.StringVar(&out, "o", "", "output PDF file (default <input>_out.pdf)")
	flag.StringVar(&out, "out", "", "output PDF file (default <input>_out.pdf)")
	flag.StringVar(&size, "s", "", "output paper size, A4 or A3 (default A4)")
	flag.StringVar(&size, "size", "", "output paper size, A4 or A3 (default A4)")
	flag.BoolVar(&fill, "f", false, "fill the sheet with copies of a single-page input")
	flag.BoolVar(&fill, "fill", false, "fill the sheet with copies of a single-page input")
	flag.BoolVar(&rotate, "r", false, "swap sheet orientation for landscape-oriented input pages")
	flag.BoolVar(&rotate, "rotate", false, "swap sheet orientation for landscape-oriented input pages")
	flag.IntVar(&sheets, "sheets", 0, "fail if the layout needs more than this many sheets (0 = unlimited)")
	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.BoolVar(&open, "open", false, "open the result in a viewer")
	flag.BoolVar(&verbose, "verbose", false, "enable verbose logging")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: sheetmerge [flags] input.pdf")
		flag.PrintDefaults()
		os.Exit(1)
	}
	input := flag.Arg(0)

	log := logger.New(logger.WithPrefix("[sheetmerge] "))
	log.SetVerbose(verbose)

	cfg := config.Default()
	if configPath != "" {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			log.Fatal("loading config: %v", err)
		}
	}
	if size == "" {
		size = cfg.OutputSize
	}
	if out == "" {
		base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
		out = base + "_out.pdf"
	}

	info, err := document.Inspect(input)
	if err != nil {
		log.Fatal("%v", err)
	}
	log.Info("Number of pages to merge: %d", info.PageCount)

	plan, err := layout.NewPlan(layout.Params{
		Pages:     info.Pages,
		Paper:     size,
		Rotate:    rotate,
		Fill:      fill,
		MaxSheets: sheets,
	}, log)
	if err != nil {
		log.Fatal("%v", err)
	}

	if err := document.ComposeSheets(input, out, plan, log); err != nil {
		log.Fatal("%v", err)
	}
	log.Info("%s is written", out)

	if open {
		if err := viewer.New(cfg.Viewer).Open(out); err != nil {
			log.Warn("could not open viewer: %v", err)
		}
	}
}
