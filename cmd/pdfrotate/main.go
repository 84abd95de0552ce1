// Command pdfrotate rotates every page of a PDF clockwise by 90, 180 or
// 270 degrees.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sjohanns/pdftools/internal/document"
	"github.com/sjohanns/pdftools/internal/viewer"
	"github.com/sjohanns/pdftools/pkg/logger"
	"github.com/sjohanns/pdftools/pkg/version"
)

func main() {
	var out string
	var rotation int
	var yes, open, verbose bool

	flag.StringVar(&out, "o", "", "output PDF file (default <input>_rotated.pdf)")
	flag.StringVar(&out, "out", "", "output PDF file (default <input>_rotated.pdf)")
	flag.IntVar(&rotation, "r", 90, "rotation angle in degrees: 90, 180 or 270")
	flag.IntVar(&rotation, "rotation", 90, "rotation angle in degrees: 90, 180 or 270")
	flag.BoolVar(&yes, "y", false, "overwrite an existing output file without asking")
	flag.BoolVar(&yes, "yes", false, "overwrite an existing output file without asking")
	flag.BoolVar(&open, "open", false, "open the result in a viewer")
	flag.BoolVar(&verbose, "verbose", false, "enable verbose logging")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: pdfrotate [flags] input.pdf")
		flag.PrintDefaults()
		os.Exit(1)
	}
	input := flag.Arg(0)

	log := logger.New(logger.WithPrefix("[pdfrotate] "))
	log.SetVerbose(verbose)

	if out == "" {
		ext := filepath.Ext(input)
		out = strings.TrimSuffix(input, ext) + "_rotated" + ext
	}

	if !yes && !confirmOverwrite(out) {
		log.Info("Operation cancelled.")
		return
	}

	info, err := document.Inspect(input)
	if err != nil {
		log.Fatal("%v", err)
	}
	log.Info("Rotating %d pages by %d degrees clockwise...", info.PageCount, rotation)

	if err := document.Rotate(input, out, rotation); err != nil {
		log.Fatal("%v", err)
	}
	log.Info("Done. Output saved to: %s", out)

	if open {
		if err := viewer.New("").Open(out); err != nil {
			log.Warn("could not open viewer: %v", err)
		}
	}
}

func confirmOverwrite(path string) bool {
	if _, err := os.Stat(path); err != nil {
		return true
	}
	fmt.Printf("Output file already exists: %s\nOverwrite? [y/N]: ", path)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
