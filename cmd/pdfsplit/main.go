// Command pdfsplit splits a PDF either into one file per page or into two
// files at a given page number.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sjohanns/pdftools/internal/document"
	"github.com/sjohanns/pdftools/internal/viewer"
	"github.com/sjohanns/pdftools/pkg/logger"
	"github.com/sjohanns/pdftools/pkg/version"
)

func main() {
	var page int
	var open, verbose bool

	flag.IntVar(&page, "p", 0, "split at page number (0 = one file per page)")
	flag.IntVar(&page, "page", 0, "split at page number (0 = one file per page)")
	flag.BoolVar(&open, "open", false, "open the first result in a viewer")
	flag.BoolVar(&verbose, "verbose", false, "enable verbose logging")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: pdfsplit [flags] input.pdf")
		flag.PrintDefaults()
		os.Exit(1)
	}
	input := flag.Arg(0)

	log := logger.New(logger.WithPrefix("[pdfsplit] "))
	log.SetVerbose(verbose)

	if page < 0 {
		log.Fatal("split page must be 0 or positive, got %d", page)
	}

	var created []string
	var err error
	if page == 0 {
		created, err = document.SplitAll(input, ".")
	} else {
		created, err = document.SplitAt(input, ".", page)
	}
	if err != nil {
		log.Fatal("%v", err)
	}

	for _, path := range created {
		log.Info("Created: %s", path)
	}

	if open && len(created) > 0 {
		if err := viewer.New("").Open(created[0]); err != nil {
			log.Warn("could not open viewer: %v", err)
		}
	}
}
