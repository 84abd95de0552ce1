// Command pdftext extracts the embedded text layer of a PDF into a text
// file. Scanned documents without a text layer produce little or no output.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/gen2brain/go-fitz"

	"github.com/sjohanns/pdftools/internal/viewer"
	"github.com/sjohanns/pdftools/pkg/logger"
	"github.com/sjohanns/pdftools/pkg/version"
)

func main() {
	var out string
	var yes, open, verbose bool

	flag.StringVar(&out, "o", "", "output text file (default <input>.txt)")
	flag.StringVar(&out, "out", "", "output text file (default <input>.txt)")
	flag.BoolVar(&yes, "y", false, "overwrite an existing output file without asking")
	flag.BoolVar(&yes, "yes", false, "overwrite an existing output file without asking")
	flag.BoolVar(&open, "open", false, "open the result in a viewer")
	flag.BoolVar(&verbose, "v", false, "show progress for each page")
	flag.BoolVar(&verbose, "verbose", false, "show progress for each page")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: pdftext [flags] input.pdf")
		flag.PrintDefaults()
		os.Exit(1)
	}
	input := flag.Arg(0)

	log := logger.New(logger.WithPrefix("[pdftext] "))
	log.SetVerbose(verbose)

	if out == "" {
		out = strings.TrimSuffix(input, filepath.Ext(input)) + ".txt"
	}

	if !yes && !confirmOverwrite(out) {
		log.Info("Operation cancelled.")
		return
	}

	chars, err := extractText(input, out, log)
	if err != nil {
		log.Fatal("%v", err)
	}

	switch {
	case chars == 0:
		log.Warn("no text could be extracted; this may be a scanned document without a text layer")
	case chars < 100:
		log.Warn("only %d characters extracted, the PDF may be mostly images", chars)
	}
	log.Info("Done. Extracted %d characters to: %s", chars, out)

	if open {
		if err := viewer.New("").Open(out); err != nil {
			log.Warn("could not open viewer: %v", err)
		}
	}
}

func extractText(input, output string, log *logger.Logger) (int, error) {
	if _, err := os.Stat(input); err != nil {
		return 0, fmt.Errorf("input file not found: %s", input)
	}

	doc, err := fitz.New(input)
	if err != nil {
		return 0, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	numPages := doc.NumPage()
	if numPages == 0 {
		return 0, fmt.Errorf("PDF file has no pages")
	}
	log.Info("Extracting text from %d pages...", numPages)

	var parts []string
	total := 0
	for page := 0; page < numPages; page++ {
		log.Debug("  [%d/%d] processing page %d", page+1, numPages, page+1)
		text, err := doc.Text(page)
		if err != nil {
			return total, fmt.Errorf("extracting text from page %d: %w", page+1, err)
		}
		parts = append(parts, text)
		total += charCount(text)
	}

	if err := os.WriteFile(output, []byte(strings.Join(parts, "\n")), 0644); err != nil {
		return total, fmt.Errorf("writing %s: %w", output, err)
	}
	return total, nil
}

// charCount counts characters rather than bytes, so multibyte text does
// not skew the scanned-document warning thresholds.
func charCount(s string) int {
	return utf8.RuneCountInString(s)
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
