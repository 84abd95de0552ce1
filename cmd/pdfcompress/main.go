// Command pdfcompress shrinks a PDF, by default through Ghostscript's
// pdfwrite device, or with pdfcpu's optimizer when -native is given.
// Without -o the input file is replaced in place via a temp file.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sjohanns/pdftools/internal/config"
	"github.com/sjohanns/pdftools/internal/document"
	"github.com/sjohanns/pdftools/internal/gs"
	"github.com/sjohanns/pdftools/internal/viewer"
	"github.com/sjohanns/pdftools/pkg/logger"
	"github.com/sjohanns/pdftools/pkg/version"
)

func main() {
	var out, configPath string
	var level int
	var backup, native, open, verbose bool

	flag.StringVar(&out, "o", "", "output PDF file (default: replace input in place)")
	flag.StringVar(&out, "out", "", "output PDF file (default: replace input in place)")
	flag.IntVar(&level, "c", -1, "compression level 0-4 (default/prepress/printer/ebook/screen)")
	flag.IntVar(&level, "compress", -1, "compression level 0-4 (default/prepress/printer/ebook/screen)")
	flag.BoolVar(&backup, "b", false, "back up the original before replacing it")
	flag.BoolVar(&backup, "backup", false, "back up the original before replacing it")
	flag.BoolVar(&native, "native", false, "use pdfcpu's optimizer instead of Ghostscript")
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
		fmt.Fprintln(os.Stderr, "usage: pdfcompress [flags] input.pdf")
		flag.PrintDefaults()
		os.Exit(1)
	}
	input := flag.Arg(0)

	log := logger.New(logger.WithPrefix("[pdfcompress] "))
	log.SetVerbose(verbose)

	cfg := config.Default()
	if configPath != "" {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			log.Fatal("loading config: %v", err)
		}
	}
	if level < 0 {
		level = cfg.CompressionLevel
	}
	if level > 4 {
		log.Fatal("compression level must be between 0 and 4, got %d", level)
	}

	// compress returns instead of exiting so its deferred temp-file
	// cleanup runs on every path.
	final, err := compress(input, out, level, backup, native, log)
	if err != nil {
		log.Fatal("%v", err)
	}

	if open {
		if err := viewer.New(cfg.Viewer).Open(final); err != nil {
			log.Warn("could not open viewer: %v", err)
		}
	}
}

// compress writes the compressed PDF and returns the path of the result.
// With an empty out the input is replaced in place through a temp file,
// which is removed whether or not compression succeeds.
func compress(input, out string, level int, backup, native bool, log *logger.Logger) (string, error) {
	info, err := os.Stat(input)
	if err != nil {
		return "", fmt.Errorf("input file not found: %s", input)
	}
	initialSize := info.Size()

	replaceOriginal := out == ""
	target := out
	if replaceOriginal {
		tmp, err := os.CreateTemp("", "pdfcompress-*.pdf")
		if err != nil {
			return "", fmt.Errorf("creating temp file: %w", err)
		}
		tmp.Close()
		target = tmp.Name()
		defer os.Remove(target)
	}

	log.Info("Compress PDF...")
	if native {
		err = document.Optimize(input, target)
	} else {
		err = gs.Compress(context.Background(), input, target, level, log)
	}
	if err != nil {
		return "", err
	}

	final := target
	if replaceOriginal {
		if backup {
			stamp := time.Now().Format("20060102_150405")
			backupPath := strings.TrimSuffix(input, filepath.Ext(input)) + "_BACKUP_" + stamp + ".pdf"
			if err := copyFile(input, backupPath); err != nil {
				return "", fmt.Errorf("creating backup: %w", err)
			}
			log.Info("Backup created: %s", backupPath)
		}
		if err := copyFile(target, input); err != nil {
			return "", fmt.Errorf("replacing original: %w", err)
		}
		final = input
	}

	finalInfo, err := os.Stat(final)
	if err != nil {
		return "", fmt.Errorf("reading result: %w", err)
	}
	reportSizes(log, initialSize, finalInfo.Size())
	return final, nil
}

func reportSizes(log *logger.Logger, before, after int64) {
	ratio := 1 - float64(after)/float64(before)
	if ratio < 0 {
		log.Warn("compressed file is %.0f%% larger than the original", -ratio*100)
	} else {
		log.Info("Compression by %.0f%%.", ratio*100)
	}
	log.Info("Original size: %s, final size: %s", gs.FormatSize(before), gs.FormatSize(after))
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
