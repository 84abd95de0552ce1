package main

import (
	"io"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sjohanns/pdftools/internal/document"
	"github.com/sjohanns/pdftools/pkg/logger"
)

var _ = DescribeTable("character counting",
	func(text string, want int) {
		Expect(charCount(text)).To(Equal(want))
	},
	Entry("empty", "", 0),
	Entry("ascii", "hello world", 11),
	Entry("accented", "café au lait", 12),
	Entry("cjk", "日本語のテキスト", 8),
	Entry("mixed", "page 1 — größe", 14),
)

var _ = Describe("extractText", func() {
	var tempDir string
	var log *logger.Logger

	BeforeEach(func() {
		var err error
		tempDir, err = os.MkdirTemp("", "pdftext-test-*")
		Expect(err).NotTo(HaveOccurred())
		log = logger.New(logger.WithOutput(io.Discard))
	})

	AfterEach(func() {
		os.RemoveAll(tempDir)
	})

	It("reports zero characters for a page without a text layer", func() {
		input := filepath.Join(tempDir, "blank.pdf")
		out := filepath.Join(tempDir, "blank.txt")
		Expect(document.CreateBlankFile(input, 1, 595, 842)).To(Succeed())

		chars, err := extractText(input, out, log)
		Expect(err).NotTo(HaveOccurred())
		Expect(chars).To(BeZero())
		Expect(out).To(BeAnExistingFile())
	})

	It("fails for a missing input", func() {
		_, err := extractText(filepath.Join(tempDir, "nope.pdf"), filepath.Join(tempDir, "out.txt"), log)
		Expect(err).To(HaveOccurred())
	})
})
