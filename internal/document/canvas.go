package document

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// WriteBlankPDF writes a minimal PDF with the given number of empty pages,
// each with a MediaBox of width x height points. The sheet composer stamps
// source pages onto this canvas; pdfcpu only needs a well-formed page tree
// and an (empty) content stream per page.
//
// Object layout: 1 catalog, 2 page tree, 3..2+n pages, 3+n shared empty
// content stream.
func WriteBlankPDF(w io.Writer, pages int, width, height float64) error {
	if pages < 1 {
		return fmt.Errorf("canvas needs at least one page, got %d", pages)
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid canvas size %.2fx%.2f", width, height)
	}

	contentObj := pages + 3
	numObjs := pages + 3

	var buf bytes.Buffer
	offsets := make([]int, numObjs+1)

	writeObj := func(num int, body string) {
		offsets[num] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", num, body)
	}

	buf.WriteString("%PDF-1.4\n")

	writeObj(1, "<< /Type /Catalog /Pages 2 0 R >>")

	kids := ""
	for i := 0; i < pages; i++ {
		if i > 0 {
			kids += " "
		}
		kids += fmt.Sprintf("%d 0 R", i+3)
	}
	writeObj(2, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", kids, pages))

	for i := 0; i < pages; i++ {
		writeObj(i+3, fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %.2f %.2f] /Resources << >> /Contents %d 0 R >>",
			width, height, contentObj))
	}

	writeObj(contentObj, "<< /Length 0 >>\nstream\n\nendstream")

	xrefOffset := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", numObjs+1)
	buf.WriteString("0000000000 65535 f \n")
	for num := 1; num <= numObjs; num++ {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offsets[num])
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", numObjs+1, xrefOffset)

	_, err := w.Write(buf.Bytes())
	return err
}

// CreateBlankFile writes a blank canvas PDF to the given path.
func CreateBlankFile(path string, pages int, width, height float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteBlankPDF(f, pages, width, height); err != nil {
		f.Close()
		removePartial(path)
		return err
	}
	return f.Close()
}
