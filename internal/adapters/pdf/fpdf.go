package pdf

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
)

// FPDFExporter renders handout documents with the fpdf engine.
type FPDFExporter struct{}

// NewFPDFExporter creates the fpdf-backed exporter.
func NewFPDFExporter() *FPDFExporter {
	return &FPDFExporter{}
}

// Available reports whether the engine can render.
func (e *FPDFExporter) Available() error {
	return nil
}

// Render builds the PDF: metadata, a cover page, then the lesson body
// with a running header and footer on content pages.
// PRE: doc.BodyHTML is a rendered lesson fragment
// POST: Returns the document bytes; engine panics come back as errors
func (e *FPDFExporter) Render(doc Document) (out []byte, err error) {
	// The engine panics on some malformed input and version mismatches.
	// Confine that to this call.
	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = fmt.Errorf("pdf engine failure: %v", r)
		}
	}()

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(doc.Title, true)
	pdf.SetAuthor(doc.Author, true)
	pdf.SetSubject(doc.Subject, true)
	pdf.SetCreator(doc.Program, true)
	pdf.AliasNbPages("")

	// Header and footer apply to content pages only, not the cover.
	pdf.SetHeaderFunc(func() {
		if pdf.PageNo() == 1 {
			return
		}
		pdf.SetFont("Helvetica", "I", 9)
		pdf.CellFormat(0, 6, doc.HeaderLeft, "", 0, "L", false, 0, "")
		pdf.SetX(-60)
		pdf.CellFormat(0, 6, doc.HeaderRight, "", 0, "R", false, 0, "")
		pdf.Ln(10)
	})
	pdf.SetFooterFunc(func() {
		if pdf.PageNo() == 1 {
			return
		}
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 10, doc.FooterEmail, "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 0, "R", false, 0, "")
	})

	// Cover page.
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 24)
	pdf.Ln(60)
	pdf.MultiCell(0, 12, doc.Title, "", "C", false)
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "", 14)
	pdf.MultiCell(0, 8, doc.Program, "", "C", false)
	pdf.Ln(16)
	pdf.SetFont("Helvetica", "", 11)
	for _, line := range doc.CoverLines {
		pdf.MultiCell(0, 7, line, "", "C", false)
	}

	// Lesson body.
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 11)
	writer := pdf.HTMLBasicNew()
	writer.Write(5.5, toBasicHTML(doc.BodyHTML))

	if pdf.Err() {
		return nil, fmt.Errorf("pdf engine failure: %w", pdf.Error())
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output failed: %w", err)
	}
	return buf.Bytes(), nil
}
