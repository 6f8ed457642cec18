// Package pdf implements layout.Surface on top of a gofpdf document.
//
// The layout engine works in millimeters from the bottom-left page corner
// with Y increasing upward; gofpdf uses a top-left origin with Y increasing
// downward. This package is the only place that conversion happens.
package pdf

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/lvillar/attendance/layout"
)

// Writer renders layout draw calls into an in-memory PDF document.
type Writer struct {
	doc       *gofpdf.Fpdf
	translate func(string) string
	pageH     float64
	images    int
}

// NewWriter creates a Writer with a single empty page of the configured
// size. Automatic page breaks are disabled: the layout engine decides page
// boundaries itself.
func NewWriter(m layout.Metrics) *Writer {
	doc := gofpdf.New("P", "mm", "Letter", "")
	doc.SetTitle("Attendance Sheet", true)
	doc.SetAutoPageBreak(false, 0)
	doc.SetFont("Helvetica", "", m.NormalFontSize)
	doc.AddPage()
	return &Writer{
		doc:       doc,
		translate: doc.UnicodeTranslatorFromDescriptor(""),
		pageH:     m.PageHeight,
	}
}

// Text implements layout.Surface.
func (w *Writer) Text(s string, size float64, x, y float64, style string) {
	w.doc.SetFont("Helvetica", style, size)
	w.doc.Text(x, w.pageH-y, w.translate(s))
}

// Stroke implements layout.Surface.
func (w *Writer) Stroke(c layout.RGB, width float64) {
	w.doc.SetDrawColor(c.R, c.G, c.B)
	w.doc.SetLineWidth(width)
}

// Line implements layout.Surface.
func (w *Writer) Line(x1, y1, x2, y2 float64) {
	w.doc.Line(x1, w.pageH-y1, x2, w.pageH-y2)
}

// Image implements layout.Surface. The raster is embedded as PNG and placed
// with its top edge at y; gofpdf derives the physical height from the
// image's aspect ratio.
func (w *Writer) Image(img image.Image, x, y, width float64) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		w.doc.SetError(fmt.Errorf("pdf: embedding image: %w", err))
		return
	}
	w.images++
	name := fmt.Sprintf("layout-image-%d", w.images)
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	w.doc.RegisterImageOptionsReader(name, opts, &buf)
	w.doc.ImageOptions(name, x, w.pageH-y, width, 0, false, opts, 0, "")
}

// NewPage implements layout.Surface.
func (w *Writer) NewPage() {
	w.doc.AddPage()
}

// PageCount reports how many pages the document holds so far.
func (w *Writer) PageCount() int {
	return w.doc.PageCount()
}

// Output serializes the document to out and closes it.
func (w *Writer) Output(out io.Writer) error {
	if err := w.doc.Output(out); err != nil {
		return fmt.Errorf("pdf: writing document: %w", err)
	}
	return nil
}

// WriteFile serializes the document to path and closes it.
func (w *Writer) WriteFile(path string) error {
	if err := w.doc.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("pdf: writing %s: %w", path, err)
	}
	return nil
}
