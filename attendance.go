// Package attendance generates printable attendance sheets for classes.
//
// A sheet is a US Letter page (or pages) holding an identification header
// with a scannable QR code, a body that is either a roster checklist or a
// paginated grid of blank 4-seat sign-up tables, and an optional
// mailing-list signup footer. The layout engine lives in the layout
// subpackage; this package owns configuration, input loading and the driver
// that sequences the sections against a drawing surface.
//
// Typical use:
//
//	cfg, err := attendance.New("Beginning Bridge",
//	    attendance.WithTeacher("Rick"),
//	    attendance.WithDate(date),
//	)
//	if err != nil {
//	    // ...
//	}
//	err = attendance.WriteFile(cfg, "attendance-2025-03-01.pdf")
package attendance

import (
	"fmt"
	"time"

	"github.com/lvillar/attendance/layout"
	"github.com/lvillar/attendance/logo"
	"github.com/lvillar/attendance/pdf"
	"github.com/lvillar/attendance/qrpayload"
)

// qrPixels is the pixel side length the QR raster is rendered at before
// being scaled to its physical size on the page.
const qrPixels = 256

// Generate lays the sheet described by cfg out onto s. Page 1 must be open
// on the surface already. The only failure mode is QR payload encoding;
// layout itself is total over a validated Config.
func Generate(cfg *Config, s layout.Surface) error {
	m := layout.DefaultMetrics()

	qr, err := qrpayload.Encode(
		qrpayload.New(cfg.EventID, cfg.ClassName, cfg.Date, cfg.Teacher),
		qrPixels,
	)
	if err != nil {
		return newSheetError("Generate", fmt.Errorf("%w: %v", ErrEncode, err))
	}

	header := layout.Header{
		QR:        qr,
		ClassName: cfg.ClassName,
		DateText:  FormatDate(cfg.Date),
		Teacher:   cfg.Teacher,
		Location:  cfg.Location,
		EventID:   cfg.EventID,
	}
	if cfg.Logo != nil {
		flat := logo.Flatten(cfg.Logo)
		b := flat.Bounds()
		header.Logo = flat
		header.LogoWidth, header.LogoHeight = logo.FitBox(b.Dx(), b.Dy(), m.LogoMaxWidth, m.QRSize)
	}

	cur := layout.Cursor{Y: m.TopY(), Page: 1}
	cur.Y = header.Render(s, m, cur.Y)

	// The mailing section is bottom-anchored and must land on page 1 no
	// matter how many pages the grid produces, so it renders before the
	// grid; the grid reserves its height on the first page.
	reserved := 0.0
	if cfg.MailingList {
		ml := layout.Mailing{Rows: cfg.MailingRows}
		ml.Render(s, m)
		reserved = m.MailingHeight
	}

	grid := layout.BlankGrid(cfg.BlankRows)
	if cfg.Roster != nil {
		grid = layout.RosterGrid(cfg.Roster)
	}
	grid.Render(s, m, &cur, reserved)

	return nil
}

// WriteFile generates the sheet described by cfg and writes the PDF to
// path.
func WriteFile(cfg *Config, path string) error {
	w := pdf.NewWriter(layout.DefaultMetrics())
	if err := Generate(cfg, w); err != nil {
		return err
	}
	if err := w.WriteFile(path); err != nil {
		return newSheetError("WriteFile", fmt.Errorf("%w: %v", ErrWrite, err))
	}
	return nil
}

// DefaultFilename derives the output filename from the sheet date, e.g.
// "attendance-2025-03-01.pdf".
func DefaultFilename(cfg *Config) string {
	return fmt.Sprintf("attendance-%s.pdf", cfg.Date.Format("2006-01-02"))
}

// FormatDate renders a calendar date in the long display form used on the
// sheet, e.g. "Saturday, March 1, 2025".
func FormatDate(d time.Time) string {
	return d.Format("Monday, January 2, 2006")
}
