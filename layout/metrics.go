// Package layout implements the page layout engine for attendance sheets.
//
// It converts a small amount of configuration (class metadata, an optional
// roster, row counts) into a deterministic sequence of positioned draw calls
// against a Surface, inserting page breaks where the grid requires them. The
// package never serializes bytes itself; see the pdf package for a Surface
// backed by a real document writer.
package layout

// Metrics holds the physical constants of the sheet: page dimensions,
// margins, row-height caps, font sizes and column ratios. A Metrics value is
// immutable once constructed; every layout function takes it by value.
type Metrics struct {
	PageWidth  float64 // mm
	PageHeight float64 // mm
	Margin     float64 // mm, all four sides

	QRSize       float64 // side length of the header QR block, mm
	LogoMaxWidth float64 // widest a header logo may render, mm

	MaxRowHeight  float64 // cap on adaptive roster rows, mm
	SeatRowHeight float64 // fixed height of blank-mode seat rows, mm
	HeaderRow     float64 // column header row height in roster mode, mm

	TitleFontSize  float64 // pt
	HeaderFontSize float64 // pt
	NormalFontSize float64 // pt
	SmallFontSize  float64 // pt

	// Column width ratios inside a grid band. They must sum to 1.0.
	NameColRatio  float64
	TableColRatio float64
	SeatColRatio  float64

	HeaderGap    float64 // spacing between the QR block and the grid, mm
	SectionGap   float64 // buffer between the grid and the section below, mm
	ColumnGutter float64 // gap between the two roster columns, mm

	WalkInRows    int     // trailing blank rows appended to each roster column
	MailingHeight float64 // fixed mailing section height, mm
}

// DefaultMetrics returns the metrics for a US Letter attendance sheet.
func DefaultMetrics() Metrics {
	return Metrics{
		PageWidth:  215.9,
		PageHeight: 279.4,
		Margin:     15,

		QRSize:       30,
		LogoMaxWidth: 50,

		MaxRowHeight:  7,
		SeatRowHeight: 12,
		HeaderRow:     6,

		TitleFontSize:  18,
		HeaderFontSize: 12,
		NormalFontSize: 10,
		SmallFontSize:  8,

		NameColRatio:  0.60,
		TableColRatio: 0.15,
		SeatColRatio:  0.25,

		HeaderGap:    8,
		SectionGap:   5,
		ColumnGutter: 6,

		WalkInRows:    4,
		MailingHeight: 47,
	}
}

// ContentWidth is the usable horizontal span between the side margins.
func (m Metrics) ContentWidth() float64 {
	return m.PageWidth - 2*m.Margin
}

// UsableHeight is the vertical span between the top and bottom margins.
func (m Metrics) UsableHeight() float64 {
	return m.PageHeight - 2*m.Margin
}

// TopY is the Y offset of the top margin, where page 1 layout starts and
// where the cursor resets after a page break.
func (m Metrics) TopY() float64 {
	return m.PageHeight - m.Margin
}
