package layout

import "image"

// Header describes the identification band at the top of page 1: the QR
// block, the title and metadata text, an optional logo and the short event
// identifier. Images arrive already prepared; the header only positions them.
type Header struct {
	QR image.Image

	ClassName string
	DateText  string // long display form, e.g. "Saturday, March 1, 2025"
	Teacher   string
	Location  string // omitted when empty
	EventID   string

	// Logo is an already-flattened raster, or nil. LogoWidth and
	// LogoHeight are its fitted physical dimensions in mm.
	Logo       image.Image
	LogoWidth  float64
	LogoHeight float64
}

// Render draws the header band with its top edge at startY and returns the Y
// offset where the grid region begins. It is a pure function of its inputs
// apart from the draw calls it issues.
func (h *Header) Render(s Surface, m Metrics, startY float64) float64 {
	s.Image(h.QR, m.Margin, startY, m.QRSize)

	textX := m.Margin + m.QRSize + 8

	s.Text("CLASS ATTENDANCE", m.TitleFontSize, textX, startY-6, "B")
	s.Text(h.ClassName, m.HeaderFontSize, textX, startY-14, "B")
	s.Text(h.DateText, m.NormalFontSize, textX, startY-20, "")
	s.Text("Instructor: "+h.Teacher, m.NormalFontSize, textX, startY-26, "")

	infoY := startY - 26
	if h.Location != "" {
		infoY -= 5
		s.Text("Location: "+h.Location, m.NormalFontSize, textX, infoY, "")
	}

	rightEdge := m.Margin + m.ContentWidth()
	if h.Logo != nil {
		s.Image(h.Logo, rightEdge-h.LogoWidth, startY, h.LogoWidth)
	}

	s.Text("ID: "+h.EventID, m.SmallFontSize, rightEdge-25, startY-m.QRSize-2, "")

	return startY - m.QRSize - m.HeaderGap
}
