package layout

// Mailing is the signup footer: a bordered section of evenly spaced
// name/email line pairs. Its height is fixed regardless of the row count
// (rows pack tighter or looser inside Metrics.MailingHeight) and it is
// always anchored to the bottom margin of page 1.
type Mailing struct {
	Rows int
}

// Render draws the section against the bottom margin of the current page.
// It does not touch the cursor: the grid above reserves the section's height
// instead.
func (ml *Mailing) Render(s Surface, m Metrics) {
	x := m.Margin
	width := m.ContentWidth()
	top := m.Margin + m.MailingHeight

	s.Stroke(strokeBorder, 0.5)
	s.Line(x, top, x+width, top)

	s.Text("JOIN MY MAILING LIST", m.NormalFontSize, x+width/2-20, top-6, "B")

	const headerSpace = 10.0
	const padding = 3.0
	rowH := (m.MailingHeight - headerSpace - padding) / float64(ml.Rows)

	y := top - headerSpace
	for i := 0; i < ml.Rows; i++ {
		s.Text("Name:", m.SmallFontSize, x+2, y, "")
		s.Line(x+15, y-0.5, x+width*0.45, y-0.5)

		s.Text("Email:", m.SmallFontSize, x+width*0.48, y, "")
		s.Line(x+width*0.48+12, y-0.5, x+width-2, y-0.5)

		y -= rowH
	}
}
