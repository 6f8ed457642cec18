package layout

import "fmt"

// Mode selects which body the grid renders.
type Mode int

const (
	// ModeRoster renders a two-column checklist from an explicit name
	// list, adapted to fit a single page.
	ModeRoster Mode = iota
	// ModeBlank renders numbered 4-seat sign-up tables, paginated across
	// as many pages as needed.
	ModeBlank
)

// Grid describes the body region of the sheet. The two modes are mutually
// exclusive; use RosterGrid or BlankGrid rather than filling the struct in.
type Grid struct {
	Mode      Mode
	Names     []string // roster mode only
	BlankRows int      // blank mode only: total seat rows
}

// RosterGrid returns a grid that lists names as a two-column checklist.
func RosterGrid(names []string) *Grid {
	return &Grid{Mode: ModeRoster, Names: names}
}

// BlankGrid returns a grid of sign-up tables with seats seat rows in total.
func BlankGrid(seats int) *Grid {
	return &Grid{Mode: ModeBlank, BlankRows: seats}
}

var seatNames = [4]string{"North", "South", "East", "West"}

// SplitRoster divides names into the two column slices; the left column
// holds ceil(n/2) names and is never shorter than the right.
func SplitRoster(names []string) (left, right []string) {
	half := (len(names) + 1) / 2
	return names[:half], names[half:]
}

// RowHeight returns the row height that fits rows rows into avail mm,
// capped at max and clamped to zero when no space remains.
func RowHeight(avail float64, rows int, max float64) float64 {
	if rows <= 0 {
		return max
	}
	h := avail / float64(rows)
	if h > max {
		h = max
	}
	if h < 0 {
		h = 0
	}
	return h
}

// NumTables returns how many 4-seat tables are needed for seats seat rows.
func NumTables(seats int) int {
	return (seats + 3) / 4
}

// Render lays out the grid starting at cur.Y. reserved is the height kept
// free above the bottom margin on the first page (the mailing section, if
// enabled); continuation pages in blank mode use the full usable height.
// Page breaks requested from the Surface are reflected in cur.
func (g *Grid) Render(s Surface, m Metrics, cur *Cursor, reserved float64) {
	switch g.Mode {
	case ModeRoster:
		g.renderRoster(s, m, cur, reserved)
	case ModeBlank:
		g.renderBlank(s, m, cur, reserved)
	}
}

// renderRoster draws the two balanced checklist columns. The whole roster
// always fits on the current page: the shared row height shrinks instead of
// the grid overflowing.
func (g *Grid) renderRoster(s Surface, m Metrics, cur *Cursor, reserved float64) {
	left, right := SplitRoster(g.Names)

	avail := cur.Y - m.Margin - reserved - m.SectionGap
	rows := len(left) + m.WalkInRows // left is the taller column
	rowH := RowHeight(avail-m.HeaderRow, rows, m.MaxRowHeight)

	band := (m.ContentWidth() - m.ColumnGutter) / 2
	top := cur.Y
	renderColumn(s, m, m.Margin, top, band, left, rowH)
	renderColumn(s, m, m.Margin+band+m.ColumnGutter, top, band, right, rowH)

	cur.Y = top - m.HeaderRow - float64(rows)*rowH
}

// renderColumn draws one checklist column: a header row, one row per name,
// then the walk-in rows. All rows share rowH.
func renderColumn(s Surface, m Metrics, x, top, band float64, names []string, rowH float64) {
	nameW := band * m.NameColRatio
	tableW := band * m.TableColRatio
	tableX := x + nameW
	seatX := tableX + tableW

	// Column header row.
	textY := top - m.HeaderRow + 1.5
	s.Text("NAME", m.NormalFontSize, x+2, textY, "B")
	s.Text("TABLE", m.SmallFontSize, tableX+2, textY, "B")
	s.Text("SEAT", m.SmallFontSize, seatX+2, textY, "B")
	s.Stroke(strokeBorder, 0.5)
	s.Line(x, top-m.HeaderRow, x+band, top-m.HeaderRow)

	y := top - m.HeaderRow
	for _, name := range names {
		renderRosterRow(s, m, y, x, band, rowH, name)
		y -= rowH
	}
	for i := 0; i < m.WalkInRows; i++ {
		renderWalkInRow(s, m, y, x, band, rowH)
		y -= rowH
	}
}

// renderRosterRow draws a checkbox, the attendee name, a table blank and the
// seat-choice caption, closed off by a light separator.
func renderRosterRow(s Surface, m Metrics, y, x, band, rowH float64, name string) {
	nameW := band * m.NameColRatio
	tableW := band * m.TableColRatio
	tableX := x + nameW
	seatX := tableX + tableW

	textY := y - rowH + 1.5
	const checkbox = 3.0

	s.Stroke(strokeBorder, 0.4)
	renderCheckbox(s, x+1, textY-0.5, checkbox)
	s.Text(name, m.NormalFontSize, x+checkbox+3, textY, "")

	s.Line(tableX+5, textY-0.5, tableX+tableW-3, textY-0.5)
	s.Text("N  S  E  W", m.SmallFontSize, seatX+3, textY, "")

	s.Stroke(strokeRoster, 0.3)
	s.Line(x, y-rowH, x+band, y-rowH)
}

// renderWalkInRow draws an empty sign-in row: a name blank instead of a
// checkbox and name. Row numbers are deliberately not rendered.
func renderWalkInRow(s Surface, m Metrics, y, x, band, rowH float64) {
	nameW := band * m.NameColRatio
	tableW := band * m.TableColRatio
	tableX := x + nameW
	seatX := tableX + tableW

	textY := y - rowH + 1.5

	s.Stroke(strokeBorder, 0.4)
	s.Line(x+2, textY-0.5, tableX-2, textY-0.5)
	s.Line(tableX+5, textY-0.5, tableX+tableW-3, textY-0.5)
	s.Text("N  S  E  W", m.SmallFontSize, seatX+3, textY, "")

	s.Stroke(strokeRoster, 0.3)
	s.Line(x, y-rowH, x+band, y-rowH)
}

// renderBlank draws the paginated 4-seat tables. A table's seat rows are
// never split across a page boundary: when the remaining space cannot hold a
// full table, the whole table moves to a fresh page.
func (g *Grid) renderBlank(s Surface, m Metrics, cur *Cursor, reserved float64) {
	tableH := 4 * m.SeatRowHeight
	space := cur.Y - m.Margin - reserved - m.SectionGap

	row := 0
	for table := 1; table <= NumTables(g.BlankRows); table++ {
		if space < tableH {
			s.NewPage()
			cur.Page++
			cur.Y = m.TopY()
			space = m.UsableHeight()
		}
		for i := 0; i < len(seatNames) && row < g.BlankRows; i++ {
			renderSeatRow(s, m, cur.Y, table, seatNames[i], i == 0, i == len(seatNames)-1)
			cur.Y -= m.SeatRowHeight
			space -= m.SeatRowHeight
			row++
		}
	}
}

// renderSeatRow draws one seat of a sign-up table. The table label appears
// only on the North row; the West row's separator spans the full content
// width to close the table off, interior separators start at the seat
// column.
func renderSeatRow(s Surface, m Metrics, y float64, table int, seat string, first, last bool) {
	textY := y - m.SeatRowHeight/2 - 1.5
	const tableCol = 22.0
	seatX := m.Margin + tableCol

	if first {
		s.Text(fmt.Sprintf("Table %d", table), m.NormalFontSize, m.Margin+2, textY, "")
	}
	s.Text(seat, m.NormalFontSize, seatX+2, textY, "")

	s.Stroke(strokeSeatRow, 0.3)
	start := seatX
	if last {
		start = m.Margin
	}
	s.Line(start, y-m.SeatRowHeight, m.Margin+m.ContentWidth(), y-m.SeatRowHeight)
}

// renderCheckbox strokes an empty square with its bottom-left corner at
// (x, y) using the current stroke settings.
func renderCheckbox(s Surface, x, y, size float64) {
	s.Line(x, y, x+size, y)
	s.Line(x+size, y, x+size, y+size)
	s.Line(x+size, y+size, x, y+size)
	s.Line(x, y+size, x, y)
}
