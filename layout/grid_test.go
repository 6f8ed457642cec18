package layout_test

import (
	"fmt"
	"math"
	"reflect"
	"testing"

	"github.com/lvillar/attendance/layout"
)

func TestSplitRoster(t *testing.T) {
	cases := []struct {
		n           int
		left, right int
	}{
		{0, 0, 0},
		{1, 1, 0},
		{2, 1, 1},
		{4, 2, 2},
		{37, 19, 18},
		{100, 50, 50},
	}
	for _, tc := range cases {
		names := make([]string, tc.n)
		for i := range names {
			names[i] = fmt.Sprintf("Student %d", i+1)
		}
		left, right := layout.SplitRoster(names)
		if len(left) != tc.left || len(right) != tc.right {
			t.Errorf("SplitRoster(%d names) = %d/%d, want %d/%d",
				tc.n, len(left), len(right), tc.left, tc.right)
		}
		if len(left) < len(right) {
			t.Errorf("SplitRoster(%d names): left column shorter than right", tc.n)
		}
	}
}

func TestRowHeight(t *testing.T) {
	cases := []struct {
		avail float64
		rows  int
		max   float64
		want  float64
	}{
		{100, 5, 7, 7},      // capped
		{10, 5, 7, 2},       // space-limited
		{7, 1000, 7, 0.007}, // very large row counts approach zero
		{-3, 10, 7, 0},      // exhausted space clamps to zero
		{50, 0, 7, 7},       // degenerate row count
	}
	for _, tc := range cases {
		got := layout.RowHeight(tc.avail, tc.rows, tc.max)
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("RowHeight(%v, %d, %v) = %v, want %v", tc.avail, tc.rows, tc.max, got, tc.want)
		}
		if got > tc.max {
			t.Errorf("RowHeight(%v, %d, %v) = %v exceeds cap", tc.avail, tc.rows, tc.max, got)
		}
		if got < 0 {
			t.Errorf("RowHeight(%v, %d, %v) = %v is negative", tc.avail, tc.rows, tc.max, got)
		}
	}
}

func TestNumTables(t *testing.T) {
	cases := map[int]int{1: 1, 4: 1, 5: 2, 30: 8, 32: 8, 33: 9}
	for seats, want := range cases {
		if got := layout.NumTables(seats); got != want {
			t.Errorf("NumTables(%d) = %d, want %d", seats, got, want)
		}
	}
}

// gridStart returns a cursor positioned where the grid begins after a
// header: the top margin minus the QR block and its trailing gap.
func gridStart(m layout.Metrics) layout.Cursor {
	return layout.Cursor{Y: m.TopY() - m.QRSize - m.HeaderGap, Page: 1}
}

// seatRowPages extracts, in draw order, the page of every seat row text.
func seatRowPages(r *recorder) []int {
	seats := map[string]bool{"North": true, "South": true, "East": true, "West": true}
	var pages []int
	for _, op := range r.ops {
		if op.Kind == "text" && seats[op.Text] {
			pages = append(pages, op.Page)
		}
	}
	return pages
}

func TestBlankGridPagination(t *testing.T) {
	m := layout.DefaultMetrics()
	r := newRecorder()
	cur := gridStart(m)

	layout.BlankGrid(32).Render(r, m, &cur, m.MailingHeight)

	rows := seatRowPages(r)
	if len(rows) != 32 {
		t.Fatalf("expected 32 seat rows, got %d", len(rows))
	}

	// 8 tables at 48mm each cannot fit above the mailing section on
	// page 1, so the grid must overflow.
	if r.pageCount() != 2 {
		t.Errorf("expected 2 pages, got %d", r.pageCount())
	}
	if cur.Page != 2 {
		t.Errorf("cursor page = %d, want 2", cur.Page)
	}

	// No table's seat rows may straddle a page boundary.
	for i := 0; i < len(rows); i += 4 {
		for j := i + 1; j < i+4 && j < len(rows); j++ {
			if rows[j] != rows[i] {
				t.Errorf("table %d split across pages %d and %d", i/4+1, rows[i], rows[j])
			}
		}
	}

	for n := 1; n <= 8; n++ {
		if got := len(r.texts(fmt.Sprintf("Table %d", n))); got != 1 {
			t.Errorf("expected exactly one label for table %d, got %d", n, got)
		}
	}
}

func TestBlankGridPartialLastTable(t *testing.T) {
	m := layout.DefaultMetrics()
	r := newRecorder()
	cur := gridStart(m)

	layout.BlankGrid(30).Render(r, m, &cur, m.MailingHeight)

	if got := len(seatRowPages(r)); got != 30 {
		t.Errorf("expected 30 seat rows, got %d", got)
	}
	// The 8th table stops after North and South.
	if got := len(r.texts("North")); got != 8 {
		t.Errorf("expected 8 North rows, got %d", got)
	}
	if got := len(r.texts("East")); got != 7 {
		t.Errorf("expected 7 East rows, got %d", got)
	}
	if got := len(r.texts("Table 8")); got != 1 {
		t.Errorf("expected the partial table to keep its label, got %d", got)
	}
}

func TestBlankGridSinglePageWithoutMailing(t *testing.T) {
	m := layout.DefaultMetrics()
	r := newRecorder()
	cur := gridStart(m)

	// 16 seats = 4 tables = 192mm, which fits the first page once no
	// mailing height is reserved.
	layout.BlankGrid(16).Render(r, m, &cur, 0)

	if r.pageCount() != 1 {
		t.Errorf("expected a single page, got %d", r.pageCount())
	}
}

func TestBlankGridDeterminism(t *testing.T) {
	m := layout.DefaultMetrics()

	render := func() []drawOp {
		r := newRecorder()
		cur := gridStart(m)
		layout.BlankGrid(57).Render(r, m, &cur, m.MailingHeight)
		return r.ops
	}

	if !reflect.DeepEqual(render(), render()) {
		t.Error("two renders of the same grid differ")
	}
}

func TestRosterGridGeometry(t *testing.T) {
	m := layout.DefaultMetrics()
	names := make([]string, 37)
	for i := range names {
		names[i] = fmt.Sprintf("Student %d", i+1)
	}

	r := newRecorder()
	cur := gridStart(m)
	top := cur.Y
	layout.RosterGrid(names).Render(r, m, &cur, m.MailingHeight)

	// Every name renders exactly once, all on page 1.
	for _, n := range names {
		ops := r.texts(n)
		if len(ops) != 1 {
			t.Fatalf("name %q drawn %d times, want 1", n, len(ops))
		}
		if ops[0].Page != 1 {
			t.Errorf("name %q on page %d, want 1", n, ops[0].Page)
		}
	}
	if r.pageCount() != 1 {
		t.Errorf("roster mode paginated: %d pages", r.pageCount())
	}

	// Seat captions: one per name row plus one per walk-in row in each
	// of the two columns.
	wantCaptions := 37 + 2*m.WalkInRows
	if got := len(r.texts("N  S  E  W")); got != wantCaptions {
		t.Errorf("seat captions = %d, want %d", got, wantCaptions)
	}

	// Both columns carry a header row.
	if got := len(r.texts("NAME")); got != 2 {
		t.Errorf("column headers = %d, want 2", got)
	}

	// The cursor lands below the taller (left) column: header row plus
	// 19+WalkInRows capped-height rows.
	rows := 19 + m.WalkInRows
	avail := top - m.Margin - m.MailingHeight - m.SectionGap
	rowH := layout.RowHeight(avail-m.HeaderRow, rows, m.MaxRowHeight)
	want := top - m.HeaderRow - float64(rows)*rowH
	if math.Abs(cur.Y-want) > 1e-9 {
		t.Errorf("cursor Y = %v, want %v", cur.Y, want)
	}
}

func TestRosterGridSharedRowHeight(t *testing.T) {
	m := layout.DefaultMetrics()
	names := []string{"Ada", "Ben", "Cal", "Dot", "Eve"} // left 3, right 2

	r := newRecorder()
	cur := gridStart(m)
	layout.RosterGrid(names).Render(r, m, &cur, 0)

	// With one fewer row, the right column's last separator sits exactly
	// one row height above the left column's.
	band := (m.ContentWidth() - m.ColumnGutter) / 2
	var leftLow, rightLow = math.Inf(1), math.Inf(1)
	for _, op := range r.ops {
		if op.Kind != "line" || op.Y != op.Y2 {
			continue
		}
		switch op.X {
		case m.Margin:
			if op.X2 == m.Margin+band && op.Y < leftLow {
				leftLow = op.Y
			}
		case m.Margin + band + m.ColumnGutter:
			if op.Y < rightLow {
				rightLow = op.Y
			}
		}
	}
	if math.IsInf(leftLow, 1) || math.IsInf(rightLow, 1) {
		t.Fatal("missing column separators")
	}
	if diff := rightLow - leftLow; math.Abs(diff-m.MaxRowHeight) > 1e-9 {
		t.Errorf("bottom separators differ by %v, want one row height %v", diff, m.MaxRowHeight)
	}
}

func TestRosterGridEmpty(t *testing.T) {
	m := layout.DefaultMetrics()
	r := newRecorder()
	cur := gridStart(m)

	layout.RosterGrid(nil).Render(r, m, &cur, 0)

	// Only walk-in rows, in both columns.
	if got := len(r.texts("N  S  E  W")); got != 2*m.WalkInRows {
		t.Errorf("seat captions = %d, want %d", got, 2*m.WalkInRows)
	}
	if got := len(r.texts("NAME")); got != 2 {
		t.Errorf("column headers = %d, want 2", got)
	}
}
