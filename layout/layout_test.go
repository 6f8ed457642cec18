package layout_test

import (
	"image"

	"github.com/lvillar/attendance/layout"
)

// drawOp records a single Surface call and the page it landed on.
type drawOp struct {
	Kind   string // "text", "line", "image", "page"
	Text   string
	X, Y   float64
	X2, Y2 float64
	Width  float64
	Page   int
}

// recorder is a Surface that captures draw calls for geometry assertions.
type recorder struct {
	page int
	ops  []drawOp
}

func newRecorder() *recorder {
	return &recorder{page: 1}
}

func (r *recorder) Text(s string, size float64, x, y float64, style string) {
	r.ops = append(r.ops, drawOp{Kind: "text", Text: s, X: x, Y: y, Page: r.page})
}

func (r *recorder) Stroke(c layout.RGB, width float64) {}

func (r *recorder) Line(x1, y1, x2, y2 float64) {
	r.ops = append(r.ops, drawOp{Kind: "line", X: x1, Y: y1, X2: x2, Y2: y2, Page: r.page})
}

func (r *recorder) Image(img image.Image, x, y, width float64) {
	r.ops = append(r.ops, drawOp{Kind: "image", X: x, Y: y, Width: width, Page: r.page})
}

func (r *recorder) NewPage() {
	r.page++
	r.ops = append(r.ops, drawOp{Kind: "page", Page: r.page})
}

// texts returns all text ops whose content equals s.
func (r *recorder) texts(s string) []drawOp {
	var out []drawOp
	for _, op := range r.ops {
		if op.Kind == "text" && op.Text == s {
			out = append(out, op)
		}
	}
	return out
}

func (r *recorder) pageCount() int {
	return r.page
}
