package layout

import "image"

// RGB is a stroke color for Surface.Stroke.
type RGB struct {
	R, G, B int
}

// Surface is the drawing target for the layout engine.
//
// All coordinates are in millimeters from the page's bottom-left corner with
// Y increasing upward. The engine only subtracts heights from a running Y
// offset; converting to the output format's native coordinate system is the
// implementation's job.
type Surface interface {
	// Text draws s with its baseline at (x, y). style is "" for regular
	// text or "B" for bold. size is in points.
	Text(s string, size float64, x, y float64, style string)

	// Stroke sets the color and width used by subsequent Line calls.
	Stroke(c RGB, width float64)

	// Line draws a straight segment from (x1, y1) to (x2, y2).
	Line(x1, y1, x2, y2 float64)

	// Image places img with its left edge at x and its top edge at y,
	// scaled to width mm. The height follows from the image's aspect
	// ratio.
	Image(img image.Image, x, y, width float64)

	// NewPage starts a new page. Subsequent draw calls target it.
	NewPage()
}

// Cursor tracks the running vertical position and page index while the
// sections of a sheet are laid out in sequence.
type Cursor struct {
	Y    float64 // offset from the bottom edge, in mm
	Page int     // 1-based page index
}

// Stroke presets shared by the section renderers.
var (
	strokeBorder  = RGB{0, 0, 0}       // section borders, header rules, checkboxes
	strokeRoster  = RGB{204, 204, 204} // roster row separators
	strokeSeatRow = RGB{179, 179, 179} // seat row separators
)
