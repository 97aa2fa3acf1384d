package render

import "fmt"

// CallWidth is the number of ints in one draw call: color, x, y, w, h.
const CallWidth = 5

// DrawCall is one decoded rectangle in pixel coordinates.
type DrawCall struct {
	Color int
	X, Y  int
	W, H  int
}

// ParseCalls splits a flat draw-call stream into rectangles.
// The stream length must be a multiple of CallWidth.
func ParseCalls(stream []int) ([]DrawCall, error) {
	if len(stream)%CallWidth != 0 {
		return nil, fmt.Errorf("render: draw stream length %d is not a multiple of %d", len(stream), CallWidth)
	}
	calls := make([]DrawCall, 0, len(stream)/CallWidth)
	for i := 0; i < len(stream); i += CallWidth {
		calls = append(calls, DrawCall{
			Color: stream[i],
			X:     stream[i+1],
			Y:     stream[i+2],
			W:     stream[i+3],
			H:     stream[i+4],
		})
	}
	return calls, nil
}

// Cells converts a pixel rectangle into the cell rectangle it covers.
// Partially covered cells count as covered.
func (d DrawCall) Cells(cellSize int) Rect {
	if cellSize <= 0 {
		cellSize = 1
	}
	x0 := floorDiv(d.X, cellSize)
	y0 := floorDiv(d.Y, cellSize)
	x1 := ceilDiv(d.X+d.W, cellSize)
	y1 := ceilDiv(d.Y+d.H, cellSize)
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Bounds returns the canvas size in cells needed to hold every call.
func Bounds(calls []DrawCall, cellSize int) (width, height int) {
	for _, d := range calls {
		r := d.Cells(cellSize)
		if r.Empty() {
			continue
		}
		width = max(width, r.Right())
		height = max(height, r.Bottom())
	}
	return width, height
}

// Rasterize paints the draw stream onto a canvas sized to fit it, at most
// maxW x maxH cells. Calls reaching past that limit are clipped, so a stray
// coordinate cannot grow the canvas. A non-positive limit means no cells on
// that axis.
// Calls are applied in stream order, so later calls cover earlier ones.
func Rasterize(stream []int, cellSize, maxW, maxH int) (*Canvas, error) {
	calls, err := ParseCalls(stream)
	if err != nil {
		return nil, err
	}
	w, h := Bounds(calls, cellSize)
	c := NewCanvas(min(w, maxW), min(h, maxH))
	Paint(c, calls, cellSize)
	return c, nil
}

// Paint applies calls onto an existing canvas in order.
func Paint(c *Canvas, calls []DrawCall, cellSize int) {
	for _, d := range calls {
		r := d.Cells(cellSize)
		if r.Empty() {
			continue
		}
		c.FillRect(r, d.Color)
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a > 0 {
		q++
	}
	return q
}
