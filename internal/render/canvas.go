// Package render turns the flat draw-call stream produced by the simulation
// into a grid of colored cells that a terminal host can display.
// It has no terminal dependencies so rasterization stays testable.
package render

// Rect is an axis-aligned rectangle in cell coordinates.
type Rect struct {
	X, Y int // Top-left corner
	W, H int // Width and height
}

// Right returns the exclusive right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Cell is one painted square of the canvas.
type Cell struct {
	Color   int  // 0xRRGGBB
	Painted bool // false until a draw call covers the cell
}

// Canvas is a 2D buffer of colored cells, indexed [y][x].
type Canvas struct {
	width  int
	height int
	cells  [][]Cell
}

// NewCanvas creates a cleared canvas with the given dimensions.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{
		width:  max(width, 0),
		height: max(height, 0),
	}
	c.allocate()
	return c
}

func (c *Canvas) allocate() {
	c.cells = make([][]Cell, c.height)
	for y := range c.cells {
		c.cells[y] = make([]Cell, c.width)
	}
}

// Width returns the canvas width in cells.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in cells.
func (c *Canvas) Height() int {
	return c.height
}

// Resize changes the canvas dimensions, preserving content where possible.
func (c *Canvas) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == c.width && height == c.height {
		return
	}

	old := c.cells
	copyW := min(c.width, width)
	copyH := min(c.height, height)

	c.width = width
	c.height = height
	c.allocate()

	for y := 0; y < copyH; y++ {
		copy(c.cells[y][:copyW], old[y][:copyW])
	}
}

// Clear resets every cell to unpainted.
func (c *Canvas) Clear() {
	for y := range c.cells {
		clear(c.cells[y])
	}
}

// Set paints a single cell.
// Out-of-bounds coordinates are silently ignored.
func (c *Canvas) Set(x, y, color int) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.cells[y][x] = Cell{Color: color, Painted: true}
}

// Get returns the cell at the given position.
// Returns an unpainted cell for out-of-bounds coordinates.
func (c *Canvas) Get(x, y int) Cell {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return Cell{}
	}
	return c.cells[y][x]
}

// FillRect paints every cell inside r, clipped to the canvas.
func (c *Canvas) FillRect(r Rect, color int) {
	for y := max(r.Y, 0); y < min(r.Bottom(), c.height); y++ {
		for x := max(r.X, 0); x < min(r.Right(), c.width); x++ {
			c.cells[y][x] = Cell{Color: color, Painted: true}
		}
	}
}

// Row returns a copy of row y.
func (c *Canvas) Row(y int) []Cell {
	if y < 0 || y >= c.height {
		return make([]Cell, c.width)
	}
	row := make([]Cell, c.width)
	copy(row, c.cells[y])
	return row
}
